package csvclean

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// parses raw CSV contents into a header row and data records.
// Quoted commas are stripped beforehand so every comma is a separator,
// matching how uploads are normalized before cleaning.
func readCSV(contents string) ([]string, [][]string, error) {
	reader := csv.NewReader(strings.NewReader(contents))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv contains no rows")
	}

	header := records[0]
	for i, label := range header {
		header[i] = strings.TrimSpace(label)
	}

	return header, records[1:], nil
}

// removes commas inside either single or double quotes
func removeCommaInsideQuotes(contents string) string {
	var quoteChar byte

	var output strings.Builder
	output.Grow(len(contents))

	for i := 0; i < len(contents); i++ {
		char := contents[i]

		if char == '"' || char == '\'' {
			if quoteChar == 0 {
				quoteChar = char
			} else if quoteChar == char {
				quoteChar = 0
			}
		} else if char == ',' && quoteChar != 0 {
			continue
		}

		output.WriteByte(char)
	}

	return output.String()
}

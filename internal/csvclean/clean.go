package csvclean

import (
	"encoding/csv"
	"strconv"
	"strings"
)

const (
	// minimum fraction of matching values before a column is reclassified
	countThreshold = 0.8

	// minimum similarity ratio before a value is treated as a misspelling
	similarityThreshold = 0.8
)

var boolTrueValues = map[string]bool{
	"true": true, "yes": true, "y": true, "on": true, "t": true,
	"yeah": true, "yep": true, "ye": true, "ok": true, "okay": true,
	"affirmative": true, "certainly": true, "positive": true,
}

var boolFalseValues = map[string]bool{
	"false": true, "no": true, "n": true, "off": true, "f": true,
	"nah": true, "na": true, "nop": true, "nope": true,
	"negative": true, "absent": true, "none": true,
}

var genderMaleValues = map[string]bool{
	"male": true, "m": true, "man": true, "boy": true, "gentleman": true,
	"masculine": true, "he": true, "his": true, "him": true, "guy": true,
	"dude": true, "bro": true, "sir": true, "king": true,
}

var genderFemaleValues = map[string]bool{
	"female": true, "f": true, "woman": true, "girl": true, "lady": true,
	"feminine": true, "she": true, "her": true, "hers": true, "gal": true,
	"chick": true, "miss": true, "madam": true, "ma'am": true, "queen": true,
}

// Clean normalizes raw CSV contents and infers a data type for every column.
// Cells are trimmed and lowercased, empty cells are filled according to the
// given strategy, and columns are reclassified as boolean, currency-number,
// gender-normalized string, number, or plain string with misspelling repair.
func Clean(contents string, strategy FillStrategy) (*Result, error) {
	header, records, err := readCSV(removeCommaInsideQuotes(contents))
	if err != nil {
		return nil, err
	}

	// transpose records into normalized columns
	columns := make([][]string, len(header))

	for _, record := range records {
		for i := range header {
			value := ""

			if i < len(record) {
				value = strings.ToLower(strings.TrimSpace(record[i]))
			}

			columns[i] = append(columns[i], value)
		}
	}

	cleaned := make([]CleanColumn, 0, len(header))

	for i, label := range header {
		values := fillEmpty(columns[i], strategy)
		cleaned = append(cleaned, inferColumn(label, values))
	}

	return &Result{
		CSV:     writeCSV(header, cleaned),
		Columns: cleaned,
	}, nil
}

// assigns a data type to a column and rewrites its values accordingly
func inferColumn(label string, values []string) CleanColumn {
	if possiblyBoolColumn(values) {
		rows := make([]string, len(values))

		for i, value := range values {
			rows[i] = strconv.FormatBool(boolTrueValues[value])
		}

		return CleanColumn{Label: label, Dtype: TypeBoolean, Rows: rows}
	}

	if symbol := possiblyCurrencyColumn(values); symbol != "" {
		rows := make([]string, len(values))

		for i, value := range values {
			rows[i] = strings.TrimPrefix(value, symbol)
		}

		return CleanColumn{Label: label, Dtype: TypeNumber, Currency: symbol, Rows: rows}
	}

	if allNumeric(values) {
		return CleanColumn{Label: label, Dtype: TypeNumber, Rows: values}
	}

	if possiblyGenderColumn(values) {
		rows := make([]string, len(values))

		for i, value := range values {
			rows[i] = normalizeGender(value)
		}

		return CleanColumn{Label: label, Dtype: TypeString, Rows: rows}
	}

	rows := make([]string, len(values))

	for i, value := range values {
		rows[i] = fixPossibleMisspellings(value, values)
	}

	return CleanColumn{Label: label, Dtype: TypeString, Rows: rows}
}

// fills empty cells according to the chosen strategy.
// Numeric strategies fall back to forward fill for non-numeric columns.
func fillEmpty(values []string, strategy FillStrategy) []string {
	filled := make([]string, len(values))
	copy(filled, values)

	switch strategy {
	case FillForward:
		fillForward(filled)
	case FillBackward:
		for i := len(filled) - 1; i >= 0; i-- {
			if filled[i] == "" && i+1 < len(filled) {
				filled[i] = filled[i+1]
			}
		}
	case FillZero:
		replaceEmpty(filled, "0")
	case FillOne:
		replaceEmpty(filled, "1")
	case FillMin, FillMax, FillMean:
		numbers := parseNumbers(filled)
		if len(numbers) == 0 {
			fillForward(filled)
			return filled
		}

		replaceEmpty(filled, formatNumber(aggregate(numbers, strategy)))
	}

	return filled
}

func fillForward(values []string) {
	for i := range values {
		if values[i] == "" && i > 0 {
			values[i] = values[i-1]
		}
	}
}

func replaceEmpty(values []string, replacement string) {
	for i := range values {
		if values[i] == "" {
			values[i] = replacement
		}
	}
}

func parseNumbers(values []string) []float64 {
	var numbers []float64

	for _, value := range values {
		if value == "" {
			continue
		}

		if n, err := strconv.ParseFloat(value, 64); err == nil {
			numbers = append(numbers, n)
		}
	}

	return numbers
}

func aggregate(numbers []float64, strategy FillStrategy) float64 {
	result := numbers[0]

	switch strategy {
	case FillMin:
		for _, n := range numbers[1:] {
			result = min(result, n)
		}
	case FillMax:
		for _, n := range numbers[1:] {
			result = max(result, n)
		}
	case FillMean:
		sum := 0.0
		for _, n := range numbers {
			sum += n
		}

		result = sum / float64(len(numbers))
	}

	return result
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func possiblyBoolColumn(values []string) bool {
	trueCount := 0
	falseCount := 0

	for _, value := range values {
		if boolTrueValues[value] {
			trueCount++
		} else if boolFalseValues[value] {
			falseCount++
		}
	}

	return float64(trueCount+falseCount) > float64(len(values))*countThreshold
}

// returns the currency symbol if one consistently prefixes the column, "" if none
func possiblyCurrencyColumn(values []string) string {
	threshold := float64(len(values)) * countThreshold
	currencySymbol := ""
	foundCount := 0

	for _, value := range values {
		if value == "" {
			continue
		}

		for _, symbol := range currencySymbols {
			if !strings.HasPrefix(value, symbol) {
				continue
			}

			if currencySymbol == "" {
				currencySymbol = symbol
			} else if currencySymbol != symbol {
				// many different symbols in column. do not bother trying to convert
				return ""
			}

			if _, err := strconv.ParseFloat(value[len(symbol):], 64); err != nil {
				// not a valid currency number
				return ""
			}

			foundCount++

			break
		}
	}

	if float64(foundCount) > threshold {
		return currencySymbol
	}

	return ""
}

func possiblyGenderColumn(values []string) bool {
	maleCount := 0
	femaleCount := 0

	for _, value := range values {
		if genderMaleValues[value] {
			maleCount++
		} else if genderFemaleValues[value] {
			femaleCount++
		}
	}

	return float64(maleCount+femaleCount) > float64(len(values))*countThreshold
}

func normalizeGender(original string) string {
	if genderMaleValues[original] {
		return "male"
	}

	if genderFemaleValues[original] {
		return "female"
	}

	return original
}

func allNumeric(values []string) bool {
	seen := false

	for _, value := range values {
		if value == "" {
			continue
		}

		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return false
		}

		seen = true
	}

	return seen
}

// replaces a value with the column's modal value when they are close enough,
// otherwise with the most common of its similar neighbors
func fixPossibleMisspellings(original string, column []string) string {
	mode := modalValue(column)
	if mode == "" {
		return original
	}

	if similarityRatio(original, mode) > similarityThreshold {
		return mode
	}

	var similar []string

	for _, other := range column {
		if similarityRatio(original, other) > similarityThreshold {
			similar = append(similar, other)
		}
	}

	if res := modalValue(similar); res != "" {
		return res
	}

	return original
}

// returns the most common value, first-seen wins ties
func modalValue(values []string) string {
	counts := make(map[string]int, len(values))
	mode := ""
	best := 0

	for _, value := range values {
		counts[value]++

		if counts[value] > best {
			best = counts[value]
			mode = value
		}
	}

	return mode
}

// serializes the cleaned columns back into CSV text
func writeCSV(header []string, columns []CleanColumn) string {
	var builder strings.Builder

	writer := csv.NewWriter(&builder)
	writer.Write(header) //nolint:errcheck,gosec // strings.Builder writes cannot fail

	rowCount := 0

	for _, column := range columns {
		rowCount = max(rowCount, len(column.Rows))
	}

	for i := 0; i < rowCount; i++ {
		record := make([]string, len(columns))

		for j, column := range columns {
			if i < len(column.Rows) {
				record[j] = column.Rows[i]
			}
		}

		writer.Write(record) //nolint:errcheck,gosec // strings.Builder writes cannot fail
	}

	writer.Flush()

	return builder.String()
}

package gemini

import (
	"fmt"
	"sort"
	"strings"
)

const systemInstruction = `Since this request comes from an API, I expect to only get the answer without
acknowledgement from you. Do not use unsure tone and terms such as "likely",
"probably", etc. Keep it professional. Do not hallucinate.`

// BuildPrompt wraps the user prompt in the system envelope and appends one
// tagged block per context entry. Tags are sorted for deterministic output.
func BuildPrompt(prompt string, context map[string]string) string {
	var builder strings.Builder

	builder.WriteString("\n<system>\n")
	builder.WriteString(systemInstruction)
	builder.WriteString("\n</system>\n")
	builder.WriteString("<prompt>\n")
	builder.WriteString(prompt)
	builder.WriteString("\n</prompt>")

	tags := make([]string, 0, len(context))

	for tag := range context {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	for _, tag := range tags {
		builder.WriteString(fmt.Sprintf("\n<%s>\n%s\n</%s>\n", tag, context[tag], tag))
	}

	return builder.String()
}

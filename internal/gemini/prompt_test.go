package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_NoContext(t *testing.T) {
	prompt := BuildPrompt("give an overview of this report", nil)

	assert.Contains(t, prompt, "<system>")
	assert.Contains(t, prompt, "</system>")
	assert.Contains(t, prompt, "<prompt>\ngive an overview of this report\n</prompt>")
}

func TestBuildPrompt_ContextTagsSorted(t *testing.T) {
	prompt := BuildPrompt("summarize", map[string]string{
		"data":       "a,b,c",
		"chart_type": "BAR_CHART",
		"page_name":  "sales",
	})

	chartIdx := strings.Index(prompt, "<chart_type>")
	dataIdx := strings.Index(prompt, "<data>")
	pageIdx := strings.Index(prompt, "<page_name>")

	assert.Greater(t, chartIdx, 0)
	assert.Greater(t, dataIdx, chartIdx)
	assert.Greater(t, pageIdx, dataIdx)
	assert.Contains(t, prompt, "<chart_type>\nBAR_CHART\n</chart_type>")
}

package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLabels(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "price", []string{"price"}},
		{"multiple", "price,region", []string{"price", "region"}},
		{"trims whitespace", " price , region ", []string{"price", "region"}},
		{"skips empty parts", "price,,region,", []string{"price", "region"}},
		{"drops duplicates", "price,region,price", []string{"price", "region"}},
		{"all empty", " , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLabels(tt.raw))
		})
	}
}

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery string) Params {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)

	return FromContext(c)
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{
			name:  "defaults",
			query: "",
			want:  Params{Limit: 100, Offset: 0},
		},
		{
			name:  "explicit values",
			query: "limit=10&offset=20",
			want:  Params{Limit: 10, Offset: 20},
		},
		{
			name:  "limit clamped to max",
			query: "limit=500",
			want:  Params{Limit: 100, Offset: 0},
		},
		{
			name:  "negative values fall back",
			query: "limit=-1&offset=-5",
			want:  Params{Limit: 100, Offset: 0},
		},
		{
			name:  "garbage values fall back",
			query: "limit=abc&offset=xyz",
			want:  Params{Limit: 100, Offset: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paramsFor(t, tt.query))
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Limit: 10, Offset: 0}, 25)

	assert.Equal(t, 25, meta.Total)
	assert.True(t, meta.HasMore)

	meta = NewMeta(Params{Limit: 10, Offset: 20}, 25)
	assert.False(t, meta.HasMore)
}

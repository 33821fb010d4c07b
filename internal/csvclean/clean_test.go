package csvclean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_TypeInference(t *testing.T) {
	csv := strings.Join([]string{
		"Name,Price,In Stock,Gender",
		"Chocolate,$12.5,yes,m",
		"chocolata,$3.0,no,f",
		"Chocolate,$5,yep,female",
	}, "\n")

	result, err := Clean(csv, FillForward)
	require.NoError(t, err)
	require.Len(t, result.Columns, 4)

	name := result.Columns[0]
	assert.Equal(t, "Name", name.Label)
	assert.Equal(t, TypeString, name.Dtype)
	// "chocolata" is close enough to the modal value to be repaired
	assert.Equal(t, []string{"chocolate", "chocolate", "chocolate"}, name.Rows)

	price := result.Columns[1]
	assert.Equal(t, TypeNumber, price.Dtype)
	assert.Equal(t, "$", price.Currency)
	assert.Equal(t, []string{"12.5", "3.0", "5"}, price.Rows)

	inStock := result.Columns[2]
	assert.Equal(t, TypeBoolean, inStock.Dtype)
	assert.Equal(t, []string{"true", "false", "true"}, inStock.Rows)

	gender := result.Columns[3]
	assert.Equal(t, TypeString, gender.Dtype)
	assert.Equal(t, []string{"male", "female", "female"}, gender.Rows)
}

func TestClean_NumericColumn(t *testing.T) {
	csv := "amount\n1\n2\n3.5"

	result, err := Clean(csv, FillForward)
	require.NoError(t, err)
	require.Len(t, result.Columns, 1)

	assert.Equal(t, TypeNumber, result.Columns[0].Dtype)
	assert.Equal(t, []string{"1", "2", "3.5"}, result.Columns[0].Rows)
}

func TestClean_WritesCleanedCSV(t *testing.T) {
	csv := "label,count\nFoo,1\nBar,2"

	result, err := Clean(csv, FillForward)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result.CSV), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "label,count", lines[0])
	assert.Equal(t, "foo,1", lines[1])
	assert.Equal(t, "bar,2", lines[2])
}

func TestClean_EmptyInput(t *testing.T) {
	_, err := Clean("", FillForward)
	assert.Error(t, err)
}

func TestFillEmpty(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		strategy FillStrategy
		want     []string
	}{
		{
			name:     "forward",
			values:   []string{"1", "", "2", ""},
			strategy: FillForward,
			want:     []string{"1", "1", "2", "2"},
		},
		{
			name:     "forward leaves leading empty",
			values:   []string{"", "2"},
			strategy: FillForward,
			want:     []string{"", "2"},
		},
		{
			name:     "backward",
			values:   []string{"", "2", "", "3"},
			strategy: FillBackward,
			want:     []string{"2", "2", "3", "3"},
		},
		{
			name:     "zero",
			values:   []string{"5", ""},
			strategy: FillZero,
			want:     []string{"5", "0"},
		},
		{
			name:     "one",
			values:   []string{"", "5"},
			strategy: FillOne,
			want:     []string{"1", "5"},
		},
		{
			name:     "mean",
			values:   []string{"2", "", "4"},
			strategy: FillMean,
			want:     []string{"2", "3", "4"},
		},
		{
			name:     "min",
			values:   []string{"2", "", "4"},
			strategy: FillMin,
			want:     []string{"2", "2", "4"},
		},
		{
			name:     "max",
			values:   []string{"2", "", "4"},
			strategy: FillMax,
			want:     []string{"2", "4", "4"},
		},
		{
			name:     "mean falls back to forward for text",
			values:   []string{"a", "", "b"},
			strategy: FillMean,
			want:     []string{"a", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fillEmpty(tt.values, tt.strategy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveCommaInsideQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double quotes",
			input: `a,"b,c",d`,
			want:  `a,"bc",d`,
		},
		{
			name:  "single quotes",
			input: "a,'b,c',d",
			want:  "a,'bc',d",
		},
		{
			name:  "no quotes",
			input: "a,b,c",
			want:  "a,b,c",
		},
		{
			name:  "nested quote chars",
			input: `a,"it's, fine",b`,
			want:  `a,"it's fine",b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeCommaInsideQuotes(tt.input)
			if got != tt.want {
				t.Errorf("removeCommaInsideQuotes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPossiblyCurrencyColumn(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "consistent dollar",
			values: []string{"$1", "$2.5", "$3"},
			want:   "$",
		},
		{
			name:   "mixed symbols",
			values: []string{"$1", "€2", "$3"},
			want:   "",
		},
		{
			name:   "not numeric after symbol",
			values: []string{"$1", "$abc", "$3"},
			want:   "",
		},
		{
			name:   "below threshold",
			values: []string{"$1", "x", "y", "z", "w"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := possiblyCurrencyColumn(tt.values)
			if got != tt.want {
				t.Errorf("possiblyCurrencyColumn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFillStrategy(t *testing.T) {
	strategy, ok := ParseFillStrategy("")
	require.True(t, ok)
	assert.Equal(t, FillForward, strategy)

	strategy, ok = ParseFillStrategy("mean")
	require.True(t, ok)
	assert.Equal(t, FillMean, strategy)

	_, ok = ParseFillStrategy("bogus")
	assert.False(t, ok)
}

package columns

import (
	"errors"
	"testing"

	"codeberg.org/da-project/server/internal/csvclean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberColumn(rows string) *Column {
	return &Column{Label: "amount", Dtype: csvclean.TypeNumber, Rows: rows}
}

func TestCompute_NumberOperations(t *testing.T) {
	tests := []struct {
		name string
		rows string
		op   Operation
		want any
	}{
		{
			name: "no operation returns array",
			rows: "1,2,3",
			op:   OpNone,
			want: []float64{1, 2, 3},
		},
		{
			name: "first",
			rows: "4,2,9",
			op:   OpFirst,
			want: 4.0,
		},
		{
			name: "last",
			rows: "4,2,9",
			op:   OpLast,
			want: 9.0,
		},
		{
			name: "max",
			rows: "4,2,9",
			op:   OpMax,
			want: 9.0,
		},
		{
			name: "min",
			rows: "4,2,9",
			op:   OpMin,
			want: 2.0,
		},
		{
			name: "sum",
			rows: "4,2,9",
			op:   OpSum,
			want: 15.0,
		},
		{
			name: "mean",
			rows: "4,2,9",
			op:   OpMean,
			want: 5.0,
		},
		{
			name: "median odd",
			rows: "9,1,5",
			op:   OpMedian,
			want: 5.0,
		},
		{
			name: "median even",
			rows: "1,2,3,4",
			op:   OpMedian,
			want: 2.5,
		},
		{
			name: "mode single",
			rows: "1,2,2,3",
			op:   OpMode,
			want: []float64{2},
		},
		{
			name: "mode tie keeps first-seen order",
			rows: "3,1,3,1,2",
			op:   OpMode,
			want: []float64{3, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numberColumn(tt.rows).Compute(tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_StringColumn(t *testing.T) {
	column := &Column{Label: "city", Dtype: csvclean.TypeString, Rows: "oslo,bergen,oslo"}

	got, err := column.Compute(OpNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"oslo", "bergen", "oslo"}, got)

	got, err = column.Compute(OpFirst)
	require.NoError(t, err)
	assert.Equal(t, "oslo", got)

	got, err = column.Compute(OpLast)
	require.NoError(t, err)
	assert.Equal(t, "oslo", got)

	_, err = column.Compute(OpSum)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestCompute_BoolColumn(t *testing.T) {
	column := &Column{Label: "active", Dtype: csvclean.TypeBoolean, Rows: "true,false,true"}

	got, err := column.Compute(OpNone)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got)

	got, err = column.Compute(OpLast)
	require.NoError(t, err)
	assert.Equal(t, true, got)

	_, err = column.Compute(OpMean)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestCompute_EmptyColumn(t *testing.T) {
	tests := []struct {
		name string
		rows string
	}{
		{name: "empty string", rows: ""},
		{name: "only commas", rows: ",,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := numberColumn(tt.rows).Compute(OpNone)
			assert.ErrorIs(t, err, ErrEmptyColumn)
		})
	}
}

func TestCompute_UnknownDataType(t *testing.T) {
	column := &Column{Label: "x", Dtype: "DECIMAL", Rows: "1,2"}

	_, err := column.Compute(OpNone)
	assert.True(t, errors.Is(err, ErrUnknownDataType))
}

func TestParseOperation(t *testing.T) {
	op, ok := ParseOperation("")
	require.True(t, ok)
	assert.Equal(t, OpNone, op)

	op, ok = ParseOperation("median")
	require.True(t, ok)
	assert.Equal(t, OpMedian, op)

	_, ok = ParseOperation("variance")
	assert.False(t, ok)
}

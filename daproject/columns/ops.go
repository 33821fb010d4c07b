package columns

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"codeberg.org/da-project/server/internal/csvclean"
)

// aggregation applied to a column's row data
type Operation string

const (
	OpNone   Operation = ""
	OpFirst  Operation = "first"
	OpLast   Operation = "last"
	OpMax    Operation = "max"
	OpMean   Operation = "mean"
	OpMedian Operation = "median"
	OpMin    Operation = "min"
	OpMode   Operation = "mode"
	OpSum    Operation = "sum"
)

var (
	// the operation is not defined for the column's data type
	ErrUnsupportedOperation = errors.New("operation not supported for column data type")

	// the column exists but holds no row data
	ErrEmptyColumn = errors.New("column has no rows")

	ErrUnknownDataType = errors.New("unknown column data type")
)

// parses an operation from its query representation
func ParseOperation(s string) (Operation, bool) {
	switch Operation(s) {
	case OpNone, OpFirst, OpLast, OpMax, OpMean, OpMedian, OpMin, OpMode, OpSum:
		return Operation(s), true
	default:
		return "", false
	}
}

// Compute decodes the column's rows per its data type and applies the
// operation. With OpNone the full typed array is returned; first/last work
// for every type, the numeric aggregations only for NUMBER columns.
func (c *Column) Compute(op Operation) (any, error) {
	values := c.RowValues()

	if empty(values) {
		return nil, ErrEmptyColumn
	}

	switch c.Dtype {
	case csvclean.TypeBoolean:
		return computeBool(values, op)
	case csvclean.TypeNumber:
		return computeNumber(values, op)
	case csvclean.TypeString:
		return computeString(values, op)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataType, c.Dtype)
	}
}

func empty(values []string) bool {
	for _, value := range values {
		if value != "" {
			return false
		}
	}

	return true
}

func computeString(values []string, op Operation) (any, error) {
	switch op {
	case OpNone:
		return values, nil
	case OpFirst:
		return values[0], nil
	case OpLast:
		return values[len(values)-1], nil
	default:
		return nil, fmt.Errorf("%w: %s on string column", ErrUnsupportedOperation, op)
	}
}

func computeBool(values []string, op Operation) (any, error) {
	bools := make([]bool, len(values))

	for i, value := range values {
		bools[i] = value == "true"
	}

	switch op {
	case OpNone:
		return bools, nil
	case OpFirst:
		return bools[0], nil
	case OpLast:
		return bools[len(bools)-1], nil
	default:
		return nil, fmt.Errorf("%w: %s on bool column", ErrUnsupportedOperation, op)
	}
}

func computeNumber(values []string, op Operation) (any, error) {
	numbers := make([]float64, len(values))

	for i, value := range values {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse row value %q: %w", value, err)
		}

		numbers[i] = n
	}

	switch op {
	case OpNone:
		return numbers, nil
	case OpFirst:
		return numbers[0], nil
	case OpLast:
		return numbers[len(numbers)-1], nil
	case OpMax:
		result := numbers[0]
		for _, n := range numbers[1:] {
			result = max(result, n)
		}

		return result, nil
	case OpMin:
		result := numbers[0]
		for _, n := range numbers[1:] {
			result = min(result, n)
		}

		return result, nil
	case OpSum:
		return sum(numbers), nil
	case OpMean:
		return sum(numbers) / float64(len(numbers)), nil
	case OpMedian:
		sorted := make([]float64, len(numbers))
		copy(sorted, numbers)
		sort.Float64s(sorted)

		n := len(sorted)
		if n%2 != 0 {
			return sorted[n/2], nil
		}

		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	case OpMode:
		return modes(numbers), nil
	default:
		return nil, fmt.Errorf("%w: %s on number column", ErrUnsupportedOperation, op)
	}
}

func sum(numbers []float64) float64 {
	total := 0.0

	for _, n := range numbers {
		total += n
	}

	return total
}

// returns all values sharing the highest frequency, in first-seen order
func modes(numbers []float64) []float64 {
	counts := make(map[float64]int, len(numbers))
	var order []float64

	for _, n := range numbers {
		if counts[n] == 0 {
			order = append(order, n)
		}

		counts[n]++
	}

	maxFreq := 0
	for _, count := range counts {
		maxFreq = max(maxFreq, count)
	}

	var result []float64

	for _, n := range order {
		if counts[n] == maxFreq {
			result = append(result, n)
		}
	}

	return result
}

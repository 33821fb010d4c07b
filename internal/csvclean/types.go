package csvclean

// data type assigned to a cleaned column
type ColumnDataType string

const (
	TypeBoolean ColumnDataType = "BOOLEAN"
	TypeNumber  ColumnDataType = "NUMBER"
	TypeString  ColumnDataType = "STRING"
)

// parses a data type from its wire representation
func ParseDataType(s string) (ColumnDataType, bool) {
	switch ColumnDataType(s) {
	case TypeBoolean, TypeNumber, TypeString:
		return ColumnDataType(s), true
	default:
		return "", false
	}
}

// strategy used to fill empty cells during cleaning
type FillStrategy string

const (
	FillForward  FillStrategy = "forward"
	FillBackward FillStrategy = "backward"
	FillMin      FillStrategy = "min"
	FillMax      FillStrategy = "max"
	FillMean     FillStrategy = "mean"
	FillZero     FillStrategy = "zero"
	FillOne      FillStrategy = "one"
)

// parses a fill strategy, defaulting to forward fill
func ParseFillStrategy(s string) (FillStrategy, bool) {
	if s == "" {
		return FillForward, true
	}

	switch FillStrategy(s) {
	case FillForward, FillBackward, FillMin, FillMax, FillMean, FillZero, FillOne:
		return FillStrategy(s), true
	default:
		return "", false
	}
}

// currency symbols recognized as column prefixes
var currencySymbols = []string{"$", "€", "£", "¥", "₹", "₱"}

// a single column after cleaning and type inference
type CleanColumn struct {
	Label    string         `json:"label"`
	Dtype    ColumnDataType `json:"dtype"`
	Currency string         `json:"currency,omitempty"`
	Rows     []string       `json:"rows"`
}

// the full output of a cleaning run
type Result struct {
	CSV     string        `json:"csv"`
	Columns []CleanColumn `json:"columns"`
}

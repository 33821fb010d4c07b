package columns

import (
	"codeberg.org/da-project/server/internal/csvclean"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Column struct {
	ID       int64                   `json:"-"`
	ReportID int64                   `json:"-"`
	Label    string                  `json:"label"`
	Dtype    csvclean.ColumnDataType `json:"column_type"`
	Currency string                  `json:"currency,omitempty"`
	Rows     string                  `json:"-"` // comma-joined row values
}

// filters applied when listing a report's columns
type ListFilter struct {
	Labels []string
	Dtype  csvclean.ColumnDataType
	Limit  int
	Offset int
}

// ColumnResponse is the wire shape with rows split into values
type ColumnResponse struct {
	Label    string                  `json:"label"`
	Dtype    csvclean.ColumnDataType `json:"column_type"`
	Currency string                  `json:"currency,omitempty"`
	Rows     []string                `json:"rows"`
}

func (c *Column) Response() ColumnResponse {
	return ColumnResponse{
		Label:    c.Label,
		Dtype:    c.Dtype,
		Currency: c.Currency,
		Rows:     c.RowValues(),
	}
}

func Responses(columns []Column) []ColumnResponse {
	responses := make([]ColumnResponse, 0, len(columns))

	for i := range columns {
		responses = append(responses, columns[i].Response())
	}

	return responses
}

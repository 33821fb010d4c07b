package columns

import (
	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/internal/csvclean"
)

// ColumnsListResponse wraps a report's columns with pagination
type ColumnsListResponse struct {
	Columns    []columns.ColumnResponse `json:"columns"`
	Pagination pagination.Meta          `json:"pagination"`
}

// ColumnValueResponse is the result of an aggregate operation on a column
type ColumnValueResponse struct {
	Label     string                  `json:"label"`
	Dtype     csvclean.ColumnDataType `json:"column_type"`
	Operation columns.Operation       `json:"operation,omitempty"`
	Value     any                     `json:"value"`
}

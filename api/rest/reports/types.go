package reports

import (
	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/reports"
)

// ReportsListResponse wraps a list of reports with pagination
type ReportsListResponse struct {
	Reports    []reports.Report `json:"reports"`
	Pagination pagination.Meta  `json:"pagination"`
}

// ReportWithColumnsResponse is returned on creation: the stored report
// plus the columns derived from its cleaned CSV
type ReportWithColumnsResponse struct {
	Report  reports.Report           `json:"report"`
	Columns []columns.ColumnResponse `json:"columns"`
}

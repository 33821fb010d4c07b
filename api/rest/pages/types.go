package pages

import (
	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/pages"
)

// PagesListResponse wraps a report's pages with pagination
type PagesListResponse struct {
	Pages      []pages.Page    `json:"pages"`
	Pagination pagination.Meta `json:"pagination"`
}

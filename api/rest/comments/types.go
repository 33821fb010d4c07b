package comments

import (
	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/comments"
)

// CommentsListResponse wraps a page's comments with pagination
type CommentsListResponse struct {
	Comments   []comments.Comment `json:"comments"`
	Pagination pagination.Meta    `json:"pagination"`
}

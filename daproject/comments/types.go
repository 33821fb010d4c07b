package comments

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Comment struct {
	ID        int64     `json:"comment_id"`
	PageID    int64     `json:"page_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text,omitempty" binding:"omitempty,max=5000"`
}

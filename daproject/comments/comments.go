package comments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCommentNotFound = errors.New("comment not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// translates pgx's no-rows into the package sentinel so callers can
// distinguish a missing comment from a database failure
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCommentNotFound
	}

	return err
}

func (r *Repository) Create(ctx context.Context, pageID int64, req CreateCommentRequest) (*Comment, error) {
	var comment Comment

	err := r.db.QueryRow(ctx, queryCreate, pageID, req.Text).Scan(
		&comment.ID,
		&comment.PageID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &comment, nil
}

func (r *Repository) List(
	ctx context.Context,
	reportID, pageID int64,
	limit, offset int,
) ([]Comment, int, error) {
	// get total count first
	var total int
	if err := r.db.QueryRow(ctx, queryCountByPage, reportID, pageID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, reportID, pageID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var comments []Comment

	for rows.Next() {
		var comment Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PageID,
			&comment.Text,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *Repository) Update(
	ctx context.Context,
	reportID, pageID, commentID int64,
	req UpdateCommentRequest,
) (*Comment, error) {
	var comment Comment

	err := r.db.QueryRow(ctx, queryUpdate, req.Text, reportID, pageID, commentID).Scan(
		&comment.ID,
		&comment.PageID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &comment, nil
}

func (r *Repository) Delete(
	ctx context.Context,
	reportID, pageID, commentID int64,
) (*Comment, error) {
	var comment Comment

	err := r.db.QueryRow(ctx, queryDelete, reportID, pageID, commentID).Scan(
		&comment.ID,
		&comment.PageID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &comment, nil
}

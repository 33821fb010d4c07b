package columns

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/da-project/server/internal/csvclean"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrColumnNotFound = errors.New("column not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts one column row per cleaned column of a report
func (r *Repository) CreateBatch(
	ctx context.Context,
	reportID int64,
	cleaned []csvclean.CleanColumn,
) ([]Column, error) {
	columns := make([]Column, 0, len(cleaned))

	for _, clean := range cleaned {
		var currency *string
		if clean.Currency != "" {
			currency = &clean.Currency
		}

		var column Column
		var scanned *string

		err := r.db.QueryRow(
			ctx,
			queryCreate,
			reportID,
			clean.Label,
			string(clean.Dtype),
			currency,
			strings.Join(clean.Rows, ","),
		).Scan(
			&column.ID,
			&column.ReportID,
			&column.Label,
			&column.Dtype,
			&scanned,
			&column.Rows,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to insert column %q: %w", clean.Label, err)
		}

		if scanned != nil {
			column.Currency = *scanned
		}

		columns = append(columns, column)
	}

	return columns, nil
}

func (r *Repository) List(ctx context.Context, reportID int64, filter ListFilter) ([]Column, int, error) {
	where := " WHERE report_id = $1"
	args := []any{reportID}

	if len(filter.Labels) > 0 {
		args = append(args, filter.Labels)
		where += fmt.Sprintf(" AND label = ANY($%d)", len(args))
	}

	if filter.Dtype != "" {
		args = append(args, string(filter.Dtype))
		where += fmt.Sprintf(" AND dtype = $%d", len(args))
	}

	// count with the same filters applied
	var total int
	if err := r.db.QueryRow(ctx, queryCountBase+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := queryListBase + where

	// LIMIT NULL means no limit
	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))

	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var columns []Column

	for rows.Next() {
		var column Column
		var currency *string

		err := rows.Scan(
			&column.ID,
			&column.ReportID,
			&column.Label,
			&column.Dtype,
			&currency,
			&column.Rows,
		)
		if err != nil {
			return nil, 0, err
		}

		if currency != nil {
			column.Currency = *currency
		}

		columns = append(columns, column)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return columns, total, nil
}

func (r *Repository) GetByLabel(ctx context.Context, reportID int64, label string) (*Column, error) {
	var column Column
	var currency *string

	err := r.db.QueryRow(ctx, queryGetByLabel, reportID, label).Scan(
		&column.ID,
		&column.ReportID,
		&column.Label,
		&column.Dtype,
		&currency,
		&column.Rows,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrColumnNotFound
		}

		return nil, err
	}

	if currency != nil {
		column.Currency = *currency
	}

	return &column, nil
}

// RowValues splits the stored comma-joined rows into individual values
func (c *Column) RowValues() []string {
	if c.Rows == "" {
		return []string{}
	}

	return strings.Split(c.Rows, ",")
}

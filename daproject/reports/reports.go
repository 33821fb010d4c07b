package reports

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrReportNotFound = errors.New("report not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// translates pgx's no-rows into the package sentinel so callers can
// distinguish a missing report from a database failure
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrReportNotFound
	}

	return err
}

func (r *Repository) Create(
	ctx context.Context,
	name string,
	rawCSV []byte,
	cleanCSV string,
	overview string,
) (*Report, error) {
	var report Report

	err := r.db.QueryRow(ctx, queryCreate, name, rawCSV, cleanCSV, overview).Scan(
		&report.ID,
		&report.Name,
		&report.RawCSV,
		&report.CleanCSV,
		&report.Overview,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &report, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Report, int, error) {
	// get total count first
	var total int
	if err := r.db.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var reports []Report

	for rows.Next() {
		var report Report
		err := rows.Scan(
			&report.ID,
			&report.Name,
			&report.RawCSV,
			&report.CleanCSV,
			&report.Overview,
			&report.CreatedAt,
			&report.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *Repository) Get(ctx context.Context, reportID int64) (*Report, error) {
	var report Report

	err := r.db.QueryRow(ctx, queryGet, reportID).Scan(
		&report.ID,
		&report.Name,
		&report.RawCSV,
		&report.CleanCSV,
		&report.Overview,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &report, nil
}

func (r *Repository) Exists(ctx context.Context, reportID int64) (bool, error) {
	var exists bool

	if err := r.db.QueryRow(ctx, queryExists, reportID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Update(
	ctx context.Context,
	reportID int64,
	req UpdateReportRequest,
) (*Report, error) {
	var report Report

	err := r.db.QueryRow(ctx, queryUpdate, req.Name, req.Overview, reportID).Scan(
		&report.ID,
		&report.Name,
		&report.RawCSV,
		&report.CleanCSV,
		&report.Overview,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &report, nil
}

func (r *Repository) Delete(ctx context.Context, reportID int64) (*Report, error) {
	var report Report

	err := r.db.QueryRow(ctx, queryDelete, reportID).Scan(
		&report.ID,
		&report.Name,
		&report.RawCSV,
		&report.CleanCSV,
		&report.Overview,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &report, nil
}

package pages

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPageNotFound = errors.New("page not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// translates pgx's no-rows into the package sentinel so callers can
// distinguish a missing page from a database failure
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPageNotFound
	}

	return err
}

func (r *Repository) Create(
	ctx context.Context,
	reportID int64,
	req CreatePageRequest,
	overview string,
) (*Page, error) {
	var page Page

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		reportID,
		req.Name,
		overview,
		string(req.ChartType),
		req.Labels,
	).Scan(
		&page.ID,
		&page.ReportID,
		&page.Name,
		&page.Overview,
		&page.ChartType,
		&page.Labels,
		&page.CreatedAt,
		&page.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &page, nil
}

func (r *Repository) List(ctx context.Context, reportID int64, limit, offset int) ([]Page, int, error) {
	// get total count first
	var total int
	if err := r.db.QueryRow(ctx, queryCountByReport, reportID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, reportID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var pages []Page

	for rows.Next() {
		var page Page
		err := rows.Scan(
			&page.ID,
			&page.ReportID,
			&page.Name,
			&page.Overview,
			&page.ChartType,
			&page.Labels,
			&page.CreatedAt,
			&page.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return pages, total, nil
}

func (r *Repository) Get(ctx context.Context, reportID, pageID int64) (*Page, error) {
	var page Page

	err := r.db.QueryRow(ctx, queryGet, reportID, pageID).Scan(
		&page.ID,
		&page.ReportID,
		&page.Name,
		&page.Overview,
		&page.ChartType,
		&page.Labels,
		&page.CreatedAt,
		&page.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &page, nil
}

func (r *Repository) Update(
	ctx context.Context,
	reportID, pageID int64,
	req UpdatePageRequest,
) (*Page, error) {
	var page Page

	var chartType *string
	if req.ChartType != nil {
		s := string(*req.ChartType)
		chartType = &s
	}

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Name,
		req.Overview,
		chartType,
		req.Labels,
		reportID,
		pageID,
	).Scan(
		&page.ID,
		&page.ReportID,
		&page.Name,
		&page.Overview,
		&page.ChartType,
		&page.Labels,
		&page.CreatedAt,
		&page.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &page, nil
}

func (r *Repository) Delete(ctx context.Context, reportID, pageID int64) (*Page, error) {
	var page Page

	err := r.db.QueryRow(ctx, queryDelete, reportID, pageID).Scan(
		&page.ID,
		&page.ReportID,
		&page.Name,
		&page.Overview,
		&page.ChartType,
		&page.Labels,
		&page.CreatedAt,
		&page.UpdatedAt,
	)

	if err != nil {
		return nil, notFound(err)
	}

	return &page, nil
}

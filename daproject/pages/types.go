package pages

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// how a page renders its selected columns
type ChartType string

const (
	ChartBar     ChartType = "BAR_CHART"
	ChartPie     ChartType = "PIE_CHART"
	ChartTrend   ChartType = "TREND_CHART"
	ChartScatter ChartType = "SCATTER_PLOT"
)

type Page struct {
	ID        int64     `json:"page_id"`
	ReportID  int64     `json:"report_id"`
	Name      string    `json:"name"`
	Overview  string    `json:"page_overview"`
	ChartType ChartType `json:"chart_type"`
	Labels    string    `json:"labels"` // comma-separated column labels shown on the page
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePageRequest struct {
	Name      string    `json:"name" binding:"required,max=200"`
	ChartType ChartType `json:"chart_type" binding:"required,oneof=BAR_CHART PIE_CHART TREND_CHART SCATTER_PLOT"`
	Labels    string    `json:"labels" binding:"required,max=2000"`
}

type UpdatePageRequest struct {
	Name      *string    `json:"name,omitempty" binding:"omitempty,max=200"`
	Overview  *string    `json:"page_overview,omitempty" binding:"omitempty,max=20000"`
	ChartType *ChartType `json:"chart_type,omitempty" binding:"omitempty,oneof=BAR_CHART PIE_CHART TREND_CHART SCATTER_PLOT"`
	Labels    *string    `json:"labels,omitempty" binding:"omitempty,max=2000"`
}

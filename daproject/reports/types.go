package reports

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Report struct {
	ID        int64     `json:"report_id"`
	Name      string    `json:"name"`
	RawCSV    []byte    `json:"-"` // original upload, kept for re-cleaning
	CleanCSV  string    `json:"clean_csv"`
	Overview  string    `json:"report_overview"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateReportRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Overview *string `json:"report_overview,omitempty" binding:"omitempty,max=20000"`
}

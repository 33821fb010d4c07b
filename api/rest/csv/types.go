package csv

import "codeberg.org/da-project/server/internal/csvclean"

// CleanResponse holds the cleaned CSV and the typed columns derived from it
type CleanResponse struct {
	CSV     string                 `json:"csv"`
	Columns []csvclean.CleanColumn `json:"columns"`
}

package columns

const (
	queryCreate = `
		INSERT INTO report_columns (report_id, label, dtype, currency, rows)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, report_id, label, dtype, currency, rows
	`

	queryListBase = `
		SELECT id, report_id, label, dtype, currency, rows
		FROM report_columns
	`

	queryCountBase = `
		SELECT COUNT(*)
		FROM report_columns
	`

	queryGetByLabel = `
		SELECT id, report_id, label, dtype, currency, rows
		FROM report_columns
		WHERE report_id = $1 AND label = $2
	`
)

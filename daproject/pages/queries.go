package pages

const (
	queryCreate = `
		INSERT INTO report_pages (report_id, name, overview, chart_type, labels)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, report_id, name, overview, chart_type, labels, created_at, updated_at
	`

	queryCountByReport = `
		SELECT COUNT(*) FROM report_pages WHERE report_id = $1
	`

	queryList = `
		SELECT id, report_id, name, overview, chart_type, labels, created_at, updated_at
		FROM report_pages
		WHERE report_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryGet = `
		SELECT id, report_id, name, overview, chart_type, labels, created_at, updated_at
		FROM report_pages
		WHERE report_id = $1 AND id = $2
	`

	queryUpdate = `
		UPDATE report_pages
		SET name = COALESCE($1, name),
		    overview = COALESCE($2, overview),
		    chart_type = COALESCE($3, chart_type),
		    labels = COALESCE($4, labels),
		    updated_at = NOW()
		WHERE report_id = $5 AND id = $6
		RETURNING id, report_id, name, overview, chart_type, labels, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM report_pages
		WHERE report_id = $1 AND id = $2
		RETURNING id, report_id, name, overview, chart_type, labels, created_at, updated_at
	`
)

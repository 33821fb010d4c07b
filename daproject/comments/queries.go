package comments

const (
	queryCreate = `
		INSERT INTO page_comments (page_id, text)
		VALUES ($1, $2)
		RETURNING id, page_id, text, created_at, updated_at
	`

	// comments are scoped through their page's report
	queryCountByPage = `
		SELECT COUNT(*)
		FROM page_comments c
		JOIN report_pages p ON c.page_id = p.id
		WHERE p.report_id = $1 AND c.page_id = $2
	`

	queryList = `
		SELECT c.id, c.page_id, c.text, c.created_at, c.updated_at
		FROM page_comments c
		JOIN report_pages p ON c.page_id = p.id
		WHERE p.report_id = $1 AND c.page_id = $2
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`

	queryUpdate = `
		UPDATE page_comments c
		SET text = COALESCE($1, text),
		    updated_at = NOW()
		FROM report_pages p
		WHERE c.page_id = p.id AND p.report_id = $2 AND c.page_id = $3 AND c.id = $4
		RETURNING c.id, c.page_id, c.text, c.created_at, c.updated_at
	`

	queryDelete = `
		DELETE FROM page_comments c
		USING report_pages p
		WHERE c.page_id = p.id AND p.report_id = $1 AND c.page_id = $2 AND c.id = $3
		RETURNING c.id, c.page_id, c.text, c.created_at, c.updated_at
	`
)

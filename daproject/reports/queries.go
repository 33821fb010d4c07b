package reports

const (
	queryCreate = `
		INSERT INTO reports (name, raw_csv, clean_csv, overview)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, raw_csv, clean_csv, overview, created_at, updated_at
	`

	queryCount = `
		SELECT COUNT(*) FROM reports
	`

	queryList = `
		SELECT id, name, raw_csv, clean_csv, overview, created_at, updated_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryGet = `
		SELECT id, name, raw_csv, clean_csv, overview, created_at, updated_at
		FROM reports
		WHERE id = $1
	`

	queryExists = `
		SELECT EXISTS (SELECT 1 FROM reports WHERE id = $1)
	`

	queryUpdate = `
		UPDATE reports
		SET name = COALESCE($1, name),
		    overview = COALESCE($2, overview),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, raw_csv, clean_csv, overview, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM reports
		WHERE id = $1
		RETURNING id, name, raw_csv, clean_csv, overview, created_at, updated_at
	`
)

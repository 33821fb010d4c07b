package storage

// executed in order; later tables reference earlier ones
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS reports (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		raw_csv BYTEA,
		clean_csv TEXT NOT NULL DEFAULT '',
		overview TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS report_columns (
		id BIGSERIAL PRIMARY KEY,
		report_id BIGINT NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		dtype TEXT NOT NULL DEFAULT 'STRING',
		currency TEXT,
		rows TEXT NOT NULL DEFAULT ''
	)
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_report_columns_report_label
		ON report_columns (report_id, label)
	`,
	`
	CREATE TABLE IF NOT EXISTS report_pages (
		id BIGSERIAL PRIMARY KEY,
		report_id BIGINT NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		overview TEXT NOT NULL DEFAULT '',
		chart_type TEXT NOT NULL,
		labels TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS page_comments (
		id BIGSERIAL PRIMARY KEY,
		page_id BIGINT NOT NULL REFERENCES report_pages(id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`,
}

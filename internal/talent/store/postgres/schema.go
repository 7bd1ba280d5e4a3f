package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema creates the talent tables. Applied idempotently at startup and by
// the integration test harness.
const Schema = `
CREATE TABLE IF NOT EXISTS talents (
	id                        BIGSERIAL PRIMARY KEY,
	unique_id                 TEXT NOT NULL UNIQUE,
	first_name                TEXT NOT NULL,
	last_name                 TEXT NOT NULL,
	email                     TEXT NOT NULL,
	date_of_birth             TEXT NOT NULL,
	gender                    TEXT NOT NULL,
	mobile                    TEXT NOT NULL,
	nationality               TEXT NOT NULL,
	area                      TEXT NOT NULL,
	height                    INT NOT NULL,
	tshirt_size               TEXT NOT NULL,
	shirt_size                TEXT NOT NULL,
	years_experience          INT NOT NULL DEFAULT 0,
	talent_type               TEXT NOT NULL,
	artist_performer_details  TEXT NOT NULL DEFAULT '',
	previous_experience       TEXT NOT NULL DEFAULT '',
	brands_worked_for         TEXT NOT NULL DEFAULT '',
	status                    TEXT NOT NULL DEFAULT 'pending',
	created_at                TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS documents (
	id          UUID PRIMARY KEY,
	talent_id   BIGINT NOT NULL REFERENCES talents(id) ON DELETE CASCADE,
	type        TEXT NOT NULL,
	file_name   TEXT NOT NULL,
	file_data   TEXT NOT NULL,
	mime_type   TEXT NOT NULL,
	expiry_date TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS documents_talent_id_idx ON documents (talent_id);
`

// EnsureSchema applies the schema.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply talent schema: %w", err)
	}
	return nil
}

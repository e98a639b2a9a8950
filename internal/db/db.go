package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate bootstraps the schema. Statements are idempotent so every start
// is safe against an existing database.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              SERIAL PRIMARY KEY,
			name            TEXT NOT NULL DEFAULT '',
			email           TEXT NOT NULL UNIQUE,
			password        TEXT NOT NULL,
			assistant_name  TEXT NOT NULL DEFAULT 'Jarvish',
			assistant_image TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id               SERIAL PRIMARY KEY,
			user_id          INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			command          TEXT NOT NULL,
			response         TEXT NOT NULL,
			source_event_key TEXT UNIQUE,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS history_user_id_idx ON history (user_id, id DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

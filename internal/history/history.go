package history

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"
)

// Entry is one resolved assistant command.
type Entry struct {
	ID        int       `json:"id"`
	Command   string    `json:"command"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// KeyFromRequest returns the client idempotency key, if any. A duplicate
// key turns the insert into a no-op so client retries don't double-log.
func KeyFromRequest(r *http.Request) string {
	// preferred: Idempotency-Key header
	if k := strings.TrimSpace(r.Header.Get("Idempotency-Key")); k != "" {
		return k
	}
	// fallback
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

// Log inserts one history row. Failures are swallowed: losing a history
// row must never break the command flow.
func Log(ctx context.Context, db *sql.DB, userID int, command, response, sourceKey string) {
	if command == "" {
		return
	}

	if sourceKey != "" {
		_, _ = db.ExecContext(ctx, `
			INSERT INTO history (user_id, command, response, source_event_key, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (source_event_key) DO NOTHING
		`, userID, command, response, sourceKey, time.Now().UTC())
		return
	}

	_, _ = db.ExecContext(ctx, `
		INSERT INTO history (user_id, command, response, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, command, response, time.Now().UTC())
}

// List returns the user's most recent entries, newest first.
func List(ctx context.Context, db *sql.DB, userID, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, command, response, created_at
		FROM history
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Command, &e.Response, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

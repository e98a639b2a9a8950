package assistant

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"jarvish-backend/internal/auth"
	"jarvish-backend/internal/history"
)

// AskHandler resolves POST /assistant commands for the logged-in user. The
// command is wrapped with the user's assistant persona before resolution;
// the engine strips that wrapper again for local classification.
func AskHandler(dbx *sql.DB, engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Command string `json:"command"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(body.Command) == "" {
			http.Error(w, "command is required", http.StatusBadRequest)
			return
		}

		var assistantName, userName sql.NullString
		_ = dbx.QueryRow(
			`SELECT assistant_name, name FROM users WHERE id=$1`, uid,
		).Scan(&assistantName, &userName)

		prompt := BuildPrompt(assistantName.String, userName.String, body.Command, time.Now())

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		response, err := engine.Resolve(ctx, prompt)
		if err != nil {
			log.Printf("❌ resolve failed: %v", err)
			http.Error(w, "assistant error", http.StatusInternalServerError)
			return
		}

		history.Log(r.Context(), dbx, uid, body.Command, response, history.KeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": response,
		})
	}
}

package users

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jarvish-backend/internal/auth"
	"jarvish-backend/internal/history"
)

// CurrentHandler: GET /user/current
func CurrentHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var name, email, assistantName, assistantImage string
		err := dbx.QueryRow(`
			SELECT name, email, assistant_name, assistant_image
			FROM users WHERE id=$1
		`, uid).Scan(&name, &email, &assistantName, &assistantImage)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user_id":         uid,
			"name":            name,
			"email":           email,
			"assistant_name":  assistantName,
			"assistant_image": assistantImage,
		})
	}
}

// UpdateAssistantHandler: POST /user/assistant, assistant customization
// (name + avatar URL).
func UpdateAssistantHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			AssistantName string `json:"assistant_name"`
			ImageURL      string `json:"image_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(body.AssistantName) == "" {
			http.Error(w, "assistant_name is required", http.StatusBadRequest)
			return
		}

		_, err := dbx.Exec(`
			UPDATE users SET assistant_name=$1, assistant_image=$2 WHERE id=$3
		`, strings.TrimSpace(body.AssistantName), strings.TrimSpace(body.ImageURL), uid)
		if err != nil {
			http.Error(w, "db update error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":              true,
			"assistant_name":  strings.TrimSpace(body.AssistantName),
			"assistant_image": strings.TrimSpace(body.ImageURL),
		})
	}
}

// HistoryHandler: GET /user/history?limit=N
func HistoryHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries, err := history.List(r.Context(), dbx, uid, limit)
		if err != nil {
			http.Error(w, "db query error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"history": entries,
		})
	}
}

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"jarvish-backend/internal/assistant"
	"jarvish-backend/internal/auth"
	"jarvish-backend/internal/config"
	"jarvish-backend/internal/db"
	"jarvish-backend/internal/gemini"
	"jarvish-backend/internal/reminders"
	"jarvish-backend/internal/users"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	if err := db.Migrate(context.Background(), database); err != nil {
		log.Fatal("❌ Failed to migrate DB:", err)
	}

	log.Println("✅ Connected to PostgreSQL!")

	// ----------------------
	//   ASSISTANT ENGINE
	// ----------------------

	store := reminders.NewStore()
	sched := reminders.NewScheduler(store, nil)
	go sched.Run(context.Background())

	provider := gemini.New(cfg.GeminiKey, cfg.GeminiModel)
	if !provider.Configured() {
		log.Println("⚠️ GEMINI_API_KEY not configured, using local responses only")
	}

	engine := assistant.New(store, sched, provider)

	// ----------------------
	//        ROUTES
	// ----------------------

	secret := []byte(cfg.JWTSecret)
	protect := auth.New(secret)

	askH := protect.Wrap(assistant.AskHandler(database, engine))
	currentH := protect.Wrap(users.CurrentHandler(database))
	updateAssistantH := protect.Wrap(users.UpdateAssistantHandler(database))
	historyH := protect.Wrap(users.HistoryHandler(database))
	deleteAccountH := protect.Wrap(auth.DeleteAccountHandler(database))

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH API -----
	mux.HandleFunc("/auth/register", postOnly(auth.RegisterHandler(database, secret)))
	mux.HandleFunc("/auth/login", postOnly(auth.LoginHandler(database, secret)))
	mux.HandleFunc("/auth/logout", postOnly(auth.LogoutHandler()))

	mux.HandleFunc("/auth/account", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deleteAccountH(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// ----- ASSISTANT API -----
	mux.HandleFunc("/assistant", postOnly(askH))

	// ----- USER API -----
	mux.HandleFunc("/user/current", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			currentH(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/user/assistant", postOnly(updateAssistantH))

	mux.HandleFunc("/user/history", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			historyH(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}

func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			next(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

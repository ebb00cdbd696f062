package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bookly/backend/internal/mail"
	"github.com/bookly/backend/internal/repository"
)

// Handler holds the cross-cutting dependencies for the infrastructure
// endpoints (health, test email) and the CORS middleware.
type Handler struct {
	db          repository.DB
	mailer      mail.Mailer
	adminEmail  string
	frontendURL string
}

// New creates a Handler. adminEmail receives health alerts and test mail.
func New(db repository.DB, mailer mail.Mailer, adminEmail, frontendURL string) *Handler {
	return &Handler{db: db, mailer: mailer, adminEmail: adminEmail, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

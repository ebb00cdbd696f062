package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bookly/backend/internal/mail"
)

type checkResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

type healthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]checkResult `json:"checks"`
}

// Health handles GET /api/health. It pings the database; on failure it sends
// a best-effort alert email to the admin and answers 503 with the check
// detail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("X-Health-Check", "true")

	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("health check: database ping failed", "error", err)
		h.sendHealthAlert(r, err)

		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "error",
			Timestamp: now,
			Checks: map[string]checkResult{
				"database": {Status: "error", Timestamp: now, Error: err.Error()},
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: now,
		Checks: map[string]checkResult{
			"database": {Status: "ok", Timestamp: now},
		},
	})
}

// sendHealthAlert emails the admin about a failed database check. A mail
// failure here only gets logged; the health response is already a 503.
func (h *Handler) sendHealthAlert(r *http.Request, dbErr error) {
	msg := mail.Message{
		To:      h.adminEmail,
		Subject: "Database Connection Error",
		HTML: fmt.Sprintf(
			"<h1>Database Connection Error</h1>"+
				"<p><strong>Time:</strong> %s</p>"+
				"<p><strong>Error:</strong> %s</p>"+
				"<p>Please check the database server and connection settings.</p>",
			time.Now().UTC().Format(time.RFC3339), dbErr),
	}
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		slog.Error("health check: alert mail failed", "error", err)
	}
}

// TestEmail handles GET /api/test-email. It sends a probe message to the
// admin address so SMTP settings can be verified from a browser.
func (h *Handler) TestEmail(w http.ResponseWriter, r *http.Request) {
	msg := mail.Message{
		To:      h.adminEmail,
		Subject: "Test Email",
		HTML: fmt.Sprintf(
			"<h1>Email Test Successful</h1>"+
				"<p>This is a test message.</p>"+
				"<p><strong>Sent at:</strong> %s</p>"+
				"<p>If you are reading this, the SMTP configuration works.</p>",
			time.Now().UTC().Format(time.RFC3339)),
	}

	if err := h.mailer.Send(r.Context(), msg); err != nil {
		slog.Error("test email failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "test email sent",
		"sent_to": h.adminEmail,
	})
}

package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bookly/backend/internal/model"
	"github.com/bookly/backend/internal/service"
	"github.com/bookly/backend/pkg/auth"
)

// csvHeader is the fixed, localized header row of the export file.
var csvHeader = []string{"Nombre", "Email", "Mensaje", "Estado", "Fecha de creación"}

// ExportHandler streams the filtered contact set as a CSV download.
type ExportHandler struct {
	contactService service.ContactService
}

// NewExportHandler creates an ExportHandler with the given service.
func NewExportHandler(contactService service.ContactService) *ExportHandler {
	return &ExportHandler{contactService: contactService}
}

// Export handles GET /admin/contacts/export.csv. It is a raw endpoint rather
// than a page flow, so it checks the session sentinel itself and answers 401
// instead of redirecting. The search/status filter matches the listing; the
// result is never paginated and is ordered newest first.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAuthenticated(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := model.ContactFilter{
		Search: q.Get("search"),
		Status: model.ContactStatus(q.Get("status")),
	}

	contacts, err := h.contactService.Export(r.Context(), filter)
	if err != nil {
		slog.Error("contact export failed", "error", err)
		http.Error(w, "Error generating export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=contactos.csv")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Pragma", "no-cache")
	_, _ = w.Write([]byte(exportCSV(contacts)))
}

// exportCSV renders the export file: a header row, then one row per record.
// Name and message are quote-wrapped with inner quotes doubled; email, status
// and the ISO-8601 timestamp are written bare.
func exportCSV(contacts []*model.Contact) string {
	rows := make([]string, 0, len(contacts)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, c := range contacts {
		rows = append(rows, strings.Join([]string{
			quoteCSV(c.Name),
			c.Email,
			quoteCSV(c.Message),
			string(c.Status),
			c.CreatedAt.UTC().Format(time.RFC3339),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// quoteCSV wraps v in double quotes, doubling any quote characters inside.
func quoteCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

package handler

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bookly/backend/internal/model"
	"github.com/bookly/backend/pkg/auth"
)

func exportRequest(target string, authenticated bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authenticated {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: auth.SessionValue})
	}
	return req
}

func TestExportHandler_RequiresSessionCookie(t *testing.T) {
	h := NewExportHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.Export(rec, exportRequest("/admin/contacts/export.csv", false))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without the session cookie, got %d", rec.Code)
	}
}

func TestExportHandler_RejectsWrongCookieValue(t *testing.T) {
	h := NewExportHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts/export.csv", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: "forged"})
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a non-sentinel cookie value, got %d", rec.Code)
	}
}

func TestExportHandler_ForwardsFilter(t *testing.T) {
	var captured model.ContactFilter
	mock := &mockContactService{
		exportFunc: func(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error) {
			captured = f
			return nil, nil
		},
	}
	h := NewExportHandler(mock)

	rec := httptest.NewRecorder()
	h.Export(rec, exportRequest("/admin/contacts/export.csv?search=ada&status=SPAM", true))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Search != "ada" || captured.Status != model.StatusSpam {
		t.Errorf("expected filter forwarded, got %+v", captured)
	}
}

func TestExportHandler_Headers(t *testing.T) {
	h := NewExportHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.Export(rec, exportRequest("/admin/contacts/export.csv", true))

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected Content-Type=text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "attachment; filename=contactos.csv" {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("expected Cache-Control=no-cache, got %q", cc)
	}
	if p := rec.Header().Get("Pragma"); p != "no-cache" {
		t.Errorf("expected Pragma=no-cache, got %q", p)
	}
}

func TestExportHandler_CSVQuoteEscapingRoundTrips(t *testing.T) {
	created := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	message := `She said "hello", then left.`
	mock := &mockContactService{
		exportFunc: func(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error) {
			return []*model.Contact{{
				ID:        "c-1",
				Name:      `Ada "The Countess" Lovelace`,
				Email:     "ada@example.com",
				Message:   message,
				Status:    model.StatusNew,
				CreatedAt: created,
			}}, nil
		},
	}
	h := NewExportHandler(mock)

	rec := httptest.NewRecorder()
	h.Export(rec, exportRequest("/admin/contacts/export.csv", true))

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header := records[0]
	want := []string{"Nombre", "Email", "Mensaje", "Estado", "Fecha de creación"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d]: expected %q, got %q", i, col, header[i])
		}
	}

	row := records[1]
	if row[0] != `Ada "The Countess" Lovelace` {
		t.Errorf("name did not round-trip: %q", row[0])
	}
	if row[2] != message {
		t.Errorf("message did not round-trip: %q", row[2])
	}
	if row[1] != "ada@example.com" || row[3] != "NEW" {
		t.Errorf("unexpected bare fields: %v", row)
	}
	if row[4] != "2026-03-14T15:09:26Z" {
		t.Errorf("expected ISO-8601 timestamp, got %q", row[4])
	}
}

func TestExportHandler_EmptySetStillHasHeader(t *testing.T) {
	h := NewExportHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.Export(rec, exportRequest("/admin/contacts/export.csv", true))

	if got := strings.TrimRight(rec.Body.String(), "\n"); got != "Nombre,Email,Mensaje,Estado,Fecha de creación" {
		t.Errorf("expected header-only body, got %q", got)
	}
}

func TestExportHandler_ServiceError(t *testing.T) {
	mock := &mockContactService{
		exportFunc: func(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error) {
			return nil, errors.New("database error")
		},
	}
	h := NewExportHandler(mock)

	rec := httptest.NewRecorder()
	h.Export(rec, exportRequest("/admin/contacts/export.csv", true))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "database error") {
		t.Error("internal error detail must not leak to the caller")
	}
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bookly/backend/internal/model"
	"github.com/bookly/backend/internal/repository"
	"github.com/bookly/backend/internal/service"
	"github.com/bookly/backend/pkg/auth"
)

// AdminHandler serves the password-protected dashboard flows: login, logout,
// the contact listing and deletion.
type AdminHandler struct {
	contactService service.ContactService
	password       string
	secureCookies  bool
}

// NewAdminHandler creates an AdminHandler. password is the single shared
// admin secret; secureCookies should be true in production.
func NewAdminHandler(contactService service.ContactService, password string, secureCookies bool) *AdminHandler {
	return &AdminHandler{
		contactService: contactService,
		password:       password,
		secureCookies:  secureCookies,
	}
}

// LoginForm handles GET /admin/login. Authenticated visitors never reach it;
// the RedirectAuthenticated middleware sends them to the admin root first.
func (h *AdminHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// Login handles POST /admin/login. On a password match it sets the session
// cookie and redirects to the caller-supplied return path, or the admin root.
// There is no lockout or backoff on mismatch.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	if h.password == "" || r.PostFormValue("password") != h.password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Contraseña incorrecta"})
		return
	}

	auth.SetSessionCookie(w, h.secureCookies)
	http.Redirect(w, r, safeRedirect(r.PostFormValue("redirectTo")), http.StatusSeeOther)
}

// safeRedirect keeps the post-login redirect on this site. Anything that is
// not a local path falls back to the admin root.
func safeRedirect(target string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return auth.AdminRoot
}

// Logout handles POST /admin/logout. It clears the cookie and redirects to
// the login page; no prior authentication is required.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.secureCookies)
	http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
}

// List handles GET /admin and GET /admin/contacts. Query params: page (1-based),
// sort (createdAt/name/email/status), order (asc/desc), search, status.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if !auth.SessionFromContext(r.Context()) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	q := r.URL.Query()
	page := 1
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		page = n
	}

	opts := model.ListOptions{
		Filter: model.ContactFilter{
			Search: q.Get("search"),
			Status: model.ContactStatus(q.Get("status")),
		},
		Sort:  q.Get("sort"),
		Order: q.Get("order"),
		Page:  page,
	}

	result, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.Error("contact listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Delete handles POST /admin/contacts/delete with a form-encoded id field.
// Deleting an id that no longer exists counts as success; the record is gone
// either way.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.SessionFromContext(r.Context()) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	id := r.PostFormValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Contact ID is required"})
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		slog.Error("contact delete failed", "contact_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

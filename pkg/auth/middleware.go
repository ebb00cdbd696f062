package auth

import (
	"context"
	"net/http"
	"net/url"
)

type contextKey string

const sessionKey contextKey = "admin_session"

// LoginPath is where unauthenticated admin requests are redirected.
const LoginPath = "/admin/login"

// AdminRoot is where the login page redirects already-authenticated visitors.
const AdminRoot = "/admin"

// WithSession stores the authenticated flag in the context.
func WithSession(ctx context.Context, authenticated bool) context.Context {
	return context.WithValue(ctx, sessionKey, authenticated)
}

// SessionFromContext returns the authenticated flag set by the middleware.
func SessionFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(sessionKey).(bool)
	return v
}

// Session derives the authenticated state from the request cookie and attaches
// it to the context before any handler runs. It never mutates the cookie.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithSession(r.Context(), IsAuthenticated(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin enforces the admin session on page flows. Unauthenticated
// requests are redirected to the login page with the original path and query
// carried in the redirectTo parameter.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()) {
			target := r.URL.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, LoginPath+"?redirectTo="+url.QueryEscape(target), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectAuthenticated sends already-logged-in visitors away from the login
// page to the admin root.
func RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) {
			http.Redirect(w, r, AdminRoot, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

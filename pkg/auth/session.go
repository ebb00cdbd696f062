package auth

import (
	"net/http"
	"time"
)

const (
	sessionCookieName = "admin_session"

	// SessionValue is the sentinel written on successful login. The cookie is
	// a shared-secret flag, not a signed token; the dashboard it replaces
	// worked the same way and the semantic is kept on purpose.
	SessionValue = "authenticated"

	// CookiePath scopes the session cookie to the admin area.
	CookiePath = "/admin"

	sessionMaxAge = 7 * 24 * time.Hour
)

// SessionCookieName returns the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// IsAuthenticated reports whether the request carries the session sentinel.
func IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	return err == nil && cookie.Value == SessionValue
}

// SetSessionCookie writes the session cookie on a successful login. Secure
// should be true in production.
func SetSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    SessionValue,
		Path:     CookiePath,
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// ClearSessionCookie expires the session cookie with the same attributes it
// was set with.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authedRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: SessionValue})
	return req
}

func TestSession_AttachesAuthenticatedState(t *testing.T) {
	var got bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	Session(inner).ServeHTTP(rec, authedRequest("/admin/contacts"))
	if !got {
		t.Error("expected authenticated state with the sentinel cookie")
	}

	rec = httptest.NewRecorder()
	Session(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/contacts", nil))
	if got {
		t.Error("expected anonymous state without the cookie")
	}
}

func TestSession_RejectsNonSentinelValue(t *testing.T) {
	var got bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "forged"})
	Session(inner).ServeHTTP(httptest.NewRecorder(), req)

	if got {
		t.Error("a non-sentinel cookie value must not authenticate")
	}
}

func TestRequireAdmin_RedirectsWithReturnTarget(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a session")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts?page=2&search=ada", nil)
	rec := httptest.NewRecorder()
	Session(RequireAdmin(inner)).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	want := "/admin/login?redirectTo=%2Fadmin%2Fcontacts%3Fpage%3D2%26search%3Dada"
	if loc := rec.Header().Get("Location"); loc != want {
		t.Errorf("expected %q, got %q", want, loc)
	}
}

func TestRequireAdmin_PassesAuthenticated(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	Session(RequireAdmin(inner)).ServeHTTP(rec, authedRequest("/admin/contacts"))

	if !called {
		t.Error("expected the handler to run with a valid session")
	}
}

func TestRedirectAuthenticated_SendsLoggedInVisitorsAway(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("login page must not render for an authenticated visitor")
	})

	rec := httptest.NewRecorder()
	Session(RedirectAuthenticated(inner)).ServeHTTP(rec, authedRequest("/admin/login"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != AdminRoot {
		t.Errorf("expected redirect to %q, got %q", AdminRoot, loc)
	}
}

func TestRedirectAuthenticated_AllowsAnonymous(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	Session(RedirectAuthenticated(inner)).ServeHTTP(rec, req)

	if !called {
		t.Error("expected the login page to render for an anonymous visitor")
	}
}

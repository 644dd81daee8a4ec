package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/99minutos/admin-users/internal/core/domain"
)

const testCookie = "admin_session"

// sessionCookie issues a session through the store and returns the cookie the
// browser would send back.
func sessionCookie(t *testing.T, secret string, values map[interface{}]interface{}) *http.Cookie {
	t.Helper()
	store := NewCookieStore(secret)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	sess, err := store.New(req, testCookie)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	for k, v := range values {
		sess.Values[k] = v
	}
	if err := sess.Save(req, rec); err != nil {
		t.Fatalf("save session: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestCookieSessionProvider_ValidSession(t *testing.T) {
	cookie := sessionCookie(t, "session-secret", map[interface{}]interface{}{
		SessionSubjectKey: "42",
		SessionRoleKey:    "admin",
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	p := NewCookieSessionProvider(NewCookieStore("session-secret"), testCookie)
	cred, err := p.ResolveCredential(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred == nil || cred.Subject != "42" || cred.Role != "admin" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
}

func TestCookieSessionProvider_NoCookie(t *testing.T) {
	p := NewCookieSessionProvider(NewCookieStore("session-secret"), testCookie)

	cred, err := p.ResolveCredential(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil || cred != nil {
		t.Fatalf("expected no credential and no error, got %+v %v", cred, err)
	}
}

func TestCookieSessionProvider_SessionWithoutSubject(t *testing.T) {
	cookie := sessionCookie(t, "session-secret", map[interface{}]interface{}{SessionRoleKey: "admin"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	p := NewCookieSessionProvider(NewCookieStore("session-secret"), testCookie)
	cred, err := p.ResolveCredential(req)
	if err != nil || cred != nil {
		t.Fatalf("expected no credential and no error, got %+v %v", cred, err)
	}
}

func TestCookieSessionProvider_TamperedCookie(t *testing.T) {
	cookie := sessionCookie(t, "other-secret", map[interface{}]interface{}{
		SessionSubjectKey: "42",
		SessionRoleKey:    "admin",
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	p := NewCookieSessionProvider(NewCookieStore("session-secret"), testCookie)
	cred, err := p.ResolveCredential(req)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if cred != nil {
		t.Fatalf("expected nil credential, got %+v", cred)
	}
}

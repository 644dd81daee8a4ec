package identity

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// Session value keys written by the login flow.
const (
	SessionSubjectKey = "sub"
	SessionRoleKey    = "role"
)

// CookieSessionProvider resolves credentials from a signed cookie session.
type CookieSessionProvider struct {
	store sessions.Store
	name  string
}

func NewCookieSessionProvider(store sessions.Store, name string) *CookieSessionProvider {
	return &CookieSessionProvider{store: store, name: name}
}

// NewCookieStore builds the signed cookie store shared with the login flow.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

func (p *CookieSessionProvider) ResolveCredential(r *http.Request) (*domain.Credential, error) {
	if _, err := r.Cookie(p.name); err != nil {
		return nil, nil
	}

	sess, err := p.store.Get(r, p.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if sess.IsNew {
		return nil, nil
	}

	sub, _ := sess.Values[SessionSubjectKey].(string)
	if sub == "" {
		return nil, nil
	}
	role, _ := sess.Values[SessionRoleKey].(string)

	return &domain.Credential{Subject: sub, Role: role}, nil
}

package service

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/99minutos/admin-users/internal/core/domain"
	"github.com/99minutos/admin-users/internal/core/ports"
)

// Outcome is the result tag of an authorization decision.
type Outcome int

const (
	Unauthenticated Outcome = iota
	Forbidden
	Allowed
)

func (o Outcome) String() string {
	switch o {
	case Forbidden:
		return "forbidden"
	case Allowed:
		return "allowed"
	default:
		return "unauthenticated"
	}
}

// Decision is the tagged result of the admin policy. Credential is set only
// when Outcome is Allowed.
type Decision struct {
	Outcome    Outcome
	Credential *domain.Credential
}

// Err returns nil for Allowed and the sentinel error matching the outcome
// otherwise.
func (d Decision) Err() error {
	switch d.Outcome {
	case Allowed:
		return nil
	case Forbidden:
		return domain.ErrForbidden
	default:
		return domain.ErrUnauthenticated
	}
}

// Decide applies the admin policy to an already resolved credential.
func Decide(cred *domain.Credential) Decision {
	if cred == nil {
		return Decision{Outcome: Unauthenticated}
	}
	if !cred.IsAdmin() {
		return Decision{Outcome: Forbidden}
	}
	return Decision{Outcome: Allowed, Credential: cred}
}

// Guard protects admin-only operations. Both the HTTP middleware and the
// capability check go through Authorize.
type Guard struct {
	provider ports.IdentityProvider
	log      zerolog.Logger
}

func NewGuard(provider ports.IdentityProvider, log zerolog.Logger) *Guard {
	return &Guard{provider: provider, log: log}
}

// Authorize resolves the request credential once and decides. Resolution
// failures are treated as Unauthenticated and never retried.
func (g *Guard) Authorize(r *http.Request) Decision {
	cred, err := g.provider.ResolveCredential(r)
	if err != nil {
		g.log.Warn().Err(err).Str("path", r.URL.Path).Msg("credential resolution failed")
		return Decision{Outcome: Unauthenticated}
	}
	return Decide(cred)
}

// RequireAdmin is the non-terminating variant of Authorize. It returns
// domain.ErrUnauthenticated when no session is present and domain.ErrForbidden
// when the session's role is insufficient.
func (g *Guard) RequireAdmin(r *http.Request) (*domain.Credential, error) {
	d := g.Authorize(r)
	if err := d.Err(); err != nil {
		return nil, err
	}
	return d.Credential, nil
}

package identity

import (
	"net/http"

	"github.com/99minutos/admin-users/internal/core/domain"
	"github.com/99minutos/admin-users/internal/core/ports"
)

// Chain tries providers in order. The first credential found wins; if none
// is found, the first error seen (if any) is returned.
type Chain []ports.IdentityProvider

func (c Chain) ResolveCredential(r *http.Request) (*domain.Credential, error) {
	var firstErr error
	for _, p := range c {
		cred, err := p.ResolveCredential(r)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if cred != nil {
			return cred, nil
		}
	}
	return nil, firstErr
}

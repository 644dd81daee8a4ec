package ports

import (
	"net/http"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// IdentityProvider resolves the caller's credential from an inbound request.
// A nil credential with a nil error means the request carried none.
type IdentityProvider interface {
	ResolveCredential(r *http.Request) (*domain.Credential, error)
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/admin-users/internal/api/metrics"
	"github.com/99minutos/admin-users/internal/core/domain"
	"github.com/99minutos/admin-users/internal/core/service"
)

const (
	MsgNotAuthorized = "Not authorized"
	MsgAdminsOnly    = "Access denied. Admins only."
)

const credentialKey = "credential"

// Authorizer is the decision procedure the route guard delegates to.
type Authorizer interface {
	Authorize(r *http.Request) service.Decision
}

type messageResponse struct {
	Message string `json:"message"`
}

// RequireAdmin rejects requests that are not made by an admin. On success the
// resolved credential is available through CredentialFromContext.
func RequireAdmin(guard Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := guard.Authorize(c.Request())
			metrics.AuthorizationDecisionsTotal.WithLabelValues(d.Outcome.String(), "route").Inc()

			switch d.Outcome {
			case service.Allowed:
				c.Set(credentialKey, d.Credential)
				return next(c)
			case service.Forbidden:
				return c.JSON(http.StatusForbidden, messageResponse{Message: MsgAdminsOnly})
			default:
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: MsgNotAuthorized})
			}
		}
	}
}

// CredentialFromContext returns the credential stored by RequireAdmin, or nil.
func CredentialFromContext(c echo.Context) *domain.Credential {
	cred, _ := c.Get(credentialKey).(*domain.Credential)
	return cred
}

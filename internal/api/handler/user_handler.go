package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/admin-users/internal/api/metrics"
	"github.com/99minutos/admin-users/internal/api/middleware"
	"github.com/99minutos/admin-users/internal/core/ports"
)

// UserHandler serves the admin user endpoints. Routes must be mounted behind
// middleware.RequireAdmin.
type UserHandler struct {
	service ports.UserService
	log     zerolog.Logger
}

func NewUserHandler(service ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// List handles GET /v1/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		metrics.UserListingsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.UserListingsTotal.WithLabelValues("ok").Inc()

	if cred := middleware.CredentialFromContext(c); cred != nil {
		h.log.Info().Str("admin", cred.Subject).Int("total", len(users)).Msg("users listed")
	}
	return c.JSON(http.StatusOK, toListUsersResponse(users))
}

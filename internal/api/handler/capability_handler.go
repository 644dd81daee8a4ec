package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/admin-users/internal/api/metrics"
	"github.com/99minutos/admin-users/internal/core/domain"
)

// AdminChecker is the non-terminating admin check.
type AdminChecker interface {
	RequireAdmin(r *http.Request) (*domain.Credential, error)
}

// CapabilityHandler lets a UI ask whether the current session may use the
// admin surface without being rejected.
type CapabilityHandler struct {
	checker AdminChecker
}

func NewCapabilityHandler(checker AdminChecker) *CapabilityHandler {
	return &CapabilityHandler{checker: checker}
}

// Get handles GET /v1/admin/capabilities.
//
// @Summary      Report admin capability of the current session
// @Tags         admin
// @Produce      json
// @Success      200  {object}  capabilitiesResponse
// @Router       /v1/admin/capabilities [get]
func (h *CapabilityHandler) Get(c echo.Context) error {
	_, err := h.checker.RequireAdmin(c.Request())

	resp := capabilitiesResponse{Admin: err == nil}
	outcome := "allowed"
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		resp.Reason, outcome = "unauthenticated", "unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		resp.Reason, outcome = "forbidden", "forbidden"
	case err != nil:
		return err
	}
	metrics.AuthorizationDecisionsTotal.WithLabelValues(outcome, "capability").Inc()

	return c.JSON(http.StatusOK, resp)
}

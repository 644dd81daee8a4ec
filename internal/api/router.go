package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/admin-users/docs"
	"github.com/99minutos/admin-users/internal/api/handler"
	"github.com/99minutos/admin-users/internal/api/middleware"
	"github.com/99minutos/admin-users/internal/core/domain"
	"github.com/99minutos/admin-users/internal/core/ports"
	"github.com/99minutos/admin-users/internal/core/service"
)

// AdminGuard is the single decision procedure shared by the route guard and
// the capability check.
type AdminGuard interface {
	Authorize(r *http.Request) service.Decision
	RequireAdmin(r *http.Request) (*domain.Credential, error)
}

// Dependencies are the collaborators NewRouter wires into the routes.
type Dependencies struct {
	Guard   AdminGuard
	Users   ports.UserService
	Pingers map[string]handler.Pinger
	Logger  zerolog.Logger

	// Registry receives HTTP metrics and backs /metrics. Defaults to the
	// global Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))

	promCfg := echoprometheus.MiddlewareConfig{Subsystem: "admin_api"}
	metricsHandler := echoprometheus.NewHandler()
	if deps.Registry != nil {
		promCfg.Registerer = deps.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Registry})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users, deps.Logger)
	capabilityHandler := handler.NewCapabilityHandler(deps.Guard)

	// --- Admin routes ---
	admin := e.Group("/v1/admin")
	admin.GET("/capabilities", capabilityHandler.Get)
	admin.GET("/users", userHandler.List, middleware.RequireAdmin(deps.Guard))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Pingers)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tablekit/restaurant-console/docs"
	"github.com/tablekit/restaurant-console/internal/api/handler"
	"github.com/tablekit/restaurant-console/internal/api/middleware"
	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
	"github.com/tablekit/restaurant-console/internal/core/service"
	"github.com/tablekit/restaurant-console/internal/pkg/validation"
)

// Dependencies are the collaborators the console routes are built from.
type Dependencies struct {
	Auth        *service.Authenticator
	Console     *service.Console
	Restaurants ports.RestaurantAPI
	Checkers    []handler.Checker
	Log         zerolog.Logger

	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = validation.New()

	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: registerer,
	}))

	// --- Health, metrics and docs ---
	healthHandler := handler.NewHealthHandler(deps.Checkers...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Console)
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.POST("/session/refresh", authHandler.Refresh)

	// --- Screens ---
	dashboardHandler := handler.NewDashboardHandler(deps.Console)
	e.GET(service.PathDashboard, dashboardHandler.Show)

	restaurantHandler := handler.NewRestaurantHandler(deps.Console, deps.Restaurants)
	e.GET(service.PathRestaurants, restaurantHandler.Index)

	mounted := []echo.MiddlewareFunc{
		middleware.Mounted(deps.Console),
		middleware.RBAC(domain.RoleSuperAdmin),
	}
	screen := e.Group(service.PathRestaurants)
	screen.POST("/reload", restaurantHandler.Reload, mounted...)
	screen.POST("/new", restaurantHandler.New, mounted...)
	screen.POST("/cancel", restaurantHandler.Cancel, mounted...)
	screen.POST("/submit", restaurantHandler.Submit, mounted...)
	screen.GET("/:id", restaurantHandler.Show, mounted...)
	screen.POST("/:id/edit", restaurantHandler.Edit, mounted...)
	screen.DELETE("/:id", restaurantHandler.Delete, mounted...)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
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

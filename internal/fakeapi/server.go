// Package fakeapi is an in-memory implementation of the backend REST surface
// the console consumes: auth, profile and superadmin-only restaurant routes
// under /api/v1, plus /health. It issues real HS256 tokens and answers
// errors with the backend's {"error": "..."} envelope. cmd/fakeapi serves it
// for local development and the console's tests run against it.
package fakeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/pkg/config"
	"github.com/tablekit/restaurant-console/internal/pkg/validation"
)

// Server is the fake backend.
type Server struct {
	*echo.Echo

	auth  *authService
	store *memStore
}

// New builds the server and seeds the configured super admin.
func New(cfg *config.FakeAPIConfig, log zerolog.Logger) (*Server, error) {
	store := newMemStore()
	auth := &authService{
		store:      store,
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}

	s := &Server{Echo: echo.New(), auth: auth, store: store}
	s.HideBanner = true
	s.HidePort = true
	s.HTTPErrorHandler = errorHandler(log)
	s.Validator = validation.New()

	s.Use(echomiddleware.Recover())
	s.Use(echomiddleware.RequestID())

	h := &handlers{auth: auth, store: store}
	s.GET("/health", h.health)

	v1 := s.Group("/api/v1")
	v1.POST("/auth/register", h.register)
	v1.POST("/auth/login", h.login)
	v1.POST("/auth/refresh", h.refresh)

	authed := bearerAuth(auth)
	v1.GET("/me", h.me, authed)

	super := []echo.MiddlewareFunc{authed, requireSuperAdmin}
	v1.GET("/restaurants", h.listRestaurants, super...)
	v1.GET("/restaurants/:id", h.getRestaurant, super...)
	v1.POST("/restaurants", h.createRestaurant, super...)
	v1.PUT("/restaurants/:id", h.updateRestaurant, super...)
	v1.DELETE("/restaurants/:id", h.deleteRestaurant, super...)

	if cfg.SeedEmail != "" {
		if _, err := s.SeedUser(cfg.SeedEmail, cfg.SeedPassword, "Super Admin", domain.RoleSuperAdmin); err != nil {
			return nil, fmt.Errorf("seed super admin: %w", err)
		}
		log.Info().Str("email", cfg.SeedEmail).Msg("seeded super admin")
	}
	return s, nil
}

// SeedUser creates an account with any role; registration only creates
// regular users.
func (s *Server) SeedUser(email, password, name string, role domain.Role) (*domain.User, error) {
	resp, err := s.auth.register(email, password, name, role)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// SeedRestaurant inserts a restaurant directly.
func (s *Server) SeedRestaurant(r domain.Restaurant) domain.Restaurant {
	return s.store.createRestaurant(r)
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := http.StatusInternalServerError, "internal server error"
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code, msg = he.Code, fmt.Sprintf("%v", he.Message)
		case errors.Is(err, domain.ErrUserExists):
			code, msg = http.StatusConflict, "user with this email already exists"
		case errors.Is(err, domain.ErrInvalidCredentials):
			code, msg = http.StatusUnauthorized, "invalid email or password"
		case errors.Is(err, domain.ErrUserNotFound):
			code, msg = http.StatusNotFound, "user not found"
		case errors.Is(err, domain.ErrNotFound):
			code, msg = http.StatusNotFound, "restaurant not found"
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

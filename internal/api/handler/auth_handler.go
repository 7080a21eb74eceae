package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/service"
)

// Authenticator opens and closes the console session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Refresh(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
}

// Unmounter closes whatever screen is open.
type Unmounter interface {
	Unmount()
}

type AuthHandler struct {
	auth    Authenticator
	screens Unmounter
}

func NewAuthHandler(auth Authenticator, screens Unmounter) *AuthHandler {
	return &AuthHandler{auth: auth, screens: screens}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type sessionResponse struct {
	User *domain.User `json:"user,omitempty"`
	// Redirect is where the operator goes next.
	Redirect string `json:"redirect,omitempty"`
}

// Login signs in and stores the session tokens.
//
// @Summary      Sign in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user, Redirect: service.PathDashboard})
}

// Register creates an account and signs it in.
//
// @Summary      Create an account
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{User: user, Redirect: service.PathDashboard})
}

// Refresh swaps the stored refresh token for a new token pair.
//
// @Summary      Refresh the session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /session/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	user, err := h.auth.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}

// Logout forgets the session and closes the open screen.
//
// @Summary      Sign out
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.screens.Unmount()
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Redirect: service.PathLogin})
}

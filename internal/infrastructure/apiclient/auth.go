package apiclient

import (
	"context"
	"net/http"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register creates an account. An empty name is omitted from the payload.
func (c *Client) Register(ctx context.Context, email, password, name string) (*domain.AuthResponse, error) {
	return Do[*domain.AuthResponse](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: apiPrefix + "/auth/register",
		Body:     registerRequest{Email: email, Password: password, Name: name},
	})
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	return Do[*domain.AuthResponse](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: apiPrefix + "/auth/login",
		Body:     loginRequest{Email: email, Password: password},
	})
}

// RefreshToken exchanges a refresh token for a new pair. It does not touch
// the credential store.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResponse, error) {
	return Do[*domain.AuthResponse](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: apiPrefix + "/auth/refresh",
		Body:     refreshRequest{RefreshToken: refreshToken},
	})
}

// Me returns the profile bound to the stored access token.
func (c *Client) Me(ctx context.Context) (*domain.MeResponse, error) {
	return Do[*domain.MeResponse](ctx, c, Request{Endpoint: apiPrefix + "/me"})
}

// Health probes the backend liveness endpoint, which sits outside /api/v1.
func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	return Do[*domain.HealthStatus](ctx, c, Request{Endpoint: "/health"})
}

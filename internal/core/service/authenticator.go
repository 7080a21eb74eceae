package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
)

// Authenticator creates and destroys the console session. It is the only
// writer of the credential store apart from the guard's clear-on-failure.
type Authenticator struct {
	api   ports.AuthAPI
	store ports.CredentialStore
	log   zerolog.Logger
}

func NewAuthenticator(api ports.AuthAPI, store ports.CredentialStore, log zerolog.Logger) *Authenticator {
	return &Authenticator{api: api, store: store, log: log}
}

// Login exchanges credentials for a session and stores both tokens.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*domain.User, error) {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	a.log.Info().Str("email", email).Msg("logged in")
	return resp.User, nil
}

// Register creates an account and signs it in.
func (a *Authenticator) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	resp, err := a.api.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, resp); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	a.log.Info().Str("email", email).Msg("registered")
	return resp.User, nil
}

// Refresh is an operator-initiated exchange of the stored refresh token for a
// new pair. Nothing calls it automatically. On failure the stored session is
// left as it was.
func (a *Authenticator) Refresh(ctx context.Context) (*domain.User, error) {
	refresh, ok := a.store.RefreshToken(ctx)
	if !ok || refresh == "" {
		return nil, domain.ErrNoRefreshToken
	}
	resp, err := a.api.RefreshToken(ctx, refresh)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, resp); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	a.log.Info().Msg("session refreshed")
	return resp.User, nil
}

// save stores the pair carried by resp. A response without an access token
// is rejected and the store is left as it was.
func (a *Authenticator) save(ctx context.Context, resp *domain.AuthResponse) error {
	if resp == nil || resp.AccessToken == "" {
		return domain.ErrEmptySession
	}
	return a.store.Save(ctx, resp.Session())
}

// Logout forgets the session. The backend is not contacted.
func (a *Authenticator) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info().Msg("logged out")
	return nil
}

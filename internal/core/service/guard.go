package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
	"github.com/tablekit/restaurant-console/internal/pkg/metrics"
)

// GuardState is the session guard's position in its state machine.
type GuardState int

const (
	Unchecked GuardState = iota
	Verifying
	Authorized
	Unauthorized
)

func (s GuardState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Verifying:
		return "verifying"
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// SessionGuard decides whether one protected screen may render.
//
// A guard belongs to a single mount. Without a stored token it settles on
// Unauthorized without calling the backend. With one, it verifies the token
// through the profile endpoint; any failure clears the credential store.
// Both Authorized and Unauthorized are final for the guard's lifetime.
type SessionGuard struct {
	store    ports.CredentialStore
	profiles ports.ProfileAPI
	log      zerolog.Logger

	mu      sync.Mutex
	state   GuardState
	user    *domain.User
	settled chan struct{}
}

var errEmptyProfile = errors.New("profile response carried no user")

func NewSessionGuard(store ports.CredentialStore, profiles ports.ProfileAPI, log zerolog.Logger) *SessionGuard {
	return &SessionGuard{store: store, profiles: profiles, log: log, settled: make(chan struct{})}
}

// Enter runs the check on first call and returns the settled outcome on
// every later one. A call made while verification is in flight waits for it,
// or returns Verifying if ctx ends first. The user is non-nil only when
// Authorized.
func (g *SessionGuard) Enter(ctx context.Context) (GuardState, *domain.User) {
	g.mu.Lock()
	switch g.state {
	case Authorized, Unauthorized:
		defer g.mu.Unlock()
		return g.state, g.user
	case Verifying:
		g.mu.Unlock()
		select {
		case <-g.settled:
			return g.State(), g.User()
		case <-ctx.Done():
			return Verifying, nil
		}
	}

	if !g.store.HasSession(ctx) {
		g.settle(Unauthorized, nil)
		g.mu.Unlock()
		metrics.GuardOutcomesTotal.WithLabelValues("no_token").Inc()
		g.log.Debug().Msg("no stored session, redirecting to login")
		return Unauthorized, nil
	}
	g.state = Verifying
	g.mu.Unlock()

	resp, err := g.profiles.Me(ctx)
	if err == nil && (resp == nil || resp.User == nil) {
		err = errEmptyProfile
	}
	if err != nil {
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			g.log.Error().Err(clearErr).Msg("failed to clear credentials after rejected session")
		}
		g.mu.Lock()
		g.settle(Unauthorized, nil)
		g.mu.Unlock()
		metrics.GuardOutcomesTotal.WithLabelValues("verification_failed").Inc()
		g.log.Info().Err(err).Msg("session verification failed, credentials cleared")
		return Unauthorized, nil
	}

	g.mu.Lock()
	g.settle(Authorized, resp.User)
	g.mu.Unlock()
	metrics.GuardOutcomesTotal.WithLabelValues("authorized").Inc()
	g.log.Debug().Int64("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("session verified")
	return Authorized, resp.User
}

// settle records the final state. Callers hold g.mu.
func (g *SessionGuard) settle(state GuardState, user *domain.User) {
	g.state = state
	g.user = user
	close(g.settled)
}

// State returns the current state without triggering a check.
func (g *SessionGuard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// User returns the verified user, or nil.
func (g *SessionGuard) User() *domain.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user
}

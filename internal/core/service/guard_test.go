package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

func TestSessionGuard_NoToken(t *testing.T) {
	store := newStubStore("", "")
	backend := newStubBackend(store)
	guard := NewSessionGuard(store, backend, zerolog.Nop())

	state, user := guard.Enter(context.Background())
	if state != Unauthorized || user != nil {
		t.Fatalf("expected unauthorized without user, got %s %+v", state, user)
	}
	if backend.meCalls != 0 {
		t.Fatalf("expected no profile call, got %d", backend.meCalls)
	}
}

func TestSessionGuard_ValidToken(t *testing.T) {
	store := newStubStore("A", "R")
	backend := newStubBackend(store)
	backend.users["A"] = &domain.User{ID: 1, Email: "root@x.com", Role: domain.RoleSuperAdmin}
	guard := NewSessionGuard(store, backend, zerolog.Nop())

	state, user := guard.Enter(context.Background())
	if state != Authorized {
		t.Fatalf("expected authorized, got %s", state)
	}
	if user == nil || user.ID != 1 {
		t.Fatalf("unexpected user %+v", user)
	}
	if backend.lastBearer != "Bearer A" {
		t.Fatalf("unexpected bearer %q", backend.lastBearer)
	}
	if guard.User() != user {
		t.Fatalf("expected the verified user to be retained")
	}
}

func TestSessionGuard_RejectedTokenClearsStore(t *testing.T) {
	store := newStubStore("expired", "R")
	backend := newStubBackend(store)
	guard := NewSessionGuard(store, backend, zerolog.Nop())

	state, _ := guard.Enter(context.Background())
	if state != Unauthorized {
		t.Fatalf("expected unauthorized, got %s", state)
	}
	if store.cleared != 1 {
		t.Fatalf("expected store cleared once, got %d", store.cleared)
	}
	if _, ok := store.AccessToken(context.Background()); ok {
		t.Fatalf("access token should be gone")
	}
	if _, ok := store.RefreshToken(context.Background()); ok {
		t.Fatalf("refresh token should be gone")
	}
}

func TestSessionGuard_TransportFailureClearsStore(t *testing.T) {
	store := newStubStore("A", "R")
	backend := newStubBackend(store)
	backend.meErr = domain.ErrUnreachable
	guard := NewSessionGuard(store, backend, zerolog.Nop())

	if state, _ := guard.Enter(context.Background()); state != Unauthorized {
		t.Fatalf("expected unauthorized, got %s", state)
	}
	if store.HasSession(context.Background()) {
		t.Fatalf("expected session cleared")
	}
}

func TestSessionGuard_EmptyProfileIsFailure(t *testing.T) {
	store := newStubStore("A", "")
	guard := NewSessionGuard(store, emptyProfiles{}, zerolog.Nop())

	if state, _ := guard.Enter(context.Background()); state != Unauthorized {
		t.Fatalf("expected unauthorized, got %s", state)
	}
	if store.cleared != 1 {
		t.Fatalf("expected store cleared")
	}
}

func TestSessionGuard_SettledStateIsFinal(t *testing.T) {
	store := newStubStore("A", "R")
	backend := newStubBackend(store)
	backend.users["A"] = &domain.User{ID: 1, Role: domain.RoleUser}
	guard := NewSessionGuard(store, backend, zerolog.Nop())

	guard.Enter(context.Background())
	backend.meErr = errors.New("boom")
	state, _ := guard.Enter(context.Background())

	if state != Authorized {
		t.Fatalf("expected settled authorized, got %s", state)
	}
	if backend.meCalls != 1 {
		t.Fatalf("expected a single verification, got %d", backend.meCalls)
	}
}

func TestSessionGuard_ConcurrentEnterWaitsForVerification(t *testing.T) {
	store := newStubStore("A", "R")
	profiles := &gatedProfiles{release: make(chan struct{}), started: make(chan struct{})}
	guard := NewSessionGuard(store, profiles, zerolog.Nop())

	first := make(chan GuardState, 1)
	go func() {
		state, _ := guard.Enter(context.Background())
		first <- state
	}()
	<-profiles.started

	if guard.State() != Verifying {
		t.Fatalf("expected verifying while profile call is in flight, got %s", guard.State())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if state, _ := guard.Enter(ctx); state != Verifying {
		t.Fatalf("expected verifying on timeout, got %s", state)
	}

	second := make(chan GuardState, 1)
	go func() {
		state, _ := guard.Enter(context.Background())
		second <- state
	}()

	close(profiles.release)
	if got := <-first; got != Authorized {
		t.Fatalf("first enter: got %s", got)
	}
	if got := <-second; got != Authorized {
		t.Fatalf("second enter: got %s", got)
	}
	if profiles.calls != 1 {
		t.Fatalf("expected one profile call, got %d", profiles.calls)
	}
}

func TestGuardState_String(t *testing.T) {
	if Unchecked.String() != "unchecked" || Unauthorized.String() != "unauthorized" || GuardState(9).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}

type emptyProfiles struct{}

func (emptyProfiles) Me(context.Context) (*domain.MeResponse, error) {
	return &domain.MeResponse{}, nil
}

type gatedProfiles struct {
	calls   int
	started chan struct{}
	release chan struct{}
}

func (p *gatedProfiles) Me(context.Context) (*domain.MeResponse, error) {
	p.calls++
	close(p.started)
	<-p.release
	return &domain.MeResponse{User: &domain.User{ID: 7, Role: domain.RoleUser}}, nil
}

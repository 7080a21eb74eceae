// Package credentials holds the CredentialStore backends: an in-memory map
// for tests, a JSON file for a single workstation, Redis and MongoDB for
// consoles that share a session across hosts, and a detached store for
// processes with no storage at all.
package credentials

import (
	"context"
	"sync"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// MemoryStore keeps the tokens in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[domain.AccessTokenKey] = sess.AccessToken
	s.values[domain.RefreshTokenKey] = sess.RefreshToken
	return nil
}

func (s *MemoryStore) AccessToken(_ context.Context) (string, bool) {
	return s.get(domain.AccessTokenKey)
}

func (s *MemoryStore) RefreshToken(_ context.Context) (string, bool) {
	return s.get(domain.RefreshTokenKey)
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, domain.AccessTokenKey)
	delete(s.values, domain.RefreshTokenKey)
	return nil
}

func (s *MemoryStore) HasSession(ctx context.Context) bool {
	_, ok := s.AccessToken(ctx)
	return ok
}

func (s *MemoryStore) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

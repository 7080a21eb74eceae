package service

import (
	"context"
	"sync"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

type stubStore struct {
	mu      sync.Mutex
	values  map[string]string
	cleared int
}

func newStubStore(access, refresh string) *stubStore {
	s := &stubStore{values: map[string]string{}}
	if access != "" {
		s.values[domain.AccessTokenKey] = access
	}
	if refresh != "" {
		s.values[domain.RefreshTokenKey] = refresh
	}
	return s
}

func (s *stubStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[domain.AccessTokenKey] = sess.AccessToken
	s.values[domain.RefreshTokenKey] = sess.RefreshToken
	return nil
}

func (s *stubStore) AccessToken(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[domain.AccessTokenKey]
	return v, ok
}

func (s *stubStore) RefreshToken(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[domain.RefreshTokenKey]
	return v, ok
}

func (s *stubStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared++
	delete(s.values, domain.AccessTokenKey)
	delete(s.values, domain.RefreshTokenKey)
	return nil
}

func (s *stubStore) HasSession(ctx context.Context) bool {
	_, ok := s.AccessToken(ctx)
	return ok
}

// stubBackend answers Me from the token in the store, the way the real
// backend resolves the bearer header.
type stubBackend struct {
	mu    sync.Mutex
	store *stubStore
	users map[string]*domain.User
	meErr error

	loginResp *domain.AuthResponse
	loginErr  error

	refreshResp *domain.AuthResponse
	refreshErr  error
	refreshSeen string

	meCalls    int
	lastBearer string

	restaurants []domain.Restaurant
	listCalls   int
}

func newStubBackend(store *stubStore) *stubBackend {
	return &stubBackend{store: store, users: map[string]*domain.User{}}
}

func (b *stubBackend) Register(_ context.Context, email, _, _ string) (*domain.AuthResponse, error) {
	if b.loginErr != nil {
		return nil, b.loginErr
	}
	return b.loginResp, nil
}

func (b *stubBackend) Login(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
	if b.loginErr != nil {
		return nil, b.loginErr
	}
	return b.loginResp, nil
}

func (b *stubBackend) RefreshToken(_ context.Context, refresh string) (*domain.AuthResponse, error) {
	b.refreshSeen = refresh
	if b.refreshErr != nil {
		return nil, b.refreshErr
	}
	return b.refreshResp, nil
}

func (b *stubBackend) Me(ctx context.Context) (*domain.MeResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.meCalls++
	token, _ := b.store.AccessToken(ctx)
	b.lastBearer = "Bearer " + token
	if b.meErr != nil {
		return nil, b.meErr
	}
	user, ok := b.users[token]
	if !ok {
		return nil, domain.NewAPIError(401, "Unauthorized", "invalid or expired token")
	}
	return &domain.MeResponse{User: user}, nil
}

func (b *stubBackend) ListRestaurants(_ context.Context, page, pageSize int) (*domain.Page[domain.Restaurant], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listCalls++
	data := make([]domain.Restaurant, len(b.restaurants))
	copy(data, b.restaurants)
	return &domain.Page[domain.Restaurant]{Data: data, Total: int64(len(data)), Page: 1, PageSize: 10}, nil
}

func (b *stubBackend) GetRestaurant(_ context.Context, id int64) (*domain.Restaurant, error) {
	for _, r := range b.restaurants {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, domain.NewAPIError(404, "Not Found", "restaurant not found")
}

func (b *stubBackend) CreateRestaurant(_ context.Context, form domain.RestaurantForm) (*domain.Restaurant, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := domain.Restaurant{ID: int64(len(b.restaurants) + 1), Name: form.Name, IsActive: form.IsActive}
	b.restaurants = append(b.restaurants, r)
	return &r, nil
}

func (b *stubBackend) UpdateRestaurant(_ context.Context, id int64, form domain.RestaurantForm) (*domain.Restaurant, error) {
	return nil, domain.NewAPIError(404, "Not Found", "restaurant not found")
}

func (b *stubBackend) DeleteRestaurant(_ context.Context, id int64) (*domain.MessageResponse, error) {
	return &domain.MessageResponse{Message: "deleted"}, nil
}

func (b *stubBackend) Health(context.Context) (*domain.HealthStatus, error) {
	return &domain.HealthStatus{Status: "ok"}, nil
}

func strPtr(s string) *string { return &s }

package fakeapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

type account struct {
	user         domain.User
	passwordHash string
}

// memStore holds users and restaurants for the lifetime of the process.
type memStore struct {
	mu sync.RWMutex

	accounts    map[int64]*account
	byEmail     map[string]int64
	restaurants map[int64]domain.Restaurant

	nextUserID       int64
	nextRestaurantID int64
}

func newMemStore() *memStore {
	return &memStore{
		accounts:    make(map[int64]*account),
		byEmail:     make(map[string]int64),
		restaurants: make(map[int64]domain.Restaurant),
	}
}

func (s *memStore) createUser(email, passwordHash string, name *string, role domain.Role) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.byEmail[key]; exists {
		return nil, domain.ErrUserExists
	}

	s.nextUserID++
	now := time.Now().UTC()
	acc := &account{
		user: domain.User{
			ID:        s.nextUserID,
			Email:     email,
			Name:      name,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: passwordHash,
	}
	s.accounts[acc.user.ID] = acc
	s.byEmail[key] = acc.user.ID

	u := acc.user
	return &u, nil
}

func (s *memStore) accountByEmail(email string) (*account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	acc := *s.accounts[id]
	return &acc, nil
}

func (s *memStore) userByID(id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := acc.user
	return &u, nil
}

func (s *memStore) createRestaurant(r domain.Restaurant) domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRestaurantID++
	now := time.Now().UTC()
	r.ID = s.nextRestaurantID
	r.CreatedAt = now
	r.UpdatedAt = now
	s.restaurants[r.ID] = r
	return r
}

func (s *memStore) restaurant(id int64) (domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.restaurants[id]
	if !ok {
		return domain.Restaurant{}, domain.ErrNotFound
	}
	return r, nil
}

func (s *memStore) updateRestaurant(id int64, apply func(*domain.Restaurant)) (domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.restaurants[id]
	if !ok {
		return domain.Restaurant{}, domain.ErrNotFound
	}
	apply(&r)
	r.UpdatedAt = time.Now().UTC()
	s.restaurants[id] = r
	return r, nil
}

func (s *memStore) deleteRestaurant(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.restaurants[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.restaurants, id)
	return nil
}

// listRestaurants returns one page, newest first, and the total count.
func (s *memStore) listRestaurants(page, pageSize int) ([]domain.Restaurant, int64) {
	s.mu.RLock()
	all := make([]domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		all = append(all, r)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return []domain.Restaurant{}, int64(len(all))
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], int64(len(all))
}

package ports

import (
	"context"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// AuthAPI is the authentication half of the backend surface.
type AuthAPI interface {
	Register(ctx context.Context, email, password, name string) (*domain.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResponse, error)
}

// ProfileAPI fetches the profile bound to the current access token.
type ProfileAPI interface {
	Me(ctx context.Context) (*domain.MeResponse, error)
}

// RestaurantAPI is the restaurant collection on the backend.
// ListRestaurants treats page <= 0 as 1 and pageSize <= 0 as 10.
type RestaurantAPI interface {
	ListRestaurants(ctx context.Context, page, pageSize int) (*domain.Page[domain.Restaurant], error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, form domain.RestaurantForm) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, form domain.RestaurantForm) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) (*domain.MessageResponse, error)
}

// HealthAPI probes the backend's liveness endpoint.
type HealthAPI interface {
	Health(ctx context.Context) (*domain.HealthStatus, error)
}

// BackendAPI is everything the console consumes.
type BackendAPI interface {
	AuthAPI
	ProfileAPI
	RestaurantAPI
	HealthAPI
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	restaurantsRoute = apiPrefix + "/restaurants"
	restaurantRoute  = apiPrefix + "/restaurants/{id}"
)

// ListRestaurants fetches one page. page <= 0 means 1, pageSize <= 0 means 10.
func (c *Client) ListRestaurants(ctx context.Context, page, pageSize int) (*domain.Page[domain.Restaurant], error) {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Do[*domain.Page[domain.Restaurant]](ctx, c, Request{
		Endpoint: fmt.Sprintf("%s?page=%d&page_size=%d", restaurantsRoute, page, pageSize),
		Route:    restaurantsRoute,
	})
}

func (c *Client) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return Do[*domain.Restaurant](ctx, c, Request{
		Endpoint: restaurantPath(id),
		Route:    restaurantRoute,
	})
}

func (c *Client) CreateRestaurant(ctx context.Context, form domain.RestaurantForm) (*domain.Restaurant, error) {
	return Do[*domain.Restaurant](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: restaurantsRoute,
		Body:     form,
	})
}

// UpdateRestaurant sends the whole form buffer, not a diff.
func (c *Client) UpdateRestaurant(ctx context.Context, id int64, form domain.RestaurantForm) (*domain.Restaurant, error) {
	return Do[*domain.Restaurant](ctx, c, Request{
		Method:   http.MethodPut,
		Endpoint: restaurantPath(id),
		Route:    restaurantRoute,
		Body:     form,
	})
}

func (c *Client) DeleteRestaurant(ctx context.Context, id int64) (*domain.MessageResponse, error) {
	return Do[*domain.MessageResponse](ctx, c, Request{
		Method:   http.MethodDelete,
		Endpoint: restaurantPath(id),
		Route:    restaurantRoute,
	})
}

func restaurantPath(id int64) string {
	return fmt.Sprintf("%s/%d", restaurantsRoute, id)
}

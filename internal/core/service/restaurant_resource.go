package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
)

// RestaurantResource plugs the restaurant endpoints into Workflow.
type RestaurantResource struct {
	api ports.RestaurantAPI
}

var _ ports.Resource[domain.Restaurant, domain.RestaurantForm] = (*RestaurantResource)(nil)

func NewRestaurantResource(api ports.RestaurantAPI) *RestaurantResource {
	return &RestaurantResource{api: api}
}

// List fetches page 1 at the client's default page size.
func (r *RestaurantResource) List(ctx context.Context) ([]domain.Restaurant, error) {
	page, err := r.api.ListRestaurants(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return []domain.Restaurant{}, nil
	}
	return page.Data, nil
}

func (r *RestaurantResource) Create(ctx context.Context, form domain.RestaurantForm) error {
	_, err := r.api.CreateRestaurant(ctx, form)
	return err
}

func (r *RestaurantResource) Update(ctx context.Context, id int64, form domain.RestaurantForm) error {
	_, err := r.api.UpdateRestaurant(ctx, id, form)
	return err
}

func (r *RestaurantResource) Delete(ctx context.Context, id int64) error {
	_, err := r.api.DeleteRestaurant(ctx, id)
	return err
}

func (r *RestaurantResource) ID(item domain.Restaurant) int64 { return item.ID }

func (r *RestaurantResource) EmptyForm() domain.RestaurantForm { return domain.NewRestaurantForm() }

func (r *RestaurantResource) FormFrom(item domain.Restaurant) domain.RestaurantForm {
	return domain.RestaurantFormFrom(item)
}

// RestaurantWorkflow is the workflow instantiated for restaurants.
type RestaurantWorkflow = Workflow[domain.Restaurant, domain.RestaurantForm]

// NewRestaurantWorkflow builds the restaurant management workflow.
func NewRestaurantWorkflow(api ports.RestaurantAPI, log zerolog.Logger) *RestaurantWorkflow {
	return NewWorkflow[domain.Restaurant, domain.RestaurantForm]("restaurants", NewRestaurantResource(api), log)
}

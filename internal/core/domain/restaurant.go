package domain

import "time"

// Restaurant is the managed resource. Only Name is mandatory; the backend
// owns the authoritative copy.
type Restaurant struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RestaurantForm is the edit buffer behind the create/edit modal. It is sent
// as-is on create and update.
type RestaurantForm struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

// NewRestaurantForm returns the defaults used when creating a restaurant.
func NewRestaurantForm() RestaurantForm {
	return RestaurantForm{IsActive: true}
}

// RestaurantFormFrom copies r into a form buffer, defaulting absent optional
// fields to the empty string.
func RestaurantFormFrom(r Restaurant) RestaurantForm {
	return RestaurantForm{
		Name:        r.Name,
		Description: deref(r.Description),
		Address:     deref(r.Address),
		Phone:       deref(r.Phone),
		Email:       deref(r.Email),
		ImageURL:    deref(r.ImageURL),
		IsActive:    r.IsActive,
	}
}

// Page is one page of a paginated collection. Page is 1-based.
type Page[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// MessageResponse is the body returned by deletions.
type MessageResponse struct {
	Message string `json:"message"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

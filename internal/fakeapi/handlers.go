package fakeapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

type handlers struct {
	auth  *authService
	store *memStore
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type createRestaurantRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

type updateRestaurantRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

// The console sends every optional field, blank when unset. Blank values
// are treated as absent before validation.
func (r *createRestaurantRequest) normalize() {
	blankToNil(&r.Description, &r.Address, &r.Phone, &r.Email, &r.ImageURL)
}

func (r *updateRestaurantRequest) normalize() {
	blankToNil(&r.Description, &r.Address, &r.Phone, &r.Email, &r.ImageURL)
}

func blankToNil(fields ...**string) {
	for _, f := range fields {
		if *f != nil && strings.TrimSpace(**f) == "" {
			*f = nil
		}
	}
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if n, ok := req.(interface{ normalize() }); ok {
		n.normalize()
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]string{"database": "healthy"},
	})
}

func (h *handlers) register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.auth.register(req.Email, req.Password, req.Name, domain.RoleUser)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *handlers) login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.auth.login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handlers) refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.auth.refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, errInvalidToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
		}
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handlers) me(c echo.Context) error {
	id, _ := c.Get("user_id").(int64)
	user, err := h.store.userByID(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.MeResponse{User: user})
}

func (h *handlers) listRestaurants(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	data, total := h.store.listRestaurants(page, pageSize)
	return c.JSON(http.StatusOK, domain.Page[domain.Restaurant]{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *handlers) getRestaurant(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}
	r, err := h.store.restaurant(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *handlers) createRestaurant(c echo.Context) error {
	var req createRestaurantRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	r := domain.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	return c.JSON(http.StatusCreated, h.store.createRestaurant(r))
}

func (h *handlers) updateRestaurant(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}
	var req updateRestaurantRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	r, err := h.store.updateRestaurant(id, func(r *domain.Restaurant) {
		if req.Name != nil {
			r.Name = *req.Name
		}
		if req.Description != nil {
			r.Description = req.Description
		}
		if req.Address != nil {
			r.Address = req.Address
		}
		if req.Phone != nil {
			r.Phone = req.Phone
		}
		if req.Email != nil {
			r.Email = req.Email
		}
		if req.ImageURL != nil {
			r.ImageURL = req.ImageURL
		}
		if req.IsActive != nil {
			r.IsActive = *req.IsActive
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *handlers) deleteRestaurant(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}
	if err := h.store.deleteRestaurant(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.MessageResponse{Message: "restaurant deleted successfully"})
}

func restaurantID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}
	return id, nil
}

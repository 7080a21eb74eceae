package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
	"github.com/tablekit/restaurant-console/internal/core/service"
)

type RestaurantScreen interface {
	MountRestaurants(ctx context.Context) (*service.RestaurantsView, string)
}

// RestaurantHandler serves the restaurant management screen. Index mounts
// it; every other action needs the screen already mounted and works on the
// mounted workflow.
type RestaurantHandler struct {
	screens RestaurantScreen
	api     ports.RestaurantAPI
}

func NewRestaurantHandler(screens RestaurantScreen, api ports.RestaurantAPI) *RestaurantHandler {
	return &RestaurantHandler{screens: screens, api: api}
}

// Index mounts the screen and loads the first page.
//
// @Summary      Restaurant management
// @Tags         restaurants
// @Produce      json
// @Success      200  {object}  service.RestaurantsView
// @Success      302  "redirect to /login or /dashboard"
// @Router       /dashboard/restaurants [get]
func (h *RestaurantHandler) Index(c echo.Context) error {
	view, redirect := h.screens.MountRestaurants(c.Request().Context())
	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}
	return c.JSON(http.StatusOK, view)
}

// Show fetches one restaurant from the backend.
//
// @Summary      Restaurant detail
// @Tags         restaurants
// @Produce      json
// @Param        id   path      int  true  "Restaurant ID"
// @Success      200  {object}  domain.Restaurant
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /dashboard/restaurants/{id} [get]
func (h *RestaurantHandler) Show(c echo.Context) error {
	if _, _, err := ctxRestaurants(c); err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	restaurant, err := h.api.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurant)
}

// Reload refetches the first page.
//
// @Summary      Reload the list
// @Tags         restaurants
// @Produce      json
// @Success      200  {object}  service.RestaurantsView
// @Router       /dashboard/restaurants/reload [post]
func (h *RestaurantHandler) Reload(c echo.Context) error {
	wf, user, err := ctxRestaurants(c)
	if err != nil {
		return err
	}
	wf.Load(c.Request().Context())
	return c.JSON(http.StatusOK, service.NewRestaurantsView(user, wf))
}

// New opens the create form.
//
// @Summary      Open the create form
// @Tags         restaurants
// @Produce      json
// @Success      200  {object}  service.RestaurantsView
// @Router       /dashboard/restaurants/new [post]
func (h *RestaurantHandler) New(c echo.Context) error {
	wf, user, err := ctxRestaurants(c)
	if err != nil {
		return err
	}
	wf.OpenCreate()
	return c.JSON(http.StatusOK, service.NewRestaurantsView(user, wf))
}

// Edit opens the edit form for a listed restaurant.
//
// @Summary      Open the edit form
// @Tags         restaurants
// @Produce      json
// @Param        id   path      int  true  "Restaurant ID"
// @Success      200  {object}  service.RestaurantsView
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/restaurants/{id}/edit [post]
func (h *RestaurantHandler) Edit(c echo.Context) error {
	wf, user, err := ctxRestaurants(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := wf.OpenEditByID(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service.NewRestaurantsView(user, wf))
}

// Cancel closes the form.
//
// @Summary      Close the form
// @Tags         restaurants
// @Produce      json
// @Success      200  {object}  service.RestaurantsView
// @Router       /dashboard/restaurants/cancel [post]
func (h *RestaurantHandler) Cancel(c echo.Context) error {
	wf, user, err := ctxRestaurants(c)
	if err != nil {
		return err
	}
	wf.Cancel()
	return c.JSON(http.StatusOK, service.NewRestaurantsView(user, wf))
}

// Submit saves the open form. Failures come back as an alert with the form
// still open and holding what was sent.
//
// @Summary      Save the form
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RestaurantForm  true  "Form buffer"
// @Success      200   {object}  service.RestaurantsView
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /dashboard/restaurants/submit [post]
func (h *RestaurantHandler) Submit(c echo.Context) error {
	wf, user, err := ctxRestaurants(c)
	if err != nil {
		return err
	}

	var form domain.RestaurantForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	wf.UpdateForm(form)
	if err := c.Validate(&form); err != nil {
		return &Alert{
			Err:   echo.NewHTTPError(http.StatusBadRequest, err.Error()),
			State: service.NewRestaurantsView(user, wf).State,
		}
	}

	if err := wf.Submit(c.Request().Context(), form); err != nil {
		return &Alert{Err: err, State: service.NewRestaurantsView(user, wf).State}
	}
	return c.JSON(http.StatusOK, service.NewRestaurantsView(user, wf))
}

// Delete removes a restaurant. The operator confirms with ?confirm=true;
// without it nothing is sent.
//
// @Summary      Delete a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        id       path      int   true   "Restaurant ID"
// @Param        confirm  query     bool  false  "Operator confirmation"
// @Success      200      {object}  service.RestaurantsView
// @Failure      428      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /dashboard/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c echo.Context) error {
	wf, user, err := ctxRestaurants(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	confirmed := c.QueryParam("confirm") == "true"
	confirm := service.ConfirmFunc(func(string) bool { return confirmed })
	if err := wf.Remove(c.Request().Context(), id, confirm); err != nil {
		return &Alert{Err: err, State: service.NewRestaurantsView(user, wf).State}
	}
	return c.JSON(http.StatusOK, service.NewRestaurantsView(user, wf))
}

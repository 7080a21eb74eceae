package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/service"
)

// ctxRestaurants extracts the screen injected by the Mounted middleware.
// Both values must be present; their absence means the middleware did not
// run or the screen was unmounted in between.
func ctxRestaurants(c echo.Context) (*service.RestaurantWorkflow, *domain.User, error) {
	wf, _ := c.Get("workflow").(*service.RestaurantWorkflow)
	user, _ := c.Get("user").(*domain.User)
	if wf == nil || user == nil {
		return nil, nil, domain.ErrNotMounted
	}
	return wf, user, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}
	return id, nil
}

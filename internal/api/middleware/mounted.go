package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/service"
)

// RestaurantScreen exposes the mounted restaurant workflow.
type RestaurantScreen interface {
	Restaurants() (*service.RestaurantWorkflow, *domain.User, error)
}

// Mounted requires the restaurant screen to be open and injects its
// workflow, user and role into the context. The session is not verified
// again: that happened when the screen was mounted.
func Mounted(screens RestaurantScreen) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wf, user, err := screens.Restaurants()
			if err != nil {
				return echo.NewHTTPError(http.StatusConflict, "restaurant screen is not open; GET "+service.PathRestaurants+" first")
			}

			c.Set("workflow", wf)
			c.Set("user", user)
			c.Set("role", string(user.Role))

			return next(c)
		}
	}
}

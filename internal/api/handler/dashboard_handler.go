package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablekit/restaurant-console/internal/core/service"
)

type DashboardScreen interface {
	MountDashboard(ctx context.Context) (*service.DashboardView, string)
}

type DashboardHandler struct {
	screens DashboardScreen
}

func NewDashboardHandler(screens DashboardScreen) *DashboardHandler {
	return &DashboardHandler{screens: screens}
}

// Show mounts the dashboard.
//
// @Summary      Dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardView
// @Success      302  "redirect to /login"
// @Router       /dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	view, redirect := h.screens.MountDashboard(c.Request().Context())
	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}
	return c.JSON(http.StatusOK, view)
}

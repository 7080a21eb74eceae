package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
)

// Screen names the view currently mounted in the console.
type Screen string

const (
	ScreenNone        Screen = ""
	ScreenDashboard   Screen = "dashboard"
	ScreenRestaurants Screen = "restaurants"
)

// DashboardView is the rendered dashboard.
type DashboardView struct {
	User        *domain.User `json:"user"`
	DisplayName string       `json:"display_name"`
	NavLinks    []NavLink    `json:"nav_links"`
	Welcome     WelcomePanel `json:"welcome"`
}

// RestaurantsView is the rendered restaurant management screen.
type RestaurantsView struct {
	User     *domain.User                                       `json:"user"`
	NavLinks []NavLink                                          `json:"nav_links"`
	State    Snapshot[domain.Restaurant, domain.RestaurantForm] `json:"state"`
}

// Console holds the one screen an operator has open. Every mount runs a
// fresh session guard; mounting a screen unmounts the previous one so its
// pending results are dropped.
type Console struct {
	store       ports.CredentialStore
	profiles    ports.ProfileAPI
	restaurants ports.RestaurantAPI
	log         zerolog.Logger

	mu       sync.Mutex
	screen   Screen
	user     *domain.User
	workflow *RestaurantWorkflow
}

func NewConsole(store ports.CredentialStore, profiles ports.ProfileAPI, restaurants ports.RestaurantAPI, log zerolog.Logger) *Console {
	return &Console{store: store, profiles: profiles, restaurants: restaurants, log: log}
}

// MountDashboard opens the dashboard. A non-empty redirect means the screen
// did not render and the operator belongs on that path instead.
func (c *Console) MountDashboard(ctx context.Context) (view *DashboardView, redirect string) {
	c.Unmount()

	state, user := NewSessionGuard(c.store, c.profiles, c.log).Enter(ctx)
	if state != Authorized {
		return nil, PathLogin
	}

	c.mount(ScreenDashboard, user, nil)

	return &DashboardView{
		User:        user,
		DisplayName: user.DisplayName(),
		NavLinks:    NavLinks(user, PathDashboard),
		Welcome:     Welcome(user),
	}, ""
}

// MountRestaurants opens restaurant management and loads the first page.
// Signed-out operators go to the login screen and everyone but super admins
// back to the dashboard.
func (c *Console) MountRestaurants(ctx context.Context) (view *RestaurantsView, redirect string) {
	c.Unmount()

	state, user := NewSessionGuard(c.store, c.profiles, c.log).Enter(ctx)
	if state != Authorized {
		return nil, PathLogin
	}
	if !IsSuperAdmin(user) {
		c.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("restaurant management denied")
		return nil, PathDashboard
	}

	wf := NewRestaurantWorkflow(c.restaurants, c.log)
	c.mount(ScreenRestaurants, user, wf)

	wf.Load(ctx)
	return NewRestaurantsView(user, wf), ""
}

// mount installs a screen. Another mount may have finished while this one
// was verifying, so its workflow is closed here as well.
func (c *Console) mount(screen Screen, user *domain.User, wf *RestaurantWorkflow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.workflow != nil && c.workflow != wf {
		c.workflow.Close()
	}
	c.screen = screen
	c.user = user
	c.workflow = wf
}

// Restaurants returns the mounted restaurant workflow and its user.
func (c *Console) Restaurants() (*RestaurantWorkflow, *domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenRestaurants || c.workflow == nil {
		return nil, nil, domain.ErrNotMounted
	}
	return c.workflow, c.user, nil
}

// NewRestaurantsView renders the restaurant screen for user.
func NewRestaurantsView(user *domain.User, wf *RestaurantWorkflow) *RestaurantsView {
	return &RestaurantsView{
		User:     user,
		NavLinks: NavLinks(user, PathRestaurants),
		State:    wf.Snapshot(),
	}
}

// Screen reports what is mounted.
func (c *Console) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// Unmount closes the current screen.
func (c *Console) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.workflow != nil {
		c.workflow.Close()
		c.workflow = nil
	}
	c.screen = ScreenNone
	c.user = nil
}

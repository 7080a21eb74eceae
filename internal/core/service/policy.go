package service

import "github.com/tablekit/restaurant-console/internal/core/domain"

// IsSuperAdmin reports whether user may manage restaurants. It is false for a
// nil user and for every role other than superadmin, admin included.
func IsSuperAdmin(user *domain.User) bool {
	return user != nil && user.Role == domain.RoleSuperAdmin
}

// NavLink is an entry of the console navigation.
type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

const (
	PathLogin       = "/login"
	PathDashboard   = "/dashboard"
	PathRestaurants = "/dashboard/restaurants"
)

// NavLinks returns the navigation for user; the Restaurants entry is only
// exposed to super admins. current marks the active entry.
func NavLinks(user *domain.User, current string) []NavLink {
	links := []NavLink{{Label: "Dashboard", Href: PathDashboard, Active: current == PathDashboard}}
	if IsSuperAdmin(user) {
		links = append(links, NavLink{Label: "Restaurants", Href: PathRestaurants, Active: current == PathRestaurants})
	}
	return links
}

// WelcomePanel is the variant shown on the dashboard.
type WelcomePanel struct {
	Variant string `json:"variant"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
	// Action links to the management screen when the user may reach it.
	Action *NavLink `json:"action,omitempty"`
}

const (
	WelcomeSuperAdmin = "superadmin"
	WelcomeRegular    = "regular"
)

// Welcome picks the dashboard panel for user.
func Welcome(user *domain.User) WelcomePanel {
	if IsSuperAdmin(user) {
		return WelcomePanel{
			Variant: WelcomeSuperAdmin,
			Title:   "Super Admin Access",
			Message: "As a superadmin, you have access to manage restaurants.",
			Action:  &NavLink{Label: "Manage Restaurants", Href: PathRestaurants},
		}
	}
	return WelcomePanel{
		Variant: WelcomeRegular,
		Message: "You have regular user access. Contact an administrator for additional permissions.",
	}
}

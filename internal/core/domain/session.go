package domain

// Storage keys under which the two session tokens are persisted.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Session is the pair of bearer tokens issued by login, registration or a
// refresh exchange. Both values are opaque to the console.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// AuthResponse is the body of /auth/register, /auth/login and /auth/refresh.
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session extracts the token pair from the response.
func (r *AuthResponse) Session() Session {
	return Session{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
}

// MeResponse is the body of GET /api/v1/me.
type MeResponse struct {
	User *User `json:"user"`
}

// HealthStatus is the body of the backend's GET /health.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

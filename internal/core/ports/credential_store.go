package ports

import (
	"context"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// CredentialStore persists the session tokens on the console side.
//
// Implementations report absent values instead of failing when no backing
// storage is available, and never track expiry: a stored access token is the
// only authentication signal.
type CredentialStore interface {
	Save(ctx context.Context, s domain.Session) error
	AccessToken(ctx context.Context) (string, bool)
	RefreshToken(ctx context.Context) (string, bool)
	Clear(ctx context.Context) error
	// HasSession reports whether an access token is stored.
	HasSession(ctx context.Context) bool
}

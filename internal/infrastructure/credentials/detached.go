package credentials

import (
	"context"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// DetachedStore is used when the process has no storage to attach to.
// Reads are always absent and writes succeed without effect.
type DetachedStore struct{}

func (DetachedStore) Save(context.Context, domain.Session) error  { return nil }
func (DetachedStore) AccessToken(context.Context) (string, bool)  { return "", false }
func (DetachedStore) RefreshToken(context.Context) (string, bool) { return "", false }
func (DetachedStore) Clear(context.Context) error                 { return nil }
func (DetachedStore) HasSession(context.Context) bool             { return false }

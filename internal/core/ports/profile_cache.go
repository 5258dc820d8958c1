package ports

import (
	"context"

	"cashrun/internal/core/domain/model/kernel"
)

// CachedProfile is the slice of a user profile needed to route the user.
type CachedProfile struct {
	UserID          kernel.UUID
	Role            string
	ProfileComplete bool
}

// ProfileCache holds recently seen profile states keyed by user id.
type ProfileCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, userID kernel.UUID) (profile CachedProfile, ok bool, err error)
	Set(ctx context.Context, profile CachedProfile) error
	Invalidate(ctx context.Context, userID kernel.UUID) error
}

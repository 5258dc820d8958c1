// Package ports defines the contracts between the cash delivery core and its
// infrastructure: repositories, the authoritative transition gateway, the
// profile cache and metrics.
package ports

import (
	"context"
	"time"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Status changes never go through the repository; see TransitionGateway.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPendingCreatedBefore returns up to limit orders still in Pending
	// status that were created before the given instant, oldest first.
	GetPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}

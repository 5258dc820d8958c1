// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/domain/services"
	"cashrun/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AtmRepoFactory provides access to the ATM repository.
	AtmRepoFactory interface {
		AtmRepository() ports.AtmRepository
	}

	// PreferenceRepoFactory provides access to the address preference repository.
	PreferenceRepoFactory interface {
		PreferenceRepository() ports.PreferenceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AtmUoW manages transactions for ATM-only operations.
	AtmUoW interface {
		TxManager
		AtmRepoFactory
	}

	// AtmUoWFactory creates new ATM unit of work instances.
	AtmUoWFactory interface {
		Create() AtmUoW
	}

	// AssignmentUoW gives the ATM assignment access to ATMs and preferences.
	// The assignment does not open a transaction: the preference write is
	// best effort and must not roll back the reads.
	AssignmentUoW interface {
		AtmRepoFactory
		PreferenceRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)

// Collaborators shared by several handlers.
type (
	// AtmAssigner picks the withdrawal ATM for a delivery address.
	AtmAssigner interface {
		Handle(ctx context.Context, cmd AssignAtmCommand) (AssignAtmResult, error)
	}

	// OrderAdvancer requests an order status transition from the authoritative store.
	OrderAdvancer interface {
		Advance(
			ctx context.Context,
			o *order.Order,
			next order.Status,
			meta services.TransitionMetadata,
		) (*order.Order, error)
	}
)

package ports

import (
	"context"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
)

// TransitionRequest asks the authoritative store to move an order from
// Current to Next. The store applies it only if the order is still in Current.
type TransitionRequest struct {
	OrderID kernel.UUID
	Current order.Status
	Next    order.Status

	// ActorID is the user who requested the change. The zero value stands for
	// the system. On Runner Accepted it becomes the order's runner.
	ActorID kernel.UUID
	Reason  *string
	Flags   map[string]bool
}

// TransitionGateway performs the single authoritative mutation of an order
// status.
//
// Implementations return:
//   - the order as stored after the update on success
//   - errs.RemoteRejectionError when the store refused the change
//   - errs.NetworkError when the store could not be reached
type TransitionGateway interface {
	RequestTransition(ctx context.Context, req TransitionRequest) (*order.Order, error)
}

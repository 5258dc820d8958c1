package commands

import (
	"errors"
	"maps"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand requests a status change of an order.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, order.RunnerAccepted, runnerID, nil, nil)
type AdvanceOrderCommand struct {
	orderID kernel.UUID
	next    order.Status
	actorID kernel.UUID
	reason  *string
	flags   map[string]bool

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand validates the order id and the target status.
// actorID may be the zero UUID for system initiated changes. Whether the
// edge is legal is decided later, against the stored status.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	next order.Status,
	actorID kernel.UUID,
	reason *string,
	flags map[string]bool,
) (AdvanceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), next.Validate()); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		next:    next,
		actorID: actorID,
		reason:  reason,
		flags:   maps.Clone(flags),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderCommand) Next() order.Status {
	return c.next
}

func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c AdvanceOrderCommand) Reason() *string {
	return c.reason
}

func (c AdvanceOrderCommand) Flags() map[string]bool {
	return maps.Clone(c.flags)
}

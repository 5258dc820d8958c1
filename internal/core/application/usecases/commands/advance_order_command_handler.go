package commands

import (
	"context"

	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/domain/services"
)

// AdvanceOrderCommandHandler loads the current order and hands the requested
// transition to the OrderAdvancer. It returns the order as stored after the
// change; nothing is written locally.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	advancer   OrderAdvancer
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, advancer OrderAdvancer) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		advancer:   advancer,
	}
}

// Handle returns errs.ObjectNotFoundError for unknown orders and otherwise the
// errors of services.TransitionValidator.Advance unchanged.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	return h.advancer.Advance(ctx, current, cmd.Next(), services.TransitionMetadata{
		Reason:  cmd.Reason(),
		ActorID: cmd.ActorID(),
		Flags:   cmd.Flags(),
	})
}

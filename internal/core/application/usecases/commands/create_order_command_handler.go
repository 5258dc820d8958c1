package commands

import (
	"context"
	"time"

	"cashrun/internal/core/domain/model/order"
)

// CreateOrderResult identifies the new order and the ATM assigned to it.
type CreateOrderResult struct {
	Order      *order.Order
	Assignment AssignAtmResult
}

// CreateOrderCommandHandler creates Pending orders. The withdrawal ATM is
// assigned before anything is stored, so an order never exists without one.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, assignHandler)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrNoAvailableAtm) {
//	    // nothing was stored
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   AtmAssigner
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, assigner AtmAssigner) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		now:        time.Now,
	}
}

// Handle assigns an ATM to the delivery address, then persists the order in
// a transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	assignCmd, err := NewAssignAtmCommand(cmd.CustomerAddressID(), cmd.Lat(), cmd.Lng())
	if err != nil {
		return CreateOrderResult{}, err
	}

	assignment, err := h.assigner.Handle(ctx, assignCmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.CustomerAddressID(),
		cmd.Amount(),
		cmd.Style(),
		h.now().UTC(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = o.AssignAtm(assignment.AtmID); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Order: o, Assignment: assignment}, nil
}

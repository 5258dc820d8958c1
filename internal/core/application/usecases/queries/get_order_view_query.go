package queries

import (
	"errors"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/guard"
)

var ErrGetOrderViewQueryIsNotConstructed = errors.New(
	"GetOrderViewQuery must be created via NewGetOrderViewQuery constructor",
)

// GetOrderViewQuery loads a single order with its customer and runner
// projections.
//
// Example:
//
//	query, err := NewGetOrderViewQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderViewQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderViewQuery(orderID kernel.UUID) (GetOrderViewQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderViewQuery{}, err
	}
	return GetOrderViewQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderViewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderViewQueryIsNotConstructed)
}

func (q GetOrderViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

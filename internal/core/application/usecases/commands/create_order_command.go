package commands

import (
	"errors"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("requested amount must be greater than 0")
)

// CreateOrderCommand represents a customer's request for a cash delivery to
// one of their addresses.
//
// Example:
//
//	amount := decimal.RequireFromString("120.00")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, addressID, amount, order.StyleCounted, 40.73, -73.99)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerID        kernel.UUID
	customerAddressID kernel.UUID
	amount            decimal.Decimal
	style             order.DeliveryStyle
	lat               float64
	lng               float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids, amount and style. The coordinates of
// the delivery address are forwarded to the ATM assignment as given.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerAddressID kernel.UUID,
	amount decimal.Decimal,
	style order.DeliveryStyle,
	lat, lng float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setCustomerAddressID(customerAddressID),
		cmd.setAmount(amount),
		cmd.setStyle(style),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) CustomerAddressID() kernel.UUID {
	return c.customerAddressID
}

func (c CreateOrderCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c CreateOrderCommand) Style() order.DeliveryStyle {
	return c.style
}

func (c CreateOrderCommand) Lat() float64 {
	return c.lat
}

func (c CreateOrderCommand) Lng() float64 {
	return c.lng
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerAddressID = id
	return nil
}

func (c *CreateOrderCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}
	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setStyle(style order.DeliveryStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}
	c.style = style
	return nil
}

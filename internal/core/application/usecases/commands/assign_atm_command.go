package commands

import (
	"errors"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/guard"
)

var ErrAssignAtmCommandIsNotConstructed = errors.New(
	"AssignAtmCommand must be created via NewAssignAtmCommand constructor",
)

// AssignAtmCommand asks for the withdrawal ATM of a delivery address.
//
// Latitude and longitude are passed through as given; range validation is
// the caller's job.
//
// Example:
//
//	cmd, err := NewAssignAtmCommand(addressID, 40.7359, -73.9911)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type AssignAtmCommand struct {
	addressID kernel.UUID
	lat       float64
	lng       float64

	guard guard.ConstructorGuard
}

func NewAssignAtmCommand(addressID kernel.UUID, lat, lng float64) (AssignAtmCommand, error) {
	if err := addressID.Validate(); err != nil {
		return AssignAtmCommand{}, err
	}

	return AssignAtmCommand{
		addressID: addressID,
		lat:       lat,
		lng:       lng,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignAtmCommand) Validate() error {
	return c.guard.Validate(ErrAssignAtmCommandIsNotConstructed)
}

func (c AssignAtmCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c AssignAtmCommand) Lat() float64 {
	return c.lat
}

func (c AssignAtmCommand) Lng() float64 {
	return c.lng
}

package commands

import (
	"errors"
	"strings"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/guard"
)

var (
	ErrRegisterAtmCommandIsNotConstructed = errors.New(
		"RegisterAtmCommand must be created via NewRegisterAtmCommand constructor",
	)
	ErrAtmNameIsRequired    = errors.New("atm name is required")
	ErrAtmAddressIsRequired = errors.New("atm address is required")
)

// RegisterAtmCommand adds a cash withdrawal location. New ATMs start active.
type RegisterAtmCommand struct { //nolint:recvcheck //using for validation
	atmID    kernel.UUID
	name     string
	address  string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewRegisterAtmCommand(
	atmID kernel.UUID,
	name, address string,
	location kernel.GeoPoint,
) (RegisterAtmCommand, error) {
	cmd := RegisterAtmCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setAtmID(atmID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setLocation(location),
	); err != nil {
		return RegisterAtmCommand{}, err
	}

	return cmd, nil
}

func (c RegisterAtmCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAtmCommandIsNotConstructed)
}

func (c RegisterAtmCommand) AtmID() kernel.UUID {
	return c.atmID
}

func (c RegisterAtmCommand) Name() string {
	return c.name
}

func (c RegisterAtmCommand) Address() string {
	return c.address
}

func (c RegisterAtmCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *RegisterAtmCommand) setAtmID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.atmID = id
	return nil
}

func (c *RegisterAtmCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrAtmNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterAtmCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAtmAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *RegisterAtmCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

package commands

import (
	"errors"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/guard"
)

var ErrSetAtmStatusCommandIsNotConstructed = errors.New(
	"SetAtmStatusCommand must be created via NewSetAtmStatusCommand constructor",
)

// SetAtmStatusCommand switches an ATM between active and inactive. Inactive
// ATMs are skipped by assignment, including through existing preferences.
type SetAtmStatusCommand struct {
	atmID  kernel.UUID
	status atm.Status

	guard guard.ConstructorGuard
}

func NewSetAtmStatusCommand(atmID kernel.UUID, status atm.Status) (SetAtmStatusCommand, error) {
	if err := errors.Join(atmID.Validate(), status.Validate()); err != nil {
		return SetAtmStatusCommand{}, err
	}

	return SetAtmStatusCommand{
		atmID:  atmID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetAtmStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetAtmStatusCommandIsNotConstructed)
}

func (c SetAtmStatusCommand) AtmID() kernel.UUID {
	return c.atmID
}

func (c SetAtmStatusCommand) Status() atm.Status {
	return c.status
}

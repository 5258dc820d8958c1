package commands

import (
	"context"

	"cashrun/internal/core/domain/model/atm"
)

// RegisterAtmCommandHandler persists newly registered ATMs.
type RegisterAtmCommandHandler struct {
	uowFactory AtmUoWFactory
}

func NewRegisterAtmCommandHandler(uowFactory AtmUoWFactory) RegisterAtmCommandHandler {
	return RegisterAtmCommandHandler{uowFactory: uowFactory}
}

func (h RegisterAtmCommandHandler) Handle(ctx context.Context, cmd RegisterAtmCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	created, err := atm.NewAtm(cmd.AtmID(), cmd.Name(), cmd.Address(), cmd.Location())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AtmRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

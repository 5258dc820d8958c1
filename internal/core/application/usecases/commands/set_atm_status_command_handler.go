package commands

import (
	"context"
)

// SetAtmStatusCommandHandler loads an ATM, changes its status and saves it in
// one transaction.
type SetAtmStatusCommandHandler struct {
	uowFactory AtmUoWFactory
}

func NewSetAtmStatusCommandHandler(uowFactory AtmUoWFactory) SetAtmStatusCommandHandler {
	return SetAtmStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetAtmStatusCommandHandler) Handle(ctx context.Context, cmd SetAtmStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AtmRepository()
	target, err := repo.Get(ctx, cmd.AtmID())
	if err != nil {
		return err
	}

	if err = target.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

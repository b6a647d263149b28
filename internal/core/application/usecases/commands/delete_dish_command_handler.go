package commands

import (
	"context"

	"comanda/internal/pkg/errs"
)

// DeleteDishCommandHandler handles removing a dish from the menu.
// The database keeps referential integrity: a dish referenced by an order
// item cannot be deleted, the repository surfaces that as an error.
type DeleteDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewDeleteDishCommandHandler creates a handler for dish removal.
func NewDeleteDishCommandHandler(uowFactory DishUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish removal command.
func (h *DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanManageDishes() {
		return errs.NewUnauthorizedError("delete dish", cmd.Actor().Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DishRepository()
	d, err := repo.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

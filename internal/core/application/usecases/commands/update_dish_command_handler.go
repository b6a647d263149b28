package commands

import (
	"context"

	"comanda/internal/pkg/errs"
)

// UpdateDishCommandHandler handles partial dish edits.
// Fields present in the command are applied; omitted fields keep their
// value. Price and availability edits never touch the captured price on
// existing order items, which live on the order rows.
type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewUpdateDishCommandHandler creates a handler for dish edits.
func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish edit command.
func (h *UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanManageDishes() {
		return errs.NewUnauthorizedError("update dish", cmd.Actor().Role().String())
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

	if cmd.Name() != nil {
		if err = d.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Price() != nil {
		d.ChangePrice(*cmd.Price())
	}
	if cmd.Description() != nil {
		d.SetDescription(*cmd.Description())
	}
	if cmd.Image() != nil {
		d.SetImage(*cmd.Image())
	}
	if cmd.Category() != nil {
		d.SetCategory(*cmd.Category())
	}
	if cmd.Available() != nil {
		d.SetAvailable(*cmd.Available())
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

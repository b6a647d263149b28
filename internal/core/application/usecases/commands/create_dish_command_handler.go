package commands

import (
	"context"

	"comanda/internal/core/domain/model/dish"
	"comanda/internal/pkg/errs"
)

// CreateDishCommandHandler handles the business logic for adding dishes.
// Only administrators manage the catalog.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory DishUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish creation command.
// Rejects non-admin actors, then persists the new dish transactionally.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanManageDishes() {
		return errs.NewUnauthorizedError("create dish", cmd.Actor().Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := dish.NewDish(cmd.DishID(), cmd.Name(), cmd.Price(),
		cmd.Description(), cmd.Image(), cmd.Category())
	if err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
)

// CloseOrderCommandHandler handles settling a MESA order's bill.
// Only an ABERTO MESA order can be closed; anything else is an invalid
// transition. The closed order is returned so the caller can print the
// total on the receipt.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCloseOrderCommandHandler creates a handler for closing orders.
func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close order command.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Close(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

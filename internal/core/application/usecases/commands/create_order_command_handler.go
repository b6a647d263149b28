package commands

import (
	"context"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
)

// CreateOrderCommandHandler handles opening a new order.
// Item prices are captured from the catalog inside the same transaction
// that persists the order, so later menu edits never change what an open
// order owes. The order number comes from a database sequence, which keeps
// concurrent creations from ever sharing a number.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created
// order, with its assigned number and computed total.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	dishRepo := uow.DishRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		d, err := dishRepo.Get(ctx, spec.DishID)
		if err != nil {
			return nil, err
		}
		if !d.Available() {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("dish %s is unavailable", d.Name()))
		}

		item, err := order.NewItem(d.ID(), spec.Quantity, d.Price(), spec.Note)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	orderRepo := uow.OrderRepository()
	seq, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromSequence(seq)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.OrderType(),
		cmd.Details(),
		items,
		cmd.Actor().ID(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

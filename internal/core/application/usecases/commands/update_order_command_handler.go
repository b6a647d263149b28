package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles order edits: status moves through the
// state machine and customer detail changes. Forbidden status moves are
// rejected by the aggregate; detail-only edits are allowed in any status.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Status() != nil {
		if err = o.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}
	if cmd.CustomerName() != nil {
		o.SetCustomerName(*cmd.CustomerName())
	}
	if cmd.CustomerPhone() != nil {
		o.SetCustomerPhone(*cmd.CustomerPhone())
	}
	if cmd.TableNumber() != nil {
		o.SetTableNumber(*cmd.TableNumber())
	}
	if cmd.DeliveryAddress() != nil {
		o.SetDeliveryAddress(*cmd.DeliveryAddress())
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

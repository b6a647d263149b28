package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial edit of an order: a status change
// and/or customer detail changes. Nil pointers mean "field omitted"; a
// pointer to the empty string clears an optional detail. Items are fixed at
// creation and cannot be edited.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor           staff.Actor
	orderID         kernel.UUID
	status          *order.Status
	customerName    *string
	customerPhone   *string
	tableNumber     *int
	deliveryAddress *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial order edit command. A present
// status must be a known status value; whether the move is allowed is
// decided by the aggregate's state machine, not here.
func NewUpdateOrderCommand(
	actor staff.Actor,
	orderID kernel.UUID,
	status *order.Status,
	customerName, customerPhone *string,
	tableNumber *int,
	deliveryAddress *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		tableNumber:     tableNumber,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the staff member performing the operation.
func (c UpdateOrderCommand) Actor() staff.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being edited.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status, or nil when omitted.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// CustomerName returns the new customer name, or nil when omitted.
func (c UpdateOrderCommand) CustomerName() *string {
	return c.customerName
}

// CustomerPhone returns the new customer phone, or nil when omitted.
func (c UpdateOrderCommand) CustomerPhone() *string {
	return c.customerPhone
}

// TableNumber returns the new table number, or nil when omitted.
func (c UpdateOrderCommand) TableNumber() *int {
	return c.tableNumber
}

// DeliveryAddress returns the new delivery address, or nil when omitted.
func (c UpdateOrderCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

func (c *UpdateOrderCommand) setActor(actor staff.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	c.status = status
	return nil
}

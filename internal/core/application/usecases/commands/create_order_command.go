package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemSpec describes one requested order line: which dish, how many, and an
// optional preparation note. The price is not part of the request, it is
// captured from the catalog when the order is created.
type ItemSpec struct {
	DishID   kernel.UUID
	Quantity int
	Note     string
}

func (s ItemSpec) validate() error {
	return errors.Join(
		s.DishID.Validate(),
		func() error {
			if s.Quantity <= 0 {
				return errs.NewValueIsInvalidError("quantity")
			}
			return nil
		}(),
	)
}

// CreateOrderCommand represents a request to open a new order.
// Customer details are optional for MESA orders; a DELIVERY order is
// expected to carry a delivery address, but the command does not enforce
// that so the counter can take phone orders with the address pending.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor     staff.Actor
	orderID   kernel.UUID
	orderType order.Type
	details   order.Details
	items     []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order.
// Requires a valid actor and order id, a valid order type and at least one
// item; every item must reference a valid dish id with a positive quantity.
func NewCreateOrderCommand(
	actor staff.Actor,
	orderID kernel.UUID,
	orderType order.Type,
	details order.Details,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setOrderType(orderType),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the staff member opening the order.
func (c CreateOrderCommand) Actor() staff.Actor {
	return c.actor
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns whether this is a MESA or DELIVERY order.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Details returns the customer details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setActor(actor staff.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrUpdateDishCommandIsNotConstructed = errors.New(
		"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
	)
)

// UpdateDishCommand represents a partial edit of a dish. Nil pointers mean
// "field omitted"; a pointer to the empty string explicitly clears an
// optional field. The name, when present, must not be empty.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	actor       staff.Actor
	dishID      kernel.UUID
	name        *string
	price       *kernel.Money
	description *string
	image       *string
	category    *string
	available   *bool

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a partial dish edit command.
func NewUpdateDishCommand(
	actor staff.Actor,
	dishID kernel.UUID,
	name *string,
	price *kernel.Money,
	description, image, category *string,
	available *bool,
) (UpdateDishCommand, error) {
	cmd := UpdateDishCommand{
		price:       price,
		description: description,
		image:       image,
		category:    category,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDishID(dishID),
		cmd.setName(name),
	); err != nil {
		return UpdateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// Actor returns the staff member performing the operation.
func (c UpdateDishCommand) Actor() staff.Actor {
	return c.actor
}

// DishID returns the identifier of the dish being edited.
func (c UpdateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the new name, or nil when omitted.
func (c UpdateDishCommand) Name() *string {
	return c.name
}

// Price returns the new price, or nil when omitted.
func (c UpdateDishCommand) Price() *kernel.Money {
	return c.price
}

// Description returns the new description, or nil when omitted.
func (c UpdateDishCommand) Description() *string {
	return c.description
}

// Image returns the new image reference, or nil when omitted.
func (c UpdateDishCommand) Image() *string {
	return c.image
}

// Category returns the new category, or nil when omitted.
func (c UpdateDishCommand) Category() *string {
	return c.category
}

// Available returns the new availability flag, or nil when omitted.
func (c UpdateDishCommand) Available() *bool {
	return c.available
}

func (c *UpdateDishCommand) setActor(actor staff.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *UpdateDishCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
)

// CreateDishCommand represents a request to add a dish to the menu.
// Description, image and category are optional and may be empty.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	actor       staff.Actor
	dishID      kernel.UUID
	name        string
	price       kernel.Money
	description string
	image       string
	category    string

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish.
// Validates the acting staff member, the dish id and that the name is not
// empty. The price is already a validated non-negative Money.
func NewCreateDishCommand(
	actor staff.Actor,
	dishID kernel.UUID,
	name string,
	price kernel.Money,
	description, image, category string,
) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		price:       price,
		description: description,
		image:       image,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDishID(dishID),
		cmd.setName(name),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Actor returns the staff member performing the operation.
func (c CreateDishCommand) Actor() staff.Actor {
	return c.actor
}

// DishID returns the identifier minted for the new dish.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Price returns the menu price.
func (c CreateDishCommand) Price() kernel.Money {
	return c.price
}

// Description returns the optional description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Image returns the optional image reference.
func (c CreateDishCommand) Image() string {
	return c.image
}

// Category returns the optional category.
func (c CreateDishCommand) Category() string {
	return c.category
}

func (c *CreateDishCommand) setActor(actor staff.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/guard"
)

var (
	ErrDeleteDishCommandIsNotConstructed = errors.New(
		"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
	)
)

// DeleteDishCommand represents a request to remove a dish from the menu.
type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	actor  staff.Actor
	dishID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDishCommand creates a command to remove a dish.
func NewDeleteDishCommand(actor staff.Actor, dishID kernel.UUID) (DeleteDishCommand, error) {
	cmd := DeleteDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDishID(dishID),
	); err != nil {
		return DeleteDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

// Actor returns the staff member performing the operation.
func (c DeleteDishCommand) Actor() staff.Actor {
	return c.actor
}

// DishID returns the identifier of the dish being removed.
func (c DeleteDishCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c *DeleteDishCommand) setActor(actor staff.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeleteDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

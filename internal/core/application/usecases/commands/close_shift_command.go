package commands

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrCloseShiftCommandIsNotConstructed = errors.New(
		"CloseShiftCommand must be created via NewCloseShiftCommand constructor",
	)
)

// CloseShiftCommand represents closing the day's shift: aggregating the
// day's orders into a summary and purging the order rows.
type CloseShiftCommand struct { //nolint:recvcheck //using for validation
	actor staff.Actor
	at    time.Time

	guard guard.ConstructorGuard
}

// NewCloseShiftCommand creates a command to close the shift that contains
// the instant at. The day boundary is local midnight.
func NewCloseShiftCommand(actor staff.Actor, at time.Time) (CloseShiftCommand, error) {
	cmd := CloseShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAt(at),
	); err != nil {
		return CloseShiftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseShiftCommand) Validate() error {
	return c.guard.Validate(ErrCloseShiftCommandIsNotConstructed)
}

// Actor returns the staff member closing the shift.
func (c CloseShiftCommand) Actor() staff.Actor {
	return c.actor
}

// At returns the instant inside the day being closed.
func (c CloseShiftCommand) At() time.Time {
	return c.at
}

func (c *CloseShiftCommand) setActor(actor staff.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CloseShiftCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	c.at = at
	return nil
}

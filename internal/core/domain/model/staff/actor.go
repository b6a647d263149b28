package staff

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the request-scoped authorization context: the verified identity
// and role of the staff member performing an operation. It replaces any
// ambient session lookup; every command receives the acting Actor explicitly.
//
// Actor is a value object: immutable once constructed.
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an authorization context from a verified staff identity.
// The id must be a valid UUID and the role a valid staff role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the staff member's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the staff member's role.
func (a Actor) Role() Role {
	return a.role
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

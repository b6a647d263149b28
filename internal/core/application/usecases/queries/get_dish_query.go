package queries

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var (
	ErrGetDishQueryIsNotConstructed = errors.New(
		"GetDishQuery must be created via NewGetDishQuery constructor",
	)
)

// GetDishQuery retrieves a single menu entry by id.
type GetDishQuery struct {
	dishID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDishQuery creates a query to retrieve one dish.
func NewGetDishQuery(dishID kernel.UUID) (GetDishQuery, error) {
	if err := dishID.Validate(); err != nil {
		return GetDishQuery{}, err
	}
	return GetDishQuery{dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

// DishID returns the identifier of the requested dish.
func (q GetDishQuery) DishID() kernel.UUID {
	return q.dishID
}

// GetDishQueryResponse represents a single menu entry.
type GetDishQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Image       string
	Category    string
	Available   bool
}

// Package queries contains read operations that bypass the domain model.
// Implements the query side of CQRS: raw SQL read models served straight
// from the database, never loading aggregates.
package queries

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var (
	ErrGetAllDishesQueryIsNotConstructed = errors.New(
		"GetAllDishesQuery must be created via NewGetAllDishesQuery constructor",
	)
)

// GetAllDishesQuery retrieves the whole menu, including dishes currently
// marked unavailable, so back office screens can re-enable them.
//
// Example:
//
//	query := NewGetAllDishesQuery()
//	handler := NewGetAllDishesQueryHandler(db)
//
//	dishes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menu: %w", err)
//	}
//
//	fmt.Printf("Menu has %d dishes\n", len(dishes))
type GetAllDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDishesQuery creates a query to retrieve the menu.
func NewGetAllDishesQuery() GetAllDishesQuery {
	return GetAllDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDishesQueryIsNotConstructed)
}

// GetAllDishesQueryResponse represents one menu entry.
type GetAllDishesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Image       string
	Category    string
	Available   bool
}

package ports

import (
	"context"

	"comanda/internal/core/domain/model/dish"
	"comanda/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for the dish catalog.
type DishRepository interface {
	// Add persists a new dish.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update persists changes to an existing dish.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// Delete removes a dish. Fails when any order item still references
	// the dish; the foreign key is RESTRICT, never cascade.
	Delete(ctx context.Context, id kernel.UUID) error
}

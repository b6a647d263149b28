// Package ports defines repository and unit-of-work interfaces between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's status and customer
	// details. Items are fixed at creation and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextNumber atomically reserves the next value of the order number
	// sequence. Two concurrent callers always observe distinct values.
	NextNumber(ctx context.Context) (int64, error)

	// GetAllCreatedBetween retrieves every order created in [from, to),
	// regardless of status. Shift close reads the day's orders through
	// this, inside its transaction.
	GetAllCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)

	// DeleteByIDs removes exactly the orders with the given ids; their
	// items are removed by cascade. Deleting by explicit id list (rather
	// than re-evaluating a time window) keeps shift close from destroying
	// orders it never read.
	DeleteByIDs(ctx context.Context, ids []kernel.UUID) error
}

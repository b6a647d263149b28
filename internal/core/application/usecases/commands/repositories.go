// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization, transaction management, and persistence.
package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DishRepoFactory provides access to the dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SummaryRepoFactory provides access to the summary repository within a transaction.
	SummaryRepoFactory interface {
		SummaryRepository() ports.SummaryRepository
	}

	// DishUoW manages transactions for catalog-only operations.
	DishUoW interface {
		TxManager
		DishRepoFactory
	}

	// DishUoWFactory creates new dish unit of work instances.
	DishUoWFactory interface {
		Create() DishUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages the order creation transaction, which reads the
	// dish catalog to capture current prices and writes the new order.
	OrderingUoW interface {
		TxManager
		DishRepoFactory
		OrderRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// ShiftUoW manages the shift close transaction, which spans the order
	// rows being purged and the summary row being written. Both must land
	// atomically: a concurrently created order is either counted in the
	// summary or left untouched, never silently dropped.
	ShiftUoW interface {
		TxManager
		OrderRepoFactory
		SummaryRepoFactory
	}

	// ShiftUoWFactory creates new shift unit of work instances.
	ShiftUoWFactory interface {
		Create() ShiftUoW
	}
)

package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllDishesQueryHandler retrieves the menu from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllDishesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDishesQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetAllDishesQueryHandler(db *gorm.DB) GetAllDishesQueryHandler {
	return GetAllDishesQueryHandler{db: db}
}

// Handle executes the query to retrieve all dishes.
// Returns the menu sorted by category, then name.
func (h GetAllDishesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDishesQuery,
) ([]GetAllDishesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes := make([]GetAllDishesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			image,
			category,
			available
		FROM dishes
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d GetAllDishesQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&d.Name,
			&d.Description,
			&price,
			&d.Image,
			&d.Category,
			&d.Available,
		)
		if err != nil {
			return nil, err
		}

		dishID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		d.ID = dishID

		money, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		d.Price = money
		dishes = append(dishes, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dishes, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDishQueryHandler retrieves a single dish from the database.
type GetDishQueryHandler struct {
	db *gorm.DB
}

// NewGetDishQueryHandler creates a handler for single-dish queries.
func NewGetDishQueryHandler(db *gorm.DB) GetDishQueryHandler {
	return GetDishQueryHandler{db: db}
}

// Handle executes the query to retrieve one dish.
// Returns ObjectNotFound when no dish has the requested id.
func (h GetDishQueryHandler) Handle(
	ctx context.Context,
	query GetDishQuery,
) (GetDishQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDishQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			image,
			category,
			available
		FROM dishes
		WHERE id = ?
	`, query.DishID().Bytes()).Row()

	var d GetDishQueryResponse
	var id uuid.UUID
	var price decimal.Decimal

	err := row.Scan(
		&id,
		&d.Name,
		&d.Description,
		&price,
		&d.Image,
		&d.Category,
		&d.Available,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDishQueryResponse{}, errs.NewObjectNotFoundError("dish", query.DishID())
	}
	if err != nil {
		return GetDishQueryResponse{}, err
	}

	dishID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDishQueryResponse{}, err
	}
	d.ID = dishID

	money, err := kernel.NewMoney(price)
	if err != nil {
		return GetDishQueryResponse{}, err
	}
	d.Price = money

	return d, nil
}

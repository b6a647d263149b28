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

// GetOrderQueryHandler retrieves a single order with its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns ObjectNotFound when no order has the requested id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			type,
			status,
			customer_name,
			customer_phone,
			table_number,
			delivery_address,
			total,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var o GetOrderQueryResponse
	var id uuid.UUID
	var total decimal.Decimal

	err := row.Scan(
		&id,
		&o.Number,
		&o.Type,
		&o.Status,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.TableNumber,
		&o.DeliveryAddress,
		&total,
		&o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	o.ID = orderID

	money, err := kernel.NewMoney(total)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	o.Total = money
	o.Items = make([]OrderItemResponse, 0)

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.dish_id,
			d.name,
			i.quantity,
			i.price,
			i.note
		FROM order_items i
		JOIN dishes d ON d.id = i.dish_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var dishID uuid.UUID
		var item OrderItemResponse
		var price decimal.Decimal

		err = itemRows.Scan(
			&dishID,
			&item.DishName,
			&item.Quantity,
			&price,
			&item.Note,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		itemDishID, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		item.DishID = itemDishID

		itemPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return GetOrderQueryResponse{}, priceErr
		}
		item.Price = itemPrice
		item.Subtotal = itemPrice.MulInt(item.Quantity)

		o.Items = append(o.Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return o, nil
}

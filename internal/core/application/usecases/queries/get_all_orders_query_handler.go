package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the order board from the database.
// Two raw queries: one for the order rows, one for all their items with
// dish names joined in, grouped in memory. Avoids loading aggregates on
// the read path.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order board queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve recent orders, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY created_at DESC
		LIMIT ?
	`, getAllOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetAllOrdersQueryResponse
		var id uuid.UUID
		var total decimal.Decimal

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID

		money, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}
		o.Total = money
		o.Items = make([]OrderItemResponse, 0)

		index[id] = len(orders)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for id := range index {
		ids = append(ids, id)
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.dish_id,
			d.name,
			i.quantity,
			i.price,
			i.note
		FROM order_items i
		JOIN dishes d ON d.id = i.dish_id
		WHERE i.order_id IN ?
		ORDER BY i.id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID, dishID uuid.UUID
		var item OrderItemResponse
		var price decimal.Decimal

		err = itemRows.Scan(
			&orderID,
			&dishID,
			&item.DishName,
			&item.Quantity,
			&price,
			&item.Note,
		)
		if err != nil {
			return nil, err
		}

		itemDishID, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.DishID = itemDishID

		money, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = money
		item.Subtotal = money.MulInt(item.Quantity)

		if pos, ok := index[orderID]; ok {
			orders[pos].Items = append(orders[pos].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

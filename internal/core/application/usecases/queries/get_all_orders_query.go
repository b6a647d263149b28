package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// getAllOrdersLimit caps the board at the most recent orders. The order
// table only ever holds the current day (shift close purges it), so the cap
// is a guard against runaway days, not pagination.
const getAllOrdersLimit = 100

// GetAllOrdersQuery retrieves the current day's orders for the floor board,
// newest first.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.Number, o.Status, o.Total)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve the order board.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse represents one line of an order read model.
// DishName is resolved by joining the catalog; a dish deleted after the
// order was placed would block on the foreign key, so the name is always
// present.
type OrderItemResponse struct {
	DishID   kernel.UUID
	DishName string
	Quantity int
	Price    kernel.Money
	Subtotal kernel.Money
	Note     string
}

// GetAllOrdersQueryResponse represents one order on the board.
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Type            string
	Status          string
	CustomerName    string
	CustomerPhone   string
	TableNumber     int
	DeliveryAddress string
	Total           kernel.Money
	Items           []OrderItemResponse
	CreatedAt       time.Time
}

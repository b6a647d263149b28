package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the single error payload shape for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDish is the request body for adding a dish to the menu.
// Price travels as a decimal string so no float ever touches money.
type NewDish struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
}

// DishPatch is the request body for editing a dish. Absent fields are left
// untouched; an empty string clears an optional field.
type DishPatch struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Category    *string `json:"category,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// Dish is the response shape of one menu entry.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
}

// NewOrderItem is one requested line of a new order.
type NewOrderItem struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// NewOrder is the request body for opening an order.
type NewOrder struct {
	Type            string         `json:"type"`
	CustomerName    string         `json:"customerName,omitempty"`
	CustomerPhone   string         `json:"customerPhone,omitempty"`
	TableNumber     int            `json:"tableNumber,omitempty"`
	DeliveryAddress string         `json:"deliveryAddress,omitempty"`
	Items           []NewOrderItem `json:"items"`
}

// OrderPatch is the request body for editing an order: a status move and/or
// customer detail changes. Items cannot be edited after creation.
type OrderPatch struct {
	Status          *string `json:"status,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	TableNumber     *int    `json:"tableNumber,omitempty"`
	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
}

// OrderItem is the response shape of one order line.
type OrderItem struct {
	DishID   string `json:"dishId"`
	DishName string `json:"dishName,omitempty"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
	Note     string `json:"note,omitempty"`
}

// Order is the response shape of one order.
type Order struct {
	ID              string      `json:"id"`
	Number          string      `json:"number"`
	Type            string      `json:"type"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	TableNumber     int         `json:"tableNumber,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	Total           string      `json:"total"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// CloseShift is the request body of a shift close. The date is optional:
// absent means "close today", set allows closing a leftover past day.
type CloseShift struct {
	Date *openapi_types.Date `json:"date,omitempty"`
}

// DailySummary is the response shape of a closed shift.
type DailySummary struct {
	Date            openapi_types.Date `json:"date"`
	TotalOrders     int                `json:"totalOrders"`
	TotalRevenue    string             `json:"totalRevenue"`
	MesaOrders      int                `json:"mesaOrders"`
	MesaRevenue     string             `json:"mesaRevenue"`
	DeliveryOrders  int                `json:"deliveryOrders"`
	DeliveryRevenue string             `json:"deliveryRevenue"`
	AverageTicket   string             `json:"averageTicket"`
	ClosedBy        string             `json:"closedBy"`
	ClosedAt        time.Time          `json:"closedAt"`
}

// CashierReport is the response shape of a revenue report.
type CashierReport struct {
	Period          string             `json:"period"`
	From            openapi_types.Date `json:"from"`
	To              openapi_types.Date `json:"to"`
	TotalOrders     int                `json:"totalOrders"`
	TotalRevenue    string             `json:"totalRevenue"`
	MesaOrders      int                `json:"mesaOrders"`
	MesaRevenue     string             `json:"mesaRevenue"`
	DeliveryOrders  int                `json:"deliveryOrders"`
	DeliveryRevenue string             `json:"deliveryRevenue"`
	AverageTicket   string             `json:"averageTicket"`
}

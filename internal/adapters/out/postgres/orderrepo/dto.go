// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders and their items are written together; items are
// immutable after creation and are removed by cascade when the order goes.
package orderrepo

import (
	"time"

	"comanda/internal/adapters/out/postgres/dishrepo"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure of an order aggregate.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"uniqueIndex;not null"`
	Type            string    `gorm:"not null"`
	Status          string    `gorm:"index;not null"`
	CustomerName    string
	CustomerPhone   string
	TableNumber     int
	DeliveryAddress string
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedBy       uuid.UUID       `gorm:"type:uuid"`
	CreatedAt       time.Time       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. The dish reference is RESTRICT: a dish
// on any order cannot be deleted from the catalog.
type ItemDTO struct {
	ID       int64             `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID         `gorm:"type:uuid;index;not null"`
	DishID   uuid.UUID         `gorm:"type:uuid;index;not null"`
	Dish     dishrepo.DishDTO  `gorm:"foreignKey:DishID;references:ID;constraint:OnDelete:RESTRICT"`
	Quantity int               `gorm:"not null"`
	Price    decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	Note     string
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			DishID:   item.DishID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
			Note:     item.Note(),
		})
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number().String(),
		Type:            aggregate.Type().String(),
		Status:          aggregate.Status().String(),
		CustomerName:    details.CustomerName,
		CustomerPhone:   details.CustomerPhone,
		TableNumber:     details.TableNumber,
		DeliveryAddress: details.DeliveryAddress,
		Total:           aggregate.Total().Decimal(),
		Items:           itemDTOs,
		CreatedBy:       aggregate.CreatedBy().Bytes(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database row with its items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	orderType, err := order.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, itemErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoney(itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(dishID, itemDTO.Quantity, price, itemDTO.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		number,
		orderType,
		status,
		order.Details{
			CustomerName:    dto.CustomerName,
			CustomerPhone:   dto.CustomerPhone,
			TableNumber:     dto.TableNumber,
			DeliveryAddress: dto.DeliveryAddress,
		},
		items,
		createdBy,
		dto.CreatedAt,
	)
}

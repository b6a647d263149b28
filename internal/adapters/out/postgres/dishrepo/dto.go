// Package dishrepo provides data transfer objects and mapping functions for
// dish persistence. Implements the repository pattern for the dish catalog,
// handling conversion between domain entities and database rows.
package dishrepo

import (
	"comanda/internal/core/domain/model/dish"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DishDTO represents the database structure of a menu entry.
type DishDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       string
	Category    string `gorm:"index"`
	Available   bool
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

// fromDomain converts a dish aggregate to its database representation.
func fromDomain(aggregate *dish.Dish) DishDTO {
	return DishDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Decimal(),
		Image:       aggregate.Image(),
		Category:    aggregate.Category(),
		Available:   aggregate.Available(),
	}
}

// toDomain converts a database row to a dish aggregate.
func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return dish.RestoreDish(
		id, dto.Name, price, dto.Description, dto.Image, dto.Category, dto.Available)
}

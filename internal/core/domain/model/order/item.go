package order

import (
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// Item is one line of an order: a dish reference, a positive quantity, the
// unit price captured at order time and an optional free-text note.
//
// The captured price is deliberately decoupled from the dish's current
// price: editing a dish later never changes what an existing order charged.
type Item struct {
	dishID   kernel.UUID
	quantity int
	price    kernel.Money
	note     string

	isConstructed bool
}

// NewItem creates an order line with validation.
// The quantity must be positive; the price is the unit price to capture.
func NewItem(dishID kernel.UUID, quantity int, price kernel.Money, note string) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		dishID:        dishID,
		quantity:      quantity,
		price:         price,
		note:          note,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("order item must be created via NewItem")
	}
	return nil
}

// DishID returns the referenced dish's identifier.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at order time.
func (i Item) Price() kernel.Money {
	return i.price
}

// Note returns the optional kitchen note ("sem cebola").
func (i Item) Note() string {
	return i.note
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() kernel.Money {
	return i.price.MulInt(i.quantity)
}

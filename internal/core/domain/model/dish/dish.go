package dish

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the NewDish factory method or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu entry administrators maintain. Orders reference dishes by
// id but capture the price at order time, so later edits to a dish never
// change what an existing order charged.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Price is a non-negative decimal (enforced by kernel.Money)
type Dish struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	image       string
	category    string
	available   bool

	isConstructed bool
}

// NewDish creates a dish with validation. New dishes start available.
// Description, image and category are optional and may be empty.
func NewDish(id kernel.UUID, name string, price kernel.Money, description, image, category string) (*Dish, error) {
	d := &Dish{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.price = price
	d.description = description
	d.image = image
	d.category = category
	return d, nil
}

// RestoreDish reconstructs a dish from persistence, including its
// availability flag. Used only by repository adapters.
func RestoreDish(
	id kernel.UUID,
	name string,
	price kernel.Money,
	description, image, category string,
	available bool,
) (*Dish, error) {
	d, err := NewDish(id, name, price, description, image, category)
	if err != nil {
		return nil, err
	}
	d.available = available
	return d, nil
}

// Validate ensures the Dish instance was properly constructed.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsEqual compares two dishes by their unique identifiers.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the optional free-text description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the current menu price.
func (d *Dish) Price() kernel.Money {
	return d.price
}

// Image returns the optional image reference.
func (d *Dish) Image() string {
	return d.image
}

// Category returns the optional menu category.
func (d *Dish) Category() string {
	return d.category
}

// Available reports whether the dish can currently be ordered.
func (d *Dish) Available() bool {
	return d.available
}

// Rename changes the dish name. The name must not be empty.
func (d *Dish) Rename(name string) error {
	return d.setName(name)
}

// ChangePrice sets a new menu price. Existing order items keep the price
// they captured when the order was created.
func (d *Dish) ChangePrice(price kernel.Money) {
	d.price = price
}

// SetDescription replaces the description; empty clears it.
func (d *Dish) SetDescription(description string) {
	d.description = description
}

// SetImage replaces the image reference; empty clears it.
func (d *Dish) SetImage(image string) {
	d.image = image
}

// SetCategory replaces the category; empty clears it.
func (d *Dish) SetCategory(category string) {
	d.category = category
}

// SetAvailable toggles whether the dish can be ordered.
func (d *Dish) SetAvailable(available bool) {
	d.available = available
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

package order

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Details carries the optional customer-facing fields of an order.
// Empty strings and a zero table number mean "not set".
type Details struct {
	CustomerName    string
	CustomerPhone   string
	TableNumber     int
	DeliveryAddress string
}

// Order is the aggregate root for a customer order. It owns its line items
// and enforces the lifecycle rules:
//
//   - MESA orders start ABERTO and follow the MESA state machine
//     (ABERTO -> FECHADO/CANCELADO, FECHADO -> ABERTO, CANCELADO terminal).
//   - DELIVERY orders are created in the DELIVERY status and their status is
//     immutable for the rest of their life.
//   - The total always equals the exact decimal sum of the items' subtotals.
//   - Items are fixed at creation; only status and customer details change.
type Order struct {
	id        kernel.UUID
	number    Number
	orderType Type
	status    Status
	details   Details
	items     []Item
	total     kernel.Money
	createdBy kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order with validation. The item list must be
// non-empty (each item already carries its own validated quantity and
// captured price); the total is computed here as Σ(price × quantity). The
// initial status follows the type.
func NewOrder(
	id kernel.UUID,
	number Number,
	orderType Type,
	details Details,
	items []Item,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		details:       details,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setType(orderType),
		o.setItems(items),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	o.status = orderType.InitialStatus()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit
// status. Used only by repository adapters; the total is recomputed from the
// restored items, which by construction matches the stored value.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	orderType Type,
	status Status,
	details Details,
	items []Item,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, orderType, details, items, createdBy, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the sequential human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// Type returns the order type (MESA or DELIVERY).
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Details returns the customer-facing fields.
func (o *Order) Details() Details {
	return o.details
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the exact decimal sum of the items' subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedBy returns the identifier of the staff member who created the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the target status via the generic update
// path.
//
// DELIVERY orders reject every target except their current status (the
// same-status no-op is accepted so idempotent updates don't fail). MESA
// orders consult the MESA transition table.
func (o *Order) ChangeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if o.orderType == TypeDelivery {
		if to == o.status {
			return nil
		}
		return errs.NewInvalidTransitionError("change status", o.status.String(), to.String())
	}

	newStatus, err := o.status.ChangeTo(to)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Close performs the dedicated close action: only an ABERTO MESA order can
// be closed, and closing transitions it to FECHADO. Everything else fails
// with InvalidTransition and leaves the order unchanged.
func (o *Order) Close() error {
	if o.orderType != TypeMesa || o.status != StatusAberto {
		return errs.NewInvalidTransitionError("close order",
			o.orderType.String()+"/"+o.status.String(), StatusFechado.String())
	}
	o.status = StatusFechado
	return nil
}

// SetCustomerName replaces the customer name; empty clears it.
func (o *Order) SetCustomerName(name string) {
	o.details.CustomerName = name
}

// SetCustomerPhone replaces the customer phone; empty clears it.
func (o *Order) SetCustomerPhone(phone string) {
	o.details.CustomerPhone = phone
}

// SetTableNumber replaces the table number; zero clears it.
func (o *Order) SetTableNumber(table int) {
	o.details.TableNumber = table
}

// SetDeliveryAddress replaces the delivery address; empty clears it.
func (o *Order) SetDeliveryAddress(address string) {
	o.details.DeliveryAddress = address
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

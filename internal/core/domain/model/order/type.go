package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Type distinguishes dine-in orders from delivery orders. The type is fixed
// at creation and determines both the initial status and which lifecycle
// transitions are allowed afterwards.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeMesa is a dine-in (table service) order.
	TypeMesa

	// TypeDelivery is a delivery order. Its status is fixed at creation.
	TypeDelivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeMesa:     "MESA",
		TypeDelivery: "DELIVERY",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeMesa:     "MESA",
		TypeDelivery: "DELIVERY",
	}
}

// ParseType converts the persisted/transported string form into a Type.
func ParseType(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire name of the type ("MESA", "DELIVERY").
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// InitialStatus returns the status a freshly created order of this type
// starts in: ABERTO for MESA, DELIVERY for DELIVERY.
func (t Type) InitialStatus() Status {
	if t == TypeDelivery {
		return StatusDelivery
	}
	return StatusAberto
}

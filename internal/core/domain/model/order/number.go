package order

import (
	"fmt"
	"regexp"

	"comanda/internal/pkg/errs"
)

// numberPattern is the wire form of an order number: "ORD-" followed by a
// zero-padded sequence of at least six digits.
var numberPattern = regexp.MustCompile(`^ORD-\d{6,}$`)

// Number is the sequential human-readable order number shown to staff and
// printed on tickets. It is derived from a database sequence, so concurrent
// order creation can never mint duplicates.
type Number struct {
	value string
}

// NumberFromSequence formats a sequence value as an order number.
// Values wider than six digits are kept whole rather than truncated.
func NumberFromSequence(seq int64) (Number, error) {
	if seq <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("sequence value %d is not positive", seq))
	}
	return Number{value: fmt.Sprintf("ORD-%06d", seq)}, nil
}

// NumberFromString restores an order number from its persisted form.
func NumberFromString(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match ORD-NNNNNN", s))
	}
	return Number{value: s}, nil
}

// Validate returns an error for the zero value.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError(
			"order number must be created via NumberFromSequence or NumberFromString")
	}
	return nil
}

// String returns the wire form, e.g. "ORD-000042".
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

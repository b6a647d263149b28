package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// MESA orders move through a small state machine:
//
//	ABERTO ──┬──> FECHADO
//	         │       │
//	         │       └──> ABERTO   (reopen a closed table)
//	         └──> CANCELADO        (terminal)
//
// DELIVERY orders are created in the DELIVERY status and never leave it.
// Status is a value object; transition rules live here so the aggregate
// only has to consult them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAberto is the initial status of a MESA order: the table is open
	// and items are being served.
	StatusAberto

	// StatusFechado means the table was closed and the order counts toward
	// the day's revenue.
	StatusFechado

	// StatusDelivery is the single fixed status of DELIVERY orders.
	StatusDelivery

	// StatusCancelado is terminal; cancelled orders never count toward
	// revenue.
	StatusCancelado
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAberto:    "ABERTO",
		StatusFechado:   "FECHADO",
		StatusDelivery:  "DELIVERY",
		StatusCancelado: "CANCELADO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAberto:    "ABERTO",
		StatusFechado:   "FECHADO",
		StatusDelivery:  "DELIVERY",
		StatusCancelado: "CANCELADO",
	}
}

// mesaTransitions is the transition table for MESA orders. Reopening a
// closed table (FECHADO -> ABERTO) is deliberately allowed; CANCELADO is
// terminal.
func mesaTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAberto:    {StatusFechado, StatusCancelado},
		StatusFechado:   {StatusAberto},
		StatusCancelado: {},
	}
}

// ParseStatus converts the persisted/transported string form into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("ABERTO", "FECHADO", ...).
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ChangeTo transitions a MESA status to the target status.
// Same-status changes are accepted as no-ops. Any move outside the MESA
// transition table fails with InvalidTransition.
//
// DELIVERY immutability is enforced by the Order aggregate before this is
// consulted; ChangeTo only knows the MESA machine.
func (s Status) ChangeTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return StatusUnknown, err
	}
	if to == s {
		return s, nil
	}
	for _, allowed := range mesaTransitions()[s] {
		if allowed == to {
			return to, nil
		}
	}
	return StatusUnknown, errs.NewInvalidTransitionError("change status", s.String(), to.String())
}

// CountsTowardRevenue reports whether an order in this status is included
// in shift summaries: only closed tables and deliveries count.
func (s Status) CountsTowardRevenue() bool {
	return s == StatusFechado || s == StatusDelivery
}

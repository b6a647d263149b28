package kernel

import (
	"fmt"

	"comanda/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount. It wraps shopspring/decimal so
// that totals, revenue and average-ticket math stay exact; float arithmetic
// never touches prices anywhere in the system.
//
// The zero value is a valid zero amount, which keeps Money usable as an
// accumulator:
//
//	var total kernel.Money
//	for _, item := range items {
//	    total = total.Add(item.Subtotal())
//	}
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "35.00".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney parses a decimal string and panics on failure.
// Intended for constants and tests only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// DivInt divides the amount by a positive integer count, rounded to two
// decimal places. Division by zero or a negative count returns the zero
// amount, matching the average-ticket rule for days without orders.
func (m Money) DivInt(n int) Money {
	if n <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.DivRound(decimal.NewFromInt(int64(n)), 2)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts numerically, so "35" equals "35.00".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation, e.g. "35.5".
func (m Money) String() string {
	return m.amount.String()
}

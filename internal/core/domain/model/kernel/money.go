package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative indicates an attempt to construct a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a fixed-point decimal amount used for offering prices and order
// totals. It wraps github.com/shopspring/decimal to avoid binary floating
// point drift in price arithmetic. Amounts are non-negative; two decimal
// places are assumed at the presentation boundary, not enforced here.
//
// Money is immutable: arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Returns ErrMoneyIsNegative for amounts below zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "12.50".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money format: %w", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor, used to price
// an order line as unit price times quantity.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsEqual compares two amounts numerically, ignoring exponent representation.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

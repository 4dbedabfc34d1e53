package kernel

import (
	"fmt"

	"supply/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative euro amount with
// exact decimal arithmetic. It backs unit prices, line subtotals, and order
// totals; the compliance evaluator depends on its exactness so that the 80%
// threshold never flickers at boundary values.
//
// The zero value is a valid zero amount. Money is immutable: every
// arithmetic operation returns a new value.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount. Negative amounts are
// rejected; the amount is kept at exact precision (prices carry two decimal
// places, quantities are integral, so products stay exact).
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string ("12.50") into Money.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a zero euro amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an integral quantity.
// Used to compute a line subtotal from its unit-price snapshot.
func (m Money) MulQuantity(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places ("40.00").
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

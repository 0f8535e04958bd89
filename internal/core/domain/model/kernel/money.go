package kernel

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Money is an immutable monetary amount in the store's minor currency unit.
// Negative amounts are not representable; arithmetic stays within the type so
// totals are computed the same way everywhere.
//
// The zero value is a valid zero amount.
type Money struct {
	amount int64
}

// NewMoney creates a Money from a non-negative amount.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Multiply returns the amount multiplied by a positive quantity. Used to
// compute a line item's subtotal from its unit price.
func (m Money) Multiply(qty int) (Money, error) {
	if qty <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	return Money{amount: m.amount * int64(qty)}, nil
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount as decimal digits.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

package kernel

import (
	"errors"
	"fmt"

	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created using one of its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoneyFromString, NewMoneyFromInt, NewMoneyFromDecimal, or ZeroMoney")

// Money represents a non-negative peso amount with exact decimal arithmetic.
// Money is an immutable value object; sums and products carry no binary
// floating point drift, so an order total always equals subtotal plus fee
// exactly. The zero value of Money is invalid and will fail validation - use
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("80.50")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 80.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney creates a valid Money of amount zero.
// Used for prepaid item prices and unclassified-store fees.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewMoneyFromInt creates Money from a whole number of pesos.
// Returns an error if units is negative.
func NewMoneyFromInt(units int64) (Money, error) {
	return NewMoneyFromDecimal(decimal.NewFromInt(units))
}

// NewMoneyFromString parses Money from decimal text such as "80" or "80.50".
// Returns an error if the text is not a decimal number or is negative.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(amount)
}

// NewMoneyFromDecimal creates Money from an already-parsed decimal amount.
// Returns an error if the amount is negative.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the exact sum of two amounts.
// Both amounts must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Times returns the amount multiplied by a non-negative integer quantity.
// Used for line item subtotals (quantity x unit price).
func (m Money) Times(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
// Both amounts must be properly constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount), nil
}

// Decimal returns the underlying decimal amount.
// Used by the persistence layer; domain code should prefer Money operations.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "199.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an improperly
// initialized LineItem. Line items must be created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one parsed item of an order: a trimmed non-empty name, a
// positive quantity, and a non-negative unit price. LineItem is an immutable
// value object created by the order parser; the zero value is invalid.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("80")
//	item, err := order.NewLineItem("Burger", 2, price)
//	if err != nil {
//	    // handle validation error
//	}
type LineItem struct { //nolint:recvcheck //using for validation
	name     string
	quantity int
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem with validation.
// The name must be non-empty after trimming, the quantity must be positive,
// and the price must be a properly constructed Money.
func NewLineItem(name string, quantity int, price kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the trimmed item name.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the ordered quantity (always positive).
func (i LineItem) Quantity() int {
	return i.quantity
}

// Price returns the unit price. Zero for prepaid items.
func (i LineItem) Price() kernel.Money {
	return i.price
}

// Subtotal returns quantity x unit price with exact arithmetic.
func (i LineItem) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return i.price.Times(i.quantity)
}

func (i *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.quantity = quantity
	return nil
}

func (i *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}

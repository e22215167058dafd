package order

import (
	"errors"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when an order would carry no items.
	ErrNoLineItems = errors.New("order must have at least one line item")

	// ErrPrepaidItemHasPrice is returned when a Prepaid order carries a priced item.
	// Prepaid item prices are forced to zero during parsing, so a non-zero price
	// here means the order was assembled inconsistently.
	ErrPrepaidItemHasPrice = errors.New("prepaid order items must have zero price")
)

// Order is the aggregate record produced from one interpreted submission:
// who ordered, where the order text came from, the parsed line items and
// their detected format, and the computed financials.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid customer
//   - Must have at least one valid line item
//   - Prepaid orders carry only zero-priced items, so their subtotal is zero
//   - total = subtotal + fee, exactly
//   - Can only be created through the NewOrder constructor and is never mutated
type Order struct {
	// id is the unique identifier assigned at the intake edge
	id kernel.UUID

	// customer is the submitter's identity and delivery details
	customer Customer

	// placedAt is the submission timestamp from the form
	placedAt time.Time

	// processedAt is when the intake engine interpreted the submission
	processedAt time.Time

	// store is the merchant name as submitted
	store string

	// source records which free-text field held the order
	source submission.Source

	// items are the parsed line items
	items []LineItem

	// format is the grammar the order text parsed under
	format Format

	// subtotal is the sum of quantity x price over all items
	subtotal kernel.Money

	// fee is the delivery/service fee from zone classification
	fee kernel.Money

	// total is subtotal plus fee
	total kernel.Money

	// payment is the payment metadata from the form
	payment Payment

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder assembles a validated, immutable Order.
//
// The subtotal is computed from the items and the total from subtotal plus
// fee, both with exact decimal arithmetic. Construction fails if any input is
// invalid or if a Prepaid order carries a non-zero item price.
//
// Building an order twice from identical inputs produces structurally equal
// records; nothing here reads the clock or generates identifiers.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	placedAt time.Time,
	processedAt time.Time,
	store string,
	source submission.Source,
	items []LineItem,
	format Format,
	fee kernel.Money,
	payment Payment,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customer.Validate(),
		source.Validate(),
		format.Validate(),
		fee.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNoLineItems
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		if format == Prepaid && !item.Price().IsZero() {
			return nil, ErrPrepaidItemHasPrice
		}

		itemSubtotal, err := item.Subtotal()
		if err != nil {
			return nil, err
		}

		subtotal, err = subtotal.Add(itemSubtotal)
		if err != nil {
			return nil, err
		}
	}

	total, err := subtotal.Add(fee)
	if err != nil {
		return nil, err
	}

	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}

	return &Order{
		id:            id,
		customer:      customer,
		placedAt:      placedAt,
		processedAt:   processedAt,
		store:         store,
		source:        source,
		items:         append([]LineItem(nil), items...),
		format:        format,
		subtotal:      subtotal,
		fee:           fee,
		total:         total,
		payment:       payment,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
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

// Customer returns the submitter's identity and delivery details.
func (o *Order) Customer() Customer {
	return o.customer
}

// PlacedAt returns the submission timestamp from the form.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ProcessedAt returns when the submission was interpreted.
func (o *Order) ProcessedAt() time.Time {
	return o.processedAt
}

// Store returns the merchant name as submitted.
func (o *Order) Store() string {
	return o.store
}

// Source returns which free-text field held the order.
func (o *Order) Source() submission.Source {
	return o.source
}

// Items returns a copy of the parsed line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Format returns the grammar the order text parsed under.
func (o *Order) Format() Format {
	return o.format
}

// Subtotal returns the sum of quantity x price over all items.
// Structurally zero for Prepaid orders.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Fee returns the delivery/service fee.
func (o *Order) Fee() kernel.Money {
	return o.fee
}

// Total returns subtotal plus fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Payment returns the payment metadata from the form.
func (o *Order) Payment() Payment {
	return o.payment
}

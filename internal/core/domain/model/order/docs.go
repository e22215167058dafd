// Package order provides the domain model for interpreted campus orders.
// It implements the Order aggregate root together with the value objects it
// is assembled from.
//
// The package includes:
//   - Order: The aggregate root holding the interpreted order and its financial totals
//   - LineItem: A parsed item with name, quantity, and unit price
//   - Format: The detected order format (itemized with prices, or prepaid)
//   - Customer: The submitter's identity and delivery details
//   - Payment: Payment method metadata carried through from the form
//
// Key business rules:
//   - Line items have a non-empty name, a positive quantity, and a non-negative price
//   - Prepaid orders carry zero-priced items, so their subtotal is structurally zero
//   - An order's total always equals subtotal plus fee exactly
//   - Orders are built once from validated inputs and never mutated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

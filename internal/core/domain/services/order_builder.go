package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
)

// ValidationFailure classifies why a submission could not become an order.
// Like parse failures these are normal, expected outcomes: each kind maps to
// one user-facing correction template at the notification boundary.
type ValidationFailure int

const (
	// ValidationFailureUnknown represents an invalid or undefined failure kind.
	ValidationFailureUnknown ValidationFailure = iota

	// IncompleteSubmission means the terms were not accepted, the email is
	// malformed, or the submitter's identity is unusable.
	IncompleteSubmission

	// NoOrderProvided means both free-text order fields were empty.
	NoOrderProvided

	// Unparseable means the selected order text failed both grammars; the
	// wrapped ParseError carries the precise classification.
	Unparseable
)

func getValidationFailureStrings() map[ValidationFailure]string {
	return map[ValidationFailure]string{
		ValidationFailureUnknown: "Unknown",
		IncompleteSubmission:     "IncompleteSubmission",
		NoOrderProvided:          "NoOrderProvided",
		Unparseable:              "Unparseable",
	}
}

// String returns the failure kind's name, "Unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (f ValidationFailure) String() string {
	if str, ok := getValidationFailureStrings()[f]; ok {
		return str
	}
	return "Unknown"
}

// ValidationError is the typed error returned by OrderBuilder.Build.
// For Unparseable failures it wraps the parser's ParseError so callers can
// reach the parse classification with errors.As.
type ValidationError struct {
	Kind  ValidationFailure
	Parse *ParseError
}

func (e *ValidationError) Error() string {
	if e.Parse != nil {
		return fmt.Sprintf("submission is not valid: %s (%s)", e.Kind, e.Parse.Kind)
	}
	return fmt.Sprintf("submission is not valid: %s", e.Kind)
}

func (e *ValidationError) Unwrap() error {
	if e.Parse != nil {
		return e.Parse
	}
	return nil
}

// affirmativeTokens are the accepted spellings of terms acceptance, matched
// case-insensitively as substrings of the terms field.
var affirmativeTokens = []string{"yes", "agree", "accept", "true"}

// OrderBuilder composes field selection, parsing, and fee classification into
// one immutable order record with computed totals.
//
// Build is pure aside from taking now as an explicit parameter: no implicit
// wall-clock reads, no identifier generation. Two calls with identical inputs
// and the same now produce structurally equal orders.
type OrderBuilder struct {
	parser   OrderParser
	schedule FeeSchedule
}

// NewOrderBuilder creates an OrderBuilder over the given fee schedule.
func NewOrderBuilder(schedule FeeSchedule) (OrderBuilder, error) {
	if err := schedule.Validate(); err != nil {
		return OrderBuilder{}, err
	}

	return OrderBuilder{
		parser:   NewOrderParser(),
		schedule: schedule,
	}, nil
}

// Build interprets one submission into an Order, or a *ValidationError.
//
// Preconditions are checked before any parsing: the terms field must contain
// an affirmative token and the email must contain an "@"; failing either
// yields IncompleteSubmission with no further processing. Field selection
// then decides the order text (NoOrderProvided if both fields are empty),
// the parser interprets it (parse failures propagate as Unparseable), and
// the fee schedule prices the store. Other errors indicate programming
// mistakes, not bad submissions.
func (b OrderBuilder) Build(
	id kernel.UUID, sub submission.Submission, now time.Time,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if !termsAffirmative(sub.TermsAccepted) || !strings.Contains(sub.Email, "@") {
		return nil, &ValidationError{Kind: IncompleteSubmission}
	}

	selected, ok := SelectOrderText(sub.Field1, sub.Field2, sub.DeclaredType)
	if !ok {
		return nil, &ValidationError{Kind: NoOrderProvided}
	}

	items, format, err := b.parser.Parse(selected.Text)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, &ValidationError{Kind: Unparseable, Parse: parseErr}
		}
		return nil, err
	}

	customer, err := order.NewCustomer(sub.Name, sub.Email, sub.Phone, sub.Location, sub.Room)
	if err != nil {
		// Unusable identity fields are a submitter problem, same as missing terms.
		return nil, &ValidationError{Kind: IncompleteSubmission}
	}

	_, fee := b.schedule.Classify(sub.Store)

	placedAt := sub.SubmittedAt
	if placedAt.IsZero() {
		placedAt = now
	}

	return order.NewOrder(
		id,
		customer,
		placedAt,
		now,
		strings.TrimSpace(sub.Store),
		selected.Source,
		items,
		format,
		fee,
		order.NewPayment(sub.PaymentMethod, sub.PaymentRef),
	)
}

// termsAffirmative reports whether the free-text terms field contains an
// affirmative token.
func termsAffirmative(terms string) bool {
	normalized := strings.ToLower(strings.TrimSpace(terms))
	if normalized == "" {
		return false
	}

	for _, token := range affirmativeTokens {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	return false
}

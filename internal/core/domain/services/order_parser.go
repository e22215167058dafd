package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
)

// ParseFailure classifies why order text could not be parsed. The
// classification is precise enough for the caller to pick the matching
// correction template; it is terminal, never retried with alternate
// interpretations.
type ParseFailure int

const (
	// ParseFailureUnknown represents an invalid or undefined failure kind.
	ParseFailureUnknown ParseFailure = iota

	// EmptyOrder means the order text was empty or whitespace.
	EmptyOrder

	// InvalidItemizedFormat means the submitter attempted prices (the text
	// contains "@") but no valid itemized item set could be read.
	InvalidItemizedFormat

	// InvalidPrepaidFormat means quantities are present (the text contains
	// digits) but no valid prepaid item set could be read.
	InvalidPrepaidFormat

	// UnrecognizableFormat means the text matches neither grammar and carries
	// no digits to suggest one.
	UnrecognizableFormat
)

func getParseFailureStrings() map[ParseFailure]string {
	return map[ParseFailure]string{
		ParseFailureUnknown:   "Unknown",
		EmptyOrder:            "EmptyOrder",
		InvalidItemizedFormat: "InvalidItemizedFormat",
		InvalidPrepaidFormat:  "InvalidPrepaidFormat",
		UnrecognizableFormat:  "UnrecognizableFormat",
	}
}

// String returns the failure kind's name, "Unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (f ParseFailure) String() string {
	if str, ok := getParseFailureStrings()[f]; ok {
		return str
	}
	return "Unknown"
}

// ParseError is the typed error returned by OrderParser.Parse. It carries the
// failure classification; user-facing message templates live with the
// notification collaborator, not here.
type ParseError struct {
	Kind ParseFailure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("order text is not parseable: %s", e.Kind)
}

// itemizedItemPattern matches one itemized line item:
// a letters-and-spaces name, whitespace, a quantity, then "@" and a
// non-negative decimal price. Case-insensitive across the whole text.
var itemizedItemPattern = regexp.MustCompile(
	`(?i)([a-z][a-z ]*?)\s+([0-9]+)\s*@\s*([0-9]+(?:\.[0-9]+)?)`)

// prepaidItemPattern matches one prepaid line item: a letters-and-spaces name
// followed by a quantity. Whether a price suffix follows is checked
// separately, since RE2 has no lookahead.
var prepaidItemPattern = regexp.MustCompile(`(?i)([a-z][a-z ]*?)\s+([0-9]+)`)

// OrderParser converts raw order text into a typed list of line items under
// one of two mutually exclusive grammars, or a classified failure.
//
// Grammar priority is fixed: the itemized grammar (explicit "@"-prices) is
// attempted first; the prepaid grammar (bare quantities, prices forced to
// zero) only if the itemized attempt produced no valid item set. Validity is
// all-or-nothing per attempt: a single malformed match fails the whole
// attempt rather than producing a partially-wrong order.
//
// Example:
//
//	parser := services.NewOrderParser()
//	items, format, err := parser.Parse("Burger 2 @80 Fries 1 @45.50")
//	var parseErr *services.ParseError
//	if errors.As(err, &parseErr) {
//	    // surface the correction template for parseErr.Kind
//	}
type OrderParser struct{}

// NewOrderParser creates a new OrderParser instance.
func NewOrderParser() OrderParser {
	return OrderParser{}
}

// Parse interprets order text. On success it returns the line items and the
// detected format; on failure a *ParseError classifying why. Empty or
// whitespace-only text short-circuits to EmptyOrder before any grammar
// attempt.
func (p OrderParser) Parse(text string) ([]order.LineItem, order.Format, error) {
	if strings.TrimSpace(text) == "" {
		return nil, order.FormatUnknown, &ParseError{Kind: EmptyOrder}
	}

	if items, ok := p.parseItemized(text); ok {
		return items, order.Itemized, nil
	}

	if items, ok := p.parsePrepaid(text); ok {
		return items, order.Prepaid, nil
	}

	return nil, order.FormatUnknown, &ParseError{Kind: p.classifyFailure(text)}
}

// parseItemized runs the itemized grammar over the whole text.
// It succeeds only if at least one match was found and every match yields a
// valid line item.
func (p OrderParser) parseItemized(text string) ([]order.LineItem, bool) {
	matches := itemizedItemPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, false
	}

	items := make([]order.LineItem, 0, len(matches))
	for _, match := range matches {
		quantity, err := strconv.Atoi(match[2])
		if err != nil {
			return nil, false
		}

		price, err := kernel.NewMoneyFromString(match[3])
		if err != nil {
			return nil, false
		}

		item, err := order.NewLineItem(match[1], quantity, price)
		if err != nil {
			return nil, false
		}

		items = append(items, item)
	}

	return items, true
}

// parsePrepaid runs the prepaid grammar over the whole text. Matches followed
// by an "@"-price suffix belong to the itemized grammar and are excluded from
// the prepaid item set. It succeeds only if at least one match remains and
// every remaining match yields a valid line item; prices are forced to zero.
func (p OrderParser) parsePrepaid(text string) ([]order.LineItem, bool) {
	matches := prepaidItemPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, false
	}

	items := make([]order.LineItem, 0, len(matches))
	for _, match := range matches {
		if p.followedByPriceSuffix(text, match[1]) {
			continue
		}

		name := text[match[2]:match[3]]
		quantity, err := strconv.Atoi(text[match[4]:match[5]])
		if err != nil {
			return nil, false
		}

		item, err := order.NewLineItem(name, quantity, kernel.ZeroMoney())
		if err != nil {
			return nil, false
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, false
	}

	return items, true
}

// followedByPriceSuffix reports whether the text after position end starts
// with "@" once spaces are skipped. RE2 has no negative lookahead, so the
// "not followed by a price" rule of the prepaid grammar is checked here.
func (p OrderParser) followedByPriceSuffix(text string, end int) bool {
	for i := end; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t':
			continue
		case '@':
			return true
		default:
			return false
		}
	}
	return false
}

// classifyFailure decides which failure kind describes unparseable text.
// An "@" means the submitter attempted prices; a digit without "@" means
// quantities were present but names were unreadable; otherwise the text is
// unrecognizable as an order.
func (p OrderParser) classifyFailure(text string) ParseFailure {
	if strings.Contains(text, "@") {
		return InvalidItemizedFormat
	}
	if strings.ContainsFunc(text, unicode.IsDigit) {
		return InvalidPrepaidFormat
	}
	return UnrecognizableFormat
}

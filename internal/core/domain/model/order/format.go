package order

import (
	"fmt"

	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
)

// Format represents the grammar an order's text was parsed under.
// The two formats are mutually exclusive: an order either carries explicit
// unit prices for every item, or its items were already paid for elsewhere
// and only the service fee is owed.
type Format int

const (
	// FormatUnknown represents an invalid or undefined format.
	// This value (0) helps catch uninitialized Format values.
	FormatUnknown Format = iota

	// Itemized means every line item carries a meaningful unit price.
	// The order subtotal is the sum of quantity x price over all items.
	Itemized

	// Prepaid means item costs were settled off-platform.
	// Every item's price is forced to zero and only a fee is owed.
	Prepaid
)

// getFormatStrings returns a map of Format values to their string representations.
// All formats are included for string conversion.
func getFormatStrings() map[Format]string {
	return map[Format]string{
		FormatUnknown: "Unknown",
		Itemized:      "Itemized",
		Prepaid:       "Prepaid",
	}
}

// getValidFormatStrings returns a map of only valid Format values.
// Only valid formats are included to support validation.
func getValidFormatStrings() map[Format]string {
	//nolint:exhaustive // FormatUnknown is intentionally excluded as it's invalid
	return map[Format]string{
		Itemized: "Itemized",
		Prepaid:  "Prepaid",
	}
}

// Validate checks if the Format value is valid.
// Valid formats are: Itemized, Prepaid.
// FormatUnknown (0) and any other values are invalid.
func (f Format) Validate() error {
	if _, ok := getValidFormatStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("format",
			fmt.Errorf("%d is not a valid format", f))
	}
	return nil
}

// String returns the human-readable name of the format.
// Returns "Unknown" for invalid format values. This method implements the
// fmt.Stringer interface and is safe to call on any Format value.
func (f Format) String() string {
	if str, ok := getFormatStrings()[f]; ok {
		return str
	}
	return "Unknown"
}

// FormatFromString converts a string to a valid Format value.
// Used when reconstructing orders from persistence; only valid format names
// convert successfully.
func FormatFromString(s string) (Format, error) {
	for format, str := range getValidFormatStrings() {
		if str == s {
			return format, nil
		}
	}
	return FormatUnknown, errs.NewValueIsInvalidErrorWithCause("format",
		fmt.Errorf("%q is not a valid format", s))
}

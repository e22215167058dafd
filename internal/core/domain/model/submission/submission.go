// Package submission defines the inbound form submission record and the
// order-text source enum. A Submission is raw, untrusted input: every field
// arrives as free text from the order form, so validation belongs to the
// services that interpret it, not to this record.
package submission

import (
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
)

// Source identifies which of the two free-text order fields was selected as
// the authoritative order text.
type Source int

const (
	// SourceUnknown represents an invalid or undefined source.
	// This value (0) helps catch uninitialized Source values.
	SourceUnknown Source = iota

	// SourceField1 means the order text came from the first free-text field.
	SourceField1

	// SourceField2 means the order text came from the second free-text field.
	SourceField2
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown: "Unknown",
		SourceField1:  "field1",
		SourceField2:  "field2",
	}
}

// Validate checks if the Source value is valid.
// Valid sources are SourceField1 and SourceField2.
func (s Source) Validate() error {
	if s != SourceField1 && s != SourceField2 {
		return errs.NewValueIsInvalidError("source")
	}
	return nil
}

// String returns "field1" or "field2" for valid sources, "Unknown" otherwise.
// This method implements the fmt.Stringer interface.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SourceFromString parses a persisted source label back into a Source.
func SourceFromString(s string) (Source, error) {
	switch s {
	case "field1":
		return SourceField1, nil
	case "field2":
		return SourceField2, nil
	default:
		return SourceUnknown, errs.NewValueIsInvalidError("source")
	}
}

// Submission is one row from the order form: identity and contact details,
// the two free-text order fields, the declared submission type, the store
// name, and payment metadata. All fields except SubmittedAt are plain strings
// exactly as the submitter typed them.
type Submission struct {
	SubmittedAt   time.Time
	Name          string
	Email         string
	Phone         string
	Location      string
	Room          string
	DeclaredType  string
	Field1        string
	Field2        string
	Store         string
	PaymentMethod string
	PaymentRef    string
	TermsAccepted string
}

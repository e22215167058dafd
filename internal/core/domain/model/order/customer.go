package order

import (
	"errors"
	"strings"

	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when attempting to use an improperly
// initialized Customer. Customers must be created via NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the submitter's identity and delivery details as captured
// from the form. Name and a plausible email are required; phone, location,
// and room are optional free text.
type Customer struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	location string
	room     string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with validation.
// The name must be non-empty and the email must contain an "@".
func NewCustomer(name, email, phone, location, room string) (Customer, error) {
	customer := Customer{
		phone:    strings.TrimSpace(phone),
		location: strings.TrimSpace(location),
		room:     strings.TrimSpace(room),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the submitter's name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the submitter's email address.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the contact phone number, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

// Location returns the delivery location, possibly empty.
func (c Customer) Location() string {
	return c.location
}

// Room returns the room or unit, possibly empty.
func (c Customer) Room() string {
	return c.room
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

// Payment carries the payment method metadata from the form. Both fields are
// optional free text; the intake engine records them without interpreting.
type Payment struct {
	method string
	ref    string

	guard guard.ConstructorGuard
}

// NewPayment creates a Payment record, trimming both fields.
func NewPayment(method, ref string) Payment {
	return Payment{
		method: strings.TrimSpace(method),
		ref:    strings.TrimSpace(ref),
		guard:  guard.NewConstructorGuard(),
	}
}

// Method returns the declared payment method, possibly empty.
func (p Payment) Method() string {
	return p.method
}

// Ref returns the payment reference number, possibly empty.
func (p Payment) Ref() string {
	return p.ref
}

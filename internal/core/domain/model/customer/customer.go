// Package customer holds the Customer entity. Uniqueness of email and document is
// checked by the application layer against the repository, not here.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"delivery-api/internal/pkg/errs"
	"delivery-api/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Column widths of the customers table.
const (
	maxIDLength       = 64
	MaxNameLength     = 100
	MaxEmailLength    = 255
	MaxDocumentLength = 20
)

// Customer is immutable once built.
type Customer struct {
	id       string
	name     string
	email    string
	document string

	guard guard.ConstructorGuard
}

// NewCustomer trims every field and requires all of them; email must contain "@".
// Fields longer than their column width are rejected.
func NewCustomer(id, name, email, document string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setDocument(document),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(id, name, email, document string) (*Customer, error) {
	return NewCustomer(id, name, email, document)
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

func (c *Customer) ID() string {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Document() string {
	return c.document
}

func (c *Customer) setID(id string) error {
	return setRequired(&c.id, "id", id, maxIDLength)
}

func (c *Customer) setName(name string) error {
	return setRequired(&c.name, "name", name, MaxNameLength)
}

func (c *Customer) setEmail(email string) error {
	if err := setRequired(&c.email, "email", email, MaxEmailLength); err != nil {
		return err
	}
	if !strings.Contains(c.email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no @", c.email))
	}
	return nil
}

func (c *Customer) setDocument(document string) error {
	return setRequired(&c.document, "document", document, MaxDocumentLength)
}

func setRequired(dst *string, name, value string, maxLength int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(name+" length", n, 1, maxLength)
	}
	*dst = value
	return nil
}

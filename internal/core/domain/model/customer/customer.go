// Package customer holds the Customer aggregate: the party orders are placed for.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Contact groups the optional contact fields of a customer.
type Contact struct {
	Company         string
	ContactPerson   string
	ContactNumber   string
	Email           string
	BillingAddress  string
	ShippingAddress string
}

type Customer struct {
	id      kernel.UUID
	name    string
	contact Contact

	isConstructed bool
}

func NewCustomer(id kernel.UUID, name string, contact Contact) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setContact(contact),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func RestoreCustomer(id kernel.UUID, name string, contact Contact) (*Customer, error) {
	return NewCustomer(id, name, contact)
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Contact() Contact {
	return c.contact
}

// UpdateContact replaces the contact details. The name is the customer's identity
// on printed documents and stays fixed.
func (c *Customer) UpdateContact(contact Contact) error {
	return c.setContact(contact)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setContact(contact Contact) error {
	contact.Email = strings.TrimSpace(contact.Email)
	if contact.Email != "" {
		if _, err := mail.ParseAddress(contact.Email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q: %w", contact.Email, err))
		}
	}
	c.contact = contact
	return nil
}

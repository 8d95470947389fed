package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to add a customer to the registry.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	contact    customer.Contact

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	name string,
	contact customer.Contact,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c *RegisterCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes a customer that has no orders.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(customerID kernel.UUID) (DeleteCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return DeleteCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

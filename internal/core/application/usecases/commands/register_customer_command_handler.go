package commands

import (
	"context"

	"orderflow/internal/core/domain/model/customer"
)

// RegisterCustomerCommandHandler adds a customer. A name that is already
// registered fails with errs.DuplicateError from the repository.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Contact())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

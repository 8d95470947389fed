package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrChangeCustomAccessoryQuantityCommandIsNotConstructed = errors.New(
	"ChangeCustomAccessoryQuantityCommand must be created via NewChangeCustomAccessoryQuantityCommand constructor",
)

type ChangeCustomAccessoryQuantityCommand struct { //nolint:recvcheck //using for validation
	itemAccessoryID kernel.UUID
	quantity        int

	guard guard.ConstructorGuard
}

func NewChangeCustomAccessoryQuantityCommand(
	itemAccessoryID kernel.UUID,
	quantity int,
) (ChangeCustomAccessoryQuantityCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	if err := errors.Join(itemAccessoryID.Validate(), quantityErr); err != nil {
		return ChangeCustomAccessoryQuantityCommand{}, err
	}

	return ChangeCustomAccessoryQuantityCommand{
		itemAccessoryID: itemAccessoryID,
		quantity:        quantity,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCustomAccessoryQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomAccessoryQuantityCommandIsNotConstructed)
}

func (c ChangeCustomAccessoryQuantityCommand) ItemAccessoryID() kernel.UUID {
	return c.itemAccessoryID
}

func (c ChangeCustomAccessoryQuantityCommand) Quantity() int {
	return c.quantity
}

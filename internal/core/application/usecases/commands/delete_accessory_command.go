package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrDeleteAccessoryCommandIsNotConstructed = errors.New(
	"DeleteAccessoryCommand must be created via NewDeleteAccessoryCommand constructor",
)

type DeleteAccessoryCommand struct { //nolint:recvcheck //using for validation
	accessoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAccessoryCommand(accessoryID kernel.UUID) (DeleteAccessoryCommand, error) {
	if err := accessoryID.Validate(); err != nil {
		return DeleteAccessoryCommand{}, err
	}

	return DeleteAccessoryCommand{
		accessoryID: accessoryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteAccessoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccessoryCommandIsNotConstructed)
}

func (c DeleteAccessoryCommand) AccessoryID() kernel.UUID {
	return c.accessoryID
}

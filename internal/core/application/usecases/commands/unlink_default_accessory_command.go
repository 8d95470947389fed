package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrUnlinkDefaultAccessoryCommandIsNotConstructed = errors.New(
	"UnlinkDefaultAccessoryCommand must be created via NewUnlinkDefaultAccessoryCommand constructor",
)

type UnlinkDefaultAccessoryCommand struct { //nolint:recvcheck //using for validation
	familyID    kernel.UUID
	accessoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUnlinkDefaultAccessoryCommand(familyID, accessoryID kernel.UUID) (UnlinkDefaultAccessoryCommand, error) {
	if err := errors.Join(familyID.Validate(), accessoryID.Validate()); err != nil {
		return UnlinkDefaultAccessoryCommand{}, err
	}

	return UnlinkDefaultAccessoryCommand{
		familyID:    familyID,
		accessoryID: accessoryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UnlinkDefaultAccessoryCommand) Validate() error {
	return c.guard.Validate(ErrUnlinkDefaultAccessoryCommandIsNotConstructed)
}

func (c UnlinkDefaultAccessoryCommand) FamilyID() kernel.UUID {
	return c.familyID
}

func (c UnlinkDefaultAccessoryCommand) AccessoryID() kernel.UUID {
	return c.accessoryID
}

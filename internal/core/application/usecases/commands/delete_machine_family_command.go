package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrDeleteMachineFamilyCommandIsNotConstructed = errors.New(
	"DeleteMachineFamilyCommand must be created via NewDeleteMachineFamilyCommand constructor",
)

type DeleteMachineFamilyCommand struct { //nolint:recvcheck //using for validation
	familyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMachineFamilyCommand(familyID kernel.UUID) (DeleteMachineFamilyCommand, error) {
	if err := familyID.Validate(); err != nil {
		return DeleteMachineFamilyCommand{}, err
	}

	return DeleteMachineFamilyCommand{
		familyID: familyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMachineFamilyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMachineFamilyCommandIsNotConstructed)
}

func (c DeleteMachineFamilyCommand) FamilyID() kernel.UUID {
	return c.familyID
}

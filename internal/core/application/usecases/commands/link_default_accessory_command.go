package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrLinkDefaultAccessoryCommandIsNotConstructed = errors.New(
	"LinkDefaultAccessoryCommand must be created via NewLinkDefaultAccessoryCommand constructor",
)

// LinkDefaultAccessoryCommand makes an accessory part of every unit of a
// machine family. Linking the same pair again overwrites the link attributes.
type LinkDefaultAccessoryCommand struct { //nolint:recvcheck //using for validation
	familyID    kernel.UUID
	accessoryID kernel.UUID
	terms       catalog.LinkTerms

	guard guard.ConstructorGuard
}

func NewLinkDefaultAccessoryCommand(
	familyID, accessoryID kernel.UUID,
	terms catalog.LinkTerms,
) (LinkDefaultAccessoryCommand, error) {
	var quantityErr error
	if terms.DefaultQuantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("default quantity", terms.DefaultQuantity, 1, "unbounded")
	}

	if err := errors.Join(
		familyID.Validate(),
		accessoryID.Validate(),
		quantityErr,
	); err != nil {
		return LinkDefaultAccessoryCommand{}, err
	}

	return LinkDefaultAccessoryCommand{
		familyID:    familyID,
		accessoryID: accessoryID,
		terms:       terms,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c LinkDefaultAccessoryCommand) Validate() error {
	return c.guard.Validate(ErrLinkDefaultAccessoryCommandIsNotConstructed)
}

func (c LinkDefaultAccessoryCommand) FamilyID() kernel.UUID {
	return c.familyID
}

func (c LinkDefaultAccessoryCommand) AccessoryID() kernel.UUID {
	return c.accessoryID
}

func (c LinkDefaultAccessoryCommand) Terms() catalog.LinkTerms {
	return c.terms
}

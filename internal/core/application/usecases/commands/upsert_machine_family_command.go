package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrUpsertMachineFamilyCommandIsNotConstructed = errors.New(
	"UpsertMachineFamilyCommand must be created via NewUpsertMachineFamilyCommand constructor",
)

// UpsertMachineFamilyCommand creates a machine family or, when the name is
// already taken, updates its description, product flag and base price.
// familyID is only used when a new family is created.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("125000")
//	cmd, err := NewUpsertMachineFamilyCommand(kernel.NewUUID(), "UTM", "Universal testing machine", true, price)
//	if err != nil {
//	    return err
//	}
//	family, err := handler.Handle(ctx, cmd)
type UpsertMachineFamilyCommand struct { //nolint:recvcheck //using for validation
	familyID    kernel.UUID
	name        string
	description string
	isProduct   bool
	basePrice   kernel.Money

	guard guard.ConstructorGuard
}

func NewUpsertMachineFamilyCommand(
	familyID kernel.UUID,
	name, description string,
	isProduct bool,
	basePrice kernel.Money,
) (UpsertMachineFamilyCommand, error) {
	cmd := UpsertMachineFamilyCommand{
		description: strings.TrimSpace(description),
		isProduct:   isProduct,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFamilyID(familyID),
		cmd.setName(name),
		cmd.setBasePrice(basePrice),
	); err != nil {
		return UpsertMachineFamilyCommand{}, err
	}

	return cmd, nil
}

func (c UpsertMachineFamilyCommand) Validate() error {
	return c.guard.Validate(ErrUpsertMachineFamilyCommandIsNotConstructed)
}

func (c UpsertMachineFamilyCommand) FamilyID() kernel.UUID {
	return c.familyID
}

func (c UpsertMachineFamilyCommand) Name() string {
	return c.name
}

func (c UpsertMachineFamilyCommand) Description() string {
	return c.description
}

func (c UpsertMachineFamilyCommand) IsProduct() bool {
	return c.isProduct
}

func (c UpsertMachineFamilyCommand) BasePrice() kernel.Money {
	return c.basePrice
}

func (c *UpsertMachineFamilyCommand) setFamilyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.familyID = id
	return nil
}

func (c *UpsertMachineFamilyCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpsertMachineFamilyCommand) setBasePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.basePrice = price
	return nil
}

package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrUpsertAccessoryCommandIsNotConstructed = errors.New(
	"UpsertAccessoryCommand must be created via NewUpsertAccessoryCommand constructor",
)

// UpsertAccessoryCommand creates an inventory accessory or, when the SKU
// exists, replaces its details. The stock level is never part of an upsert.
type UpsertAccessoryCommand struct { //nolint:recvcheck //using for validation
	accessoryID kernel.UUID
	sku         string
	details     inventory.Details

	guard guard.ConstructorGuard
}

func NewUpsertAccessoryCommand(
	accessoryID kernel.UUID,
	sku string,
	details inventory.Details,
) (UpsertAccessoryCommand, error) {
	cmd := UpsertAccessoryCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccessoryID(accessoryID),
		cmd.setSKU(sku),
	); err != nil {
		return UpsertAccessoryCommand{}, err
	}

	return cmd, nil
}

func (c UpsertAccessoryCommand) Validate() error {
	return c.guard.Validate(ErrUpsertAccessoryCommandIsNotConstructed)
}

func (c UpsertAccessoryCommand) AccessoryID() kernel.UUID {
	return c.accessoryID
}

func (c UpsertAccessoryCommand) SKU() string {
	return c.sku
}

func (c UpsertAccessoryCommand) Details() inventory.Details {
	return c.details
}

func (c *UpsertAccessoryCommand) setAccessoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accessoryID = id
	return nil
}

func (c *UpsertAccessoryCommand) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	c.sku = sku
	return nil
}

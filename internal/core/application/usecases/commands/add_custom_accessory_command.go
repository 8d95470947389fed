package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrAddCustomAccessoryCommandIsNotConstructed = errors.New(
	"AddCustomAccessoryCommand must be created via NewAddCustomAccessoryCommand constructor",
)

// AddCustomAccessoryCommand attaches an accessory to a line item outside its
// family defaults.
type AddCustomAccessoryCommand struct { //nolint:recvcheck //using for validation
	lineItemID          kernel.UUID
	itemAccessoryID     kernel.UUID
	accessoryID         kernel.UUID
	quantity            int
	requiredForDispatch bool
	userID              string

	guard guard.ConstructorGuard
}

func NewAddCustomAccessoryCommand(
	lineItemID, itemAccessoryID, accessoryID kernel.UUID,
	quantity int,
	requiredForDispatch bool,
	userID string,
) (AddCustomAccessoryCommand, error) {
	userID = strings.TrimSpace(userID)

	var quantityErr, userErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if userID == "" {
		userErr = errs.NewValueIsRequiredError("user id")
	}

	if err := errors.Join(
		lineItemID.Validate(),
		itemAccessoryID.Validate(),
		accessoryID.Validate(),
		quantityErr,
		userErr,
	); err != nil {
		return AddCustomAccessoryCommand{}, err
	}

	return AddCustomAccessoryCommand{
		lineItemID:          lineItemID,
		itemAccessoryID:     itemAccessoryID,
		accessoryID:         accessoryID,
		quantity:            quantity,
		requiredForDispatch: requiredForDispatch,
		userID:              userID,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c AddCustomAccessoryCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomAccessoryCommandIsNotConstructed)
}

func (c AddCustomAccessoryCommand) LineItemID() kernel.UUID      { return c.lineItemID }
func (c AddCustomAccessoryCommand) ItemAccessoryID() kernel.UUID { return c.itemAccessoryID }
func (c AddCustomAccessoryCommand) AccessoryID() kernel.UUID     { return c.accessoryID }
func (c AddCustomAccessoryCommand) Quantity() int                { return c.quantity }
func (c AddCustomAccessoryCommand) RequiredForDispatch() bool    { return c.requiredForDispatch }
func (c AddCustomAccessoryCommand) UserID() string               { return c.userID }

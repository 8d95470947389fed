package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrUpdateItemAccessoryCommandIsNotConstructed = errors.New(
	"UpdateItemAccessoryCommand must be created via NewUpdateItemAccessoryCommand constructor",
)

// UpdateItemAccessoryCommand sets the tracking status of an item accessory.
// variableValue is only meaningful for variable accessories; nil leaves the
// stored value as it is.
type UpdateItemAccessoryCommand struct { //nolint:recvcheck //using for validation
	itemAccessoryID kernel.UUID
	status          order.AccessoryStatus
	variableValue   *string
	userID          string
	notes           string

	guard guard.ConstructorGuard
}

func NewUpdateItemAccessoryCommand(
	itemAccessoryID kernel.UUID,
	status order.AccessoryStatus,
	variableValue *string,
	userID, notes string,
) (UpdateItemAccessoryCommand, error) {
	userID = strings.TrimSpace(userID)
	var userErr error
	if userID == "" {
		userErr = errs.NewValueIsRequiredError("user id")
	}

	if err := errors.Join(itemAccessoryID.Validate(), status.Validate(), userErr); err != nil {
		return UpdateItemAccessoryCommand{}, err
	}

	return UpdateItemAccessoryCommand{
		itemAccessoryID: itemAccessoryID,
		status:          status,
		variableValue:   variableValue,
		userID:          userID,
		notes:           strings.TrimSpace(notes),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemAccessoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemAccessoryCommandIsNotConstructed)
}

func (c UpdateItemAccessoryCommand) ItemAccessoryID() kernel.UUID  { return c.itemAccessoryID }
func (c UpdateItemAccessoryCommand) Status() order.AccessoryStatus { return c.status }
func (c UpdateItemAccessoryCommand) VariableValue() *string        { return c.variableValue }
func (c UpdateItemAccessoryCommand) UserID() string                { return c.userID }
func (c UpdateItemAccessoryCommand) Notes() string                 { return c.notes }

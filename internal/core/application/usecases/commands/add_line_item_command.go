package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand adds a machine to an order that has not entered production.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	line    OrderLine
	userID  string

	guard guard.ConstructorGuard
}

func NewAddLineItemCommand(orderID kernel.UUID, line OrderLine, userID string) (AddLineItemCommand, error) {
	userID = strings.TrimSpace(userID)
	var quantityErr, userErr error
	if line.Quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
	}
	if userID == "" {
		userErr = errs.NewValueIsRequiredError("user id")
	}

	if err := errors.Join(
		orderID.Validate(),
		line.LineItemID.Validate(),
		line.FamilyID.Validate(),
		quantityErr,
		userErr,
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return AddLineItemCommand{
		orderID: orderID,
		line:    line,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddLineItemCommand) Line() OrderLine {
	return c.line
}

func (c AddLineItemCommand) UserID() string {
	return c.userID
}

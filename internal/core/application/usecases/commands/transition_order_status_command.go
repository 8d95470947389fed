package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand requests a move of an order to a new status.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	userID  string
	notes   string

	guard guard.ConstructorGuard
}

func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	userID, notes string,
) (TransitionOrderStatusCommand, error) {
	userID = strings.TrimSpace(userID)
	var userErr error
	if userID == "" {
		userErr = errs.NewValueIsRequiredError("user id")
	}

	if err := errors.Join(orderID.Validate(), target.Validate(), userErr); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		orderID: orderID,
		target:  target,
		userID:  userID,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderStatusCommand) UserID() string {
	return c.userID
}

func (c TransitionOrderStatusCommand) Notes() string {
	return c.notes
}

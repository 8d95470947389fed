package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrAdvanceLineItemCommandIsNotConstructed = errors.New(
	"AdvanceLineItemCommand must be created via NewAdvanceLineItemCommand constructor",
)

// AdvanceLineItemCommand moves a line item to a production step by name.
// State OnHold parks the line item on its current step.
type AdvanceLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID kernel.UUID
	stepName   string
	state      order.ProductionState
	userID     string
	notes      string

	guard guard.ConstructorGuard
}

func NewAdvanceLineItemCommand(
	lineItemID kernel.UUID,
	stepName string,
	state order.ProductionState,
	userID, notes string,
) (AdvanceLineItemCommand, error) {
	stepName = strings.TrimSpace(stepName)
	userID = strings.TrimSpace(userID)

	var stepErr, userErr error
	if stepName == "" {
		stepErr = errs.NewValueIsRequiredError("step name")
	}
	if userID == "" {
		userErr = errs.NewValueIsRequiredError("user id")
	}

	if err := errors.Join(lineItemID.Validate(), stepErr, state.Validate(), userErr); err != nil {
		return AdvanceLineItemCommand{}, err
	}

	return AdvanceLineItemCommand{
		lineItemID: lineItemID,
		stepName:   stepName,
		state:      state,
		userID:     userID,
		notes:      strings.TrimSpace(notes),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLineItemCommandIsNotConstructed)
}

func (c AdvanceLineItemCommand) LineItemID() kernel.UUID      { return c.lineItemID }
func (c AdvanceLineItemCommand) StepName() string             { return c.stepName }
func (c AdvanceLineItemCommand) State() order.ProductionState { return c.state }
func (c AdvanceLineItemCommand) UserID() string               { return c.userID }
func (c AdvanceLineItemCommand) Notes() string                { return c.notes }

package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRecordStockMovementCommandIsNotConstructed = errors.New(
	"RecordStockMovementCommand must be created via NewRecordStockMovementCommand constructor",
)

// RecordStockMovementCommand appends one entry to an accessory's stock ledger.
//
// The sign of quantityChange must match changeType: positive for In, negative
// for Out, non-zero for Adjustment. orderID and userID are optional.
//
// Example:
//
//	cmd, err := NewRecordStockMovementCommand(
//	    kernel.NewUUID(), accessoryID, inventory.Out, -2, "issued to assembly", &orderID, "stores",
//	)
type RecordStockMovementCommand struct { //nolint:recvcheck //using for validation
	movementID     kernel.UUID
	accessoryID    kernel.UUID
	changeType     inventory.ChangeType
	quantityChange int
	reason         string
	orderID        *kernel.UUID
	userID         string

	guard guard.ConstructorGuard
}

func NewRecordStockMovementCommand(
	movementID, accessoryID kernel.UUID,
	changeType inventory.ChangeType,
	quantityChange int,
	reason string,
	orderID *kernel.UUID,
	userID string,
) (RecordStockMovementCommand, error) {
	var orderErr error
	if orderID != nil {
		orderErr = orderID.Validate()
	}

	if err := errors.Join(
		movementID.Validate(),
		accessoryID.Validate(),
		changeType.Validate(),
		orderErr,
	); err != nil {
		return RecordStockMovementCommand{}, err
	}

	return RecordStockMovementCommand{
		movementID:     movementID,
		accessoryID:    accessoryID,
		changeType:     changeType,
		quantityChange: quantityChange,
		reason:         strings.TrimSpace(reason),
		orderID:        orderID,
		userID:         strings.TrimSpace(userID),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RecordStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordStockMovementCommandIsNotConstructed)
}

func (c RecordStockMovementCommand) MovementID() kernel.UUID          { return c.movementID }
func (c RecordStockMovementCommand) AccessoryID() kernel.UUID         { return c.accessoryID }
func (c RecordStockMovementCommand) ChangeType() inventory.ChangeType { return c.changeType }
func (c RecordStockMovementCommand) QuantityChange() int              { return c.quantityChange }
func (c RecordStockMovementCommand) Reason() string                   { return c.reason }
func (c RecordStockMovementCommand) OrderID() *kernel.UUID            { return c.orderID }
func (c RecordStockMovementCommand) UserID() string                   { return c.userID }

package commands

import (
	"context"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/ports"
)

// RecordStockMovementCommandHandler applies a stock movement to an accessory.
//
// The ledger row and the accessory's cached level are written in one
// transaction. The accessory update is version checked, so of two concurrent
// movements on the same accessory one fails with errs.VersionIsInvalidError
// and leaves nothing behind. An Out movement larger than the current level
// fails with inventory.InsufficientStockError.
type RecordStockMovementCommandHandler struct {
	uowFactory InventoryUoWFactory
	clock      ports.Clock
}

func NewRecordStockMovementCommandHandler(
	uowFactory InventoryUoWFactory,
	clock ports.Clock,
) RecordStockMovementCommandHandler {
	return RecordStockMovementCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RecordStockMovementCommandHandler) Handle(
	ctx context.Context,
	cmd RecordStockMovementCommand,
) (*inventory.StockMovement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.OrderID() != nil {
		if _, err := uow.OrderRepository().Get(ctx, *cmd.OrderID()); err != nil {
			return nil, err
		}
	}

	repo := uow.AccessoryRepository()
	accessory, err := repo.Get(ctx, cmd.AccessoryID())
	if err != nil {
		return nil, err
	}

	movement, err := accessory.RecordMovement(
		cmd.MovementID(),
		cmd.ChangeType(),
		cmd.QuantityChange(),
		cmd.Reason(),
		cmd.OrderID(),
		cmd.UserID(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, accessory); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return movement, nil
}

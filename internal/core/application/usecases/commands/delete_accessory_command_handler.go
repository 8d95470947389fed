package commands

import (
	"context"
)

// DeleteAccessoryCommandHandler deletes an accessory and its family default
// links. Accessories on order line items or with ledger entries are kept and
// errs.ReferentialConflictError is returned.
type DeleteAccessoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewDeleteAccessoryCommandHandler(uowFactory InventoryUoWFactory) DeleteAccessoryCommandHandler {
	return DeleteAccessoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteAccessoryCommandHandler) Handle(ctx context.Context, cmd DeleteAccessoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AccessoryRepository().Delete(ctx, cmd.AccessoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

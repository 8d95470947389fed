package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/pkg/errs"
)

// UpsertAccessoryCommandHandler writes an accessory keyed by SKU.
type UpsertAccessoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewUpsertAccessoryCommandHandler(uowFactory InventoryUoWFactory) UpsertAccessoryCommandHandler {
	return UpsertAccessoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpsertAccessoryCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertAccessoryCommand,
) (*inventory.Accessory, error) {
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

	repo := uow.AccessoryRepository()
	accessory, err := repo.GetBySKU(ctx, cmd.SKU())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		accessory, err = inventory.NewAccessory(cmd.AccessoryID(), cmd.SKU(), cmd.Details())
		if err != nil {
			return nil, err
		}
		err = repo.Add(ctx, accessory)
	case err == nil:
		if err = accessory.UpdateDetails(cmd.Details()); err != nil {
			return nil, err
		}
		err = repo.Update(ctx, accessory)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return accessory, nil
}

package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// ChangeCustomAccessoryQuantityCommandHandler sets the required quantity of a
// custom item accessory. Catalog accessories follow the line quantity and
// are rejected.
type ChangeCustomAccessoryQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeCustomAccessoryQuantityCommandHandler(
	uowFactory OrderUoWFactory,
) ChangeCustomAccessoryQuantityCommandHandler {
	return ChangeCustomAccessoryQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeCustomAccessoryQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCustomAccessoryQuantityCommand,
) (*order.ItemAccessory, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.GetByItemAccessoryID(ctx, cmd.ItemAccessoryID())
	if err != nil {
		return nil, err
	}

	accessory, err := o.ChangeCustomAccessoryQuantity(cmd.ItemAccessoryID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return accessory, nil
}

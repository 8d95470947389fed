package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// UpdateLineItemCommandHandler rescales a line item's catalog accessories to
// the new quantity and recalculates line and order totals.
type UpdateLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateLineItemCommandHandler(uowFactory OrderUoWFactory) UpdateLineItemCommandHandler {
	return UpdateLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateLineItemCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemCommand) (*order.LineItem, error) {
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
	o, err := repo.GetByLineItemID(ctx, cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	item, err := o.UpdateLineItem(cmd.LineItemID(), cmd.Quantity(), cmd.UnitPrice())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

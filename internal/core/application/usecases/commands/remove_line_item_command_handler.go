package commands

import (
	"context"
)

// RemoveLineItemCommandHandler drops a line item with its accessories and
// production history. The last line item of an order cannot be removed.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.RemoveLineItem(cmd.LineItemID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// AddLineItemCommandHandler appends a line item, materializes the family's
// default accessories on it and recalculates the order total.
type AddLineItemCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAddLineItemCommandHandler(uowFactory UoWFactory, clock ports.Clock) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (*order.LineItem, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	line := cmd.Line()
	family, err := uow.MachineFamilyRepository().Get(ctx, line.FamilyID)
	if err != nil {
		return nil, err
	}

	seq, err := uow.ProductionStepRepository().Sequence(ctx)
	if err != nil {
		return nil, err
	}

	item, err := o.AddLineItem(
		line.LineItemID, family, line.Quantity, line.UnitPrice, seq.First(), cmd.UserID(), h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

package commands

import (
	"context"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// AdvanceLineItemCommandHandler records production progress of a line item.
// Moving to an earlier step fails with errs.InvalidTransitionError; every
// accepted call appends a production history row. Moving onto the dispatch
// step runs the dispatch gate for that line item and fails with
// *order.DispatchBlockedError while one of its required accessories is open.
type AdvanceLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.DispatchGate
	clock      ports.Clock
}

func NewAdvanceLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.DispatchGate,
	clock ports.Clock,
) AdvanceLineItemCommandHandler {
	return AdvanceLineItemCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clock,
	}
}

func (h *AdvanceLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceLineItemCommand,
) (*order.LineItem, error) {
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

	seq, err := uow.ProductionStepRepository().Sequence(ctx)
	if err != nil {
		return nil, err
	}

	stock := services.StockLevels{}
	if target, stepErr := seq.StepByName(strings.TrimSpace(cmd.StepName())); stepErr == nil && target.IsDispatchStep() {
		item, itemErr := o.LineItem(cmd.LineItemID())
		if itemErr != nil {
			return nil, itemErr
		}
		accessories, stockErr := uow.AccessoryRepository().GetMany(ctx, lineItemDispatchAccessoryIDs(item))
		if stockErr != nil {
			return nil, stockErr
		}
		stock = services.StockLevelsOf(accessories)
	}

	item, err := o.AdvanceLineItem(
		cmd.LineItemID(), seq, cmd.StepName(), cmd.State(), cmd.UserID(), cmd.Notes(), h.clock.Now(),
		h.gate.Policy(stock),
	)
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

func lineItemDispatchAccessoryIDs(item *order.LineItem) []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, a := range item.Accessories() {
		if a.IsRequiredForDispatch() {
			ids = append(ids, a.AccessoryID())
		}
	}
	return ids
}

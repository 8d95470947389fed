package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// TransitionOrderStatusCommandHandler moves an order through its lifecycle.
//
// Moves that need the dispatch gate load the stock levels of the order's
// dispatch-required accessories in the same transaction and fail with
// *order.DispatchBlockedError when the gate refuses. The status change and
// its history row are saved together under the order's version check.
type TransitionOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	gate       services.DispatchGate
	clock      ports.Clock
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory UoWFactory,
	gate services.DispatchGate,
	clock ports.Clock,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clock,
	}
}

func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
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

	stock := services.StockLevels{}
	if o.Status().RequiresDispatchGate(cmd.Target()) {
		accessories, stockErr := uow.AccessoryRepository().GetMany(ctx, dispatchAccessoryIDs(o))
		if stockErr != nil {
			return nil, stockErr
		}
		stock = services.StockLevelsOf(accessories)
	}

	if err = o.TransitionTo(cmd.Target(), cmd.UserID(), cmd.Notes(), h.clock.Now(), h.gate.Policy(stock)); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// dispatchAccessoryIDs lists the distinct inventory accessories that are
// required for dispatch anywhere on o.
func dispatchAccessoryIDs(o *order.Order) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	ids := make([]kernel.UUID, 0)
	for _, item := range o.LineItems() {
		for _, a := range item.Accessories() {
			if !a.IsRequiredForDispatch() {
				continue
			}
			if _, ok := seen[a.AccessoryID()]; ok {
				continue
			}
			seen[a.AccessoryID()] = struct{}{}
			ids = append(ids, a.AccessoryID())
		}
	}
	return ids
}

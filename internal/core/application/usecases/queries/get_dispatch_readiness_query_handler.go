package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// GetDispatchReadinessQueryHandler loads the order aggregate and the stock of
// its dispatch-required accessories, then runs the dispatch gate. Nothing is
// written; the repositories run outside a transaction.
type GetDispatchReadinessQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       services.DispatchGate
}

func NewGetDispatchReadinessQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	gate services.DispatchGate,
) GetDispatchReadinessQueryHandler {
	return GetDispatchReadinessQueryHandler{uowFactory: uowFactory, gate: gate}
}

func (h GetDispatchReadinessQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchReadinessQuery,
) (GetDispatchReadinessQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDispatchReadinessQueryResponse{}, err
	}

	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetDispatchReadinessQueryResponse{}, err
	}

	accessories, err := uow.AccessoryRepository().GetMany(ctx, requiredAccessoryIDs(o))
	if err != nil {
		return GetDispatchReadinessQueryResponse{}, err
	}

	res := h.gate.CanDispatch(o, services.StockLevelsOf(accessories))
	return GetDispatchReadinessQueryResponse{
		OrderID: o.ID(),
		Number:  o.Number().String(),
		Status:  o.Status(),
		Allowed: res.Allowed,
		Blocker: res.Blocker,
	}, nil
}

func requiredAccessoryIDs(o *order.Order) []kernel.UUID {
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

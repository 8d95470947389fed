package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CreateOrderCommandHandler opens a Draft order with its line items.
//
// The customer and every family must exist. The order number is reserved
// inside the same transaction as the insert. Each line item starts on the
// first production step and carries its family's default accessories.
type CreateOrderCommandHandler struct {
	uowFactory   UoWFactory
	clock        ports.Clock
	numberPrefix string
}

// NewCreateOrderCommandHandler creates a handler that numbers orders under
// numberPrefix (for example "EM").
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	numberPrefix string,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		clock:        clock,
		numberPrefix: numberPrefix,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	seq, err := uow.ProductionStepRepository().Sequence(ctx)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextOrderNumber(ctx, h.numberPrefix)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	o, err := order.NewOrder(
		cmd.OrderID(), number, cmd.CustomerID(), now, cmd.ExpectedDeliveryDate(), cmd.Notes(), cmd.UserID(),
	)
	if err != nil {
		return nil, err
	}

	familyRepo := uow.MachineFamilyRepository()
	for _, line := range cmd.Lines() {
		family, familyErr := familyRepo.Get(ctx, line.FamilyID)
		if familyErr != nil {
			return nil, familyErr
		}
		if _, err = o.AddLineItem(
			line.LineItemID, family, line.Quantity, line.UnitPrice, seq.First(), cmd.UserID(), now,
		); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

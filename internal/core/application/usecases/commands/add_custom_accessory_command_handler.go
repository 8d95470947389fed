package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// AddCustomAccessoryCommandHandler attaches a custom accessory to a line item.
// An accessory that is already on the line item fails with errs.DuplicateError;
// use ChangeCustomAccessoryQuantityCommand to change how many are needed.
type AddCustomAccessoryCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAddCustomAccessoryCommandHandler(uowFactory UoWFactory, clock ports.Clock) AddCustomAccessoryCommandHandler {
	return AddCustomAccessoryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AddCustomAccessoryCommandHandler) Handle(
	ctx context.Context,
	cmd AddCustomAccessoryCommand,
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

	if _, err := uow.AccessoryRepository().Get(ctx, cmd.AccessoryID()); err != nil {
		return nil, err
	}

	repo := uow.OrderRepository()
	o, err := repo.GetByLineItemID(ctx, cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	accessory, err := o.AddCustomAccessory(
		cmd.LineItemID(),
		cmd.ItemAccessoryID(),
		cmd.AccessoryID(),
		cmd.Quantity(),
		cmd.RequiredForDispatch(),
		cmd.UserID(),
		h.clock.Now(),
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

	return accessory, nil
}

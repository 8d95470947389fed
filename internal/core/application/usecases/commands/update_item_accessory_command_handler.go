package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// UpdateItemAccessoryCommandHandler changes an item accessory's status and
// appends an accessory history row. Completing a variable accessory needs a
// value, either already stored or passed with the command.
type UpdateItemAccessoryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewUpdateItemAccessoryCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) UpdateItemAccessoryCommandHandler {
	return UpdateItemAccessoryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpdateItemAccessoryCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateItemAccessoryCommand,
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

	accessory, err := o.UpdateItemAccessory(
		cmd.ItemAccessoryID(), cmd.Status(), cmd.VariableValue(), cmd.UserID(), cmd.Notes(), h.clock.Now(),
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

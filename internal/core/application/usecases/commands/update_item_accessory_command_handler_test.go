package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemAccessoryCommandHandler_Handle_CompletesVariableAccessory(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t, sequence(t), utmFamily(t, kernel.NewUUID(), kernel.NewUUID()))
	gearbox := o.LineItems()[0].Accessories()[1]
	value := "Gearbox Model : PLG-40"

	cmd, err := commands.NewUpdateItemAccessoryCommand(gearbox.ID(), order.Complete, &value, "stores", "fitted")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByItemAccessoryID", ctx, gearbox.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateItemAccessoryCommandHandler(factory, fixedNow)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Complete, updated.Status())
	assert.Equal(t, value, updated.VariableValue())
	require.NotEmpty(t, updated.History())
	last := updated.History()[len(updated.History())-1]
	assert.Equal(t, order.Pending, last.From)
	assert.Equal(t, order.Complete, last.To)
	assert.Equal(t, "stores", last.UserID)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateItemAccessoryCommandHandler_Handle_VariableValueRequired(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t, sequence(t), utmFamily(t, kernel.NewUUID(), kernel.NewUUID()))
	gearbox := o.LineItems()[0].Accessories()[1]

	cmd, err := commands.NewUpdateItemAccessoryCommand(gearbox.ID(), order.Complete, nil, "stores", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByItemAccessoryID", ctx, gearbox.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateItemAccessoryCommandHandler(factory, fixedNow)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, order.Pending, gearbox.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestUpdateItemAccessoryCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateItemAccessoryCommandHandler(factory, fixedNow)

	_, err := h.Handle(t.Context(), commands.UpdateItemAccessoryCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateItemAccessoryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordStockMovementCommandHandler_Handle_Receive(t *testing.T) {
	ctx := t.Context()
	accessory := newAccessory(t, "GBX-40")
	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), accessory.ID(), inventory.In, 5, "purchase order 17", nil, "stores",
	)
	require.NoError(t, err)

	repo := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccessoryRepository").Return(repo).Once(),
		repo.On("Get", ctx, accessory.ID()).Return(accessory, nil).Once(),
		repo.On("Update", ctx, accessory).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordStockMovementCommandHandler(factory, fixedNow)
	movement, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.MovementID(), movement.ID())
	assert.Equal(t, 5, movement.NewStockLevel())
	assert.Equal(t, now, movement.RecordedAt())
	assert.Equal(t, 5, accessory.CurrentStockLevel())
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRecordStockMovementCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	accessory := newAccessory(t, "GBX-40")
	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), accessory.ID(), inventory.Out, -1, "", nil, "stores",
	)
	require.NoError(t, err)

	repo := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccessoryRepository").Return(repo).Once(),
		repo.On("Get", ctx, accessory.ID()).Return(accessory, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordStockMovementCommandHandler(factory, fixedNow)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, 0, accessory.CurrentStockLevel())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRecordStockMovementCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), kernel.NewUUID(), inventory.In, 1, "", &orderID, "stores",
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordStockMovementCommandHandler(factory, fixedNow)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "AccessoryRepository")
	uow.AssertExpectations(t)
}

func TestRecordStockMovementCommandHandler_Handle_ConcurrentMovementLoses(t *testing.T) {
	ctx := t.Context()
	accessory := newAccessory(t, "GBX-40")
	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), accessory.ID(), inventory.Adjustment, -3, "count", nil, "stores",
	)
	require.NoError(t, err)

	repo := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccessoryRepository").Return(repo).Once(),
		repo.On("Get", ctx, accessory.ID()).Return(accessory, nil).Once(),
		repo.On("Update", ctx, accessory).Return(errs.NewVersionIsInvalidError("accessory")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordStockMovementCommandHandler(factory, fixedNow)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

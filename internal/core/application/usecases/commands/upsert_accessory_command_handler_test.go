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

func TestNewUpsertAccessoryCommand_SKURequired(t *testing.T) {
	_, err := commands.NewUpsertAccessoryCommand(kernel.NewUUID(), "", inventory.Details{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpsertAccessoryCommandHandler_Handle_Creates(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	details := inventory.Details{Name: "Gearbox", Category: "Drive", MinStockLevel: 2, Price: money(t, "450")}
	cmd, err := commands.NewUpsertAccessoryCommand(id, "GBX-40", details)
	require.NoError(t, err)

	repo := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccessoryRepository").Return(repo).Once(),
		repo.On("GetBySKU", ctx, "GBX-40").Return(nil, errs.NewObjectNotFoundError("accessory", "GBX-40")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*inventory.Accessory")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpsertAccessoryCommandHandler(factory)
	accessory, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, id, accessory.ID())
	assert.Equal(t, 0, accessory.CurrentStockLevel())
	assert.True(t, accessory.IsLowStock())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpsertAccessoryCommandHandler_Handle_KeepsStockLevel(t *testing.T) {
	ctx := t.Context()
	existing := newAccessory(t, "GBX-40")
	_, err := existing.RecordMovement(kernel.NewUUID(), inventory.In, 7, "", nil, "stores", now)
	require.NoError(t, err)

	details := inventory.Details{Name: "Gearbox PLG", Category: "Drive", MinStockLevel: 10, Price: money(t, "470")}
	cmd, err := commands.NewUpsertAccessoryCommand(kernel.NewUUID(), "GBX-40", details)
	require.NoError(t, err)

	repo := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccessoryRepository").Return(repo).Once(),
		repo.On("GetBySKU", ctx, "GBX-40").Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpsertAccessoryCommandHandler(factory)
	accessory, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), accessory.ID())
	assert.Equal(t, "Gearbox PLG", accessory.Name())
	assert.Equal(t, 7, accessory.CurrentStockLevel())
	assert.True(t, accessory.IsLowStock())
	uow.AssertExpectations(t)
}

func TestDeleteAccessoryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteAccessoryCommand(id)
	require.NoError(t, err)

	repo := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccessoryRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteAccessoryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

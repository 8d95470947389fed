package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewLinkDefaultAccessoryCommand_QuantityMustBePositive(t *testing.T) {
	_, err := commands.NewLinkDefaultAccessoryCommand(kernel.NewUUID(), kernel.NewUUID(), catalog.LinkTerms{})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestLinkDefaultAccessoryCommandHandler_Handle_RelinkOverwrites(t *testing.T) {
	ctx := t.Context()
	certificate := newAccessory(t, "DOC-CAL")
	family := utmFamily(t, certificate.ID(), kernel.NewUUID())
	terms := catalog.LinkTerms{DefaultQuantity: 2, IsRequiredForDispatch: false}
	cmd, err := commands.NewLinkDefaultAccessoryCommand(family.ID(), certificate.ID(), terms)
	require.NoError(t, err)

	families := new(MockMachineFamilyRepository)
	accessories := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineFamilyRepository").Return(families).Once(),
		families.On("Get", ctx, family.ID()).Return(family, nil).Once(),
		uow.On("AccessoryRepository").Return(accessories).Once(),
		accessories.On("Get", ctx, certificate.ID()).Return(certificate, nil).Once(),
		families.On("Update", ctx, family).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewLinkDefaultAccessoryCommandHandler(factory)
	link, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, link.DefaultQuantity())
	assert.False(t, link.IsRequiredForDispatch())
	assert.Len(t, family.DefaultAccessories(), 2, "re-linking does not add a second link")
	uow.AssertExpectations(t)
	families.AssertExpectations(t)
	accessories.AssertExpectations(t)
}

func TestLinkDefaultAccessoryCommandHandler_Handle_UnknownAccessory(t *testing.T) {
	ctx := t.Context()
	family := utmFamily(t, kernel.NewUUID(), kernel.NewUUID())
	accessoryID := kernel.NewUUID()
	cmd, err := commands.NewLinkDefaultAccessoryCommand(family.ID(), accessoryID, catalog.LinkTerms{DefaultQuantity: 1})
	require.NoError(t, err)

	families := new(MockMachineFamilyRepository)
	accessories := new(MockAccessoryRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineFamilyRepository").Return(families).Once(),
		families.On("Get", ctx, family.ID()).Return(family, nil).Once(),
		uow.On("AccessoryRepository").Return(accessories).Once(),
		accessories.On("Get", ctx, accessoryID).Return(nil, errs.NewObjectNotFoundError("accessory", accessoryID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewLinkDefaultAccessoryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Len(t, family.DefaultAccessories(), 2)
	families.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUnlinkDefaultAccessoryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	certificate, gearbox := kernel.NewUUID(), kernel.NewUUID()
	family := utmFamily(t, certificate, gearbox)
	cmd, err := commands.NewUnlinkDefaultAccessoryCommand(family.ID(), certificate)
	require.NoError(t, err)

	families := new(MockMachineFamilyRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineFamilyRepository").Return(families).Once(),
		families.On("Get", ctx, family.ID()).Return(family, nil).Once(),
		families.On("Update", ctx, family).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUnlinkDefaultAccessoryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, family.DefaultAccessories(), 1)
	assert.Equal(t, gearbox, family.DefaultAccessories()[0].AccessoryID())
	uow.AssertExpectations(t)
}

func TestUnlinkDefaultAccessoryCommandHandler_Handle_MissingLink(t *testing.T) {
	ctx := t.Context()
	family := utmFamily(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewUnlinkDefaultAccessoryCommand(family.ID(), kernel.NewUUID())
	require.NoError(t, err)

	families := new(MockMachineFamilyRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineFamilyRepository").Return(families).Once(),
		families.On("Get", ctx, family.ID()).Return(family, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUnlinkDefaultAccessoryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestDeleteMachineFamilyCommandHandler_Handle_Referenced(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteMachineFamilyCommand(id)
	require.NoError(t, err)

	families := new(MockMachineFamilyRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineFamilyRepository").Return(families).Once(),
		families.On("Delete", ctx, id).
			Return(errs.NewReferentialConflictError("machine family", id, "order line items")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteMachineFamilyCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrReferentialConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

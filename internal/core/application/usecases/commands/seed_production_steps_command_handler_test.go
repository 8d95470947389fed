package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSeedProductionStepsCommand_Empty(t *testing.T) {
	_, err := commands.NewSeedProductionStepsCommand(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSeedProductionStepsCommandHandler_Handle_CountsInserted(t *testing.T) {
	ctx := t.Context()
	defs := production.DefaultDefinitions()
	cmd, err := commands.NewSeedProductionStepsCommand(defs)
	require.NoError(t, err)

	repo := new(MockProductionStepRepository)
	uow := new(MockUoW)
	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductionStepRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(s *production.Step) bool { return s.OrderIndex() <= 3 })).
		Return(false, nil).Times(3)
	repo.On("Add", ctx, mock.MatchedBy(func(s *production.Step) bool { return s.OrderIndex() > 3 })).
		Return(true, nil).Times(len(defs) - 3)
	repo.On("Sequence", ctx).Return(sequence(t), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSeedProductionStepsCommandHandler(factory)
	inserted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, len(defs)-3, inserted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSeedProductionStepsCommandHandler_Handle_InvalidDefinition(t *testing.T) {
	cmd, err := commands.NewSeedProductionStepsCommand([]production.Definition{{Name: "", OrderIndex: 1}})
	require.NoError(t, err)
	factory := new(MockProductionUoWFactory)

	h := commands.NewSeedProductionStepsCommandHandler(factory)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

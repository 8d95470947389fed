package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/production"
)

// SeedProductionStepsCommandHandler inserts the step definitions that are not
// present yet, matched by name. Running it twice changes nothing.
//
// Handle returns how many steps were inserted. The resulting sequence must
// load cleanly before the seed is committed.
type SeedProductionStepsCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewSeedProductionStepsCommandHandler(uowFactory ProductionUoWFactory) SeedProductionStepsCommandHandler {
	return SeedProductionStepsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SeedProductionStepsCommandHandler) Handle(ctx context.Context, cmd SeedProductionStepsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	steps := make([]*production.Step, 0, len(cmd.Definitions()))
	for _, d := range cmd.Definitions() {
		step, err := production.NewStep(kernel.NewUUID(), d.Name, d.OrderIndex, d.IsDispatchStep, d.IsMilestone)
		if err != nil {
			return 0, err
		}
		steps = append(steps, step)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductionStepRepository()
	inserted := 0
	for _, step := range steps {
		ok, err := repo.Add(ctx, step)
		if err != nil {
			return 0, err
		}
		if ok {
			inserted++
		}
	}

	if _, err := repo.Sequence(ctx); err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return inserted, nil
}

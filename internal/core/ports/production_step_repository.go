package ports

import (
	"context"

	"orderflow/internal/core/domain/model/production"
)

// ProductionStepRepository persists the production step sequence.
type ProductionStepRepository interface {
	// Add inserts a step. A step whose name already exists is left untouched
	// and inserted reports false.
	Add(ctx context.Context, step *production.Step) (inserted bool, err error)

	// Sequence loads all steps ordered by order index.
	Sequence(ctx context.Context) (production.Sequence, error)
}

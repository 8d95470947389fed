package productionrepo

import (
	"context"

	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductionStepRepository implements ProductionStepRepository using GORM.
type GormProductionStepRepository struct {
	db *gorm.DB
}

func NewGormProductionStepRepository(db *gorm.DB) *GormProductionStepRepository {
	return &GormProductionStepRepository{db: db}
}

// Add inserts step unless a step with the same name exists.
func (r *GormProductionStepRepository) Add(ctx context.Context, step *production.Step) (bool, error) {
	if err := step.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(step)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// Sequence loads every step ordered by order index. An empty table is reported
// as errs.ObjectNotFoundError.
func (r *GormProductionStepRepository) Sequence(ctx context.Context) (production.Sequence, error) {
	var dtos []ProductionStepDTO
	if err := r.db.WithContext(ctx).Order("order_index").Find(&dtos).Error; err != nil {
		return production.Sequence{}, err
	}
	if len(dtos) == 0 {
		return production.Sequence{}, errs.NewObjectNotFoundError("production step sequence", "default")
	}

	steps := make([]*production.Step, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return production.Sequence{}, err
		}
		steps = append(steps, s)
	}

	return production.NewSequence(steps)
}

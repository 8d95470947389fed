// Package productionrepo persists the production step sequence with GORM.
package productionrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// ProductionStepDTO is the production_steps row. Name and order index are
// each unique.
type ProductionStepDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	OrderIndex     int       `gorm:"type:int;not null;uniqueIndex"`
	IsDispatchStep bool      `gorm:"not null"`
	IsMilestone    bool      `gorm:"not null"`
}

func (ProductionStepDTO) TableName() string {
	return "production_steps"
}

func fromDomain(s *production.Step) ProductionStepDTO {
	return ProductionStepDTO{
		ID:             s.ID().Bytes(),
		Name:           s.Name(),
		OrderIndex:     s.OrderIndex(),
		IsDispatchStep: s.IsDispatchStep(),
		IsMilestone:    s.IsMilestone(),
	}
}

func toDomain(dto ProductionStepDTO) (*production.Step, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return production.RestoreStep(id, dto.Name, dto.OrderIndex, dto.IsDispatchStep, dto.IsMilestone)
}

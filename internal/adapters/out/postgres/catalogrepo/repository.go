package catalogrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMachineFamilyRepository implements MachineFamilyRepository using GORM.
type GormMachineFamilyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMachineFamilyRepository(db *gorm.DB, tracker aggregateTracker) *GormMachineFamilyRepository {
	return &GormMachineFamilyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the family and its default links.
func (r *GormMachineFamilyRepository) Add(ctx context.Context, aggregate *catalog.MachineFamily) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	const version = 1
	dto := fromDomain(aggregate)
	dto.Version = version
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateError("machine family", aggregate.Name())
		}
		return err
	}

	aggregate.MarkPersisted(version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the family row only if nobody saved it since it was loaded,
// drops links the aggregate no longer has and upserts the rest on
// (family_id, accessory_id).
func (r *GormMachineFamilyRepository) Update(ctx context.Context, aggregate *catalog.MachineFamily) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	next := dto.Version + 1
	db := r.db.WithContext(ctx)

	result := db.Model(&MachineFamilyDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":        dto.Name,
			"description": dto.Description,
			"is_product":  dto.IsProduct,
			"base_price":  dto.BasePrice,
			"version":     next,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(db, aggregate.ID())
	}

	stale := db.Where("family_id = ?", dto.ID)
	if len(dto.Defaults) > 0 {
		kept := make([]uuid.UUID, 0, len(dto.Defaults))
		for _, d := range dto.Defaults {
			kept = append(kept, d.AccessoryID)
		}
		stale = stale.Where("accessory_id NOT IN ?", kept)
	}
	if err := stale.Delete(&DefaultAccessoryDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Defaults) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "family_id"}, {Name: "accessory_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"id", "position", "default_quantity", "is_variable", "variable_placeholder", "is_required_for_dispatch",
			}),
		}).Create(&dto.Defaults).Error; err != nil {
			return err
		}
	}

	aggregate.MarkPersisted(next)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMachineFamilyRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MachineFamily, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "machine family", id.String(), "id = ?", id.Bytes())
}

func (r *GormMachineFamilyRepository) GetByName(ctx context.Context, name string) (*catalog.MachineFamily, error) {
	return r.first(ctx, "machine family", name, "name = ?", name)
}

// Delete removes a family no line item refers to. Its links go with it.
func (r *GormMachineFamilyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var lineItems int64
	if err := db.Table("order_line_items").Where("family_id = ?", id.Bytes()).Count(&lineItems).Error; err != nil {
		return err
	}
	if lineItems > 0 {
		return errs.NewReferentialConflictError("machine family", id.String(), "order line items")
	}

	result := db.Delete(&MachineFamilyDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("machine family", id.String())
	}

	return nil
}

func (r *GormMachineFamilyRepository) missingOrStale(db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.Model(&MachineFamilyDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("machine family", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		"machine family version",
		errors.New("machine family was changed by another transaction"),
	)
}

func (r *GormMachineFamilyRepository) first(ctx context.Context, object, key string, query string, args ...any) (*catalog.MachineFamily, error) {
	var dto MachineFamilyDTO
	err := r.db.WithContext(ctx).
		Preload("Defaults", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(object, key)
		}
		return nil, err
	}

	return toDomain(dto)
}

package inventoryrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccessoryRepository implements AccessoryRepository using GORM.
type GormAccessoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAccessoryRepository(db *gorm.DB, tracker aggregateTracker) *GormAccessoryRepository {
	return &GormAccessoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new accessory at version 1 together with any movements it
// already recorded.
func (r *GormAccessoryRepository) Add(ctx context.Context, aggregate *inventory.Accessory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	const version = 1
	dto := fromDomain(aggregate)
	dto.Version = version

	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateError("accessory", aggregate.SKU())
		}
		return err
	}
	if err := r.appendMovements(db, aggregate, version); err != nil {
		return err
	}

	aggregate.MarkPersisted(version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the accessory only if nobody saved it since it was loaded and
// appends its pending movements.
func (r *GormAccessoryRepository) Update(ctx context.Context, aggregate *inventory.Accessory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	next := dto.Version + 1
	db := r.db.WithContext(ctx)

	result := db.Model(&AccessoryDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":                dto.Name,
			"description":         dto.Description,
			"category":            dto.Category,
			"unit_of_measure":     dto.UnitOfMeasure,
			"min_stock_level":     dto.MinStockLevel,
			"price":               dto.Price,
			"current_stock_level": dto.CurrentStockLevel,
			"version":             next,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(db, aggregate.ID())
	}

	if err := r.appendMovements(db, aggregate, next); err != nil {
		return err
	}

	aggregate.MarkPersisted(next)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAccessoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Accessory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccessoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accessory", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAccessoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Accessory, error) {
	var dto AccessoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accessory", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAccessoryRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Accessory, error) {
	if len(ids) == 0 {
		return []*inventory.Accessory{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []AccessoryDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("sku").Find(&dtos).Error; err != nil {
		return nil, err
	}

	accessories := make([]*inventory.Accessory, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accessories = append(accessories, a)
	}

	return accessories, nil
}

// Delete removes an accessory that no order uses and the ledger never saw,
// along with the family links that point at it.
func (r *GormAccessoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var used int64
	if err := db.Table("order_item_accessories").Where("accessory_id = ?", id.Bytes()).Count(&used).Error; err != nil {
		return err
	}
	if used > 0 {
		return errs.NewReferentialConflictError("accessory", id.String(), "order item accessories")
	}

	var movements int64
	if err := db.Model(&StockMovementDTO{}).Where("accessory_id = ?", id.Bytes()).Count(&movements).Error; err != nil {
		return err
	}
	if movements > 0 {
		return errs.NewReferentialConflictError("accessory", id.String(), "stock movements")
	}

	if err := db.Exec("DELETE FROM family_accessory_defaults WHERE accessory_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := db.Delete(&AccessoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accessory", id.String())
	}

	return nil
}

func (r *GormAccessoryRepository) appendMovements(db *gorm.DB, aggregate *inventory.Accessory, version int) error {
	pending := aggregate.PendingMovements()
	if len(pending) == 0 {
		return nil
	}

	dtos := movementsFromDomain(pending, version)
	return db.Create(&dtos).Error
}

func (r *GormAccessoryRepository) missingOrStale(db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.Model(&AccessoryDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("accessory", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		"accessory version",
		errors.New("accessory was changed by another transaction"),
	)
}

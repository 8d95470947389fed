package orderrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its whole tree at version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	const version = 1
	dto := fromDomain(aggregate)
	dto.Version = version

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateError("order", aggregate.Number().String())
		}
		return err
	}

	aggregate.MarkPersisted(version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. The orders row is written first with a
// version check; a stale aggregate writes nothing. Children are then upserted,
// children removed from the aggregate are deleted and new history rows are
// appended.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	next := dto.Version + 1
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"expected_delivery_date": dto.ExpectedDeliveryDate,
			"status":                 dto.Status,
			"total_amount":           dto.TotalAmount,
			"notes":                  dto.Notes,
			"version":                next,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(db, aggregate.ID())
	}

	if err := appendRows(db, dto.StatusHistory); err != nil {
		return err
	}
	if err := r.saveLineItems(db, dto); err != nil {
		return err
	}

	aggregate.MarkPersisted(next)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.load(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByLineItemID(ctx context.Context, lineItemID kernel.UUID) (*order.Order, error) {
	if err := lineItemID.Validate(); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Select("order_id").
		Where("id = ?", lineItemID.Bytes()).
		Take(&orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line item", lineItemID.String())
		}
		return nil, err
	}

	return r.getByRawID(ctx, orderID)
}

func (r *GormOrderRepository) GetByItemAccessoryID(ctx context.Context, itemAccessoryID kernel.UUID) (*order.Order, error) {
	if err := itemAccessoryID.Validate(); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	err := r.db.WithContext(ctx).
		Table("order_item_accessories AS oia").
		Select("li.order_id").
		Joins("JOIN order_line_items AS li ON li.id = oia.line_item_id").
		Where("oia.id = ?", itemAccessoryID.Bytes()).
		Take(&orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item accessory", itemAccessoryID.String())
		}
		return nil, err
	}

	return r.getByRawID(ctx, orderID)
}

// NextOrderNumber takes a transaction-scoped advisory lock on the prefix, so
// two transactions never read the same maximum.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context, prefix string) (order.Number, error) {
	db := r.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "order_number:"+prefix).Error; err != nil {
		return order.Number{}, err
	}

	var last int
	if err := db.Model(&OrderDTO{}).
		Select("COALESCE(MAX(number_sequence), 0)").
		Where("number_prefix = ?", prefix).
		Scan(&last).Error; err != nil {
		return order.Number{}, err
	}

	return order.NewNumber(prefix, last+1)
}

func (r *GormOrderRepository) getByRawID(ctx context.Context, raw uuid.UUID) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *GormOrderRepository) load(ctx context.Context) *gorm.DB {
	bySeq := func(db *gorm.DB) *gorm.DB { return db.Order("seq") }
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }

	return r.db.WithContext(ctx).
		Preload("StatusHistory", bySeq).
		Preload("LineItems", byPosition).
		Preload("LineItems.CurrentStep").
		Preload("LineItems.ProductionHistory", bySeq).
		Preload("LineItems.Accessories", byPosition).
		Preload("LineItems.Accessories.History", bySeq)
}

func (r *GormOrderRepository) saveLineItems(db *gorm.DB, dto OrderDTO) error {
	itemIDs := make([]uuid.UUID, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		itemIDs = append(itemIDs, item.ID)
	}
	if err := deleteMissing(db.Where("order_id = ?", dto.ID), &LineItemDTO{}, itemIDs); err != nil {
		return err
	}
	if len(dto.LineItems) == 0 {
		return nil
	}

	if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"position", "quantity", "unit_price", "total_price", "current_step_id", "production_state",
		}),
	}).Create(&dto.LineItems).Error; err != nil {
		return err
	}

	for _, item := range dto.LineItems {
		if err := appendRows(db, item.ProductionHistory); err != nil {
			return err
		}
		if err := r.saveItemAccessories(db, item); err != nil {
			return err
		}
	}

	return nil
}

func (r *GormOrderRepository) saveItemAccessories(db *gorm.DB, item LineItemDTO) error {
	ids := make([]uuid.UUID, 0, len(item.Accessories))
	for _, a := range item.Accessories {
		ids = append(ids, a.ID)
	}
	if err := deleteMissing(db.Where("line_item_id = ?", item.ID), &ItemAccessoryDTO{}, ids); err != nil {
		return err
	}
	if len(item.Accessories) == 0 {
		return nil
	}

	if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"position", "unit_quantity", "required_quantity", "variable_value", "is_required_for_dispatch", "status",
		}),
	}).Create(&item.Accessories).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateError("accessory", "line item "+item.ID.String())
		}
		return err
	}

	for _, a := range item.Accessories {
		if err := appendRows(db, a.History); err != nil {
			return err
		}
	}

	return nil
}

func (r *GormOrderRepository) missingOrStale(db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		"order version",
		errors.New("order was changed by another transaction"),
	)
}

// appendRows inserts history rows that are not stored yet. Stored rows are
// never rewritten.
func appendRows[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// deleteMissing deletes rows in scope whose id is not in keep.
func deleteMissing(scope *gorm.DB, model any, keep []uuid.UUID) error {
	if len(keep) > 0 {
		scope = scope.Where("id NOT IN ?", keep)
	}
	return scope.Delete(model).Error
}

package queries

import (
	"context"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStockMovementsQueryHandler struct {
	db *gorm.DB
}

func NewGetStockMovementsQueryHandler(db *gorm.DB) GetStockMovementsQueryHandler {
	return GetStockMovementsQueryHandler{db: db}
}

// Handle fails with errs.ObjectNotFoundError for an unknown accessory. An
// accessory without movements yields an empty slice.
func (h GetStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementsQuery,
) ([]GetStockMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accessoryID := query.AccessoryID().Bytes()

	var count int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM accessories WHERE id = ?`, accessoryID,
	).Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("accessory", query.AccessoryID().String())
	}

	movements := make([]GetStockMovementsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			change_type,
			quantity_change,
			new_stock_level,
			reason,
			order_id,
			user_id,
			recorded_at
		FROM stock_movements
		WHERE accessory_id = ?
		ORDER BY accessory_version, seq
	`, accessoryID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStockMovementsQueryResponse
		var id uuid.UUID
		var orderID uuid.NullUUID
		var changeType string

		err = rows.Scan(
			&id,
			&changeType,
			&resp.QuantityChange,
			&resp.NewStockLevel,
			&resp.Reason,
			&orderID,
			&resp.UserID,
			&resp.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		movementID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = movementID

		if orderID.Valid {
			ref, refErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if refErr != nil {
				return nil, refErr
			}
			resp.OrderID = &ref
		}

		resp.ChangeType, err = inventory.ParseChangeType(changeType)
		if err != nil {
			return nil, err
		}

		movements = append(movements, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

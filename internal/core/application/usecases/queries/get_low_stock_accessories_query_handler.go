package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockAccessoriesQueryHandler reads the accessories table directly.
// Results are ordered by SKU.
type GetLowStockAccessoriesQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockAccessoriesQueryHandler(db *gorm.DB) GetLowStockAccessoriesQueryHandler {
	return GetLowStockAccessoriesQueryHandler{db: db}
}

func (h GetLowStockAccessoriesQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockAccessoriesQuery,
) ([]GetLowStockAccessoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accessories := make([]GetLowStockAccessoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			category,
			current_stock_level,
			min_stock_level
		FROM accessories
		WHERE current_stock_level < min_stock_level
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLowStockAccessoriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.SKU,
			&resp.Name,
			&resp.Category,
			&resp.CurrentStockLevel,
			&resp.MinStockLevel,
		)
		if err != nil {
			return nil, err
		}

		accessoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = accessoryID
		resp.Shortfall = resp.MinStockLevel - resp.CurrentStockLevel

		accessories = append(accessories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accessories, nil
}

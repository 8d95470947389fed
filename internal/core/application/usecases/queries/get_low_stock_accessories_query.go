package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetLowStockAccessoriesQueryIsNotConstructed = errors.New(
		"GetLowStockAccessoriesQuery must be created via NewGetLowStockAccessoriesQuery constructor",
	)
)

// GetLowStockAccessoriesQuery lists accessories whose current stock level is
// below their minimum stock level.
type GetLowStockAccessoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLowStockAccessoriesQuery() GetLowStockAccessoriesQuery {
	return GetLowStockAccessoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLowStockAccessoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockAccessoriesQueryIsNotConstructed)
}

// GetLowStockAccessoriesQueryResponse is one low-stock accessory. Shortfall is
// MinStockLevel minus CurrentStockLevel and always positive.
type GetLowStockAccessoriesQueryResponse struct {
	ID                kernel.UUID
	SKU               string
	Name              string
	Category          string
	CurrentStockLevel int
	MinStockLevel     int
	Shortfall         int
}

package inventory

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// InsufficientStockError is returned when an OUT movement asks for more than is on hand.
type InsufficientStockError struct {
	AccessoryID kernel.UUID
	SKU         string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s requested %d, available %d", errs.ErrInsufficientStock, e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrInsufficientStock
}

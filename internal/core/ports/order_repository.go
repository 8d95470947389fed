package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is loaded and saved as a whole: line items, item accessories and
// all audit trails travel with it.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes with an optimistic version check. History rows
	// are append-only and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByLineItemID loads the order owning a line item.
	GetByLineItemID(ctx context.Context, lineItemID kernel.UUID) (*order.Order, error)

	// GetByItemAccessoryID loads the order owning an item accessory.
	GetByItemAccessoryID(ctx context.Context, itemAccessoryID kernel.UUID) (*order.Order, error)

	// NextOrderNumber reserves the next sequence for prefix. Callers must be
	// inside a transaction; concurrent callers for the same prefix serialize.
	NextOrderNumber(ctx context.Context, prefix string) (order.Number, error)
}

package inventory

import (
	"time"

	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/kernel"
)

const StockMovedEventType = "inventory.stock_moved"

type StockMovedEvent struct {
	event.Base

	SKU            string
	ChangeType     string
	QuantityChange int
	NewStockLevel  int
	MinStockLevel  int
	OrderID        *kernel.UUID
}

func newStockMovedEvent(a *Accessory, m *StockMovement, at time.Time) StockMovedEvent {
	return StockMovedEvent{
		Base:           event.NewBase(StockMovedEventType, a.ID(), at),
		SKU:            a.SKU(),
		ChangeType:     m.ChangeType().String(),
		QuantityChange: m.QuantityChange(),
		NewStockLevel:  m.NewStockLevel(),
		MinStockLevel:  a.MinStockLevel(),
		OrderID:        m.OrderID(),
	}
}

// IsLowStock reports whether the movement left the accessory under its minimum.
func (e StockMovedEvent) IsLowStock() bool {
	return e.NewStockLevel < e.MinStockLevel
}

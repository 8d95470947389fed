package inventory

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

var ErrStockMovementIsNotConstructed = errors.New("StockMovement must be created via Accessory.RecordMovement")

// StockMovement is an immutable ledger entry. NewStockLevel is the accessory's
// level right after the movement was applied.
type StockMovement struct {
	id             kernel.UUID
	accessoryID    kernel.UUID
	changeType     ChangeType
	quantityChange int
	newStockLevel  int
	reason         string
	orderID        *kernel.UUID
	userID         string
	recordedAt     time.Time

	isConstructed bool
}

// MovementRecord carries the stored fields of a movement for RestoreStockMovement.
type MovementRecord struct {
	ID             kernel.UUID
	AccessoryID    kernel.UUID
	ChangeType     ChangeType
	QuantityChange int
	NewStockLevel  int
	Reason         string
	OrderID        *kernel.UUID
	UserID         string
	RecordedAt     time.Time
}

func RestoreStockMovement(r MovementRecord) (*StockMovement, error) {
	if err := errors.Join(
		r.ID.Validate(),
		r.AccessoryID.Validate(),
		r.ChangeType.Validate(),
	); err != nil {
		return nil, err
	}

	return &StockMovement{
		id:             r.ID,
		accessoryID:    r.AccessoryID,
		changeType:     r.ChangeType,
		quantityChange: r.QuantityChange,
		newStockLevel:  r.NewStockLevel,
		reason:         r.Reason,
		orderID:        r.OrderID,
		userID:         r.UserID,
		recordedAt:     r.RecordedAt,
		isConstructed:  true,
	}, nil
}

func (m *StockMovement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrStockMovementIsNotConstructed
	}
	return nil
}

func (m *StockMovement) ID() kernel.UUID          { return m.id }
func (m *StockMovement) AccessoryID() kernel.UUID { return m.accessoryID }
func (m *StockMovement) ChangeType() ChangeType   { return m.changeType }
func (m *StockMovement) QuantityChange() int      { return m.quantityChange }
func (m *StockMovement) NewStockLevel() int       { return m.newStockLevel }
func (m *StockMovement) Reason() string           { return m.reason }
func (m *StockMovement) UserID() string           { return m.userID }
func (m *StockMovement) RecordedAt() time.Time    { return m.recordedAt }

// OrderID is the order the movement was issued for, if any.
func (m *StockMovement) OrderID() *kernel.UUID {
	return m.orderID
}

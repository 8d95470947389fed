package order

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// StatusChange is one row of an order's status history.
type StatusChange struct {
	ID        kernel.UUID
	From      Status
	To        Status
	UserID    string
	Notes     string
	ChangedAt time.Time
}

// ProductionChange is one row of a line item's production history. FromStep is
// empty on the row written when the line item is created.
type ProductionChange struct {
	ID        kernel.UUID
	FromStep  string
	ToStep    string
	State     ProductionState
	UserID    string
	Notes     string
	ChangedAt time.Time
}

// AccessoryChange is one row of an item accessory's status history.
type AccessoryChange struct {
	ID            kernel.UUID
	From          AccessoryStatus
	To            AccessoryStatus
	VariableValue string
	UserID        string
	Notes         string
	ChangedAt     time.Time
}

package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetStockMovementsQueryIsNotConstructed = errors.New(
		"GetStockMovementsQuery must be created via NewGetStockMovementsQuery constructor",
	)
)

// GetStockMovementsQuery returns the stock ledger of one accessory in the
// order the movements were appended.
type GetStockMovementsQuery struct {
	accessoryID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewGetStockMovementsQuery(accessoryID kernel.UUID) (GetStockMovementsQuery, error) {
	if err := accessoryID.Validate(); err != nil {
		return GetStockMovementsQuery{}, errs.NewValueIsRequiredErrorWithCause("accessory id", err)
	}
	return GetStockMovementsQuery{accessoryID: accessoryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementsQueryIsNotConstructed)
}

func (q GetStockMovementsQuery) AccessoryID() kernel.UUID {
	return q.accessoryID
}

// GetStockMovementsQueryResponse is one ledger entry. OrderID is nil for
// movements not tied to an order.
type GetStockMovementsQueryResponse struct {
	ID             kernel.UUID
	ChangeType     inventory.ChangeType
	QuantityChange int
	NewStockLevel  int
	Reason         string
	OrderID        *kernel.UUID
	UserID         string
	RecordedAt     time.Time
}

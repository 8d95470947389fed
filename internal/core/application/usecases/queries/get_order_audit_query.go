package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderAuditQueryIsNotConstructed = errors.New(
		"GetOrderAuditQuery must be created via NewGetOrderAuditQuery constructor",
	)
)

// AuditKind names the trail an audit entry comes from.
type AuditKind string

const (
	OrderStatusAudit      AuditKind = "order_status"
	ProductionStatusAudit AuditKind = "production_status"
	AccessoryStatusAudit  AuditKind = "accessory_status"
)

// GetOrderAuditQuery merges the order's status history with the production
// history of its line items and the status history of their accessories.
type GetOrderAuditQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderAuditQuery(orderID kernel.UUID) (GetOrderAuditQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderAuditQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderAuditQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAuditQueryIsNotConstructed)
}

func (q GetOrderAuditQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderAuditQueryResponse is one audit entry. SubjectID is the order, line
// item or item accessory the entry belongs to. From and To hold statuses or
// step names depending on Kind; State is only set for production entries and
// VariableValue only for accessory entries.
type GetOrderAuditQueryResponse struct {
	Kind          AuditKind
	SubjectID     kernel.UUID
	From          string
	To            string
	State         string
	VariableValue string
	UserID        string
	Notes         string
	ChangedAt     time.Time
}

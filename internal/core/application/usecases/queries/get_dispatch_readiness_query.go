package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetDispatchReadinessQueryIsNotConstructed = errors.New(
		"GetDispatchReadinessQuery must be created via NewGetDispatchReadinessQuery constructor",
	)
)

// GetDispatchReadinessQuery asks whether an order could enter a dispatch
// status right now, without changing it.
//
// Example:
//
//	query, err := NewGetDispatchReadinessQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	readiness, err := handler.Handle(ctx, query)
//	if !readiness.Allowed {
//	    fmt.Printf("blocked by %s: %s\n", readiness.Blocker.AccessoryID, readiness.Blocker.Reason)
//	}
type GetDispatchReadinessQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetDispatchReadinessQuery(orderID kernel.UUID) (GetDispatchReadinessQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDispatchReadinessQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetDispatchReadinessQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDispatchReadinessQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchReadinessQueryIsNotConstructed)
}

func (q GetDispatchReadinessQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetDispatchReadinessQueryResponse carries the gate outcome. Blocker names the
// first failing accessory and is nil when Allowed.
type GetDispatchReadinessQueryResponse struct {
	OrderID kernel.UUID
	Number  string
	Status  order.Status
	Allowed bool
	Blocker *order.DispatchBlockedError
}

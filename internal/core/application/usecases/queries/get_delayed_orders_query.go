package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetDelayedOrdersQueryIsNotConstructed = errors.New(
		"GetDelayedOrdersQuery must be created via NewGetDelayedOrdersQuery constructor",
	)
)

// GetDelayedOrdersQuery lists orders whose expected delivery date is before
// asOf and that have not been dispatched or cancelled.
//
// Example:
//
//	query, _ := NewGetDelayedOrdersQuery(time.Now())
//	delayed, err := handler.Handle(ctx, query)
//	for _, o := range delayed {
//	    fmt.Printf("%s for %s is %d days late\n", o.Number, o.CustomerName, o.DaysOverdue)
//	}
type GetDelayedOrdersQuery struct {
	asOf  time.Time
	guard guard.ConstructorGuard
}

func NewGetDelayedOrdersQuery(asOf time.Time) (GetDelayedOrdersQuery, error) {
	if asOf.IsZero() {
		return GetDelayedOrdersQuery{}, errs.NewValueIsRequiredError("as of")
	}
	return GetDelayedOrdersQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDelayedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDelayedOrdersQueryIsNotConstructed)
}

func (q GetDelayedOrdersQuery) AsOf() time.Time {
	return q.asOf
}

// GetDelayedOrdersQueryResponse is one delayed order. DaysOverdue counts whole
// days past the expected delivery date.
type GetDelayedOrdersQueryResponse struct {
	ID                   kernel.UUID
	Number               string
	CustomerName         string
	Status               order.Status
	ExpectedDeliveryDate time.Time
	DaysOverdue          int
}

package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var errUserIsRequired = errs.NewValueIsRequiredError("user id")

// BlockReason tells why the dispatch gate refused a transition.
type BlockReason string

const (
	AccessoryIncomplete BlockReason = "accessory incomplete"
	StockUnavailable    BlockReason = "stock unavailable"
)

// DispatchBlockedError names the first accessory that keeps an order from
// entering a dispatch-class status.
type DispatchBlockedError struct {
	OrderID         kernel.UUID
	LineItemID      kernel.UUID
	ItemAccessoryID kernel.UUID
	AccessoryID     kernel.UUID
	Reason          BlockReason
	Status          AccessoryStatus
	StockLevel      int
}

func (e *DispatchBlockedError) Error() string {
	switch e.Reason {
	case StockUnavailable:
		return fmt.Sprintf("%s: accessory %s on line item %s has stock level %d",
			errs.ErrDispatchBlocked, e.AccessoryID, e.LineItemID, e.StockLevel)
	case AccessoryIncomplete:
		return fmt.Sprintf("%s: accessory %s on line item %s is %s",
			errs.ErrDispatchBlocked, e.AccessoryID, e.LineItemID, e.Status)
	}
	return fmt.Sprintf("%s: %s", errs.ErrDispatchBlocked, e.Reason)
}

func (e *DispatchBlockedError) Unwrap() error {
	return errs.ErrDispatchBlocked
}

// stepLabel lets step names take part in InvalidTransitionError.
type stepLabel string

func (s stepLabel) String() string {
	return string(s)
}

package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Draft ─> PendingApproval ─> Approved ─> InProduction ─> ReadyForDispatch ─> Dispatched ─> Completed
//	  │             │               │             │                 │               │
//	  └─────────────┴───────────────┴─────────────┴────> Cancelled <┴───────────────┘
//
// Moves go strictly forward and may skip states. Cancelled is reachable from every
// non-terminal state. Completed and Cancelled are terminal. A status that has been
// left is never re-entered.
type Status int

const (
	// Unknown is the zero value and the "from" side of an order's first history row.
	Unknown Status = iota
	Draft
	PendingApproval
	Approved
	InProduction
	ReadyForDispatch
	Dispatched
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Draft:            "Draft",
		PendingApproval:  "Pending Approval",
		Approved:         "Approved",
		InProduction:     "In Production",
		ReadyForDispatch: "Ready for Dispatch",
		Dispatched:       "Dispatched",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s < Draft || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps external spellings ("ready_for_dispatch", "Ready for Dispatch",
// "READYFORDISPATCH") onto the canonical enumeration.
func ParseStatus(s string) (Status, error) {
	key := normalizeStatusKey(s)
	for status, str := range getStatusStrings() {
		if status != Unknown && normalizeStatusKey(str) == key {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func normalizeStatusKey(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// IsTerminal is true for Completed and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsClosed is true once the goods have left or the order is over. Production
// and accessory tracking are frozen in closed orders.
func (s Status) IsClosed() bool {
	return s == Dispatched || s.IsTerminal()
}

// AllowsLineItemChanges is true until production starts.
func (s Status) AllowsLineItemChanges() bool {
	return s == Draft || s == PendingApproval || s == Approved
}

// IsDelayable reports whether an order in this status still counts against its
// expected delivery date.
func (s Status) IsDelayable() bool {
	return s >= Draft && s < Dispatched
}

// TransitionTo validates a move to target and returns it.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError("order", s, target)
	}
	if target == Cancelled {
		return Cancelled, nil
	}
	if target <= s {
		return Unknown, errs.NewInvalidTransitionError("order", s, target)
	}
	return target, nil
}

// RequiresDispatchGate reports whether moving to target must pass the dispatch
// gate. Completed is gated too when reached by skipping past ReadyForDispatch.
func (s Status) RequiresDispatchGate(target Status) bool {
	switch target {
	case ReadyForDispatch, Dispatched:
		return true
	case Completed:
		return s < ReadyForDispatch
	default:
		return false
	}
}

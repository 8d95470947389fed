package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// ProductionState qualifies a line item's position on its current step.
type ProductionState int

const (
	UnknownProductionState ProductionState = iota
	Active
	// OnHold marks the line item as blocked without moving its step pointer.
	OnHold
)

func (s ProductionState) String() string {
	switch s {
	case Active:
		return "Active"
	case OnHold:
		return "On Hold"
	case UnknownProductionState:
		return "Unknown"
	}
	return "Unknown"
}

func (s ProductionState) Validate() error {
	if s != Active && s != OnHold {
		return errs.NewValueIsInvalidErrorWithCause(
			"production state is invalid",
			fmt.Errorf("%d is not a valid production state", s),
		)
	}
	return nil
}

func ParseProductionState(s string) (ProductionState, error) {
	switch strings.NewReplacer(" ", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s))) {
	case "active":
		return Active, nil
	case "onhold":
		return OnHold, nil
	}
	return UnknownProductionState, errs.NewValueIsInvalidErrorWithCause(
		"production state is invalid",
		fmt.Errorf("%q is not a valid production state", s),
	)
}

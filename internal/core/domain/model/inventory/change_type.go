package inventory

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// ChangeType classifies a stock movement.
type ChangeType int

const (
	UnknownChange ChangeType = iota
	// In receives stock. Quantity change must be positive.
	In
	// Out issues stock. Quantity change must be negative and cannot exceed the current level.
	Out
	// Adjustment corrects the level in either direction and may drive it negative.
	Adjustment
)

func getChangeTypeStrings() map[ChangeType]string {
	return map[ChangeType]string{
		UnknownChange: "UNKNOWN",
		In:            "IN",
		Out:           "OUT",
		Adjustment:    "ADJUSTMENT",
	}
}

func (c ChangeType) String() string {
	if str, ok := getChangeTypeStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

func (c ChangeType) Validate() error {
	if c != In && c != Out && c != Adjustment {
		return errs.NewValueIsInvalidErrorWithCause("change type is invalid", fmt.Errorf("%d is not a valid change type", c))
	}
	return nil
}

// ParseChangeType accepts the canonical names case-insensitively.
func ParseChangeType(s string) (ChangeType, error) {
	for c, str := range getChangeTypeStrings() {
		if c != UnknownChange && strings.EqualFold(str, strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return UnknownChange, errs.NewValueIsInvalidErrorWithCause("change type is invalid", fmt.Errorf("%q is not a valid change type", s))
}

// validateQuantity enforces the sign rule of each change type.
func (c ChangeType) validateQuantity(quantityChange int) error {
	var ok bool
	switch c {
	case In:
		ok = quantityChange > 0
	case Out:
		ok = quantityChange < 0
	case Adjustment:
		ok = quantityChange != 0
	case UnknownChange:
		return c.Validate()
	}

	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity change is invalid",
			fmt.Errorf("%d is not allowed for %s movements", quantityChange, c),
		)
	}
	return nil
}

package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// AccessoryStatus tracks one required accessory or document of a line item.
// Complete is the state the dispatch gate waits for.
type AccessoryStatus int

const (
	UnknownAccessoryStatus AccessoryStatus = iota
	Pending
	Ordered
	Received
	Integrated
	Complete
)

func getAccessoryStatusStrings() map[AccessoryStatus]string {
	return map[AccessoryStatus]string{
		UnknownAccessoryStatus: "Unknown",
		Pending:                "Pending",
		Ordered:                "Ordered",
		Received:               "Received",
		Integrated:             "Integrated",
		Complete:               "Complete",
	}
}

func (s AccessoryStatus) String() string {
	if str, ok := getAccessoryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s AccessoryStatus) Validate() error {
	if s < Pending || s > Complete {
		return errs.NewValueIsInvalidErrorWithCause(
			"accessory status is invalid",
			fmt.Errorf("%d is not a valid accessory status", s),
		)
	}
	return nil
}

// ParseAccessoryStatus is case-insensitive and also accepts "Attached" for Complete.
func ParseAccessoryStatus(s string) (AccessoryStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "attached" {
		return Complete, nil
	}
	for status, str := range getAccessoryStatusStrings() {
		if status != UnknownAccessoryStatus && strings.ToLower(str) == key {
			return status, nil
		}
	}
	return UnknownAccessoryStatus, errs.NewValueIsInvalidErrorWithCause(
		"accessory status is invalid",
		fmt.Errorf("%q is not a valid accessory status", s),
	)
}

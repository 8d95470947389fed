package order

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrNumberIsNotConstructed = errors.New("Number must be created via NewNumber constructor")

// Number is the human-readable order identifier, unique per prefix: "EM-000042".
type Number struct {
	prefix   string
	sequence int
	guard    guard.ConstructorGuard
}

func NewNumber(prefix string, sequence int) (Number, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))

	var problems []error
	if prefix == "" {
		problems = append(problems, errs.NewValueIsRequiredError("order number prefix"))
	} else if strings.ContainsAny(prefix, " \t\n") {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"order number prefix is invalid",
			fmt.Errorf("%q contains whitespace", prefix),
		))
	}
	if sequence <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("order number", sequence, 1, "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return Number{}, err
	}

	return Number{prefix: prefix, sequence: sequence, guard: guard.NewConstructorGuard()}, nil
}

func (n Number) Prefix() string {
	return n.prefix
}

func (n Number) Sequence() int {
	return n.sequence
}

func (n Number) String() string {
	return fmt.Sprintf("%s-%06d", n.prefix, n.sequence)
}

func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

package production

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrStepIsNotConstructed = errors.New("Step must be created via NewStep constructor")

// Step is one stage of the global manufacturing sequence. Steps are reference data:
// they are seeded once and never change afterwards.
type Step struct {
	id             kernel.UUID
	name           string
	orderIndex     int
	isDispatchStep bool
	isMilestone    bool

	isConstructed bool
}

func NewStep(id kernel.UUID, name string, orderIndex int, isDispatchStep, isMilestone bool) (*Step, error) {
	step := &Step{
		isDispatchStep: isDispatchStep,
		isMilestone:    isMilestone,
		isConstructed:  true,
	}

	if err := errors.Join(
		step.setID(id),
		step.setName(name),
		step.setOrderIndex(orderIndex),
	); err != nil {
		return nil, err
	}

	return step, nil
}

// RestoreStep rehydrates a step loaded from storage.
func RestoreStep(id kernel.UUID, name string, orderIndex int, isDispatchStep, isMilestone bool) (*Step, error) {
	return NewStep(id, name, orderIndex, isDispatchStep, isMilestone)
}

func (s *Step) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStepIsNotConstructed
	}
	return nil
}

func (s *Step) IsEqual(other *Step) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Step) ID() kernel.UUID {
	return s.id
}

func (s *Step) Name() string {
	return s.name
}

// OrderIndex is the step's position in the sequence. Lower runs earlier.
func (s *Step) OrderIndex() int {
	return s.orderIndex
}

// IsDispatchStep marks dispatch-class stages.
func (s *Step) IsDispatchStep() bool {
	return s.isDispatchStep
}

func (s *Step) IsMilestone() bool {
	return s.isMilestone
}

func (s *Step) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Step) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("step name")
	}
	s.name = name
	return nil
}

func (s *Step) setOrderIndex(orderIndex int) error {
	if orderIndex <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order index is invalid",
			fmt.Errorf("%d is not greater than 0", orderIndex),
		)
	}
	s.orderIndex = orderIndex
	return nil
}

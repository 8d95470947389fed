package production

import (
	"fmt"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Sequence is the ordered, validated view over all seeded steps.
type Sequence struct {
	steps []*Step
}

// NewSequence sorts steps by order index and rejects duplicate names or indices.
func NewSequence(steps []*Step) (Sequence, error) {
	if len(steps) == 0 {
		return Sequence{}, errs.NewValueIsRequiredError("production steps")
	}

	sorted := slices.Clone(steps)
	slices.SortFunc(sorted, func(a, b *Step) int {
		return a.OrderIndex() - b.OrderIndex()
	})

	names := make(map[string]struct{}, len(sorted))
	for i, step := range sorted {
		if err := step.Validate(); err != nil {
			return Sequence{}, err
		}
		if _, ok := names[step.Name()]; ok {
			return Sequence{}, errs.NewDuplicateError("production step", step.Name())
		}
		names[step.Name()] = struct{}{}

		if i > 0 && sorted[i-1].OrderIndex() == step.OrderIndex() {
			return Sequence{}, errs.NewDuplicateError("production step index", step.OrderIndex())
		}
	}

	return Sequence{steps: sorted}, nil
}

// AllSteps returns the steps ordered by order index.
func (s Sequence) AllSteps() []*Step {
	return slices.Clone(s.steps)
}

// First is the step every new line item starts on.
func (s Sequence) First() *Step {
	if len(s.steps) == 0 {
		return nil
	}
	return s.steps[0]
}

func (s Sequence) StepByName(name string) (*Step, error) {
	for _, step := range s.steps {
		if step.Name() == name {
			return step, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("production step", name)
}

func (s Sequence) StepByID(id kernel.UUID) (*Step, error) {
	for _, step := range s.steps {
		if step.ID().IsEqual(id) {
			return step, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("production step", id.String())
}

// IsDispatchStep reports false for ids that are not part of the sequence.
func (s Sequence) IsDispatchStep(id kernel.UUID) bool {
	step, err := s.StepByID(id)
	if err != nil {
		return false
	}
	return step.IsDispatchStep()
}

func (s Sequence) Len() int {
	return len(s.steps)
}

func (s Sequence) String() string {
	return fmt.Sprintf("production.Sequence(%d steps)", len(s.steps))
}

package commands

import (
	"errors"
	"slices"

	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrSeedProductionStepsCommandIsNotConstructed = errors.New(
	"SeedProductionStepsCommand must be created via NewSeedProductionStepsCommand constructor",
)

// SeedProductionStepsCommand carries the step definitions to seed, typically
// production.DefaultDefinitions().
type SeedProductionStepsCommand struct { //nolint:recvcheck //using for validation
	definitions []production.Definition

	guard guard.ConstructorGuard
}

func NewSeedProductionStepsCommand(definitions []production.Definition) (SeedProductionStepsCommand, error) {
	if len(definitions) == 0 {
		return SeedProductionStepsCommand{}, errs.NewValueIsRequiredError("step definitions")
	}

	return SeedProductionStepsCommand{
		definitions: slices.Clone(definitions),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SeedProductionStepsCommand) Validate() error {
	return c.guard.Validate(ErrSeedProductionStepsCommandIsNotConstructed)
}

func (c SeedProductionStepsCommand) Definitions() []production.Definition {
	return slices.Clone(c.definitions)
}

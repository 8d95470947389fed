package production_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStep(t *testing.T) {
	t.Run("valid step", func(t *testing.T) {
		id := kernel.NewUUID()
		step, err := production.NewStep(id, "  Final Assembly ", 7, false, true)

		require.NoError(t, err)
		require.NoError(t, step.Validate())
		assert.True(t, step.ID().IsEqual(id))
		assert.Equal(t, "Final Assembly", step.Name())
		assert.Equal(t, 7, step.OrderIndex())
		assert.False(t, step.IsDispatchStep())
		assert.True(t, step.IsMilestone())
	})

	t.Run("collects every validation error", func(t *testing.T) {
		_, err := production.NewStep(kernel.UUID{}, " ", 0, false, false)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var step production.Step
		require.ErrorIs(t, step.Validate(), production.ErrStepIsNotConstructed)
	})
}

package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("forward moves and skips are allowed", func(t *testing.T) {
		next, err := order.Draft.TransitionTo(order.PendingApproval)
		require.NoError(t, err)
		assert.Equal(t, order.PendingApproval, next)

		next, err = order.Approved.TransitionTo(order.Dispatched)
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, next)
	})

	t.Run("backward moves and self moves fail", func(t *testing.T) {
		for _, tc := range []struct{ from, to order.Status }{
			{order.InProduction, order.Approved},
			{order.Dispatched, order.Draft},
			{order.Approved, order.Approved},
		} {
			_, err := tc.from.TransitionTo(tc.to)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("cancelled is reachable from every non-terminal status", func(t *testing.T) {
		for s := order.Draft; s <= order.Dispatched; s++ {
			next, err := s.TransitionTo(order.Cancelled)
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("terminal statuses are absorbing", func(t *testing.T) {
		for _, from := range []order.Status{order.Completed, order.Cancelled} {
			for to := order.Draft; to <= order.Cancelled; to++ {
				_, err := from.TransitionTo(to)
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	})

	t.Run("unknown target is invalid", func(t *testing.T) {
		_, err := order.Draft.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_RequiresDispatchGate(t *testing.T) {
	assert.True(t, order.InProduction.RequiresDispatchGate(order.ReadyForDispatch))
	assert.True(t, order.ReadyForDispatch.RequiresDispatchGate(order.Dispatched))
	assert.True(t, order.Approved.RequiresDispatchGate(order.Completed))
	assert.False(t, order.Dispatched.RequiresDispatchGate(order.Completed))
	assert.False(t, order.Draft.RequiresDispatchGate(order.InProduction))
	assert.False(t, order.InProduction.RequiresDispatchGate(order.Cancelled))
}

func TestParseStatus(t *testing.T) {
	for input, want := range map[string]order.Status{
		"Ready for Dispatch": order.ReadyForDispatch,
		"ready_for_dispatch": order.ReadyForDispatch,
		"PENDINGAPPROVAL":    order.PendingApproval,
		" in-production ":    order.InProduction,
		"cancelled":          order.Cancelled,
	} {
		got, err := order.ParseStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = order.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Approved.AllowsLineItemChanges())
	assert.False(t, order.InProduction.AllowsLineItemChanges())
	assert.True(t, order.Dispatched.IsClosed())
	assert.False(t, order.ReadyForDispatch.IsClosed())
	assert.True(t, order.ReadyForDispatch.IsDelayable())
	assert.False(t, order.Cancelled.IsDelayable())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseAccessoryStatus(t *testing.T) {
	got, err := order.ParseAccessoryStatus("attached")
	require.NoError(t, err)
	assert.Equal(t, order.Complete, got)

	got, err = order.ParseAccessoryStatus("RECEIVED")
	require.NoError(t, err)
	assert.Equal(t, order.Received, got)

	_, err = order.ParseAccessoryStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseProductionState(t *testing.T) {
	got, err := order.ParseProductionState("on_hold")
	require.NoError(t, err)
	assert.Equal(t, order.OnHold, got)
	assert.Equal(t, "On Hold", got.String())

	_, err = order.ParseProductionState("paused")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewNumber(t *testing.T) {
	n, err := order.NewNumber(" em ", 42)
	require.NoError(t, err)
	assert.Equal(t, "EM-000042", n.String())
	assert.Equal(t, "EM", n.Prefix())

	_, err = order.NewNumber("", 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero order.Number
	require.ErrorIs(t, zero.Validate(), order.ErrNumberIsNotConstructed)
}

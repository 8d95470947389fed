package services_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operator = "qa"

var now = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type fixture struct {
	order       *order.Order
	certificate kernel.UUID
	gearbox     kernel.UUID
	item        *order.LineItem
}

// newFixture builds a Draft order with one line item carrying a required
// calibration certificate and an optional gearbox.
func newFixture(t *testing.T) fixture {
	t.Helper()

	family, err := catalog.NewMachineFamily(kernel.NewUUID(), "UTM", "", true, kernel.ZeroMoney())
	require.NoError(t, err)
	certificate, gearbox := kernel.NewUUID(), kernel.NewUUID()
	_, err = family.LinkAccessory(kernel.NewUUID(), certificate, catalog.LinkTerms{DefaultQuantity: 1, IsRequiredForDispatch: true})
	require.NoError(t, err)
	_, err = family.LinkAccessory(kernel.NewUUID(), gearbox, catalog.LinkTerms{DefaultQuantity: 1})
	require.NoError(t, err)

	step, err := production.NewStep(kernel.NewUUID(), "Raw Material Ordered", 1, false, false)
	require.NoError(t, err)

	number, err := order.NewNumber("EM", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), now, now.AddDate(0, 0, 14), "", operator)
	require.NoError(t, err)
	item, err := o.AddLineItem(kernel.NewUUID(), family, 2, nil, step, operator, now)
	require.NoError(t, err)

	return fixture{order: o, certificate: certificate, gearbox: gearbox, item: item}
}

func (f fixture) complete(t *testing.T, accessoryID kernel.UUID) {
	t.Helper()
	for _, a := range f.item.Accessories() {
		if a.AccessoryID().IsEqual(accessoryID) {
			_, err := f.order.UpdateItemAccessory(a.ID(), order.Complete, nil, operator, "", now)
			require.NoError(t, err)
			return
		}
	}
	t.Fatalf("accessory %s not on line item", accessoryID)
}

func TestDispatchGate_CanDispatch(t *testing.T) {
	gate := services.NewDispatchGate()

	t.Run("incomplete required accessory blocks", func(t *testing.T) {
		f := newFixture(t)

		res := gate.CanDispatch(f.order, services.StockLevels{})

		assert.False(t, res.Allowed)
		require.NotNil(t, res.Blocker)
		assert.Equal(t, order.AccessoryIncomplete, res.Blocker.Reason)
		assert.True(t, res.Blocker.AccessoryID.IsEqual(f.certificate))
		assert.True(t, res.Blocker.LineItemID.IsEqual(f.item.ID()))
		assert.Equal(t, order.Pending, res.Blocker.Status)
	})

	t.Run("optional accessories do not block", func(t *testing.T) {
		f := newFixture(t)
		f.complete(t, f.certificate)

		res := gate.CanDispatch(f.order, services.StockLevels{f.gearbox: -5})

		assert.True(t, res.Allowed)
		assert.Nil(t, res.Blocker)
	})

	t.Run("negative stock of a required accessory blocks", func(t *testing.T) {
		f := newFixture(t)
		f.complete(t, f.certificate)

		res := gate.CanDispatch(f.order, services.StockLevels{f.certificate: -1})

		assert.False(t, res.Allowed)
		require.NotNil(t, res.Blocker)
		assert.Equal(t, order.StockUnavailable, res.Blocker.Reason)
		assert.Equal(t, -1, res.Blocker.StockLevel)
	})

	t.Run("completeness is reported before stock", func(t *testing.T) {
		f := newFixture(t)

		res := gate.CanDispatch(f.order, services.StockLevels{f.certificate: -1})

		require.NotNil(t, res.Blocker)
		assert.Equal(t, order.AccessoryIncomplete, res.Blocker.Reason)
	})

	t.Run("nil lookup skips the stock rule", func(t *testing.T) {
		f := newFixture(t)
		f.complete(t, f.certificate)

		assert.True(t, gate.CanDispatch(f.order, nil).Allowed)
	})

	t.Run("first blocking line item is reported", func(t *testing.T) {
		f := newFixture(t)
		f.complete(t, f.certificate)
		custom, err := f.order.AddCustomAccessory(f.item.ID(), kernel.NewUUID(), kernel.NewUUID(), 1, true, operator, now)
		require.NoError(t, err)

		res := gate.CanDispatch(f.order, nil)

		require.NotNil(t, res.Blocker)
		assert.True(t, res.Blocker.ItemAccessoryID.IsEqual(custom.ID()))
	})
}

func TestDispatchGate_Policy(t *testing.T) {
	gate := services.NewDispatchGate()

	t.Run("blocks the transition and keeps the status", func(t *testing.T) {
		f := newFixture(t)

		err := f.order.TransitionTo(order.ReadyForDispatch, operator, "", now, gate.Policy(nil))

		require.ErrorIs(t, err, errs.ErrDispatchBlocked)
		var blocked *order.DispatchBlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, order.Draft, f.order.Status())
	})

	t.Run("lets a ready order through", func(t *testing.T) {
		f := newFixture(t)
		f.complete(t, f.certificate)
		f.order.ClearDomainEvents()

		require.NoError(t, f.order.TransitionTo(order.Dispatched, operator, "", now, gate.Policy(services.StockLevels{f.certificate: 0})))
		assert.Equal(t, order.Dispatched, f.order.Status())
		assert.Len(t, f.order.DomainEvents(), 1)
	})
}

// newProductionFixture is newFixture with the line item placed on the first
// step of the default workshop sequence.
func newProductionFixture(t *testing.T) (fixture, production.Sequence) {
	t.Helper()

	defs := production.DefaultDefinitions()
	steps := make([]*production.Step, 0, len(defs))
	for _, d := range defs {
		s, err := production.NewStep(kernel.NewUUID(), d.Name, d.OrderIndex, d.IsDispatchStep, d.IsMilestone)
		require.NoError(t, err)
		steps = append(steps, s)
	}
	seq, err := production.NewSequence(steps)
	require.NoError(t, err)

	family, err := catalog.NewMachineFamily(kernel.NewUUID(), "UTM", "", true, kernel.ZeroMoney())
	require.NoError(t, err)
	certificate := kernel.NewUUID()
	_, err = family.LinkAccessory(kernel.NewUUID(), certificate, catalog.LinkTerms{DefaultQuantity: 1, IsRequiredForDispatch: true})
	require.NoError(t, err)

	number, err := order.NewNumber("EM", 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), now, now.AddDate(0, 0, 14), "", operator)
	require.NoError(t, err)
	item, err := o.AddLineItem(kernel.NewUUID(), family, 2, nil, seq.First(), operator, now)
	require.NoError(t, err)

	return fixture{order: o, certificate: certificate, item: item}, seq
}

func TestDispatchGate_LineItemDispatchStep(t *testing.T) {
	gate := services.NewDispatchGate()

	t.Run("pending certificate keeps the line item off the dispatch step", func(t *testing.T) {
		f, seq := newProductionFixture(t)

		_, err := f.order.AdvanceLineItem(f.item.ID(), seq, "Dispatched", order.Active, operator, "", now, gate.Policy(nil))

		require.ErrorIs(t, err, errs.ErrDispatchBlocked)
		var blocked *order.DispatchBlockedError
		require.ErrorAs(t, err, &blocked)
		assert.True(t, blocked.AccessoryID.IsEqual(f.certificate))
		assert.True(t, blocked.LineItemID.IsEqual(f.item.ID()))
		assert.Equal(t, "Raw Material Ordered", f.item.CurrentStepName())
		assert.Len(t, f.item.ProductionHistory(), 1)
	})

	t.Run("completed certificate lets the line item reach the dispatch step", func(t *testing.T) {
		f, seq := newProductionFixture(t)
		f.complete(t, f.certificate)

		advanced, err := f.order.AdvanceLineItem(f.item.ID(), seq, "Dispatched", order.Active, operator, "", now, gate.Policy(nil))

		require.NoError(t, err)
		assert.Equal(t, "Dispatched", advanced.CurrentStepName())
		assert.Len(t, advanced.ProductionHistory(), 2)
	})

	t.Run("owed stock keeps the line item off the dispatch step", func(t *testing.T) {
		f, seq := newProductionFixture(t)
		f.complete(t, f.certificate)

		_, err := f.order.AdvanceLineItem(
			f.item.ID(), seq, "Dispatched", order.Active, operator, "", now,
			gate.Policy(services.StockLevels{f.certificate: -2}),
		)

		var blocked *order.DispatchBlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, order.StockUnavailable, blocked.Reason)
	})

	t.Run("steps before dispatch are not gated", func(t *testing.T) {
		f, seq := newProductionFixture(t)

		_, err := f.order.AdvanceLineItem(f.item.ID(), seq, "Verified", order.Active, operator, "", now, gate.Policy(nil))

		require.NoError(t, err)
	})

	t.Run("other line items do not block", func(t *testing.T) {
		f, seq := newProductionFixture(t)
		f.complete(t, f.certificate)
		family, err := catalog.NewMachineFamily(kernel.NewUUID(), "Press", "", true, kernel.ZeroMoney())
		require.NoError(t, err)
		_, err = family.LinkAccessory(kernel.NewUUID(), kernel.NewUUID(), catalog.LinkTerms{DefaultQuantity: 1, IsRequiredForDispatch: true})
		require.NoError(t, err)
		other, err := f.order.AddLineItem(kernel.NewUUID(), family, 1, nil, seq.First(), operator, now)
		require.NoError(t, err)

		assert.True(t, gate.CanDispatchLineItem(f.order, f.item, nil).Allowed)
		assert.False(t, gate.CanDispatchLineItem(f.order, other, nil).Allowed)
		assert.False(t, gate.CanDispatch(f.order, nil).Allowed)
	})
}

func TestStockLevelsOf(t *testing.T) {
	a, err := inventory.RestoreAccessory(kernel.NewUUID(), "LC-500", inventory.Details{
		Name:     "Loadcell 500kN",
		Category: "Loadcell",
		Price:    kernel.ZeroMoney(),
	}, -3, 1)
	require.NoError(t, err)

	levels := services.StockLevelsOf([]*inventory.Accessory{a})

	level, ok := levels.StockLevel(a.ID())
	assert.True(t, ok)
	assert.Equal(t, -3, level)
	_, ok = levels.StockLevel(kernel.NewUUID())
	assert.False(t, ok)
}

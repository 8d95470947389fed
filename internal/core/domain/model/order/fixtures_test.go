package order_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/production"

	"github.com/stretchr/testify/require"
)

const operator = "operator-1"

var orderDate = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type allowAll struct{ calls int }

func (p *allowAll) Check(*order.Order) error {
	p.calls++
	return nil
}

func (p *allowAll) CheckLineItem(*order.Order, *order.LineItem) error {
	p.calls++
	return nil
}

type blockAll struct{ err error }

func (p blockAll) Check(*order.Order) error { return p.err }

func (p blockAll) CheckLineItem(*order.Order, *order.LineItem) error { return p.err }

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func sequence(t *testing.T) production.Sequence {
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
	return seq
}

// utmFamily links a required calibration certificate (qty 1) and a variable gearbox (qty 1).
func utmFamily(t *testing.T) (*catalog.MachineFamily, kernel.UUID, kernel.UUID) {
	t.Helper()
	family, err := catalog.NewMachineFamily(kernel.NewUUID(), "UTM", "", true, money(t, "1000"))
	require.NoError(t, err)

	certificate, gearbox := kernel.NewUUID(), kernel.NewUUID()
	_, err = family.LinkAccessory(kernel.NewUUID(), certificate, catalog.LinkTerms{
		DefaultQuantity:       1,
		IsRequiredForDispatch: true,
	})
	require.NoError(t, err)
	_, err = family.LinkAccessory(kernel.NewUUID(), gearbox, catalog.LinkTerms{
		DefaultQuantity:     1,
		IsVariable:          true,
		VariablePlaceholder: "Gearbox Model : ____",
	})
	require.NoError(t, err)

	return family, certificate, gearbox
}

func newDraft(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewNumber("EM", 7)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), orderDate, orderDate.AddDate(0, 1, 0), "", operator)
	require.NoError(t, err)
	return o
}

func newOrderWithUTM(t *testing.T, seq production.Sequence, qty int) (*order.Order, *order.LineItem) {
	t.Helper()
	o := newDraft(t)
	family, _, _ := utmFamily(t)
	item, err := o.AddLineItem(kernel.NewUUID(), family, qty, nil, seq.First(), operator, orderDate)
	require.NoError(t, err)
	return o, item
}

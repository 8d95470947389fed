package commands_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const operator = "planner"

var (
	now      = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	fixedNow = clock.NewFixed(now)
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMachineFamilyRepository struct{ mock.Mock }

func (m *MockMachineFamilyRepository) Add(ctx context.Context, f *catalog.MachineFamily) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockMachineFamilyRepository) Update(ctx context.Context, f *catalog.MachineFamily) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockMachineFamilyRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MachineFamily, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MachineFamily), args.Error(1)
}

func (m *MockMachineFamilyRepository) GetByName(ctx context.Context, name string) (*catalog.MachineFamily, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MachineFamily), args.Error(1)
}

func (m *MockMachineFamilyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAccessoryRepository struct{ mock.Mock }

func (m *MockAccessoryRepository) Add(ctx context.Context, a *inventory.Accessory) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccessoryRepository) Update(ctx context.Context, a *inventory.Accessory) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccessoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Accessory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Accessory, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Accessory, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductionStepRepository struct{ mock.Mock }

func (m *MockProductionStepRepository) Add(ctx context.Context, step *production.Step) (bool, error) {
	args := m.Called(ctx, step)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductionStepRepository) Sequence(ctx context.Context) (production.Sequence, error) {
	args := m.Called(ctx)
	return args.Get(0).(production.Sequence), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByLineItemID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByItemAccessoryID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context, prefix string) (order.Number, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(order.Number), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) MachineFamilyRepository() ports.MachineFamilyRepository {
	return m.Called().Get(0).(ports.MachineFamilyRepository)
}

func (m *MockUoW) AccessoryRepository() ports.AccessoryRepository {
	return m.Called().Get(0).(ports.AccessoryRepository)
}

func (m *MockUoW) ProductionStepRepository() ports.ProductionStepRepository {
	return m.Called().Get(0).(ports.ProductionStepRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	return m.Called().Get(0).(commands.InventoryUoW)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	return m.Called().Get(0).(commands.ProductionUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

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

func newAccessory(t *testing.T, sku string) *inventory.Accessory {
	t.Helper()
	a, err := inventory.NewAccessory(kernel.NewUUID(), sku, inventory.Details{
		Name:          sku,
		Category:      "Parts",
		MinStockLevel: 1,
		Price:         money(t, "10"),
	})
	require.NoError(t, err)
	return a
}

// utmFamily links certificate as required for dispatch and gearbox as a variable accessory.
func utmFamily(t *testing.T, certificate, gearbox kernel.UUID) *catalog.MachineFamily {
	t.Helper()
	family, err := catalog.NewMachineFamily(kernel.NewUUID(), "UTM", "", true, money(t, "1000"))
	require.NoError(t, err)
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
	return family
}

// draftOrder returns a Draft order with one UTM line item of quantity 1.
func draftOrder(t *testing.T, seq production.Sequence, family *catalog.MachineFamily) *order.Order {
	t.Helper()
	number, err := order.NewNumber("EM", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), now, now.AddDate(0, 1, 0), "", operator)
	require.NoError(t, err)
	_, err = o.AddLineItem(kernel.NewUUID(), family, 1, nil, seq.First(), operator, now)
	require.NoError(t, err)
	return o
}

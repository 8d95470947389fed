package pgtest

import (
	"context"

	"orderflow/internal/adapters/out/postgres/catalogrepo"
	"orderflow/internal/adapters/out/postgres/customerrepo"
	"orderflow/internal/adapters/out/postgres/inventoryrepo"
	"orderflow/internal/adapters/out/postgres/productionrepo"
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/production"

	"gorm.io/gorm"
)

// NopTracker satisfies the repositories' aggregate tracker and ignores calls.
type NopTracker struct{}

func (NopTracker) TrackAggregate(kernel.UUID, any) {}

// Catalog is a small persisted catalog: one customer, the default step
// sequence, and a UTM family with a required certificate and a variable gearbox.
type Catalog struct {
	Customer    *customer.Customer
	Sequence    production.Sequence
	Family      *catalog.MachineFamily
	Certificate *inventory.Accessory
	Gearbox     *inventory.Accessory
}

// SeedCatalog writes a Catalog to db.
func SeedCatalog(ctx context.Context, db *gorm.DB) (*Catalog, error) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Acme Testing Labs", customer.Contact{Email: "lab@acme.test"})
	if err != nil {
		return nil, err
	}
	if err = customerrepo.NewGormCustomerRepository(db, NopTracker{}).Add(ctx, c); err != nil {
		return nil, err
	}

	steps := productionrepo.NewGormProductionStepRepository(db)
	for _, d := range production.DefaultDefinitions() {
		step, stepErr := production.NewStep(kernel.NewUUID(), d.Name, d.OrderIndex, d.IsDispatchStep, d.IsMilestone)
		if stepErr != nil {
			return nil, stepErr
		}
		if _, stepErr = steps.Add(ctx, step); stepErr != nil {
			return nil, stepErr
		}
	}
	seq, err := steps.Sequence(ctx)
	if err != nil {
		return nil, err
	}

	accessories := inventoryrepo.NewGormAccessoryRepository(db, NopTracker{})
	certificate, err := inventory.NewAccessory(kernel.NewUUID(), "DOC-CAL", inventory.Details{
		Name:     "Calibration Certificate",
		Category: "Documents",
		Price:    kernel.ZeroMoney(),
	})
	if err != nil {
		return nil, err
	}
	gearbox, err := inventory.NewAccessory(kernel.NewUUID(), "GBX-40", inventory.Details{
		Name:          "Gearbox",
		Category:      "Drive",
		MinStockLevel: 2,
		Price:         kernel.ZeroMoney(),
	})
	if err != nil {
		return nil, err
	}
	for _, a := range []*inventory.Accessory{certificate, gearbox} {
		if err = accessories.Add(ctx, a); err != nil {
			return nil, err
		}
	}

	price, err := kernel.MoneyFromString("1000")
	if err != nil {
		return nil, err
	}
	family, err := catalog.NewMachineFamily(kernel.NewUUID(), "UTM", "Universal testing machine", true, price)
	if err != nil {
		return nil, err
	}
	if _, err = family.LinkAccessory(kernel.NewUUID(), certificate.ID(), catalog.LinkTerms{
		DefaultQuantity:       1,
		IsRequiredForDispatch: true,
	}); err != nil {
		return nil, err
	}
	if _, err = family.LinkAccessory(kernel.NewUUID(), gearbox.ID(), catalog.LinkTerms{
		DefaultQuantity:     1,
		IsVariable:          true,
		VariablePlaceholder: "Gearbox Model : ____",
	}); err != nil {
		return nil, err
	}
	if err = catalogrepo.NewGormMachineFamilyRepository(db, NopTracker{}).Add(ctx, family); err != nil {
		return nil, err
	}

	return &Catalog{
		Customer:    c,
		Sequence:    seq,
		Family:      family,
		Certificate: certificate,
		Gearbox:     gearbox,
	}, nil
}

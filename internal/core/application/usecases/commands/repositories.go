// Package commands contains the write operations of the order fulfillment core.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and mutate aggregates, persist them and commit. Any error before
// Commit rolls the whole transaction back.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	MachineFamilyRepoFactory interface {
		MachineFamilyRepository() ports.MachineFamilyRepository
	}

	AccessoryRepoFactory interface {
		AccessoryRepository() ports.AccessoryRepository
	}

	ProductionStepRepoFactory interface {
		ProductionStepRepository() ports.ProductionStepRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerUoW manages transactions for customer registry operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// CatalogUoW manages transactions for machine families and their
	// default accessory links. Accessories are needed to verify link targets.
	CatalogUoW interface {
		TxManager
		MachineFamilyRepoFactory
		AccessoryRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// InventoryUoW manages transactions for inventory accessories and their
	// stock ledger. Orders are consulted to verify movement references.
	InventoryUoW interface {
		TxManager
		AccessoryRepoFactory
		OrderRepoFactory
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// ProductionUoW manages transactions for the production step sequence.
	ProductionUoW interface {
		TxManager
		ProductionStepRepoFactory
	}

	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// OrderUoW manages transactions that modify a single order. The step
	// sequence is read to resolve production moves and accessory stock to
	// gate moves onto the dispatch step.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductionStepRepoFactory
		AccessoryRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans every repository. Used by commands that read catalog, stock
	// and customer data while changing an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   family, err := uow.MachineFamilyRepository().Get(ctx, familyID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		MachineFamilyRepoFactory
		AccessoryRepoFactory
		ProductionStepRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

package postgres

import (
	"context"
	"fmt"

	"orderflow/internal/adapters/out/postgres/catalogrepo"
	"orderflow/internal/adapters/out/postgres/customerrepo"
	"orderflow/internal/adapters/out/postgres/inventoryrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/productionrepo"

	"gorm.io/gorm"
)

// Models lists every table in dependency order: referenced tables first.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&catalogrepo.MachineFamilyDTO{},
		&catalogrepo.DefaultAccessoryDTO{},
		&inventoryrepo.AccessoryDTO{},
		&inventoryrepo.StockMovementDTO{},
		&productionrepo.ProductionStepDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.ItemAccessoryDTO{},
		&orderrepo.StatusChangeDTO{},
		&orderrepo.ProductionChangeDTO{},
		&orderrepo.AccessoryChangeDTO{},
	}
}

// TableNames lists the tables created by Migrate, children first.
func TableNames() []string {
	return []string{
		"accessory_status_history",
		"production_status_history",
		"order_status_history",
		"order_item_accessories",
		"order_line_items",
		"orders",
		"production_steps",
		"stock_movements",
		"accessories",
		"family_accessory_defaults",
		"machine_families",
		"customers",
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

package ports

import (
	"context"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
)

// AccessoryRepository persists inventory accessories and their stock ledger.
type AccessoryRepository interface {
	Add(ctx context.Context, a *inventory.Accessory) error

	// Update writes the accessory with an optimistic version check and appends
	// its pending stock movements. A stale version yields
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, a *inventory.Accessory) error

	Get(ctx context.Context, id kernel.UUID) (*inventory.Accessory, error)
	GetBySKU(ctx context.Context, sku string) (*inventory.Accessory, error)

	// GetMany returns the accessories found among ids. Unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Accessory, error)

	// Delete removes the accessory and its family default links. Accessories
	// used by order line items or present in the ledger are kept and
	// errs.ReferentialConflictError is returned.
	Delete(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
)

// MachineFamilyRepository persists machine families together with their
// default accessory links.
type MachineFamilyRepository interface {
	Add(ctx context.Context, family *catalog.MachineFamily) error

	// Update rewrites the family row and synchronizes the default links:
	// links missing from the aggregate are deleted, the rest are upserted.
	Update(ctx context.Context, family *catalog.MachineFamily) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.MachineFamily, error)
	GetByName(ctx context.Context, name string) (*catalog.MachineFamily, error)

	// Delete fails with errs.ReferentialConflictError while any line item
	// references the family.
	Delete(ctx context.Context, id kernel.UUID) error
}

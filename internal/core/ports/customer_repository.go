// Package ports defines the contracts between the order fulfillment core and
// its infrastructure: repositories per aggregate, the unit of work that binds
// them to one transaction, and the event publisher.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error

	// Get returns errs.ObjectNotFoundError when no customer has the id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer. A customer that still has orders is kept and
	// errs.ReferentialConflictError is returned.
	Delete(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such driver exists.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetAll retrieves the full driver roster ordered by id.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"pos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

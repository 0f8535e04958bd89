package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog, optionally filtered by a
// case-insensitive name substring (the register's search box).
type GetProductsQuery struct {
	nameFilter string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to load the catalog. An empty
// nameFilter returns every product.
func NewGetProductsQuery(nameFilter string) GetProductsQuery {
	return GetProductsQuery{
		nameFilter: nameFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// NameFilter returns the search substring. Empty means no filter.
func (q GetProductsQuery) NameFilter() string {
	return q.nameFilter
}

// GetProductsQueryResponse is one catalog row. The optional trade attribute
// pointers are nil when the attribute is not recorded.
type GetProductsQueryResponse struct {
	ID           string
	Name         string
	Price        int64
	Stock        int
	Category     string
	BatchNo      *string
	ExpiryDate   *time.Time
	Manufacturer *string
	Brand        *string
	PartNumber   *string
}

package product

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct constructors.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// Attributes holds the optional trade attributes a product may carry.
// Which ones are filled depends on the business category: pharmacies track
// batch numbers and expiry dates, auto spare parts shops track manufacturer,
// brand, and part number. All fields may be empty.
type Attributes struct {
	BatchNo      string
	ExpiryDate   *time.Time
	Manufacturer string
	Brand        string
	PartNumber   string
}

// Product is the aggregate root for a catalog entry.
//
// Product maintains these invariants:
//   - Must have a valid identifier and a non-empty name
//   - Stock never goes negative
type Product struct {
	id       uuid.UUID
	name     string
	price    kernel.Money
	stock    int
	category string
	attrs    Attributes

	guard guard.ConstructorGuard
}

// NewProduct creates a new catalog entry. Category is a free-form menu
// grouping and may be empty.
func NewProduct(
	id uuid.UUID,
	name string,
	price kernel.Money,
	stock int,
	category string,
	attrs Attributes,
) (*Product, error) {
	product := &Product{
		category: category,
		attrs:    attrs,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(
	id uuid.UUID,
	name string,
	price kernel.Money,
	stock int,
	category string,
	attrs Attributes,
) (*Product, error) {
	return NewProduct(id, name, price, stock, category, attrs)
}

// Validate ensures the Product instance was properly constructed.
// Returns ErrProductIsNotConstructed otherwise.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

// ID returns the product's unique identifier.
func (p *Product) ID() uuid.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the current stock level.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the product's menu grouping. May be empty.
func (p *Product) Category() string {
	return p.category
}

// Attrs returns the product's optional trade attributes.
func (p *Product) Attrs() Attributes {
	return p.attrs
}

// Update replaces the product's editable fields with the given values.
// Used when staff edit a catalog entry; the identifier never changes.
func (p *Product) Update(name string, price kernel.Money, stock int, category string, attrs Attributes) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return err
	}

	p.category = category
	p.attrs = attrs
	return nil
}

func (p *Product) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

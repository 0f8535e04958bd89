package commands

import (
	"errors"

	"github.com/google/uuid"

	"pos/internal/core/domain/model/product"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrSaveProductCommandIsNotConstructed = errors.New(
	"SaveProductCommand must be created via NewSaveProductCommand constructor",
)

// SaveProductCommand represents a request to create or edit a catalog
// product. The same command serves both: the handler updates the product
// when the id already exists and creates it otherwise.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	productID uuid.UUID
	name      string
	price     int64
	stock     int
	category  string
	attrs     product.Attributes

	guard guard.ConstructorGuard
}

// NewSaveProductCommand creates a command to save a catalog product.
// Deep validation of price and stock happens in the Product aggregate.
func NewSaveProductCommand(
	productID uuid.UUID,
	name string,
	price int64,
	stock int,
	category string,
	attrs product.Attributes,
) (SaveProductCommand, error) {
	productCommand := SaveProductCommand{
		price:    price,
		stock:    stock,
		category: category,
		attrs:    attrs,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
	); err != nil {
		return SaveProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveProductCommandIsNotConstructed if validation fails.
func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

// ProductID returns the product's identifier.
func (c SaveProductCommand) ProductID() uuid.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c SaveProductCommand) Name() string {
	return c.name
}

// Price returns the unit price in minor currency units.
func (c SaveProductCommand) Price() int64 {
	return c.price
}

// Stock returns the stock level.
func (c SaveProductCommand) Stock() int {
	return c.stock
}

// Category returns the product's menu grouping. May be empty.
func (c SaveProductCommand) Category() string {
	return c.category
}

// Attrs returns the optional trade attributes.
func (c SaveProductCommand) Attrs() product.Attributes {
	return c.attrs
}

func (c *SaveProductCommand) setProductID(productID uuid.UUID) error {
	if productID == uuid.Nil {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *SaveProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

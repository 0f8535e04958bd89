package order

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Item is a line in an order's cart: a product reference with the unit price
// captured at checkout time and the purchased quantity. Items are value
// objects; the price on the line is the price the customer paid even if the
// catalog price changes later.
type Item struct {
	productID string
	name      string
	price     kernel.Money
	quantity  int

	isConstructed bool
}

// NewItem creates a validated order line.
//
// Parameters:
//   - productID: catalog identifier of the purchased product
//   - name: product name as shown on the receipt
//   - price: unit price captured at checkout
//   - quantity: number of units (must be positive)
func NewItem(productID string, name string, price kernel.Money, quantity int) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errors.New("Item must be created via NewItem constructor")
	}
	return nil
}

// ProductID returns the catalog identifier of the purchased product.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name as captured at checkout.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at checkout.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the number of units purchased.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() kernel.Money {
	// quantity was validated positive at construction, Multiply cannot fail.
	subtotal, _ := i.price.Multiply(i.quantity)
	return subtotal
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

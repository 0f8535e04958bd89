package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCheckoutCartIsEmpty = errors.New("checkout requires at least one item")
)

// CheckoutItem is one cart line as captured at the register: the product,
// its name and unit price at the time of sale, and the quantity.
type CheckoutItem struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int
}

// CheckoutCommand represents a request to place an order from the current
// cart. The order id is generated by the caller so it can be handed back to
// the customer immediately.
//
// Example:
//
//	orderID := kernel.NewID()
//	cmd, err := NewCheckoutCommand(orderID, order.Delivery, "Sara", "0300-1234567",
//	    "12 Main St", items, "Cash")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.ID
	orderType     order.Type
	customerName  string
	customerPhone string
	address       string
	items         []CheckoutItem
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order. Validates that the
// order id and type are valid and the cart is not empty; the contact-detail
// rules for delivery orders are enforced by the Order aggregate itself.
func NewCheckoutCommand(
	orderID kernel.ID,
	orderType order.Type,
	customerName string,
	customerPhone string,
	address string,
	items []CheckoutItem,
	paymentMethod string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		customerName:  customerName,
		customerPhone: customerPhone,
		address:       address,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setOrderType(orderType),
		checkoutCommand.setItems(items),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier chosen for the new order.
func (c CheckoutCommand) OrderID() kernel.ID {
	return c.orderID
}

// OrderType returns how the order will be fulfilled.
func (c CheckoutCommand) OrderType() order.Type {
	return c.orderType
}

// CustomerName returns the customer's name. May be empty for walk-ins.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c CheckoutCommand) CustomerPhone() string {
	return c.customerPhone
}

// Address returns the delivery address.
func (c CheckoutCommand) Address() string {
	return c.address
}

// Items returns the cart lines.
func (c CheckoutCommand) Items() []CheckoutItem {
	return c.items
}

// PaymentMethod returns how the customer paid. May be empty.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CheckoutCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CheckoutCommand) setItems(items []CheckoutItem) error {
	if len(items) == 0 {
		return ErrCheckoutCartIsEmpty
	}

	c.items = items
	return nil
}

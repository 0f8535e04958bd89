package order

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCartIsEmpty is returned when checkout is attempted with no line items.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("items")

	// ErrPhoneIsRequired is returned when a delivery order is created without
	// a customer phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")

	// ErrAddressIsRequired is returned when a delivery order is created without
	// a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrNotDeliveryOrder is returned when a driver is assigned to an order
	// that is not fulfilled by delivery.
	ErrNotDeliveryOrder = errs.NewValueIsInvalidError("only delivery orders can have a driver")
)

// walkInCustomerName is used when checkout does not capture a customer name.
const walkInCustomerName = "Walk-in"

// defaultPaymentMethod is recorded when checkout does not capture one.
const defaultPaymentMethod = "Cash"

// Order is the aggregate root for a customer transaction. It is created at
// checkout with a snapshot of the cart, starts in Pending status, and moves
// through the lifecycle as staff update it from the kitchen and delivery
// boards.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid order type
//   - Must have at least one line item
//   - Delivery orders must have a customer phone and address
//   - The total is computed from the line items at creation and never changes
//   - Only delivery orders may carry a driver reference
type Order struct {
	id            kernel.ID
	orderType     Type
	customerName  string
	customerPhone string
	address       string
	items         []Item
	total         kernel.Money
	status        Status
	driverID      *kernel.ID
	paymentMethod string
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order from a checkout. The order starts in Pending
// status with no driver assigned, and its total is computed as the sum of the
// line item subtotals.
//
// An empty customerName is recorded as "Walk-in" and an empty paymentMethod
// as "Cash". For delivery orders customerPhone and address are required.
func NewOrder(
	id kernel.ID,
	orderType Type,
	customerName string,
	customerPhone string,
	address string,
	items []Item,
	paymentMethod string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setItems(items),
		order.setCustomer(orderType, customerName, customerPhone, address),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	order.total = computeTotal(order.items)
	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// status, driver assignment, and the total as it was recorded at checkout.
// The total is restored as stored rather than recomputed so that a persisted
// receipt never changes.
func RestoreOrder(
	id kernel.ID,
	orderType Type,
	customerName string,
	customerPhone string,
	address string,
	items []Item,
	total kernel.Money,
	status Status,
	driverID *kernel.ID,
	paymentMethod string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setItems(items),
		order.setCustomer(orderType, customerName, customerPhone, address),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
		order.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	order.total = total
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Type returns how the order is fulfilled.
func (o *Order) Type() Type {
	return o.orderType
}

// CustomerName returns the customer's name, or "Walk-in" when none was given.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number. Empty for non-delivery
// orders placed without one.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Address returns the delivery address. Empty for non-delivery orders.
func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total as computed at checkout.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID, or nil if no driver is assigned.
func (o *Order) Driver() *kernel.ID {
	return o.driverID
}

// PaymentMethod returns how the customer paid.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignDriver records the driver handling this order. Only delivery orders
// may have a driver; the order's status is not changed by assignment.
func (o *Order) AssignDriver(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.orderType != Delivery {
		return ErrNotDeliveryOrder
	}

	o.driverID = &driverID
	return nil
}

// ChangeStatus sets the order's status to the given value. Any valid status
// may be set from any other valid status; staff use this to correct mistakes
// on the boards, so no transition rules are enforced here.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func computeTotal(items []Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCustomer(orderType Type, name string, phone string, address string) error {
	if orderType == Delivery {
		if phone == "" {
			return ErrPhoneIsRequired
		}
		if address == "" {
			return ErrAddressIsRequired
		}
	}
	if name == "" {
		name = walkInCustomerName
	}

	o.customerName = name
	o.customerPhone = phone
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDriverID(driverID *kernel.ID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.orderType != Delivery {
		return ErrNotDeliveryOrder
	}
	o.driverID = driverID
	return nil
}

package driver

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through the NewDriver or RestoreDriver constructors.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// Driver is the aggregate root for a delivery driver. It tracks the driver's
// availability and how many orders they currently have in flight.
//
// Driver maintains these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - activeOrders never goes below zero; releasing an order from a driver
//     with no active orders is a no-op rather than an error, so repeated
//     delivery confirmations stay harmless
type Driver struct {
	id             kernel.ID
	name           string
	status         Status
	activeOrders   int
	lastAssignedAt *time.Time

	guard guard.ConstructorGuard
}

// NewDriver registers a new driver. Drivers start Available with no active
// orders.
func NewDriver(id kernel.ID, name string) (*Driver, error) {
	driver := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.ID,
	name string,
	status Status,
	activeOrders int,
	lastAssignedAt *time.Time,
) (*Driver, error) {
	driver := &Driver{
		lastAssignedAt: lastAssignedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setStatus(status),
		driver.setActiveOrders(activeOrders),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
// Returns ErrDriverIsNotConstructed otherwise.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.ID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// ActiveOrders returns how many orders the driver currently has in flight.
func (d *Driver) ActiveOrders() int {
	return d.activeOrders
}

// LastAssignedAt returns when the driver last received an assignment, or nil
// if they never have.
func (d *Driver) LastAssignedAt() *time.Time {
	return d.lastAssignedAt
}

// IsAvailable reports whether the driver can receive new assignments.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// RecordAssignment increments the driver's active order count and stamps the
// assignment time. Assignment does not change the driver's status; a driver
// with orders in flight keeps taking new ones while marked Available.
func (d *Driver) RecordAssignment(at time.Time) {
	d.activeOrders++
	d.lastAssignedAt = &at
}

// ReleaseOrder decrements the driver's active order count when one of their
// orders is delivered. The count is clamped at zero so a repeated delivery
// confirmation for the same order cannot drive it negative.
func (d *Driver) ReleaseOrder() {
	if d.activeOrders > 0 {
		d.activeOrders--
	}
}

// ChangeStatus sets the driver's availability status.
func (d *Driver) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setActiveOrders(activeOrders int) error {
	if activeOrders < 0 {
		return errs.NewValueIsInvalidErrorWithCause("activeOrders is invalid",
			fmt.Errorf("%d is negative", activeOrders))
	}
	d.activeOrders = activeOrders
	return nil
}

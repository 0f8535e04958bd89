package services

import (
	"errors"

	"pos/internal/core/domain/model/driver"
)

// ErrNoDriverAvailable is returned when no driver can take a delivery order.
// This is a recognized outcome, not a fault: the caller persists the order
// unassigned and a later pass retries the assignment.
var ErrNoDriverAvailable = errors.New("no driver available")

// DriverAssignment is a domain service that selects the driver for a new
// delivery order.
//
// Selection rules:
//   - Only drivers with Available status are considered
//   - Among those, the one with the fewest active orders wins
//   - Workload ties break by ascending lexicographic driver id
//
// The selection is deterministic and side-effect-free: the caller records
// the assignment on the chosen driver and on the order.
type DriverAssignment struct{}

// NewDriverAssignment creates a new DriverAssignment instance.
func NewDriverAssignment() DriverAssignment {
	return DriverAssignment{}
}

// PickDriver returns the least-loaded available driver from the given slice.
//
// Returns ErrNoDriverAvailable when the slice is empty or holds no Available
// drivers. The input is not modified and no driver state is changed; two
// calls over the same drivers return the same result.
func (d DriverAssignment) PickDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	var best *driver.Driver

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() {
			continue
		}

		if best == nil || less(candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrNoDriverAvailable
	}

	return best, nil
}

// less reports whether a ranks before b: fewer active orders first, then
// lexicographically smaller id.
func less(a, b *driver.Driver) bool {
	if a.ActiveOrders() != b.ActiveOrders() {
		return a.ActiveOrders() < b.ActiveOrders()
	}
	return a.ID().Less(b.ID())
}

// Package order contains the Order aggregate: a single customer transaction
// with line items, an order type, an immutable total, and a lifecycle status.
// Delivery orders may carry a weak reference to the driver handling them.
package order

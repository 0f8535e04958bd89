// Package kernel contains shared value objects used across the domain model:
// identifiers for orders and drivers, and monetary amounts. Value objects are
// immutable and validate themselves on construction.
package kernel

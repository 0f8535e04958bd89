// Package driver contains the Driver aggregate: a delivery driver with an
// availability status and a running count of orders currently on their hands.
// The workload counter feeds the assignment engine, which always picks the
// least-loaded available driver.
package driver

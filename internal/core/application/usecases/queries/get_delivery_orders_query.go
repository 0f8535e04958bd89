// Package queries contains read-side operations over the store's data.
// Handlers query the database directly with SQL, bypassing the aggregates,
// as reads never mutate state.
package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
)

// GetDeliveryOrdersQuery retrieves the delivery board: every delivery-type
// order, most recent first, with its driver or UNASSIGNED.
//
// Example:
//
//	query := NewGetDeliveryOrdersQuery()
//	handler := NewGetDeliveryOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load delivery board: %w", err)
//	}
type GetDeliveryOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersQuery creates a query to load the delivery board.
// This is a parameterless query.
func NewGetDeliveryOrdersQuery() GetDeliveryOrdersQuery {
	return GetDeliveryOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryOrdersQueryIsNotConstructed if validation fails.
func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}

// GetDeliveryOrdersQueryResponse is one row of the delivery board.
// DriverID and DriverName are nil for unassigned orders.
type GetDeliveryOrdersQueryResponse struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Address       string
	Total         int64
	Status        string
	DriverID      *string
	DriverName    *string
	CreatedAt     time.Time
}

package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
)

// GetKitchenOrdersQuery retrieves the kitchen board: orders still being
// worked on (Pending, Preparing, Ready) with their line items, most recent
// first.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query to load the kitchen board.
// This is a parameterless query.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenOrdersQueryIsNotConstructed if validation fails.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}

// GetKitchenOrdersQueryItem is one line item on a kitchen ticket.
type GetKitchenOrdersQueryItem struct {
	Name     string
	Quantity int
}

// GetKitchenOrdersQueryResponse is one ticket on the kitchen board.
type GetKitchenOrdersQueryResponse struct {
	ID        string
	Type      string
	Status    string
	Items     []GetKitchenOrdersQueryItem
	CreatedAt time.Time
}

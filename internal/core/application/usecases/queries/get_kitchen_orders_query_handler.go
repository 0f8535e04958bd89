package queries

import (
	"context"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetKitchenOrdersQueryHandler loads the kitchen board from the database.
// Tickets carry their line items so the kitchen sees what to prepare without
// another round trip.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen board
// queries. Requires a GORM database connection for query execution.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query to load the kitchen board.
// Returns orders in Pending, Preparing, or Ready status, most recent first,
// each with its line items.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]GetKitchenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets, err := h.loadTickets(ctx)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return tickets, nil
	}

	if err = h.loadItems(ctx, tickets); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (h GetKitchenOrdersQueryHandler) loadTickets(ctx context.Context) ([]GetKitchenOrdersQueryResponse, error) {
	tickets := make([]GetKitchenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			created_at
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at DESC
	`, order.Pending, order.Preparing, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetKitchenOrdersQueryResponse
		var orderType, status int

		if err = rows.Scan(&resp.ID, &orderType, &status, &resp.CreatedAt); err != nil {
			return nil, err
		}

		resp.Type = order.Type(orderType).String()
		resp.Status = order.Status(status).String()
		resp.Items = make([]GetKitchenOrdersQueryItem, 0)
		tickets = append(tickets, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (h GetKitchenOrdersQueryHandler) loadItems(ctx context.Context, tickets []GetKitchenOrdersQueryResponse) error {
	byID := make(map[string]int, len(tickets))
	ids := make([]string, 0, len(tickets))
	for i, ticket := range tickets {
		byID[ticket.ID] = i
		ids = append(ids, ticket.ID)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			quantity
		FROM order_items
		WHERE order_id IN (?)
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item GetKitchenOrdersQueryItem

		if err = rows.Scan(&orderID, &item.Name, &item.Quantity); err != nil {
			return err
		}

		if i, ok := byID[orderID]; ok {
			tickets[i].Items = append(tickets[i].Items, item)
		}
	}

	return rows.Err()
}

package queries

import (
	"context"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetDeliveryOrdersQueryHandler loads the delivery board from the database.
// Joins the driver roster so the board can show driver names directly.
type GetDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrdersQueryHandler creates a handler for delivery board
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveryOrdersQueryHandler(db *gorm.DB) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{db: db}
}

// Handle executes the query to load the delivery board.
// Returns delivery-type orders most recent first.
func (h GetDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrdersQuery,
) ([]GetDeliveryOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDeliveryOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_name,
			o.customer_phone,
			o.address,
			o.total,
			o.status,
			o.driver_id,
			d.name,
			o.created_at
		FROM orders o
		LEFT JOIN drivers d ON d.id = o.driver_id
		WHERE o.order_type = ?
		ORDER BY o.created_at DESC
	`, order.Delivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryOrdersQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Address,
			&resp.Total,
			&status,
			&resp.DriverID,
			&resp.DriverName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

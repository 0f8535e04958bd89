package queries

import (
	"context"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetSalesReportQueryHandler computes the sales summary in the database and
// derives the ratios in memory.
type GetSalesReportQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesReportQueryHandler creates a handler for sales report queries.
// Requires a GORM database connection for query execution.
func NewGetSalesReportQueryHandler(db *gorm.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

// Handle executes the query to compute the sales report.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	var resp GetSalesReportQueryResponse
	var deliveryCount int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE order_type = ?)
		FROM orders
	`, order.Delivery).Row()

	if err := row.Scan(&resp.TotalSales, &resp.OrderCount, &deliveryCount); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	if resp.OrderCount > 0 {
		resp.AverageOrderValue = float64(resp.TotalSales) / float64(resp.OrderCount)
		resp.DeliverySharePercent = float64(deliveryCount) / float64(resp.OrderCount) * 100
	}

	return resp, nil
}

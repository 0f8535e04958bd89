package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery computes the sales summary shown on the reports
// screen. All orders count as sales; orders are never deleted, so the report
// covers the full history.
type GetSalesReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a query to compute the sales report.
// This is a parameterless query.
func NewGetSalesReportQuery() GetSalesReportQuery {
	return GetSalesReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSalesReportQueryIsNotConstructed if validation fails.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// GetSalesReportQueryResponse is the sales summary.
// AverageOrderValue and DeliverySharePercent are zero when there are no
// orders yet.
type GetSalesReportQueryResponse struct {
	TotalSales           int64
	OrderCount           int
	AverageOrderValue    float64
	DeliverySharePercent float64
}

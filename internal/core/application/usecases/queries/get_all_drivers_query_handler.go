package queries

import (
	"context"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/driver"
)

// GetAllDriversQueryHandler retrieves the driver roster from the database.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers, sorted by id.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status,
			active_orders,
			last_assigned_at
		FROM drivers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDriversQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&status,
			&resp.ActiveOrders,
			&resp.LastAssignedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = driver.Status(status).String()
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

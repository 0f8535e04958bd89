package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves catalog products from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve catalog products sorted by name.
// A non-empty name filter matches case-insensitively anywhere in the name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock,
			category,
			batch_no,
			expiry_date,
			manufacturer,
			brand,
			part_number
		FROM products
		WHERE ? = '' OR name ILIKE '%' || ? || '%'
		ORDER BY name
	`, query.NameFilter(), query.NameFilter()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProductsQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Price,
			&resp.Stock,
			&resp.Category,
			&resp.BatchNo,
			&resp.ExpiryDate,
			&resp.Manufacturer,
			&resp.Brand,
			&resp.PartNumber,
		)
		if err != nil {
			return nil, err
		}

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/settings"
)

// GetCompanySettingsQueryHandler retrieves the company profile from the
// database. A missing row is not an error: it means the setup wizard never
// ran, and the response says so.
type GetCompanySettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanySettingsQueryHandler creates a handler for company profile
// queries. Requires a GORM database connection for query execution.
func NewGetCompanySettingsQueryHandler(db *gorm.DB) GetCompanySettingsQueryHandler {
	return GetCompanySettingsQueryHandler{db: db}
}

// Handle executes the query to load the company profile.
func (h GetCompanySettingsQueryHandler) Handle(
	ctx context.Context,
	query GetCompanySettingsQuery,
) (GetCompanySettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanySettingsQueryResponse{}, err
	}

	var resp GetCompanySettingsQueryResponse
	var category int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			company_name,
			admin_name,
			category,
			setup_complete
		FROM company_settings
		LIMIT 1
	`).Row()

	err := row.Scan(&resp.CompanyName, &resp.AdminName, &category, &resp.SetupComplete)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCompanySettingsQueryResponse{}, nil
	}
	if err != nil {
		return GetCompanySettingsQueryResponse{}, err
	}

	resp.Category = settings.Category(category).String()
	resp.SupportsDelivery = settings.Category(category).SupportsDelivery()

	return resp, nil
}

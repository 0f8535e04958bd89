package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrGetCompanySettingsQueryIsNotConstructed = errors.New(
	"GetCompanySettingsQuery must be created via NewGetCompanySettingsQuery constructor",
)

// GetCompanySettingsQuery retrieves the company profile, used by the
// frontend to decide whether to show the setup wizard and which boards to
// enable.
type GetCompanySettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCompanySettingsQuery creates a query to load the company profile.
// This is a parameterless query.
func NewGetCompanySettingsQuery() GetCompanySettingsQuery {
	return GetCompanySettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCompanySettingsQueryIsNotConstructed if validation fails.
func (q GetCompanySettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanySettingsQueryIsNotConstructed)
}

// GetCompanySettingsQueryResponse is the company profile. SetupComplete is
// false when the wizard has never run; the other fields are empty then.
type GetCompanySettingsQueryResponse struct {
	CompanyName      string
	AdminName        string
	Category         string
	SupportsDelivery bool
	SetupComplete    bool
}

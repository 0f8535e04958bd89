package ports

import (
	"context"

	"pos/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the single company
// profile.
type SettingsRepository interface {
	// Save persists the company profile, replacing any previous one.
	Save(ctx context.Context, aggregate *settings.CompanySettings) error

	// Get retrieves the company profile.
	// Returns an errs.ObjectNotFoundError when setup has never completed.
	Get(ctx context.Context) (*settings.CompanySettings, error)
}

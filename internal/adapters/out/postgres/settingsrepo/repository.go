package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pos/internal/core/domain/model/settings"
	"pos/internal/pkg/errs"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB, tracker aggregateTracker) *GormSettingsRepository {
	return &GormSettingsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save stores the company profile, replacing any existing one. Re-running the
// setup wizard overwrites the previous profile.
func (r *GormSettingsRepository) Save(ctx context.Context, aggregate *settings.CompanySettings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.CompanyName(), aggregate)
	return nil
}

// Get retrieves the company profile. Returns an ObjectNotFoundError when the
// setup wizard has never run.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.CompanySettings, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company settings", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}

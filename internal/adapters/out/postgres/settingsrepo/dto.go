// Package settingsrepo provides data transfer objects and mapping functions
// for the company profile. The profile is a singleton: it always lives in the
// row with ID 1.
package settingsrepo

import (
	"pos/internal/core/domain/model/settings"
)

// singletonID is the fixed primary key of the only company_settings row.
const singletonID = 1

// SettingsDTO represents the database structure for persisting the company
// profile.
type SettingsDTO struct {
	ID            int    `gorm:"primaryKey"`
	CompanyName   string `gorm:"type:varchar(255)"`
	AdminName     string `gorm:"type:varchar(255)"`
	Category      int    `gorm:"not null"`
	SetupComplete bool   `gorm:"not null"`
}

// TableName specifies the database table name for the company profile.
func (SettingsDTO) TableName() string {
	return "company_settings"
}

// fromDomain converts the company profile aggregate to its database
// representation.
func fromDomain(aggregate *settings.CompanySettings) SettingsDTO {
	return SettingsDTO{
		ID:            singletonID,
		CompanyName:   aggregate.CompanyName(),
		AdminName:     aggregate.AdminName(),
		Category:      int(aggregate.Category()),
		SetupComplete: aggregate.IsSetupComplete(),
	}
}

// toDomain converts a database DTO to the company profile aggregate.
func toDomain(dto SettingsDTO) (*settings.CompanySettings, error) {
	return settings.RestoreCompanySettings(
		dto.CompanyName,
		dto.AdminName,
		settings.Category(dto.Category),
		dto.SetupComplete,
	)
}

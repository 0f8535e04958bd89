// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver
// aggregates.
type DriverDTO struct {
	ID             string `gorm:"type:varchar(16);primaryKey"`
	Name           string `gorm:"type:varchar(255)"`
	Status         int    `gorm:"index"`
	ActiveOrders   int    `gorm:"not null"`
	LastAssignedAt *time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database
// representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:             aggregate.ID().String(),
		Name:           aggregate.Name(),
		Status:         int(aggregate.Status()),
		ActiveOrders:   aggregate.ActiveOrders(),
		LastAssignedAt: aggregate.LastAssignedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		driver.Status(dto.Status),
		dto.ActiveOrders,
		dto.LastAssignedAt,
	)
}

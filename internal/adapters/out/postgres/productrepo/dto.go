// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence. Optional trade attributes persist as nullable
// columns; an empty attribute maps to NULL rather than an empty string.
package productrepo

import (
	"time"

	"github.com/google/uuid"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);index"`
	Price        int64     `gorm:"not null"`
	Stock        int       `gorm:"not null"`
	Category     string    `gorm:"type:varchar(255)"`
	BatchNo      *string   `gorm:"type:varchar(64)"`
	ExpiryDate   *time.Time
	Manufacturer *string `gorm:"type:varchar(255)"`
	Brand        *string `gorm:"type:varchar(255)"`
	PartNumber   *string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	attrs := aggregate.Attrs()

	return ProductDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price().Amount(),
		Stock:        aggregate.Stock(),
		Category:     aggregate.Category(),
		BatchNo:      nullable(attrs.BatchNo),
		ExpiryDate:   attrs.ExpiryDate,
		Manufacturer: nullable(attrs.Manufacturer),
		Brand:        nullable(attrs.Brand),
		PartNumber:   nullable(attrs.PartNumber),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	attrs := product.Attributes{
		BatchNo:      orEmpty(dto.BatchNo),
		ExpiryDate:   dto.ExpiryDate,
		Manufacturer: orEmpty(dto.Manufacturer),
		Brand:        orEmpty(dto.Brand),
		PartNumber:   orEmpty(dto.PartNumber),
	}

	return product.RestoreProduct(dto.ID, dto.Name, price, dto.Stock, dto.Category, attrs)
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

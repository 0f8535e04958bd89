// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders persist as a parent row plus one row per line
// item; the line items are a snapshot taken at checkout and never change.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            string  `gorm:"type:varchar(16);primaryKey"`
	CustomerName  string  `gorm:"type:varchar(255)"`
	CustomerPhone string  `gorm:"type:varchar(64)"`
	Address       string  `gorm:"type:varchar(512)"`
	Total         int64   `gorm:"not null"`
	Status        int     `gorm:"index"`
	OrderType     int     `gorm:"index"`
	DriverID      *string `gorm:"type:varchar(16);index"`
	PaymentMethod string  `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item of an order.
type OrderItemDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   string `gorm:"type:varchar(16);index"`
	ProductID string `gorm:"type:varchar(64)"`
	Name      string `gorm:"type:varchar(255)"`
	Price     int64  `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including the line item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *string
	if id := aggregate.Driver(); id != nil {
		raw := id.String()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().String(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price().Amount(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		Address:       aggregate.Address(),
		Total:         aggregate.Total().Amount(),
		Status:        int(aggregate.Status()),
		OrderType:     int(aggregate.Type()),
		DriverID:      driverID,
		PaymentMethod: aggregate.PaymentMethod(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, preserving the stored total.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.ID
	if dto.DriverID != nil {
		dID, driverErr := kernel.IDFromString(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Name, price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.OrderType),
		dto.CustomerName,
		dto.CustomerPhone,
		dto.Address,
		items,
		total,
		order.Status(dto.Status),
		driverID,
		dto.PaymentMethod,
		dto.CreatedAt,
	)
}

package ports

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// NotificationPublisher pushes order events to interested consumers (kitchen
// displays, driver apps). Publishing is fire-and-forget: handlers log
// publish failures but never fail the mutation that triggered them.
type NotificationPublisher interface {
	// PublishOrderStatusChanged announces that an order reached a new status.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error

	// PublishDriverAssigned announces that a driver was assigned to an order.
	PublishDriverAssigned(ctx context.Context, aggregate *order.Order) error

	// Close releases the underlying connection.
	Close() error
}

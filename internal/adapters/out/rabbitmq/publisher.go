// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
// Kitchen displays and driver apps bind their own queues to the exchange;
// this side only declares it and publishes.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"pos/internal/core/domain/model/order"
)

const exchangeName = "pos.orders"

const (
	statusChangedKey  = "order.status_changed"
	driverAssignedKey = "order.driver_assigned"
)

// Publisher implements NotificationPublisher over an AMQP connection.
// Messages are persistent JSON; delivery to consumers is best-effort and the
// callers treat publish failures as non-fatal.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// orderEvent is the wire format of a published order event.
type orderEvent struct {
	OrderID      string    `json:"order_id"`
	OrderType    string    `json:"order_type"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	DriverID     *string   `json:"driver_id,omitempty"`
	Total        int64     `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewPublisher connects to RabbitMQ and declares the order events exchange.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

// PublishOrderStatusChanged announces that an order reached a new status.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, statusChangedKey, aggregate)
}

// PublishDriverAssigned announces that a driver was assigned to an order.
func (p *Publisher) PublishDriverAssigned(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, driverAssignedKey, aggregate)
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func (p *Publisher) publish(ctx context.Context, routingKey string, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderEvent{
		OrderID:      aggregate.ID().String(),
		OrderType:    aggregate.Type().String(),
		Status:       aggregate.Status().String(),
		CustomerName: aggregate.CustomerName(),
		Total:        aggregate.Total().Amount(),
		OccurredAt:   time.Now().UTC(),
	}
	if driverID := aggregate.Driver(); driverID != nil {
		raw := driverID.String()
		event.DriverID = &raw
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return nil
}

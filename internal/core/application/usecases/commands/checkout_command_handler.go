package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CheckoutCommandHandler handles the business logic of placing an order.
// Builds the order from the cart snapshot and, for delivery orders in a
// delivery-capable business, dispatches a driver in the same transaction.
//
// A failed dispatch because no driver is available is not an error: the
// order is stored unassigned and the dispatch retry job picks it up later.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	assignment services.DriverAssignment
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// The publisher may be nil when the installation runs without a broker.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		assignment: services.NewDriverAssignment(),
		logger:     logger,
	}
}

// Handle processes the checkout command.
// Creates the order in Pending status, attempts driver dispatch for delivery
// orders, and commits order and driver changes atomically. After a successful
// commit a driver-assigned notification is published fire-and-forget.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	items, err := buildItems(command.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.OrderType(),
		command.CustomerName(),
		command.CustomerPhone(),
		command.Address(),
		items,
		command.PaymentMethod(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assigned, err := h.dispatchDriver(ctx, uow, newOrder)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if assigned && h.publisher != nil {
		if err := h.publisher.PublishDriverAssigned(ctx, newOrder); err != nil {
			h.logger.Warn("driver assigned notification failed",
				"order_id", newOrder.ID().String(), "error", err)
		}
	}

	return nil
}

// dispatchDriver runs the assignment engine for delivery orders when the
// business category supports the delivery workflow. Reports whether a driver
// was assigned; no driver available is reported as false without error.
func (h CheckoutCommandHandler) dispatchDriver(ctx context.Context, uow UoW, newOrder *order.Order) (bool, error) {
	if newOrder.Type() != order.Delivery {
		return false, nil
	}

	companySettings, err := uow.SettingsRepository().Get(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		// Setup never completed; run counter sales only.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !companySettings.SupportsDelivery() {
		return false, nil
	}

	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return false, err
	}

	picked, err := h.assignment.PickDriver(drivers)
	if errors.Is(err, services.ErrNoDriverAvailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = newOrder.AssignDriver(picked.ID()); err != nil {
		return false, err
	}
	picked.RecordAssignment(time.Now())

	if err = uow.DriverRepository().Update(ctx, picked); err != nil {
		return false, err
	}

	return true, nil
}

func buildItems(checkoutItems []CheckoutItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(checkoutItems))
	for _, line := range checkoutItems {
		price, err := kernel.NewMoney(line.Price)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(line.ProductID, line.Name, price, line.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}

package commands

import (
	"context"
	"errors"
	"log/slog"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order lifecycle updates from the
// kitchen and delivery boards.
//
// Two behaviors worth noting:
//   - An unknown order id is a silent no-op. Boards can race a concurrent
//     cleanup, and a click on a stale card must not surface an error.
//   - Setting Delivered on an order with an assigned driver releases that
//     driver: their active order count drops by one, clamped at zero, so a
//     double click on Delivered stays harmless.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderDriverUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// The publisher may be nil when the installation runs without a broker.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderDriverUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status update command.
// Sets the status unconditionally, releases the driver on Delivered, and
// commits both changes atomically. After a successful commit a status-changed
// notification is published fire-and-forget.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	updatedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Debug("status update for unknown order ignored",
			"order_id", command.OrderID().String())
		return nil
	}
	if err != nil {
		return err
	}

	if err = updatedOrder.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if command.Status() == order.Delivered && updatedOrder.Driver() != nil {
		if err = h.releaseDriver(ctx, uow, updatedOrder); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, updatedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderStatusChanged(ctx, updatedOrder); err != nil {
			h.logger.Warn("status changed notification failed",
				"order_id", updatedOrder.ID().String(), "error", err)
		}
	}

	return nil
}

func (h UpdateOrderStatusCommandHandler) releaseDriver(ctx context.Context, uow OrderDriverUoW, updatedOrder *order.Order) error {
	driverRepo := uow.DriverRepository()

	assignedDriver, err := driverRepo.Get(ctx, *updatedOrder.Driver())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The driver reference is weak; a removed driver does not block
		// delivery confirmation.
		h.logger.Warn("delivered order references unknown driver",
			"order_id", updatedOrder.ID().String(),
			"driver_id", updatedOrder.Driver().String())
		return nil
	}
	if err != nil {
		return err
	}

	assignedDriver.ReleaseOrder()

	return driverRepo.Update(ctx, assignedDriver)
}

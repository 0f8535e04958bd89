package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

var (
	// ErrNoUnassignedOrderFound is returned when every pending delivery order
	// already has a driver. Expected on most retry ticks.
	ErrNoUnassignedOrderFound = errors.New("no unassigned order found")

	// ErrNoFreeDriversFound is returned when an unassigned order exists but
	// the roster has no available driver for it.
	ErrNoFreeDriversFound = errors.New("no free drivers found")
)

// AssignPendingOrderCommandHandler retries driver dispatch for orders that
// were placed while no driver was available. Updates the order and the chosen
// driver within a single transaction.
type AssignPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	assignment services.DriverAssignment
	logger     *slog.Logger
}

// NewAssignPendingOrderCommandHandler creates a handler for dispatch retries.
// The publisher may be nil when the installation runs without a broker.
func NewAssignPendingOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) AssignPendingOrderCommandHandler {
	return AssignPendingOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		assignment: services.NewDriverAssignment(),
		logger:     logger,
	}
}

// Handle processes the dispatch retry command.
// Retrieves the oldest unassigned pending delivery order, picks the
// least-loaded available driver, and records the assignment on both sides.
// Returns ErrNoUnassignedOrderFound or ErrNoFreeDriversFound when there is
// nothing to do.
func (h AssignPendingOrderCommandHandler) Handle(ctx context.Context, command AssignPendingOrderCommand) error {
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
	driverRepo := uow.DriverRepository()

	pendingOrder, err := orderRepo.GetFirstUnassignedDelivery(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoUnassignedOrderFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	picked, err := h.assignment.PickDriver(drivers)
	if errors.Is(err, services.ErrNoDriverAvailable) {
		return ErrNoFreeDriversFound
	}
	if err != nil {
		return err
	}

	if err = pendingOrder.AssignDriver(picked.ID()); err != nil {
		return err
	}
	picked.RecordAssignment(time.Now())

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, picked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishDriverAssigned(ctx, pendingOrder); err != nil {
			h.logger.Warn("driver assigned notification failed",
				"order_id", pendingOrder.ID().String(), "error", err)
		}
	}

	return nil
}

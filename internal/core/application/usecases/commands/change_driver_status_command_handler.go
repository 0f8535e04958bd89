package commands

import (
	"context"
)

// ChangeDriverStatusCommandHandler handles manual driver availability
// changes. Unlike order status updates, an unknown driver id is an error
// here: the roster screen always works from a fresh driver list.
type ChangeDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverStatusCommandHandler creates a handler for driver status
// changes.
func NewChangeDriverStatusCommandHandler(uowFactory DriverUoWFactory) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver status change command.
func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, command ChangeDriverStatusCommand) error {
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

	driverRepo := uow.DriverRepository()

	updatedDriver, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = updatedDriver.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, updatedDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

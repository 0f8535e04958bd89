package commands

import (
	"errors"

	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand represents a staff request to change a driver's
// availability. Status is managed by hand; assignments never change it.
type ChangeDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID
	status   driver.Status

	guard guard.ConstructorGuard
}

// NewChangeDriverStatusCommand creates a command to change a driver's status.
// Validates that the driver id and the target status are valid values.
func NewChangeDriverStatusCommand(driverID kernel.ID, status driver.Status) (ChangeDriverStatusCommand, error) {
	statusCommand := ChangeDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setDriverID(driverID),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDriverStatusCommandIsNotConstructed if validation fails.
func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c ChangeDriverStatusCommand) DriverID() kernel.ID {
	return c.driverID
}

// Status returns the target availability status.
func (c ChangeDriverStatusCommand) Status() driver.Status {
	return c.status
}

func (c *ChangeDriverStatusCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *ChangeDriverStatusCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

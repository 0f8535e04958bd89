package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to add a driver to the roster.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID
	name     string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
// Validates that the driver id is valid and the name is not empty.
func NewRegisterDriverCommand(driverID kernel.ID, name string) (RegisterDriverCommand, error) {
	driverCommand := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setDriverID(driverID),
		driverCommand.setName(name),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDriverCommandIsNotConstructed if validation fails.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier chosen for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.ID {
	return c.driverID
}

// Name returns the driver's name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

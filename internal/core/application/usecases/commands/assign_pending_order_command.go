package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrAssignPendingOrderCommandIsNotConstructed = errors.New(
	"AssignPendingOrderCommand must be created via NewAssignPendingOrderCommand constructor",
)

// AssignPendingOrderCommand triggers a dispatch retry: it finds the oldest
// pending delivery order without a driver and runs the assignment engine over
// the current roster. Orders end up unassigned when checkout found no
// available driver; this command gives them another chance as drivers free
// up.
//
// Example:
//
//	cmd := NewAssignPendingOrderCommand()
//	handler := NewAssignPendingOrderCommandHandler(uowFactory, publisher, logger)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("nothing to dispatch: %v", err)
//	}
type AssignPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrderCommand creates a new command to trigger a dispatch
// retry. This is a parameterless command.
func NewAssignPendingOrderCommand() AssignPendingOrderCommand {
	return AssignPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingOrderCommandIsNotConstructed if validation fails.
func (c *AssignPendingOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingOrderCommandIsNotConstructed,
	)
}

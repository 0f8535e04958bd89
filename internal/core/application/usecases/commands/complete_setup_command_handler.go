package commands

import (
	"context"

	"pos/internal/core/domain/model/settings"
)

// CompleteSetupCommandHandler persists the company profile produced by the
// setup wizard. Running the wizard again replaces the previous profile.
type CompleteSetupCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewCompleteSetupCommandHandler creates a handler for setup completion.
func NewCompleteSetupCommandHandler(uowFactory SettingsUoWFactory) CompleteSetupCommandHandler {
	return CompleteSetupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the setup completion command.
func (h CompleteSetupCommandHandler) Handle(ctx context.Context, command CompleteSetupCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	profile, err := settings.NewCompanySettings(command.CompanyName(), command.AdminName(), command.Category())
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

	if err = uow.SettingsRepository().Save(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

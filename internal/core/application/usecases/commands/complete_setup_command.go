package commands

import (
	"errors"

	"pos/internal/core/domain/model/settings"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrCompleteSetupCommandIsNotConstructed = errors.New(
	"CompleteSetupCommand must be created via NewCompleteSetupCommand constructor",
)

// CompleteSetupCommand represents the final step of the setup wizard: it
// records the company profile and the business category that decides which
// workflows the store runs.
type CompleteSetupCommand struct { //nolint:recvcheck //using for validation
	companyName string
	adminName   string
	category    settings.Category

	guard guard.ConstructorGuard
}

// NewCompleteSetupCommand creates a command to complete the setup wizard.
// Validates that names are not empty and the category is a valid value.
func NewCompleteSetupCommand(companyName string, adminName string, category settings.Category) (CompleteSetupCommand, error) {
	setupCommand := CompleteSetupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setupCommand.setCompanyName(companyName),
		setupCommand.setAdminName(adminName),
		setupCommand.setCategory(category),
	); err != nil {
		return CompleteSetupCommand{}, err
	}

	return setupCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteSetupCommandIsNotConstructed if validation fails.
func (c CompleteSetupCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSetupCommandIsNotConstructed)
}

// CompanyName returns the store's display name.
func (c CompleteSetupCommand) CompanyName() string {
	return c.companyName
}

// AdminName returns the name of the person running the wizard.
func (c CompleteSetupCommand) AdminName() string {
	return c.adminName
}

// Category returns the chosen business category.
func (c CompleteSetupCommand) Category() settings.Category {
	return c.category
}

func (c *CompleteSetupCommand) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("companyName")
	}

	c.companyName = companyName
	return nil
}

func (c *CompleteSetupCommand) setAdminName(adminName string) error {
	if adminName == "" {
		return errs.NewValueIsRequiredError("adminName")
	}

	c.adminName = adminName
	return nil
}

func (c *CompleteSetupCommand) setCategory(category settings.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

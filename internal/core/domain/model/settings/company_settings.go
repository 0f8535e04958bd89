package settings

import (
	"errors"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrSettingsAreNotConstructed is returned when a CompanySettings instance
	// was not created through the NewCompanySettings or RestoreCompanySettings
	// constructors.
	ErrSettingsAreNotConstructed = errors.New("CompanySettings must be created via NewCompanySettings or RestoreCompanySettings constructor")
)

// CompanySettings is the single company profile for the installation,
// captured when the setup wizard completes. There is exactly one per store.
type CompanySettings struct {
	companyName   string
	adminName     string
	category      Category
	setupComplete bool

	guard guard.ConstructorGuard
}

// NewCompanySettings creates the company profile from a completed setup
// wizard. The profile is marked setup-complete.
func NewCompanySettings(companyName string, adminName string, category Category) (*CompanySettings, error) {
	s := &CompanySettings{
		setupComplete: true,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCompanyName(companyName),
		s.setAdminName(adminName),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreCompanySettings reconstructs the company profile from persistent
// storage.
func RestoreCompanySettings(companyName string, adminName string, category Category, setupComplete bool) (*CompanySettings, error) {
	s := &CompanySettings{
		setupComplete: setupComplete,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCompanyName(companyName),
		s.setAdminName(adminName),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the CompanySettings instance was properly constructed.
// Returns ErrSettingsAreNotConstructed otherwise.
func (s *CompanySettings) Validate() error {
	if s == nil {
		return ErrSettingsAreNotConstructed
	}
	return s.guard.Validate(ErrSettingsAreNotConstructed)
}

// CompanyName returns the store's display name.
func (s *CompanySettings) CompanyName() string {
	return s.companyName
}

// AdminName returns the name of the person who ran the setup wizard.
func (s *CompanySettings) AdminName() string {
	return s.adminName
}

// Category returns the business category chosen at setup.
func (s *CompanySettings) Category() Category {
	return s.category
}

// IsSetupComplete reports whether the setup wizard has been completed.
func (s *CompanySettings) IsSetupComplete() bool {
	return s.setupComplete
}

// SupportsDelivery reports whether this store runs the delivery workflow.
func (s *CompanySettings) SupportsDelivery() bool {
	return s.category.SupportsDelivery()
}

func (s *CompanySettings) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("companyName")
	}
	s.companyName = companyName
	return nil
}

func (s *CompanySettings) setAdminName(adminName string) error {
	if adminName == "" {
		return errs.NewValueIsRequiredError("adminName")
	}
	s.adminName = adminName
	return nil
}

func (s *CompanySettings) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.category = category
	return nil
}

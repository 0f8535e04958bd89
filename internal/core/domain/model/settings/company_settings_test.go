package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/internal/core/domain/model/settings"
	"pos/internal/pkg/errs"
)

func TestNewCompanySettings(t *testing.T) {
	t.Run("completed wizard produces setup-complete profile", func(t *testing.T) {
		s, err := settings.NewCompanySettings("Crusty Corner", "Imran", settings.PizzaRestaurant)

		require.NoError(t, err)
		assert.True(t, s.IsSetupComplete())
		assert.Equal(t, "Crusty Corner", s.CompanyName())
		assert.Equal(t, "Imran", s.AdminName())
		assert.Equal(t, settings.PizzaRestaurant, s.Category())
	})

	t.Run("rejects empty company name", func(t *testing.T) {
		_, err := settings.NewCompanySettings("", "Imran", settings.Pharmacy)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		_, err := settings.NewCompanySettings("Crusty Corner", "Imran", settings.CategoryUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCategory_SupportsDelivery(t *testing.T) {
	assert.True(t, settings.PizzaRestaurant.SupportsDelivery())
	assert.True(t, settings.DeliveryShop.SupportsDelivery())
	assert.False(t, settings.Pharmacy.SupportsDelivery())
	assert.False(t, settings.Hardware.SupportsDelivery())
	assert.False(t, settings.AutoSpareParts.SupportsDelivery())
	assert.False(t, settings.GeneralStore.SupportsDelivery())
}

func TestCategoryFromString(t *testing.T) {
	t.Run("parses display names", func(t *testing.T) {
		category, err := settings.CategoryFromString("Auto Spare Parts")

		require.NoError(t, err)
		assert.Equal(t, settings.AutoSpareParts, category)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := settings.CategoryFromString("Bakery")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreCompanySettings(t *testing.T) {
	s, err := settings.RestoreCompanySettings("City Pharma", "Nadia", settings.Pharmacy, false)

	require.NoError(t, err)
	assert.False(t, s.IsSetupComplete())
	assert.False(t, s.SupportsDelivery())
}

func TestCompanySettings_Validate(t *testing.T) {
	var s settings.CompanySettings

	require.ErrorIs(t, s.Validate(), settings.ErrSettingsAreNotConstructed)
}

package settings

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Category is the kind of business the store runs. It is chosen once in the
// setup wizard and drives which workflows are enabled.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// PizzaRestaurant businesses get the kitchen board and driver dispatch.
	PizzaRestaurant

	// DeliveryShop businesses get driver dispatch for courier-style sales.
	DeliveryShop

	// Pharmacy businesses track batch numbers and expiry dates on products.
	Pharmacy

	// Hardware stores run plain counter sales.
	Hardware

	// AutoSpareParts businesses track manufacturer, brand, and part number.
	AutoSpareParts

	// GeneralStore is the fallback for everything else.
	GeneralStore
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		PizzaRestaurant: "Pizza/Restaurant",
		DeliveryShop:    "Delivery Shop",
		Pharmacy:        "Pharmacy",
		Hardware:        "Hardware",
		AutoSpareParts:  "Auto Spare Parts",
		GeneralStore:    "General Store",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		PizzaRestaurant: "Pizza/Restaurant",
		DeliveryShop:    "Delivery Shop",
		Pharmacy:        "Pharmacy",
		Hardware:        "Hardware",
		AutoSpareParts:  "Auto Spare Parts",
		GeneralStore:    "General Store",
	}
}

// CategoryFromString parses a category from its display name.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category is invalid",
		fmt.Errorf("%q is not a valid business category", s))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid business category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
// Returns "Unknown" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// SupportsDelivery reports whether the category runs the delivery workflow:
// kitchen board, delivery board, and driver dispatch.
func (c Category) SupportsDelivery() bool {
	return c == PizzaRestaurant || c == DeliveryShop
}

package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Type distinguishes how an order is fulfilled. Delivery orders require
// customer contact details and are the only orders that get a driver.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// DineIn orders are served at a table.
	DineIn

	// Takeaway orders are picked up at the counter.
	Takeaway

	// Delivery orders are brought to the customer by a driver.
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		DineIn:      "Dine-in",
		Takeaway:    "Takeaway",
		Delivery:    "Delivery",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		DineIn:   "Dine-in",
		Takeaway: "Takeaway",
		Delivery: "Delivery",
	}
}

// TypeFromString parses an order type from its display name.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type is invalid",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
// Returns "Unknown" for invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

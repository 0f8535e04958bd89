package driver

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Status represents a driver's availability for new assignments. Only
// Available drivers are considered by the assignment engine; a driver keeps
// their status while carrying orders unless staff change it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available drivers can receive new delivery assignments.
	Available

	// Busy drivers are excluded from assignment until staff mark them
	// available again.
	Busy

	// Offline drivers are off shift.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Busy:          "Busy",
		Offline:       "Offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Busy:      "Busy",
		Offline:   "Offline",
	}
}

// StatusFromString parses a driver status from its display name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

package kernel

import (
	"crypto/rand"
	"math/big"

	"pos/internal/pkg/errs"
)

// idAlphabet is the character set used for generated identifiers. Base-36
// uppercase keeps ids short and easy to read back to a customer over the
// phone.
const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generatedIDLength is the length of generated order identifiers.
const generatedIDLength = 9

// ErrIDIsNotConstructed indicates that an ID was not properly initialized
// through NewID or IDFromString. The zero value of ID is invalid.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object identifying orders and drivers. Order ids are short
// random alphanumeric tokens generated at creation; driver ids are explicit
// strings assigned at registration. Ids are totally ordered by their
// lexicographic string value, which backs the deterministic assignment
// tie-break.
//
// The zero value of ID is invalid; use NewID or IDFromString.
type ID struct {
	value string
}

// NewID generates a new random identifier: a 9-character uppercase base-36
// token. Collisions are possible in principle but the token space (36^9) is
// far larger than any realistic order history of a single store.
func NewID() ID {
	buf := make([]byte, generatedIDLength)
	maxIndex := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, maxIndex)
		if err != nil {
			// crypto/rand only fails when the platform's entropy source is
			// broken; there is no reasonable recovery at this level.
			panic(err)
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return ID{value: string(buf)}
}

// IDFromString creates an ID from its string representation. Used when
// reconstructing entities from persistence or when registering drivers with
// caller-chosen ids. The string must be non-empty.
func IDFromString(s string) (ID, error) {
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the identifier's string representation.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Less reports whether i sorts lexicographically before other. Used by the
// assignment engine to break workload ties deterministically.
func (i ID) Less(other ID) bool {
	return i.value < other.value
}

// Validate checks that the ID was created through a constructor.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}

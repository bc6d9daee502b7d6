package kernel

import (
	"crown/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID")

// UUID is an immutable identifier value object. The zero value is invalid.
//
// Example:
//
//	id := kernel.NewUUID()
//	d, err := delivery.RestoreDelivery(id.String(), attrs)
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// String returns the canonical hyphenated lower-case representation.
func (u UUID) String() string {
	return u.id.String()
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

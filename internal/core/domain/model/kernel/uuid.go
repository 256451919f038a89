package kernel

import (
	"fmt"

	"deliverytracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value (nil) UUID. It is returned by
// Validate and by every constructor that is handed the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier of a work order. It wraps github.com/google/uuid so
// the domain never hands out a mutable identifier.
//
// The zero value is the nil UUID and is invalid. Build identifiers with
// NewUUID for new work orders, with UUIDFromString for identifiers arriving
// as text, or with UUIDFromBytes for identifiers read back from storage. All
// three refuse the nil UUID, so a constructed UUID always validates.
//
// UUID is a comparable value and safe for concurrent use.
//
// Example usage:
//
//	// Intake assigns the identifier
//	id := kernel.NewUUID()
//
//	// A path parameter names an existing work order
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier for a new work order.
//
// Example:
//
//	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "TRK-1001", ...)
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a work order identifier. It accepts the forms
// understood by uuid.Parse:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "6ba7b8109dad11d180b400c04fd430c8"
//
// Malformed input returns an error mentioning "invalid UUID format", and the
// nil UUID returns ErrUUIDIsNotConstructed.
//
// Example:
//
//	id, err := kernel.UUIDFromString(raw)
//	if errors.Is(err, errs.ErrValueIsRequired) {
//	    // the caller sent 00000000-0000-0000-0000-000000000000
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return construct(id)
}

// UUIDFromBytes restores an identifier from its 16-byte form, as stored in
// the work_orders table or carried in a generated API model.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return nil, err
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return construct(id)
}

func construct(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form used
// in event payloads and log records.
func (u UUID) String() string {
	return u.id.String()
}

// Value returns a copy of the underlying google uuid value. The persistence
// and HTTP adapters use it as their column and wire type.
//
// Example:
//
//	db.First(&dto, "id = ?", id.Value())
func (u UUID) Value() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers name the same work order.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

package kernel

import (
	"fmt"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies purchase orders and shipments. It wraps google/uuid behind
// a value object so aggregates can require a constructed identifier: the zero
// value fails Validate, which the constructor guards rely on.
//
// UUID is immutable; copies compare equal with IsEqual.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier. Used when the portal
// itself creates the record: manually registered purchase orders, orders
// pulled from the ERP, and shipments booked from accepted proposals.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, as received in API route
// parameters and proposal payloads.
//
//	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte binary form, the
// representation the postgres uuid columns scan into. A nil (all-zero) value
// is rejected: a persisted row must never carry an unconstructed id.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence mapping, where the
// DTOs store identifiers as native uuid columns.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers refer to the same record.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

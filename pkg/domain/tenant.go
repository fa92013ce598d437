package domain

import (
	"primobs/pkg/serrors"

	"github.com/google/uuid"
)

// TenantID uniquely identifies a tenant.
// It wraps uuid.UUID to provide type safety at the domain layer.
type TenantID uuid.UUID

// NewTenantID returns a random tenant identifier.
func NewTenantID() TenantID {
	return TenantID(uuid.New())
}

// ParseTenantID parses the canonical textual form of a tenant identifier.
func ParseTenantID(s string) (TenantID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TenantID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid tenant id %q", s)
	}

	return TenantID(id), nil
}

// MustParseTenantID is like ParseTenantID but panics if s is malformed.
func MustParseTenantID(s string) TenantID {
	id, err := ParseTenantID(s)
	if err != nil {
		panic(err)
	}

	return id
}

func (t TenantID) String() string { return uuid.UUID(t).String() }

// IsZero reports whether t is the zero (nil UUID) identifier.
func (t TenantID) IsZero() bool { return uuid.UUID(t) == uuid.Nil }

// MarshalText implements encoding.TextMarshaler.
func (t TenantID) MarshalText() ([]byte, error) {
	return uuid.UUID(t).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TenantID) UnmarshalText(data []byte) error {
	id, err := ParseTenantID(string(data))
	if err != nil {
		return err
	}
	*t = id

	return nil
}

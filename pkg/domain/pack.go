package domain

import (
	"primobs/pkg/serrors"

	"github.com/google/uuid"
)

// PackID uniquely identifies a pack that can be assigned to a tenant.
// It shares TenantID's representation but is not interchangeable with it.
type PackID uuid.UUID

// NewPackID returns a random pack identifier.
func NewPackID() PackID {
	return PackID(uuid.New())
}

// ParsePackID parses the canonical textual form of a pack identifier.
func ParsePackID(s string) (PackID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PackID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid pack id %q", s)
	}

	return PackID(id), nil
}

// MustParsePackID is like ParsePackID but panics if s is malformed.
func MustParsePackID(s string) PackID {
	id, err := ParsePackID(s)
	if err != nil {
		panic(err)
	}

	return id
}

func (p PackID) String() string { return uuid.UUID(p).String() }

// IsZero reports whether p is the zero (nil UUID) identifier.
func (p PackID) IsZero() bool { return uuid.UUID(p) == uuid.Nil }

// MarshalText implements encoding.TextMarshaler.
func (p PackID) MarshalText() ([]byte, error) {
	return uuid.UUID(p).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PackID) UnmarshalText(data []byte) error {
	id, err := ParsePackID(string(data))
	if err != nil {
		return err
	}
	*p = id

	return nil
}

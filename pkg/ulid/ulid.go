package ulid

import (
	"bytes"
	"database/sql/driver"
	"math/big"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/outofforest/ulid/pkg/base32"
)

// Sizes of the binary and canonical text forms.
const (
	Size           = 16
	TimestampSize  = 6
	RandomnessSize = 10

	EncodedSize           = 26
	EncodedTimestampSize  = 10
	EncodedRandomnessSize = 16
)

// ULID is a 128-bit lexicographically sortable identifier: a Timestamp
// followed by a Randomness. It is an immutable value type compared by its
// bytes.
type ULID [Size]byte

// FromBytes returns the ULID stored in the given 16-byte buffer.
func FromBytes(b []byte) (ULID, error) {
	if len(b) != Size {
		return ULID{}, errors.Wrapf(ErrWidthMismatch, "expected %d bytes, got %d", Size, len(b))
	}
	var u ULID
	copy(u[:], b)
	return u, nil
}

// FromInt returns the ULID whose 128-bit value is n.
func FromInt(n *big.Int) (ULID, error) {
	if n.Sign() < 0 {
		return ULID{}, errors.Wrap(ErrRangeOverflow, "expected non-negative integer")
	}
	if n.BitLen() > Size*8 {
		return ULID{}, errors.Wrapf(ErrRangeOverflow, "expected integer fitting in %d bytes, got %d",
			Size, (n.BitLen()+7)/8)
	}
	var u ULID
	n.FillBytes(u[:])
	return u, nil
}

// FromString parses the canonical 26-character text form.
func FromString(s string) (ULID, error) {
	b, err := base32.Decode(s, Size)
	if err != nil {
		return ULID{}, err
	}
	return FromBytes(b)
}

// FromUUID reinterprets the raw bytes of a UUID as a ULID. The bytes are
// used verbatim, so the UUID's own time semantics, if any, are ignored.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}

// Bytes returns a copy of the raw 16-byte representation.
func (u ULID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// Int returns the identifier as a 128-bit unsigned integer.
func (u ULID) Int() *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// String returns the canonical 26-character Base32 form.
func (u ULID) String() string {
	return base32.Encode(u[:])
}

// UUID reinterprets the raw bytes as a UUID.
func (u ULID) UUID() uuid.UUID {
	return uuid.UUID(u)
}

// Timestamp returns the timestamp component.
func (u ULID) Timestamp() Timestamp {
	var ts Timestamp
	copy(ts[:], u[:TimestampSize])
	return ts
}

// Randomness returns the randomness component.
func (u ULID) Randomness() Randomness {
	var rn Randomness
	copy(rn[:], u[TimestampSize:])
	return rn
}

// Compare returns -1, 0 or 1 depending on the byte order of u and other.
func (u ULID) Compare(other ULID) int {
	return bytes.Compare(u[:], other[:])
}

// MarshalText implements encoding.TextMarshaler using the canonical text
// form.
func (u ULID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *ULID) UnmarshalText(b []byte) error {
	parsed, err := FromString(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the raw 16-byte
// form.
func (u ULID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Value implements driver.Valuer, storing the canonical text form.
func (u ULID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts the canonical 26-character text
// form as a string or byte slice, and the raw 16-byte form.
func (u *ULID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == EncodedSize {
			return u.UnmarshalText(v)
		}
		return u.UnmarshalBinary(v)
	default:
		return errors.Errorf("unsupported source type %T", src)
	}
}

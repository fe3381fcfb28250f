package ulid

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/outofforest/ulid/pkg/base32"
)

// Randomness is the 10-byte randomness component of a ULID. It is opaque:
// no internal structure or intra-millisecond ordering is implied.
type Randomness [RandomnessSize]byte

// RandomnessFromInt returns the randomness whose 80-bit value is n.
func RandomnessFromInt(n *big.Int) (Randomness, error) {
	if n.Sign() < 0 {
		return Randomness{}, errors.Wrap(ErrRangeOverflow, "expected non-negative integer")
	}
	if n.BitLen() > RandomnessSize*8 {
		return Randomness{}, errors.Wrapf(ErrRangeOverflow, "expected integer fitting in %d bytes, got %d",
			RandomnessSize, (n.BitLen()+7)/8)
	}
	var rn Randomness
	n.FillBytes(rn[:])
	return rn, nil
}

// RandomnessFromString parses the canonical 16-character text form.
func RandomnessFromString(s string) (Randomness, error) {
	b, err := base32.Decode(s, RandomnessSize)
	if err != nil {
		return Randomness{}, err
	}
	return RandomnessFromBytes(b)
}

// RandomnessFromBytes returns the randomness stored in the given 10-byte
// buffer.
func RandomnessFromBytes(b []byte) (Randomness, error) {
	if len(b) != RandomnessSize {
		return Randomness{}, errors.Wrapf(ErrWidthMismatch, "expected %d bytes, got %d",
			RandomnessSize, len(b))
	}
	var rn Randomness
	copy(rn[:], b)
	return rn, nil
}

// Int returns the randomness as an 80-bit unsigned integer.
func (rn Randomness) Int() *big.Int {
	return new(big.Int).SetBytes(rn[:])
}

// Bytes returns a copy of the raw 10-byte representation.
func (rn Randomness) Bytes() []byte {
	b := make([]byte, RandomnessSize)
	copy(b, rn[:])
	return b
}

// String returns the canonical 16-character Base32 form.
func (rn Randomness) String() string {
	return base32.Encode(rn[:])
}

package base32

import (
	"github.com/pkg/errors"
)

// Alphabet is Crockford's Base32 alphabet. It excludes I, L, O and U, and
// it is order-preserving: sorting encoded strings lexicographically sorts
// the underlying values numerically.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ErrMalformedText is returned when decoded text has the wrong length,
// contains a character outside Alphabet, or encodes a value exceeding the
// bit width of the target buffer.
var ErrMalformedText = errors.New("malformed base32 text")

const invalid = 0xff

var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = byte(i)
		}
	}
	return t
}()

// EncodedLen returns the character count of the canonical encoding of a
// buffer of size bytes. Size must be 6, 10 or 16.
func EncodedLen(size int) int {
	switch size {
	case 6, 10, 16:
		return (size*8 + 4) / 5
	default:
		panic(errors.Errorf("unsupported buffer size %d", size))
	}
}

// Encode returns the canonical fixed-width text form of src, which must be
// 6, 10 or 16 bytes long. The capacity bits left over by the 5-bit grouping
// always encode as zero.
func Encode(src []byte) string {
	chars := EncodedLen(len(src))
	dst := make([]byte, chars)
	for i := range dst {
		dst[i] = Alphabet[group(src, uint(5*(chars-1-i)))]
	}
	return string(dst)
}

// Decode parses s into a buffer of size bytes, where size must be 6, 10 or
// 16. Both character cases are accepted. It fails with ErrMalformedText if
// the character count does not match size, if any character is outside the
// alphabet, or if the encoded value does not fit in size bytes.
func Decode(s string, size int) ([]byte, error) {
	chars := EncodedLen(size)
	if len(s) != chars {
		return nil, errors.Wrapf(ErrMalformedText, "expected %d characters, got %d", chars, len(s))
	}
	bits := uint(size * 8)
	dst := make([]byte, size)
	for i := 0; i < chars; i++ {
		v := decodeTable[s[i]]
		if v == invalid {
			return nil, errors.Wrapf(ErrMalformedText, "character %q is not in the alphabet", s[i])
		}
		shift := uint(5 * (chars - 1 - i))
		if shift+5 > bits && v>>(bits-shift) != 0 {
			return nil, errors.Wrapf(ErrMalformedText, "value does not fit in %d bits", bits)
		}
		orGroup(dst, shift, v)
	}
	return dst, nil
}

// group reads the 5 bits [shift, shift+5) of src interpreted as one
// big-endian unsigned integer, counting from the least significant bit.
// Bits beyond the buffer read as zero.
func group(src []byte, shift uint) byte {
	idx := len(src) - 1 - int(shift>>3)
	v := uint16(src[idx])
	if idx > 0 {
		v |= uint16(src[idx-1]) << 8
	}
	return byte(v>>(shift&7)) & 0x1f
}

// orGroup writes the 5-bit value v into dst at bit offset shift from the
// least significant bit. Bits beyond the buffer must already be known zero.
func orGroup(dst []byte, shift uint, v byte) {
	idx := len(dst) - 1 - int(shift>>3)
	off := shift & 7
	dst[idx] |= v << off
	if off > 3 && idx > 0 {
		dst[idx-1] |= v >> (8 - off)
	}
}

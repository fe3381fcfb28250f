package ulid

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/outofforest/ulid/pkg/base32"
)

// MaxMilliseconds is the largest timestamp representable in 48 bits,
// corresponding to a date in the year 10889.
const MaxMilliseconds = 1<<(TimestampSize*8) - 1

// Timestamp is the 6-byte timestamp component of a ULID: an unsigned
// big-endian count of milliseconds since the Unix epoch.
type Timestamp [TimestampSize]byte

// TimestampFromMilliseconds returns the timestamp for the given number of
// milliseconds since the Unix epoch.
func TimestampFromMilliseconds(ms uint64) (Timestamp, error) {
	if ms > MaxMilliseconds {
		return Timestamp{}, errors.Wrapf(ErrRangeOverflow, "%d milliseconds do not fit in %d bytes",
			ms, TimestampSize)
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], ms)
	var ts Timestamp
	copy(ts[:], b[2:])
	return ts, nil
}

// TimestampFromSeconds returns the timestamp for the given number of
// seconds since the Unix epoch, truncated to millisecond precision.
func TimestampFromSeconds(sec float64) (Timestamp, error) {
	if sec < 0 || math.IsNaN(sec) {
		return Timestamp{}, errors.Wrapf(ErrRangeOverflow, "expected non-negative seconds, got %f", sec)
	}
	ms := sec * 1000
	if ms > MaxMilliseconds {
		return Timestamp{}, errors.Wrapf(ErrRangeOverflow, "%f seconds do not fit in %d bytes",
			sec, TimestampSize)
	}
	return TimestampFromMilliseconds(uint64(ms))
}

// TimestampFromTime returns the timestamp of the given instant.
func TimestampFromTime(t time.Time) (Timestamp, error) {
	ms := t.UnixMilli()
	if ms < 0 {
		return Timestamp{}, errors.Wrapf(ErrRangeOverflow, "time %s predates the unix epoch", t)
	}
	return TimestampFromMilliseconds(uint64(ms))
}

// TimestampFromString parses the canonical 10-character text form.
func TimestampFromString(s string) (Timestamp, error) {
	b, err := base32.Decode(s, TimestampSize)
	if err != nil {
		return Timestamp{}, err
	}
	return TimestampFromBytes(b)
}

// TimestampFromBytes returns the timestamp stored in the given 6-byte
// buffer.
func TimestampFromBytes(b []byte) (Timestamp, error) {
	if len(b) != TimestampSize {
		return Timestamp{}, errors.Wrapf(ErrWidthMismatch, "expected %d bytes, got %d",
			TimestampSize, len(b))
	}
	var ts Timestamp
	copy(ts[:], b)
	return ts, nil
}

// Milliseconds returns the number of milliseconds since the Unix epoch.
func (ts Timestamp) Milliseconds() uint64 {
	var b [8]byte
	copy(b[2:], ts[:])
	return binary.BigEndian.Uint64(b[:])
}

// Seconds returns the number of seconds since the Unix epoch, with the
// milliseconds as the fractional part.
func (ts Timestamp) Seconds() float64 {
	return float64(ts.Milliseconds()) / 1000
}

// Time returns the timestamp as a UTC instant.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts.Milliseconds())).UTC()
}

// Bytes returns a copy of the raw 6-byte representation.
func (ts Timestamp) Bytes() []byte {
	b := make([]byte, TimestampSize)
	copy(b, ts[:])
	return b
}

// String returns the canonical 10-character Base32 form.
func (ts Timestamp) String() string {
	return base32.Encode(ts[:])
}

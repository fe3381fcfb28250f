package ulid

import (
	"math"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestTimestampFromMilliseconds(t *testing.T) {
	requireT := require.New(t)

	ts, err := TimestampFromMilliseconds(1700000000000)
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), ts.Milliseconds())
	requireT.Equal("01HF7YAT00", ts.String())
	requireT.Equal([]byte{0x01, 0x8b, 0xcf, 0xe5, 0x68, 0x00}, ts.Bytes())

	ts, err = TimestampFromMilliseconds(MaxMilliseconds)
	requireT.NoError(err)
	requireT.Equal(uint64(MaxMilliseconds), ts.Milliseconds())

	_, err = TimestampFromMilliseconds(MaxMilliseconds + 1)
	requireT.ErrorIs(err, ErrRangeOverflow)
}

func TestTimestampFromSeconds(t *testing.T) {
	requireT := require.New(t)

	ts, err := TimestampFromSeconds(1700000000)
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), ts.Milliseconds())
	requireT.Equal(float64(1700000000), ts.Seconds())

	// sub-millisecond precision is truncated, not rounded
	ts, err = TimestampFromSeconds(1.0009)
	requireT.NoError(err)
	requireT.Equal(uint64(1000), ts.Milliseconds())

	ts, err = TimestampFromSeconds(1.5)
	requireT.NoError(err)
	requireT.Equal(uint64(1500), ts.Milliseconds())

	for _, sec := range []float64{-1, -0.001, math.NaN(), math.Inf(1), float64(1 << 50)} {
		_, err := TimestampFromSeconds(sec)
		requireT.ErrorIs(err, ErrRangeOverflow)
	}
}

func TestTimestampFromTime(t *testing.T) {
	requireT := require.New(t)

	instant := time.UnixMilli(1700000000000)
	ts, err := TimestampFromTime(instant)
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), ts.Milliseconds())
	requireT.Equal(instant.UTC(), ts.Time())

	_, err = TimestampFromTime(time.Unix(-1, 0))
	requireT.ErrorIs(err, ErrRangeOverflow)
}

func TestTimestampFromString(t *testing.T) {
	requireT := require.New(t)

	ts, err := TimestampFromString("01HF7YAT00")
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), ts.Milliseconds())
	requireT.Equal("01HF7YAT00", ts.String())

	_, err = TimestampFromString("01HF7YAT0")
	requireT.Error(err)
}

func TestTimestampFromBytes(t *testing.T) {
	requireT := require.New(t)

	ts, err := TimestampFromBytes([]byte{0x01, 0x8b, 0xcf, 0xe5, 0x68, 0x00})
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), ts.Milliseconds())

	for _, size := range []int{0, 5, 7, 16} {
		_, err := TimestampFromBytes(make([]byte, size))
		requireT.ErrorIs(err, ErrWidthMismatch)
	}
}

func TestTimestampReuse(t *testing.T) {
	requireT := require.New(t)

	u := vector(t)
	u2, err := FromTimestamp(u.Timestamp())
	requireT.NoError(err)
	requireT.Equal(u.Timestamp(), u2.Timestamp())
}

func TestTimestampRoundTrip(t *testing.T) {
	requireT := require.New(t)

	u, err := FromTimestamp(lo.Must(TimestampFromSeconds(1700000000)))
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), u.Timestamp().Milliseconds())

	ts, err := TimestampFromString(u.Timestamp().String())
	requireT.NoError(err)
	requireT.Equal(uint64(1700000000000), ts.Milliseconds())
}

package ulid

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Clock is a source of wall-clock time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock reads the system time.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Generator builds ULIDs from a clock and an entropy source. It holds no
// state of its own, so it is safe for concurrent use whenever the clock
// and the entropy reader are.
type Generator struct {
	clock   Clock
	entropy io.Reader
}

// NewGenerator creates a generator reading time from clock and randomness
// from entropy.
func NewGenerator(clock Clock, entropy io.Reader) *Generator {
	return &Generator{
		clock:   clock,
		entropy: entropy,
	}
}

var defaultGenerator = NewGenerator(SystemClock, rand.Reader)

// New generates a ULID from the current system time and fresh randomness.
func New() (ULID, error) {
	return defaultGenerator.New()
}

// FromTimestamp generates a ULID carrying the given timestamp and fresh
// randomness.
func FromTimestamp(ts Timestamp) (ULID, error) {
	return defaultGenerator.FromTimestamp(ts)
}

// FromRandomness generates a ULID carrying the current system time and the
// given randomness.
func FromRandomness(rn Randomness) (ULID, error) {
	return defaultGenerator.FromRandomness(rn)
}

// New generates a ULID from the generator's current time and fresh
// randomness.
func (g *Generator) New() (ULID, error) {
	ts, err := TimestampFromTime(g.clock.Now())
	if err != nil {
		return ULID{}, err
	}
	return g.FromTimestamp(ts)
}

// FromTimestamp generates a ULID carrying the given timestamp and fresh
// randomness.
func (g *Generator) FromTimestamp(ts Timestamp) (ULID, error) {
	var u ULID
	copy(u[:TimestampSize], ts[:])
	if _, err := io.ReadFull(g.entropy, u[TimestampSize:]); err != nil {
		return ULID{}, errors.WithStack(err)
	}
	return u, nil
}

// FromRandomness generates a ULID carrying the generator's current time and
// the given randomness.
func (g *Generator) FromRandomness(rn Randomness) (ULID, error) {
	ts, err := TimestampFromTime(g.clock.Now())
	if err != nil {
		return ULID{}, err
	}
	var u ULID
	copy(u[:TimestampSize], ts[:])
	copy(u[TimestampSize:], rn[:])
	return u, nil
}

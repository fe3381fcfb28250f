package ulid

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// NewConstantClock returns a clock frozen at the given instant.
func NewConstantClock(t time.Time) Clock {
	return constantClock{t: t}
}

type constantClock struct {
	t time.Time
}

func (c constantClock) Now() time.Time {
	return c.t
}

// NewDeterministicEntropy creates an entropy reader producing a keystream
// derived from key. Readers created with the same key produce exactly the
// same bytes, making generated ULIDs reproducible.
func NewDeterministicEntropy(key string) io.Reader {
	return &deterministicEntropy{key: key}
}

type deterministicEntropy struct {
	key string
	seq uint64
	buf []byte
}

func (de *deterministicEntropy) Read(p []byte) (int, error) {
	for len(de.buf) < len(p) {
		h := sha256.New()
		// hash does not return errors or short writes
		_, _ = h.Write([]byte(de.key))
		_ = binary.Write(h, binary.LittleEndian, de.seq)
		de.seq++
		de.buf = h.Sum(de.buf)
	}
	n := copy(p, de.buf)
	de.buf = de.buf[n:]
	return n, nil
}

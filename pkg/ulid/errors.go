package ulid

import (
	"github.com/pkg/errors"
)

var (
	// ErrWidthMismatch is returned when a buffer is not exactly the byte
	// count its target requires.
	ErrWidthMismatch = errors.New("width mismatch")

	// ErrRangeOverflow is returned when a numeric input is negative or
	// needs more bytes than its target allows.
	ErrRangeOverflow = errors.New("range overflow")
)

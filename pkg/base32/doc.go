// Package base32 implements the fixed-width, padding-free Base32 codec used
// by ULIDs.
//
// It transforms 6, 10 and 16-byte big-endian buffers into 10, 16 and
// 26-character strings over Crockford's alphabet. The buffer is treated as a
// single unsigned integer, so the 5-bit/8-bit misalignment is absorbed by
// leading zero bits in the first character rather than trailing pad bits,
// and lexicographic order of the text equals numeric order of the value.
package base32

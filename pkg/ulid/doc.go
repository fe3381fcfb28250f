// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// These identifiers have the following properties:
//   - 128 bits: a 48-bit big-endian millisecond timestamp followed by
//     80 bits of randomness
//   - sortable: byte order, numeric order and canonical text order are
//     identical
//   - reasonably short (26 characters of Crockford's Base32, see
//     https://github.com/ulid/spec)
//
// Identifiers generated within the same millisecond carry no ordering
// relationship beyond whatever their independent random draws produce.
package ulid

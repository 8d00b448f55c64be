// Package beint decodes fixed-width big-endian integers from byte
// slices. All multi-octet values in TZif files are stored in network
// octet order with signed values in two's complement.
package beint

import "encoding/binary"

// U32 decodes an unsigned 32-bit integer from the first four bytes of b.
func U32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// I32 decodes a two's-complement signed 32-bit integer from the first
// four bytes of b.
func I32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

// I64 decodes a two's-complement signed 64-bit integer from the first
// eight bytes of b.
func I64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: ID3v2 frame sizes, MP4 atoms, UTF-16 text without a BOM.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: UTF-16 text carrying an FF FE byte-order mark.
	LittleEndian
)

// String returns "big-endian" or "little-endian".
func (e Endianness) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// Uint16 decodes the first two bytes of b in this byte order.
//
// b must hold at least two bytes.
func (e Endianness) Uint16(b []byte) uint16 {
	if e == LittleEndian {
		return binary.LittleEndian.Uint16(b)
	}
	return binary.BigEndian.Uint16(b)
}

// Uint24 decodes a plain (not syncsafe) 24-bit big-endian integer.
//
// b must hold at least three bytes.
func Uint24(b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// Uint32 decodes a plain 32-bit big-endian integer.
func Uint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

package id3v2

// DecodeSyncsafe decodes a syncsafe integer (7 significant bits per byte,
// most significant byte first). It accepts the 4-byte fields used by tag
// headers and ID3v2.4 frame sizes as well as 3-byte legacy fields.
//
// Bytes are deliberately not masked with 0x7F: many writers set the high
// bit anyway, so the result is only an upper bound and must be checked
// against the bytes actually left in the stream.
func DecodeSyncsafe(b []byte) uint32 {
	var n uint32
	for i, c := range b {
		n |= uint32(c) << (7 * uint(len(b)-1-i))
	}
	return n
}

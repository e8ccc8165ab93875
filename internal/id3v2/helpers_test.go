package id3v2

import (
	"bytes"
	"encoding/binary"
)

// encodeSyncsafe encodes n as a 4-byte syncsafe integer.
func encodeSyncsafe(n uint32) []byte {
	return []byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

// tagHeader builds a 10-byte tag header.
func tagHeader(major, flags byte, bodyLength uint32) []byte {
	h := []byte{'I', 'D', '3', major, 0x00, flags}
	return append(h, encodeSyncsafe(bodyLength)...)
}

// frameV2 builds an ID3v2.2 frame (3-byte id, 24-bit size).
func frameV2(id string, payload []byte) []byte {
	n := len(payload)
	f := append([]byte(id), byte(n>>16), byte(n>>8), byte(n))
	return append(f, payload...)
}

// frameV3 builds an ID3v2.3 frame (4-byte id, 32-bit size, 2 flag bytes).
func frameV3(id string, payload []byte) []byte {
	f := append([]byte(id), 0, 0, 0, 0, 0, 0)
	binary.BigEndian.PutUint32(f[4:8], uint32(len(payload)))
	return append(f, payload...)
}

// frameV4 builds an ID3v2.4 frame (4-byte id, syncsafe size, 2 flag bytes).
func frameV4(id string, payload []byte) []byte {
	f := append([]byte(id), encodeSyncsafe(uint32(len(payload)))...)
	f = append(f, 0, 0)
	return append(f, payload...)
}

// latin1 builds an ISO-8859-1 text payload with a trailing NUL.
func latin1(s string) []byte {
	p := append([]byte{encodingLatin1}, s...)
	return append(p, 0)
}

// buildTag joins frames behind a header whose body length covers them
// plus padding bytes.
func buildTag(major byte, padding int, frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	body = append(body, make([]byte, padding)...)
	return append(tagHeader(major, 0, uint32(len(body))), body...)
}

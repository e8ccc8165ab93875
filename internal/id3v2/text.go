package id3v2

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/musicfarm/internal/binary"
)

// Text encoding indicators (first byte of a text frame payload).
const (
	encodingLatin1  = 0x00
	encodingUTF16   = 0x01 // UTF-16 with optional BOM
	encodingUTF16BE = 0x02 // ID3v2.4
	encodingUTF8    = 0x03 // ID3v2.4
)

// decodeTextFrame decodes a text-information frame payload into UTF-8.
//
// An empty result means the field is unset.
func decodeTextFrame(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	switch data[0] {
	case encodingLatin1:
		return decodeLatin1(data[1:])
	case encodingUTF8:
		return strings.ToValidUTF8(string(cutNUL(data[1:])), string(utf8.RuneError))
	default:
		// Any other nonzero indicator is UTF-16; 0x02 carries no BOM and
		// falls through to the big-endian default.
		return decodeUTF16(data)
	}
}

// decodeLatin1 decodes ISO-8859-1 text up to the first NUL.
func decodeLatin1(data []byte) string {
	data = cutNUL(data)
	if len(data) == 0 {
		return ""
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Every byte is a valid ISO-8859-1 code point; keep the raw bytes
		// if the decoder ever disagrees.
		return string(data)
	}
	return string(out)
}

// decodeUTF16 transcodes a UTF-16 payload (encoding byte included) to UTF-8.
//
// Byte order comes from the BOM; without one the text is read as
// big-endian. A leading 00 00 unit after the BOM is dropped, decoding
// stops at the first 00 00 unit, and a dangling odd byte is ignored.
// Valid surrogate pairs combine into one code point; lone surrogates
// become U+FFFD.
func decodeUTF16(data []byte) string {
	if len(data) < 3 {
		return ""
	}

	d := data[1:]
	order := binutil.BigEndian
	switch {
	case d[0] == 0xFF && d[1] == 0xFE:
		order = binutil.LittleEndian
		d = d[2:]
	case d[0] == 0xFE && d[1] == 0xFF:
		d = d[2:]
	}

	// Some encoders emit a leading terminator before the text.
	if len(d) >= 2 && d[0] == 0 && d[1] == 0 {
		d = d[2:]
	}

	units := len(d) / 2
	if units == 0 {
		return ""
	}

	// Worst case is 3 UTF-8 bytes per unit (a pair needs 4 bytes for 2 units).
	out := make([]byte, 0, 3*units)
	for i := 0; i < units; i++ {
		u := rune(order.Uint16(d[2*i:]))
		if u == 0 {
			break
		}

		switch {
		case !utf16.IsSurrogate(u):
			out = utf8.AppendRune(out, u)
		case u < 0xDC00 && i+1 < units:
			// High surrogate: needs a low surrogate next.
			r := utf16.DecodeRune(u, rune(order.Uint16(d[2*(i+1):])))
			if r == utf8.RuneError {
				out = utf8.AppendRune(out, utf8.RuneError)
				continue
			}
			out = utf8.AppendRune(out, r)
			i++
		default:
			out = utf8.AppendRune(out, utf8.RuneError)
		}
	}

	return string(out)
}

// cutNUL returns data up to (not including) the first NUL byte.
func cutNUL(data []byte) []byte {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return data[:i]
	}
	return data
}

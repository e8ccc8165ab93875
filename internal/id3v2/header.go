package id3v2

import (
	"io"

	binutil "github.com/simonhull/musicfarm/internal/binary"
)

// HeaderSize is the length of the fixed ID3v2 tag header.
const HeaderSize = 10

// Header flag bits, high bit first.
const (
	flagUnsynchronized = 1 << 7
	flagExtendedHeader = 1 << 6
	flagExperimental   = 1 << 5
	flagFooter         = 1 << 4
)

// Header represents an ID3v2 tag header
type Header struct {
	Major          byte // Major version (2, 3 or 4)
	Minor          byte // Revision
	Unsynchronized bool
	ExtendedHeader bool
	Experimental   bool
	Footer         bool

	// BodyLength is the number of bytes following the fixed header:
	// frames, optional extended header and padding, excluding any footer.
	BodyLength uint32
}

// ParseHeader reads a tag header from the current position of r.
//
// It returns a nil Header when fewer than ten bytes are available or the
// bytes do not start with "ID3". In that case r is seeked back to where
// it was so another prober can look at the same bytes. A non-nil error
// means the underlying reader or seek failed.
func ParseHeader(r io.ReadSeeker) (*Header, error) {
	s, err := binutil.NewStream(r, "")
	if err != nil {
		return nil, err
	}
	return readHeader(s)
}

func readHeader(s *binutil.Stream) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if err := s.ReadFull(buf, "ID3v2 header"); err != nil {
		if rerr := s.Rewind(); rerr != nil {
			return nil, rerr
		}
		if binutil.IsTruncated(err) {
			return nil, nil
		}
		return nil, err
	}

	// Verify "ID3" magic bytes
	if string(buf[0:3]) != "ID3" {
		return nil, s.Rewind()
	}

	flags := buf[5]
	return &Header{
		Major:          buf[3],
		Minor:          buf[4],
		Unsynchronized: flags&flagUnsynchronized != 0,
		ExtendedHeader: flags&flagExtendedHeader != 0,
		Experimental:   flags&flagExperimental != 0,
		Footer:         flags&flagFooter != 0,
		BodyLength:     DecodeSyncsafe(buf[6:10]),
	}, nil
}

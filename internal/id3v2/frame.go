package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/musicfarm/internal/binary"
	"github.com/simonhull/musicfarm/internal/types"
)

// Frame represents a single ID3v2 frame
type Frame struct {
	ID   string // 3-character (v2.2) or 4-character frame ID
	Size uint32 // Declared payload size (excluding header)
	Data []byte // Payload, len(Data) == Size
}

// layout describes the frame header shape of one major version.
type layout struct {
	headerSize int
	idWidth    int
	sizeWidth  int
	size       func([]byte) uint32
}

var layouts = map[byte]layout{
	2: {headerSize: 6, idWidth: 3, sizeWidth: 3, size: binutil.Uint24},
	3: {headerSize: 10, idWidth: 4, sizeWidth: 4, size: binutil.Uint32},
	4: {headerSize: 10, idWidth: 4, sizeWidth: 4, size: DecodeSyncsafe},
}

// layoutFor returns the frame layout for a major version.
func layoutFor(major byte) (layout, bool) {
	l, ok := layouts[major]
	return l, ok
}

// frameReader walks the frames of one tag body.
type frameReader struct {
	s         *binutil.Stream
	l         layout
	remaining uint32
	hdr       []byte
}

func newFrameReader(s *binutil.Stream, l layout, bodyLength uint32) *frameReader {
	return &frameReader{
		s:         s,
		l:         l,
		remaining: bodyLength,
		hdr:       make([]byte, l.headerSize),
	}
}

// next returns the next frame.
//
// A nil frame with a nil error means the body is exhausted or padding was
// reached. Errors are *types.CorruptFrameError or *types.TruncatedError
// for damaged tags, anything else comes from the underlying reader.
func (fr *frameReader) next() (*Frame, error) {
	if fr.remaining <= uint32(fr.l.headerSize) {
		return nil, nil
	}

	offset := fr.s.Offset()
	if err := fr.s.ReadFull(fr.hdr, "frame header"); err != nil {
		return nil, err
	}

	// Padding (null bytes indicate end of frames)
	if fr.hdr[0] == 0 {
		return nil, nil
	}

	id := fr.hdr[:fr.l.idWidth]
	for _, c := range id {
		if !isAlnum(c) {
			return nil, &types.CorruptFrameError{
				Path:   fr.s.Path(),
				Offset: offset,
				Reason: fmt.Sprintf("frame id %q is not alphanumeric", id),
			}
		}
	}

	size := fr.l.size(fr.hdr[fr.l.idWidth : fr.l.idWidth+fr.l.sizeWidth])
	if size > fr.remaining-uint32(fr.l.headerSize) {
		return nil, &types.CorruptFrameError{
			Path:   fr.s.Path(),
			ID:     string(id),
			Offset: offset,
			Reason: fmt.Sprintf("declared size %d exceeds %d bytes left in tag",
				size, fr.remaining-uint32(fr.l.headerSize)),
		}
	}

	// Zero-sized frames mark the end of usable data
	if size == 0 {
		return nil, nil
	}

	// The body length is unmasked and may promise far more than the file
	// holds, so the payload is checked against the stream before allocating.
	data, err := fr.s.ReadN(int64(size), fmt.Sprintf("frame %s data", id))
	if err != nil {
		return nil, err
	}

	fr.remaining -= uint32(fr.l.headerSize) + size

	return &Frame{
		ID:   string(id),
		Size: size,
		Data: data,
	}, nil
}

func isAlnum(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

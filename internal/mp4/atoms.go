// Package mp4 reads iTunes-style metadata from MP4/M4A files
package mp4

import (
	"fmt"

	binutil "github.com/simonhull/musicfarm/internal/binary"
	"github.com/simonhull/musicfarm/internal/types"
)

// atomHeaderSize is the size of a compact atom header (size + type).
const atomHeaderSize = 8

// Atom represents an MP4 atom (box) header
type Atom struct {
	Size     uint64 // Total size including header
	Type     string // 4-character type code
	Offset   int64  // Position in stream
	Extended bool   // Whether this uses 64-bit extended size
}

// readAtomHeader reads the atom header at the current stream position.
func readAtomHeader(s *binutil.Stream) (*Atom, error) {
	offset := s.Offset()

	buf := make([]byte, atomHeaderSize)
	if err := s.ReadFull(buf, "atom header"); err != nil {
		return nil, err
	}

	atom := &Atom{
		Size:   uint64(binutil.Uint32(buf[0:4])),
		Type:   string(buf[4:8]),
		Offset: offset,
	}

	// Handle extended size (size == 1 means 64-bit size follows)
	if atom.Size == 1 {
		ext := make([]byte, 8)
		if err := s.ReadFull(ext, "extended atom size"); err != nil {
			return nil, err
		}
		atom.Size = uint64(binutil.Uint32(ext[0:4]))<<32 | uint64(binutil.Uint32(ext[4:8]))
		atom.Extended = true
	}

	// Size 0 means "extends to end of file" and is left alone.
	if atom.Size != 0 && atom.Size < atomHeaderSize {
		return nil, &types.CorruptFrameError{
			Path:   s.Path(),
			ID:     atom.Type,
			Offset: offset,
			Reason: fmt.Sprintf("invalid atom size %d (minimum is %d)", atom.Size, atomHeaderSize),
		}
	}

	return atom, nil
}

package mp4

import (
	"errors"
	"io"

	"github.com/dhowden/tag"

	binutil "github.com/simonhull/musicfarm/internal/binary"
	"github.com/simonhull/musicfarm/internal/registry"
	"github.com/simonhull/musicfarm/internal/types"
)

// Prober recognizes MP4 files by their leading ftyp atom and reads their
// metadata atoms.
type Prober struct{}

// Container reports ContainerMP4.
func (Prober) Container() types.Container {
	return types.ContainerMP4
}

// TryParse reads MP4 metadata from the current position of r.
//
// Streams that do not open with an ftyp atom are handed back untouched.
// Once the ftyp atom is seen the container counts as present, so metadata
// the atom reader cannot make sense of yields an empty Tags.
func (Prober) TryParse(r io.ReadSeeker) (*types.Tags, error) {
	s, err := binutil.NewStream(r, "")
	if err != nil {
		return nil, err
	}

	atom, err := readAtomHeader(s)
	if err != nil || atom.Type != "ftyp" {
		if rerr := s.Rewind(); rerr != nil {
			return nil, rerr
		}
		if err != nil && !isFormatError(err) {
			return nil, err
		}
		return nil, nil
	}

	if err := s.Rewind(); err != nil {
		return nil, err
	}

	m, err := tag.ReadAtoms(r)
	if err != nil {
		return &types.Tags{}, nil
	}
	return fromMetadata(m), nil
}

// isFormatError reports whether err means "not an MP4 stream" rather than
// a failing reader.
func isFormatError(err error) bool {
	var corrupt *types.CorruptFrameError
	return binutil.IsTruncated(err) || errors.As(err, &corrupt)
}

// fromMetadata maps library metadata onto Tags.
func fromMetadata(m tag.Metadata) *types.Tags {
	tags := &types.Tags{
		Artist: m.Artist(),
		Album:  m.Album(),
		Title:  m.Title(),
	}
	tags.Track, _ = m.Track()
	tags.Disk, tags.TotalDisks = m.Disc()

	if g := m.Genre(); g != "" {
		tags.Add("genre", g)
	}
	if a := m.AlbumArtist(); a != "" {
		tags.Add("album_artist", a)
	}
	return tags
}

// init registers the MP4 prober
func init() {
	registry.Register(types.ContainerMP4, Prober{})
}

// Package flac reads Vorbis comments from native FLAC streams.
package flac

import (
	"io"

	"github.com/dhowden/tag"

	binutil "github.com/simonhull/musicfarm/internal/binary"
	"github.com/simonhull/musicfarm/internal/registry"
	"github.com/simonhull/musicfarm/internal/types"
)

// magic opens every native FLAC stream.
const magic = "fLaC"

// Prober recognizes FLAC streams by their magic and reads the Vorbis
// comment block.
type Prober struct{}

// Container reports ContainerFLAC.
func (Prober) Container() types.Container {
	return types.ContainerFLAC
}

// TryParse reads FLAC metadata from the current position of r.
//
// Streams without the fLaC magic are handed back untouched. A FLAC stream
// whose metadata blocks cannot be read yields an empty Tags.
func (Prober) TryParse(r io.ReadSeeker) (*types.Tags, error) {
	s, err := binutil.NewStream(r, "")
	if err != nil {
		return nil, err
	}

	buf := make([]byte, len(magic))
	err = s.ReadFull(buf, "FLAC magic")
	if rerr := s.Rewind(); rerr != nil {
		return nil, rerr
	}
	if err != nil {
		if binutil.IsTruncated(err) {
			return nil, nil
		}
		return nil, err
	}
	if string(buf) != magic {
		return nil, nil
	}

	m, err := tag.ReadFLACTags(r)
	if err != nil {
		return &types.Tags{}, nil
	}

	tags := &types.Tags{
		Artist: m.Artist(),
		Album:  m.Album(),
		Title:  m.Title(),
	}
	tags.Track, _ = m.Track()
	tags.Disk, tags.TotalDisks = m.Disc()

	if g := m.Genre(); g != "" {
		tags.Add("GENRE", g)
	}
	return tags, nil
}

// init registers the FLAC prober
func init() {
	registry.Register(types.ContainerFLAC, Prober{})
}

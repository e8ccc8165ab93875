// Package id3v2 decodes ID3v2.2, ID3v2.3 and ID3v2.4 tags.
//
// Only the frames needed to file music by artist and album are mapped
// onto typed fields (title, artist, album, track, disc); other text frames
// are kept as raw values. Damaged tags never fail a parse: the frame walk
// stops at the first frame it cannot trust and returns what it has.
package id3v2

import (
	"errors"
	"fmt"
	"io"

	binutil "github.com/simonhull/musicfarm/internal/binary"
	"github.com/simonhull/musicfarm/internal/registry"
	"github.com/simonhull/musicfarm/internal/types"
)

// Decoder parses ID3v2 tags from seekable streams.
//
// The zero value is ready to use. A Decoder is not safe for concurrent
// use; give each goroutine its own.
type Decoder struct {
	// Path names the stream in warnings and errors. Optional.
	Path string

	// OnFrame, if set, is called for every accepted frame after its
	// identifier has been normalized. The frame must not be retained.
	OnFrame func(h *Header, f *Frame)

	// Warnings collects non-fatal issues from the last Decode call.
	Warnings []types.Warning
}

// ParseTags decodes the ID3v2 tag at the current position of r.
//
// A nil Tags with a nil error means no tag was found and r has been
// rewound. A tag that holds no usable frames yields an empty, non-nil Tags.
func ParseTags(r io.ReadSeeker) (*types.Tags, error) {
	var d Decoder
	return d.Decode(r)
}

// Decode decodes the ID3v2 tag at the current position of r.
//
// See ParseTags for the meaning of the results. Issues such as corrupt or
// truncated frames end the frame walk and are recorded in d.Warnings.
func (d *Decoder) Decode(r io.ReadSeeker) (*types.Tags, error) {
	d.Warnings = d.Warnings[:0]

	s, err := binutil.NewStream(r, d.Path)
	if err != nil {
		return nil, err
	}

	header, err := readHeader(s)
	if err != nil || header == nil {
		return nil, err
	}

	tags := &types.Tags{}

	if header.ExtendedHeader {
		d.warn("header", s.Offset(), (&types.UnsupportedTagError{
			Path:   d.Path,
			Reason: "extended header present, tag skipped",
		}).Error())
		return tags, nil
	}

	l, ok := layoutFor(header.Major)
	if !ok {
		d.warn("header", s.Offset(), (&types.UnsupportedTagError{
			Path:   d.Path,
			Reason: fmt.Sprintf("unsupported ID3v2 version: 2.%d", header.Major),
		}).Error())
		return tags, nil
	}

	fr := newFrameReader(s, l, header.BodyLength)
	for {
		frame, err := fr.next()
		if err != nil {
			if !d.recover(err) {
				return nil, err
			}
			break
		}
		if frame == nil {
			break
		}

		frame.ID = normalizeID(header.Major, frame.ID)
		if d.OnFrame != nil {
			d.OnFrame(header, frame)
		}
		assemble(tags, frame)
	}

	return tags, nil
}

// recover turns a damaged-tag error into a warning. It reports false for
// errors from the underlying reader, which must be returned to the caller.
func (d *Decoder) recover(err error) bool {
	var corrupt *types.CorruptFrameError
	if errors.As(err, &corrupt) {
		d.warn("frame", corrupt.Offset, err.Error())
		return true
	}

	var truncated *types.TruncatedError
	if errors.As(err, &truncated) {
		d.warn("frame", truncated.Offset, err.Error())
		return true
	}

	return false
}

func (d *Decoder) warn(stage string, offset int64, msg string) {
	d.Warnings = append(d.Warnings, types.Warning{
		Stage:   stage,
		Message: msg,
		Offset:  offset,
	})
}

// Prober adapts the decoder to the tag prober chain.
type Prober struct{}

// Container reports ContainerID3v2.
func (Prober) Container() types.Container {
	return types.ContainerID3v2
}

// TryParse decodes the ID3v2 tag at the current position of r.
func (Prober) TryParse(r io.ReadSeeker) (*types.Tags, error) {
	return ParseTags(r)
}

// init registers the ID3v2 prober
func init() {
	registry.Register(types.ContainerID3v2, Prober{})
}

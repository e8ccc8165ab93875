package id3v2

import (
	"math"
	"strings"

	"github.com/simonhull/musicfarm/internal/types"
)

// assemble maps a frame with a canonical identifier onto tags.
//
// Only text-information frames ("T...") are decoded; everything else has
// already been read off the stream and is dropped here.
func assemble(tags *types.Tags, f *Frame) {
	if !strings.HasPrefix(f.ID, "T") {
		return
	}

	text := decodeTextFrame(f.Data)
	if text == "" {
		return
	}
	tags.Add(f.ID, text)

	switch f.ID {
	case "TIT2": // Title
		tags.Title = text
	case "TPE1": // Artist
		tags.Artist = text
	case "TALB": // Album
		tags.Album = text
	case "TRCK": // Track number, "/total" ignored
		tags.Track = leadingInt(text)
	case "TPOS": // Disc number/total
		tags.Disk = leadingInt(text)
		if _, total, ok := strings.Cut(text, "/"); ok {
			tags.TotalDisks = leadingInt(total)
		}
	}
}

// leadingInt parses the base-10 integer at the start of s the way C's
// atoi does: leading white space and one sign are accepted, parsing stops
// at the first non-digit, and text without leading digits yields 0.
// Values are clamped to the int32 range.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
			break
		}
	}

	if neg {
		return -n
	}
	return n
}

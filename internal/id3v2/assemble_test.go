package id3v2

import (
	"math"
	"testing"

	"github.com/simonhull/musicfarm/internal/types"
)

func textFrame(id, text string) *Frame {
	data := latin1(text)
	return &Frame{ID: id, Size: uint32(len(data)), Data: data}
}

func TestAssemble_TextFields(t *testing.T) {
	tags := &types.Tags{}
	assemble(tags, textFrame("TIT2", "Blue in Green"))
	assemble(tags, textFrame("TPE1", "Miles Davis"))
	assemble(tags, textFrame("TALB", "Kind of Blue"))

	if tags.Title != "Blue in Green" {
		t.Errorf("Title = %q", tags.Title)
	}
	if tags.Artist != "Miles Davis" {
		t.Errorf("Artist = %q", tags.Artist)
	}
	if tags.Album != "Kind of Blue" {
		t.Errorf("Album = %q", tags.Album)
	}
}

func TestAssemble_Numbers(t *testing.T) {
	tests := []struct {
		name       string
		frame      *Frame
		track      int
		disk       int
		totalDisks int
	}{
		{"track with total", textFrame("TRCK", "7/12"), 7, 0, 0},
		{"track plain", textFrame("TRCK", "3"), 3, 0, 0},
		{"track non-numeric", textFrame("TRCK", "A1"), 0, 0, 0},
		{"track leading space", textFrame("TRCK", "  9"), 9, 0, 0},
		{"disc with total", textFrame("TPOS", "1/2"), 0, 1, 2},
		{"disc without total", textFrame("TPOS", "2"), 0, 2, 0},
		{"disc bad total", textFrame("TPOS", "1/x"), 0, 1, 0},
		{"disc only total", textFrame("TPOS", "/3"), 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := &types.Tags{}
			assemble(tags, tt.frame)
			if tags.Track != tt.track || tags.Disk != tt.disk || tags.TotalDisks != tt.totalDisks {
				t.Errorf("track/disk/total = %d/%d/%d, want %d/%d/%d",
					tags.Track, tags.Disk, tags.TotalDisks, tt.track, tt.disk, tt.totalDisks)
			}
		})
	}
}

func TestAssemble_IgnoresUnknownAndNonText(t *testing.T) {
	tags := &types.Tags{}
	assemble(tags, &Frame{ID: "APIC", Size: 3, Data: []byte{0x00, 'x', 'y'}})
	assemble(tags, &Frame{ID: "COMM", Size: 3, Data: []byte{0x00, 'x', 'y'}})

	if !tags.IsEmpty() {
		t.Errorf("tags = %+v, want empty", tags)
	}
	if got := tags.Get("APIC"); got != nil {
		t.Errorf("non-text frame recorded as raw: %v", got)
	}
}

func TestAssemble_RawTextFrames(t *testing.T) {
	tags := &types.Tags{}
	assemble(tags, textFrame("TCON", "Jazz"))

	if !tags.IsEmpty() {
		t.Errorf("TCON set a standard field: %+v", tags)
	}
	if got := tags.GetFirst("TCON"); got != "Jazz" {
		t.Errorf("GetFirst(TCON) = %q, want Jazz", got)
	}
}

func TestAssemble_EmptyTextLeavesFieldUnset(t *testing.T) {
	tags := &types.Tags{Title: "Kept"}
	assemble(tags, &Frame{ID: "TIT2", Size: 3, Data: []byte{0x01, 0xFF, 0xFE}})

	if tags.Title != "Kept" {
		t.Errorf("Title = %q, want Kept", tags.Title)
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"0", 0},
		{"42", 42},
		{"7/12", 7},
		{"  5", 5},
		{"\t8x", 8},
		{"+3", 3},
		{"-4", -4},
		{"abc", 0},
		{"-", 0},
		{"99999999999999", math.MaxInt32},
	}

	for _, tt := range tests {
		if got := leadingInt(tt.input); got != tt.want {
			t.Errorf("leadingInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

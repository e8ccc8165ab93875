package farm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simonhull/musicfarm/internal/types"
)

func newSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestTrackName(t *testing.T) {
	tests := []struct {
		path string
		tags types.Tags
		want string
	}{
		{"/m/a.mp3", types.Tags{Track: 3, Title: "Song"}, "3_Song.mp3"},
		{"/m/a", types.Tags{Title: "Song"}, "0_Song"},
		{"/m/a.flac", types.Tags{Track: 12, Title: "AC/DC"}, "12_AC_DC.flac"},
	}

	for _, tt := range tests {
		if got := TrackName(tt.path, &tt.tags); got != tt.want {
			t.Errorf("TrackName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"Plain":  "Plain",
		"a/b":    "a_b",
		"..":     "__",
		".":      "_",
		"x\x00y": "x_y",
		"../etc": ".._etc",
	}
	for in, want := range tests {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlace_Symlinks(t *testing.T) {
	src := newSource(t, "song.mp3")
	root := t.TempDir()
	l := NewLinker(Config{Root: root}, zerolog.Nop())

	tags := &types.Tags{Artist: "Artist", Album: "Album", Title: "Title", Track: 2}
	placed, err := l.Place(src, tags)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "albums", "Album", "2_Title.mp3"),
		filepath.Join(root, "artists", "Artist", "Album", "2_Title.mp3"),
	}
	if len(placed) != len(want) {
		t.Fatalf("placed = %v, want %v", placed, want)
	}
	for i, p := range want {
		if placed[i] != p {
			t.Errorf("placed[%d] = %q, want %q", i, placed[i], p)
		}
		got, err := os.Readlink(p)
		if err != nil {
			t.Fatalf("Readlink(%s) error = %v", p, err)
		}
		if got != src {
			t.Errorf("link %s -> %q, want %q", p, got, src)
		}
	}

	info, err := os.Stat(filepath.Join(root, "albums", "Album"))
	if err != nil {
		t.Fatalf("stat album dir: %v", err)
	}
	if !info.IsDir() {
		t.Error("album path is not a directory")
	}
}

func TestPlace_Hardlink(t *testing.T) {
	src := newSource(t, "song.mp3")
	root := t.TempDir()
	l := NewLinker(Config{Root: root, Hardlink: true}, zerolog.Nop())

	_, err := l.Place(src, &types.Tags{Album: "Album", Title: "Title"})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	dest := filepath.Join(root, "albums", "Album", "0_Title.mp3")
	srcInfo, _ := os.Stat(src)
	destInfo, err := os.Lstat(dest)
	if err != nil {
		t.Fatalf("Lstat(%s) error = %v", dest, err)
	}
	if destInfo.Mode()&os.ModeSymlink != 0 {
		t.Error("hardlink mode created a symlink")
	}
	if !os.SameFile(srcInfo, destInfo) {
		t.Error("hardlink does not refer to source file")
	}
}

func TestPlace_MissingFields(t *testing.T) {
	src := newSource(t, "song.mp3")

	tests := []struct {
		name       string
		tags       *types.Tags
		wantPlaced int
		wantLog    string
	}{
		{"nil tags", nil, 0, "no title"},
		{"no title", &types.Tags{Artist: "A", Album: "B"}, 0, "no title"},
		{"no album", &types.Tags{Artist: "A", Title: "T"}, 0, "no album link"},
		{"no artist", &types.Tags{Album: "B", Title: "T"}, 1, "no artist link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			root := t.TempDir()
			l := NewLinker(Config{Root: root}, zerolog.New(&buf).Level(zerolog.DebugLevel))

			placed, err := l.Place(src, tt.tags)
			if err != nil {
				t.Fatalf("Place() error = %v", err)
			}
			if len(placed) != tt.wantPlaced {
				t.Errorf("placed = %v, want %d links", placed, tt.wantPlaced)
			}
			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log = %q, want it to contain %q", buf.String(), tt.wantLog)
			}
			if tt.name == "no album" {
				if _, err := os.Stat(filepath.Join(root, "artists")); !os.IsNotExist(err) {
					t.Error("artist link created without album")
				}
			}
		})
	}
}

func TestPlace_Idempotent(t *testing.T) {
	src := newSource(t, "song.mp3")
	l := NewLinker(Config{Root: t.TempDir()}, zerolog.Nop())
	tags := &types.Tags{Artist: "A", Album: "B", Title: "T"}

	first, err := l.Place(src, tags)
	if err != nil {
		t.Fatalf("first Place() error = %v", err)
	}
	second, err := l.Place(src, tags)
	if err != nil {
		t.Fatalf("second Place() error = %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("placed %d then %d links, want 2 each", len(first), len(second))
	}
}

func TestPlace_DryRun(t *testing.T) {
	src := newSource(t, "song.mp3")
	root := filepath.Join(t.TempDir(), "farm")

	var buf bytes.Buffer
	l := NewLinker(Config{Root: root, DryRun: true}, zerolog.New(&buf))

	placed, err := l.Place(src, &types.Tags{Artist: "A", Album: "B", Title: "T"})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if len(placed) != 2 {
		t.Errorf("placed = %v, want 2 planned links", placed)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Error("dry run created the farm root")
	}
	if !strings.Contains(buf.String(), "would link") {
		t.Errorf("log = %q, want planned links", buf.String())
	}
}

func TestPlace_Unwritable(t *testing.T) {
	src := newSource(t, "song.mp3")

	// A regular file where the albums directory should go.
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "albums"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLinker(Config{Root: root}, zerolog.Nop())
	placed, err := l.Place(src, &types.Tags{Artist: "A", Album: "B", Title: "T"})
	if err == nil {
		t.Fatal("Place() error = nil, want error")
	}
	if len(placed) != 1 || !strings.Contains(placed[0], "artists") {
		t.Errorf("placed = %v, want only the artist link", placed)
	}
}

func TestPlace_Collision(t *testing.T) {
	tests := []struct {
		name     string
		hardlink bool
	}{
		{"symlink", false},
		{"hardlink", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := newSource(t, "a.mp3")
			second := newSource(t, "b.mp3")
			root := t.TempDir()

			var buf bytes.Buffer
			l := NewLinker(Config{Root: root, Hardlink: tt.hardlink}, zerolog.New(&buf))
			tags := &types.Tags{Album: "Album", Title: "Intro"}

			if _, err := l.Place(first, tags); err != nil {
				t.Fatalf("first Place() error = %v", err)
			}

			placed, err := l.Place(second, tags)
			if !errors.Is(err, ErrCollision) {
				t.Fatalf("second Place() error = %v, want ErrCollision", err)
			}
			if len(placed) != 0 {
				t.Errorf("placed = %v, want none", placed)
			}
			if !strings.Contains(buf.String(), "link collision") {
				t.Errorf("log = %q, want collision warning", buf.String())
			}

			// The first file keeps the name.
			dest := filepath.Join(root, "albums", "Album", "0_Intro.mp3")
			firstInfo, _ := os.Stat(first)
			destInfo, err := os.Stat(dest)
			if err != nil {
				t.Fatalf("Stat(%s) error = %v", dest, err)
			}
			if !os.SameFile(firstInfo, destInfo) {
				t.Error("collision replaced the existing link")
			}
		})
	}
}

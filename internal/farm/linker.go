// Package farm places links to tagged files under an albums/ and an
// artists/ hierarchy.
package farm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/simonhull/musicfarm/internal/types"
)

// DirMode is the permission used for directories created in the farm.
const DirMode = 0o755

// ErrCollision is returned when a link name is already taken by a link to
// a different file.
var ErrCollision = errors.New("link name taken by another file")

// Config controls link placement.
type Config struct {
	Root     string // Farm root
	Hardlink bool   // Use hard links instead of symbolic links
	DryRun   bool   // Log placements without creating anything
}

// Linker places links for tagged files. It is safe for concurrent use.
type Linker struct {
	cfg Config
	log zerolog.Logger
}

// NewLinker creates a Linker rooted at cfg.Root.
func NewLinker(cfg Config, log zerolog.Logger) *Linker {
	return &Linker{cfg: cfg, log: log}
}

// Root returns the farm root.
func (l *Linker) Root() string {
	return l.cfg.Root
}

// Place links path into the farm according to t and returns the link
// paths that now point at it.
//
// Nothing is placed without a title. The album link needs an album, the
// artist link needs both artist and album. A link that already refers to
// path is left alone and reported as placed; a name taken by another file
// fails with ErrCollision. Failures for one link do not stop
// the other; all of them are returned joined.
func (l *Linker) Place(path string, t *types.Tags) ([]string, error) {
	if t == nil || t.Title == "" {
		l.log.Debug().Str("path", path).Msg("no title, nothing to link")
		return nil, nil
	}

	target := path
	if !l.cfg.Hardlink {
		// Symlink targets resolve relative to the link, not the cwd.
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		target = abs
	}

	name := TrackName(path, t)

	var (
		placed []string
		errs   []error
	)

	if t.Album != "" {
		dir := filepath.Join(l.cfg.Root, "albums", sanitize(t.Album))
		if err := l.link(target, dir, name); err != nil {
			errs = append(errs, err)
		} else {
			placed = append(placed, filepath.Join(dir, name))
		}
	} else {
		l.log.Debug().Str("path", path).Msg("no album link")
	}

	if t.Artist != "" && t.Album != "" {
		dir := filepath.Join(l.cfg.Root, "artists", sanitize(t.Artist), sanitize(t.Album))
		if err := l.link(target, dir, name); err != nil {
			errs = append(errs, err)
		} else {
			placed = append(placed, filepath.Join(dir, name))
		}
	} else {
		l.log.Debug().Str("path", path).Msg("no artist link")
	}

	return placed, errors.Join(errs...)
}

func (l *Linker) link(target, dir, name string) error {
	dest := filepath.Join(dir, name)

	if l.cfg.DryRun {
		l.log.Info().Str("target", target).Str("link", dest).Bool("hardlink", l.cfg.Hardlink).Msg("would link")
		return nil
	}

	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	var err error
	if l.cfg.Hardlink {
		err = os.Link(target, dest)
	} else {
		err = os.Symlink(target, dest)
	}
	switch {
	case err == nil:
		l.log.Debug().Str("target", target).Str("link", dest).Msg("linked")
		return nil
	case errors.Is(err, os.ErrExist):
		same, serr := l.pointsAt(dest, target)
		if serr != nil {
			return fmt.Errorf("link %s: %w", dest, serr)
		}
		if !same {
			l.log.Warn().Str("target", target).Str("link", dest).Msg("link collision")
			return fmt.Errorf("link %s: %w", dest, ErrCollision)
		}
		l.log.Debug().Str("link", dest).Msg("link exists")
		return nil
	default:
		return fmt.Errorf("link %s: %w", dest, err)
	}
}

// pointsAt reports whether the existing entry at dest already refers to
// target.
func (l *Linker) pointsAt(dest, target string) (bool, error) {
	if !l.cfg.Hardlink {
		got, err := os.Readlink(dest)
		if err != nil {
			// A regular file or directory sits where the link should go.
			return false, nil
		}
		return got == target, nil
	}

	want, err := os.Stat(target)
	if err != nil {
		return false, err
	}
	got, err := os.Lstat(dest)
	if err != nil {
		return false, err
	}
	return os.SameFile(want, got), nil
}

// TrackName returns the file name used for path in the farm:
// "<track>_<title><ext>", with ext taken from path.
func TrackName(path string, t *types.Tags) string {
	return fmt.Sprintf("%d_%s%s", t.Track, sanitize(t.Title), filepath.Ext(path))
}

// sanitize keeps tag text to a single path element.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '/' || r == os.PathSeparator || r == 0 {
			return '_'
		}
		return r
	}, s)
	switch s {
	case ".", "..":
		return strings.Repeat("_", len(s))
	}
	return s
}

// Package walk scans a music tree and places every tagged file in the
// link farm.
package walk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/musicfarm/internal/farm"
	"github.com/simonhull/musicfarm/internal/registry"
)

// Config controls a walk.
type Config struct {
	Root       string   // Tree to scan
	Extensions []string // Lower-case extensions to scan; empty scans every file
	Workers    int      // Files processed concurrently; 0 means NumCPU
}

// Stats counts the outcome of a walk.
type Stats struct {
	Scanned int64 // Regular files probed
	Tagged  int64 // Files a prober found a tag container in
	Linked  int64 // Links placed (or planned in a dry run)
	Failed  int64 // Files that could not be read or linked
}

// Walker probes files and hands their tags to a Linker.
type Walker struct {
	cfg    Config
	chain  registry.Chain
	linker *farm.Linker
	log    zerolog.Logger

	scanned atomic.Int64
	tagged  atomic.Int64
	linked  atomic.Int64
	failed  atomic.Int64
}

// New creates a Walker.
func New(cfg Config, chain registry.Chain, linker *farm.Linker, log zerolog.Logger) *Walker {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Walker{
		cfg:    cfg,
		chain:  chain,
		linker: linker,
		log:    log,
	}
}

// Stats returns the counters accumulated so far.
func (w *Walker) Stats() Stats {
	return Stats{
		Scanned: w.scanned.Load(),
		Tagged:  w.tagged.Load(),
		Linked:  w.linked.Load(),
		Failed:  w.failed.Load(),
	}
}

// Run walks the configured root and processes every matching regular
// file.
//
// Failures on individual files are logged and counted, not returned. Run
// returns an error only when the root cannot be walked or ctx is done.
// The farm root is skipped when it lies inside the scanned tree.
func (w *Walker) Run(ctx context.Context) (Stats, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Workers)

	farmRoot := ""
	if w.linker != nil {
		farmRoot = filepath.Clean(w.linker.Root())
	}

	walkErr := filepath.WalkDir(w.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.cfg.Root {
				return err
			}
			w.log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if farmRoot != "" && filepath.Clean(path) == farmRoot && path != w.cfg.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !w.wants(path) {
			return nil
		}

		g.Go(func() error {
			if err := w.File(ctx, path); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				w.log.Error().Err(err).Str("path", path).Msg("failed")
			}
			return nil
		})
		return nil
	})

	waitErr := g.Wait()
	if walkErr != nil {
		return w.Stats(), fmt.Errorf("walk %s: %w", w.cfg.Root, walkErr)
	}
	if waitErr != nil {
		return w.Stats(), waitErr
	}
	return w.Stats(), nil
}

// File probes a single file and places its links.
func (w *Walker) File(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.scanned.Add(1)

	f, err := os.Open(path)
	if err != nil {
		w.failed.Add(1)
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	tags, container, err := w.chain.Probe(f)
	if err != nil {
		w.failed.Add(1)
		return fmt.Errorf("probe: %w", err)
	}
	if tags == nil {
		w.log.Debug().Str("path", path).Msg("no tags for")
		return nil
	}
	w.tagged.Add(1)
	w.log.Debug().
		Str("path", path).
		Stringer("container", container).
		Str("artist", tags.Artist).
		Str("album", tags.Album).
		Str("title", tags.Title).
		Int("track", tags.Track).
		Msg("tags")

	if w.linker == nil {
		return nil
	}

	placed, err := w.linker.Place(path, tags)
	w.linked.Add(int64(len(placed)))
	if err != nil {
		w.failed.Add(1)
		return err
	}
	return nil
}

func (w *Walker) wants(path string) bool {
	if len(w.cfg.Extensions) == 0 {
		return true
	}
	return slices.Contains(w.cfg.Extensions, strings.ToLower(filepath.Ext(path)))
}

package musicfarm

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	_ "github.com/simonhull/musicfarm/internal/flac"  // Register FLAC prober
	_ "github.com/simonhull/musicfarm/internal/id3v2" // Register ID3v2 prober
	_ "github.com/simonhull/musicfarm/internal/mp4"   // Register MP4 prober
	"github.com/simonhull/musicfarm/internal/registry"
)

// Prober reads one kind of tag container. It is an alias to
// registry.Prober so custom probers can join the chain.
type Prober = registry.Prober

// DefaultProbers returns the built-in probers in the order they are
// tried: ID3v2, MP4, FLAC.
func DefaultProbers() []Prober {
	return registry.Ordered(ContainerID3v2, ContainerMP4, ContainerFLAC)
}

// Probe tries each prober against r in order, rewinding r to its current
// position before every attempt, and returns the first non-nil record.
//
// With no probers, DefaultProbers is used. A nil Tags with a nil error
// means no prober recognized the stream.
func Probe(r io.ReadSeeker, probers ...Prober) (*Tags, Container, error) {
	if len(probers) == 0 {
		probers = DefaultProbers()
	}
	return registry.Chain(probers).Probe(r)
}

// ReadFile opens path and probes it for tags.
//
// See Probe for the meaning of the results.
func ReadFile(path string, opts ...Option) (*Tags, Container, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ContainerUnknown, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tags, container, err := Probe(f, o.probers...)
	if err != nil {
		return nil, container, fmt.Errorf("%s: %w", path, err)
	}
	return tags, container, nil
}

// ReadMany probes multiple files concurrently.
//
// Results are returned in the same order as paths; an entry is nil when
// the file has no recognized tag container. The first error cancels the
// remaining reads and is returned alone.
//
// Example:
//
//	all, err := musicfarm.ReadMany(ctx, "a.mp3", "b.m4a", "c.flac")
//	if err != nil {
//		return err
//	}
func ReadMany(ctx context.Context, paths ...string) ([]*Tags, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Tags, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tags, _, err := ReadFile(path)
			if err != nil {
				return err
			}

			results[i] = tags
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Package registry manages the tag probers tried against each file.
package registry

import (
	"fmt"
	"io"
	"sync"

	"github.com/simonhull/musicfarm/internal/types"
)

// Prober reads one kind of tag container.
type Prober interface {
	// Container identifies the tag container this prober understands.
	Container() types.Container

	// TryParse reads tags from the current position of r.
	// A nil Tags with a nil error means the container is not present.
	// Errors are reserved for failures of the underlying reader.
	TryParse(r io.ReadSeeker) (*types.Tags, error)
}

var (
	mu      sync.RWMutex
	probers = make(map[types.Container]Prober)
)

// Register registers a prober for a container.
// This is called by container packages during initialization (init functions).
func Register(c types.Container, p Prober) {
	mu.Lock()
	defer mu.Unlock()
	probers[c] = p
}

// Get returns the prober for a given container.
// Returns nil if no prober is registered for the container.
func Get(c types.Container) Prober {
	mu.RLock()
	defer mu.RUnlock()
	return probers[c]
}

// Chain is an ordered list of probers. The first prober that finds its
// container wins.
type Chain []Prober

// Ordered builds a Chain from the registered probers, in the given order.
// Containers without a registered prober are skipped.
func Ordered(containers ...types.Container) Chain {
	chain := make(Chain, 0, len(containers))
	for _, c := range containers {
		if p := Get(c); p != nil {
			chain = append(chain, p)
		}
	}
	return chain
}

// Probe tries each prober in order against r, rewinding r to its entry
// offset before every attempt.
//
// It returns the tags and container of the first prober that finds its
// container. A nil Tags with a nil error means no prober recognized the
// stream.
func (c Chain) Probe(r io.ReadSeeker) (*types.Tags, types.Container, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, types.ContainerUnknown, fmt.Errorf("locate stream start: %w", err)
	}

	for _, p := range c {
		if _, err := r.Seek(start, io.SeekStart); err != nil {
			return nil, types.ContainerUnknown, fmt.Errorf("rewind for %s: %w", p.Container(), err)
		}

		tags, err := p.TryParse(r)
		if err != nil {
			return nil, p.Container(), fmt.Errorf("%s: %w", p.Container(), err)
		}
		if tags != nil {
			return tags, p.Container(), nil
		}
	}

	return nil, types.ContainerUnknown, nil
}

// Extensions returns the file extensions of every container in the chain.
func (c Chain) Extensions() []string {
	var exts []string
	for _, p := range c {
		exts = append(exts, p.Container().Extensions()...)
	}
	return exts
}

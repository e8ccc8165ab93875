package musicfarm

import (
	"github.com/simonhull/musicfarm/internal/types"
)

// Tags is an alias to types.Tags.
// Re-exporting from internal/types to maintain public API.
type Tags = types.Tags

// Container is an alias to types.Container.
type Container = types.Container

// Supported tag containers.
const (
	ContainerUnknown = types.ContainerUnknown
	ContainerID3v2   = types.ContainerID3v2
	ContainerMP4     = types.ContainerMP4
	ContainerFLAC    = types.ContainerFLAC
)

package musicfarm

import (
	"github.com/simonhull/musicfarm/internal/types"
)

// TruncatedError is an alias to types.TruncatedError.
// Re-exporting from internal/types to maintain public API.
type TruncatedError = types.TruncatedError

// CorruptFrameError is an alias to types.CorruptFrameError.
// Re-exporting from internal/types to maintain public API.
type CorruptFrameError = types.CorruptFrameError

// UnsupportedTagError is an alias to types.UnsupportedTagError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedTagError = types.UnsupportedTagError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning

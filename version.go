package musicfarm

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of musicfarm.
const Version = "0.1.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string // "unknown" outside a VCS build
	Modified  bool   // Built from a dirty tree
	GoVersion string
}

// String formats the info for a -version flag.
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if v.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("musicfarm %s (%s, %s)", v.Version, commit, v.GoVersion)
}

// GetVersionInfo returns version information.
//
// GitCommit comes from -ldflags "-X github.com/simonhull/musicfarm.gitCommit=..."
// when set, otherwise from the VCS stamp in the binary's build info.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Set at build time via -ldflags.
var gitCommit = "unknown"

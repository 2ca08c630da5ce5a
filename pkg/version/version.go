// Package version exposes build metadata for the deepsearch binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time via
// -ldflags "-X github.com/deepsearch-ai/deepsearch/pkg/version.Version=...".
// Local builds report "dev".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// BuildInfo is the JSON shape of `deepsearch version --json`.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// String returns the one-line human-readable version.
func String() string {
	return fmt.Sprintf("deepsearch %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}

// Short returns the bare version string.
func Short() string {
	return Version
}

// GetInfo returns the structured build metadata.
func GetInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

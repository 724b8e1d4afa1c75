// Package build provides version and build information for shnote.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import "runtime"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
// `shnote update` refuses to replace a dev build unless forced.
func IsDevBuild() bool {
	return Version == "dev"
}

// Platform returns the os/arch pair shnote was built for, e.g. linux/amd64.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

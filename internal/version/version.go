// Package version provides build-time version information for docvars.
package version

import "runtime/debug"

var (
	// Version is set with -ldflags "-X github.com/indaco/docvars/internal/version.Version=1.2.3".
	Version = ""
	// Commit is the git commit hash.
	Commit = "dev"
)

// GetVersion returns the linked version, the module version when installed
// with go install, or "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

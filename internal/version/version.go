// Package version reports build information stamped in by the linker.
package version

import "fmt"

// Populated via -ldflags -X by the mage build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build information for `hostcolor version`.
func String() string {
	return fmt.Sprintf("hostcolor %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}

// Package version provides build-time version information.
package version

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.2.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String returns "v<version> (<commit>, built <time>)".
func String() string {
	return "v" + Version + " (" + GitCommit + ", built " + BuildTime + ")"
}

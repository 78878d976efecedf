// Package version reports build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/rshade/carbonboard/pkg/version.version=v1.2.0"
package version

//nolint:gochecknoglobals // Set at link time.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string { return version }

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string { return gitCommit }

// GetBuildDate returns the build timestamp.
func GetBuildDate() string { return buildDate }

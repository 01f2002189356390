// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/matzehuels/jabu/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/jabu/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/jabu/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// UserAgent is the User-Agent header sent to remote repositories.
func UserAgent() string {
	return "jabu/" + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

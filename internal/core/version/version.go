// Package version stamps binaries with build metadata. Release builds set
// the variables below with -ldflags "-X promptcorrector/internal/core/version.version=v1.2.0"
package version

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is what a binary reports about itself
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// For labels the build with a binary name
func For(service string) BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}

// Info is For the API server
func Info() BuildInfo { return For("promptcorrector-api") }

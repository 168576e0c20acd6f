// Package version provides information about the build version of the service.
package version

// Service is the name reported by the meta endpoints and the logger
const Service = "spamjar-api"

// Version is the API version reported by /v1/health.
// Override at build time with -ldflags "-X 'spamjar/internal/core/version.Version=0.2.0'"
var Version = "0.1.0"

var (
	commit = "none"
	date   = "unknown"
)

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. commit and date are set via -ldflags
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: Version,
		Commit:  commit,
		Date:    date,
	}
}

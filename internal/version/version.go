package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/redhat-appstudio/my-microservice/internal/version.BuildVersion=v1.2.3"
var (
	BuildVersion = "v1.0.0"
	BuildTime    = "unknown"
	BuildCommit  = "unknown"
)

// GetVersion returns the raw build version, including the "v" prefix.
func GetVersion() string {
	return BuildVersion
}

// GetShortVersion returns the build version without the "v" prefix.
func GetShortVersion() string {
	return strings.TrimPrefix(BuildVersion, "v")
}

// ServiceVersion returns the version reported by the health endpoint.
// A configured value wins over the build version.
func ServiceVersion(configured string) string {
	if configured != "" {
		return configured
	}
	return GetShortVersion()
}

// GetBuildInfo returns version, build time, commit and Go runtime in one line.
func GetBuildInfo() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, go: %s)",
		BuildVersion, BuildTime, BuildCommit, runtime.Version())
}

// Package version reports which indexwiz build is running.
//
// Release builds stamp the values with the linker:
//
//	go build -ldflags "-X github.com/Aman-CERP/indexwiz/pkg/version.Version=1.2.0 \
//	  -X github.com/Aman-CERP/indexwiz/pkg/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/Aman-CERP/indexwiz/pkg/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	  ./cmd/indexwiz
//
// Builds without ldflags (go install, go run) fall back to the VCS stamp
// the Go toolchain embeds, when there is one.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Program is the binary name shown in version output.
const Program = "indexwiz"

var (
	// Version is the release version, "dev" when not stamped.
	Version = "dev"
	// Commit is the source revision.
	Commit = "unknown"
	// Date is the build or commit time, RFC3339.
	Date = "unknown"
	// GoVersion is the toolchain that built the binary.
	GoVersion = runtime.Version()
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(info.Settings)
	}
}

// applyBuildSettings fills Commit and Date from the toolchain's VCS
// settings unless the linker already set them.
func applyBuildSettings(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "unknown" && s.Value != "" {
				Commit = s.Value
				if len(Commit) > 12 {
					Commit = Commit[:12]
				}
			}
		case "vcs.time":
			if Date == "unknown" && s.Value != "" {
				Date = s.Value
			}
		}
	}
}

// BuildInfo is the `version --json` payload.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, go: %s)",
		Program, Version, Commit, Date, GoVersion)
}

// Short returns the version alone.
func Short() string {
	return Version
}

// GetInfo returns the build information.
func GetInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Name is the program name shown in the dashboard header and in CLI output.
const Name = "elysium"

// Version and Commit are stamped at build time:
//
//	go build -ldflags="-X github.com/muurk/elysium/internal/version.Version=0.3.0 \
//	                   -X github.com/muurk/elysium/internal/version.Commit=abc1234"
//
// Binaries produced by `go install ...@vX.Y.Z` pick the module version up from
// the embedded build info instead.
var (
	// Version is the semantic version without a leading "v"
	Version = ""
	// Commit is the short git revision
	Commit = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(info)
	}
	if Version == "" {
		Version = "0.0.0-dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo copies the module version and VCS revision from info into
// any of Version and Commit that are still empty.
func fillFromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	Version = strings.TrimPrefix(Version, "v")

	if Commit != "" {
		return
	}
	var revision string
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Title returns the dashboard title, e.g. "elysium - v0.3.0".
func Title() string {
	return fmt.Sprintf("%s - v%s", Name, Version)
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

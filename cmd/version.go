// Package cmd holds build metadata shared by the javafind binaries.
package cmd

import "runtime/debug"

// Set with -ldflags "-X github.com/thoreinstein/javafind/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo is the version stamp reported by `javafind version` and
// recorded in CycloneDX metadata.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Build returns the ldflags values. Builds made with `go install`, which
// carry no ldflags, fall back to the module version and VCS stamp.
func Build() BuildInfo {
	info := BuildInfo{Version: Version, Commit: Commit, Date: Date}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}

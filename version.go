/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enumb

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release metadata. GitCommit and BuildDate may be set with -ldflags -X;
// when left empty they are read from the VCS stamp of the running binary.
var (
	Version   = "0.1.0"
	GitCommit = ""
	BuildDate = ""
)

// VersionInfo describes the enumb build in use.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Modified  bool   `json:"modified,omitempty"`
}

// GetVersionInfo returns the release metadata, completed from the binary's
// build info. Fields that cannot be determined are "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}

// String formats v on one line, e.g. "0.1.0 (abc1234, go1.23.0)".
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if v.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", v.Version, commit, v.GoVersion)
}

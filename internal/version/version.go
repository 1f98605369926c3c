// Package version reports the planner build.
package version

import "runtime/debug"

// Version is the planner version. This can be overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

const shortCommitLength = 7

var readBuildInfo = debug.ReadBuildInfo

// String returns Version followed by +commit when a commit is known. Without
// a commit from ldflags, the VCS revision stamped by the go tool is used.
func String() string {
	commit := Commit
	if commit == "unknown" || commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	if len(commit) > shortCommitLength {
		commit = commit[:shortCommitLength]
	}
	return Version + "+" + commit
}

func vcsRevision() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

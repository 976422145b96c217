package versioninfo

import (
	"fmt"
	"strconv"
)

// The linker can only inject strings, so every variable here is a string
// even when the accessor exposes a bool or an int.
//
// Example:
//
//	go build -ldflags "$(gitversion emit --format ldflags --package github.com/oshokin/gitversion/versioninfo)"
var (
	// Version is the composed human-readable version string. It can be overridden via ldflags.
	Version = "0.0.0-dev"
	// Branch is the git branch name at build time (or "HEAD" for detached checkouts).
	Branch = "unknown"
	// FullHash is the full commit hash embedded at build time.
	FullHash = ""
	// ShortHash is the abbreviated commit hash embedded at build time.
	ShortHash = ""
	// Dirty is "true" when the working tree had uncommitted changes at build time.
	Dirty = "false"
	// Distance is the decimal number of commits since the most recent tag.
	Distance = "0"
	// Flag is an opaque build-configuration marker passed through from the
	// generator configuration. It is never interpreted.
	Flag = ""
)

// Info is an immutable snapshot of all embedded build metadata.
type Info struct {
	// VersionString is the composed human-readable version.
	VersionString string `json:"version_string"`
	// Branch is the branch name at build time.
	Branch string `json:"version_branch"`
	// FullHash is the full commit hash.
	FullHash string `json:"version_fullhash"`
	// ShortHash is the abbreviated commit hash.
	ShortHash string `json:"version_shorthash"`
	// IsDirty reports uncommitted changes at build time.
	IsDirty bool `json:"version_isdirty"`
	// Distance is the commit count since the most recent tag.
	Distance int `json:"version_distance"`
	// Flag is the opaque build-configuration marker.
	Flag string `json:"version_flag"`
}

// VersionString returns the composed human-readable version.
func VersionString() string {
	return Version
}

// VersionBranch returns the branch name at build time.
func VersionBranch() string {
	return Branch
}

// VersionFullHash returns the full commit hash.
func VersionFullHash() string {
	return FullHash
}

// VersionShortHash returns the abbreviated commit hash.
func VersionShortHash() string {
	return ShortHash
}

// VersionIsDirty reports whether the working tree had uncommitted changes
// at build time. Anything other than "true" counts as clean.
func VersionIsDirty() bool {
	return Dirty == "true"
}

// VersionDistance returns the number of commits since the most recent tag.
// Unparseable or negative injected values are reported as 0.
func VersionDistance() int {
	n, err := strconv.Atoi(Distance)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// VersionFlag returns the opaque build-configuration marker verbatim.
func VersionFlag() string {
	return Flag
}

// Get returns a snapshot of all embedded metadata.
func Get() Info {
	return Info{
		VersionString: VersionString(),
		Branch:        VersionBranch(),
		FullHash:      VersionFullHash(),
		ShortHash:     VersionShortHash(),
		IsDirty:       VersionIsDirty(),
		Distance:      VersionDistance(),
		Flag:          VersionFlag(),
	}
}

// Short returns only the composed version string.
func Short() string {
	return Version
}

// Full returns a human-readable one-liner with branch and commit.
func Full() string {
	return fmt.Sprintf("version: %s, branch: %s, commit: %s", Version, Branch, ShortHash)
}

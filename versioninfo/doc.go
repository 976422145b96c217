// Package versioninfo exposes build metadata derived from the state of the
// git checkout the binary was built from.
//
// Variables Version, Branch, FullHash, ShortHash, Dirty, Distance and Flag
// are injected at build time via Go ldflags (the `gitversion emit` command
// produces the flag string) and default to sensible values for local builds.
// Each field has a pure accessor that returns the same value for the whole
// process lifetime; Fprint renders the canonical seven-line report.
package versioninfo

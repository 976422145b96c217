// Package gitstate derives version metadata from a git checkout: branch,
// commit hashes, worktree dirtiness, the nearest reachable tag and the
// commit distance from it. The composed version string follows the
// configured template (git-describe style by default).
//
// The package works on go-git repositories, so callers can pass either an
// on-disk checkout (Open) or an in-memory repository in tests.
package gitstate

// Package show derives the current repository version state and displays
// it as a table, the canonical plain report, or JSON.
package show

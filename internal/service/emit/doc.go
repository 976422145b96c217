// Package emit derives the current repository version state and writes a
// build artifact: an ldflags chain, a generated Go source file, or an env
// file.
package emit

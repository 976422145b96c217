// Package render turns a collected repository state into build artifacts:
// an ldflags string for direct injection into `go build`, a generated Go
// source file assigning the versioninfo variables, or an env file for CI
// pipelines.
package render

// Package config defines generator settings read from .gitversion.yaml and
// provides helpers to load, validate and save them.
//
// The Config type holds the tag prefix, the version string template, the
// opaque flag value and the abbreviated hash length. A missing config file
// is not an error: defaults apply.
package config

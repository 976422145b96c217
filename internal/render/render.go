package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/oshokin/gitversion/internal/gitstate"
)

// Supported artifact formats.
const (
	// FormatGo emits a generated Go source file.
	FormatGo = "go"
	// FormatLDFlags emits a -X flag chain for `go build -ldflags`.
	FormatLDFlags = "ldflags"
	// FormatEnv emits GITVERSION_* key=value lines.
	FormatEnv = "env"
)

// DefaultPackagePath is the import path whose variables the ldflags
// artifact targets when none is given.
const DefaultPackagePath = "github.com/oshokin/gitversion/versioninfo"

// errUnknownFormat is returned for artifact formats this package does not produce.
var errUnknownFormat = errors.New("unknown artifact format")

// ldflagsVars pairs versioninfo variable names with state value extractors,
// in the order the flags are emitted.
var ldflagsVars = []struct {
	name  string
	value func(*gitstate.State) string
}{
	{"Version", func(s *gitstate.State) string { return s.VersionString }},
	{"Branch", func(s *gitstate.State) string { return s.Branch }},
	{"FullHash", func(s *gitstate.State) string { return s.FullHash }},
	{"ShortHash", func(s *gitstate.State) string { return s.ShortHash }},
	{"Dirty", func(s *gitstate.State) string { return strconv.FormatBool(s.Dirty) }},
	{"Distance", func(s *gitstate.State) string { return strconv.Itoa(s.Distance) }},
	{"Flag", func(s *gitstate.State) string { return s.Flag }},
}

// goFileTemplate renders the generated Go source artifact.
var goFileTemplate = template.Must(template.New("gofile").Parse(`// Code generated by gitversion. DO NOT EDIT.

package {{.Package}}

// Build metadata captured at generation time.
var (
	Version   = {{printf "%q" .State.VersionString}}
	Branch    = {{printf "%q" .State.Branch}}
	FullHash  = {{printf "%q" .State.FullHash}}
	ShortHash = {{printf "%q" .State.ShortHash}}
	Dirty     = {{printf "%q" .DirtyString}}
	Distance  = {{printf "%q" .DistanceString}}
	Flag      = {{printf "%q" .State.Flag}}
)
`))

// Artifact renders the state in the requested format. pkg is the target
// import path for ldflags and the package name for generated Go source;
// the env format ignores it.
func Artifact(format, pkg string, state *gitstate.State) ([]byte, error) {
	switch format {
	case FormatLDFlags:
		if pkg == "" {
			pkg = DefaultPackagePath
		}

		return []byte(LDFlags(pkg, state)), nil
	case FormatGo:
		if pkg == "" {
			pkg = "versioninfo"
		}

		return GoFile(pkg, state)
	case FormatEnv:
		return []byte(EnvFile(state)), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// LDFlags renders a single-line -X flag chain targeting the variables of
// the package at importPath.
func LDFlags(importPath string, state *gitstate.State) string {
	flags := make([]string, 0, len(ldflagsVars))
	for _, v := range ldflagsVars {
		flags = append(flags, fmt.Sprintf("-X '%s.%s=%s'", importPath, v.name, v.value(state)))
	}

	return strings.Join(flags, " ")
}

// GoFile renders a generated Go source file declaring the version
// variables inside the named package.
func GoFile(pkgName string, state *gitstate.State) ([]byte, error) {
	var sb strings.Builder

	err := goFileTemplate.Execute(&sb, struct {
		Package        string
		State          *gitstate.State
		DirtyString    string
		DistanceString string
	}{
		Package:        pkgName,
		State:          state,
		DirtyString:    strconv.FormatBool(state.Dirty),
		DistanceString: strconv.Itoa(state.Distance),
	})
	if err != nil {
		return nil, fmt.Errorf("render go file: %w", err)
	}

	return []byte(sb.String()), nil
}

// EnvFile renders GITVERSION_* key=value lines for CI consumption.
func EnvFile(state *gitstate.State) string {
	lines := []string{
		"GITVERSION_STRING=" + state.VersionString,
		"GITVERSION_BRANCH=" + state.Branch,
		"GITVERSION_FULLHASH=" + state.FullHash,
		"GITVERSION_SHORTHASH=" + state.ShortHash,
		"GITVERSION_ISDIRTY=" + strconv.FormatBool(state.Dirty),
		"GITVERSION_DISTANCE=" + strconv.Itoa(state.Distance),
		"GITVERSION_FLAG=" + state.Flag,
	}

	return strings.Join(lines, "\n") + "\n"
}

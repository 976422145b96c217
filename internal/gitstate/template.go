package gitstate

import (
	"fmt"
	"strings"
	"text/template"
)

// ComposeVersion renders the human-readable version string for a state
// using the configured text/template. The template sees the State fields
// directly (Semver, Distance, ShortHash, FullHash, Dirty, Branch, Tag, Flag).
func ComposeVersion(tmpl string, state *State) (string, error) {
	parsed, err := template.New("version").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse version template: %w", err)
	}

	var sb strings.Builder
	if err := parsed.Execute(&sb, state); err != nil {
		return "", fmt.Errorf("render version template: %w", err)
	}

	return sb.String(), nil
}

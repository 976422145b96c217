package versioninfo

import (
	"fmt"
	"io"
)

// Report field labels, in the fixed order consumers rely on.
const (
	labelVersionString = "version_string"
	labelBranch        = "version_branch"
	labelFullHash      = "version_fullhash"
	labelShortHash     = "version_shorthash"
	labelIsDirty       = "version_isdirty"
	labelDistance      = "version_distance"
	labelFlag          = "version_flag"
)

// Fprint writes the canonical report for info to w: the header line
// followed by seven "- <field>: <value>" lines in fixed order. Every line,
// header included, is preceded by prefix (pass "" for none).
func Fprint(w io.Writer, header, prefix string, info Info) error {
	lines := []struct {
		label string
		value any
	}{
		{labelVersionString, info.VersionString},
		{labelBranch, info.Branch},
		{labelFullHash, info.FullHash},
		{labelShortHash, info.ShortHash},
		{labelIsDirty, info.IsDirty},
		{labelDistance, info.Distance},
		{labelFlag, info.Flag},
	}

	if _, err := fmt.Fprintf(w, "%s%s\n", prefix, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s- %s: %v\n", prefix, line.label, line.value); err != nil {
			return fmt.Errorf("write %s: %w", line.label, err)
		}
	}

	return nil
}

// Print writes the canonical report for the embedded metadata to w
// without a prefix.
func Print(w io.Writer, header string) error {
	return Fprint(w, header, "", Get())
}

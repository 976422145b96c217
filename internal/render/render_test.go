package render

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/gitversion/internal/gitstate"
)

func testState() *gitstate.State {
	return &gitstate.State{
		VersionString: "1.2.3-dirty",
		Branch:        "main",
		FullHash:      "abcdef1234567890",
		ShortHash:     "abcdef1",
		Dirty:         true,
		Distance:      5,
		Flag:          "debug",
	}
}

// TestLDFlags verifies the flag chain carries every variable with its value.
func TestLDFlags(t *testing.T) {
	t.Parallel()

	got := LDFlags("example.com/app/versioninfo", testState())

	require.Contains(t, got, "-X 'example.com/app/versioninfo.Version=1.2.3-dirty'")
	require.Contains(t, got, "-X 'example.com/app/versioninfo.Branch=main'")
	require.Contains(t, got, "-X 'example.com/app/versioninfo.FullHash=abcdef1234567890'")
	require.Contains(t, got, "-X 'example.com/app/versioninfo.ShortHash=abcdef1'")
	require.Contains(t, got, "-X 'example.com/app/versioninfo.Dirty=true'")
	require.Contains(t, got, "-X 'example.com/app/versioninfo.Distance=5'")
	require.Contains(t, got, "-X 'example.com/app/versioninfo.Flag=debug'")

	// Single line, shell-substitutable.
	require.NotContains(t, got, "\n")
}

// TestGoFile verifies the generated source parses and carries the values.
func TestGoFile(t *testing.T) {
	t.Parallel()

	data, err := GoFile("buildmeta", testState())
	require.NoError(t, err)

	src := string(data)
	require.True(t, strings.HasPrefix(src, "// Code generated by gitversion. DO NOT EDIT."))
	require.Contains(t, src, "package buildmeta")
	require.Contains(t, src, `Version   = "1.2.3-dirty"`)
	require.Contains(t, src, `Distance  = "5"`)
	require.Contains(t, src, `Dirty     = "true"`)

	_, err = parser.ParseFile(token.NewFileSet(), "buildmeta.go", src, 0)
	require.NoError(t, err, "generated source must be valid Go")
}

// TestEnvFile verifies the env artifact enumerates all seven fields.
func TestEnvFile(t *testing.T) {
	t.Parallel()

	got := EnvFile(testState())

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "GITVERSION_STRING=1.2.3-dirty", lines[0])
	require.Equal(t, "GITVERSION_ISDIRTY=true", lines[4])
	require.Equal(t, "GITVERSION_DISTANCE=5", lines[5])
	require.Equal(t, "GITVERSION_FLAG=debug", lines[6])
}

// TestArtifactDispatch covers the format switch and the unknown-format error.
func TestArtifactDispatch(t *testing.T) {
	t.Parallel()

	for _, format := range []string{FormatGo, FormatLDFlags, FormatEnv} {
		data, err := Artifact(format, "", testState())
		require.NoError(t, err)
		require.NotEmpty(t, data)
	}

	_, err := Artifact("xml", "", testState())
	require.Error(t, err)
}

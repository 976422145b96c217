package show

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates an on-disk repository with one tagged commit.
func initTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add("main.go")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	_, err = repo.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)

	return dir
}

func missingConfigPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "absent.yaml")
}

// TestRunPlainFormat verifies the canonical report rendering.
func TestRunPlainFormat(t *testing.T) {
	t.Parallel()

	dir := initTestRepo(t)

	var sb strings.Builder

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfigPath(t),
		RepoPath:   dir,
		Format:     FormatPlain,
		Out:        &sb,
	})
	require.NoError(t, err)

	out := sb.String()
	require.Contains(t, out, "- version_string: 1.0.0")
	require.Contains(t, out, "- version_branch: master")
	require.Contains(t, out, "- version_isdirty: false")
	require.Contains(t, out, "- version_distance: 0")
}

// TestRunJSONFormat verifies the snapshot decodes with the documented keys.
func TestRunJSONFormat(t *testing.T) {
	t.Parallel()

	dir := initTestRepo(t)

	var sb strings.Builder

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfigPath(t),
		RepoPath:   dir,
		Format:     FormatJSON,
		Out:        &sb,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &decoded))
	require.Equal(t, "1.0.0", decoded["version_string"])
	require.Equal(t, "master", decoded["version_branch"])
	require.Equal(t, false, decoded["version_isdirty"])
	require.Equal(t, float64(0), decoded["version_distance"])
}

// TestRunTableFormat verifies the default table rendering mentions every field.
func TestRunTableFormat(t *testing.T) {
	t.Parallel()

	dir := initTestRepo(t)

	var sb strings.Builder

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfigPath(t),
		RepoPath:   dir,
		Out:        &sb,
	})
	require.NoError(t, err)

	out := sb.String()
	for _, field := range []string{
		"version_string", "version_branch", "version_fullhash",
		"version_shorthash", "version_isdirty", "version_distance", "version_flag",
	} {
		require.Contains(t, out, field)
	}
}

// TestRunUnknownFormat covers the format validation error.
func TestRunUnknownFormat(t *testing.T) {
	t.Parallel()

	dir := initTestRepo(t)

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfigPath(t),
		RepoPath:   dir,
		Format:     "xml",
		Out:        &strings.Builder{},
	})
	require.ErrorIs(t, err, errUnknownFormat)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks template parsing, hash length bounds and defaulting.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil config.
	err := Validate(nil)
	require.Error(t, err)

	// Empty config picks up all defaults.
	cfg := new(Config)

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultTemplate, cfg.Template)
	require.Equal(t, DefaultShortHashLength, cfg.ShortHashLength)

	// Broken template.
	cfg = &Config{Template: "{{.Semver"}

	err = Validate(cfg)
	require.Error(t, err)

	// Hash length out of range.
	cfg = &Config{ShortHashLength: 2}

	err = Validate(cfg)
	require.Error(t, err)

	cfg = &Config{ShortHashLength: 41}

	err = Validate(cfg)
	require.Error(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		TagPrefix:       "release-",
		Flag:            "debug",
		ShortHashLength: 12,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.TagPrefix, loaded.TagPrefix)
	require.Equal(t, cfg.Flag, loaded.Flag)
	require.Equal(t, cfg.ShortHashLength, loaded.ShortHashLength)
	require.Equal(t, DefaultTemplate, loaded.Template)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadMissingFileUsesDefaults ensures an absent config file is not an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

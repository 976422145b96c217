package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Config holds the generator settings read from .gitversion.yaml.
type Config struct {
	// TagPrefix is stripped from tag names before they become the semver
	// component of the version string (e.g. "v" turns v1.2.3 into 1.2.3).
	TagPrefix string `yaml:"tag_prefix"`
	// Template composes the human-readable version string. It is a
	// text/template evaluated against gitstate.State.
	Template string `yaml:"template"`
	// Flag is an opaque build-configuration marker embedded verbatim into
	// consumers. Its meaning is up to the project; it is never interpreted.
	Flag string `yaml:"flag"`
	// ShortHashLength is the number of hex digits kept for the abbreviated
	// commit hash.
	ShortHashLength int `yaml:"short_hash_length"`
}

const (
	// DefaultConfigFilename is the default filename for generator settings.
	DefaultConfigFilename = ".gitversion.yaml"

	// DefaultTagPrefix is stripped from tags by default.
	DefaultTagPrefix = "v"

	// DefaultTemplate renders the tag's semver alone when HEAD sits exactly
	// on a tag, and a git-describe style string otherwise.
	DefaultTemplate = "{{.Semver}}{{if gt .Distance 0}}-{{.Distance}}-g{{.ShortHash}}{{end}}{{if .Dirty}}-dirty{{end}}"

	// DefaultShortHashLength matches git's default abbreviation.
	DefaultShortHashLength = 7

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// Abbreviated hash length bounds: shorter than 4 is ambiguous in any
	// real repository, longer than 40 exceeds a full SHA-1.
	minShortHashLength = 4
	maxShortHashLength = 40
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errShortHashLengthOutOfRange is returned for abbreviation lengths git cannot produce.
	errShortHashLengthOutOfRange = errors.New("short hash length must be between 4 and 40")
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		TagPrefix:       DefaultTagPrefix,
		Template:        DefaultTemplate,
		ShortHashLength: DefaultShortHashLength,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// A missing file is not an error: defaults apply so that any repository can
// be versioned without a config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings, filling in defaults for omitted fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}

	if _, err := template.New("version").Parse(cfg.Template); err != nil {
		return fmt.Errorf("invalid version template: %w", err)
	}

	if cfg.ShortHashLength == 0 {
		cfg.ShortHashLength = DefaultShortHashLength
	}

	if cfg.ShortHashLength < minShortHashLength || cfg.ShortHashLength > maxShortHashLength {
		return errShortHashLengthOutOfRange
	}

	return nil
}

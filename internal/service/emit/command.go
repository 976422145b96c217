package emit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/gitversion/internal/config"
	"github.com/oshokin/gitversion/internal/gitstate"
	"github.com/oshokin/gitversion/internal/logger"
	"github.com/oshokin/gitversion/internal/render"
)

// artifactFilePermissions applies to artifacts written to disk.
// Generated Go files must stay world-readable for the toolchain.
const artifactFilePermissions = 0o644

// Options contains inputs for the emit entry point.
type Options struct {
	// ConfigPath is an optional path to the generator settings (defaults to .gitversion.yaml).
	ConfigPath string
	// RepoPath is the directory whose containing repository is inspected.
	RepoPath string
	// Format selects the artifact: go, ldflags or env.
	Format string
	// PackagePath is the target import path (ldflags) or package name (go).
	PackagePath string
	// OutputPath is the file to write; empty writes to Out.
	OutputPath string
	// Out receives the artifact when no output path is given.
	Out io.Writer
}

// Run derives the repository state and writes the requested build artifact.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "gitversion-emit")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	repoPath := opts.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	repo, err := gitstate.Open(repoPath)
	if err != nil {
		return err
	}

	state, err := gitstate.Collect(ctx, repo, cfg)
	if err != nil {
		return fmt.Errorf("collect repository state: %w", err)
	}

	artifact, err := render.Artifact(opts.Format, opts.PackagePath, state)
	if err != nil {
		return err
	}

	if opts.OutputPath == "" {
		if _, err := opts.Out.Write(artifact); err != nil {
			return fmt.Errorf("write artifact: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(filepath.Clean(opts.OutputPath), artifact, artifactFilePermissions); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	logger.InfoKV(ctx, "artifact written", "format", opts.Format, "path", opts.OutputPath)

	return nil
}

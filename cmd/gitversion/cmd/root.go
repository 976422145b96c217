package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/gitversion/internal/config"
	"github.com/oshokin/gitversion/internal/logger"
	"github.com/oshokin/gitversion/internal/render"
	"github.com/oshokin/gitversion/internal/service/emit"
	"github.com/oshokin/gitversion/internal/service/show"
	"github.com/oshokin/gitversion/versioninfo"
)

var (
	// configPath to the generator settings YAML file.
	configPath string
	// repoPath is the directory whose containing repository is inspected.
	repoPath string
	// logLevel controls diagnostic verbosity on stderr.
	logLevel string

	// rootCmd represents the base command for the gitversion tool.
	rootCmd = &cobra.Command{
		Use:   "gitversion",
		Short: "Derive and embed version metadata from a git checkout.",
		Long: `gitversion derives version metadata (version string, branch, commit
hashes, dirty state, tag distance) from the state of a git checkout and
turns it into build artifacts: an ldflags chain, a generated Go source
file, or an env file. Binaries built with the artifact expose the values
through the versioninfo package.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}
		},
	}

	// showFormat selects the display format for the show subcommand.
	showFormat string

	// showCmd displays the current repository state.
	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Display the version metadata of the current checkout.",
		Long: `Derives the version metadata of the repository containing the working
directory (or --repo) and displays it as a table, the canonical plain
report, or JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := &show.Options{
				ConfigPath: configPath,
				RepoPath:   repoPath,
				Format:     showFormat,
				Out:        cmd.OutOrStdout(),
			}

			return show.Run(signalContext(), options)
		},
	}

	// Emit flags.
	emitFormat      string
	emitPackagePath string
	emitOutputPath  string

	// emitCmd writes a build artifact.
	emitCmd = &cobra.Command{
		Use:   "emit",
		Short: "Write a build artifact carrying the version metadata.",
		Long: `Derives the version metadata of the repository and writes it as one of:

  ldflags  a -X flag chain for go build (default, printed to stdout so it
           can be substituted directly into a build command),
  go       a generated Go source file assigning the versioninfo variables,
  env      GITVERSION_* key=value lines for CI pipelines.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := &emit.Options{
				ConfigPath:  configPath,
				RepoPath:    repoPath,
				Format:      emitFormat,
				PackagePath: emitPackagePath,
				OutputPath:  emitOutputPath,
				Out:         cmd.OutOrStdout(),
			}

			return emit.Run(signalContext(), options)
		},
	}

	// initCmd writes a default configuration file.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default .gitversion.yaml settings file.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.Save(configPath, config.Default())
		},
	}
)

// Execute runs the gitversion CLI and exits with non-zero status on error.
func Execute() {
	versioninfo.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext returns a context cancelled on SIGTERM/SIGINT.
func signalContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	return ctx
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to generator settings file")
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "r", ".", "path inside the repository to inspect")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "diagnostic log level on stderr")

	showCmd.Flags().StringVarP(&showFormat, "format", "f", show.FormatTable, "display format: table, plain or json")

	emitCmd.Flags().StringVarP(&emitFormat, "format", "f", render.FormatLDFlags, "artifact format: ldflags, go or env")
	emitCmd.Flags().StringVarP(&emitPackagePath, "package", "p", "",
		"target import path (ldflags) or package name (go)")
	emitCmd.Flags().StringVarP(&emitOutputPath, "out", "o", "", "output file (stdout when omitted)")

	rootCmd.AddCommand(showCmd, emitCmd, initCmd)
}

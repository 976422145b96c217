package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/oshokin/gitversion/internal/config"
	"github.com/oshokin/gitversion/internal/gitstate"
	"github.com/oshokin/gitversion/internal/logger"
	"github.com/oshokin/gitversion/versioninfo"
)

// Supported display formats.
const (
	// FormatTable renders a two-column table.
	FormatTable = "table"
	// FormatPlain renders the canonical seven-line report.
	FormatPlain = "plain"
	// FormatJSON renders the Info snapshot as indented JSON.
	FormatJSON = "json"
)

// Options contains inputs for the show entry point.
type Options struct {
	// ConfigPath is an optional path to the generator settings (defaults to .gitversion.yaml).
	ConfigPath string
	// RepoPath is the directory whose containing repository is inspected.
	RepoPath string
	// Format selects the display format: table, plain or json.
	Format string
	// Out receives the rendered output.
	Out io.Writer
}

// errUnknownFormat is returned for display formats this service does not render.
var errUnknownFormat = errors.New("unknown display format")

// Run derives the repository state and renders it in the requested format.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "gitversion-show")

	state, err := collect(ctx, opts.ConfigPath, opts.RepoPath)
	if err != nil {
		return err
	}

	info := infoFromState(state)

	switch opts.Format {
	case FormatPlain:
		return versioninfo.Fprint(opts.Out, "repository version", "", info)
	case FormatJSON:
		encoder := json.NewEncoder(opts.Out)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(info); err != nil {
			return fmt.Errorf("encode version info: %w", err)
		}

		return nil
	case FormatTable, "":
		renderTable(opts.Out, info)

		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, opts.Format)
	}
}

// collect loads settings, opens the repository and derives its state.
func collect(ctx context.Context, configPath, repoPath string) (*gitstate.State, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if repoPath == "" {
		repoPath = "."
	}

	repo, err := gitstate.Open(repoPath)
	if err != nil {
		return nil, err
	}

	state, err := gitstate.Collect(ctx, repo, cfg)
	if err != nil {
		return nil, fmt.Errorf("collect repository state: %w", err)
	}

	return state, nil
}

// infoFromState converts a collected state into the provider snapshot shape.
func infoFromState(state *gitstate.State) versioninfo.Info {
	return versioninfo.Info{
		VersionString: state.VersionString,
		Branch:        state.Branch,
		FullHash:      state.FullHash,
		ShortHash:     state.ShortHash,
		IsDirty:       state.Dirty,
		Distance:      state.Distance,
		Flag:          state.Flag,
	}
}

// renderTable writes the fields as a two-column table.
func renderTable(out io.Writer, info versioninfo.Info) {
	dirty := text.FgGreen.Sprint("false")
	if info.IsDirty {
		dirty = text.FgRed.Sprint("true")
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRows([]table.Row{
		{"version_string", info.VersionString},
		{"version_branch", info.Branch},
		{"version_fullhash", info.FullHash},
		{"version_shorthash", info.ShortHash},
		{"version_isdirty", dirty},
		{"version_distance", info.Distance},
		{"version_flag", info.Flag},
	})
	tw.Render()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tangent/internal/diagfmt"
	"tangent/internal/project"
)

// settings is the merged view of tangent.toml and the persistent flags.
// A flag left at its sentinel default defers to the config file.
type settings struct {
	maxDiagnostics int
	color          bool
	pathMode       diagfmt.PathMode
	showNotes      bool
	context        int8
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg, cfgPath, err := project.LoadFromDir(".")
	if err != nil {
		return settings{}, fmt.Errorf("%s: %w", cfgPath, err)
	}

	s := settings{
		maxDiagnostics: cfg.Diagnostics.Max,
		showNotes:      cfg.Diagnostics.ShowNotes,
		context:        cfg.Diagnostics.Context,
	}

	maxFlag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxFlag >= 0 {
		s.maxDiagnostics = maxFlag
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorMode == "" {
		colorMode = cfg.Output.Color
	}
	switch colorMode {
	case "always":
		s.color = true
	case "never":
		s.color = false
	case "auto":
		s.color = isTerminal(os.Stderr)
	default:
		return settings{}, fmt.Errorf("invalid --color %q: want auto, always or never", colorMode)
	}

	switch cfg.Output.Paths {
	case "absolute":
		s.pathMode = diagfmt.PathModeAbsolute
	case "relative":
		s.pathMode = diagfmt.PathModeRelative
	case "basename":
		s.pathMode = diagfmt.PathModeBasename
	default:
		s.pathMode = diagfmt.PathModeAuto
	}

	return s, nil
}

func (s settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.color,
		Context:   s.context,
		PathMode:  s.pathMode,
		ShowNotes: s.showNotes,
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tangent/internal/diagfmt"
	"tangent/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] script.tan",
	Short: "Parse a script and dump its tree",
	Long: `Parse builds the full tree for a script. Parsing never aborts:
bad input degrades to undefined nodes and every problem lands in the
diagnostics, printed to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().String("dir", "", "parse every script in a directory instead of one file")
	parseCmd.Flags().Int("workers", 0, "parallel parses for --dir (0 = all CPUs)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	if dir != "" {
		if len(args) != 0 {
			return fmt.Errorf("--dir takes no positional file argument")
		}
		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return fmt.Errorf("failed to get workers flag: %w", err)
		}
		return runParseDir(cmd, dir, workers, format, s)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one script, or --dir")
	}
	result, err := driver.Parse(args[0], s.maxDiagnostics)
	if err != nil {
		return err
	}
	return emitParseResult(result, format, s)
}

func runParseDir(cmd *cobra.Command, dir string, workers int, format string, s settings) error {
	results, err := driver.ParseDir(cmd.Context(), dir, s.maxDiagnostics, workers)
	if err != nil {
		return err
	}
	for _, result := range results.Files {
		fmt.Fprintf(os.Stdout, "== %s\n", result.File.Path)
		if err := emitParseResult(result, format, s); err != nil {
			return err
		}
	}
	return nil
}

func emitParseResult(result *driver.ParseResult, format string, s settings) error {
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, s.prettyOpts())
	}

	switch format {
	case "pretty":
		diagfmt.DumpAST(os.Stdout, result.Builder, result.FileSet, result.Root)
		return nil
	case "json":
		return diagfmt.ASTJSON(os.Stdout, result.Builder, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

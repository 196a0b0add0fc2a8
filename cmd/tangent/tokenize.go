package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tangent/internal/diagfmt"
	"tangent/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] script.tan",
	Short: "Scan a script into its token stream",
	Long:  `Tokenize scans a script to EOF and prints every token, including what the parser would reject`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("cached", false, "reuse the on-disk token cache for clean scans")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cached, err := cmd.Flags().GetBool("cached")
	if err != nil {
		return fmt.Errorf("failed to get cached flag: %w", err)
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if cached {
		cache, err := driver.OpenDiskCache("tangent")
		if err != nil {
			return fmt.Errorf("open token cache: %w", err)
		}
		result, err = driver.TokenizeCached(cache, args[0], s.maxDiagnostics)
		if err != nil {
			return err
		}
	} else {
		result, err = driver.Tokenize(args[0], s.maxDiagnostics)
		if err != nil {
			return err
		}
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, s.prettyOpts())
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tangent/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tangent",
	Short: "Tangent script front end",
	Long:  `Tangent scans and parses geometry scripts and reports diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", -1, "maximum number of diagnostics to keep")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tangent/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parse shell",
	Long:  `Repl parses one line at a time and shows the tree and diagnostics. Nothing is evaluated.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) {
			return fmt.Errorf("repl needs an interactive terminal")
		}
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		return repl.Run(s.maxDiagnostics)
	},
}

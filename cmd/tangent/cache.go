package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tangent/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk token cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached token stream",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("tangent")
		if err != nil {
			return fmt.Errorf("open token cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("clear token cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "token cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

// SPDX-License-Identifier: MIT

// Package commands holds the warpplot cobra command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand returns warpplot with every subcommand attached.
func NewRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:           "warpplot",
		Short:         "Align two sequences with DTW and draw the correspondence links",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := command.PersistentFlags()
	pf.String("config", "", "Config file (yaml, json or toml); keys mirror the flags with '_' for '-'.")
	pf.Bool("debug", false, "Development logging; also enabled by WARP_DEBUG=true.")
	pf.String("distance", "sqeuclidean", "Frame distance: sqeuclidean, euclidean, manhattan, chebyshev or abs.")
	pf.Float64("sampling-rate", 1, "Samples per time unit used for the link x coordinates.")
	pf.Int("links", 0, "Number of links to sample; 0 keeps one per aligned pair.")

	command.AddCommand(NewAlignCommand())
	command.AddCommand(NewPlotCommand())
	command.AddCommand(NewDemoCommand())

	return command
}

// Execute runs warpplot and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

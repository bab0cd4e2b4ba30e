// SPDX-License-Identifier: MIT
// Package: cognasim/internal/cli
//
// root.go — root command, persistent logging flags, Execute.

// Package cli wires the cognasim commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cognasim/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var logCfg logger.Config
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "cognasim",
		Short:        "Simulate cognate-class datasets under tree, chain and swamp models",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			cleanup, err = logger.Setup(logCfg)
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&logCfg.Debug, "debug", false, "verbose logging with source locations")
	cmd.PersistentFlags().StringVar(&logCfg.Path, "log-file", "", "write logs to this file instead of stderr")
	cmd.PersistentFlags().StringVar(&logCfg.Format, "log-format", "json", "log format: json|text")

	cmd.AddCommand(
		generateCmd(),
		batchCmd(),
		nexusCmd(),
		cldfCmd(),
		gapsCmd(),
		treelikeCmd(),
	)
	return cmd
}

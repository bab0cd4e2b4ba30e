// SPDX-License-Identifier: MIT
// Package: cognasim/internal/cli
//
// batch.go — the batch command.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cognasim/internal/batch"
	"github.com/katalvlaran/cognasim/internal/logger"
	"github.com/katalvlaran/cognasim/internal/metrics"
	"github.com/katalvlaran/cognasim/internal/store"
)

func batchCmd() *cobra.Command {
	var (
		name        string
		replicates  int
		outDir      string
		dbPath      string
		parallel    int
		metricsFile string
	)

	c := &cobra.Command{
		Use:   "batch",
		Short: "Generate numbered replicate datasets (<name>_000.csv, ...)",
		Args:  cobra.NoArgs,
	}
	flags := bindRunFlags(c)
	c.Flags().StringVar(&name, "name", "", "replicate file prefix (default: the run name)")
	c.Flags().IntVarP(&replicates, "replicates", "n", 0, "number of replicates (default: run file value)")
	c.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	c.Flags().StringVar(&dbPath, "db", "", "also archive replicates in this SQLite database")
	c.Flags().IntVar(&parallel, "parallel", 1, "replicates generated concurrently")
	c.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")

	c.RunE = func(cmd *cobra.Command, _ []string) error {
		run, err := flags.resolve(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			run.Name = name
		}
		if cmd.Flags().Changed("replicates") {
			run.Replicates = replicates
		}

		cfg := batch.Config{
			Run:      run,
			OutDir:   outDir,
			Parallel: parallel,
			Logger:   logger.L(),
		}
		if dbPath != "" {
			st, err := store.Open(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer st.Close()
			cfg.Store = st
		}
		if metricsFile != "" {
			cfg.Metrics = metrics.New()
		}

		res, runErr := batch.Run(cmd.Context(), cfg)
		if cfg.Metrics != nil {
			if err := cfg.Metrics.WriteFile(metricsFile); err != nil && runErr == nil {
				runErr = err
			}
		}
		if runErr != nil {
			return runErr
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d replicates in %s\n", res.RunID, run.Replicates, outDir)
		return err
	}
	return c
}

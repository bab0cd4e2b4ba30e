// SPDX-License-Identifier: MIT
// Package: cognasim/internal/cli
//
// generate.go — the generate command.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cognasim/internal/batch"
	"github.com/katalvlaran/cognasim/internal/logger"
)

func generateCmd() *cobra.Command {
	var treeOut, outPath string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate one dataset and print it as harvest CSV",
		Args:  cobra.NoArgs,
	}
	flags := bindRunFlags(c)
	c.Flags().StringVar(&treeOut, "tree-out", "", "write the Newick tree of a dollo run to this file")
	c.Flags().StringVarP(&outPath, "out", "o", "", "write the CSV to this file instead of stdout")

	c.RunE = func(cmd *cobra.Command, _ []string) error {
		run, err := flags.resolve(cmd)
		if err != nil {
			return err
		}
		log := logger.L()
		log.Info("generate.start", "model", run.Model, "languages", run.Languages,
			"features", run.Features, "seed", run.Seed)

		out, err := batch.Generate(run, run.Seed)
		if err != nil {
			log.Error("generate.failed", "err", err)
			return err
		}
		text, err := out.Matrix.Format()
		if err != nil {
			return err
		}
		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(text+"\n"), 0o644); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
			return err
		}

		if treeOut != "" {
			if out.Newick == "" {
				return fmt.Errorf("generate: --tree-out needs the dollo model, got %s", run.Model)
			}
			if err := os.WriteFile(treeOut, []byte(out.Newick+"\n"), 0o644); err != nil {
				return err
			}
		}
		log.Info("generate.done", "borrowed_cells", out.Borrowed)
		return nil
	}
	return c
}

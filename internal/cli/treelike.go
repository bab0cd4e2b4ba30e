// SPDX-License-Identifier: MIT
// Package: cognasim/internal/cli
//
// treelike.go — the treelike command.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cognasim/treelike"
)

func treelikeCmd() *cobra.Command {
	var perTaxon bool

	c := &cobra.Command{
		Use:   "treelike <harvest.csv>",
		Short: "Report delta and Q-residual treeness scores of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readHarvest(args[0])
			if err != nil {
				return err
			}
			s, err := treelike.Compute(m)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "delta\t%.4f\nq\t%.4f\n", s.MeanDelta, s.MeanQ)
			if perTaxon {
				for i, taxon := range s.Taxa {
					fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", taxon, s.Delta[i], s.Q[i])
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&perTaxon, "taxa", false, "also print per-taxon scores")
	return c
}

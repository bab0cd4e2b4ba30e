// SPDX-License-Identifier: MIT
// Package: cognasim/internal/cli
//
// convert.go — nexus, cldf and gaps converters.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cognasim/cldf"
	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/internal/logger"
)

func readHarvest(path string) (*cognate.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := cognate.ParseHarvest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func nexusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nexus <glob>...",
		Short: "Convert harvest CSV files to binary NEXUS next to each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var inputs []string
			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern)
				if err != nil {
					return fmt.Errorf("nexus: pattern %q: %w", pattern, err)
				}
				inputs = append(inputs, matches...)
			}
			if len(inputs) == 0 {
				return fmt.Errorf("nexus: no files match %s", strings.Join(args, " "))
			}

			for _, in := range inputs {
				m, err := readHarvest(in)
				if err != nil {
					return err
				}
				out := stem(in) + ".nex"
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				werr := cognate.WriteNexus(f, m)
				if cerr := f.Close(); werr == nil {
					werr = cerr
				}
				if werr != nil {
					return fmt.Errorf("nexus: %s: %w", out, werr)
				}
				logger.L().Debug("nexus.written", "in", in, "out", out, "chars", m.NexusCharacters())
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}

func cldfCmd() *cobra.Command {
	var excluded string

	c := &cobra.Command{
		Use:   "cldf <metadata.json>",
		Short: "Convert a CLDF wordlist to harvest CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cldf.Read(args[0], cldf.WithExcludedTaxa(strings.Split(excluded, ",")...))
			if err != nil {
				return err
			}
			text, err := m.Format()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	c.Flags().StringVarP(&excluded, "exclude", "x", "", "comma-separated taxa to exclude")
	return c
}

func gapsCmd() *cobra.Command {
	var (
		coverages []float64
		seed      uint64
		outDir    string
	)

	c := &cobra.Command{
		Use:   "gaps <harvest.csv>",
		Short: "Write copies of a dataset keeping a random share of its features",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readHarvest(args[0])
			if err != nil {
				return err
			}
			dir := outDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			rng := dist.NewSeeded(seed).Rand()
			base := filepath.Base(stem(args[0]))
			for _, cov := range coverages {
				gapped, err := m.DropFeatures(rng, cov)
				if err != nil {
					return err
				}
				text, err := gapped.Format()
				if err != nil {
					return err
				}
				out := filepath.Join(dir, fmt.Sprintf("%s_cov%03d.csv", base, int(cov*100+0.5)))
				if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
					return err
				}
				logger.L().Info("gaps.written", "out", out, "features", gapped.NumFeatures(), "of", m.NumFeatures())
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	c.Flags().Float64SliceVar(&coverages, "coverage", []float64{0.9, 0.8, 0.7, 0.6, 0.5}, "feature coverages to produce")
	c.Flags().Uint64Var(&seed, "seed", 1234, "random seed")
	c.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: next to the input)")
	return c
}

// SPDX-License-Identifier: MIT
// Package: cognasim/internal/batch
//
// batch.go — replicate seeding, per-replicate generation and bounded fan-out.

// Package batch runs many independent replicates of one simulation setup,
// writing each to a harvest CSV file and, optionally, to the run archive.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/internal/config"
	"github.com/katalvlaran/cognasim/internal/metrics"
	"github.com/katalvlaran/cognasim/internal/store"
	"github.com/katalvlaran/cognasim/simulate"
)

// seedStride spaces replicate seeds (the SplitMix64 increment).
const seedStride = 0x9e3779b97f4a7c15

// Output is one generated replicate.
type Output struct {
	Matrix *cognate.Matrix
	// Newick is set for tree-model replicates.
	Newick string
	// Borrowed counts cells changed by post-generation borrowing.
	Borrowed int
}

// SeedFor derives the seed of replicate i from the run seed.
func SeedFor(base uint64, i int) uint64 { return base + uint64(i)*seedStride }

// Generate produces one replicate of run with the given seed: simulation,
// then for the tree model the post-generation borrowing pass. extra options
// are passed to the simulator.
func Generate(run config.Run, seed uint64, extra ...simulate.Option) (Output, error) {
	run.Seed, run.SeedSet = seed, true
	sim, err := run.NewSimulator(extra...)
	if err != nil {
		return Output{}, err
	}
	m, err := sim.Generate()
	if err != nil {
		return Output{}, err
	}

	out := Output{Matrix: m}
	if d, ok := sim.(*simulate.Dollo); ok {
		out.Newick = d.Tree().Newick()
		if run.Borrowing > 0 {
			// separate stream so borrowing does not shift the simulation draws
			out.Borrowed, err = m.Borrow(dist.NewSeeded(^seed).Rand(), run.Borrowing)
			if err != nil {
				return Output{}, err
			}
		}
	}
	return out, nil
}

// Config drives Run.
type Config struct {
	Run config.Run
	// OutDir receives <name>_%03d.csv files; empty skips file output.
	OutDir string
	// Parallel bounds concurrent replicates; < 1 means 1.
	Parallel int

	Store   *store.Store
	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// Result summarises a finished batch.
type Result struct {
	RunID uuid.UUID
	Files []string
}

// Run generates cfg.Run.Replicates replicates. The first failure cancels
// the remaining replicates and is returned.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Run.Validate(); err != nil {
		return Result{}, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	n := cfg.Run.Replicates

	var res Result
	if cfg.Store != nil {
		settings, err := config.Marshal(cfg.Run)
		if err != nil {
			return Result{}, fmt.Errorf("batch: settings: %w", err)
		}
		rec, err := cfg.Store.CreateRun(ctx, store.Run{
			Name:      cfg.Run.Name,
			Model:     cfg.Run.Model,
			Languages: cfg.Run.Languages,
			Features:  cfg.Run.Features,
			Seed:      cfg.Run.Seed,
			Settings:  string(settings),
		})
		if err != nil {
			return Result{}, err
		}
		res.RunID = rec.ID
	} else {
		res.RunID = uuid.New()
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return Result{}, fmt.Errorf("batch: %w", err)
		}
		res.Files = make([]string, n)
	}

	log.Info("batch.start", "run_id", res.RunID, "name", cfg.Run.Name, "model", cfg.Run.Model,
		"replicates", n, "seed", cfg.Run.Seed)

	var extra []simulate.Option
	if cfg.Metrics != nil {
		extra = append(extra, simulate.WithOnFeature(cfg.Metrics.ObserveFeature))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallel, 1))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := replicate(gctx, cfg, res.RunID, i, extra)
			if cfg.Metrics != nil {
				cfg.Metrics.ObserveReplicate(cfg.Run.Model, err)
			}
			if err != nil {
				log.Error("batch.replicate_failed", "run_id", res.RunID, "index", i, "err", err)
				return fmt.Errorf("batch: replicate %d: %w", i, err)
			}
			if path != "" {
				res.Files[i] = path
			}
			log.Debug("batch.replicate_done", "run_id", res.RunID, "index", i, "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			log.Warn("batch.canceled", "run_id", res.RunID)
		}
		return res, err
	}

	log.Info("batch.done", "run_id", res.RunID, "replicates", n)
	return res, nil
}

func replicate(ctx context.Context, cfg Config, runID uuid.UUID, i int, extra []simulate.Option) (string, error) {
	out, err := Generate(cfg.Run, SeedFor(cfg.Run.Seed, i), extra...)
	if err != nil {
		return "", err
	}
	text, err := out.Matrix.Format()
	if err != nil {
		return "", err
	}

	var path string
	if cfg.OutDir != "" {
		path = filepath.Join(cfg.OutDir, FileName(cfg.Run.Name, i))
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return "", err
		}
	}
	if cfg.Store != nil {
		err := cfg.Store.PutReplicate(ctx, store.Replicate{
			RunID:   runID,
			Index:   i,
			Harvest: text,
			Newick:  out.Newick,
		})
		if err != nil {
			return "", err
		}
	}
	return path, nil
}

// FileName is the harvest file name of replicate i.
func FileName(name string, i int) string { return fmt.Sprintf("%s_%03d.csv", name, i) }

// SPDX-License-Identifier: MIT
// Package: cognasim/simulate
//
// dollo.go — tree-based Dollo simulator.
//
// Per feature:
//   1) draw a Gamma rate multiplier (shape=γ, scale=1/γ);
//   2) give the root a fresh class;
//   3) walk edges in pre-order; an edge innovates a new class iff
//      Poisson(length·cognateRate·multiplier) ≥ 1, else inherits;
//   4) optionally run the borrowing pass (borrowing.go);
//   5) relabel leaf classes to 0..k-1 by ascending original label.
//
// Complexity: O(F·V) without borrowing, O(F·V²) worst case with it.

package simulate

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/names"
	"github.com/katalvlaran/cognasim/phylo"
)

const (
	methodNewDollo      = "NewDollo"
	methodDolloGenerate = "Dollo.Generate"
)

// Dollo evolves cognate classes along a fixed Yule tree.
type Dollo struct {
	tree      *phylo.Tree
	nFeatures int
	cfg       config
	s         *dist.Sampler
}

// NewDollo grows the tree (or adopts WithTree) and validates parameters.
// With WithTree, nLangs must equal the tree's leaf count.
func NewDollo(nLangs, nFeatures int, opts ...Option) (*Dollo, error) {
	cfg := newConfig(opts...)
	if err := validateCounts(methodNewDollo, nLangs, nFeatures); err != nil {
		return nil, err
	}
	if cfg.sampler == nil {
		return nil, fmt.Errorf("%s: %w", methodNewDollo, ErrNeedRandSource)
	}

	t := cfg.tree
	if t == nil {
		var err error
		t, err = phylo.BirthDeath(nLangs,
			phylo.WithBirthRate(cfg.birthRate),
			phylo.WithSampler(cfg.sampler),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewDollo, err)
		}
	} else if got := len(t.Leaves()); got != nLangs {
		return nil, fmt.Errorf("%s: tree has %d leaves, want %d: %w",
			methodNewDollo, got, nLangs, ErrModelConfiguration)
	}

	return &Dollo{tree: t, nFeatures: nFeatures, cfg: cfg, s: cfg.sampler}, nil
}

// Model returns ModelDollo.
func (d *Dollo) Model() string { return ModelDollo }

// Tree exposes the tree the classes evolve on.
func (d *Dollo) Tree() *phylo.Tree { return d.tree }

// Generate simulates every feature and returns a fresh matrix.
func (d *Dollo) Generate() (*cognate.Matrix, error) {
	m := cognate.New()
	run := &featureRun{
		tree:    d.tree,
		s:       d.s,
		classes: make([]int, d.tree.Len()),
		fixed:   roaring.New(),
	}
	leaves := d.tree.Leaves()
	states := make([]int, len(leaves))

	for i := 0; i < d.nFeatures; i++ {
		feature := names.Feature(i)
		run.reset(d.s.Gamma(d.cfg.gammaShape, 1/d.cfg.gammaShape), d.cfg.cognateBirthRate)
		run.innovate(d.tree.Edges())
		if d.cfg.borrowingRate > 0 {
			brate := d.s.Gamma(d.cfg.gammaShape, 1/d.cfg.gammaShape)
			run.borrow(d.cfg.borrowingRate * brate)
		}

		k := relabel(run.classes, leaves, states)
		if err := checkCoverage(methodDolloGenerate, feature, states, k); err != nil {
			return nil, err
		}
		for j, leaf := range leaves {
			m.Set(d.tree.Taxon(leaf), feature, cognate.State(states[j]))
		}
		d.cfg.emit(FeatureStats{
			Model:       ModelDollo,
			Feature:     feature,
			Classes:     k,
			Innovations: run.innovations,
			Borrowings:  run.borrowings,
		})
	}
	return m, nil
}

// relabel maps leaf classes to 0..k-1 by ascending original label, writing
// into out (indexed like leaves) and returning k.
func relabel(classes, leaves, out []int) int {
	seen := make([]int, 0, len(leaves))
	for _, leaf := range leaves {
		seen = append(seen, classes[leaf])
	}
	slices.Sort(seen)
	seen = slices.Compact(seen)

	trans := make(map[int]int, len(seen))
	for n, v := range seen {
		trans[v] = n
	}
	for j, leaf := range leaves {
		out[j] = trans[classes[leaf]]
	}
	return len(seen)
}

// featureRun holds the per-feature mutable state shared by the innovation
// and borrowing passes.
type featureRun struct {
	tree    *phylo.Tree
	s       *dist.Sampler
	classes []int // per node ID
	next    int
	rate    float64 // cognateRate·multiplier
	fixed   *roaring.Bitmap

	innovations int
	borrowings  int
}

func (r *featureRun) reset(multiplier, cognateRate float64) {
	r.classes[r.tree.Root()] = 1
	r.next = 2
	r.rate = cognateRate * multiplier
	r.fixed.Clear()
	r.innovations, r.borrowings = 0, 0
}

// innovate applies the per-edge mutation rule. edges must be parent-first.
func (r *featureRun) innovate(edges []phylo.Edge) {
	for _, e := range edges {
		if r.s.Poisson(e.Length*r.rate) > 0 {
			r.classes[e.Child] = r.next
			r.next++
			r.innovations++
			continue
		}
		r.classes[e.Child] = r.classes[e.Parent]
	}
}

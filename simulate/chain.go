// SPDX-License-Identifier: MIT
// Package: cognasim/simulate
//
// chain.go — dialect-continuum simulator.
//
// Per feature:
//   1) draw k ∈ [1, nLangs] from the class-count model (bounded resampling);
//   2) draw class sizes with Sampler.Partition (Dirichlet + multinomial);
//   3) lay classes out as contiguous segments and merge random pairs until
//      one segment remains: concatenate with probability p (always when both
//      are singletons), else insert the shorter into the longer at an
//      interior split point;
//   4) zip the final segment with the construction-time language order.

package simulate

import (
	"fmt"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/names"
)

const (
	methodNewChain      = "NewChain"
	methodChainGenerate = "Chain.Generate"
)

// Chain arranges each feature's classes along a one-dimensional continuum.
type Chain struct {
	langs     []string
	nFeatures int
	model     dist.ClassCountModel
	alpha     float64
	budget    int
	concat    float64
	cfg       config
	s         *dist.Sampler
}

// NewChain fixes the language order and validates the class-count model.
func NewChain(nLangs, nFeatures int, opts ...Option) (*Chain, error) {
	cfg := newConfig(opts...)
	if err := validateCounts(methodNewChain, nLangs, nFeatures); err != nil {
		return nil, err
	}
	if cfg.sampler == nil {
		return nil, fmt.Errorf("%s: %w", methodNewChain, ErrNeedRandSource)
	}

	c := &Chain{
		nFeatures: nFeatures,
		model:     cfg.model,
		alpha:     cfg.alpha,
		budget:    cfg.sampleBudget,
		concat:    cfg.concatProb,
		cfg:       cfg,
		s:         cfg.sampler,
	}
	if c.model == nil {
		c.model = DefaultChainModel
	}
	if c.alpha == 0 {
		c.alpha = DefaultChainAlpha
	}
	if c.budget == 0 {
		c.budget = DefaultChainSampleBudget
	}
	if err := c.model.Validate(nLangs); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewChain, err)
	}

	langs, err := names.Default().Sample(c.s.Rand(), nLangs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewChain, err)
	}
	c.langs = langs
	return c, nil
}

// Model returns ModelChain.
func (c *Chain) Model() string { return ModelChain }

// Languages returns the fixed language order.
func (c *Chain) Languages() []string { return append([]string(nil), c.langs...) }

// Generate simulates every feature and returns a fresh matrix.
func (c *Chain) Generate() (*cognate.Matrix, error) {
	n := len(c.langs)
	m := cognate.New()
	for i := 0; i < c.nFeatures; i++ {
		feature := names.Feature(i)
		k, attempts, err := dist.SampleClassCount(c.s, c.model, 1, n, c.budget)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %s: %w", methodChainGenerate, feature, err)
		}
		sizes, err := c.s.Partition(n, k, c.alpha)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %s: %w", methodChainGenerate, feature, err)
		}

		assignment := c.merge(sizes)
		if len(assignment) != n {
			return nil, fmt.Errorf("%s: feature %s: %d assignments for %d languages: %w",
				methodChainGenerate, feature, len(assignment), n, ErrInvariant)
		}
		if err := checkCoverage(methodChainGenerate, feature, assignment, k); err != nil {
			return nil, err
		}
		for j, lang := range c.langs {
			m.Set(lang, feature, cognate.State(assignment[j]))
		}
		c.cfg.emit(FeatureStats{Model: ModelChain, Feature: feature, Classes: k, Attempts: attempts})
	}
	return m, nil
}

// merge combines one segment per class into a single arrangement. Each round
// removes exactly one segment, so it terminates after len(sizes)-1 rounds.
func (c *Chain) merge(sizes []int) []int {
	segments := make([][]int, len(sizes))
	for j, count := range sizes {
		seg := make([]int, count)
		for i := range seg {
			seg[i] = j
		}
		segments[j] = seg
	}

	for len(segments) > 1 {
		c.s.Rand().Shuffle(len(segments), func(i, j int) {
			segments[i], segments[j] = segments[j], segments[i]
		})
		last := len(segments) - 1
		a, b := segments[last], segments[last-1]
		segments = segments[:last-1]

		var merged []int
		if c.s.Float64() < c.concat || (len(a) == 1 && len(b) == 1) {
			merged = append(append(make([]int, 0, len(a)+len(b)), a...), b...)
		} else {
			longest, shortest := b, a
			if len(a) > len(b) {
				longest, shortest = a, b
			}
			at := c.s.IntRange(1, len(longest)-1)
			merged = make([]int, 0, len(a)+len(b))
			merged = append(merged, longest[:at]...)
			merged = append(merged, shortest...)
			merged = append(merged, longest[at:]...)
		}
		segments = append(segments, merged)
	}
	return segments[0]
}

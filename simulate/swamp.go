// SPDX-License-Identifier: MIT
// Package: cognasim/simulate
//
// swamp.go — history-free baseline simulator.
//
// Each Generate call names nTaxa fresh random taxa; each feature draws k from
// the class-count model, builds a full-coverage assignment with
// Sampler.Partition and shuffles it over the taxa.

package simulate

import (
	"fmt"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/names"
)

const (
	methodNewSwamp      = "NewSwamp"
	methodSwampGenerate = "Swamp.Generate"
)

// Swamp draws every feature independently of all others.
type Swamp struct {
	nTaxa      int
	nFeatures  int
	model      dist.ClassCountModel
	alpha      float64
	budget     int
	nameLength int
	cfg        config
	s          *dist.Sampler
}

// NewSwamp validates the class-count model against nTaxa and the name
// length against the size of the name space.
func NewSwamp(nTaxa, nFeatures int, opts ...Option) (*Swamp, error) {
	cfg := newConfig(opts...)
	if err := validateCounts(methodNewSwamp, nTaxa, nFeatures); err != nil {
		return nil, err
	}
	if cfg.sampler == nil {
		return nil, fmt.Errorf("%s: %w", methodNewSwamp, ErrNeedRandSource)
	}

	sw := &Swamp{
		nTaxa:      nTaxa,
		nFeatures:  nFeatures,
		model:      cfg.model,
		alpha:      cfg.alpha,
		budget:     cfg.sampleBudget,
		nameLength: cfg.nameLength,
		cfg:        cfg,
		s:          cfg.sampler,
	}
	if sw.model == nil {
		sw.model = dist.Uniform{Min: 1, Max: nTaxa}
	}
	if sw.alpha == 0 {
		sw.alpha = DefaultSwampAlpha
	}
	if sw.budget == 0 {
		sw.budget = DefaultSwampSampleBudget
	}
	if err := sw.model.Validate(nTaxa); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSwamp, err)
	}
	if capacity := pow26(sw.nameLength); capacity >= 0 && nTaxa > capacity {
		return nil, fmt.Errorf("%s: %d taxa with %d-letter names: %w",
			methodNewSwamp, nTaxa, sw.nameLength, ErrNameSpaceExhausted)
	}
	return sw, nil
}

// pow26 returns 26^n, or -1 once the value no longer fits comfortably.
func pow26(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		if v > 1<<40 {
			return -1
		}
		v *= 26
	}
	return v
}

// Model returns ModelSwamp.
func (sw *Swamp) Model() string { return ModelSwamp }

// Generate names fresh taxa and simulates every feature.
func (sw *Swamp) Generate() (*cognate.Matrix, error) {
	taxa, err := names.RandomFixed(sw.s.Rand(), sw.nTaxa, sw.nameLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSwampGenerate, err)
	}

	m := cognate.New()
	assignment := make([]int, 0, sw.nTaxa)
	for i := 0; i < sw.nFeatures; i++ {
		feature := names.PaddedFeature(i+1, sw.nFeatures)
		k, attempts, err := dist.SampleClassCount(sw.s, sw.model, 1, sw.nTaxa, sw.budget)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %s: %w", methodSwampGenerate, feature, err)
		}
		sizes, err := sw.s.Partition(sw.nTaxa, k, sw.alpha)
		if err != nil {
			return nil, fmt.Errorf("%s: feature %s: %w", methodSwampGenerate, feature, err)
		}

		// classes 0..k-1 once each, then the surplus members
		assignment = assignment[:0]
		for j := 0; j < k; j++ {
			assignment = append(assignment, j)
		}
		for j, size := range sizes {
			for extra := 1; extra < size; extra++ {
				assignment = append(assignment, j)
			}
		}
		sw.s.Rand().Shuffle(len(assignment), func(a, b int) {
			assignment[a], assignment[b] = assignment[b], assignment[a]
		})

		if err := checkCoverage(methodSwampGenerate, feature, assignment, k); err != nil {
			return nil, err
		}
		for j, taxon := range taxa {
			m.Set(taxon, feature, cognate.State(assignment[j]))
		}
		sw.cfg.emit(FeatureStats{Model: ModelSwamp, Feature: feature, Classes: k, Attempts: attempts})
	}
	return m, nil
}

// SPDX-License-Identifier: MIT
// Package: cognasim/simulate
//
// options.go — functional options shared by all simulators.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless values
//     (negative rates, nil hooks, nil sources).
//   • Constructors (NewDollo/NewChain/NewSwamp) VALIDATE cross-parameter
//     consistency and return ErrModelConfiguration; they never panic.
//   • Zero values inside config mean "use the simulator's default".

package simulate

import (
	"math/rand/v2"

	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/phylo"
)

// Defaults.
const (
	DefaultBirthRate         = 1.0
	DefaultCognateBirthRate  = 0.5
	DefaultGammaShape        = 1.0
	DefaultChainAlpha        = 0.8
	DefaultSwampAlpha        = 1.0
	DefaultChainSampleBudget = 100000
	DefaultSwampSampleBudget = 10
	DefaultConcatProbability = 0.75
	DefaultNameLength        = 3
)

// DefaultChainModel is the class-count distribution fitted to UraLex counts.
var DefaultChainModel = dist.NegativeBinomial{R: 8, P: 0.45}

// FeatureStats describes one generated feature.
type FeatureStats struct {
	// Model is the simulator family ("dollo", "chain", "swamp").
	Model string
	// Feature is the feature name.
	Feature string
	// Classes is the number of distinct classes among the taxa.
	Classes int
	// Attempts counts class-count draws (chain, swamp).
	Attempts int
	// Innovations counts branches that produced a new class (dollo).
	Innovations int
	// Borrowings counts lateral transfers (dollo).
	Borrowings int
}

// Option customises a simulator.
type Option func(*config)

type config struct {
	sampler   *dist.Sampler
	onFeature func(FeatureStats)

	tree             *phylo.Tree
	birthRate        float64
	cognateBirthRate float64
	cognateRateSet   bool
	gammaShape       float64
	borrowingRate    float64

	model        dist.ClassCountModel
	alpha        float64
	sampleBudget int
	concatProb   float64
	concatSet    bool
	nameLength   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		birthRate:  DefaultBirthRate,
		gammaShape: DefaultGammaShape,
		nameLength: DefaultNameLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.cognateRateSet {
		cfg.cognateBirthRate = DefaultCognateBirthRate
	}
	if !cfg.concatSet {
		cfg.concatProb = DefaultConcatProbability
	}
	return cfg
}

func (c *config) emit(fs FeatureStats) {
	if c.onFeature != nil {
		c.onFeature(fs)
	}
}

// WithSeed draws from a PCG stream derived from seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.sampler = dist.NewSeeded(seed) }
}

// WithSource draws from src. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("simulate: WithSource(nil)")
	}
	return func(c *config) { c.sampler = dist.NewSampler(src) }
}

// WithSampler shares s with the caller. Panics on nil.
func WithSampler(s *dist.Sampler) Option {
	if s == nil {
		panic("simulate: WithSampler(nil)")
	}
	return func(c *config) { c.sampler = s }
}

// WithOnFeature registers a hook invoked after every generated feature.
// Panics on nil.
func WithOnFeature(fn func(FeatureStats)) Option {
	if fn == nil {
		panic("simulate: WithOnFeature(nil)")
	}
	return func(c *config) { c.onFeature = fn }
}

// WithTree makes the Dollo simulator evolve along t instead of growing a
// fresh Yule tree. Panics on nil.
func WithTree(t *phylo.Tree) Option {
	if t == nil {
		panic("simulate: WithTree(nil)")
	}
	return func(c *config) { c.tree = t }
}

// WithBirthRate sets the Yule splitting rate of the Dollo tree. Panics if r <= 0.
func WithBirthRate(r float64) Option {
	if !(r > 0) {
		panic("simulate: WithBirthRate(r<=0)")
	}
	return func(c *config) { c.birthRate = r }
}

// WithCognateBirthRate sets the per-unit-time innovation rate. 0 disables
// innovation. Panics if r < 0.
func WithCognateBirthRate(r float64) Option {
	if !(r >= 0) {
		panic("simulate: WithCognateBirthRate(r<0)")
	}
	return func(c *config) { c.cognateBirthRate, c.cognateRateSet = r, true }
}

// WithGammaShape sets the shape of the per-feature Gamma rate multiplier
// (scale = 1/shape, mean 1). Panics if shape <= 0.
func WithGammaShape(shape float64) Option {
	if !(shape > 0) {
		panic("simulate: WithGammaShape(shape<=0)")
	}
	return func(c *config) { c.gammaShape = shape }
}

// WithBorrowingRate sets the per-unit-time lateral transfer rate of the Dollo
// simulator. 0 disables the borrowing pass. Panics if r < 0.
func WithBorrowingRate(r float64) Option {
	if !(r >= 0) {
		panic("simulate: WithBorrowingRate(r<0)")
	}
	return func(c *config) { c.borrowingRate = r }
}

// WithClassCountModel sets the distribution of classes per feature.
// Panics on nil.
func WithClassCountModel(m dist.ClassCountModel) Option {
	if m == nil {
		panic("simulate: WithClassCountModel(nil)")
	}
	return func(c *config) { c.model = m }
}

// WithAlpha sets the symmetric Dirichlet concentration for class sizes.
// Panics if alpha <= 0.
func WithAlpha(alpha float64) Option {
	if !(alpha > 0) {
		panic("simulate: WithAlpha(alpha<=0)")
	}
	return func(c *config) { c.alpha = alpha }
}

// WithSampleBudget bounds class-count resampling. Panics if n < 1.
func WithSampleBudget(n int) Option {
	if n < 1 {
		panic("simulate: WithSampleBudget(n<1)")
	}
	return func(c *config) { c.sampleBudget = n }
}

// WithConcatProbability sets how often the chain merge concatenates two
// segments instead of inserting one into the other. Panics outside [0,1].
func WithConcatProbability(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic("simulate: WithConcatProbability(p∉[0,1])")
	}
	return func(c *config) { c.concatProb, c.concatSet = p, true }
}

// WithNameLength sets the swamp taxon name length. Panics if n < 1.
func WithNameLength(n int) Option {
	if n < 1 {
		panic("simulate: WithNameLength(n<1)")
	}
	return func(c *config) { c.nameLength = n }
}

// SPDX-License-Identifier: MIT
// Package: cognasim/phylo
//
// options.go — functional options for the tree generator.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the generator itself returns sentinel errors and never panics.
//   • Later options override earlier ones.
//   • No RNG is configured by default: callers choose WithSeed, WithSource or
//     WithSampler explicitly.

package phylo

import (
	"math/rand/v2"

	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/names"
)

// DefaultBirthRate is the Yule lineage splitting rate when none is given.
const DefaultBirthRate = 1.0

// Option customises BirthDeath.
type Option func(*config)

type config struct {
	birthRate float64
	sampler   *dist.Sampler
	space     *names.Space
}

func newConfig(opts ...Option) config {
	cfg := config{
		birthRate: DefaultBirthRate,
		space:     names.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBirthRate sets the per-lineage splitting rate. Panics if r <= 0.
func WithBirthRate(r float64) Option {
	if !(r > 0) {
		panic("phylo: WithBirthRate(r<=0)")
	}
	return func(c *config) { c.birthRate = r }
}

// WithSeed draws from a fresh PCG stream derived from seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.sampler = dist.NewSeeded(seed) }
}

// WithSource draws from src. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("phylo: WithSource(nil)")
	}
	return func(c *config) { c.sampler = dist.NewSampler(src) }
}

// WithSampler shares an existing sampler. Panics on nil.
func WithSampler(s *dist.Sampler) Option {
	if s == nil {
		panic("phylo: WithSampler(nil)")
	}
	return func(c *config) { c.sampler = s }
}

// WithNameSpace draws leaf labels from space. Panics on nil.
func WithNameSpace(space *names.Space) Option {
	if space == nil {
		panic("phylo: WithNameSpace(nil)")
	}
	return func(c *config) { c.space = space }
}

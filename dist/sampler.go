// SPDX-License-Identifier: MIT
// Package: cognasim/dist
//
// sampler.go — a single random stream shared by every draw.
//
// Determinism:
//   - rand.Rand in math/rand/v2 keeps no state beyond its Source, so draws made
//     through Rand() and through gonum distributions interleave on one stream.
//   - Equal seeds and equal call sequences ⇒ equal outputs.

package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// seedMix decorrelates the two PCG words derived from one user seed.
const seedMix = 0x9e3779b97f4a7c15

// Sampler draws from one Source. It is not safe for concurrent use.
type Sampler struct {
	src rand.Source
	rng *rand.Rand
}

// NewSampler wraps src. src must not be nil.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		panic("dist: NewSampler(nil)")
	}
	return &Sampler{src: src, rng: rand.New(src)}
}

// NewSeeded returns a Sampler over a PCG source derived from seed.
func NewSeeded(seed uint64) *Sampler {
	return NewSampler(NewSource(seed))
}

// NewSource returns the PCG source used for a user-facing seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^seedMix)
}

// Source exposes the underlying stream.
func (s *Sampler) Source() rand.Source { return s.src }

// Rand exposes the stream as a *rand.Rand for shuffles and integer draws.
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// Float64 returns a uniform draw in [0,1).
func (s *Sampler) Float64() float64 { return s.rng.Float64() }

// IntN returns a uniform draw in [0,n). Panics if n <= 0.
func (s *Sampler) IntN(n int) int { return s.rng.IntN(n) }

// IntRange returns a uniform draw in [lo,hi], both inclusive.
func (s *Sampler) IntRange(lo, hi int) int { return lo + s.rng.IntN(hi-lo+1) }

// Gamma draws from Gamma(shape, scale). Panics on shape<=0 or scale<=0.
func (s *Sampler) Gamma(shape, scale float64) float64 {
	if shape <= 0 || scale <= 0 {
		panic("dist: Gamma with non-positive parameter")
	}
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: s.src}.Rand()
}

// Poisson draws a count from Poisson(lambda). lambda<=0 yields 0 without
// consuming the stream.
func (s *Sampler) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: lambda, Src: s.src}.Rand())
}

// Exponential draws a waiting time from Exp(rate). Panics on rate<=0.
func (s *Sampler) Exponential(rate float64) float64 {
	if rate <= 0 {
		panic("dist: Exponential with non-positive rate")
	}
	return distuv.Exponential{Rate: rate, Src: s.src}.Rand()
}

// Binomial draws the number of successes in n trials with success prob p.
func (s *Sampler) Binomial(n int, p float64) int {
	switch {
	case n <= 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	}
	return int(distuv.Binomial{N: float64(n), P: p, Src: s.src}.Rand())
}

// NegativeBinomial draws the number of failures before r successes with
// success probability p (scipy.stats.nbinom convention), as a Gamma–Poisson
// mixture.
func (s *Sampler) NegativeBinomial(r, p float64) int {
	if p >= 1 {
		return 0
	}
	lambda := s.Gamma(r, (1-p)/p)
	return s.Poisson(lambda)
}

// Dirichlet draws a probability vector from the symmetric Dirichlet(alpha)
// over k categories.
func (s *Sampler) Dirichlet(alpha float64, k int) []float64 {
	if k == 1 {
		return []float64{1}
	}
	alphas := make([]float64, k)
	for i := range alphas {
		alphas[i] = alpha
	}
	return distmv.NewDirichlet(alphas, s.src).Rand(nil)
}

// Multinomial distributes n trials over len(p) categories. p need not be
// normalised; it must be non-empty with a positive sum.
// Categories are drawn as a chain of conditional binomials, so the counts
// always sum to exactly n.
func (s *Sampler) Multinomial(n int, p []float64) []int {
	counts := make([]int, len(p))
	var mass float64
	for _, v := range p {
		mass += v
	}
	remaining := n
	for i := 0; i < len(p)-1 && remaining > 0; i++ {
		if mass <= 0 {
			break
		}
		c := s.Binomial(remaining, p[i]/mass)
		counts[i] = c
		remaining -= c
		mass -= p[i]
	}
	counts[len(p)-1] += remaining
	return counts
}

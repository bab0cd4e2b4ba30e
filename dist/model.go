// SPDX-License-Identifier: MIT
// Package: cognasim/dist
//
// model.go — class-count model variants.
//
// The variant set is closed (unexported marker method); every variant carries
// typed fields and validates itself against the taxon count before any
// generation starts.

package dist

import "fmt"

// ClassCountModel is a discrete distribution over the number of cognate
// classes of one feature.
type ClassCountModel interface {
	// Validate checks parameters against the number of taxa.
	Validate(ntaxa int) error
	// Family names the variant ("uniform", "poisson", "negative_binomial").
	Family() string
	draw(s *Sampler) int
}

// Uniform draws k uniformly from [Min, Max].
type Uniform struct {
	Min int
	Max int
}

// Poisson draws k from Poisson(Lambda).
type Poisson struct {
	Lambda float64
}

// NegativeBinomial draws k from NB(R, P): failures before R successes.
type NegativeBinomial struct {
	R float64
	P float64
}

// Family tokens, also accepted by the configuration layer.
const (
	FamilyUniform          = "uniform"
	FamilyPoisson          = "poisson"
	FamilyNegativeBinomial = "negative_binomial"
)

// Validate implements ClassCountModel.
func (m Uniform) Validate(ntaxa int) error {
	switch {
	case m.Min < 1:
		return fmt.Errorf("uniform: min=%d must be ≥ 1: %w", m.Min, ErrModelConfiguration)
	case m.Min > m.Max:
		return fmt.Errorf("uniform: min=%d cannot exceed max=%d: %w", m.Min, m.Max, ErrModelConfiguration)
	case m.Max > ntaxa:
		return fmt.Errorf("uniform: max=%d cannot exceed ntaxa=%d: %w", m.Max, ntaxa, ErrModelConfiguration)
	}
	return nil
}

// Family implements ClassCountModel.
func (Uniform) Family() string { return FamilyUniform }

func (m Uniform) draw(s *Sampler) int { return s.IntRange(m.Min, m.Max) }

// Validate implements ClassCountModel.
func (m Poisson) Validate(int) error {
	if !(m.Lambda > 0) {
		return fmt.Errorf("poisson: lambda=%g must be > 0: %w", m.Lambda, ErrModelConfiguration)
	}
	return nil
}

// Family implements ClassCountModel.
func (Poisson) Family() string { return FamilyPoisson }

func (m Poisson) draw(s *Sampler) int { return s.Poisson(m.Lambda) }

// Validate implements ClassCountModel.
func (m NegativeBinomial) Validate(int) error {
	if !(m.R > 0) {
		return fmt.Errorf("negative_binomial: r=%g must be > 0: %w", m.R, ErrModelConfiguration)
	}
	if !(m.P > 0 && m.P <= 1) {
		return fmt.Errorf("negative_binomial: p=%g not in (0,1]: %w", m.P, ErrModelConfiguration)
	}
	return nil
}

// Family implements ClassCountModel.
func (NegativeBinomial) Family() string { return FamilyNegativeBinomial }

func (m NegativeBinomial) draw(s *Sampler) int { return s.NegativeBinomial(m.R, m.P) }

// SampleClassCount draws k from m until lo ≤ k ≤ hi. It makes at most budget
// draws and reports how many it used. The model is not re-validated here.
func SampleClassCount(s *Sampler, m ClassCountModel, lo, hi, budget int) (k, attempts int, err error) {
	if m == nil {
		return 0, 0, fmt.Errorf("SampleClassCount: nil model: %w", ErrModelConfiguration)
	}
	if budget < 1 {
		return 0, 0, fmt.Errorf("SampleClassCount: budget=%d: %w", budget, ErrInvalidParameter)
	}
	for attempts = 1; attempts <= budget; attempts++ {
		k = m.draw(s)
		if k >= lo && k <= hi {
			return k, attempts, nil
		}
	}
	return 0, budget, fmt.Errorf("SampleClassCount: %s produced no value in [%d,%d] after %d draws: %w",
		m.Family(), lo, hi, budget, ErrSamplingExhausted)
}

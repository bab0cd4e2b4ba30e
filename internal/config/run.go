// SPDX-License-Identifier: MIT
// Package: cognasim/internal/config
//
// run.go — validated run settings and their simulator options.

// Package config loads, validates and maps simulation run settings.
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/simulate"
)

// Run is a validated simulation request.
type Run struct {
	Name       string
	Model      string
	Languages  int
	Features   int
	Seed       uint64
	SeedSet    bool
	Replicates int

	BirthRate        float64
	CognateBirthRate float64
	Gamma            float64
	// Borrowing is the post-generation per-cell borrowing probability
	// (tree model only).
	Borrowing float64
	// TreeBorrowing is the lateral transfer rate inside the tree simulator.
	TreeBorrowing float64

	// Alpha, Samples and Classes use the model default when zero or nil.
	// The dollo model rejects them.
	Alpha             float64
	ConcatProbability float64
	Samples           int
	NameLength        int
	Classes           dist.ClassCountModel
}

// Default mirrors the command-line defaults.
func Default() Run {
	return Run{
		Name:              "run",
		Model:             simulate.ModelSwamp,
		Languages:         10,
		Features:          10,
		Replicates:        1,
		BirthRate:         simulate.DefaultBirthRate,
		CognateBirthRate:  1.0,
		Gamma:             simulate.DefaultGammaShape,
		ConcatProbability: simulate.DefaultConcatProbability,
		NameLength:        simulate.DefaultNameLength,
	}
}

// FieldError reports an invalid setting. It unwraps to
// simulate.ErrModelConfiguration.
type FieldError struct {
	Path  string
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config: %s: %s: %s", e.Path, e.Field, e.Msg)
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error { return simulate.ErrModelConfiguration }

func invalidField(path, field, msg string) error {
	return &FieldError{Path: path, Field: field, Msg: msg}
}

// Validate checks every field. Option constructors panic on the values it
// rejects, so callers must validate before calling Options.
func (r Run) Validate() error {
	return r.validate("")
}

func (r Run) validate(path string) error {
	switch r.Model {
	case simulate.ModelDollo, simulate.ModelChain, simulate.ModelSwamp:
	default:
		return invalidField(path, "model", fmt.Sprintf("unknown model %q (want dollo, chain or swamp)", r.Model))
	}
	checks := []struct {
		ok    bool
		field string
		msg   string
	}{
		{strings.TrimSpace(r.Name) != "", "name", "is required"},
		{r.Languages >= 1, "languages", "must be ≥ 1"},
		{r.Features >= 1, "features", "must be ≥ 1"},
		{r.Replicates >= 1, "replicates", "must be ≥ 1"},
		{r.BirthRate > 0, "birth_rate", "must be > 0"},
		{r.CognateBirthRate >= 0, "cognate_birth_rate", "must be ≥ 0"},
		{r.Gamma > 0, "gamma", "must be > 0"},
		{r.Borrowing >= 0 && r.Borrowing <= 1, "borrowing", "must be in [0,1]"},
		{r.TreeBorrowing >= 0, "tree_borrowing", "must be ≥ 0"},
		{r.Alpha >= 0, "alpha", "must be ≥ 0 (0 selects the model default)"},
		{r.ConcatProbability >= 0 && r.ConcatProbability <= 1, "concat_probability", "must be in [0,1]"},
		{r.Samples >= 0, "samples", "must be ≥ 0 (0 selects the model default)"},
		{r.NameLength >= 1, "name_length", "must be ≥ 1"},
	}
	for _, c := range checks {
		if !c.ok {
			return invalidField(path, c.field, c.msg)
		}
	}
	if r.Model == simulate.ModelDollo {
		switch {
		case r.Classes != nil:
			return invalidField(path, "classes", "not used by the dollo model")
		case r.Alpha != 0:
			return invalidField(path, "alpha", "not used by the dollo model")
		case r.Samples != 0:
			return invalidField(path, "samples", "not used by the dollo model")
		}
		return nil
	}
	if r.Classes != nil {
		if err := r.Classes.Validate(r.Languages); err != nil {
			return invalidField(path, "classes", err.Error())
		}
	}
	return nil
}

// Options translates r into simulator options. r must be valid.
func (r Run) Options(extra ...simulate.Option) []simulate.Option {
	opts := []simulate.Option{simulate.WithSeed(r.Seed)}
	switch r.Model {
	case simulate.ModelDollo:
		opts = append(opts,
			simulate.WithBirthRate(r.BirthRate),
			simulate.WithCognateBirthRate(r.CognateBirthRate),
			simulate.WithGammaShape(r.Gamma),
			simulate.WithBorrowingRate(r.TreeBorrowing),
		)
	case simulate.ModelChain:
		opts = append(opts, simulate.WithConcatProbability(r.ConcatProbability))
		opts = r.appendClassOptions(opts)
	case simulate.ModelSwamp:
		opts = append(opts, simulate.WithNameLength(r.NameLength))
		opts = r.appendClassOptions(opts)
	}
	return append(opts, extra...)
}

func (r Run) appendClassOptions(opts []simulate.Option) []simulate.Option {
	if r.Alpha > 0 {
		opts = append(opts, simulate.WithAlpha(r.Alpha))
	}
	if r.Samples > 0 {
		opts = append(opts, simulate.WithSampleBudget(r.Samples))
	}
	if r.Classes != nil {
		opts = append(opts, simulate.WithClassCountModel(r.Classes))
	}
	return opts
}

// NewSimulator validates r and builds the simulator it describes.
func (r Run) NewSimulator(extra ...simulate.Option) (simulate.Simulator, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	opts := r.Options(extra...)
	switch r.Model {
	case simulate.ModelDollo:
		return simulate.NewDollo(r.Languages, r.Features, opts...)
	case simulate.ModelChain:
		return simulate.NewChain(r.Languages, r.Features, opts...)
	default:
		return simulate.NewSwamp(r.Languages, r.Features, opts...)
	}
}

// ParseClasses builds a class-count model from its YAML shape.
func ParseClasses(c YAMLClasses) (dist.ClassCountModel, error) {
	switch c.Family {
	case dist.FamilyUniform:
		return dist.Uniform{Min: c.Min, Max: c.Max}, nil
	case dist.FamilyPoisson:
		return dist.Poisson{Lambda: c.Lambda}, nil
	case dist.FamilyNegativeBinomial:
		return dist.NegativeBinomial{R: c.R, P: c.P}, nil
	}
	return nil, fmt.Errorf("unknown family %q", c.Family)
}

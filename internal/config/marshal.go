// SPDX-License-Identifier: MIT
// Package: cognasim/internal/config
//
// marshal.go — Run back to its YAML shape.

package config

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cognasim/dist"
)

// DTO converts r back to its file shape. Zero-valued model defaults are
// omitted.
func (r Run) DTO() YAMLRun {
	dto := YAMLRun{
		Name:              &r.Name,
		Model:             &r.Model,
		Languages:         &r.Languages,
		Features:          &r.Features,
		Replicates:        &r.Replicates,
		BirthRate:         &r.BirthRate,
		CognateBirthRate:  &r.CognateBirthRate,
		Gamma:             &r.Gamma,
		Borrowing:         &r.Borrowing,
		TreeBorrowing:     &r.TreeBorrowing,
		ConcatProbability: &r.ConcatProbability,
		NameLength:        &r.NameLength,
	}
	if r.SeedSet {
		dto.Seed = &r.Seed
	}
	if r.Alpha > 0 {
		dto.Alpha = &r.Alpha
	}
	if r.Samples > 0 {
		dto.Samples = &r.Samples
	}
	switch m := r.Classes.(type) {
	case dist.Uniform:
		dto.Classes = &YAMLClasses{Family: m.Family(), Min: m.Min, Max: m.Max}
	case dist.Poisson:
		dto.Classes = &YAMLClasses{Family: m.Family(), Lambda: m.Lambda}
	case dist.NegativeBinomial:
		dto.Classes = &YAMLClasses{Family: m.Family(), R: m.R, P: m.P}
	}
	return dto
}

// Marshal renders r as a YAML run file that Load reads back to r.
func Marshal(r Run) ([]byte, error) {
	return yaml.Marshal(r.DTO())
}

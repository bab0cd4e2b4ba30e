// SPDX-License-Identifier: MIT
// Package: cognasim/internal/config
//
// yaml_dto.go — on-disk shape of a run file.

package config

// YAMLRun is the on-disk shape of a run file. Pointer fields distinguish
// "absent" from zero so a file only overrides what it names.
type YAMLRun struct {
	Name       *string `yaml:"name"`
	Model      *string `yaml:"model"`
	Languages  *int    `yaml:"languages"`
	Features   *int    `yaml:"features"`
	Seed       *uint64 `yaml:"seed"`
	Replicates *int    `yaml:"replicates"`

	BirthRate        *float64 `yaml:"birth_rate"`
	CognateBirthRate *float64 `yaml:"cognate_birth_rate"`
	Gamma            *float64 `yaml:"gamma"`
	Borrowing        *float64 `yaml:"borrowing"`
	TreeBorrowing    *float64 `yaml:"tree_borrowing"`

	Alpha             *float64     `yaml:"alpha"`
	ConcatProbability *float64     `yaml:"concat_probability"`
	Samples           *int         `yaml:"samples"`
	NameLength        *int         `yaml:"name_length"`
	Classes           *YAMLClasses `yaml:"classes"`
}

// YAMLClasses selects a class-count distribution by family.
type YAMLClasses struct {
	Family string  `yaml:"family"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Lambda float64 `yaml:"lambda"`
	R      float64 `yaml:"r"`
	P      float64 `yaml:"p"`
}

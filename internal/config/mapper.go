// SPDX-License-Identifier: MIT
// Package: cognasim/internal/config
//
// mapper.go — overlays YAML fields on defaults.

package config

// MapRun overlays the fields present in dto onto base and validates the
// result.
func MapRun(path string, dto YAMLRun, base Run) (Run, error) {
	r := base
	setString(&r.Name, dto.Name)
	setString(&r.Model, dto.Model)
	setInt(&r.Languages, dto.Languages)
	setInt(&r.Features, dto.Features)
	setInt(&r.Replicates, dto.Replicates)
	if dto.Seed != nil {
		r.Seed, r.SeedSet = *dto.Seed, true
	}

	setFloat(&r.BirthRate, dto.BirthRate)
	setFloat(&r.CognateBirthRate, dto.CognateBirthRate)
	setFloat(&r.Gamma, dto.Gamma)
	setFloat(&r.Borrowing, dto.Borrowing)
	setFloat(&r.TreeBorrowing, dto.TreeBorrowing)

	setFloat(&r.Alpha, dto.Alpha)
	setFloat(&r.ConcatProbability, dto.ConcatProbability)
	setInt(&r.Samples, dto.Samples)
	setInt(&r.NameLength, dto.NameLength)
	if dto.Classes != nil {
		m, err := ParseClasses(*dto.Classes)
		if err != nil {
			return Run{}, invalidField(path, "classes.family", err.Error())
		}
		r.Classes = m
	}

	if err := r.validate(path); err != nil {
		return Run{}, err
	}
	return r, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

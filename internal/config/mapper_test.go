package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/simulate"
)

func ptr[T any](v T) *T { return &v }

func TestMapRunOverlaysOnlyPresentFields(t *testing.T) {
	dto := YAMLRun{
		Model:     ptr("chain"),
		Languages: ptr(25),
		Seed:      ptr(uint64(9)),
		Alpha:     ptr(0.5),
		Classes:   &YAMLClasses{Family: "negative_binomial", R: 8, P: 0.45},
	}

	r, err := MapRun("run.yaml", dto, Default())
	require.NoError(t, err)

	assert.Equal(t, simulate.ModelChain, r.Model)
	assert.Equal(t, 25, r.Languages)
	assert.Equal(t, 10, r.Features)
	assert.True(t, r.SeedSet)
	assert.Equal(t, uint64(9), r.Seed)
	assert.Equal(t, 0.5, r.Alpha)
	assert.Equal(t, dist.NegativeBinomial{R: 8, P: 0.45}, r.Classes)
	assert.Equal(t, simulate.DefaultConcatProbability, r.ConcatProbability)
}

func TestMapRunRejectsInvalidFields(t *testing.T) {
	cases := map[string]YAMLRun{
		"model":              {Model: ptr("forest")},
		"languages":          {Languages: ptr(0)},
		"gamma":              {Gamma: ptr(0.0)},
		"borrowing":          {Borrowing: ptr(1.5)},
		"concat_probability": {ConcatProbability: ptr(-0.1)},
		"classes":            {Classes: &YAMLClasses{Family: "uniform", Min: 1, Max: 40}},
		"classes.family":     {Classes: &YAMLClasses{Family: "zipf"}},
	}
	for field, dto := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := MapRun("run.yaml", dto, Default())
			require.Error(t, err)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, field, fe.Field)
			assert.ErrorIs(t, err, simulate.ErrModelConfiguration)
			assert.Contains(t, err.Error(), "run.yaml")
		})
	}
}

func TestValidateRejectsClassSettingsForDollo(t *testing.T) {
	cases := map[string]func(*Run){
		"classes": func(r *Run) { r.Classes = dist.Uniform{Min: 1, Max: 3} },
		"alpha":   func(r *Run) { r.Alpha = 0.5 },
		"samples": func(r *Run) { r.Samples = 20 },
	}
	for field, set := range cases {
		t.Run(field, func(t *testing.T) {
			r := Default()
			r.Model = simulate.ModelDollo
			require.NoError(t, r.Validate())

			set(&r)
			err := r.Validate()
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, field, fe.Field)
			assert.ErrorIs(t, err, simulate.ErrModelConfiguration)

			r.Model = simulate.ModelSwamp
			require.NoError(t, r.Validate())
		})
	}
}

func TestRunNewSimulator(t *testing.T) {
	for _, model := range []string{simulate.ModelDollo, simulate.ModelChain, simulate.ModelSwamp} {
		r := Default()
		r.Model = model
		r.Seed = 3

		sim, err := r.NewSimulator()
		require.NoError(t, err, model)
		assert.Equal(t, model, sim.Model())

		m, err := sim.Generate()
		require.NoError(t, err, model)
		assert.Equal(t, r.Languages, m.NumTaxa())
		assert.Equal(t, r.Features, m.NumFeatures())
	}
}

func TestRunOptionsAppendExtra(t *testing.T) {
	r := Default()
	r.Seed = 1
	var calls int
	sim, err := r.NewSimulator(simulate.WithOnFeature(func(simulate.FeatureStats) { calls++ }))
	require.NoError(t, err)
	_, err = sim.Generate()
	require.NoError(t, err)
	assert.Equal(t, r.Features, calls)
}

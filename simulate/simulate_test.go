package simulate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/names"
	"github.com/katalvlaran/cognasim/phylo"
	"github.com/katalvlaran/cognasim/simulate"
)

// requireFullCoverage checks shape and that each feature uses exactly 0..k-1.
func requireFullCoverage(t *testing.T, m *cognate.Matrix, nTaxa, nFeatures int) {
	t.Helper()
	require.Equal(t, nTaxa, m.NumTaxa())
	require.Equal(t, nFeatures, m.NumFeatures())
	require.NoError(t, m.Validate())
	for _, f := range m.Features() {
		classes := m.Classes(f)
		require.NotEmpty(t, classes, f)
		for i, c := range classes {
			require.Equal(t, cognate.State(i), c, "feature %s", f)
		}
		for _, v := range m.Column(f) {
			require.NotEqual(t, cognate.Unknown, v)
		}
	}
}

func TestDollo_CoverageAndNames(t *testing.T) {
	t.Parallel()

	d, err := simulate.NewDollo(12, 25, simulate.WithSeed(11))
	require.NoError(t, err)
	m, err := d.Generate()
	require.NoError(t, err)

	requireFullCoverage(t, m, 12, 25)
	assert.Equal(t, "f_000", m.Features()[0])
	assert.Equal(t, "f_024", m.Features()[24])
	assert.ElementsMatch(t, d.Tree().Taxa(), m.Taxa())
	assert.Equal(t, simulate.ModelDollo, d.Model())
}

func TestDollo_ZeroCognateRateIsUniform(t *testing.T) {
	t.Parallel()

	d, err := simulate.NewDollo(8, 10,
		simulate.WithSeed(42),
		simulate.WithCognateBirthRate(0),
	)
	require.NoError(t, err)
	m, err := d.Generate()
	require.NoError(t, err)

	for _, f := range m.Features() {
		require.Equal(t, []cognate.State{0}, m.Classes(f))
	}
}

func TestDollo_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() (*simulate.Dollo, *cognate.Matrix) {
		d, err := simulate.NewDollo(15, 20,
			simulate.WithSeed(2024),
			simulate.WithBorrowingRate(0.3),
		)
		require.NoError(t, err)
		m, err := d.Generate()
		require.NoError(t, err)
		return d, m
	}
	d1, m1 := build()
	d2, m2 := build()

	assert.Equal(t, d1.Tree().Newick(), d2.Tree().Newick())
	assert.True(t, m1.Equal(m2))
}

func TestDollo_BorrowingKeepsCoverage(t *testing.T) {
	t.Parallel()

	var borrowed int
	d, err := simulate.NewDollo(10, 40,
		simulate.WithSeed(5),
		simulate.WithBorrowingRate(20),
		simulate.WithOnFeature(func(fs simulate.FeatureStats) { borrowed += fs.Borrowings }),
	)
	require.NoError(t, err)
	m, err := d.Generate()
	require.NoError(t, err)

	requireFullCoverage(t, m, 10, 40)
	assert.Positive(t, borrowed)
}

func TestDollo_WithTree(t *testing.T) {
	t.Parallel()

	tr, err := phylo.FromParents(
		[]int{phylo.NoParent, 0, 0},
		[]float64{0, 1, 1},
		[]string{"", "aaa", "bbb"},
	)
	require.NoError(t, err)

	d, err := simulate.NewDollo(2, 5, simulate.WithSeed(1), simulate.WithTree(tr))
	require.NoError(t, err)
	require.Same(t, tr, d.Tree())
	m, err := d.Generate()
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb"}, m.Taxa())

	_, err = simulate.NewDollo(3, 5, simulate.WithSeed(1), simulate.WithTree(tr))
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)
}

func TestDollo_SingleLanguage(t *testing.T) {
	t.Parallel()

	d, err := simulate.NewDollo(1, 3, simulate.WithSeed(9))
	require.NoError(t, err)
	m, err := d.Generate()
	require.NoError(t, err)
	requireFullCoverage(t, m, 1, 3)
}

func TestChain_Coverage(t *testing.T) {
	t.Parallel()

	c, err := simulate.NewChain(20, 30, simulate.WithSeed(8))
	require.NoError(t, err)
	m, err := c.Generate()
	require.NoError(t, err)

	requireFullCoverage(t, m, 20, 30)
	assert.ElementsMatch(t, c.Languages(), m.Taxa())
}

func TestChain_TwoLanguages(t *testing.T) {
	t.Parallel()

	c, err := simulate.NewChain(2, 50,
		simulate.WithSeed(3),
		simulate.WithClassCountModel(dist.Uniform{Min: 1, Max: 2}),
	)
	require.NoError(t, err)
	m, err := c.Generate()
	require.NoError(t, err)

	requireFullCoverage(t, m, 2, 50)
	for _, f := range m.Features() {
		require.LessOrEqual(t, len(m.Classes(f)), 2)
	}
}

func TestChain_LanguageOrderFixedAcrossReplicates(t *testing.T) {
	t.Parallel()

	c, err := simulate.NewChain(6, 4, simulate.WithSeed(21))
	require.NoError(t, err)
	before := c.Languages()
	m1, err := c.Generate()
	require.NoError(t, err)
	m2, err := c.Generate()
	require.NoError(t, err)

	assert.Equal(t, before, c.Languages())
	assert.Equal(t, m1.Taxa(), m2.Taxa())
}

func TestChain_Errors(t *testing.T) {
	t.Parallel()

	_, err := simulate.NewChain(5, 3,
		simulate.WithSeed(1),
		simulate.WithClassCountModel(dist.Uniform{Min: 1, Max: 9}),
	)
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)

	_, err = simulate.NewChain(0, 3, simulate.WithSeed(1))
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)

	_, err = simulate.NewChain(5, 3)
	require.ErrorIs(t, err, simulate.ErrNeedRandSource)

	c, err := simulate.NewChain(2, 3,
		simulate.WithSeed(1),
		simulate.WithClassCountModel(dist.Poisson{Lambda: 60}),
		simulate.WithSampleBudget(3),
	)
	require.NoError(t, err)
	_, err = c.Generate()
	require.ErrorIs(t, err, simulate.ErrSamplingExhausted)
}

func TestSwamp_FixedClassCount(t *testing.T) {
	t.Parallel()

	var calls int
	sw, err := simulate.NewSwamp(10, 10,
		simulate.WithSeed(4),
		simulate.WithClassCountModel(dist.Uniform{Min: 3, Max: 3}),
		simulate.WithOnFeature(func(fs simulate.FeatureStats) {
			calls++
			assert.Equal(t, 3, fs.Classes)
			assert.Equal(t, 1, fs.Attempts)
		}),
	)
	require.NoError(t, err)
	m, err := sw.Generate()
	require.NoError(t, err)

	requireFullCoverage(t, m, 10, 10)
	assert.Equal(t, 10, calls)
	for _, f := range m.Features() {
		require.Equal(t, []cognate.State{0, 1, 2}, m.Classes(f))
	}
	assert.Equal(t, "f01", m.Features()[0])
	assert.Equal(t, "f10", m.Features()[9])
	for _, taxon := range m.Taxa() {
		require.Len(t, taxon, 3)
	}
}

func TestSwamp_PoissonModel(t *testing.T) {
	t.Parallel()

	sw, err := simulate.NewSwamp(12, 20,
		simulate.WithSeed(10),
		simulate.WithClassCountModel(dist.Poisson{Lambda: 4}),
		simulate.WithSampleBudget(1000),
	)
	require.NoError(t, err)
	m, err := sw.Generate()
	require.NoError(t, err)
	requireFullCoverage(t, m, 12, 20)
}

func TestSwamp_Errors(t *testing.T) {
	t.Parallel()

	_, err := simulate.NewSwamp(4, 2,
		simulate.WithSeed(1),
		simulate.WithClassCountModel(dist.Uniform{Min: 3, Max: 2}),
	)
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)

	_, err = simulate.NewSwamp(30, 2, simulate.WithSeed(1), simulate.WithNameLength(1))
	require.ErrorIs(t, err, simulate.ErrNameSpaceExhausted)

	_, err = simulate.NewSwamp(3, 0, simulate.WithSeed(1))
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)
}

func TestSimulators_Deterministic(t *testing.T) {
	t.Parallel()

	ctors := map[string]func(seed uint64) (simulate.Simulator, error){
		simulate.ModelChain: func(seed uint64) (simulate.Simulator, error) {
			return simulate.NewChain(9, 12, simulate.WithSeed(seed))
		},
		simulate.ModelSwamp: func(seed uint64) (simulate.Simulator, error) {
			return simulate.NewSwamp(9, 12, simulate.WithSeed(seed))
		},
	}
	for model, ctor := range ctors {
		a, err := ctor(77)
		require.NoError(t, err)
		b, err := ctor(77)
		require.NoError(t, err)
		ma, err := a.Generate()
		require.NoError(t, err)
		mb, err := b.Generate()
		require.NoError(t, err)
		assert.True(t, ma.Equal(mb), model)
		assert.Equal(t, model, a.Model())
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { simulate.WithAlpha(0) })
	assert.Panics(t, func() { simulate.WithBirthRate(-1) })
	assert.Panics(t, func() { simulate.WithCognateBirthRate(-0.1) })
	assert.Panics(t, func() { simulate.WithGammaShape(0) })
	assert.Panics(t, func() { simulate.WithBorrowingRate(-1) })
	assert.Panics(t, func() { simulate.WithConcatProbability(1.5) })
	assert.Panics(t, func() { simulate.WithSampleBudget(0) })
	assert.Panics(t, func() { simulate.WithNameLength(0) })
	assert.Panics(t, func() { simulate.WithClassCountModel(nil) })
	assert.Panics(t, func() { simulate.WithOnFeature(nil) })
	assert.NotPanics(t, func() { simulate.WithCognateBirthRate(0) })
}

func ExampleNewSwamp() {
	sw, _ := simulate.NewSwamp(4, 3,
		simulate.WithSeed(1),
		simulate.WithClassCountModel(dist.Uniform{Min: 2, Max: 2}),
	)
	m, _ := sw.Generate()
	for _, f := range m.Features() {
		fmt.Println(f, m.Classes(f))
	}
	fmt.Println(names.PaddedFeature(3, 3) == m.Features()[2])
	// Output:
	// f1 [0 1]
	// f2 [0 1]
	// f3 [0 1]
	// true
}

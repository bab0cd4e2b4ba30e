package phylo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cognasim/names"
	"github.com/katalvlaran/cognasim/phylo"
)

// fixture builds
//
//	     0
//	   /   \
//	  1     2
//	 / \   / \
//	3   4 5   6
func fixture(t *testing.T) *phylo.Tree {
	t.Helper()
	tr, err := phylo.FromParents(
		[]int{phylo.NoParent, 0, 0, 1, 1, 2, 2},
		[]float64{0, 1, 2, 1, 1, 0.5, 0.5},
		[]string{"", "", "", "a", "b", "c", "d"},
	)
	require.NoError(t, err)
	return tr
}

func TestBirthDeath_Shape(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 26, 100} {
		tr, err := phylo.BirthDeath(n, phylo.WithSeed(42))
		require.NoError(t, err)
		require.Len(t, tr.Leaves(), n)
		require.Equal(t, 2*n-1, tr.Len())
		require.Len(t, tr.Edges(), 2*n-2)

		for _, e := range tr.Edges() {
			require.Greater(t, e.Length, 0.0)
			require.Equal(t, e.Parent, tr.Parent(e.Child))
		}
		for _, id := range tr.Preorder() {
			if !tr.IsLeaf(id) {
				require.Len(t, tr.Children(id), 2)
			}
		}

		seen := map[string]bool{}
		for _, taxon := range tr.Taxa() {
			require.True(t, names.Default().Contains(taxon))
			require.False(t, seen[taxon])
			seen[taxon] = true
		}
	}
}

func TestBirthDeath_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := phylo.BirthDeath(30, phylo.WithSeed(7), phylo.WithBirthRate(2))
	require.NoError(t, err)
	b, err := phylo.BirthDeath(30, phylo.WithSeed(7), phylo.WithBirthRate(2))
	require.NoError(t, err)

	require.Equal(t, a.Edges(), b.Edges())
	require.Equal(t, a.Taxa(), b.Taxa())
	require.Equal(t, a.Newick(), b.Newick())

	c, err := phylo.BirthDeath(30, phylo.WithSeed(8), phylo.WithBirthRate(2))
	require.NoError(t, err)
	require.NotEqual(t, a.Edges(), c.Edges())
}

func TestBirthDeath_Errors(t *testing.T) {
	t.Parallel()

	_, err := phylo.BirthDeath(0, phylo.WithSeed(1))
	require.ErrorIs(t, err, phylo.ErrTooFewTaxa)

	_, err = phylo.BirthDeath(5)
	require.ErrorIs(t, err, phylo.ErrNeedRandSource)

	_, err = phylo.BirthDeath(names.Default().Size()+1, phylo.WithSeed(1))
	require.ErrorIs(t, err, names.ErrNameSpaceExhausted)

	small, err := names.NewSpace("abc", 2)
	require.NoError(t, err)
	_, err = phylo.BirthDeath(4, phylo.WithSeed(1), phylo.WithNameSpace(small))
	require.ErrorIs(t, err, names.ErrNameSpaceExhausted)

	assert.Panics(t, func() { phylo.WithBirthRate(0) })
	assert.Panics(t, func() { phylo.WithSource(nil) })
}

func TestTree_Indices(t *testing.T) {
	t.Parallel()

	tr := fixture(t)
	assert.Equal(t, 0, tr.Root())
	assert.Equal(t, []int{0, 1, 3, 4, 2, 5, 6}, tr.Preorder())
	assert.Equal(t, []int{3, 4, 5, 6}, tr.Leaves())
	assert.Equal(t, []string{"a", "b", "c", "d"}, tr.Taxa())
	assert.Equal(t, 2.0, tr.Depth(3))
	assert.Equal(t, 2.5, tr.Depth(6))

	assert.True(t, tr.IsAncestor(0, 6))
	assert.True(t, tr.IsAncestor(2, 6))
	assert.False(t, tr.IsAncestor(1, 6))
	assert.False(t, tr.IsAncestor(6, 6))
	assert.Equal(t, []uint32{0, 2, 6}, tr.Lineage(6).ToArray())
	assert.Equal(t, []int{2, 5, 6}, tr.Subtree(2))
	assert.Len(t, tr.SubtreeEdges(1), 2)

	// mutating a returned copy never leaks back
	anc := tr.Ancestors(6)
	anc.Add(5)
	assert.False(t, tr.IsAncestor(5, 6))
}

func TestFromParents_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parents []int
		lengths []float64
		taxa    []string
	}{
		{"empty", nil, nil, nil},
		{"two roots", []int{-1, -1}, []float64{0, 0}, []string{"a", "b"}},
		{"no root", []int{1, 0}, []float64{1, 1}, []string{"a", "b"}},
		{"zero length", []int{-1, 0, 0}, []float64{0, 0, 1}, []string{"", "a", "b"}},
		{"unlabelled leaf", []int{-1, 0, 0}, []float64{0, 1, 1}, []string{"", "a", ""}},
		{"duplicate label", []int{-1, 0, 0}, []float64{0, 1, 1}, []string{"", "a", "a"}},
		{"ragged", []int{-1, 0}, []float64{0}, []string{"", "a"}},
		{"detached cycle", []int{-1, 0, 3, 2}, []float64{0, 1, 1, 1}, []string{"", "a", "", ""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := phylo.FromParents(tc.parents, tc.lengths, tc.taxa)
			require.ErrorIs(t, err, phylo.ErrInvalidTree)
		})
	}
}

func TestNewick(t *testing.T) {
	t.Parallel()

	nw := fixture(t).Newick()
	require.True(t, strings.HasSuffix(strings.TrimSpace(nw), ";"))
	for _, taxon := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, nw, taxon)
	}
}

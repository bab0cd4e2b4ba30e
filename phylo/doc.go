// SPDX-License-Identifier: MIT

// Package phylo defines a rooted binary phylogenetic tree with branch lengths
// and the pure-birth (Yule) generator that produces it.
//
// The tree is an arena: every node has a stable integer ID assigned at
// construction, topology and branch lengths are immutable afterwards, and
// per-feature state (such as the current cognate class of each node) is kept
// by callers in plain slices indexed by node ID.
//
// Precomputed on construction:
//   - pre-order node sequence and parent→child edge list,
//   - depth of every node (time elapsed since the root),
//   - ancestor sets as roaring bitmaps for O(1) "is ancestor" checks.
//
// Generator:
//
//	BirthDeath(n, opts...)   Yule process (death rate 0) grown to n leaves.
//
// Options:
//
//	WithBirthRate(r)         lineage splitting rate (> 0, default 1.0).
//	WithSeed(seed)           deterministic PCG stream.
//	WithSource(src)          caller-owned math/rand/v2 source.
//	WithSampler(s)           share a dist.Sampler with other components.
//	WithNameSpace(space)     leaf labels drawn without replacement (default names.Default()).
//
// Errors:
//
//	ErrTooFewTaxa       - n < 1.
//	ErrNeedRandSource   - no RNG configured.
//	ErrInvalidTree      - FromParents input is not a rooted tree.
//	names.ErrNameSpaceExhausted - more leaves than names.
//
// Export: Newick() renders the tree through github.com/evolbioinfo/gotree.
package phylo

// SPDX-License-Identifier: MIT

// Package names generates synthetic taxon and feature labels for simulated
// cognate datasets.
//
// Two taxon naming schemes are provided:
//
//   - Space:       a finite combinatorial name space (k-combinations of an
//     alphabet, "abc", "abd", ...). Names are drawn without replacement, so a
//     run can never contain duplicates. The default space holds the 2600
//     3-combinations of a..z used by the tree and chain simulators.
//   - RandomFixed: fixed-length random lowercase strings, regenerated until
//     unique within the run. Used by the swamp simulator.
//
// Feature names follow two conventions that downstream tooling relies on
// literally: Feature(i) yields "f_000", "f_001", ... and PaddedFeature(i, n)
// yields 1-based ordinals padded to the width of n ("f001" ... "f313").
//
// Errors:
//
//	ErrNameSpaceExhausted - more names requested than the scheme can produce.
//	ErrInvalidLength      - non-positive name length or combination size.
//
// All randomness flows through an explicit *rand.Rand (math/rand/v2); the
// package holds no global random state.
package names

// SPDX-License-Identifier: MIT
// Package: cognasim/phylo
//
// errors.go — sentinel errors for the phylo package.

package phylo

import "errors"

// ErrTooFewTaxa indicates a requested leaf count below 1.
var ErrTooFewTaxa = errors.New("phylo: taxa count must be ≥ 1")

// ErrNeedRandSource indicates that the generator was run without an RNG.
var ErrNeedRandSource = errors.New("phylo: rng is required")

// ErrInvalidTree indicates an explicit topology that is not a rooted tree
// with positive branch lengths and labelled leaves.
var ErrInvalidTree = errors.New("phylo: invalid tree")

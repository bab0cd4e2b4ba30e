// SPDX-License-Identifier: MIT
// Package: cognasim/cognate
//
// errors.go — sentinel errors for the cognate package.

package cognate

import "errors"

var (
	// ErrEmptyMatrix indicates an operation that needs at least one taxon
	// and one feature.
	ErrEmptyMatrix = errors.New("cognate: empty matrix")

	// ErrIncompleteMatrix indicates a taxon without a value for a feature
	// that other taxa carry.
	ErrIncompleteMatrix = errors.New("cognate: incomplete matrix")

	// ErrInputFormat indicates malformed upstream data (harvest CSV, CLDF).
	ErrInputFormat = errors.New("cognate: malformed input")

	// ErrInvalidRate indicates a probability or coverage outside its domain.
	ErrInvalidRate = errors.New("cognate: rate out of range")

	// ErrNeedRandSource indicates a random operation called without an RNG.
	ErrNeedRandSource = errors.New("cognate: rng is required")
)

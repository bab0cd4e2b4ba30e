// SPDX-License-Identifier: MIT
// Package: cognasim/simulate
//
// errors.go — error taxonomy for simulator callers.
//
// The taxonomy spans several packages; the sentinels are re-exported here so
// callers of simulate need a single import to classify failures.

package simulate

import (
	"errors"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/dist"
	"github.com/katalvlaran/cognasim/names"
)

var (
	// ErrSamplingExhausted: a class-count model missed its validity window
	// for the whole resampling budget. Fatal for the run.
	ErrSamplingExhausted = dist.ErrSamplingExhausted

	// ErrModelConfiguration: parameters failed validation before generation.
	ErrModelConfiguration = dist.ErrModelConfiguration

	// ErrNameSpaceExhausted: more taxa requested than unique names exist.
	ErrNameSpaceExhausted = names.ErrNameSpaceExhausted

	// ErrInputFormat: malformed upstream data handed to a converter.
	ErrInputFormat = cognate.ErrInputFormat

	// ErrNeedRandSource: a simulator was constructed without a random stream.
	ErrNeedRandSource = errors.New("simulate: rng is required")

	// ErrInvariant: generated data violated a structural guarantee. Indicates
	// a bug, never bad input.
	ErrInvariant = errors.New("simulate: invariant violated")
)

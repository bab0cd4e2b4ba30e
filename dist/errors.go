// SPDX-License-Identifier: MIT
// Package: cognasim/dist
//
// errors.go — sentinel errors for the dist package.

package dist

import "errors"

// ErrSamplingExhausted indicates that a class-count model failed to produce
// a value inside the validity window within the resampling budget.
var ErrSamplingExhausted = errors.New("dist: sampling budget exhausted")

// ErrModelConfiguration indicates an inconsistent model family/parameter
// combination (e.g. Min > Max, Max > ntaxa, Lambda <= 0).
var ErrModelConfiguration = errors.New("dist: invalid model configuration")

// ErrInvalidParameter indicates a distribution parameter outside its domain
// at draw time (e.g. negative trial count, empty probability vector).
var ErrInvalidParameter = errors.New("dist: invalid distribution parameter")

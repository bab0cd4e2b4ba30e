// SPDX-License-Identifier: MIT
// Package: cognasim/names
//
// errors.go — sentinel errors for the names package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package names

import "errors"

// ErrNameSpaceExhausted indicates that more unique names were requested than
// the naming scheme can produce (e.g. 2601 names from the 2600-name default space).
var ErrNameSpaceExhausted = errors.New("names: name space exhausted")

// ErrInvalidLength indicates a non-positive name length or combination size.
var ErrInvalidLength = errors.New("names: invalid name length")

// ErrNeedRandSource indicates that a sampling call received a nil RNG.
var ErrNeedRandSource = errors.New("names: rng is required")

// SPDX-License-Identifier: MIT

// Package cognate holds the cognate-class matrix shared by every simulator
// and the converters that move it across process boundaries.
//
// A Matrix maps taxon → feature → State. States are per-feature class labels
// (0, 1, ...); Unknown marks a missing cell and renders as "?". Generators
// fill a Matrix one feature at a time; afterwards the shape is fixed and only
// Borrow changes cell values.
//
// Formats:
//
//	Format / WriteTo   harvest CSV: "language,<features...>" then one row per taxon,
//	                   taxa and features in lexicographic order.
//	ParseHarvest       the inverse; any first header cell is accepted.
//	WriteNexus         binary-recoded NEXUS (one column per observed state).
//
// Perturbations:
//
//	Borrow(rng, rate)          post-hoc horizontal transfer of existing states.
//	DropFeatures(rng, coverage) random feature subsample for gap experiments.
//
// Errors:
//
//	ErrEmptyMatrix      - nothing to serialise.
//	ErrIncompleteMatrix - a taxon lacks a feature other taxa carry.
//	ErrInputFormat      - malformed harvest CSV (or other upstream input).
//	ErrInvalidRate      - rate/coverage outside its domain.
//	ErrNeedRandSource   - Borrow or DropFeatures without an RNG.
package cognate

// SPDX-License-Identifier: MIT

// Package simulate generates synthetic cognate-class matrices under four
// historical scenarios:
//
//   - Dollo  (tree):  classes evolve along a Yule tree; each branch either
//     keeps its parent's class or innovates a brand-new one. Optional
//     lateral borrowing transplants a contemporary lineage's class and
//     re-evolves the borrower's subtree.
//   - Chain  (dialect continuum): class sizes are drawn, laid out as
//     contiguous segments and merged by concatenation or insertion until
//     one linear arrangement of all languages remains.
//   - Swamp  (no history): class sizes are drawn per feature with no
//     relation between features or languages.
//
// Every simulator satisfies Simulator and returns a *cognate.Matrix in
// which each feature's classes are exactly 0..k-1.
//
// Randomness is explicit: every constructor needs WithSeed, WithSource or
// WithSampler, and all draws of one simulator (tree growth included) come
// from that stream. Equal seeds and options reproduce equal matrices.
//
// Options shared by all simulators:
//
//	WithSeed / WithSource / WithSampler   random stream (required)
//	WithOnFeature(fn)                      hook called after each feature
//
// Dollo options: WithTree, WithBirthRate, WithCognateBirthRate,
// WithGammaShape, WithBorrowingRate.
// Chain and swamp options: WithClassCountModel, WithAlpha, WithSampleBudget;
// chain adds WithConcatProbability, swamp adds WithNameLength.
// Options that do not apply to a simulator are ignored by it.
//
// Errors (errors.Is):
//
//	ErrModelConfiguration  - parameters rejected before generation.
//	ErrSamplingExhausted   - a class count could not be drawn within budget.
//	ErrNameSpaceExhausted  - more taxa than unique names.
//	ErrNeedRandSource      - no random stream configured.
package simulate

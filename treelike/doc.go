// SPDX-License-Identifier: MIT

// Package treelike measures how tree-like a cognate matrix is.
//
// Distances are p-distances: the share of features, among those known for
// both taxa, on which two taxa fall into different classes. For every
// quartet {a,b,c,d} the three pair sums
//
//	d(a,b)+d(c,d), d(a,c)+d(b,d), d(a,d)+d(b,c)
//
// sorted as m1 ≥ m2 ≥ m3 give
//
//	delta = (m1-m2)/(m1-m3)   (0 when m1 == m3)
//	q     = (m1-m2)²          on distances divided by their mean
//
// A perfectly additive (tree) metric has m1 == m2 in every quartet, so both
// scores are 0; larger values indicate reticulation. Per-taxon scores
// average over the quartets containing the taxon.
//
// Complexity: O(n²·F) for distances, O(n⁴) for quartets.
package treelike

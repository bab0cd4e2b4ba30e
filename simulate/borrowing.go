// SPDX-License-Identifier: MIT
// Package: cognasim/simulate
//
// borrowing.go — lateral transfer pass of the Dollo simulator.
//
// The outer loop walks the pre-order edge list once. A borrowing event
// re-evolves the borrower's subtree immediately; later edges see the new
// classes and the grown constraint set.

package simulate

import (
	"github.com/katalvlaran/cognasim/phylo"
)

// borrow runs one pass with hazard length·rate per edge.
func (r *featureRun) borrow(rate float64) {
	for _, e := range r.tree.Edges() {
		if r.fixed.Contains(uint32(e.Child)) {
			continue
		}
		if r.s.Poisson(e.Length*rate) == 0 {
			continue
		}
		donors := donorCandidates(r.tree, e.Child)
		if len(donors) == 0 {
			continue
		}
		donor := donors[r.s.IntN(len(donors))]
		r.classes[e.Child] = r.classes[donor]
		r.fixed.Or(r.tree.Lineage(donor))
		r.innovate(r.tree.SubtreeEdges(e.Child))
		r.borrowings++
	}
}

// donorCandidates lists, in pre-order, the nodes that may lend a class to
// borrower: not the borrower nor its ancestors, no deeper than the borrower,
// and branching directly off the borrower's ancestral path. Each side
// lineage thus contributes its shallowest node, if that node is early enough.
func donorCandidates(t *phylo.Tree, borrower int) []int {
	limit := t.Depth(borrower)
	var out []int
	for _, n := range t.Preorder() {
		p := t.Parent(n)
		if n == borrower || p == phylo.NoParent {
			continue
		}
		if !t.IsAncestor(p, borrower) || t.IsAncestor(n, borrower) {
			continue
		}
		if t.Depth(n) <= limit {
			out = append(out, n)
		}
	}
	return out
}

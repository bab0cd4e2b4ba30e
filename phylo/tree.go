// SPDX-License-Identifier: MIT
// Package: cognasim/phylo
//
// tree.go — immutable arena tree and its precomputed indices.

package phylo

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring"
)

// NoParent is the Parent value of the root.
const NoParent = -1

// Node is one vertex of the tree.
type Node struct {
	// ID is the stable arena index of the node.
	ID int
	// Parent is the parent's ID, NoParent for the root.
	Parent int
	// Children lists child IDs in traversal order.
	Children []int
	// Length is the length of the edge from Parent to this node (0 for the root).
	Length float64
	// Depth is the summed edge length from the root.
	Depth float64
	// Taxon is the leaf label; empty for internal nodes.
	Taxon string
}

// Edge is a parent→child branch.
type Edge struct {
	Parent int
	Child  int
	Length float64
}

// Tree is a rooted tree with branch lengths. It is safe for concurrent reads.
type Tree struct {
	nodes     []Node
	root      int
	preorder  []int
	edges     []Edge
	leaves    []int
	ancestors []*roaring.Bitmap
}

// Root returns the root ID.
func (t *Tree) Root() int { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a copy of node id.
func (t *Tree) Node(id int) Node {
	n := t.nodes[id]
	n.Children = append([]int(nil), n.Children...)
	return n
}

// Parent returns the parent ID of id, NoParent for the root.
func (t *Tree) Parent(id int) int { return t.nodes[id].Parent }

// Children returns the child IDs of id. The slice must not be modified.
func (t *Tree) Children(id int) []int { return t.nodes[id].Children }

// Length returns the length of the edge leading to id.
func (t *Tree) Length(id int) float64 { return t.nodes[id].Length }

// Depth returns the distance from the root to id.
func (t *Tree) Depth(id int) float64 { return t.nodes[id].Depth }

// Taxon returns the leaf label of id ("" for internal nodes).
func (t *Tree) Taxon(id int) string { return t.nodes[id].Taxon }

// IsLeaf reports whether id has no children.
func (t *Tree) IsLeaf(id int) bool { return len(t.nodes[id].Children) == 0 }

// Preorder returns node IDs in parent-before-child order. The slice must not
// be modified.
func (t *Tree) Preorder() []int { return t.preorder }

// Edges returns all parent→child edges, grouped by parent in pre-order.
// The slice must not be modified.
func (t *Tree) Edges() []Edge { return t.edges }

// Leaves returns leaf IDs in pre-order. The slice must not be modified.
func (t *Tree) Leaves() []int { return t.leaves }

// Taxa returns leaf labels in pre-order.
func (t *Tree) Taxa() []string {
	out := make([]string, len(t.leaves))
	for i, id := range t.leaves {
		out[i] = t.nodes[id].Taxon
	}
	return out
}

// Ancestors returns a copy of the ancestor set of id (root included, id
// excluded).
func (t *Tree) Ancestors(id int) *roaring.Bitmap { return t.ancestors[id].Clone() }

// IsAncestor reports whether a is a proper ancestor of b.
func (t *Tree) IsAncestor(a, b int) bool { return t.ancestors[b].Contains(uint32(a)) }

// Lineage returns id together with all of its ancestors.
func (t *Tree) Lineage(id int) *roaring.Bitmap {
	bm := t.ancestors[id].Clone()
	bm.Add(uint32(id))
	return bm
}

// Subtree returns id and all its descendants in pre-order.
func (t *Tree) Subtree(id int) []int {
	var out []int
	stack := []int{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		ch := t.nodes[n].Children
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}
	return out
}

// SubtreeEdges returns the parent→child edges below id in pre-order.
func (t *Tree) SubtreeEdges(id int) []Edge {
	var out []Edge
	for _, n := range t.Subtree(id) {
		for _, c := range t.nodes[n].Children {
			out = append(out, Edge{Parent: n, Child: c, Length: t.nodes[c].Length})
		}
	}
	return out
}

// FromParents builds a tree from a parent vector (parents[id], NoParent for
// the root), edge lengths indexed by ID and leaf labels indexed by ID.
// Children keep ascending ID order. Leaves must be labelled uniquely; every
// non-root edge must have a positive finite length.
func FromParents(parents []int, lengths []float64, taxa []string) (*Tree, error) {
	const method = "FromParents"
	n := len(parents)
	if n == 0 {
		return nil, fmt.Errorf("%s: empty parent vector: %w", method, ErrInvalidTree)
	}
	if len(lengths) != n || len(taxa) != n {
		return nil, fmt.Errorf("%s: %d parents, %d lengths, %d taxa: %w",
			method, n, len(lengths), len(taxa), ErrInvalidTree)
	}

	nodes := make([]Node, n)
	root := NoParent
	for id, p := range parents {
		nodes[id] = Node{ID: id, Parent: p, Length: lengths[id], Taxon: taxa[id]}
		switch {
		case p == NoParent:
			if root != NoParent {
				return nil, fmt.Errorf("%s: nodes %d and %d are both roots: %w", method, root, id, ErrInvalidTree)
			}
			root = id
			nodes[id].Length = 0
		case p < 0 || p >= n || p == id:
			return nil, fmt.Errorf("%s: node %d has parent %d: %w", method, id, p, ErrInvalidTree)
		case !(lengths[id] > 0) || math.IsInf(lengths[id], 0):
			return nil, fmt.Errorf("%s: node %d has edge length %g: %w", method, id, lengths[id], ErrInvalidTree)
		}
	}
	if root == NoParent {
		return nil, fmt.Errorf("%s: no root: %w", method, ErrInvalidTree)
	}
	for id, p := range parents {
		if p != NoParent {
			nodes[p].Children = append(nodes[p].Children, id)
		}
	}

	return index(nodes, root)
}

// index computes traversal order, depths, edge list, leaves and ancestor
// sets, and checks that every node is reachable from root exactly once.
func index(nodes []Node, root int) (*Tree, error) {
	t := &Tree{
		nodes:     nodes,
		root:      root,
		ancestors: make([]*roaring.Bitmap, len(nodes)),
	}
	t.preorder = t.Subtree(root)
	if len(t.preorder) != len(nodes) {
		return nil, fmt.Errorf("index: %d of %d nodes reachable from root: %w",
			len(t.preorder), len(nodes), ErrInvalidTree)
	}

	seen := make(map[string]int)
	for _, id := range t.preorder {
		n := &t.nodes[id]
		if n.Parent == NoParent {
			n.Depth = 0
			t.ancestors[id] = roaring.New()
		} else {
			n.Depth = t.nodes[n.Parent].Depth + n.Length
			bm := t.ancestors[n.Parent].Clone()
			bm.Add(uint32(n.Parent))
			t.ancestors[id] = bm
		}
		for _, c := range n.Children {
			t.edges = append(t.edges, Edge{Parent: id, Child: c, Length: t.nodes[c].Length})
		}
		if len(n.Children) == 0 {
			if n.Taxon == "" {
				return nil, fmt.Errorf("index: leaf %d has no taxon: %w", id, ErrInvalidTree)
			}
			if prev, dup := seen[n.Taxon]; dup {
				return nil, fmt.Errorf("index: leaves %d and %d share taxon %q: %w", prev, id, n.Taxon, ErrInvalidTree)
			}
			seen[n.Taxon] = id
			t.leaves = append(t.leaves, id)
		}
	}

	return t, nil
}

// SPDX-License-Identifier: MIT

package phylo

import (
	gotree "github.com/evolbioinfo/gotree/tree"
)

// Newick renders the tree in Newick format with branch lengths.
func (t *Tree) Newick() string {
	gt := gotree.NewTree()
	mirror := make([]*gotree.Node, len(t.nodes))
	for _, id := range t.preorder {
		n := gt.NewNode()
		if name := t.nodes[id].Taxon; name != "" {
			n.SetName(name)
		}
		mirror[id] = n
		if id == t.root {
			gt.SetRoot(n)
			continue
		}
		e := gt.ConnectNodes(mirror[t.nodes[id].Parent], n)
		e.SetLength(t.nodes[id].Length)
	}
	return gt.Newick()
}

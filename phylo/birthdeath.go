// SPDX-License-Identifier: MIT
// Package: cognasim/phylo
//
// birthdeath.go — pure-birth (Yule) tree generator.
//
// Canonical model:
//   - Start from a single lineage at the root.
//   - While fewer than n lineages exist: draw a waiting time Exp(k·birthRate)
//     for k active lineages, extend every active lineage by it, then split one
//     uniformly chosen lineage into two new child lineages.
//   - Once n lineages exist, draw one more waiting time and extend every leaf,
//     so no edge has zero length.
//
// Determinism:
//   - Leaf names are sampled first, then the topology, from the same stream.
//   - Children are created left then right; node IDs follow creation order.
//   - Leaves receive names in pre-order.

package phylo

import (
	"fmt"
)

const methodBirthDeath = "BirthDeath"

// BirthDeath grows a Yule tree with exactly n labelled leaves.
// Complexity: O(n²) lineage extensions, O(n·depth) ancestor indexing.
func BirthDeath(n int, opts ...Option) (*Tree, error) {
	cfg := newConfig(opts...)

	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBirthDeath, n, ErrTooFewTaxa)
	}
	if cfg.sampler == nil {
		return nil, fmt.Errorf("%s: %w", methodBirthDeath, ErrNeedRandSource)
	}

	labels, err := cfg.space.Sample(cfg.sampler.Rand(), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBirthDeath, err)
	}

	nodes := []Node{{ID: 0, Parent: NoParent}}
	active := []int{0}
	grow := func() {
		wait := cfg.sampler.Exponential(float64(len(active)) * cfg.birthRate)
		for _, id := range active {
			nodes[id].Length += wait
		}
	}

	for len(active) < n {
		grow()
		i := cfg.sampler.IntN(len(active))
		parent := active[i]
		left, right := len(nodes), len(nodes)+1
		nodes = append(nodes,
			Node{ID: left, Parent: parent},
			Node{ID: right, Parent: parent},
		)
		nodes[parent].Children = []int{left, right}
		active[i] = left
		active = append(active, right)
	}
	grow()
	// the root's accumulated length is its stem, which is not part of the tree
	nodes[0].Length = 0

	t, err := index(assignLabels(nodes, labels), 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBirthDeath, err)
	}
	return t, nil
}

// assignLabels names leaves in pre-order.
func assignLabels(nodes []Node, labels []string) []Node {
	next := 0
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ch := nodes[id].Children
		if len(ch) == 0 {
			nodes[id].Taxon = labels[next]
			next++
			continue
		}
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}
	return nodes
}

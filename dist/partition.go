// SPDX-License-Identifier: MIT
// Package: cognasim/dist
//
// partition.go — class sizes with guaranteed full coverage.

package dist

import "fmt"

const methodPartition = "Partition"

// Partition splits n individuals into k non-empty classes. Relative class
// sizes follow a symmetric Dirichlet(alpha); the n-k individuals beyond the
// one-per-class minimum are placed by a multinomial draw.
//
// Guarantees: len(result) == k, every entry ≥ 1, entries sum to n.
func (s *Sampler) Partition(n, k int, alpha float64) ([]int, error) {
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d not in [1,%d]: %w", methodPartition, k, n, ErrInvalidParameter)
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("%s: alpha=%g: %w", methodPartition, alpha, ErrInvalidParameter)
	}

	probs := s.Dirichlet(alpha, k)
	counts := s.Multinomial(n-k, probs)
	for i := range counts {
		counts[i]++
	}
	return counts, nil
}

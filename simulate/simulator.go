// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"

	"github.com/katalvlaran/cognasim/cognate"
)

// Model family tokens.
const (
	ModelDollo = "dollo"
	ModelChain = "chain"
	ModelSwamp = "swamp"
)

// Simulator produces one cognate matrix per call. Each call continues the
// simulator's random stream, so consecutive calls yield independent
// replicates over the same taxa.
type Simulator interface {
	Generate() (*cognate.Matrix, error)
	Model() string
}

var (
	_ Simulator = (*Dollo)(nil)
	_ Simulator = (*Chain)(nil)
	_ Simulator = (*Swamp)(nil)
)

func validateCounts(method string, nTaxa, nFeatures int) error {
	if nTaxa < 1 {
		return fmt.Errorf("%s: taxa=%d must be ≥ 1: %w", method, nTaxa, ErrModelConfiguration)
	}
	if nFeatures < 1 {
		return fmt.Errorf("%s: features=%d must be ≥ 1: %w", method, nFeatures, ErrModelConfiguration)
	}
	return nil
}

// checkCoverage verifies that states are exactly 0..k-1 for the given k.
func checkCoverage(method, feature string, states []int, k int) error {
	seen := make([]bool, k)
	for _, v := range states {
		if v < 0 || v >= k {
			return fmt.Errorf("%s: feature %s: state %d outside 0..%d: %w", method, feature, v, k-1, ErrInvariant)
		}
		seen[v] = true
	}
	for v, ok := range seen {
		if !ok {
			return fmt.Errorf("%s: feature %s: class %d unused: %w", method, feature, v, ErrInvariant)
		}
	}
	return nil
}

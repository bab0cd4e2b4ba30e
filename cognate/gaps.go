// SPDX-License-Identifier: MIT

package cognate

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// DropFeatures returns a new matrix that keeps round(NumFeatures·coverage)
// features chosen uniformly without replacement. coverage must lie in (0,1].
// At least one feature is always kept.
func (m *Matrix) DropFeatures(rng *rand.Rand, coverage float64) (*Matrix, error) {
	if !(coverage > 0 && coverage <= 1) {
		return nil, fmt.Errorf("DropFeatures: coverage=%g not in (0,1]: %w", coverage, ErrInvalidRate)
	}
	if rng == nil {
		return nil, fmt.Errorf("DropFeatures: %w", ErrNeedRandSource)
	}
	features := m.Features()
	if len(features) == 0 {
		return nil, fmt.Errorf("DropFeatures: %w", ErrEmptyMatrix)
	}
	keep := int(math.Round(float64(len(features)) * coverage))
	if keep < 1 {
		keep = 1
	}

	perm := rng.Perm(len(features))[:keep]
	sort.Ints(perm)

	out := New()
	for _, t := range m.Taxa() {
		row := m.cells[t]
		for _, i := range perm {
			if v, ok := row[features[i]]; ok {
				out.Set(t, features[i], v)
			}
		}
	}
	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: cognasim/cognate
//
// borrow.go — post-hoc horizontal transfer.
//
// Contract:
//   - rate == 0 leaves the matrix untouched and draws nothing.
//   - A feature with fewer than two distinct known states is skipped.
//   - Every taxon with a known state borrows independently with probability
//     rate, replacing its state with a uniformly chosen *different* state
//     already present for that feature.
//   - The set of borrowable states is fixed per feature before any taxon
//     borrows, so borrowing never invents or erases a class label from the
//     candidate pool mid-feature.
//   - Features then taxa are visited in lexicographic order (deterministic
//     for a fixed RNG state).

package cognate

import (
	"fmt"
	"math/rand/v2"
)

// Borrow perturbs the matrix in place. rate must lie in [0,1].
// It returns the number of cells that changed.
func (m *Matrix) Borrow(rng *rand.Rand, rate float64) (int, error) {
	if !(rate >= 0 && rate <= 1) {
		return 0, fmt.Errorf("Borrow: rate=%g not in [0,1]: %w", rate, ErrInvalidRate)
	}
	if rate == 0 {
		return 0, nil
	}
	if rng == nil {
		return 0, fmt.Errorf("Borrow: %w", ErrNeedRandSource)
	}

	changed := 0
	taxa := m.Taxa()
	others := make([]State, 0, 8)
	for _, f := range m.Features() {
		pool := m.Classes(f)
		if len(pool) < 2 {
			continue
		}
		for _, t := range taxa {
			cur, ok := m.cells[t][f]
			if !ok || cur == Unknown {
				continue
			}
			if rng.Float64() >= rate {
				continue
			}
			others = others[:0]
			for _, v := range pool {
				if v != cur {
					others = append(others, v)
				}
			}
			m.cells[t][f] = others[rng.IntN(len(others))]
			changed++
		}
	}
	return changed, nil
}

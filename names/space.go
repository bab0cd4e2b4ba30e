// SPDX-License-Identifier: MIT
// Package: cognasim/names
//
// space.go — combinatorial taxon name space.
//
// Contract:
//   - A Space enumerates all k-combinations of its alphabet in lexicographic
//     order; letters inside a name are strictly increasing ("abc", never "bac").
//   - Sample draws without replacement via a partial Fisher–Yates shuffle over
//     the enumeration, so the output is a pure function of (space, rng state, n).

package names

import (
	"fmt"
	"math/rand/v2"
)

// DefaultAlphabet is the alphabet of the default name space.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// DefaultCombination is the name length of the default name space.
const DefaultCombination = 3

const methodSample = "Sample"

// Space is an immutable, enumerated set of candidate taxon names.
type Space struct {
	names []string
}

// NewSpace enumerates every k-combination of the runes in alphabet.
// Duplicate runes in alphabet are not removed.
// Complexity: O(C(len(alphabet), k) * k).
func NewSpace(alphabet string, k int) (*Space, error) {
	letters := []rune(alphabet)
	if k < 1 || k > len(letters) {
		return nil, fmt.Errorf("NewSpace: k=%d with alphabet of %d letters: %w", k, len(letters), ErrInvalidLength)
	}

	var out []string
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]rune, k)
	for {
		for i, j := range idx {
			buf[i] = letters[j]
		}
		out = append(out, string(buf))

		// advance to the next combination in lexicographic order
		i := k - 1
		for i >= 0 && idx[i] == len(letters)-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return &Space{names: out}, nil
}

var defaultSpace = mustSpace(DefaultAlphabet, DefaultCombination)

func mustSpace(alphabet string, k int) *Space {
	s, err := NewSpace(alphabet, k)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the shared 3-combination a..z space (2600 names).
func Default() *Space {
	return defaultSpace
}

// Size reports how many distinct names the space holds.
func (s *Space) Size() int {
	return len(s.names)
}

// Name returns the i-th name in lexicographic order.
func (s *Space) Name(i int) string {
	return s.names[i]
}

// Contains reports whether name belongs to the space.
func (s *Space) Contains(name string) bool {
	// names are sorted, binary search keeps this O(log n)
	lo, hi := 0, len(s.names)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.names[mid] < name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(s.names) && s.names[lo] == name
}

// Sample draws n distinct names without replacement.
// Returns ErrNameSpaceExhausted when n exceeds Size().
// Complexity: O(Size()) to copy indices, O(n) swaps.
func (s *Space) Sample(rng *rand.Rand, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodSample, n, ErrInvalidLength)
	}
	if n > len(s.names) {
		return nil, fmt.Errorf("%s: requested %d names from a space of %d: %w",
			methodSample, n, len(s.names), ErrNameSpaceExhausted)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSample, ErrNeedRandSource)
	}

	pool := make([]int, len(s.names))
	for i := range pool {
		pool[i] = i
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out[i] = s.names[pool[i]]
	}

	return out, nil
}

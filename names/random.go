// SPDX-License-Identifier: MIT
// Package: cognasim/names
//
// random.go — fixed-length random taxon names.

package names

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	methodRandomFixed = "RandomFixed"
	lowercase         = "abcdefghijklmnopqrstuvwxyz"
)

// RandomFixed returns n unique lowercase names of the given length. Each name
// is redrawn until it differs from all names generated so far.
func RandomFixed(rng *rand.Rand, n, length int) ([]string, error) {
	if length < 1 {
		return nil, fmt.Errorf("%s: length=%d: %w", methodRandomFixed, length, ErrInvalidLength)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomFixed, n, ErrInvalidLength)
	}
	if capacity := math.Pow(float64(len(lowercase)), float64(length)); float64(n) > capacity {
		return nil, fmt.Errorf("%s: %d names of length %d: %w", methodRandomFixed, n, length, ErrNameSpaceExhausted)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomFixed, ErrNeedRandSource)
	}

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	buf := make([]byte, length)
	for len(out) < n {
		for i := range buf {
			buf[i] = lowercase[rng.IntN(len(lowercase))]
		}
		name := string(buf)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out, nil
}

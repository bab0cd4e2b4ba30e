// SPDX-License-Identifier: MIT
// Package: cognasim/treelike

package treelike

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cognasim/cognate"
)

// ErrTooFewTaxa is returned for matrices with fewer than four taxa.
var ErrTooFewTaxa = errors.New("treelike: at least 4 taxa required")

// Scores summarises a matrix.
type Scores struct {
	Taxa      []string
	Delta     []float64 // per taxon, indexed like Taxa
	Q         []float64 // per taxon, indexed like Taxa
	MeanDelta float64
	MeanQ     float64
}

// Distances returns the symmetric p-distance matrix in sorted taxon order.
// Pairs without a shared known feature get distance 0.
func Distances(m *cognate.Matrix) (*mat.SymDense, []string) {
	taxa := m.Taxa()
	features := m.Features()
	cols := make([][]cognate.State, len(features))
	for j, f := range features {
		cols[j] = m.Column(f)
	}

	n := len(taxa)
	d := mat.NewSymDense(n, nil)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			var shared, differ int
			for _, col := range cols {
				x, y := col[a], col[b]
				if x == cognate.Unknown || y == cognate.Unknown {
					continue
				}
				shared++
				if x != y {
					differ++
				}
			}
			if shared > 0 {
				d.SetSym(a, b, float64(differ)/float64(shared))
			}
		}
	}
	return d, taxa
}

// Compute scores every quartet of m.
func Compute(m *cognate.Matrix) (Scores, error) {
	d, taxa := Distances(m)
	n := len(taxa)
	if n < 4 {
		return Scores{}, fmt.Errorf("Compute: %d taxa: %w", n, ErrTooFewTaxa)
	}

	var sum float64
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			sum += d.At(a, b)
		}
	}
	mean := sum / float64(n*(n-1)/2)

	s := Scores{
		Taxa:  taxa,
		Delta: make([]float64, n),
		Q:     make([]float64, n),
	}
	var quartets int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for e := c + 1; e < n; e++ {
					delta, q := quartet(d, mean, a, b, c, e)
					for _, t := range [4]int{a, b, c, e} {
						s.Delta[t] += delta
						s.Q[t] += q
					}
					s.MeanDelta += delta
					s.MeanQ += q
					quartets++
				}
			}
		}
	}

	// each taxon sits in C(n-1, 3) quartets
	perTaxon := float64((n - 1) * (n - 2) * (n - 3) / 6)
	for t := range taxa {
		s.Delta[t] /= perTaxon
		s.Q[t] /= perTaxon
	}
	s.MeanDelta /= float64(quartets)
	s.MeanQ /= float64(quartets)
	return s, nil
}

func quartet(d *mat.SymDense, mean float64, a, b, c, e int) (delta, q float64) {
	sums := []float64{
		d.At(a, b) + d.At(c, e),
		d.At(a, c) + d.At(b, e),
		d.At(a, e) + d.At(b, c),
	}
	slices.Sort(sums)
	m1, m2, m3 := sums[2], sums[1], sums[0]
	if m1 > m3 {
		delta = (m1 - m2) / (m1 - m3)
	}
	if mean > 0 {
		r := (m1 - m2) / mean
		q = r * r
	}
	return delta, q
}

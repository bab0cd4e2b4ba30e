// SPDX-License-Identifier: MIT
// Package: cognasim/cognate
//
// matrix.go — the taxon × feature state table.

package cognate

import (
	"fmt"
	"sort"
	"strconv"
)

// State is the cognate class of one taxon for one feature.
type State int

// Unknown marks a missing cell.
const Unknown State = -1

// unknownToken is the textual form of Unknown in every format.
const unknownToken = "?"

// String renders the state as written in harvest CSV.
func (s State) String() string {
	if s == Unknown {
		return unknownToken
	}
	return strconv.Itoa(int(s))
}

// Matrix maps taxon → feature → state. The zero value is not usable; call New.
// A Matrix is not safe for concurrent mutation.
type Matrix struct {
	cells    map[string]map[string]State
	features map[string]struct{}
}

// New returns an empty matrix.
func New() *Matrix {
	return &Matrix{
		cells:    make(map[string]map[string]State),
		features: make(map[string]struct{}),
	}
}

// Set inserts or overwrites one cell.
func (m *Matrix) Set(taxon, feature string, v State) {
	row, ok := m.cells[taxon]
	if !ok {
		row = make(map[string]State)
		m.cells[taxon] = row
	}
	row[feature] = v
	m.features[feature] = struct{}{}
}

// Get returns the state of (taxon, feature) and whether the cell exists.
func (m *Matrix) Get(taxon, feature string) (State, bool) {
	v, ok := m.cells[taxon][feature]
	return v, ok
}

// Taxa returns taxon names in lexicographic order.
func (m *Matrix) Taxa() []string {
	out := make([]string, 0, len(m.cells))
	for t := range m.cells {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Features returns feature names in lexicographic order.
func (m *Matrix) Features() []string {
	out := make([]string, 0, len(m.features))
	for f := range m.features {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// NumTaxa returns the number of taxa.
func (m *Matrix) NumTaxa() int { return len(m.cells) }

// NumFeatures returns the number of features.
func (m *Matrix) NumFeatures() int { return len(m.features) }

// Classes returns the distinct known states of feature in ascending order.
func (m *Matrix) Classes(feature string) []State {
	set := make(map[State]struct{})
	for _, row := range m.cells {
		if v, ok := row[feature]; ok && v != Unknown {
			set[v] = struct{}{}
		}
	}
	out := make([]State, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Column returns the states of feature in taxon order.
func (m *Matrix) Column(feature string) []State {
	taxa := m.Taxa()
	out := make([]State, len(taxa))
	for i, t := range taxa {
		v, ok := m.cells[t][feature]
		if !ok {
			v = Unknown
		}
		out[i] = v
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := New()
	for t, row := range m.cells {
		for f, v := range row {
			c.Set(t, f, v)
		}
	}
	for f := range m.features {
		c.features[f] = struct{}{}
	}
	return c
}

// Equal reports whether both matrices hold the same cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if len(m.cells) != len(o.cells) || len(m.features) != len(o.features) {
		return false
	}
	for t, row := range m.cells {
		orow, ok := o.cells[t]
		if !ok || len(orow) != len(row) {
			return false
		}
		for f, v := range row {
			if ov, ok := orow[f]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}

// Validate checks that the matrix is non-empty and every taxon carries every
// feature.
func (m *Matrix) Validate() error {
	if len(m.cells) == 0 || len(m.features) == 0 {
		return fmt.Errorf("Validate: %d taxa, %d features: %w", len(m.cells), len(m.features), ErrEmptyMatrix)
	}
	for _, t := range m.Taxa() {
		row := m.cells[t]
		if len(row) == len(m.features) {
			continue
		}
		for _, f := range m.Features() {
			if _, ok := row[f]; !ok {
				return fmt.Errorf("Validate: taxon %q lacks feature %q: %w", t, f, ErrIncompleteMatrix)
			}
		}
	}
	return nil
}

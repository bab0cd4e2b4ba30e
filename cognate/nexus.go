// SPDX-License-Identifier: MIT
// Package: cognasim/cognate
//
// nexus.go — binary-recoded NEXUS export for network software.
//
// Recoding:
//   - Each feature becomes one 0/1 column per known state it shows, states in
//     ascending numeric order.
//   - A taxon scores 1 in the column of its state and 0 elsewhere; an Unknown
//     cell becomes "?" in every column of that feature.
//   - Features and taxa follow lexicographic order.

package cognate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NexusCharacters returns the number of binary characters WriteNexus emits.
func (m *Matrix) NexusCharacters() int {
	n := 0
	for _, f := range m.Features() {
		n += len(m.Classes(f))
	}
	return n
}

// WriteNexus writes m as a NEXUS file with a taxa block and a binary
// characters block.
func WriteNexus(w io.Writer, m *Matrix) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("WriteNexus: %w", err)
	}

	taxa := m.Taxa()
	features := m.Features()
	states := make([][]State, len(features))
	nchar := 0
	for i, f := range features {
		states[i] = m.Classes(f)
		nchar += len(states[i])
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "#NEXUS")
	fmt.Fprintln(bw, "begin taxa;")
	fmt.Fprintf(bw, "dimensions ntax=%d;\n", len(taxa))
	fmt.Fprintf(bw, "taxlabels %s;\n", strings.Join(taxa, " "))
	fmt.Fprintln(bw, "end;")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "begin characters;")
	fmt.Fprintf(bw, "dimensions nchar=%d;\n", nchar)
	fmt.Fprintln(bw, `format symbols="01" missing=?;`)
	fmt.Fprintln(bw, "matrix")

	var line strings.Builder
	for _, t := range taxa {
		line.Reset()
		line.WriteString(t)
		line.WriteByte(' ')
		row := m.cells[t]
		for i, f := range features {
			v := row[f]
			for _, s := range states[i] {
				switch {
				case v == Unknown:
					line.WriteByte('?')
				case v == s:
					line.WriteByte('1')
				default:
					line.WriteByte('0')
				}
			}
		}
		fmt.Fprintln(bw, line.String())
	}
	fmt.Fprintln(bw, ";")
	fmt.Fprintln(bw, "end;")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteNexus: %w", err)
	}
	return nil
}

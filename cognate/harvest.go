// SPDX-License-Identifier: MIT
// Package: cognasim/cognate
//
// harvest.go — harvest CSV serialisation.
//
// Layout:
//   language,<f1>,<f2>,...      header, features in lexicographic order
//   <taxon>,<v1>,<v2>,...       one row per taxon in lexicographic order
// Values are decimal class labels or "?" for Unknown.

package cognate

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HeaderLabel is the first header cell written by Format.
const HeaderLabel = "language"

// Format returns the harvest CSV text without a trailing newline.
func (m *Matrix) Format() (string, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// WriteTo writes the harvest CSV to w, one newline-terminated line per row.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, fmt.Errorf("WriteTo: %w", err)
	}

	features := m.Features()
	cw := &countingWriter{w: w}
	out := csv.NewWriter(cw)

	record := make([]string, 0, len(features)+1)
	record = append(record, HeaderLabel)
	record = append(record, features...)
	if err := out.Write(record); err != nil {
		return cw.n, fmt.Errorf("WriteTo: %w", err)
	}
	for _, t := range m.Taxa() {
		record = record[:0]
		record = append(record, t)
		row := m.cells[t]
		for _, f := range features {
			record = append(record, row[f].String())
		}
		if err := out.Write(record); err != nil {
			return cw.n, fmt.Errorf("WriteTo: %w", err)
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return cw.n, fmt.Errorf("WriteTo: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// ParseHarvest reads a harvest CSV. The first header cell is ignored
// ("language", "iso", "lang" and "name" all occur in the wild).
// Duplicate taxa or features, ragged rows and values that are neither
// integers nor "?" fail with ErrInputFormat.
func ParseHarvest(r io.Reader) (*Matrix, error) {
	const method = "ParseHarvest"

	in := csv.NewReader(r)
	in.FieldsPerRecord = -1
	in.TrimLeadingSpace = true

	header, err := in.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: no header: %w", method, ErrInputFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrInputFormat)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: header has no features: %w", method, ErrInputFormat)
	}
	features := make([]string, len(header)-1)
	seenF := make(map[string]bool, len(features))
	for i, f := range header[1:] {
		f = strings.TrimSpace(f)
		if f == "" || seenF[f] {
			return nil, fmt.Errorf("%s: bad feature name %q in column %d: %w", method, f, i+2, ErrInputFormat)
		}
		seenF[f] = true
		features[i] = f
	}

	m := New()
	for line := 2; ; line++ {
		rec, err := in.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %v: %w", method, line, err, ErrInputFormat)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%s: line %d has %d fields, want %d: %w",
				method, line, len(rec), len(header), ErrInputFormat)
		}
		taxon := strings.TrimSpace(rec[0])
		if taxon == "" {
			return nil, fmt.Errorf("%s: line %d: empty taxon: %w", method, line, ErrInputFormat)
		}
		if _, dup := m.cells[taxon]; dup {
			return nil, fmt.Errorf("%s: line %d: duplicate taxon %q: %w", method, line, taxon, ErrInputFormat)
		}
		for i, raw := range rec[1:] {
			v, err := parseState(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%s: line %d, feature %q: %v: %w", method, line, features[i], err, ErrInputFormat)
			}
			m.Set(taxon, features[i], v)
		}
	}
	if m.NumTaxa() == 0 {
		return nil, fmt.Errorf("%s: no taxa: %w", method, ErrInputFormat)
	}
	return m, nil
}

func parseState(s string) (State, error) {
	if s == unknownToken {
		return Unknown, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a class label", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative class label %d", n)
	}
	return State(n), nil
}

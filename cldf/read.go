// SPDX-License-Identifier: MIT
// Package: cognasim/cldf
//
// read.go — Read: metadata → tables → synonym resolution → matrix.

package cldf

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/katalvlaran/cognasim/cognate"
)

const methodRead = "Read"

// Conventional CLDF column names used when metadata omits propertyUrl.
const (
	defaultID         = "ID"
	defaultName       = "Name"
	defaultLanguage   = "Language_ID"
	defaultParameter  = "Parameter_ID"
	defaultForm       = "Form_ID"
	defaultCognateset = "Cognateset_ID"
)

// missingSet marks a form whose cognate set is unknown.
const missingSet = "?"

type cell struct{ language, parameter string }

// Read loads the dataset described by the metadata file at path.
func Read(path string, opts ...Option) (*cognate.Matrix, error) {
	cfg := newConfig(opts...)
	md, err := readMetadata(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}
	dir := filepath.Dir(path)

	labels, err := languageLabels(dir, md.languages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	// forms: form ID → (language, parameter), plus inline cognate sets
	formRows, err := readTable(dir, md.forms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}
	idCol := md.forms.column(propID, defaultID)
	langCol := md.forms.column(propLanguage, defaultLanguage)
	paramCol := md.forms.column(propParameter, defaultParameter)
	inlineCol := md.forms.column(propCognateset, defaultCognateset)

	forms := make(map[string]cell, len(formRows))
	inline := make(map[string][]string)
	parameters := map[string]struct{}{}
	for i, row := range formRows {
		id, lang, param := row[idCol], row[langCol], row[paramCol]
		if id == "" || lang == "" || param == "" {
			return nil, fmt.Errorf("%s: %s row %d: missing id, language or parameter: %w",
				methodRead, md.forms.url, i+2, cognate.ErrInputFormat)
		}
		forms[id] = cell{lang, param}
		parameters[param] = struct{}{}
		if _, seen := labels[lang]; !seen && md.languages == nil {
			labels[lang] = lang
		}
		if set := row[inlineCol]; set != "" && set != missingSet {
			inline[id] = append(inline[id], set)
		}
	}

	judgements := inline
	if md.cognates != nil {
		judgements, err = cognateJudgements(dir, md.cognates, forms)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRead, err)
		}
	}
	if len(judgements) == 0 {
		return nil, fmt.Errorf("%s: no cognate judgements in %s: %w", methodRead, path, cognate.ErrInputFormat)
	}

	sets := make(map[cell][]string)
	for formID, ids := range judgements {
		c := forms[formID]
		if _, ok := labels[c.language]; !ok {
			return nil, fmt.Errorf("%s: form %s: unknown language %q: %w",
				methodRead, formID, c.language, cognate.ErrInputFormat)
		}
		sets[c] = append(sets[c], ids...)
	}

	m := cognate.New()
	taxa := make(map[string]string, len(labels)) // language ID → taxon
	owner := make(map[string]string, len(labels))
	for _, id := range sortedKeys(labels) {
		label := labels[id]
		cleaned := cfg.clean(label)
		if cfg.isExcluded(label, cleaned) || cfg.isExcluded(id, cfg.clean(id)) {
			continue
		}
		if prev, dup := owner[cleaned]; dup {
			return nil, fmt.Errorf("%s: languages %s and %s both map to taxon %q: %w",
				methodRead, prev, id, cleaned, cognate.ErrInputFormat)
		}
		owner[cleaned] = id
		taxa[id] = cleaned
	}
	if len(taxa) == 0 {
		return nil, fmt.Errorf("%s: no languages left: %w", methodRead, cognate.ErrInputFormat)
	}

	for _, param := range sortedKeys(parameters) {
		chosen := resolveSynonyms(param, taxa, sets)
		classes := slices.Compact(slices.Sorted(maps.Values(chosen)))
		for lang, taxon := range taxa {
			set, ok := chosen[lang]
			if !ok {
				m.Set(taxon, param, cognate.Unknown)
				continue
			}
			idx, _ := slices.BinarySearch(classes, set)
			m.Set(taxon, param, cognate.State(idx))
		}
	}
	return m, nil
}

// resolveSynonyms picks one cognate set per language for param, keeping the
// number of distinct sets small. Languages with a single set keep it and mark
// it attested. Languages with synonyms, in language ID order, take the most
// frequent attested candidate, else the most frequent candidate; ties go to
// the larger ID. Every choice becomes attested for the languages after it.
func resolveSynonyms(param string, taxa map[string]string, sets map[cell][]string) map[string]string {
	freq := map[string]int{}
	attested := map[string]bool{}
	chosen := map[string]string{}
	var ambiguous []string

	for _, lang := range sortedKeys(taxa) {
		ids := distinctSorted(sets[cell{lang, param}])
		for _, id := range ids {
			freq[id]++
		}
		switch len(ids) {
		case 0:
		case 1:
			chosen[lang] = ids[0]
			attested[ids[0]] = true
		default:
			ambiguous = append(ambiguous, lang)
		}
	}

	for _, lang := range ambiguous {
		options := distinctSorted(sets[cell{lang, param}])
		slices.SortFunc(options, func(a, b string) int {
			if c := cmp.Compare(freq[b], freq[a]); c != 0 {
				return c
			}
			return cmp.Compare(b, a)
		})
		best := options[0]
		for _, id := range options {
			if attested[id] {
				best = id
				break
			}
		}
		chosen[lang] = best
		attested[best] = true
	}
	return chosen
}

func languageLabels(dir string, t *table) (map[string]string, error) {
	labels := map[string]string{}
	if t == nil {
		return labels, nil
	}
	rows, err := readTable(dir, t)
	if err != nil {
		return nil, err
	}
	idCol, nameCol := t.column(propID, defaultID), t.column(propName, defaultName)
	for _, row := range rows {
		id := row[idCol]
		if id == "" {
			continue
		}
		if name := row[nameCol]; name != "" {
			labels[id] = name
		} else {
			labels[id] = id
		}
	}
	return labels, nil
}

func cognateJudgements(dir string, t *table, forms map[string]cell) (map[string][]string, error) {
	rows, err := readTable(dir, t)
	if err != nil {
		return nil, err
	}
	formCol := t.column(propForm, defaultForm)
	setCol := t.column(propCognateset, defaultCognateset)

	out := make(map[string][]string)
	for i, row := range rows {
		form, set := row[formCol], row[setCol]
		if form == "" || set == "" || set == missingSet {
			continue
		}
		if _, ok := forms[form]; !ok {
			return nil, fmt.Errorf("cognateJudgements: %s row %d: unknown form %q: %w",
				t.url, i+2, form, cognate.ErrInputFormat)
		}
		out[form] = append(out[form], set)
	}
	return out, nil
}

// readTable reads a CSV component into header-keyed rows.
func readTable(dir string, t *table) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(t.url)))
	if err != nil {
		return nil, fmt.Errorf("readTable: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("readTable: %s: header: %v: %w", t.url, err, cognate.ErrInputFormat)
	}
	var rows []map[string]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("readTable: %s: %v: %w", t.url, err, cognate.ErrInputFormat)
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func distinctSorted(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

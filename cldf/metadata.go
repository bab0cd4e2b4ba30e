// SPDX-License-Identifier: MIT
// Package: cognasim/cldf
//
// metadata.go — locating tables and column roles in CLDF JSON metadata.

package cldf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/katalvlaran/cognasim/cognate"
)

// Component and property terms, matched by suffix.
const (
	formTable     = "#FormTable"
	cognateTable  = "#CognateTable"
	languageTable = "#LanguageTable"

	propID         = "#id"
	propName       = "#name"
	propLanguage   = "#languageReference"
	propParameter  = "#parameterReference"
	propForm       = "#formReference"
	propCognateset = "#cognatesetReference"
)

var (
	tablesPath   = jp.MustParseString("$.tables[*]")
	columnsPath  = jp.MustParseString("$.tableSchema.columns[*]")
	conformsPath = jp.C("dc:conformsTo")
	urlPath      = jp.C("url")
	namePath     = jp.C("name")
	propertyPath = jp.C("propertyUrl")
)

// table is one CSV component of the dataset.
type table struct {
	url string
	// columns maps a property term (e.g. "#id") to the CSV column name.
	columns map[string]string
}

// column returns the CSV header for term, or fallback when the metadata
// does not declare the term.
func (t *table) column(term, fallback string) string {
	if name, ok := t.columns[term]; ok {
		return name
	}
	return fallback
}

type metadata struct {
	forms     *table
	cognates  *table
	languages *table
}

func readMetadata(path string) (*metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("readMetadata: %w", err)
	}
	doc, err := oj.ParseString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("readMetadata: %s: %v: %w", path, err, cognate.ErrInputFormat)
	}

	md := &metadata{}
	for _, node := range tablesPath.Get(doc) {
		conforms, _ := conformsPath.First(node).(string)
		t := &table{columns: map[string]string{}}
		t.url, _ = urlPath.First(node).(string)
		for _, col := range columnsPath.Get(node) {
			name, _ := namePath.First(col).(string)
			prop, _ := propertyPath.First(col).(string)
			if name == "" || prop == "" {
				continue
			}
			if i := strings.LastIndex(prop, "#"); i >= 0 {
				t.columns[prop[i:]] = name
			}
		}
		switch {
		case strings.HasSuffix(conforms, formTable):
			md.forms = t
		case strings.HasSuffix(conforms, cognateTable):
			md.cognates = t
		case strings.HasSuffix(conforms, languageTable):
			md.languages = t
		}
	}

	if md.forms == nil {
		return nil, fmt.Errorf("readMetadata: %s declares no FormTable: %w", path, cognate.ErrInputFormat)
	}
	for _, t := range []*table{md.forms, md.cognates, md.languages} {
		if t != nil && t.url == "" {
			return nil, fmt.Errorf("readMetadata: %s: table without url: %w", path, cognate.ErrInputFormat)
		}
	}
	return md, nil
}

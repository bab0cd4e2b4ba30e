// SPDX-License-Identifier: MIT

// Package cldf converts a CLDF Wordlist dataset into a cognate matrix.
//
// Read takes the path of the dataset's JSON metadata file. Tables are found
// by their dc:conformsTo class (FormTable, CognateTable, LanguageTable) and
// columns by their propertyUrl term, falling back to the conventional column
// names when a term is absent. Cognate judgements come from the CognateTable
// when the dataset has one, otherwise from a cognateset column of the
// FormTable.
//
// A language with several cognate sets for one parameter (synonyms) is
// resolved to a single class: sets already chosen by unambiguous languages
// win, then the set attested by the most languages, then the smallest ID.
// Classes are renumbered 0..k-1 per parameter in ascending set-ID order;
// languages with no form for a parameter get cognate.Unknown.
//
// Failures on malformed data wrap cognate.ErrInputFormat.
package cldf

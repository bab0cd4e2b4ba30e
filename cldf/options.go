// SPDX-License-Identifier: MIT
// Package: cognasim/cldf
//
// options.go — reader options.

package cldf

import "strings"

// Option customises Read.
type Option func(*config)

type config struct {
	excluded map[string]struct{}
	clean    func(string) string
}

func newConfig(opts ...Option) config {
	cfg := config{
		excluded: map[string]struct{}{},
		clean:    CleanName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

var nameReplacer = strings.NewReplacer(" ", "_", "õ", "o")

// CleanName makes a language name safe for CSV and NEXUS taxon labels.
func CleanName(s string) string { return nameReplacer.Replace(s) }

// WithExcludedTaxa drops the named languages. Names match either the raw
// or the cleaned label.
func WithExcludedTaxa(taxa ...string) Option {
	return func(c *config) {
		for _, t := range taxa {
			if t = strings.TrimSpace(t); t != "" {
				c.excluded[t] = struct{}{}
			}
		}
	}
}

// WithNameCleaner replaces CleanName. Panics on nil.
func WithNameCleaner(fn func(string) string) Option {
	if fn == nil {
		panic("cldf: WithNameCleaner(nil)")
	}
	return func(c *config) { c.clean = fn }
}

func (c *config) isExcluded(raw, cleaned string) bool {
	_, a := c.excluded[raw]
	_, b := c.excluded[cleaned]
	return a || b
}

// Package categorize assigns parsed receipt items to pantry categories by
// case-insensitive keyword containment against an ordered table.
package categorize

import (
	"strings"

	"github.com/pantryflow/receipt-ingest/constants"
)

// Categorizer is a pure name -> category mapping. It is total (every input
// yields a defined category) and deterministic for a given table.
type Categorizer struct {
	table Table
}

// New builds a Categorizer over the given table. A nil table means
// DefaultTable. Keywords are lowercased once here so Categorize stays cheap,
// and entry labels are canonicalized so custom tables may use synonyms
// ("drinks", "fish") for the fixed category set.
func New(table Table) *Categorizer {
	if table == nil {
		table = DefaultTable
	}
	normalized := make(Table, len(table))
	for i, e := range table {
		cat := e.Category
		if c, ok := constants.Canonicalize(string(e.Category)); ok {
			cat = c
		}
		kws := make([]string, len(e.Keywords))
		for j, kw := range e.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		normalized[i] = Entry{Category: cat, Keywords: kws}
	}
	return &Categorizer{table: normalized}
}

// Categorize returns the first category (in table order) with a keyword
// contained in the name, or constants.Other when nothing matches.
func (c *Categorizer) Categorize(name string) constants.Category {
	needle := strings.ToLower(name)
	for _, e := range c.table {
		for _, kw := range e.Keywords {
			if strings.Contains(needle, kw) {
				return e.Category
			}
		}
	}
	return constants.Other
}

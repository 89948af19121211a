// Package receipt turns raw OCR text into classified lines, structured line
// items, and receipt metadata. Parsing is total: malformed lines are dropped
// and counted, never surfaced as errors.
package receipt

import (
	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/internal/categorize"
	"github.com/pantryflow/receipt-ingest/internal/entity"
)

// Outcome is the result of parsing one receipt's raw text.
type Outcome struct {
	Items    []entity.ParsedLineItem
	Metadata entity.ReceiptMetadata
	Totals   entity.ReceiptTotals

	// ItemLines counts lines classified with the item role; ParsedItems
	// counts those the grammars accepted. The gap feeds the confidence
	// score's parse-ratio term.
	ItemLines   int
	ParsedItems int

	// ContentLines counts all non-empty lines, used to tell an empty
	// receipt from one where parsing got nothing out of real input.
	ContentLines int
}

// ItemSum returns the sum of parsed item totals, for reconciliation
// against the extracted receipt total.
func (o Outcome) ItemSum() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.TotalPrice
	}
	return sum
}

// Parse classifies lines, parses item candidates, categorizes the results
// in input order, and extracts metadata and totals. Item order follows line
// order. cat may be nil, in which case the default table is used.
func Parse(text string, cat *categorize.Categorizer) Outcome {
	if cat == nil {
		cat = categorize.New(nil)
	}

	lines := ClassifyLines(text)

	out := Outcome{ContentLines: len(lines)}
	for _, ln := range lines {
		if ln.Role != constants.RoleItem {
			continue
		}
		out.ItemLines++
		item, ok := ParseItemLine(ln.Text)
		if !ok {
			continue // unparsable line: dropped, counted, never logged as failure
		}
		item.Category = cat.Categorize(item.Name)
		out.Items = append(out.Items, item)
		out.ParsedItems++
	}

	out.Metadata = extractMetadata(lines)
	out.Totals = extractTotals(lines)
	return out
}

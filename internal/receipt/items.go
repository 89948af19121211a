package receipt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pantryflow/receipt-ingest/internal/entity"
)

// Three line grammars, attempted in order with the first match winning.
// The simple grammar requires the name to start with a letter, which keeps
// quantity-prefixed lines out of it; the unit-price grammar is reachable
// because '@' cannot appear inside a simple/quantity name.
var (
	reSimple = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 &'./%-]*?)\s+\$?(\d{1,3}(?:,\d{3})*\.\d{2})$`)
	reQty    = regexp.MustCompile(`^(\d{1,3})\s+([A-Za-z][A-Za-z0-9 &'./%-]*?)\s+\$?(\d{1,3}(?:,\d{3})*\.\d{2})$`)
	reUnit   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 &'./%-]*?)\s*@\s*\$?(\d{1,3}(?:,\d{3})*\.\d{2})\s+\$?(\d{1,3}(?:,\d{3})*\.\d{2})$`)
)

// lineGrammar is one parse attempt: returns the item and true on match.
type lineGrammar func(line string) (entity.ParsedLineItem, bool)

var grammars = []lineGrammar{parseSimple, parseQuantityPrefixed, parseUnitPrice}

// ParseItemLine runs the grammar list over one trimmed line. Lines that
// match no grammar, or whose price token fails to parse, are reported as
// unparsable; they are never an error.
func ParseItemLine(line string) (entity.ParsedLineItem, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return entity.ParsedLineItem{}, false
	}
	for _, g := range grammars {
		if item, ok := g(line); ok {
			return item, true
		}
	}
	return entity.ParsedLineItem{}, false
}

// <name> <price>
func parseSimple(line string) (entity.ParsedLineItem, bool) {
	m := reSimple.FindStringSubmatch(line)
	if m == nil {
		return entity.ParsedLineItem{}, false
	}
	total, ok := parseAmount(m[2])
	if !ok {
		return entity.ParsedLineItem{}, false
	}
	return entity.ParsedLineItem{
		Name:       normalizeName(m[1]),
		Quantity:   1.0,
		TotalPrice: total,
	}, true
}

// <qty> <name> <price>
func parseQuantityPrefixed(line string) (entity.ParsedLineItem, bool) {
	m := reQty.FindStringSubmatch(line)
	if m == nil {
		return entity.ParsedLineItem{}, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty <= 0 {
		// a zero quantity would break the result contract's quantity > 0
		return entity.ParsedLineItem{}, false
	}
	total, ok := parseAmount(m[3])
	if !ok {
		return entity.ParsedLineItem{}, false
	}
	unit := total / float64(qty)
	return entity.ParsedLineItem{
		Name:       normalizeName(m[2]),
		Quantity:   float64(qty),
		UnitPrice:  &unit,
		TotalPrice: total,
	}, true
}

// <name> @ <unit_price> <total_price>
func parseUnitPrice(line string) (entity.ParsedLineItem, bool) {
	m := reUnit.FindStringSubmatch(line)
	if m == nil {
		return entity.ParsedLineItem{}, false
	}
	unit, okU := parseAmount(m[2])
	total, okT := parseAmount(m[3])
	if !okU || !okT {
		return entity.ParsedLineItem{}, false
	}
	item := entity.ParsedLineItem{
		Name:       normalizeName(m[1]),
		Quantity:   1.0,
		UnitPrice:  &unit,
		TotalPrice: total,
	}
	if unit > 0 {
		item.Quantity = roundQuantity(total / unit)
	}
	return item, true
}

// normalizeName trims and collapses internal whitespace. No spell
// correction is performed.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// roundQuantity snaps near-integer quantities (weights stay fractional).
func roundQuantity(q float64) float64 {
	if r := float64(int64(q + 0.5)); r > 0 && q > r-0.01 && q < r+0.01 {
		return r
	}
	return q
}

package receipt

import (
	"regexp"
	"strings"

	"github.com/pantryflow/receipt-ingest/constants"
)

// ClassifiedLine is one raw line tagged with its role.
type ClassifiedLine struct {
	Index int
	Text  string
	Role  constants.LineRole
}

var (
	reDateSlash = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
	reDateISO   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	reDateLong  = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s*\d{4}\b`)

	reTotalsKeyword = regexp.MustCompile(`(?i)^\s*(sub\s*total|tax|total)\b`)

	// A line is an item candidate when it ends in a currency amount. The
	// strict grammars run later; candidates they reject count against the
	// confidence score instead of being classified as noise.
	reTrailingAmount = regexp.MustCompile(`\$?\d{1,3}(?:,\d{3})*\.\d{2}\s*$`)
)

// ClassifyLines tags every line of raw receipt text with a role, applying
// checks in fixed priority order: date, totals, header, item, noise. The
// priority is the documented tie-break: a line matching both a totals
// keyword and an item grammar is totals. Classification is line-local apart
// from first-non-empty-line tracking for header detection.
func ClassifyLines(text string) []ClassifiedLine {
	lines := strings.Split(text, "\n")
	out := make([]ClassifiedLine, 0, len(lines))
	seenContent := false

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		first := !seenContent
		seenContent = true

		role := constants.RoleNoise
		switch {
		case isDateLine(line):
			role = constants.RoleDate
		case reTotalsKeyword.MatchString(line):
			role = constants.RoleTotals
		case first && !isItemCandidate(line):
			role = constants.RoleHeader
		case isItemCandidate(line):
			role = constants.RoleItem
		}

		out = append(out, ClassifiedLine{Index: i, Text: line, Role: role})
	}
	return out
}

func isDateLine(line string) bool {
	return reDateSlash.MatchString(line) || reDateISO.MatchString(line) || reDateLong.MatchString(line)
}

func isItemCandidate(line string) bool {
	return reTrailingAmount.MatchString(line)
}

package receipt

import (
	"regexp"
	"strings"
	"time"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/internal/entity"
)

var reAmountToken = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})*\.\d{2})`)

// Date layouts tried in order against the matched date token.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"January 2, 2006",
	"January 2,2006",
}

// extractMetadata pulls store name and receipt date from classified lines.
// Values are set only when a pattern matched explicitly; nothing is guessed.
func extractMetadata(lines []ClassifiedLine) entity.ReceiptMetadata {
	var md entity.ReceiptMetadata
	for _, ln := range lines {
		switch ln.Role {
		case constants.RoleHeader:
			if md.StoreName == nil {
				name := strings.TrimSpace(ln.Text)
				md.StoreName = &name
			}
		case constants.RoleDate:
			if md.ReceiptDate == nil {
				if t, ok := parseDateToken(ln.Text); ok {
					md.ReceiptDate = &t
				}
			}
		}
	}
	return md
}

func parseDateToken(line string) (time.Time, bool) {
	token := ""
	switch {
	case reDateSlash.MatchString(line):
		token = reDateSlash.FindString(line)
	case reDateISO.MatchString(line):
		token = reDateISO.FindString(line)
	case reDateLong.MatchString(line):
		token = reDateLong.FindString(line)
	default:
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// extractTotals reads subtotal/tax/total amounts from totals-role lines.
// Each field is independently extractable; the first occurrence wins.
func extractTotals(lines []ClassifiedLine) entity.ReceiptTotals {
	var totals entity.ReceiptTotals
	for _, ln := range lines {
		if ln.Role != constants.RoleTotals {
			continue
		}
		m := reAmountToken.FindStringSubmatch(ln.Text)
		if m == nil {
			continue
		}
		amount, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		lower := strings.ToLower(ln.Text)
		switch {
		case strings.HasPrefix(lower, "subtotal"), strings.HasPrefix(lower, "sub total"):
			if totals.Subtotal == nil {
				totals.Subtotal = &amount
			}
		case strings.HasPrefix(lower, "tax"):
			if totals.Tax == nil {
				totals.Tax = &amount
			}
		default:
			if totals.Total == nil {
				totals.Total = &amount
			}
		}
	}
	return totals
}

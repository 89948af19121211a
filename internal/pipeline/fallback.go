package pipeline

import (
	"fmt"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/internal/entity"
)

// FallbackConfidenceCeiling caps the confidence of any degraded result.
const FallbackConfidenceCeiling = 0.2

// fallbackConfidence is the fixed score carried by placeholder results.
const fallbackConfidence = 0.1

// placeholderResult is the deterministic substitute returned on the
// degraded path: a small set of generic entries the pantry-merge UI can
// show for manual correction. Same reason in, same result out.
func placeholderResult(reason string) entity.ProcessingResult {
	items := make([]entity.ParsedLineItem, 0, 3)
	for i := 1; i <= 3; i++ {
		items = append(items, entity.ParsedLineItem{
			Name:       fmt.Sprintf("Grocery item %d", i),
			Quantity:   1.0,
			TotalPrice: 0.0,
			Category:   constants.Other,
		})
	}
	return entity.ProcessingResult{
		Items:           items,
		ConfidenceScore: fallbackConfidence,
		ProcessingNotes: "automatic extraction unavailable (" + reason + "); placeholder items need manual review",
		UsedFallback:    true,
	}
}

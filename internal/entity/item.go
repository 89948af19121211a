package entity

import (
	"github.com/pantryflow/receipt-ingest/constants"
)

// ParsedLineItem is one purchased item recovered from a receipt line.
// Name is normalized (trimmed, internal whitespace collapsed) and immutable
// once the item has been categorized.
type ParsedLineItem struct {
	Name       string             `json:"name"`
	Quantity   float64            `json:"quantity"`             // defaults to 1.0 when absent from the line
	UnitPrice  *float64           `json:"unit_price,omitempty"` // unset when not derivable
	TotalPrice float64            `json:"total_price"`          // required; items without one are dropped
	Category   constants.Category `json:"category"`
}

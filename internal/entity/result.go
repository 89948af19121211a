package entity

import "time"

// ReceiptMetadata holds values explicitly extracted from the receipt text.
// Fields are nil when no pattern matched; nothing here is guessed.
type ReceiptMetadata struct {
	StoreName   *string    `json:"store_name,omitempty"`
	ReceiptDate *time.Time `json:"receipt_date,omitempty"`
}

// ReceiptTotals holds amounts from subtotal/tax/total lines. Each is
// independently extractable and used only for confidence reconciliation,
// never for correcting item prices.
type ReceiptTotals struct {
	Subtotal *float64 `json:"subtotal,omitempty"`
	Tax      *float64 `json:"tax,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

// ProcessingResult is the terminal output of one pipeline run. It is
// constructed once and never mutated after creation; Items is always
// non-empty, even when the run degraded to the fallback.
type ProcessingResult struct {
	Items           []ParsedLineItem `json:"items"`
	Metadata        ReceiptMetadata  `json:"metadata"`
	Totals          ReceiptTotals    `json:"totals"`
	ConfidenceScore float64          `json:"confidence_score"`
	ProcessingNotes string           `json:"processing_notes"`
	UsedFallback    bool             `json:"used_fallback"`
}

// Package score computes the advisory extraction confidence for a pipeline
// run. The score never gates whether items are returned.
package score

import "math"

// Term weights and the totals-reconciliation tolerance.
const (
	WeightParseRatio = 0.5
	WeightReconcile  = 0.3
	WeightMetadata   = 0.2

	ReconcileTolerance = 0.05
)

// Inputs carries the observations the scorer weighs.
type Inputs struct {
	ItemLines   int // lines classified as items
	ParsedItems int // lines the grammars accepted
	ItemSum     float64
	Total       *float64 // extracted receipt total, when present
	HasStore    bool
	HasDate     bool
}

// Score combines three weighted terms:
//   - fraction of item lines that parsed (0.5)
//   - item sum within tolerance of the extracted total (0.3; contributes 0
//     when no total is available for comparison)
//   - store name and date both extracted (0.2)
//
// The result is clamped to [0, 1].
func Score(in Inputs) float64 {
	var s float64

	if in.ItemLines > 0 {
		s += WeightParseRatio * float64(in.ParsedItems) / float64(in.ItemLines)
	}

	if in.Total != nil && *in.Total > 0 && in.ParsedItems > 0 {
		if math.Abs(in.ItemSum-*in.Total) <= ReconcileTolerance*(*in.Total) {
			s += WeightReconcile
		}
	}

	if in.HasStore && in.HasDate {
		s += WeightMetadata
	}

	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

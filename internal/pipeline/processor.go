// Package pipeline orchestrates one receipt's flow from image reference to
// ProcessingResult and owns the degradation policy: recognition failures are
// absorbed into a fallback result, never surfaced to callers.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pantryflow/receipt-ingest/internal/categorize"
	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/contract"
	"github.com/pantryflow/receipt-ingest/internal/entity"
	"github.com/pantryflow/receipt-ingest/internal/extract"
	"github.com/pantryflow/receipt-ingest/internal/receipt"
	"github.com/pantryflow/receipt-ingest/internal/score"
)

// State is the controller's position in the run.
type State string

const (
	StateIdle       State = "IDLE"
	StateExtracting State = "EXTRACTING"
	StateParsing    State = "PARSING"
	StateScoring    State = "SCORING"
	StateDegraded   State = "DEGRADED"
	StateDone       State = "DONE"
)

// Config holds the pipeline behavior flags. Both toggles are passed in
// explicitly; the processor never reads ambient state.
type Config struct {
	RecognitionEnabled bool
	FallbackEnabled    bool
	ExtractTimeout     time.Duration // default 30s; bounds the single extraction attempt
}

// Trace records what happened during a run, for persistence and logs.
type Trace struct {
	OCRText    string
	Method     string
	FinalState State
}

// Processor is the fallback controller. One Processor may serve concurrent
// invocations; it holds no per-run state.
type Processor struct {
	logger      *slog.Logger
	cfg         Config
	extractor   extract.TextExtractor
	categorizer *categorize.Categorizer
}

func NewProcessor(cfg Config, tx extract.TextExtractor, cat *categorize.Categorizer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = 30 * time.Second
	}
	if cat == nil {
		cat = categorize.New(nil)
	}
	return &Processor{logger: logger, cfg: cfg, extractor: tx, categorizer: cat}
}

// Process runs the pipeline for one image reference. It never fails for
// noisy input: recognition problems and unusable text degrade to the
// fallback result. The only hard errors are an invalid invocation (empty
// image reference) and recognition failure with the fallback disabled.
func (p *Processor) Process(ctx context.Context, imageRef string) (entity.ProcessingResult, error) {
	res, _, err := p.ProcessWithTrace(ctx, imageRef)
	return res, err
}

// ProcessWithTrace is Process plus the run trace, for callers that persist
// intermediate state (job store, daemons).
func (p *Processor) ProcessWithTrace(ctx context.Context, imageRef string) (entity.ProcessingResult, Trace, error) {
	trace := Trace{FinalState: StateIdle}

	if strings.TrimSpace(imageRef) == "" {
		return entity.ProcessingResult{}, trace, common.WrapError(common.ErrInvalidInvocation, "empty image reference")
	}

	// Idle -> Extracting
	trace.FinalState = StateExtracting
	if !p.cfg.RecognitionEnabled {
		p.logger.Info("pipeline.extract.skipped", "image_ref", imageRef, "reason", "recognition disabled")
		return p.degrade(trace, "recognition disabled", common.ErrRecognitionUnavailable)
	}

	extractCtx, cancel := context.WithTimeout(ctx, p.cfg.ExtractTimeout)
	ext, err := p.extractor.Extract(extractCtx, imageRef)
	cancel()
	if err != nil {
		p.logger.Warn("pipeline.extract.failed", "image_ref", imageRef, "error", err)
		return p.degrade(trace, fmt.Sprintf("text extraction failed: %v", err), err)
	}
	if strings.TrimSpace(ext.Text) == "" {
		p.logger.Warn("pipeline.extract.empty", "image_ref", imageRef, "method", ext.Method)
		return p.degrade(trace, "text extraction returned no text", common.ErrRecognitionFailed)
	}
	trace.OCRText = ext.Text
	trace.Method = ext.Method

	// Extracting -> Parsing
	trace.FinalState = StateParsing
	outcome := receipt.Parse(ext.Text, p.categorizer)
	if outcome.ParsedItems == 0 && outcome.ContentLines > 0 {
		// parsing-quality failure on non-trivial input, not a crash
		p.logger.Warn("pipeline.parse.no_items",
			"image_ref", imageRef, "content_lines", outcome.ContentLines, "item_lines", outcome.ItemLines)
		return p.degrade(trace, "no items parsed from recognized text", common.ErrRecognitionFailed)
	}

	// Parsing -> Scoring
	trace.FinalState = StateScoring
	confidence := score.Score(score.Inputs{
		ItemLines:   outcome.ItemLines,
		ParsedItems: outcome.ParsedItems,
		ItemSum:     outcome.ItemSum(),
		Total:       outcome.Totals.Total,
		HasStore:    outcome.Metadata.StoreName != nil,
		HasDate:     outcome.Metadata.ReceiptDate != nil,
	})

	result := entity.ProcessingResult{
		Items:           outcome.Items,
		Metadata:        outcome.Metadata,
		Totals:          outcome.Totals,
		ConfidenceScore: confidence,
		ProcessingNotes: buildNotes(outcome, ext.Method),
		UsedFallback:    false,
	}

	// Scoring -> Done
	trace.FinalState = StateDone
	p.checkContract(result)
	p.logger.Info("pipeline.done",
		"image_ref", imageRef,
		"items", len(result.Items),
		"item_lines", outcome.ItemLines,
		"confidence", result.ConfidenceScore,
		"method", ext.Method,
	)
	return result, trace, nil
}

// degrade handles every Degraded transition. With the fallback disabled the
// recognition error becomes a hard failure; otherwise the placeholder result
// is substituted and the caller sees success.
func (p *Processor) degrade(trace Trace, reason string, cause error) (entity.ProcessingResult, Trace, error) {
	trace.FinalState = StateDegraded
	if !p.cfg.FallbackEnabled {
		return entity.ProcessingResult{}, trace, fmt.Errorf("fallback disabled: %w", cause)
	}

	result := placeholderResult(reason)
	trace.FinalState = StateDone
	p.checkContract(result)
	p.logger.Info("pipeline.degraded", "reason", reason, "confidence", result.ConfidenceScore)
	return result, trace, nil
}

// checkContract validates the outgoing result against the JSON contract.
// A violation is a bug in this package, so it is logged loudly but does not
// block the caller from receiving the result.
func (p *Processor) checkContract(result entity.ProcessingResult) {
	b, err := json.Marshal(result)
	if err != nil {
		p.logger.Error("pipeline.contract.marshal_failed", "error", err)
		return
	}
	if err := contract.ValidateResult(b); err != nil {
		p.logger.Error("pipeline.contract.violation", "error", err)
	}
}

func buildNotes(o receipt.Outcome, method string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "parsed %d of %d item lines via %s", o.ParsedItems, o.ItemLines, method)
	if o.Totals.Total != nil {
		fmt.Fprintf(&b, "; receipt total %.2f vs item sum %.2f", *o.Totals.Total, o.ItemSum())
	}
	if o.Metadata.StoreName != nil {
		fmt.Fprintf(&b, "; store %q", *o.Metadata.StoreName)
	}
	return b.String()
}

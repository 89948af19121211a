package extract

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"

	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/ocr"
)

// OCRAdapter adapts the tesseract-backed extractor to the TextExtractor
// contract and maps its failures onto the recognition error taxonomy.
type OCRAdapter struct {
	extractor *ocr.Extractor
	logger    *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{extractor: e, logger: logger}
}

func (a *OCRAdapter) Extract(ctx context.Context, imageRef string) (TextExtractionResult, error) {
	r, err := a.extractor.Extract(ctx, imageRef)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			// recognition binary missing -> capability unavailable
			return TextExtractionResult{}, common.WrapError(common.ErrRecognitionUnavailable, err.Error())
		}
		if ctx.Err() != nil {
			return TextExtractionResult{}, common.WrapError(common.ErrRecognitionUnavailable, ctx.Err().Error())
		}
		return TextExtractionResult{}, common.WrapError(common.ErrRecognitionFailed, err.Error())
	}
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}, nil
}

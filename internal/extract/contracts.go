package extract

import (
	"context"
	"time"
)

// TextExtractor is the recognition capability consumed by the pipeline:
// image reference -> raw multi-line text. Implementations must report
// capability problems as common.ErrRecognitionUnavailable and run failures
// as common.ErrRecognitionFailed so the controller can degrade cleanly.
type TextExtractor interface {
	Extract(ctx context.Context, imageRef string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

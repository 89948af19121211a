package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/repository"
)

// JobProcessor runs the pipeline for registered files and records each run
// in the job store: OCR text after extraction, then the result document,
// confidence and review flag on completion.
type JobProcessor struct {
	logger          *slog.Logger
	proc            *Processor
	filesRepo       repository.ReceiptFileRepository
	jobsRepo        repository.IngestJobRepository
	reviewThreshold float32
}

func NewJobProcessor(
	proc *Processor,
	filesRepo repository.ReceiptFileRepository,
	jobsRepo repository.IngestJobRepository,
	reviewThreshold float32,
	logger *slog.Logger,
) *JobProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if reviewThreshold <= 0 {
		reviewThreshold = 0.60
	}
	return &JobProcessor{
		logger:          logger,
		proc:            proc,
		filesRepo:       filesRepo,
		jobsRepo:        jobsRepo,
		reviewThreshold: reviewThreshold,
	}
}

// ProcessFile creates an ingest_job for the file, runs the pipeline, and
// persists the outcome. Returns the job ID. Degraded runs are recorded as
// DEGRADED, not FAILED; only hard errors fail the job.
func (p *JobProcessor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	logger := p.logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		logger = logger.With("request_id", rid)
	}

	row, err := p.filesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.jobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, err
	}

	result, trace, err := p.proc.ProcessWithTrace(ctx, row.SourcePath)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, err
	}

	if trace.OCRText != "" {
		if err := p.jobsRepo.FinishOCR(ctx, job.ID, trace.OCRText, trace.Method); err != nil {
			return job.ID, err
		}
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("marshal result: %v", err))
		return job.ID, err
	}

	needsReview := result.UsedFallback || float32(result.ConfidenceScore) < p.reviewThreshold
	if needsReview {
		logger.Warn("job needs review", "job_id", job.ID, "file_id", fileID,
			"confidence", result.ConfidenceScore, "used_fallback", result.UsedFallback)
	}

	out := repository.ParseOutcome{
		ResultJSON:   resultJSON,
		Confidence:   float32(result.ConfidenceScore),
		UsedFallback: result.UsedFallback,
		NeedsReview:  needsReview,
		ModelParams:  map[string]any{"method": trace.Method},
	}
	if err := p.jobsRepo.FinishParse(ctx, job.ID, out); err != nil {
		return job.ID, err
	}

	logger.Info("file processed", "job_id", job.ID, "file_id", fileID,
		"items", len(result.Items), "confidence", result.ConfidenceScore)
	return job.ID, nil
}

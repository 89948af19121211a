package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/gen/ent"
)

// ParseOutcome carries everything persisted when a run finishes.
type ParseOutcome struct {
	ResultJSON   []byte
	Confidence   float32
	UsedFallback bool
	NeedsReview  bool
	ModelParams  map[string]any
}

type IngestJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.IngestJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.IngestJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.IngestJob, *ent.ReceiptFile, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText, method string) error
	FinishParse(ctx context.Context, jobID uuid.UUID, out ParseOutcome) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type ingestJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewIngestJobRepository(entc *ent.Client, log *slog.Logger) IngestJobRepository {
	return &ingestJobRepo{ent: entc, log: log}
}

func (r *ingestJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.IngestJob, error) {
	job, err := r.ent.IngestJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("ingest_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *ingestJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.IngestJob, error) {
	return r.ent.IngestJob.Get(ctx, jobID)
}

func (r *ingestJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.IngestJob, *ent.ReceiptFile, error) {
	job, err := r.ent.IngestJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := job.QueryFile().Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}

func (r *ingestJobRepo) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText, method string) error {
	_, err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("ingest_job text extracted", "job_id", jobID, "method", method)
	return nil
}

func (r *ingestJobRepo) FinishParse(ctx context.Context, jobID uuid.UUID, out ParseOutcome) error {
	status := constants.JobStatusParseOK
	if out.UsedFallback {
		status = constants.JobStatusDegraded
	}
	var params []byte
	if out.ModelParams != nil {
		if b, err := json.Marshal(out.ModelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetResultJSON(out.ResultJSON).
		SetConfidence(out.Confidence).
		SetUsedFallback(out.UsedFallback).
		SetNeedsReview(out.NeedsReview).
		SetModelParams(params).
		SetFinishedAt(time.Now()).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job finish failed", "job_id", jobID, "status", status, "err", err)
		return err
	}
	r.log.Info("ingest_job finished", "job_id", jobID, "status", status,
		"confidence", out.Confidence, "needs_review", out.NeedsReview)
	return nil
}

func (r *ingestJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("ingest_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

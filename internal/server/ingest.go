package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ingestv1 "github.com/pantryflow/receipt-ingest/gen/proto/ingest/v1"
	"github.com/pantryflow/receipt-ingest/internal/async"
	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/entity"
	"github.com/pantryflow/receipt-ingest/internal/ingest"
	"github.com/pantryflow/receipt-ingest/internal/pipeline"
	"github.com/pantryflow/receipt-ingest/internal/repository"
)

type IngestionService struct {
	ingestv1.UnimplementedIngestionServiceServer
	ingestor  *ingest.FSIngestor
	processor *pipeline.Processor
	queue     async.Queue
	jobsRepo  repository.IngestJobRepository
	logger    *slog.Logger
}

func NewIngestionService(
	ing *ingest.FSIngestor,
	proc *pipeline.Processor,
	queue async.Queue,
	jobs repository.IngestJobRepository,
	logger *slog.Logger,
) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:  ing,
		processor: proc,
		queue:     queue,
		jobsRepo:  jobs,
		logger:    logger,
	}
}

// ProcessReceipt implements ingestv1.IngestionServiceServer
func (s *IngestionService) ProcessReceipt(ctx context.Context, req *ingestv1.ProcessReceiptRequest) (*ingestv1.ProcessReceiptResponse, error) {
	ref := strings.TrimSpace(req.GetImageRef())
	if ref == "" {
		return nil, status.Error(codes.InvalidArgument, "image_ref is required")
	}

	result, err := s.processor.Process(ctx, ref)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInvocation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("pipeline.failed", "image_ref", ref, "err", err)
		return nil, status.Errorf(codes.Internal, "process receipt: %v", err)
	}
	return &ingestv1.ProcessReceiptResponse{Result: toProtoResult(result)}, nil
}

// IngestFile implements ingestv1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *ingestv1.IngestFileRequest) (*ingestv1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toProtoIngest(r)

	fileUUID, _ := uuid.Parse(r.FileID)
	if err := s.queue.Enqueue(ctx, async.Job{FileID: fileUUID, SubmittedAt: time.Now(), TraceID: uuid.NewString()}); err != nil {
		s.logger.Error("enqueue failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *ingestv1.IngestDirectoryRequest) (*ingestv1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &ingestv1.IngestDirectoryResponse{
		Scanned:      int32(stats.Scanned),
		Matched:      int32(stats.Matched),
		Succeeded:    int32(stats.Succeeded),
		Deduplicated: int32(stats.Deduplicated),
		Failed:       int32(stats.Failed),
		Results:      make([]*ingestv1.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toProtoIngest(r)
		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if qErr := s.queue.Enqueue(ctx, async.Job{FileID: fileUUID, SubmittedAt: time.Now(), TraceID: uuid.NewString()}); qErr != nil {
					s.logger.Error("enqueue failed", "file_id", r.FileID, "err", qErr)
					item.Error = qErr.Error()
				}
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionService) GetJob(ctx context.Context, req *ingestv1.GetJobRequest) (*ingestv1.GetJobResponse, error) {
	jid := strings.TrimSpace(req.GetJobId())
	jobID, err := uuid.Parse(jid)
	if err != nil || jid == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", jid)
	}

	resp := &ingestv1.GetJobResponse{
		JobId:        job.ID.String(),
		FileId:       job.FileID.String(),
		UsedFallback: job.UsedFallback,
		NeedsReview:  job.NeedsReview,
		ResultJson:   job.ResultJSON,
		StartedAt:    job.StartedAt.UTC().Format(time.RFC3339),
	}
	if job.Status != nil {
		resp.Status = *job.Status
	}
	if job.Confidence != nil {
		resp.Confidence = *job.Confidence
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	if job.FinishedAt != nil {
		resp.FinishedAt = job.FinishedAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}

func toProtoIngest(r ingest.IngestionResult) *ingestv1.IngestResponse {
	return &ingestv1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}

func toProtoResult(res entity.ProcessingResult) *ingestv1.ProcessingResult {
	out := &ingestv1.ProcessingResult{
		Items:           make([]*ingestv1.ParsedLineItem, 0, len(res.Items)),
		ConfidenceScore: res.ConfidenceScore,
		ProcessingNotes: res.ProcessingNotes,
		UsedFallback:    res.UsedFallback,
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, &ingestv1.ParsedLineItem{
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			Category:   string(it.Category),
		})
	}
	out.StoreName = res.Metadata.StoreName
	if res.Metadata.ReceiptDate != nil {
		d := res.Metadata.ReceiptDate.Format("2006-01-02")
		out.ReceiptDate = &d
	}
	out.Subtotal = res.Totals.Subtotal
	out.Tax = res.Totals.Tax
	out.Total = res.Totals.Total
	return out
}

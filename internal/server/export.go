package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/export"

	ingestv1 "github.com/pantryflow/receipt-ingest/gen/proto/ingest/v1"
)

type ExportServer struct {
	ingestv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportPantryList(ctx context.Context, req *ingestv1.ExportPantryListRequest) (*ingestv1.ExportPantryListResponse, error) {
	jid := strings.TrimSpace(req.GetJobId())
	jobID, err := uuid.Parse(jid)
	if err != nil || jid == "" {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	xlsx, err := s.svc.ExportPantryListXLSX(ctx, jobID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "job_id", jid, "err", err)
		return nil, common.InternalError(err.Error())
	}

	return &ingestv1.ExportPantryListResponse{Xlsx: xlsx}, nil
}

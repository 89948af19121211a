package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ingestv1 "github.com/pantryflow/receipt-ingest/gen/proto/ingest/v1"
	"github.com/pantryflow/receipt-ingest/internal/async"
	"github.com/pantryflow/receipt-ingest/internal/categorize"
	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/export"
	"github.com/pantryflow/receipt-ingest/internal/extract"
	"github.com/pantryflow/receipt-ingest/internal/ingest"
	"github.com/pantryflow/receipt-ingest/internal/ocr"
	"github.com/pantryflow/receipt-ingest/internal/pipeline"
	repo "github.com/pantryflow/receipt-ingest/internal/repository"
	svc "github.com/pantryflow/receipt-ingest/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewReceiptFileRepository(entc, logger)
	jobsRepo := repo.NewIngestJobRepository(entc, logger)

	ocrCfg := ocr.Config{
		HeicConverter: cfg.OCR.HeicConverter,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           6,
	}
	extractor := ocr.NewExtractor(ocrCfg, logger)
	adapter := extract.NewOCRAdapter(extractor, logger)

	processor := pipeline.NewProcessor(pipeline.Config{
		RecognitionEnabled: cfg.Pipeline.RecognitionEnabled,
		FallbackEnabled:    cfg.Pipeline.FallbackEnabled,
		ExtractTimeout:     cfg.OCR.Timeout,
	}, adapter, categorize.New(nil), logger)

	jobProc := pipeline.NewJobProcessor(processor, filesRepo, jobsRepo, cfg.Pipeline.ReviewThreshold, logger)

	queue := async.NewProcessorQueue(jobProc, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	// Drop-folder watcher: every new receipt gets registered and queued.
	if len(cfg.Ingest.WatchDirs) > 0 {
		paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchDirs,
			InitialScan: true,
			Debounce:    500 * time.Millisecond,
		})
		if err != nil {
			logger.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range paths {
				r, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "error", err)
					continue
				}
				fileID, err := uuid.Parse(r.FileID)
				if err != nil {
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()})
			}
		}()
		go func() {
			for err := range errs {
				logger.Warn("watcher error", "error", err)
			}
		}()
		logger.Info("watching drop folders", "dirs", cfg.Ingest.WatchDirs)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	ingestionService := svc.NewIngestionService(ingestor, processor, queue, jobsRepo, logger)
	ingestv1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	exportService := export.NewService(jobsRepo, logger)
	ingestv1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("ingestd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

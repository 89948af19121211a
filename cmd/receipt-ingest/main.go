package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pantryflow/receipt-ingest/internal/categorize"
	"github.com/pantryflow/receipt-ingest/internal/export"
	"github.com/pantryflow/receipt-ingest/internal/extract"
	"github.com/pantryflow/receipt-ingest/internal/ocr"
	"github.com/pantryflow/receipt-ingest/internal/pipeline"
)

// One-shot CLI: run a receipt image through the pipeline and print the
// result document as JSON. No database, no daemon.
func main() {
	var (
		noFallback = flag.Bool("no-fallback", false, "fail hard instead of producing a placeholder result")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall processing timeout")
		quiet      = flag.Bool("quiet", false, "suppress progress logs, print only the result")
		xlsxDir    = flag.String("xlsx-dir", "", "also write a pantry-list XLSX per input into this directory")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: receipt-ingest [flags] <image-or-pdf> [...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		HeicConverter: getenv("HEIC_CONVERTER", "magick"),
		TessdataDir:   os.Getenv("TESSDATA_PREFIX"),
		PSM:           6,
	}, logger)

	processor := pipeline.NewProcessor(pipeline.Config{
		RecognitionEnabled: true,
		FallbackEnabled:    !*noFallback,
	}, extract.NewOCRAdapter(extractor, logger), categorize.New(nil), logger)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	exitCode := 0
	for _, path := range flag.Args() {
		start := time.Now()
		result, err := processor.Process(ctx, path)
		if err != nil {
			logger.Error("processing failed", "path", path, "error", err)
			exitCode = 1
			continue
		}
		logger.Info("processed",
			"path", path,
			"items", len(result.Items),
			"confidence", result.ConfidenceScore,
			"used_fallback", result.UsedFallback,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if err := enc.Encode(result); err != nil {
			logger.Error("encode result", "path", path, "error", err)
			exitCode = 1
		}
		if *xlsxDir != "" {
			xlsx, err := export.PantryListXLSX(result, path)
			if err != nil {
				logger.Error("build xlsx", "path", path, "error", err)
				exitCode = 1
				continue
			}
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			out := filepath.Join(*xlsxDir, base+".pantry.xlsx")
			if err := os.WriteFile(out, xlsx, 0o644); err != nil {
				logger.Error("write xlsx", "path", out, "error", err)
				exitCode = 1
				continue
			}
			logger.Info("wrote pantry list", "path", out)
		}
	}
	os.Exit(exitCode)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

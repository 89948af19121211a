package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/pantryflow/receipt-ingest/internal/entity"
	"github.com/pantryflow/receipt-ingest/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes
// for exports.
type Service struct {
	jobsRepo repository.IngestJobRepository
	logger   *slog.Logger
}

func NewService(jobs repository.IngestJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobs, logger: logger}
}

// ExportPantryListXLSX returns an XLSX workbook (as bytes) with the parsed
// item list of one finished job. Jobs that never produced a result are
// rejected rather than exported empty.
func (s *Service) ExportPantryListXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	job, file, err := s.jobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if len(job.ResultJSON) == 0 {
		return nil, fmt.Errorf("job %s has no result to export", jobID)
	}

	var result entity.ProcessingResult
	if err := json.Unmarshal(job.ResultJSON, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	xlsx, err := PantryListXLSX(result, file.SourcePath)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"rows", len(result.Items),
		"used_fallback", result.UsedFallback,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return xlsx, nil
}

// PantryListXLSX builds the pantry-list workbook for one ProcessingResult.
// sourcePath may be empty when the caller has no registered file.
func PantryListXLSX(result entity.ProcessingResult, sourcePath string) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Pantry List"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Item",
		"Quantity",
		"Unit Price",
		"Total Price",
		"Category",
		"Store",
		"Receipt Date",
		"Receipt/File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	store := ""
	if result.Metadata.StoreName != nil {
		store = *result.Metadata.StoreName
	}
	receiptDate := ""
	if result.Metadata.ReceiptDate != nil {
		receiptDate = result.Metadata.ReceiptDate.Format("2006-01-02")
	}

	row := 2
	for _, item := range result.Items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, truncate(item.Name, 140))
		write(2, item.Quantity)
		if item.UnitPrice != nil {
			write(3, fmt.Sprintf("%.2f", *item.UnitPrice))
		} else {
			write(3, "")
		}
		write(4, fmt.Sprintf("%.2f", item.TotalPrice))
		write(5, string(item.Category))
		write(6, store)
		write(7, receiptDate)
		write(8, sourcePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // item
	_ = f.SetColWidth(sheet, "B", "D", 12) // quantity + amounts
	_ = f.SetColWidth(sheet, "E", "E", 18) // category
	_ = f.SetColWidth(sheet, "F", "F", 24) // store
	_ = f.SetColWidth(sheet, "G", "G", 14) // date
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

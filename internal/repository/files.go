package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pantryflow/receipt-ingest/gen/ent"
	entfile "github.com/pantryflow/receipt-ingest/gen/ent/receiptfile"
)

type ReceiptFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ReceiptFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.ReceiptFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReceiptFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReceiptFile, bool, error)
}

type receiptFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReceiptFileRepository(entc *ent.Client, logger *slog.Logger) ReceiptFileRepository {
	return &receiptFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *receiptFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ReceiptFile, error) {
	return r.ent.ReceiptFile.Get(ctx, id)
}

func (r *receiptFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ReceiptFile, error) {
	row, err := r.ent.ReceiptFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *receiptFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReceiptFile, error) {
	row, err := r.ent.ReceiptFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash registers a file, deduplicating on content hash. The bool
// return reports whether the file already existed.
func (r *receiptFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReceiptFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pantryflow/receipt-ingest/db/ent/schema"
	"github.com/pantryflow/receipt-ingest/gen/ent/ingestjob"
	"github.com/pantryflow/receipt-ingest/gen/ent/receiptfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescFormat is the schema descriptor for format field.
	ingestjobDescFormat := ingestjobFields[2].Descriptor()
	// ingestjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	ingestjob.FormatValidator = func() func(string) error {
		validators := ingestjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ingestjobDescStartedAt is the schema descriptor for started_at field.
	ingestjobDescStartedAt := ingestjobFields[3].Descriptor()
	// ingestjob.DefaultStartedAt holds the default value on creation for the started_at field.
	ingestjob.DefaultStartedAt = ingestjobDescStartedAt.Default.(func() time.Time)
	// ingestjobDescUsedFallback is the schema descriptor for used_fallback field.
	ingestjobDescUsedFallback := ingestjobFields[8].Descriptor()
	// ingestjob.DefaultUsedFallback holds the default value on creation for the used_fallback field.
	ingestjob.DefaultUsedFallback = ingestjobDescUsedFallback.Default.(bool)
	// ingestjobDescNeedsReview is the schema descriptor for needs_review field.
	ingestjobDescNeedsReview := ingestjobFields[9].Descriptor()
	// ingestjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	ingestjob.DefaultNeedsReview = ingestjobDescNeedsReview.Default.(bool)
	// ingestjobDescID is the schema descriptor for id field.
	ingestjobDescID := ingestjobFields[0].Descriptor()
	// ingestjob.DefaultID holds the default value on creation for the id field.
	ingestjob.DefaultID = ingestjobDescID.Default.(func() uuid.UUID)
	receiptfileFields := schema.ReceiptFile{}.Fields()
	_ = receiptfileFields
	// receiptfileDescSourcePath is the schema descriptor for source_path field.
	receiptfileDescSourcePath := receiptfileFields[1].Descriptor()
	// receiptfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	receiptfile.SourcePathValidator = receiptfileDescSourcePath.Validators[0].(func(string) error)
	// receiptfileDescContentHash is the schema descriptor for content_hash field.
	receiptfileDescContentHash := receiptfileFields[2].Descriptor()
	// receiptfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	receiptfile.ContentHashValidator = receiptfileDescContentHash.Validators[0].(func([]byte) error)
	// receiptfileDescFilename is the schema descriptor for filename field.
	receiptfileDescFilename := receiptfileFields[3].Descriptor()
	// receiptfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	receiptfile.FilenameValidator = receiptfileDescFilename.Validators[0].(func(string) error)
	// receiptfileDescFileExt is the schema descriptor for file_ext field.
	receiptfileDescFileExt := receiptfileFields[4].Descriptor()
	// receiptfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	receiptfile.FileExtValidator = receiptfileDescFileExt.Validators[0].(func(string) error)
	// receiptfileDescFileSize is the schema descriptor for file_size field.
	receiptfileDescFileSize := receiptfileFields[5].Descriptor()
	// receiptfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	receiptfile.FileSizeValidator = receiptfileDescFileSize.Validators[0].(func(int) error)
	// receiptfileDescUploadedAt is the schema descriptor for uploaded_at field.
	receiptfileDescUploadedAt := receiptfileFields[6].Descriptor()
	// receiptfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	receiptfile.DefaultUploadedAt = receiptfileDescUploadedAt.Default.(func() time.Time)
	// receiptfileDescID is the schema descriptor for id field.
	receiptfileDescID := receiptfileFields[0].Descriptor()
	// receiptfile.DefaultID holds the default value on creation for the id field.
	receiptfile.DefaultID = receiptfileDescID.Default.(func() uuid.UUID)
}

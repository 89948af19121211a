// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IngestJobColumns holds the columns for the "ingest_job" table.
	IngestJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "used_fallback", Type: field.TypeBool, Default: false},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// IngestJobTable holds the schema information for the "ingest_job" table.
	IngestJobTable = &schema.Table{
		Name:       "ingest_job",
		Columns:    IngestJobColumns,
		PrimaryKey: []*schema.Column{IngestJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ingest_job_receipt_files_jobs",
				Columns:    []*schema.Column{IngestJobColumns[12]},
				RefColumns: []*schema.Column{ReceiptFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobColumns[4], IngestJobColumns[2]},
			},
			{
				Name:    "ingestjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{IngestJobColumns[12]},
			},
		},
	}
	// ReceiptFilesColumns holds the columns for the "receipt_files" table.
	ReceiptFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ReceiptFilesTable holds the schema information for the "receipt_files" table.
	ReceiptFilesTable = &schema.Table{
		Name:       "receipt_files",
		Columns:    ReceiptFilesColumns,
		PrimaryKey: []*schema.Column{ReceiptFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "receiptfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ReceiptFilesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IngestJobTable,
		ReceiptFilesTable,
	}
)

func init() {
	IngestJobTable.ForeignKeys[0].RefTable = ReceiptFilesTable
	IngestJobTable.Annotation = &entsql.Annotation{
		Table: "ingest_job",
	}
	ReceiptFilesTable.Annotation = &entsql.Annotation{
		Table: "receipt_files",
	}
}

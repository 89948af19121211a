package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/db/ent/schema/utils"
)

type IngestJob struct{ ent.Schema }

func (IngestJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_job"},
	}
}

func (IngestJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Float32("confidence").Optional().Nillable(),
		field.Bool("used_fallback").Default(false),
		field.Bool("needs_review").Default(false),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("result_json", json.RawMessage{}).
			Optional(),
		field.JSON("model_params", json.RawMessage{}).
			Optional(),
	}
}

func (IngestJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", ReceiptFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (IngestJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("file_id"),
	}
}

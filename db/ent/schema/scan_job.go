package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/db/ent/schema/utils"
)

// ScanJob records one OCR pass over a captured image.
type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_jobs"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("session_id", uuid.UUID{}),
		field.String("scan_type").
			Validate(utils.EnumValidator(constants.AsStrings()...)),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.Int("line_count").Default(0),
		field.Text("ocr_text").Optional().Nillable(),
		field.Bytes("extracted_json").Optional(),
		field.String("image_url").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("actor").NotEmpty(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "started_at"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// DoseDetail is the dosing-system projection written alongside every vial row.
type DoseDetail struct{ ent.Schema }

func (DoseDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dos_details"},
	}
}

func (DoseDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vial_id", uuid.UUID{}),
		field.String("patient_id").NotEmpty(),
		field.String("study_name").Optional(),
		field.String("date_calibration").Optional(), // YYYY-MM-DD
		field.String("time_calibration").Optional(), // HH:MM:SS
		field.String("rac").Optional(),
		field.String("manufacturer").Optional(),
		field.Int("rx_batch").NonNegative(),
		field.String("lot_batch").Optional(),
		field.String("volume").Optional(), // numeric characters only
		field.Time("dos").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
	}
}

func (DoseDetail) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY dose details -> ONE vial (FK: dos_details.vial_id)
		edge.From("vial", Vial.Type).
			Ref("dose_details").
			Field("vial_id").
			Required().
			Unique(),
	}
}

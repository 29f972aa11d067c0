package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Vial struct{ ent.Schema }

func (Vial) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vial"},
	}
}

func (Vial) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("radiopharmaceutical").NotEmpty(),
		field.Int("rx_number").NonNegative(),
		field.String("patient_id").NotEmpty(),
		field.String("actual_amount").Optional(),
		// normalized "YYYY-MM-DD HH:MM:SS" when the raw scan parsed, raw otherwise
		field.String("calibration_date").Optional(),
		field.String("lot_number").Optional(),
		field.String("entered_by").NotEmpty(),
		field.Time("entered_date_time").Default(time.Now),
		field.String("ordered_amount").Optional(),
		field.String("manufacturer").Optional(),
		field.String("volume").Optional(),
		field.String("radioactivity_concentration").Optional(),
		field.String("label_image_url").Optional(),
		field.String("coa_image_url").Optional(),
		field.String("vial_image_url").Optional(),
		field.String("new_label_image_url").Optional(),
		field.String("new_vial_image_url").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vial) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vial -> MANY dosing projections
		edge.To("dose_details", DoseDetail.Type),
	}
}

func (Vial) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rx_number"),
		index.Fields("entered_date_time"),
	}
}

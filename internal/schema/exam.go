package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Exam is one radiology order moving through a fixed lifecycle:
// available → in_review → finalized, with cancelled reachable from the
// two non-terminal states only.
type Exam struct {
	ent.Schema
}

func (Exam) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id"),

		field.UUID("exam_type_id", uuid.UUID{}).
			Comment("FK → exam_types.id"),

		field.UUID("radiologist_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; nil until the exam is claimed"),

		field.String("patient_name").
			MaxLen(255).
			NotEmpty(),

		field.String("patient_birth_date").
			Optional().
			Nillable().
			MaxLen(32).
			Comment("Free-form date string as submitted by the clinic"),

		field.Enum("software").
			Values("axel", "morita").
			Comment("Routes the exam to radiologists able to read this format"),

		field.Enum("status").
			Values("available", "in_review", "finalized", "cancelled").
			Default("available"),

		field.Bool("urgent").Default(false),

		field.Time("urgent_due").
			Optional().
			Nillable().
			Comment("Client-specified deadline; overrides the 2-business-day SLA"),

		field.Text("observations").
			Optional().
			Nillable(),

		field.String("dentist_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("purpose").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("exam_date").
			Optional().
			Nillable().
			MaxLen(32),

		field.String("source_file_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key of the uploaded exam image"),

		field.String("report_file_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key of the finalized report"),

		// Money snapshots in centavos. Fixed at creation/claim time;
		// later price-table edits never touch them.
		field.Int64("client_value").Default(0),

		field.Int64("radiologist_value").Default(0),

		field.Int64("margin").Default(0).
			Comment("client_value - radiologist_value"),
	}
}

func (Exam) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "status"),
		index.Fields("radiologist_id", "status"),
		index.Fields("status", "software"),
		index.Fields("created_at"),
	}
}

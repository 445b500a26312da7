package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ExamEvent is the append-only status history of an exam. One row per
// transition, including the initial "available" on creation.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("exam_id", uuid.UUID{}).
			Comment("FK → exams.id"),

		field.Enum("status").
			Values("available", "in_review", "finalized", "cancelled"),

		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("User that caused the transition; nil for system actions"),

		field.String("note").
			Optional().
			Nillable().
			MaxLen(500),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id", "created_at"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Vacation is an absence window for a radiologist, shown on the calendar.
type Vacation struct {
	ent.Schema
}

func (Vacation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Vacation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Time("start_date"),

		field.Time("end_date"),

		field.String("note").
			Optional().
			Nillable().
			MaxLen(500),
	}
}

func (Vacation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "start_date"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// ClientPrice: (client, exam type) -> amount billed to the clinic
// ---------------------------------------------------------------------------

type ClientPrice struct {
	ent.Schema
}

func (ClientPrice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ClientPrice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id"),

		field.UUID("exam_type_id", uuid.UUID{}).
			Comment("FK → exam_types.id"),

		field.Int64("client_value").
			Comment("Amount billed to the clinic, in centavos"),
	}
}

func (ClientPrice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "exam_type_id").Unique(),
	}
}

// ---------------------------------------------------------------------------
// RadiologistPrice: (client, exam type, radiologist) -> payout amount
// ---------------------------------------------------------------------------

type RadiologistPrice struct {
	ent.Schema
}

func (RadiologistPrice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (RadiologistPrice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id"),

		field.UUID("exam_type_id", uuid.UUID{}).
			Comment("FK → exam_types.id"),

		field.UUID("radiologist_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Int64("radiologist_value").
			Comment("Payout to the radiologist, in centavos"),
	}
}

func (RadiologistPrice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "exam_type_id", "radiologist_id").Unique(),
		index.Fields("radiologist_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Meeting is a shared calendar entry created by an admin.
type Meeting struct {
	ent.Schema
}

func (Meeting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),

		field.Time("starts_at"),

		field.Time("ends_at"),

		field.UUID("created_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),
	}
}

func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("starts_at"),
	}
}

// MeetingParticipant joins users to a meeting.
type MeetingParticipant struct {
	ent.Schema
}

func (MeetingParticipant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (MeetingParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("meeting_id", uuid.UUID{}).
			Comment("FK → meetings.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),
	}
}

func (MeetingParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}

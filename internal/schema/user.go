package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is any person with access to the portal. Role decides which
// screens and operations are reachable; "none" means pending approval.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			Unique().
			MaxLen(255).
			NotEmpty(),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("admin", "radiologist", "client", "none").
			Default("none"),

		field.UUID("client_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clients.id; set only for client-role users"),

		field.Strings("softwares").
			Optional().
			Default([]string{}).
			Comment("Software tags a radiologist can read; empty for other roles"),

		field.Bool("is_active").Default(true),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("client_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Clinic is a dental clinic that submits exam orders.
type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("tax_id").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("CNPJ, stored as digits only"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Bool("is_active").Default(true),

		field.Strings("softwares").
			Optional().
			Default([]string{}).
			Comment("Software tags this clinic's equipment produces"),
	}
}

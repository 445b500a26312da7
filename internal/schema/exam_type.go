package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ExamType is a catalog entry naming a kind of radiology exam
// (panoramic, tomography, cephalometric...).
type ExamType struct {
	ent.Schema
}

func (ExamType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ExamType) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty().
			Unique(),
	}
}

// Code generated by ent, DO NOT EDIT.

package radiologistprice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldClientID, v))
}

// ExamTypeID applies equality check predicate on the "exam_type_id" field. It's identical to ExamTypeIDEQ.
func ExamTypeID(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldExamTypeID, v))
}

// RadiologistID applies equality check predicate on the "radiologist_id" field. It's identical to RadiologistIDEQ.
func RadiologistID(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldRadiologistID, v))
}

// RadiologistValue applies equality check predicate on the "radiologist_value" field. It's identical to RadiologistValueEQ.
func RadiologistValue(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldRadiologistValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldClientID, v))
}

// ExamTypeIDEQ applies the EQ predicate on the "exam_type_id" field.
func ExamTypeIDEQ(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldExamTypeID, v))
}

// ExamTypeIDNEQ applies the NEQ predicate on the "exam_type_id" field.
func ExamTypeIDNEQ(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldExamTypeID, v))
}

// ExamTypeIDIn applies the In predicate on the "exam_type_id" field.
func ExamTypeIDIn(vs ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldExamTypeID, vs...))
}

// ExamTypeIDNotIn applies the NotIn predicate on the "exam_type_id" field.
func ExamTypeIDNotIn(vs ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldExamTypeID, vs...))
}

// ExamTypeIDGT applies the GT predicate on the "exam_type_id" field.
func ExamTypeIDGT(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldExamTypeID, v))
}

// ExamTypeIDGTE applies the GTE predicate on the "exam_type_id" field.
func ExamTypeIDGTE(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldExamTypeID, v))
}

// ExamTypeIDLT applies the LT predicate on the "exam_type_id" field.
func ExamTypeIDLT(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldExamTypeID, v))
}

// ExamTypeIDLTE applies the LTE predicate on the "exam_type_id" field.
func ExamTypeIDLTE(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldExamTypeID, v))
}

// RadiologistIDEQ applies the EQ predicate on the "radiologist_id" field.
func RadiologistIDEQ(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldRadiologistID, v))
}

// RadiologistIDNEQ applies the NEQ predicate on the "radiologist_id" field.
func RadiologistIDNEQ(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldRadiologistID, v))
}

// RadiologistIDIn applies the In predicate on the "radiologist_id" field.
func RadiologistIDIn(vs ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldRadiologistID, vs...))
}

// RadiologistIDNotIn applies the NotIn predicate on the "radiologist_id" field.
func RadiologistIDNotIn(vs ...uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldRadiologistID, vs...))
}

// RadiologistIDGT applies the GT predicate on the "radiologist_id" field.
func RadiologistIDGT(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldRadiologistID, v))
}

// RadiologistIDGTE applies the GTE predicate on the "radiologist_id" field.
func RadiologistIDGTE(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldRadiologistID, v))
}

// RadiologistIDLT applies the LT predicate on the "radiologist_id" field.
func RadiologistIDLT(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldRadiologistID, v))
}

// RadiologistIDLTE applies the LTE predicate on the "radiologist_id" field.
func RadiologistIDLTE(v uuid.UUID) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldRadiologistID, v))
}

// RadiologistValueEQ applies the EQ predicate on the "radiologist_value" field.
func RadiologistValueEQ(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldEQ(FieldRadiologistValue, v))
}

// RadiologistValueNEQ applies the NEQ predicate on the "radiologist_value" field.
func RadiologistValueNEQ(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNEQ(FieldRadiologistValue, v))
}

// RadiologistValueIn applies the In predicate on the "radiologist_value" field.
func RadiologistValueIn(vs ...int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldIn(FieldRadiologistValue, vs...))
}

// RadiologistValueNotIn applies the NotIn predicate on the "radiologist_value" field.
func RadiologistValueNotIn(vs ...int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldNotIn(FieldRadiologistValue, vs...))
}

// RadiologistValueGT applies the GT predicate on the "radiologist_value" field.
func RadiologistValueGT(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGT(FieldRadiologistValue, v))
}

// RadiologistValueGTE applies the GTE predicate on the "radiologist_value" field.
func RadiologistValueGTE(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldGTE(FieldRadiologistValue, v))
}

// RadiologistValueLT applies the LT predicate on the "radiologist_value" field.
func RadiologistValueLT(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLT(FieldRadiologistValue, v))
}

// RadiologistValueLTE applies the LTE predicate on the "radiologist_value" field.
func RadiologistValueLTE(v int64) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.FieldLTE(FieldRadiologistValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RadiologistPrice) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RadiologistPrice) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RadiologistPrice) predicate.RadiologistPrice {
	return predicate.RadiologistPrice(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package clientprice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldClientID, v))
}

// ExamTypeID applies equality check predicate on the "exam_type_id" field. It's identical to ExamTypeIDEQ.
func ExamTypeID(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldExamTypeID, v))
}

// ClientValue applies equality check predicate on the "client_value" field. It's identical to ClientValueEQ.
func ClientValue(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldClientValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLTE(FieldClientID, v))
}

// ExamTypeIDEQ applies the EQ predicate on the "exam_type_id" field.
func ExamTypeIDEQ(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldExamTypeID, v))
}

// ExamTypeIDNEQ applies the NEQ predicate on the "exam_type_id" field.
func ExamTypeIDNEQ(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNEQ(FieldExamTypeID, v))
}

// ExamTypeIDIn applies the In predicate on the "exam_type_id" field.
func ExamTypeIDIn(vs ...uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldIn(FieldExamTypeID, vs...))
}

// ExamTypeIDNotIn applies the NotIn predicate on the "exam_type_id" field.
func ExamTypeIDNotIn(vs ...uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNotIn(FieldExamTypeID, vs...))
}

// ExamTypeIDGT applies the GT predicate on the "exam_type_id" field.
func ExamTypeIDGT(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGT(FieldExamTypeID, v))
}

// ExamTypeIDGTE applies the GTE predicate on the "exam_type_id" field.
func ExamTypeIDGTE(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGTE(FieldExamTypeID, v))
}

// ExamTypeIDLT applies the LT predicate on the "exam_type_id" field.
func ExamTypeIDLT(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLT(FieldExamTypeID, v))
}

// ExamTypeIDLTE applies the LTE predicate on the "exam_type_id" field.
func ExamTypeIDLTE(v uuid.UUID) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLTE(FieldExamTypeID, v))
}

// ClientValueEQ applies the EQ predicate on the "client_value" field.
func ClientValueEQ(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldEQ(FieldClientValue, v))
}

// ClientValueNEQ applies the NEQ predicate on the "client_value" field.
func ClientValueNEQ(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNEQ(FieldClientValue, v))
}

// ClientValueIn applies the In predicate on the "client_value" field.
func ClientValueIn(vs ...int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldIn(FieldClientValue, vs...))
}

// ClientValueNotIn applies the NotIn predicate on the "client_value" field.
func ClientValueNotIn(vs ...int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldNotIn(FieldClientValue, vs...))
}

// ClientValueGT applies the GT predicate on the "client_value" field.
func ClientValueGT(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGT(FieldClientValue, v))
}

// ClientValueGTE applies the GTE predicate on the "client_value" field.
func ClientValueGTE(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldGTE(FieldClientValue, v))
}

// ClientValueLT applies the LT predicate on the "client_value" field.
func ClientValueLT(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLT(FieldClientValue, v))
}

// ClientValueLTE applies the LTE predicate on the "client_value" field.
func ClientValueLTE(v int64) predicate.ClientPrice {
	return predicate.ClientPrice(sql.FieldLTE(FieldClientValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientPrice) predicate.ClientPrice {
	return predicate.ClientPrice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientPrice) predicate.ClientPrice {
	return predicate.ClientPrice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientPrice) predicate.ClientPrice {
	return predicate.ClientPrice(sql.NotPredicates(p))
}

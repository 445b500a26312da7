// Code generated by ent, DO NOT EDIT.

package meetingparticipant

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldLTE(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldEQ(FieldMeetingID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldEQ(FieldUserID, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldLTE(FieldMeetingID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.FieldLTE(FieldUserID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeetingParticipant) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeetingParticipant) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeetingParticipant) predicate.MeetingParticipant {
	return predicate.MeetingParticipant(sql.NotPredicates(p))
}

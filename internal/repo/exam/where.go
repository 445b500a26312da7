// Code generated by ent, DO NOT EDIT.

package exam

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldClientID, v))
}

// ExamTypeID applies equality check predicate on the "exam_type_id" field. It's identical to ExamTypeIDEQ.
func ExamTypeID(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamTypeID, v))
}

// RadiologistID applies equality check predicate on the "radiologist_id" field. It's identical to RadiologistIDEQ.
func RadiologistID(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldRadiologistID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientName, v))
}

// PatientBirthDate applies equality check predicate on the "patient_birth_date" field. It's identical to PatientBirthDateEQ.
func PatientBirthDate(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientBirthDate, v))
}

// Urgent applies equality check predicate on the "urgent" field. It's identical to UrgentEQ.
func Urgent(v bool) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUrgent, v))
}

// UrgentDue applies equality check predicate on the "urgent_due" field. It's identical to UrgentDueEQ.
func UrgentDue(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUrgentDue, v))
}

// Observations applies equality check predicate on the "observations" field. It's identical to ObservationsEQ.
func Observations(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldObservations, v))
}

// DentistName applies equality check predicate on the "dentist_name" field. It's identical to DentistNameEQ.
func DentistName(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldDentistName, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPurpose, v))
}

// ExamDate applies equality check predicate on the "exam_date" field. It's identical to ExamDateEQ.
func ExamDate(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamDate, v))
}

// SourceFileKey applies equality check predicate on the "source_file_key" field. It's identical to SourceFileKeyEQ.
func SourceFileKey(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldSourceFileKey, v))
}

// ReportFileKey applies equality check predicate on the "report_file_key" field. It's identical to ReportFileKeyEQ.
func ReportFileKey(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldReportFileKey, v))
}

// ClientValue applies equality check predicate on the "client_value" field. It's identical to ClientValueEQ.
func ClientValue(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldClientValue, v))
}

// RadiologistValue applies equality check predicate on the "radiologist_value" field. It's identical to RadiologistValueEQ.
func RadiologistValue(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldRadiologistValue, v))
}

// Margin applies equality check predicate on the "margin" field. It's identical to MarginEQ.
func Margin(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldMargin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldClientID, v))
}

// ExamTypeIDEQ applies the EQ predicate on the "exam_type_id" field.
func ExamTypeIDEQ(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamTypeID, v))
}

// ExamTypeIDNEQ applies the NEQ predicate on the "exam_type_id" field.
func ExamTypeIDNEQ(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldExamTypeID, v))
}

// ExamTypeIDIn applies the In predicate on the "exam_type_id" field.
func ExamTypeIDIn(vs ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldExamTypeID, vs...))
}

// ExamTypeIDNotIn applies the NotIn predicate on the "exam_type_id" field.
func ExamTypeIDNotIn(vs ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldExamTypeID, vs...))
}

// ExamTypeIDGT applies the GT predicate on the "exam_type_id" field.
func ExamTypeIDGT(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldExamTypeID, v))
}

// ExamTypeIDGTE applies the GTE predicate on the "exam_type_id" field.
func ExamTypeIDGTE(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldExamTypeID, v))
}

// ExamTypeIDLT applies the LT predicate on the "exam_type_id" field.
func ExamTypeIDLT(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldExamTypeID, v))
}

// ExamTypeIDLTE applies the LTE predicate on the "exam_type_id" field.
func ExamTypeIDLTE(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldExamTypeID, v))
}

// RadiologistIDEQ applies the EQ predicate on the "radiologist_id" field.
func RadiologistIDEQ(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldRadiologistID, v))
}

// RadiologistIDNEQ applies the NEQ predicate on the "radiologist_id" field.
func RadiologistIDNEQ(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldRadiologistID, v))
}

// RadiologistIDIn applies the In predicate on the "radiologist_id" field.
func RadiologistIDIn(vs ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldRadiologistID, vs...))
}

// RadiologistIDNotIn applies the NotIn predicate on the "radiologist_id" field.
func RadiologistIDNotIn(vs ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldRadiologistID, vs...))
}

// RadiologistIDGT applies the GT predicate on the "radiologist_id" field.
func RadiologistIDGT(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldRadiologistID, v))
}

// RadiologistIDGTE applies the GTE predicate on the "radiologist_id" field.
func RadiologistIDGTE(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldRadiologistID, v))
}

// RadiologistIDLT applies the LT predicate on the "radiologist_id" field.
func RadiologistIDLT(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldRadiologistID, v))
}

// RadiologistIDLTE applies the LTE predicate on the "radiologist_id" field.
func RadiologistIDLTE(v uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldRadiologistID, v))
}

// RadiologistIDIsNil applies the IsNil predicate on the "radiologist_id" field.
func RadiologistIDIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldRadiologistID))
}

// RadiologistIDNotNil applies the NotNil predicate on the "radiologist_id" field.
func RadiologistIDNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldRadiologistID))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientBirthDateEQ applies the EQ predicate on the "patient_birth_date" field.
func PatientBirthDateEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientBirthDate, v))
}

// PatientBirthDateNEQ applies the NEQ predicate on the "patient_birth_date" field.
func PatientBirthDateNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPatientBirthDate, v))
}

// PatientBirthDateIn applies the In predicate on the "patient_birth_date" field.
func PatientBirthDateIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPatientBirthDate, vs...))
}

// PatientBirthDateNotIn applies the NotIn predicate on the "patient_birth_date" field.
func PatientBirthDateNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPatientBirthDate, vs...))
}

// PatientBirthDateGT applies the GT predicate on the "patient_birth_date" field.
func PatientBirthDateGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPatientBirthDate, v))
}

// PatientBirthDateGTE applies the GTE predicate on the "patient_birth_date" field.
func PatientBirthDateGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPatientBirthDate, v))
}

// PatientBirthDateLT applies the LT predicate on the "patient_birth_date" field.
func PatientBirthDateLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPatientBirthDate, v))
}

// PatientBirthDateLTE applies the LTE predicate on the "patient_birth_date" field.
func PatientBirthDateLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPatientBirthDate, v))
}

// PatientBirthDateContains applies the Contains predicate on the "patient_birth_date" field.
func PatientBirthDateContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldPatientBirthDate, v))
}

// PatientBirthDateHasPrefix applies the HasPrefix predicate on the "patient_birth_date" field.
func PatientBirthDateHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldPatientBirthDate, v))
}

// PatientBirthDateHasSuffix applies the HasSuffix predicate on the "patient_birth_date" field.
func PatientBirthDateHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldPatientBirthDate, v))
}

// PatientBirthDateIsNil applies the IsNil predicate on the "patient_birth_date" field.
func PatientBirthDateIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldPatientBirthDate))
}

// PatientBirthDateNotNil applies the NotNil predicate on the "patient_birth_date" field.
func PatientBirthDateNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldPatientBirthDate))
}

// PatientBirthDateEqualFold applies the EqualFold predicate on the "patient_birth_date" field.
func PatientBirthDateEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldPatientBirthDate, v))
}

// PatientBirthDateContainsFold applies the ContainsFold predicate on the "patient_birth_date" field.
func PatientBirthDateContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldPatientBirthDate, v))
}

// SoftwareEQ applies the EQ predicate on the "software" field.
func SoftwareEQ(v Software) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldSoftware, v))
}

// SoftwareNEQ applies the NEQ predicate on the "software" field.
func SoftwareNEQ(v Software) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldSoftware, v))
}

// SoftwareIn applies the In predicate on the "software" field.
func SoftwareIn(vs ...Software) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldSoftware, vs...))
}

// SoftwareNotIn applies the NotIn predicate on the "software" field.
func SoftwareNotIn(vs ...Software) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldSoftware, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldStatus, vs...))
}

// UrgentEQ applies the EQ predicate on the "urgent" field.
func UrgentEQ(v bool) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUrgent, v))
}

// UrgentNEQ applies the NEQ predicate on the "urgent" field.
func UrgentNEQ(v bool) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldUrgent, v))
}

// UrgentDueEQ applies the EQ predicate on the "urgent_due" field.
func UrgentDueEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUrgentDue, v))
}

// UrgentDueNEQ applies the NEQ predicate on the "urgent_due" field.
func UrgentDueNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldUrgentDue, v))
}

// UrgentDueIn applies the In predicate on the "urgent_due" field.
func UrgentDueIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldUrgentDue, vs...))
}

// UrgentDueNotIn applies the NotIn predicate on the "urgent_due" field.
func UrgentDueNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldUrgentDue, vs...))
}

// UrgentDueGT applies the GT predicate on the "urgent_due" field.
func UrgentDueGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldUrgentDue, v))
}

// UrgentDueGTE applies the GTE predicate on the "urgent_due" field.
func UrgentDueGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldUrgentDue, v))
}

// UrgentDueLT applies the LT predicate on the "urgent_due" field.
func UrgentDueLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldUrgentDue, v))
}

// UrgentDueLTE applies the LTE predicate on the "urgent_due" field.
func UrgentDueLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldUrgentDue, v))
}

// UrgentDueIsNil applies the IsNil predicate on the "urgent_due" field.
func UrgentDueIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldUrgentDue))
}

// UrgentDueNotNil applies the NotNil predicate on the "urgent_due" field.
func UrgentDueNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldUrgentDue))
}

// ObservationsEQ applies the EQ predicate on the "observations" field.
func ObservationsEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldObservations, v))
}

// ObservationsNEQ applies the NEQ predicate on the "observations" field.
func ObservationsNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldObservations, v))
}

// ObservationsIn applies the In predicate on the "observations" field.
func ObservationsIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldObservations, vs...))
}

// ObservationsNotIn applies the NotIn predicate on the "observations" field.
func ObservationsNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldObservations, vs...))
}

// ObservationsGT applies the GT predicate on the "observations" field.
func ObservationsGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldObservations, v))
}

// ObservationsGTE applies the GTE predicate on the "observations" field.
func ObservationsGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldObservations, v))
}

// ObservationsLT applies the LT predicate on the "observations" field.
func ObservationsLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldObservations, v))
}

// ObservationsLTE applies the LTE predicate on the "observations" field.
func ObservationsLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldObservations, v))
}

// ObservationsContains applies the Contains predicate on the "observations" field.
func ObservationsContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldObservations, v))
}

// ObservationsHasPrefix applies the HasPrefix predicate on the "observations" field.
func ObservationsHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldObservations, v))
}

// ObservationsHasSuffix applies the HasSuffix predicate on the "observations" field.
func ObservationsHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldObservations, v))
}

// ObservationsIsNil applies the IsNil predicate on the "observations" field.
func ObservationsIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldObservations))
}

// ObservationsNotNil applies the NotNil predicate on the "observations" field.
func ObservationsNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldObservations))
}

// ObservationsEqualFold applies the EqualFold predicate on the "observations" field.
func ObservationsEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldObservations, v))
}

// ObservationsContainsFold applies the ContainsFold predicate on the "observations" field.
func ObservationsContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldObservations, v))
}

// DentistNameEQ applies the EQ predicate on the "dentist_name" field.
func DentistNameEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldDentistName, v))
}

// DentistNameNEQ applies the NEQ predicate on the "dentist_name" field.
func DentistNameNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldDentistName, v))
}

// DentistNameIn applies the In predicate on the "dentist_name" field.
func DentistNameIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldDentistName, vs...))
}

// DentistNameNotIn applies the NotIn predicate on the "dentist_name" field.
func DentistNameNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldDentistName, vs...))
}

// DentistNameGT applies the GT predicate on the "dentist_name" field.
func DentistNameGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldDentistName, v))
}

// DentistNameGTE applies the GTE predicate on the "dentist_name" field.
func DentistNameGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldDentistName, v))
}

// DentistNameLT applies the LT predicate on the "dentist_name" field.
func DentistNameLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldDentistName, v))
}

// DentistNameLTE applies the LTE predicate on the "dentist_name" field.
func DentistNameLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldDentistName, v))
}

// DentistNameContains applies the Contains predicate on the "dentist_name" field.
func DentistNameContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldDentistName, v))
}

// DentistNameHasPrefix applies the HasPrefix predicate on the "dentist_name" field.
func DentistNameHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldDentistName, v))
}

// DentistNameHasSuffix applies the HasSuffix predicate on the "dentist_name" field.
func DentistNameHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldDentistName, v))
}

// DentistNameIsNil applies the IsNil predicate on the "dentist_name" field.
func DentistNameIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldDentistName))
}

// DentistNameNotNil applies the NotNil predicate on the "dentist_name" field.
func DentistNameNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldDentistName))
}

// DentistNameEqualFold applies the EqualFold predicate on the "dentist_name" field.
func DentistNameEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldDentistName, v))
}

// DentistNameContainsFold applies the ContainsFold predicate on the "dentist_name" field.
func DentistNameContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldDentistName, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeIsNil applies the IsNil predicate on the "purpose" field.
func PurposeIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldPurpose))
}

// PurposeNotNil applies the NotNil predicate on the "purpose" field.
func PurposeNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldPurpose))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldPurpose, v))
}

// ExamDateEQ applies the EQ predicate on the "exam_date" field.
func ExamDateEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamDate, v))
}

// ExamDateNEQ applies the NEQ predicate on the "exam_date" field.
func ExamDateNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldExamDate, v))
}

// ExamDateIn applies the In predicate on the "exam_date" field.
func ExamDateIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldExamDate, vs...))
}

// ExamDateNotIn applies the NotIn predicate on the "exam_date" field.
func ExamDateNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldExamDate, vs...))
}

// ExamDateGT applies the GT predicate on the "exam_date" field.
func ExamDateGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldExamDate, v))
}

// ExamDateGTE applies the GTE predicate on the "exam_date" field.
func ExamDateGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldExamDate, v))
}

// ExamDateLT applies the LT predicate on the "exam_date" field.
func ExamDateLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldExamDate, v))
}

// ExamDateLTE applies the LTE predicate on the "exam_date" field.
func ExamDateLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldExamDate, v))
}

// ExamDateContains applies the Contains predicate on the "exam_date" field.
func ExamDateContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldExamDate, v))
}

// ExamDateHasPrefix applies the HasPrefix predicate on the "exam_date" field.
func ExamDateHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldExamDate, v))
}

// ExamDateHasSuffix applies the HasSuffix predicate on the "exam_date" field.
func ExamDateHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldExamDate, v))
}

// ExamDateIsNil applies the IsNil predicate on the "exam_date" field.
func ExamDateIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldExamDate))
}

// ExamDateNotNil applies the NotNil predicate on the "exam_date" field.
func ExamDateNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldExamDate))
}

// ExamDateEqualFold applies the EqualFold predicate on the "exam_date" field.
func ExamDateEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldExamDate, v))
}

// ExamDateContainsFold applies the ContainsFold predicate on the "exam_date" field.
func ExamDateContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldExamDate, v))
}

// SourceFileKeyEQ applies the EQ predicate on the "source_file_key" field.
func SourceFileKeyEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldSourceFileKey, v))
}

// SourceFileKeyNEQ applies the NEQ predicate on the "source_file_key" field.
func SourceFileKeyNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldSourceFileKey, v))
}

// SourceFileKeyIn applies the In predicate on the "source_file_key" field.
func SourceFileKeyIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldSourceFileKey, vs...))
}

// SourceFileKeyNotIn applies the NotIn predicate on the "source_file_key" field.
func SourceFileKeyNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldSourceFileKey, vs...))
}

// SourceFileKeyGT applies the GT predicate on the "source_file_key" field.
func SourceFileKeyGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldSourceFileKey, v))
}

// SourceFileKeyGTE applies the GTE predicate on the "source_file_key" field.
func SourceFileKeyGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldSourceFileKey, v))
}

// SourceFileKeyLT applies the LT predicate on the "source_file_key" field.
func SourceFileKeyLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldSourceFileKey, v))
}

// SourceFileKeyLTE applies the LTE predicate on the "source_file_key" field.
func SourceFileKeyLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldSourceFileKey, v))
}

// SourceFileKeyContains applies the Contains predicate on the "source_file_key" field.
func SourceFileKeyContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldSourceFileKey, v))
}

// SourceFileKeyHasPrefix applies the HasPrefix predicate on the "source_file_key" field.
func SourceFileKeyHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldSourceFileKey, v))
}

// SourceFileKeyHasSuffix applies the HasSuffix predicate on the "source_file_key" field.
func SourceFileKeyHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldSourceFileKey, v))
}

// SourceFileKeyIsNil applies the IsNil predicate on the "source_file_key" field.
func SourceFileKeyIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldSourceFileKey))
}

// SourceFileKeyNotNil applies the NotNil predicate on the "source_file_key" field.
func SourceFileKeyNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldSourceFileKey))
}

// SourceFileKeyEqualFold applies the EqualFold predicate on the "source_file_key" field.
func SourceFileKeyEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldSourceFileKey, v))
}

// SourceFileKeyContainsFold applies the ContainsFold predicate on the "source_file_key" field.
func SourceFileKeyContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldSourceFileKey, v))
}

// ReportFileKeyEQ applies the EQ predicate on the "report_file_key" field.
func ReportFileKeyEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldReportFileKey, v))
}

// ReportFileKeyNEQ applies the NEQ predicate on the "report_file_key" field.
func ReportFileKeyNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldReportFileKey, v))
}

// ReportFileKeyIn applies the In predicate on the "report_file_key" field.
func ReportFileKeyIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldReportFileKey, vs...))
}

// ReportFileKeyNotIn applies the NotIn predicate on the "report_file_key" field.
func ReportFileKeyNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldReportFileKey, vs...))
}

// ReportFileKeyGT applies the GT predicate on the "report_file_key" field.
func ReportFileKeyGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldReportFileKey, v))
}

// ReportFileKeyGTE applies the GTE predicate on the "report_file_key" field.
func ReportFileKeyGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldReportFileKey, v))
}

// ReportFileKeyLT applies the LT predicate on the "report_file_key" field.
func ReportFileKeyLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldReportFileKey, v))
}

// ReportFileKeyLTE applies the LTE predicate on the "report_file_key" field.
func ReportFileKeyLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldReportFileKey, v))
}

// ReportFileKeyContains applies the Contains predicate on the "report_file_key" field.
func ReportFileKeyContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldReportFileKey, v))
}

// ReportFileKeyHasPrefix applies the HasPrefix predicate on the "report_file_key" field.
func ReportFileKeyHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldReportFileKey, v))
}

// ReportFileKeyHasSuffix applies the HasSuffix predicate on the "report_file_key" field.
func ReportFileKeyHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldReportFileKey, v))
}

// ReportFileKeyIsNil applies the IsNil predicate on the "report_file_key" field.
func ReportFileKeyIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldReportFileKey))
}

// ReportFileKeyNotNil applies the NotNil predicate on the "report_file_key" field.
func ReportFileKeyNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldReportFileKey))
}

// ReportFileKeyEqualFold applies the EqualFold predicate on the "report_file_key" field.
func ReportFileKeyEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldReportFileKey, v))
}

// ReportFileKeyContainsFold applies the ContainsFold predicate on the "report_file_key" field.
func ReportFileKeyContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldReportFileKey, v))
}

// ClientValueEQ applies the EQ predicate on the "client_value" field.
func ClientValueEQ(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldClientValue, v))
}

// ClientValueNEQ applies the NEQ predicate on the "client_value" field.
func ClientValueNEQ(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldClientValue, v))
}

// ClientValueIn applies the In predicate on the "client_value" field.
func ClientValueIn(vs ...int64) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldClientValue, vs...))
}

// ClientValueNotIn applies the NotIn predicate on the "client_value" field.
func ClientValueNotIn(vs ...int64) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldClientValue, vs...))
}

// ClientValueGT applies the GT predicate on the "client_value" field.
func ClientValueGT(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldClientValue, v))
}

// ClientValueGTE applies the GTE predicate on the "client_value" field.
func ClientValueGTE(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldClientValue, v))
}

// ClientValueLT applies the LT predicate on the "client_value" field.
func ClientValueLT(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldClientValue, v))
}

// ClientValueLTE applies the LTE predicate on the "client_value" field.
func ClientValueLTE(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldClientValue, v))
}

// RadiologistValueEQ applies the EQ predicate on the "radiologist_value" field.
func RadiologistValueEQ(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldRadiologistValue, v))
}

// RadiologistValueNEQ applies the NEQ predicate on the "radiologist_value" field.
func RadiologistValueNEQ(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldRadiologistValue, v))
}

// RadiologistValueIn applies the In predicate on the "radiologist_value" field.
func RadiologistValueIn(vs ...int64) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldRadiologistValue, vs...))
}

// RadiologistValueNotIn applies the NotIn predicate on the "radiologist_value" field.
func RadiologistValueNotIn(vs ...int64) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldRadiologistValue, vs...))
}

// RadiologistValueGT applies the GT predicate on the "radiologist_value" field.
func RadiologistValueGT(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldRadiologistValue, v))
}

// RadiologistValueGTE applies the GTE predicate on the "radiologist_value" field.
func RadiologistValueGTE(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldRadiologistValue, v))
}

// RadiologistValueLT applies the LT predicate on the "radiologist_value" field.
func RadiologistValueLT(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldRadiologistValue, v))
}

// RadiologistValueLTE applies the LTE predicate on the "radiologist_value" field.
func RadiologistValueLTE(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldRadiologistValue, v))
}

// MarginEQ applies the EQ predicate on the "margin" field.
func MarginEQ(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldMargin, v))
}

// MarginNEQ applies the NEQ predicate on the "margin" field.
func MarginNEQ(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldMargin, v))
}

// MarginIn applies the In predicate on the "margin" field.
func MarginIn(vs ...int64) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldMargin, vs...))
}

// MarginNotIn applies the NotIn predicate on the "margin" field.
func MarginNotIn(vs ...int64) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldMargin, vs...))
}

// MarginGT applies the GT predicate on the "margin" field.
func MarginGT(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldMargin, v))
}

// MarginGTE applies the GTE predicate on the "margin" field.
func MarginGTE(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldMargin, v))
}

// MarginLT applies the LT predicate on the "margin" field.
func MarginLT(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldMargin, v))
}

// MarginLTE applies the LTE predicate on the "margin" field.
func MarginLTE(v int64) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldMargin, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.NotPredicates(p))
}

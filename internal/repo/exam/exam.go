// Code generated by ent, DO NOT EDIT.

package exam

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the exam type in the database.
	Label = "exam"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldExamTypeID holds the string denoting the exam_type_id field in the database.
	FieldExamTypeID = "exam_type_id"
	// FieldRadiologistID holds the string denoting the radiologist_id field in the database.
	FieldRadiologistID = "radiologist_id"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientBirthDate holds the string denoting the patient_birth_date field in the database.
	FieldPatientBirthDate = "patient_birth_date"
	// FieldSoftware holds the string denoting the software field in the database.
	FieldSoftware = "software"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUrgent holds the string denoting the urgent field in the database.
	FieldUrgent = "urgent"
	// FieldUrgentDue holds the string denoting the urgent_due field in the database.
	FieldUrgentDue = "urgent_due"
	// FieldObservations holds the string denoting the observations field in the database.
	FieldObservations = "observations"
	// FieldDentistName holds the string denoting the dentist_name field in the database.
	FieldDentistName = "dentist_name"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldExamDate holds the string denoting the exam_date field in the database.
	FieldExamDate = "exam_date"
	// FieldSourceFileKey holds the string denoting the source_file_key field in the database.
	FieldSourceFileKey = "source_file_key"
	// FieldReportFileKey holds the string denoting the report_file_key field in the database.
	FieldReportFileKey = "report_file_key"
	// FieldClientValue holds the string denoting the client_value field in the database.
	FieldClientValue = "client_value"
	// FieldRadiologistValue holds the string denoting the radiologist_value field in the database.
	FieldRadiologistValue = "radiologist_value"
	// FieldMargin holds the string denoting the margin field in the database.
	FieldMargin = "margin"
	// Table holds the table name of the exam in the database.
	Table = "exams"
)

// Columns holds all SQL columns for exam fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClientID,
	FieldExamTypeID,
	FieldRadiologistID,
	FieldPatientName,
	FieldPatientBirthDate,
	FieldSoftware,
	FieldStatus,
	FieldUrgent,
	FieldUrgentDue,
	FieldObservations,
	FieldDentistName,
	FieldPurpose,
	FieldExamDate,
	FieldSourceFileKey,
	FieldReportFileKey,
	FieldClientValue,
	FieldRadiologistValue,
	FieldMargin,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// PatientBirthDateValidator is a validator for the "patient_birth_date" field. It is called by the builders before save.
	PatientBirthDateValidator func(string) error
	// DefaultUrgent holds the default value on creation for the "urgent" field.
	DefaultUrgent bool
	// DentistNameValidator is a validator for the "dentist_name" field. It is called by the builders before save.
	DentistNameValidator func(string) error
	// PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	PurposeValidator func(string) error
	// ExamDateValidator is a validator for the "exam_date" field. It is called by the builders before save.
	ExamDateValidator func(string) error
	// SourceFileKeyValidator is a validator for the "source_file_key" field. It is called by the builders before save.
	SourceFileKeyValidator func(string) error
	// ReportFileKeyValidator is a validator for the "report_file_key" field. It is called by the builders before save.
	ReportFileKeyValidator func(string) error
	// DefaultClientValue holds the default value on creation for the "client_value" field.
	DefaultClientValue int64
	// DefaultRadiologistValue holds the default value on creation for the "radiologist_value" field.
	DefaultRadiologistValue int64
	// DefaultMargin holds the default value on creation for the "margin" field.
	DefaultMargin int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Software defines the type for the "software" enum field.
type Software string

// Software values.
const (
	SoftwareAxel   Software = "axel"
	SoftwareMorita Software = "morita"
)

func (s Software) String() string {
	return string(s)
}

// SoftwareValidator is a validator for the "software" field enum values. It is called by the builders before save.
func SoftwareValidator(s Software) error {
	switch s {
	case SoftwareAxel, SoftwareMorita:
		return nil
	default:
		return fmt.Errorf("exam: invalid enum value for software field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusAvailable is the default value of the Status enum.
const DefaultStatus = StatusAvailable

// Status values.
const (
	StatusAvailable Status = "available"
	StatusInReview  Status = "in_review"
	StatusFinalized Status = "finalized"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAvailable, StatusInReview, StatusFinalized, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("exam: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Exam queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByExamTypeID orders the results by the exam_type_id field.
func ByExamTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamTypeID, opts...).ToFunc()
}

// ByRadiologistID orders the results by the radiologist_id field.
func ByRadiologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadiologistID, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientBirthDate orders the results by the patient_birth_date field.
func ByPatientBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientBirthDate, opts...).ToFunc()
}

// BySoftware orders the results by the software field.
func BySoftware(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoftware, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUrgent orders the results by the urgent field.
func ByUrgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgent, opts...).ToFunc()
}

// ByUrgentDue orders the results by the urgent_due field.
func ByUrgentDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgentDue, opts...).ToFunc()
}

// ByObservations orders the results by the observations field.
func ByObservations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservations, opts...).ToFunc()
}

// ByDentistName orders the results by the dentist_name field.
func ByDentistName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDentistName, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByExamDate orders the results by the exam_date field.
func ByExamDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamDate, opts...).ToFunc()
}

// BySourceFileKey orders the results by the source_file_key field.
func BySourceFileKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFileKey, opts...).ToFunc()
}

// ByReportFileKey orders the results by the report_file_key field.
func ByReportFileKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportFileKey, opts...).ToFunc()
}

// ByClientValue orders the results by the client_value field.
func ByClientValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientValue, opts...).ToFunc()
}

// ByRadiologistValue orders the results by the radiologist_value field.
func ByRadiologistValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadiologistValue, opts...).ToFunc()
}

// ByMargin orders the results by the margin field.
func ByMargin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMargin, opts...).ToFunc()
}

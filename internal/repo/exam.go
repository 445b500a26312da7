// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/exam"
)

// Exam is the model entity for the Exam schema.
type Exam struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clients.id
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// FK → exam_types.id
	ExamTypeID uuid.UUID `json:"exam_type_id,omitempty"`
	// FK → users.id; nil until the exam is claimed
	RadiologistID *uuid.UUID `json:"radiologist_id,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// Free-form date string as submitted by the clinic
	PatientBirthDate *string `json:"patient_birth_date,omitempty"`
	// Routes the exam to radiologists able to read this format
	Software exam.Software `json:"software,omitempty"`
	// Status holds the value of the "status" field.
	Status exam.Status `json:"status,omitempty"`
	// Urgent holds the value of the "urgent" field.
	Urgent bool `json:"urgent,omitempty"`
	// Client-specified deadline; overrides the 2-business-day SLA
	UrgentDue *time.Time `json:"urgent_due,omitempty"`
	// Observations holds the value of the "observations" field.
	Observations *string `json:"observations,omitempty"`
	// DentistName holds the value of the "dentist_name" field.
	DentistName *string `json:"dentist_name,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose *string `json:"purpose,omitempty"`
	// ExamDate holds the value of the "exam_date" field.
	ExamDate *string `json:"exam_date,omitempty"`
	// S3 key of the uploaded exam image
	SourceFileKey *string `json:"source_file_key,omitempty"`
	// S3 key of the finalized report
	ReportFileKey *string `json:"report_file_key,omitempty"`
	// ClientValue holds the value of the "client_value" field.
	ClientValue int64 `json:"client_value,omitempty"`
	// RadiologistValue holds the value of the "radiologist_value" field.
	RadiologistValue int64 `json:"radiologist_value,omitempty"`
	// client_value - radiologist_value
	Margin       int64 `json:"margin,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Exam) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exam.FieldRadiologistID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case exam.FieldUrgent:
			values[i] = new(sql.NullBool)
		case exam.FieldClientValue, exam.FieldRadiologistValue, exam.FieldMargin:
			values[i] = new(sql.NullInt64)
		case exam.FieldPatientName, exam.FieldPatientBirthDate, exam.FieldSoftware, exam.FieldStatus, exam.FieldObservations, exam.FieldDentistName, exam.FieldPurpose, exam.FieldExamDate, exam.FieldSourceFileKey, exam.FieldReportFileKey:
			values[i] = new(sql.NullString)
		case exam.FieldCreatedAt, exam.FieldUpdatedAt, exam.FieldUrgentDue:
			values[i] = new(sql.NullTime)
		case exam.FieldID, exam.FieldClientID, exam.FieldExamTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Exam fields.
func (_m *Exam) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exam.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case exam.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case exam.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case exam.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case exam.FieldExamTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field exam_type_id", values[i])
			} else if value != nil {
				_m.ExamTypeID = *value
			}
		case exam.FieldRadiologistID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field radiologist_id", values[i])
			} else if value.Valid {
				_m.RadiologistID = new(uuid.UUID)
				*_m.RadiologistID = *value.S.(*uuid.UUID)
			}
		case exam.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case exam.FieldPatientBirthDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_birth_date", values[i])
			} else if value.Valid {
				_m.PatientBirthDate = new(string)
				*_m.PatientBirthDate = value.String
			}
		case exam.FieldSoftware:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field software", values[i])
			} else if value.Valid {
				_m.Software = exam.Software(value.String)
			}
		case exam.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = exam.Status(value.String)
			}
		case exam.FieldUrgent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field urgent", values[i])
			} else if value.Valid {
				_m.Urgent = value.Bool
			}
		case exam.FieldUrgentDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field urgent_due", values[i])
			} else if value.Valid {
				_m.UrgentDue = new(time.Time)
				*_m.UrgentDue = value.Time
			}
		case exam.FieldObservations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				_m.Observations = new(string)
				*_m.Observations = value.String
			}
		case exam.FieldDentistName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dentist_name", values[i])
			} else if value.Valid {
				_m.DentistName = new(string)
				*_m.DentistName = value.String
			}
		case exam.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = new(string)
				*_m.Purpose = value.String
			}
		case exam.FieldExamDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_date", values[i])
			} else if value.Valid {
				_m.ExamDate = new(string)
				*_m.ExamDate = value.String
			}
		case exam.FieldSourceFileKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file_key", values[i])
			} else if value.Valid {
				_m.SourceFileKey = new(string)
				*_m.SourceFileKey = value.String
			}
		case exam.FieldReportFileKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_file_key", values[i])
			} else if value.Valid {
				_m.ReportFileKey = new(string)
				*_m.ReportFileKey = value.String
			}
		case exam.FieldClientValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_value", values[i])
			} else if value.Valid {
				_m.ClientValue = value.Int64
			}
		case exam.FieldRadiologistValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field radiologist_value", values[i])
			} else if value.Valid {
				_m.RadiologistValue = value.Int64
			}
		case exam.FieldMargin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field margin", values[i])
			} else if value.Valid {
				_m.Margin = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Exam.
// This includes values selected through modifiers, order, etc.
func (_m *Exam) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Exam.
// Note that you need to call Exam.Unwrap() before calling this method if this Exam
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Exam) Update() *ExamUpdateOne {
	return NewExamClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Exam entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Exam) Unwrap() *Exam {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Exam is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Exam) String() string {
	var builder strings.Builder
	builder.WriteString("Exam(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("exam_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamTypeID))
	builder.WriteString(", ")
	if v := _m.RadiologistID; v != nil {
		builder.WriteString("radiologist_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	if v := _m.PatientBirthDate; v != nil {
		builder.WriteString("patient_birth_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("software=")
	builder.WriteString(fmt.Sprintf("%v", _m.Software))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("urgent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Urgent))
	builder.WriteString(", ")
	if v := _m.UrgentDue; v != nil {
		builder.WriteString("urgent_due=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Observations; v != nil {
		builder.WriteString("observations=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DentistName; v != nil {
		builder.WriteString("dentist_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Purpose; v != nil {
		builder.WriteString("purpose=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExamDate; v != nil {
		builder.WriteString("exam_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceFileKey; v != nil {
		builder.WriteString("source_file_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReportFileKey; v != nil {
		builder.WriteString("report_file_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("client_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientValue))
	builder.WriteString(", ")
	builder.WriteString("radiologist_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.RadiologistValue))
	builder.WriteString(", ")
	builder.WriteString("margin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Margin))
	builder.WriteByte(')')
	return builder.String()
}

// Exams is a parsable slice of Exam.
type Exams []*Exam

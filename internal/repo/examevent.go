// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/examevent"
)

// ExamEvent is the model entity for the ExamEvent schema.
type ExamEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → exams.id
	ExamID uuid.UUID `json:"exam_id,omitempty"`
	// Status holds the value of the "status" field.
	Status examevent.Status `json:"status,omitempty"`
	// User that caused the transition; nil for system actions
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
	// Note holds the value of the "note" field.
	Note         *string `json:"note,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examevent.FieldActorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case examevent.FieldStatus, examevent.FieldNote:
			values[i] = new(sql.NullString)
		case examevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case examevent.FieldID, examevent.FieldExamID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamEvent fields.
func (_m *ExamEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case examevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case examevent.FieldExamID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value != nil {
				_m.ExamID = *value
			}
		case examevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = examevent.Status(value.String)
			}
		case examevent.FieldActorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = new(uuid.UUID)
				*_m.ActorID = *value.S.(*uuid.UUID)
			}
		case examevent.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExamEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamEvent.
// Note that you need to call ExamEvent.Unwrap() before calling this method if this ExamEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamEvent) Update() *ExamEventUpdateOne {
	return NewExamEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamEvent) Unwrap() *ExamEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ExamEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExamEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exam_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ActorID; v != nil {
		builder.WriteString("actor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExamEvents is a parsable slice of ExamEvent.
type ExamEvents []*ExamEvent

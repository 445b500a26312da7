// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
)

// MeetingParticipant is the model entity for the MeetingParticipant schema.
type MeetingParticipant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → meetings.id
	MeetingID uuid.UUID `json:"meeting_id,omitempty"`
	// FK → users.id
	UserID       uuid.UUID `json:"user_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeetingParticipant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meetingparticipant.FieldID, meetingparticipant.FieldMeetingID, meetingparticipant.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeetingParticipant fields.
func (_m *MeetingParticipant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meetingparticipant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case meetingparticipant.FieldMeetingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value != nil {
				_m.MeetingID = *value
			}
		case meetingparticipant.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeetingParticipant.
// This includes values selected through modifiers, order, etc.
func (_m *MeetingParticipant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MeetingParticipant.
// Note that you need to call MeetingParticipant.Unwrap() before calling this method if this MeetingParticipant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeetingParticipant) Update() *MeetingParticipantUpdateOne {
	return NewMeetingParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeetingParticipant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeetingParticipant) Unwrap() *MeetingParticipant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MeetingParticipant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeetingParticipant) String() string {
	var builder strings.Builder
	builder.WriteString("MeetingParticipant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeetingID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteByte(')')
	return builder.String()
}

// MeetingParticipants is a parsable slice of MeetingParticipant.
type MeetingParticipants []*MeetingParticipant

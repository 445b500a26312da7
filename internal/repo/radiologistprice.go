// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
)

// RadiologistPrice is the model entity for the RadiologistPrice schema.
type RadiologistPrice struct {
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
	// FK → users.id
	RadiologistID uuid.UUID `json:"radiologist_id,omitempty"`
	// Payout to the radiologist, in centavos
	RadiologistValue int64 `json:"radiologist_value,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RadiologistPrice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case radiologistprice.FieldRadiologistValue:
			values[i] = new(sql.NullInt64)
		case radiologistprice.FieldCreatedAt, radiologistprice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case radiologistprice.FieldID, radiologistprice.FieldClientID, radiologistprice.FieldExamTypeID, radiologistprice.FieldRadiologistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RadiologistPrice fields.
func (_m *RadiologistPrice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case radiologistprice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case radiologistprice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case radiologistprice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case radiologistprice.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case radiologistprice.FieldExamTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field exam_type_id", values[i])
			} else if value != nil {
				_m.ExamTypeID = *value
			}
		case radiologistprice.FieldRadiologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field radiologist_id", values[i])
			} else if value != nil {
				_m.RadiologistID = *value
			}
		case radiologistprice.FieldRadiologistValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field radiologist_value", values[i])
			} else if value.Valid {
				_m.RadiologistValue = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RadiologistPrice.
// This includes values selected through modifiers, order, etc.
func (_m *RadiologistPrice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RadiologistPrice.
// Note that you need to call RadiologistPrice.Unwrap() before calling this method if this RadiologistPrice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RadiologistPrice) Update() *RadiologistPriceUpdateOne {
	return NewRadiologistPriceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RadiologistPrice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RadiologistPrice) Unwrap() *RadiologistPrice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RadiologistPrice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RadiologistPrice) String() string {
	var builder strings.Builder
	builder.WriteString("RadiologistPrice(")
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
	builder.WriteString("radiologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RadiologistID))
	builder.WriteString(", ")
	builder.WriteString("radiologist_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.RadiologistValue))
	builder.WriteByte(')')
	return builder.String()
}

// RadiologistPrices is a parsable slice of RadiologistPrice.
type RadiologistPrices []*RadiologistPrice

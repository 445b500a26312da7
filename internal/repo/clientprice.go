// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/clientprice"
)

// ClientPrice is the model entity for the ClientPrice schema.
type ClientPrice struct {
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
	// Amount billed to the clinic, in centavos
	ClientValue  int64 `json:"client_value,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientPrice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientprice.FieldClientValue:
			values[i] = new(sql.NullInt64)
		case clientprice.FieldCreatedAt, clientprice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case clientprice.FieldID, clientprice.FieldClientID, clientprice.FieldExamTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientPrice fields.
func (_m *ClientPrice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientprice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clientprice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clientprice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clientprice.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case clientprice.FieldExamTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field exam_type_id", values[i])
			} else if value != nil {
				_m.ExamTypeID = *value
			}
		case clientprice.FieldClientValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_value", values[i])
			} else if value.Valid {
				_m.ClientValue = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientPrice.
// This includes values selected through modifiers, order, etc.
func (_m *ClientPrice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClientPrice.
// Note that you need to call ClientPrice.Unwrap() before calling this method if this ClientPrice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientPrice) Update() *ClientPriceUpdateOne {
	return NewClientPriceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientPrice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientPrice) Unwrap() *ClientPrice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClientPrice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientPrice) String() string {
	var builder strings.Builder
	builder.WriteString("ClientPrice(")
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
	builder.WriteString("client_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientValue))
	builder.WriteByte(')')
	return builder.String()
}

// ClientPrices is a parsable slice of ClientPrice.
type ClientPrices []*ClientPrice

// Code generated by ent, DO NOT EDIT.

package radiologistprice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the radiologistprice type in the database.
	Label = "radiologist_price"
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
	// FieldRadiologistValue holds the string denoting the radiologist_value field in the database.
	FieldRadiologistValue = "radiologist_value"
	// Table holds the table name of the radiologistprice in the database.
	Table = "radiologist_prices"
)

// Columns holds all SQL columns for radiologistprice fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClientID,
	FieldExamTypeID,
	FieldRadiologistID,
	FieldRadiologistValue,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RadiologistPrice queries.
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

// ByRadiologistValue orders the results by the radiologist_value field.
func ByRadiologistValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadiologistValue, opts...).ToFunc()
}

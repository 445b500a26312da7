// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
)

// RadiologistPriceUpdate is the builder for updating RadiologistPrice entities.
type RadiologistPriceUpdate struct {
	config
	hooks    []Hook
	mutation *RadiologistPriceMutation
}

// Where appends a list predicates to the RadiologistPriceUpdate builder.
func (_u *RadiologistPriceUpdate) Where(ps ...predicate.RadiologistPrice) *RadiologistPriceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RadiologistPriceUpdate) SetUpdatedAt(v time.Time) *RadiologistPriceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *RadiologistPriceUpdate) SetClientID(v uuid.UUID) *RadiologistPriceUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *RadiologistPriceUpdate) SetNillableClientID(v *uuid.UUID) *RadiologistPriceUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetExamTypeID sets the "exam_type_id" field.
func (_u *RadiologistPriceUpdate) SetExamTypeID(v uuid.UUID) *RadiologistPriceUpdate {
	_u.mutation.SetExamTypeID(v)
	return _u
}

// SetNillableExamTypeID sets the "exam_type_id" field if the given value is not nil.
func (_u *RadiologistPriceUpdate) SetNillableExamTypeID(v *uuid.UUID) *RadiologistPriceUpdate {
	if v != nil {
		_u.SetExamTypeID(*v)
	}
	return _u
}

// SetRadiologistID sets the "radiologist_id" field.
func (_u *RadiologistPriceUpdate) SetRadiologistID(v uuid.UUID) *RadiologistPriceUpdate {
	_u.mutation.SetRadiologistID(v)
	return _u
}

// SetNillableRadiologistID sets the "radiologist_id" field if the given value is not nil.
func (_u *RadiologistPriceUpdate) SetNillableRadiologistID(v *uuid.UUID) *RadiologistPriceUpdate {
	if v != nil {
		_u.SetRadiologistID(*v)
	}
	return _u
}

// SetRadiologistValue sets the "radiologist_value" field.
func (_u *RadiologistPriceUpdate) SetRadiologistValue(v int64) *RadiologistPriceUpdate {
	_u.mutation.ResetRadiologistValue()
	_u.mutation.SetRadiologistValue(v)
	return _u
}

// SetNillableRadiologistValue sets the "radiologist_value" field if the given value is not nil.
func (_u *RadiologistPriceUpdate) SetNillableRadiologistValue(v *int64) *RadiologistPriceUpdate {
	if v != nil {
		_u.SetRadiologistValue(*v)
	}
	return _u
}

// AddRadiologistValue adds value to the "radiologist_value" field.
func (_u *RadiologistPriceUpdate) AddRadiologistValue(v int64) *RadiologistPriceUpdate {
	_u.mutation.AddRadiologistValue(v)
	return _u
}

// Mutation returns the RadiologistPriceMutation object of the builder.
func (_u *RadiologistPriceUpdate) Mutation() *RadiologistPriceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RadiologistPriceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RadiologistPriceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RadiologistPriceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RadiologistPriceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RadiologistPriceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := radiologistprice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RadiologistPriceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(radiologistprice.Table, radiologistprice.Columns, sqlgraph.NewFieldSpec(radiologistprice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(radiologistprice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(radiologistprice.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExamTypeID(); ok {
		_spec.SetField(radiologistprice.FieldExamTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RadiologistID(); ok {
		_spec.SetField(radiologistprice.FieldRadiologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RadiologistValue(); ok {
		_spec.SetField(radiologistprice.FieldRadiologistValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRadiologistValue(); ok {
		_spec.AddField(radiologistprice.FieldRadiologistValue, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{radiologistprice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RadiologistPriceUpdateOne is the builder for updating a single RadiologistPrice entity.
type RadiologistPriceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RadiologistPriceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RadiologistPriceUpdateOne) SetUpdatedAt(v time.Time) *RadiologistPriceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *RadiologistPriceUpdateOne) SetClientID(v uuid.UUID) *RadiologistPriceUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *RadiologistPriceUpdateOne) SetNillableClientID(v *uuid.UUID) *RadiologistPriceUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetExamTypeID sets the "exam_type_id" field.
func (_u *RadiologistPriceUpdateOne) SetExamTypeID(v uuid.UUID) *RadiologistPriceUpdateOne {
	_u.mutation.SetExamTypeID(v)
	return _u
}

// SetNillableExamTypeID sets the "exam_type_id" field if the given value is not nil.
func (_u *RadiologistPriceUpdateOne) SetNillableExamTypeID(v *uuid.UUID) *RadiologistPriceUpdateOne {
	if v != nil {
		_u.SetExamTypeID(*v)
	}
	return _u
}

// SetRadiologistID sets the "radiologist_id" field.
func (_u *RadiologistPriceUpdateOne) SetRadiologistID(v uuid.UUID) *RadiologistPriceUpdateOne {
	_u.mutation.SetRadiologistID(v)
	return _u
}

// SetNillableRadiologistID sets the "radiologist_id" field if the given value is not nil.
func (_u *RadiologistPriceUpdateOne) SetNillableRadiologistID(v *uuid.UUID) *RadiologistPriceUpdateOne {
	if v != nil {
		_u.SetRadiologistID(*v)
	}
	return _u
}

// SetRadiologistValue sets the "radiologist_value" field.
func (_u *RadiologistPriceUpdateOne) SetRadiologistValue(v int64) *RadiologistPriceUpdateOne {
	_u.mutation.ResetRadiologistValue()
	_u.mutation.SetRadiologistValue(v)
	return _u
}

// SetNillableRadiologistValue sets the "radiologist_value" field if the given value is not nil.
func (_u *RadiologistPriceUpdateOne) SetNillableRadiologistValue(v *int64) *RadiologistPriceUpdateOne {
	if v != nil {
		_u.SetRadiologistValue(*v)
	}
	return _u
}

// AddRadiologistValue adds value to the "radiologist_value" field.
func (_u *RadiologistPriceUpdateOne) AddRadiologistValue(v int64) *RadiologistPriceUpdateOne {
	_u.mutation.AddRadiologistValue(v)
	return _u
}

// Mutation returns the RadiologistPriceMutation object of the builder.
func (_u *RadiologistPriceUpdateOne) Mutation() *RadiologistPriceMutation {
	return _u.mutation
}

// Where appends a list predicates to the RadiologistPriceUpdate builder.
func (_u *RadiologistPriceUpdateOne) Where(ps ...predicate.RadiologistPrice) *RadiologistPriceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RadiologistPriceUpdateOne) Select(field string, fields ...string) *RadiologistPriceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RadiologistPrice entity.
func (_u *RadiologistPriceUpdateOne) Save(ctx context.Context) (*RadiologistPrice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RadiologistPriceUpdateOne) SaveX(ctx context.Context) *RadiologistPrice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RadiologistPriceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RadiologistPriceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RadiologistPriceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := radiologistprice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RadiologistPriceUpdateOne) sqlSave(ctx context.Context) (_node *RadiologistPrice, err error) {
	_spec := sqlgraph.NewUpdateSpec(radiologistprice.Table, radiologistprice.Columns, sqlgraph.NewFieldSpec(radiologistprice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RadiologistPrice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, radiologistprice.FieldID)
		for _, f := range fields {
			if !radiologistprice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != radiologistprice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(radiologistprice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(radiologistprice.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExamTypeID(); ok {
		_spec.SetField(radiologistprice.FieldExamTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RadiologistID(); ok {
		_spec.SetField(radiologistprice.FieldRadiologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RadiologistValue(); ok {
		_spec.SetField(radiologistprice.FieldRadiologistValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRadiologistValue(); ok {
		_spec.AddField(radiologistprice.FieldRadiologistValue, field.TypeInt64, value)
	}
	_node = &RadiologistPrice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{radiologistprice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

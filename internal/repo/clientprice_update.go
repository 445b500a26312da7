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
	"github.com/raydent/raydent_backend/internal/repo/clientprice"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ClientPriceUpdate is the builder for updating ClientPrice entities.
type ClientPriceUpdate struct {
	config
	hooks    []Hook
	mutation *ClientPriceMutation
}

// Where appends a list predicates to the ClientPriceUpdate builder.
func (_u *ClientPriceUpdate) Where(ps ...predicate.ClientPrice) *ClientPriceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientPriceUpdate) SetUpdatedAt(v time.Time) *ClientPriceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ClientPriceUpdate) SetClientID(v uuid.UUID) *ClientPriceUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ClientPriceUpdate) SetNillableClientID(v *uuid.UUID) *ClientPriceUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetExamTypeID sets the "exam_type_id" field.
func (_u *ClientPriceUpdate) SetExamTypeID(v uuid.UUID) *ClientPriceUpdate {
	_u.mutation.SetExamTypeID(v)
	return _u
}

// SetNillableExamTypeID sets the "exam_type_id" field if the given value is not nil.
func (_u *ClientPriceUpdate) SetNillableExamTypeID(v *uuid.UUID) *ClientPriceUpdate {
	if v != nil {
		_u.SetExamTypeID(*v)
	}
	return _u
}

// SetClientValue sets the "client_value" field.
func (_u *ClientPriceUpdate) SetClientValue(v int64) *ClientPriceUpdate {
	_u.mutation.ResetClientValue()
	_u.mutation.SetClientValue(v)
	return _u
}

// SetNillableClientValue sets the "client_value" field if the given value is not nil.
func (_u *ClientPriceUpdate) SetNillableClientValue(v *int64) *ClientPriceUpdate {
	if v != nil {
		_u.SetClientValue(*v)
	}
	return _u
}

// AddClientValue adds value to the "client_value" field.
func (_u *ClientPriceUpdate) AddClientValue(v int64) *ClientPriceUpdate {
	_u.mutation.AddClientValue(v)
	return _u
}

// Mutation returns the ClientPriceMutation object of the builder.
func (_u *ClientPriceUpdate) Mutation() *ClientPriceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientPriceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientPriceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientPriceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientPriceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientPriceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientprice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClientPriceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(clientprice.Table, clientprice.Columns, sqlgraph.NewFieldSpec(clientprice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientprice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(clientprice.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExamTypeID(); ok {
		_spec.SetField(clientprice.FieldExamTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClientValue(); ok {
		_spec.SetField(clientprice.FieldClientValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientValue(); ok {
		_spec.AddField(clientprice.FieldClientValue, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientprice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientPriceUpdateOne is the builder for updating a single ClientPrice entity.
type ClientPriceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientPriceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientPriceUpdateOne) SetUpdatedAt(v time.Time) *ClientPriceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ClientPriceUpdateOne) SetClientID(v uuid.UUID) *ClientPriceUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ClientPriceUpdateOne) SetNillableClientID(v *uuid.UUID) *ClientPriceUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetExamTypeID sets the "exam_type_id" field.
func (_u *ClientPriceUpdateOne) SetExamTypeID(v uuid.UUID) *ClientPriceUpdateOne {
	_u.mutation.SetExamTypeID(v)
	return _u
}

// SetNillableExamTypeID sets the "exam_type_id" field if the given value is not nil.
func (_u *ClientPriceUpdateOne) SetNillableExamTypeID(v *uuid.UUID) *ClientPriceUpdateOne {
	if v != nil {
		_u.SetExamTypeID(*v)
	}
	return _u
}

// SetClientValue sets the "client_value" field.
func (_u *ClientPriceUpdateOne) SetClientValue(v int64) *ClientPriceUpdateOne {
	_u.mutation.ResetClientValue()
	_u.mutation.SetClientValue(v)
	return _u
}

// SetNillableClientValue sets the "client_value" field if the given value is not nil.
func (_u *ClientPriceUpdateOne) SetNillableClientValue(v *int64) *ClientPriceUpdateOne {
	if v != nil {
		_u.SetClientValue(*v)
	}
	return _u
}

// AddClientValue adds value to the "client_value" field.
func (_u *ClientPriceUpdateOne) AddClientValue(v int64) *ClientPriceUpdateOne {
	_u.mutation.AddClientValue(v)
	return _u
}

// Mutation returns the ClientPriceMutation object of the builder.
func (_u *ClientPriceUpdateOne) Mutation() *ClientPriceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClientPriceUpdate builder.
func (_u *ClientPriceUpdateOne) Where(ps ...predicate.ClientPrice) *ClientPriceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientPriceUpdateOne) Select(field string, fields ...string) *ClientPriceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientPrice entity.
func (_u *ClientPriceUpdateOne) Save(ctx context.Context) (*ClientPrice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientPriceUpdateOne) SaveX(ctx context.Context) *ClientPrice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientPriceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientPriceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientPriceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientprice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClientPriceUpdateOne) sqlSave(ctx context.Context) (_node *ClientPrice, err error) {
	_spec := sqlgraph.NewUpdateSpec(clientprice.Table, clientprice.Columns, sqlgraph.NewFieldSpec(clientprice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClientPrice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientprice.FieldID)
		for _, f := range fields {
			if !clientprice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clientprice.FieldID {
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
		_spec.SetField(clientprice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(clientprice.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExamTypeID(); ok {
		_spec.SetField(clientprice.FieldExamTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClientValue(); ok {
		_spec.SetField(clientprice.FieldClientValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientValue(); ok {
		_spec.AddField(clientprice.FieldClientValue, field.TypeInt64, value)
	}
	_node = &ClientPrice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientprice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

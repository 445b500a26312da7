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
	"github.com/raydent/raydent_backend/internal/repo/vacation"
)

// VacationUpdate is the builder for updating Vacation entities.
type VacationUpdate struct {
	config
	hooks    []Hook
	mutation *VacationMutation
}

// Where appends a list predicates to the VacationUpdate builder.
func (_u *VacationUpdate) Where(ps ...predicate.Vacation) *VacationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VacationUpdate) SetUserID(v uuid.UUID) *VacationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VacationUpdate) SetNillableUserID(v *uuid.UUID) *VacationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *VacationUpdate) SetStartDate(v time.Time) *VacationUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *VacationUpdate) SetNillableStartDate(v *time.Time) *VacationUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *VacationUpdate) SetEndDate(v time.Time) *VacationUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *VacationUpdate) SetNillableEndDate(v *time.Time) *VacationUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *VacationUpdate) SetNote(v string) *VacationUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *VacationUpdate) SetNillableNote(v *string) *VacationUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *VacationUpdate) ClearNote() *VacationUpdate {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the VacationMutation object of the builder.
func (_u *VacationUpdate) Mutation() *VacationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VacationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VacationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VacationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VacationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VacationUpdate) check() error {
	if v, ok := _u.mutation.Note(); ok {
		if err := vacation.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "Vacation.note": %w`, err)}
		}
	}
	return nil
}

func (_u *VacationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vacation.Table, vacation.Columns, sqlgraph.NewFieldSpec(vacation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(vacation.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(vacation.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(vacation.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(vacation.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(vacation.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vacation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VacationUpdateOne is the builder for updating a single Vacation entity.
type VacationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VacationMutation
}

// SetUserID sets the "user_id" field.
func (_u *VacationUpdateOne) SetUserID(v uuid.UUID) *VacationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VacationUpdateOne) SetNillableUserID(v *uuid.UUID) *VacationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *VacationUpdateOne) SetStartDate(v time.Time) *VacationUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *VacationUpdateOne) SetNillableStartDate(v *time.Time) *VacationUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *VacationUpdateOne) SetEndDate(v time.Time) *VacationUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *VacationUpdateOne) SetNillableEndDate(v *time.Time) *VacationUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *VacationUpdateOne) SetNote(v string) *VacationUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *VacationUpdateOne) SetNillableNote(v *string) *VacationUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *VacationUpdateOne) ClearNote() *VacationUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the VacationMutation object of the builder.
func (_u *VacationUpdateOne) Mutation() *VacationMutation {
	return _u.mutation
}

// Where appends a list predicates to the VacationUpdate builder.
func (_u *VacationUpdateOne) Where(ps ...predicate.Vacation) *VacationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VacationUpdateOne) Select(field string, fields ...string) *VacationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vacation entity.
func (_u *VacationUpdateOne) Save(ctx context.Context) (*Vacation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VacationUpdateOne) SaveX(ctx context.Context) *Vacation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VacationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VacationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VacationUpdateOne) check() error {
	if v, ok := _u.mutation.Note(); ok {
		if err := vacation.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "Vacation.note": %w`, err)}
		}
	}
	return nil
}

func (_u *VacationUpdateOne) sqlSave(ctx context.Context) (_node *Vacation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vacation.Table, vacation.Columns, sqlgraph.NewFieldSpec(vacation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Vacation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vacation.FieldID)
		for _, f := range fields {
			if !vacation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != vacation.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(vacation.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(vacation.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(vacation.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(vacation.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(vacation.FieldNote, field.TypeString)
	}
	_node = &Vacation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vacation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

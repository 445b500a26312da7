// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/examevent"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdate) SetExamID(v uuid.UUID) *ExamEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableExamID(v *uuid.UUID) *ExamEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExamEventUpdate) SetStatus(v examevent.Status) *ExamEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableStatus(v *examevent.Status) *ExamEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *ExamEventUpdate) SetActorID(v uuid.UUID) *ExamEventUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableActorID(v *uuid.UUID) *ExamEventUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *ExamEventUpdate) ClearActorID() *ExamEventUpdate {
	_u.mutation.ClearActorID()
	return _u
}

// SetNote sets the "note" field.
func (_u *ExamEventUpdate) SetNote(v string) *ExamEventUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableNote(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ExamEventUpdate) ClearNote() *ExamEventUpdate {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := examevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ExamEvent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := examevent.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "ExamEvent.note": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(examevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(examevent.FieldActorID, field.TypeUUID, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(examevent.FieldActorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(examevent.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(examevent.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdateOne) SetExamID(v uuid.UUID) *ExamEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableExamID(v *uuid.UUID) *ExamEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExamEventUpdateOne) SetStatus(v examevent.Status) *ExamEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableStatus(v *examevent.Status) *ExamEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *ExamEventUpdateOne) SetActorID(v uuid.UUID) *ExamEventUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableActorID(v *uuid.UUID) *ExamEventUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *ExamEventUpdateOne) ClearActorID() *ExamEventUpdateOne {
	_u.mutation.ClearActorID()
	return _u
}

// SetNote sets the "note" field.
func (_u *ExamEventUpdateOne) SetNote(v string) *ExamEventUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableNote(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ExamEventUpdateOne) ClearNote() *ExamEventUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := examevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ExamEvent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := examevent.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "ExamEvent.note": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(examevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(examevent.FieldActorID, field.TypeUUID, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(examevent.FieldActorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(examevent.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(examevent.FieldNote, field.TypeString)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// MeetingParticipantUpdate is the builder for updating MeetingParticipant entities.
type MeetingParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingParticipantMutation
}

// Where appends a list predicates to the MeetingParticipantUpdate builder.
func (_u *MeetingParticipantUpdate) Where(ps ...predicate.MeetingParticipant) *MeetingParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *MeetingParticipantUpdate) SetMeetingID(v uuid.UUID) *MeetingParticipantUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *MeetingParticipantUpdate) SetNillableMeetingID(v *uuid.UUID) *MeetingParticipantUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MeetingParticipantUpdate) SetUserID(v uuid.UUID) *MeetingParticipantUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MeetingParticipantUpdate) SetNillableUserID(v *uuid.UUID) *MeetingParticipantUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// Mutation returns the MeetingParticipantMutation object of the builder.
func (_u *MeetingParticipantUpdate) Mutation() *MeetingParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(meetingparticipant.Table, meetingparticipant.Columns, sqlgraph.NewFieldSpec(meetingparticipant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(meetingparticipant.FieldMeetingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(meetingparticipant.FieldUserID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingParticipantUpdateOne is the builder for updating a single MeetingParticipant entity.
type MeetingParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingParticipantMutation
}

// SetMeetingID sets the "meeting_id" field.
func (_u *MeetingParticipantUpdateOne) SetMeetingID(v uuid.UUID) *MeetingParticipantUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *MeetingParticipantUpdateOne) SetNillableMeetingID(v *uuid.UUID) *MeetingParticipantUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MeetingParticipantUpdateOne) SetUserID(v uuid.UUID) *MeetingParticipantUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MeetingParticipantUpdateOne) SetNillableUserID(v *uuid.UUID) *MeetingParticipantUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// Mutation returns the MeetingParticipantMutation object of the builder.
func (_u *MeetingParticipantUpdateOne) Mutation() *MeetingParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeetingParticipantUpdate builder.
func (_u *MeetingParticipantUpdateOne) Where(ps ...predicate.MeetingParticipant) *MeetingParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingParticipantUpdateOne) Select(field string, fields ...string) *MeetingParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeetingParticipant entity.
func (_u *MeetingParticipantUpdateOne) Save(ctx context.Context) (*MeetingParticipant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingParticipantUpdateOne) SaveX(ctx context.Context) *MeetingParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingParticipantUpdateOne) sqlSave(ctx context.Context) (_node *MeetingParticipant, err error) {
	_spec := sqlgraph.NewUpdateSpec(meetingparticipant.Table, meetingparticipant.Columns, sqlgraph.NewFieldSpec(meetingparticipant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MeetingParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meetingparticipant.FieldID)
		for _, f := range fields {
			if !meetingparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != meetingparticipant.FieldID {
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
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(meetingparticipant.FieldMeetingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(meetingparticipant.FieldUserID, field.TypeUUID, value)
	}
	_node = &MeetingParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

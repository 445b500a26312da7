// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
)

// MeetingParticipantCreate is the builder for creating a MeetingParticipant entity.
type MeetingParticipantCreate struct {
	config
	mutation *MeetingParticipantMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *MeetingParticipantCreate) SetMeetingID(v uuid.UUID) *MeetingParticipantCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MeetingParticipantCreate) SetUserID(v uuid.UUID) *MeetingParticipantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingParticipantCreate) SetID(v uuid.UUID) *MeetingParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MeetingParticipantCreate) SetNillableID(v *uuid.UUID) *MeetingParticipantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MeetingParticipantMutation object of the builder.
func (_c *MeetingParticipantCreate) Mutation() *MeetingParticipantMutation {
	return _c.mutation
}

// Save creates the MeetingParticipant in the database.
func (_c *MeetingParticipantCreate) Save(ctx context.Context) (*MeetingParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingParticipantCreate) SaveX(ctx context.Context) *MeetingParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingParticipantCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := meetingparticipant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingParticipantCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`repo: missing required field "MeetingParticipant.meeting_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "MeetingParticipant.user_id"`)}
	}
	return nil
}

func (_c *MeetingParticipantCreate) sqlSave(ctx context.Context) (*MeetingParticipant, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingParticipantCreate) createSpec() (*MeetingParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &MeetingParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meetingparticipant.Table, sqlgraph.NewFieldSpec(meetingparticipant.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(meetingparticipant.FieldMeetingID, field.TypeUUID, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(meetingparticipant.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	return _node, _spec
}

// MeetingParticipantCreateBulk is the builder for creating many MeetingParticipant entities in bulk.
type MeetingParticipantCreateBulk struct {
	config
	err      error
	builders []*MeetingParticipantCreate
}

// Save creates the MeetingParticipant entities in the database.
func (_c *MeetingParticipantCreateBulk) Save(ctx context.Context) ([]*MeetingParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeetingParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingParticipantMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MeetingParticipantCreateBulk) SaveX(ctx context.Context) []*MeetingParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

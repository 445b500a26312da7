// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/examevent"
)

// ExamEventCreate is the builder for creating a ExamEvent entity.
type ExamEventCreate struct {
	config
	mutation *ExamEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExamEventCreate) SetCreatedAt(v time.Time) *ExamEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableCreatedAt(v *time.Time) *ExamEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *ExamEventCreate) SetExamID(v uuid.UUID) *ExamEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExamEventCreate) SetStatus(v examevent.Status) *ExamEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *ExamEventCreate) SetActorID(v uuid.UUID) *ExamEventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableActorID(v *uuid.UUID) *ExamEventCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *ExamEventCreate) SetNote(v string) *ExamEventCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableNote(v *string) *ExamEventCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExamEventCreate) SetID(v uuid.UUID) *ExamEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableID(v *uuid.UUID) *ExamEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExamEventMutation object of the builder.
func (_c *ExamEventCreate) Mutation() *ExamEventMutation {
	return _c.mutation
}

// Save creates the ExamEvent in the database.
func (_c *ExamEventCreate) Save(ctx context.Context) (*ExamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamEventCreate) SaveX(ctx context.Context) *ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := examevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := examevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamEventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ExamEvent.created_at"`)}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`repo: missing required field "ExamEvent.exam_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "ExamEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := examevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ExamEvent.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Note(); ok {
		if err := examevent.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "ExamEvent.note": %w`, err)}
		}
	}
	return nil
}

func (_c *ExamEventCreate) sqlSave(ctx context.Context) (*ExamEvent, error) {
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

func (_c *ExamEventCreate) createSpec() (*ExamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examevent.Table, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(examevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeUUID, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(examevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(examevent.FieldActorID, field.TypeUUID, value)
		_node.ActorID = &value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(examevent.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	return _node, _spec
}

// ExamEventCreateBulk is the builder for creating many ExamEvent entities in bulk.
type ExamEventCreateBulk struct {
	config
	err      error
	builders []*ExamEventCreate
}

// Save creates the ExamEvent entities in the database.
func (_c *ExamEventCreateBulk) Save(ctx context.Context) ([]*ExamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamEventMutation)
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
func (_c *ExamEventCreateBulk) SaveX(ctx context.Context) []*ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

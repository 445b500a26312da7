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
	"github.com/raydent/raydent_backend/internal/repo/vacation"
)

// VacationCreate is the builder for creating a Vacation entity.
type VacationCreate struct {
	config
	mutation *VacationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *VacationCreate) SetCreatedAt(v time.Time) *VacationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VacationCreate) SetNillableCreatedAt(v *time.Time) *VacationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *VacationCreate) SetUserID(v uuid.UUID) *VacationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *VacationCreate) SetStartDate(v time.Time) *VacationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *VacationCreate) SetEndDate(v time.Time) *VacationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *VacationCreate) SetNote(v string) *VacationCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *VacationCreate) SetNillableNote(v *string) *VacationCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VacationCreate) SetID(v uuid.UUID) *VacationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VacationCreate) SetNillableID(v *uuid.UUID) *VacationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VacationMutation object of the builder.
func (_c *VacationCreate) Mutation() *VacationMutation {
	return _c.mutation
}

// Save creates the Vacation in the database.
func (_c *VacationCreate) Save(ctx context.Context) (*Vacation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VacationCreate) SaveX(ctx context.Context) *Vacation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VacationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VacationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VacationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vacation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vacation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VacationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Vacation.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Vacation.user_id"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "Vacation.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`repo: missing required field "Vacation.end_date"`)}
	}
	if v, ok := _c.mutation.Note(); ok {
		if err := vacation.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "Vacation.note": %w`, err)}
		}
	}
	return nil
}

func (_c *VacationCreate) sqlSave(ctx context.Context) (*Vacation, error) {
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

func (_c *VacationCreate) createSpec() (*Vacation, *sqlgraph.CreateSpec) {
	var (
		_node = &Vacation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vacation.Table, sqlgraph.NewFieldSpec(vacation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vacation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(vacation.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(vacation.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(vacation.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(vacation.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	return _node, _spec
}

// VacationCreateBulk is the builder for creating many Vacation entities in bulk.
type VacationCreateBulk struct {
	config
	err      error
	builders []*VacationCreate
}

// Save creates the Vacation entities in the database.
func (_c *VacationCreateBulk) Save(ctx context.Context) ([]*Vacation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vacation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VacationMutation)
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
func (_c *VacationCreateBulk) SaveX(ctx context.Context) []*Vacation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VacationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VacationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

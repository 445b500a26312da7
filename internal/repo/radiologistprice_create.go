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
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
)

// RadiologistPriceCreate is the builder for creating a RadiologistPrice entity.
type RadiologistPriceCreate struct {
	config
	mutation *RadiologistPriceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RadiologistPriceCreate) SetCreatedAt(v time.Time) *RadiologistPriceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RadiologistPriceCreate) SetNillableCreatedAt(v *time.Time) *RadiologistPriceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RadiologistPriceCreate) SetUpdatedAt(v time.Time) *RadiologistPriceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RadiologistPriceCreate) SetNillableUpdatedAt(v *time.Time) *RadiologistPriceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *RadiologistPriceCreate) SetClientID(v uuid.UUID) *RadiologistPriceCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetExamTypeID sets the "exam_type_id" field.
func (_c *RadiologistPriceCreate) SetExamTypeID(v uuid.UUID) *RadiologistPriceCreate {
	_c.mutation.SetExamTypeID(v)
	return _c
}

// SetRadiologistID sets the "radiologist_id" field.
func (_c *RadiologistPriceCreate) SetRadiologistID(v uuid.UUID) *RadiologistPriceCreate {
	_c.mutation.SetRadiologistID(v)
	return _c
}

// SetRadiologistValue sets the "radiologist_value" field.
func (_c *RadiologistPriceCreate) SetRadiologistValue(v int64) *RadiologistPriceCreate {
	_c.mutation.SetRadiologistValue(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RadiologistPriceCreate) SetID(v uuid.UUID) *RadiologistPriceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RadiologistPriceCreate) SetNillableID(v *uuid.UUID) *RadiologistPriceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RadiologistPriceMutation object of the builder.
func (_c *RadiologistPriceCreate) Mutation() *RadiologistPriceMutation {
	return _c.mutation
}

// Save creates the RadiologistPrice in the database.
func (_c *RadiologistPriceCreate) Save(ctx context.Context) (*RadiologistPrice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RadiologistPriceCreate) SaveX(ctx context.Context) *RadiologistPrice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RadiologistPriceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RadiologistPriceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RadiologistPriceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := radiologistprice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := radiologistprice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := radiologistprice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RadiologistPriceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RadiologistPrice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RadiologistPrice.updated_at"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "RadiologistPrice.client_id"`)}
	}
	if _, ok := _c.mutation.ExamTypeID(); !ok {
		return &ValidationError{Name: "exam_type_id", err: errors.New(`repo: missing required field "RadiologistPrice.exam_type_id"`)}
	}
	if _, ok := _c.mutation.RadiologistID(); !ok {
		return &ValidationError{Name: "radiologist_id", err: errors.New(`repo: missing required field "RadiologistPrice.radiologist_id"`)}
	}
	if _, ok := _c.mutation.RadiologistValue(); !ok {
		return &ValidationError{Name: "radiologist_value", err: errors.New(`repo: missing required field "RadiologistPrice.radiologist_value"`)}
	}
	return nil
}

func (_c *RadiologistPriceCreate) sqlSave(ctx context.Context) (*RadiologistPrice, error) {
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

func (_c *RadiologistPriceCreate) createSpec() (*RadiologistPrice, *sqlgraph.CreateSpec) {
	var (
		_node = &RadiologistPrice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(radiologistprice.Table, sqlgraph.NewFieldSpec(radiologistprice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(radiologistprice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(radiologistprice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(radiologistprice.FieldClientID, field.TypeUUID, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.ExamTypeID(); ok {
		_spec.SetField(radiologistprice.FieldExamTypeID, field.TypeUUID, value)
		_node.ExamTypeID = value
	}
	if value, ok := _c.mutation.RadiologistID(); ok {
		_spec.SetField(radiologistprice.FieldRadiologistID, field.TypeUUID, value)
		_node.RadiologistID = value
	}
	if value, ok := _c.mutation.RadiologistValue(); ok {
		_spec.SetField(radiologistprice.FieldRadiologistValue, field.TypeInt64, value)
		_node.RadiologistValue = value
	}
	return _node, _spec
}

// RadiologistPriceCreateBulk is the builder for creating many RadiologistPrice entities in bulk.
type RadiologistPriceCreateBulk struct {
	config
	err      error
	builders []*RadiologistPriceCreate
}

// Save creates the RadiologistPrice entities in the database.
func (_c *RadiologistPriceCreateBulk) Save(ctx context.Context) ([]*RadiologistPrice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RadiologistPrice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RadiologistPriceMutation)
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
func (_c *RadiologistPriceCreateBulk) SaveX(ctx context.Context) []*RadiologistPrice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RadiologistPriceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RadiologistPriceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/raydent/raydent_backend/internal/repo/clientprice"
)

// ClientPriceCreate is the builder for creating a ClientPrice entity.
type ClientPriceCreate struct {
	config
	mutation *ClientPriceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientPriceCreate) SetCreatedAt(v time.Time) *ClientPriceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientPriceCreate) SetNillableCreatedAt(v *time.Time) *ClientPriceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClientPriceCreate) SetUpdatedAt(v time.Time) *ClientPriceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClientPriceCreate) SetNillableUpdatedAt(v *time.Time) *ClientPriceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ClientPriceCreate) SetClientID(v uuid.UUID) *ClientPriceCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetExamTypeID sets the "exam_type_id" field.
func (_c *ClientPriceCreate) SetExamTypeID(v uuid.UUID) *ClientPriceCreate {
	_c.mutation.SetExamTypeID(v)
	return _c
}

// SetClientValue sets the "client_value" field.
func (_c *ClientPriceCreate) SetClientValue(v int64) *ClientPriceCreate {
	_c.mutation.SetClientValue(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ClientPriceCreate) SetID(v uuid.UUID) *ClientPriceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClientPriceCreate) SetNillableID(v *uuid.UUID) *ClientPriceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ClientPriceMutation object of the builder.
func (_c *ClientPriceCreate) Mutation() *ClientPriceMutation {
	return _c.mutation
}

// Save creates the ClientPrice in the database.
func (_c *ClientPriceCreate) Save(ctx context.Context) (*ClientPrice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientPriceCreate) SaveX(ctx context.Context) *ClientPrice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientPriceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientPriceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientPriceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientprice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clientprice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clientprice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientPriceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClientPrice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClientPrice.updated_at"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "ClientPrice.client_id"`)}
	}
	if _, ok := _c.mutation.ExamTypeID(); !ok {
		return &ValidationError{Name: "exam_type_id", err: errors.New(`repo: missing required field "ClientPrice.exam_type_id"`)}
	}
	if _, ok := _c.mutation.ClientValue(); !ok {
		return &ValidationError{Name: "client_value", err: errors.New(`repo: missing required field "ClientPrice.client_value"`)}
	}
	return nil
}

func (_c *ClientPriceCreate) sqlSave(ctx context.Context) (*ClientPrice, error) {
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

func (_c *ClientPriceCreate) createSpec() (*ClientPrice, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientPrice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientprice.Table, sqlgraph.NewFieldSpec(clientprice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientprice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clientprice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(clientprice.FieldClientID, field.TypeUUID, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.ExamTypeID(); ok {
		_spec.SetField(clientprice.FieldExamTypeID, field.TypeUUID, value)
		_node.ExamTypeID = value
	}
	if value, ok := _c.mutation.ClientValue(); ok {
		_spec.SetField(clientprice.FieldClientValue, field.TypeInt64, value)
		_node.ClientValue = value
	}
	return _node, _spec
}

// ClientPriceCreateBulk is the builder for creating many ClientPrice entities in bulk.
type ClientPriceCreateBulk struct {
	config
	err      error
	builders []*ClientPriceCreate
}

// Save creates the ClientPrice entities in the database.
func (_c *ClientPriceCreateBulk) Save(ctx context.Context) ([]*ClientPrice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientPrice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientPriceMutation)
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
func (_c *ClientPriceCreateBulk) SaveX(ctx context.Context) []*ClientPrice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientPriceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientPriceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

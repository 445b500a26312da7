// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
)

// RadiologistPriceDelete is the builder for deleting a RadiologistPrice entity.
type RadiologistPriceDelete struct {
	config
	hooks    []Hook
	mutation *RadiologistPriceMutation
}

// Where appends a list predicates to the RadiologistPriceDelete builder.
func (_d *RadiologistPriceDelete) Where(ps ...predicate.RadiologistPrice) *RadiologistPriceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RadiologistPriceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RadiologistPriceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RadiologistPriceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(radiologistprice.Table, sqlgraph.NewFieldSpec(radiologistprice.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RadiologistPriceDeleteOne is the builder for deleting a single RadiologistPrice entity.
type RadiologistPriceDeleteOne struct {
	_d *RadiologistPriceDelete
}

// Where appends a list predicates to the RadiologistPriceDelete builder.
func (_d *RadiologistPriceDeleteOne) Where(ps ...predicate.RadiologistPrice) *RadiologistPriceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RadiologistPriceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{radiologistprice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RadiologistPriceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

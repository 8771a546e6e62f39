// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/modeevent"
)

// ModeEventCreate is the builder for creating a ModeEvent entity.
type ModeEventCreate struct {
	config
	mutation *ModeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ModeEventCreate) SetSequence(v int64) *ModeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ModeEventCreate) SetTimestamp(v time.Time) *ModeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ModeEventCreate) SetNillableTimestamp(v *time.Time) *ModeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ModeEventCreate) SetLearnerID(v string) *ModeEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetFromMode sets the "from_mode" field.
func (_c *ModeEventCreate) SetFromMode(v string) *ModeEventCreate {
	_c.mutation.SetFromMode(v)
	return _c
}

// SetNillableFromMode sets the "from_mode" field if the given value is not nil.
func (_c *ModeEventCreate) SetNillableFromMode(v *string) *ModeEventCreate {
	if v != nil {
		_c.SetFromMode(*v)
	}
	return _c
}

// SetToMode sets the "to_mode" field.
func (_c *ModeEventCreate) SetToMode(v string) *ModeEventCreate {
	_c.mutation.SetToMode(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ModeEventCreate) SetReason(v string) *ModeEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the ModeEventMutation object of the builder.
func (_c *ModeEventCreate) Mutation() *ModeEventMutation {
	return _c.mutation
}

// Save creates the ModeEvent in the database.
func (_c *ModeEventCreate) Save(ctx context.Context) (*ModeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModeEventCreate) SaveX(ctx context.Context) *ModeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := modeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.FromMode(); !ok {
		v := modeevent.DefaultFromMode
		_c.mutation.SetFromMode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ModeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ModeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ModeEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := modeevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromMode(); !ok {
		return &ValidationError{Name: "from_mode", err: errors.New(`ent: missing required field "ModeEvent.from_mode"`)}
	}
	if _, ok := _c.mutation.ToMode(); !ok {
		return &ValidationError{Name: "to_mode", err: errors.New(`ent: missing required field "ModeEvent.to_mode"`)}
	}
	if v, ok := _c.mutation.ToMode(); ok {
		if err := modeevent.ToModeValidator(v); err != nil {
			return &ValidationError{Name: "to_mode", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.to_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ModeEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := modeevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *ModeEventCreate) sqlSave(ctx context.Context) (*ModeEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModeEventCreate) createSpec() (*ModeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ModeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modeevent.Table, sqlgraph.NewFieldSpec(modeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(modeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(modeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(modeevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.FromMode(); ok {
		_spec.SetField(modeevent.FieldFromMode, field.TypeString, value)
		_node.FromMode = value
	}
	if value, ok := _c.mutation.ToMode(); ok {
		_spec.SetField(modeevent.FieldToMode, field.TypeString, value)
		_node.ToMode = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(modeevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// ModeEventCreateBulk is the builder for creating many ModeEvent entities in bulk.
type ModeEventCreateBulk struct {
	config
	err      error
	builders []*ModeEventCreate
}

// Save creates the ModeEvent entities in the database.
func (_c *ModeEventCreateBulk) Save(ctx context.Context) ([]*ModeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModeEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ModeEventCreateBulk) SaveX(ctx context.Context) []*ModeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/pathwayskill"
)

// PathwaySkillCreate is the builder for creating a PathwaySkill entity.
type PathwaySkillCreate struct {
	config
	mutation *PathwaySkillMutation
	hooks    []Hook
}

// SetPathwaySkillID sets the "pathway_skill_id" field.
func (_c *PathwaySkillCreate) SetPathwaySkillID(v string) *PathwaySkillCreate {
	_c.mutation.SetPathwaySkillID(v)
	return _c
}

// SetPathwayID sets the "pathway_id" field.
func (_c *PathwaySkillCreate) SetPathwayID(v string) *PathwaySkillCreate {
	_c.mutation.SetPathwayID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *PathwaySkillCreate) SetSkillName(v string) *PathwaySkillCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetSequenceOrder sets the "sequence_order" field.
func (_c *PathwaySkillCreate) SetSequenceOrder(v int) *PathwaySkillCreate {
	_c.mutation.SetSequenceOrder(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PathwaySkillCreate) SetStatus(v string) *PathwaySkillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PathwaySkillCreate) SetNillableStatus(v *string) *PathwaySkillCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_c *PathwaySkillCreate) SetEstimatedHours(v int) *PathwaySkillCreate {
	_c.mutation.SetEstimatedHours(v)
	return _c
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_c *PathwaySkillCreate) SetNillableEstimatedHours(v *int) *PathwaySkillCreate {
	if v != nil {
		_c.SetEstimatedHours(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PathwaySkillCreate) SetStartedAt(v time.Time) *PathwaySkillCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PathwaySkillCreate) SetNillableStartedAt(v *time.Time) *PathwaySkillCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PathwaySkillCreate) SetCompletedAt(v time.Time) *PathwaySkillCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PathwaySkillCreate) SetNillableCompletedAt(v *time.Time) *PathwaySkillCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the PathwaySkillMutation object of the builder.
func (_c *PathwaySkillCreate) Mutation() *PathwaySkillMutation {
	return _c.mutation
}

// Save creates the PathwaySkill in the database.
func (_c *PathwaySkillCreate) Save(ctx context.Context) (*PathwaySkill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathwaySkillCreate) SaveX(ctx context.Context) *PathwaySkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathwaySkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathwaySkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathwaySkillCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pathwayskill.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		v := pathwayskill.DefaultEstimatedHours
		_c.mutation.SetEstimatedHours(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathwaySkillCreate) check() error {
	if _, ok := _c.mutation.PathwaySkillID(); !ok {
		return &ValidationError{Name: "pathway_skill_id", err: errors.New(`ent: missing required field "PathwaySkill.pathway_skill_id"`)}
	}
	if v, ok := _c.mutation.PathwaySkillID(); ok {
		if err := pathwayskill.PathwaySkillIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_skill_id", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.pathway_skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PathwayID(); !ok {
		return &ValidationError{Name: "pathway_id", err: errors.New(`ent: missing required field "PathwaySkill.pathway_id"`)}
	}
	if v, ok := _c.mutation.PathwayID(); ok {
		if err := pathwayskill.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.pathway_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "PathwaySkill.skill_name"`)}
	}
	if v, ok := _c.mutation.SkillName(); ok {
		if err := pathwayskill.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.skill_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceOrder(); !ok {
		return &ValidationError{Name: "sequence_order", err: errors.New(`ent: missing required field "PathwaySkill.sequence_order"`)}
	}
	if v, ok := _c.mutation.SequenceOrder(); ok {
		if err := pathwayskill.SequenceOrderValidator(v); err != nil {
			return &ValidationError{Name: "sequence_order", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.sequence_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PathwaySkill.status"`)}
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		return &ValidationError{Name: "estimated_hours", err: errors.New(`ent: missing required field "PathwaySkill.estimated_hours"`)}
	}
	return nil
}

func (_c *PathwaySkillCreate) sqlSave(ctx context.Context) (*PathwaySkill, error) {
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

func (_c *PathwaySkillCreate) createSpec() (*PathwaySkill, *sqlgraph.CreateSpec) {
	var (
		_node = &PathwaySkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathwayskill.Table, sqlgraph.NewFieldSpec(pathwayskill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PathwaySkillID(); ok {
		_spec.SetField(pathwayskill.FieldPathwaySkillID, field.TypeString, value)
		_node.PathwaySkillID = value
	}
	if value, ok := _c.mutation.PathwayID(); ok {
		_spec.SetField(pathwayskill.FieldPathwayID, field.TypeString, value)
		_node.PathwayID = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(pathwayskill.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.SequenceOrder(); ok {
		_spec.SetField(pathwayskill.FieldSequenceOrder, field.TypeInt, value)
		_node.SequenceOrder = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pathwayskill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EstimatedHours(); ok {
		_spec.SetField(pathwayskill.FieldEstimatedHours, field.TypeInt, value)
		_node.EstimatedHours = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pathwayskill.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pathwayskill.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// PathwaySkillCreateBulk is the builder for creating many PathwaySkill entities in bulk.
type PathwaySkillCreateBulk struct {
	config
	err      error
	builders []*PathwaySkillCreate
}

// Save creates the PathwaySkill entities in the database.
func (_c *PathwaySkillCreateBulk) Save(ctx context.Context) ([]*PathwaySkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathwaySkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathwaySkillMutation)
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
func (_c *PathwaySkillCreateBulk) SaveX(ctx context.Context) []*PathwaySkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathwaySkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathwaySkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

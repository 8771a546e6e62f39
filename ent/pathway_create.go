// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/pathway"
)

// PathwayCreate is the builder for creating a Pathway entity.
type PathwayCreate struct {
	config
	mutation *PathwayMutation
	hooks    []Hook
}

// SetPathwayID sets the "pathway_id" field.
func (_c *PathwayCreate) SetPathwayID(v string) *PathwayCreate {
	_c.mutation.SetPathwayID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PathwayCreate) SetLearnerID(v string) *PathwayCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *PathwayCreate) SetGoalID(v string) *PathwayCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PathwayCreate) SetStatus(v string) *PathwayCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PathwayCreate) SetNillableStatus(v *string) *PathwayCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalSkills sets the "total_skills" field.
func (_c *PathwayCreate) SetTotalSkills(v int) *PathwayCreate {
	_c.mutation.SetTotalSkills(v)
	return _c
}

// SetNillableTotalSkills sets the "total_skills" field if the given value is not nil.
func (_c *PathwayCreate) SetNillableTotalSkills(v *int) *PathwayCreate {
	if v != nil {
		_c.SetTotalSkills(*v)
	}
	return _c
}

// SetCompletedSkills sets the "completed_skills" field.
func (_c *PathwayCreate) SetCompletedSkills(v int) *PathwayCreate {
	_c.mutation.SetCompletedSkills(v)
	return _c
}

// SetNillableCompletedSkills sets the "completed_skills" field if the given value is not nil.
func (_c *PathwayCreate) SetNillableCompletedSkills(v *int) *PathwayCreate {
	if v != nil {
		_c.SetCompletedSkills(*v)
	}
	return _c
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_c *PathwayCreate) SetEstimatedHours(v int) *PathwayCreate {
	_c.mutation.SetEstimatedHours(v)
	return _c
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_c *PathwayCreate) SetNillableEstimatedHours(v *int) *PathwayCreate {
	if v != nil {
		_c.SetEstimatedHours(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PathwayCreate) SetCreatedAt(v time.Time) *PathwayCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PathwayCreate) SetNillableCreatedAt(v *time.Time) *PathwayCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PathwayMutation object of the builder.
func (_c *PathwayCreate) Mutation() *PathwayMutation {
	return _c.mutation
}

// Save creates the Pathway in the database.
func (_c *PathwayCreate) Save(ctx context.Context) (*Pathway, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathwayCreate) SaveX(ctx context.Context) *Pathway {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathwayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathwayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathwayCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pathway.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalSkills(); !ok {
		v := pathway.DefaultTotalSkills
		_c.mutation.SetTotalSkills(v)
	}
	if _, ok := _c.mutation.CompletedSkills(); !ok {
		v := pathway.DefaultCompletedSkills
		_c.mutation.SetCompletedSkills(v)
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		v := pathway.DefaultEstimatedHours
		_c.mutation.SetEstimatedHours(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pathway.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathwayCreate) check() error {
	if _, ok := _c.mutation.PathwayID(); !ok {
		return &ValidationError{Name: "pathway_id", err: errors.New(`ent: missing required field "Pathway.pathway_id"`)}
	}
	if v, ok := _c.mutation.PathwayID(); ok {
		if err := pathway.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.pathway_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Pathway.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := pathway.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "Pathway.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := pathway.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Pathway.status"`)}
	}
	if _, ok := _c.mutation.TotalSkills(); !ok {
		return &ValidationError{Name: "total_skills", err: errors.New(`ent: missing required field "Pathway.total_skills"`)}
	}
	if _, ok := _c.mutation.CompletedSkills(); !ok {
		return &ValidationError{Name: "completed_skills", err: errors.New(`ent: missing required field "Pathway.completed_skills"`)}
	}
	if _, ok := _c.mutation.EstimatedHours(); !ok {
		return &ValidationError{Name: "estimated_hours", err: errors.New(`ent: missing required field "Pathway.estimated_hours"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pathway.created_at"`)}
	}
	return nil
}

func (_c *PathwayCreate) sqlSave(ctx context.Context) (*Pathway, error) {
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

func (_c *PathwayCreate) createSpec() (*Pathway, *sqlgraph.CreateSpec) {
	var (
		_node = &Pathway{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathway.Table, sqlgraph.NewFieldSpec(pathway.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PathwayID(); ok {
		_spec.SetField(pathway.FieldPathwayID, field.TypeString, value)
		_node.PathwayID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(pathway.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(pathway.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pathway.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalSkills(); ok {
		_spec.SetField(pathway.FieldTotalSkills, field.TypeInt, value)
		_node.TotalSkills = value
	}
	if value, ok := _c.mutation.CompletedSkills(); ok {
		_spec.SetField(pathway.FieldCompletedSkills, field.TypeInt, value)
		_node.CompletedSkills = value
	}
	if value, ok := _c.mutation.EstimatedHours(); ok {
		_spec.SetField(pathway.FieldEstimatedHours, field.TypeInt, value)
		_node.EstimatedHours = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pathway.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PathwayCreateBulk is the builder for creating many Pathway entities in bulk.
type PathwayCreateBulk struct {
	config
	err      error
	builders []*PathwayCreate
}

// Save creates the Pathway entities in the database.
func (_c *PathwayCreateBulk) Save(ctx context.Context) ([]*Pathway, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pathway, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathwayMutation)
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
func (_c *PathwayCreateBulk) SaveX(ctx context.Context) []*Pathway {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathwayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathwayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

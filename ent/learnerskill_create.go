// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/learnerskill"
)

// LearnerSkillCreate is the builder for creating a LearnerSkill entity.
type LearnerSkillCreate struct {
	config
	mutation *LearnerSkillMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *LearnerSkillCreate) SetSkillID(v string) *LearnerSkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerSkillCreate) SetLearnerID(v string) *LearnerSkillCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *LearnerSkillCreate) SetSkillName(v string) *LearnerSkillCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (_c *LearnerSkillCreate) SetProficiencyLevel(v string) *LearnerSkillCreate {
	_c.mutation.SetProficiencyLevel(v)
	return _c
}

// SetEvidenceSource sets the "evidence_source" field.
func (_c *LearnerSkillCreate) SetEvidenceSource(v string) *LearnerSkillCreate {
	_c.mutation.SetEvidenceSource(v)
	return _c
}

// SetNillableEvidenceSource sets the "evidence_source" field if the given value is not nil.
func (_c *LearnerSkillCreate) SetNillableEvidenceSource(v *string) *LearnerSkillCreate {
	if v != nil {
		_c.SetEvidenceSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerSkillCreate) SetCreatedAt(v time.Time) *LearnerSkillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerSkillCreate) SetNillableCreatedAt(v *time.Time) *LearnerSkillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerSkillMutation object of the builder.
func (_c *LearnerSkillCreate) Mutation() *LearnerSkillMutation {
	return _c.mutation
}

// Save creates the LearnerSkill in the database.
func (_c *LearnerSkillCreate) Save(ctx context.Context) (*LearnerSkill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerSkillCreate) SaveX(ctx context.Context) *LearnerSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerSkillCreate) defaults() {
	if _, ok := _c.mutation.EvidenceSource(); !ok {
		v := learnerskill.DefaultEvidenceSource
		_c.mutation.SetEvidenceSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnerskill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerSkillCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "LearnerSkill.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := learnerskill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerSkill.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learnerskill.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "LearnerSkill.skill_name"`)}
	}
	if v, ok := _c.mutation.SkillName(); ok {
		if err := learnerskill.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.skill_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProficiencyLevel(); !ok {
		return &ValidationError{Name: "proficiency_level", err: errors.New(`ent: missing required field "LearnerSkill.proficiency_level"`)}
	}
	if v, ok := _c.mutation.ProficiencyLevel(); ok {
		if err := learnerskill.ProficiencyLevelValidator(v); err != nil {
			return &ValidationError{Name: "proficiency_level", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.proficiency_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvidenceSource(); !ok {
		return &ValidationError{Name: "evidence_source", err: errors.New(`ent: missing required field "LearnerSkill.evidence_source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnerSkill.created_at"`)}
	}
	return nil
}

func (_c *LearnerSkillCreate) sqlSave(ctx context.Context) (*LearnerSkill, error) {
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

func (_c *LearnerSkillCreate) createSpec() (*LearnerSkill, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerSkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerskill.Table, sqlgraph.NewFieldSpec(learnerskill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(learnerskill.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnerskill.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(learnerskill.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.ProficiencyLevel(); ok {
		_spec.SetField(learnerskill.FieldProficiencyLevel, field.TypeString, value)
		_node.ProficiencyLevel = value
	}
	if value, ok := _c.mutation.EvidenceSource(); ok {
		_spec.SetField(learnerskill.FieldEvidenceSource, field.TypeString, value)
		_node.EvidenceSource = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnerskill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearnerSkillCreateBulk is the builder for creating many LearnerSkill entities in bulk.
type LearnerSkillCreateBulk struct {
	config
	err      error
	builders []*LearnerSkillCreate
}

// Save creates the LearnerSkill entities in the database.
func (_c *LearnerSkillCreateBulk) Save(ctx context.Context) ([]*LearnerSkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerSkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerSkillMutation)
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
func (_c *LearnerSkillCreateBulk) SaveX(ctx context.Context) []*LearnerSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

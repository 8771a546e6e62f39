// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/learnerskill"
	"github.com/careerstu/careerstu/ent/predicate"
)

// LearnerSkillUpdate is the builder for updating LearnerSkill entities.
type LearnerSkillUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerSkillMutation
}

// Where appends a list predicates to the LearnerSkillUpdate builder.
func (_u *LearnerSkillUpdate) Where(ps ...predicate.LearnerSkill) *LearnerSkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerSkillUpdate) SetLearnerID(v string) *LearnerSkillUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerSkillUpdate) SetNillableLearnerID(v *string) *LearnerSkillUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *LearnerSkillUpdate) SetSkillName(v string) *LearnerSkillUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *LearnerSkillUpdate) SetNillableSkillName(v *string) *LearnerSkillUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (_u *LearnerSkillUpdate) SetProficiencyLevel(v string) *LearnerSkillUpdate {
	_u.mutation.SetProficiencyLevel(v)
	return _u
}

// SetNillableProficiencyLevel sets the "proficiency_level" field if the given value is not nil.
func (_u *LearnerSkillUpdate) SetNillableProficiencyLevel(v *string) *LearnerSkillUpdate {
	if v != nil {
		_u.SetProficiencyLevel(*v)
	}
	return _u
}

// SetEvidenceSource sets the "evidence_source" field.
func (_u *LearnerSkillUpdate) SetEvidenceSource(v string) *LearnerSkillUpdate {
	_u.mutation.SetEvidenceSource(v)
	return _u
}

// SetNillableEvidenceSource sets the "evidence_source" field if the given value is not nil.
func (_u *LearnerSkillUpdate) SetNillableEvidenceSource(v *string) *LearnerSkillUpdate {
	if v != nil {
		_u.SetEvidenceSource(*v)
	}
	return _u
}

// Mutation returns the LearnerSkillMutation object of the builder.
func (_u *LearnerSkillUpdate) Mutation() *LearnerSkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerSkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerSkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerSkillUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := learnerskill.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillName(); ok {
		if err := learnerskill.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProficiencyLevel(); ok {
		if err := learnerskill.ProficiencyLevelValidator(v); err != nil {
			return &ValidationError{Name: "proficiency_level", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.proficiency_level": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerSkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerskill.Table, learnerskill.Columns, sqlgraph.NewFieldSpec(learnerskill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learnerskill.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(learnerskill.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProficiencyLevel(); ok {
		_spec.SetField(learnerskill.FieldProficiencyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceSource(); ok {
		_spec.SetField(learnerskill.FieldEvidenceSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerSkillUpdateOne is the builder for updating a single LearnerSkill entity.
type LearnerSkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerSkillMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerSkillUpdateOne) SetLearnerID(v string) *LearnerSkillUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerSkillUpdateOne) SetNillableLearnerID(v *string) *LearnerSkillUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *LearnerSkillUpdateOne) SetSkillName(v string) *LearnerSkillUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *LearnerSkillUpdateOne) SetNillableSkillName(v *string) *LearnerSkillUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (_u *LearnerSkillUpdateOne) SetProficiencyLevel(v string) *LearnerSkillUpdateOne {
	_u.mutation.SetProficiencyLevel(v)
	return _u
}

// SetNillableProficiencyLevel sets the "proficiency_level" field if the given value is not nil.
func (_u *LearnerSkillUpdateOne) SetNillableProficiencyLevel(v *string) *LearnerSkillUpdateOne {
	if v != nil {
		_u.SetProficiencyLevel(*v)
	}
	return _u
}

// SetEvidenceSource sets the "evidence_source" field.
func (_u *LearnerSkillUpdateOne) SetEvidenceSource(v string) *LearnerSkillUpdateOne {
	_u.mutation.SetEvidenceSource(v)
	return _u
}

// SetNillableEvidenceSource sets the "evidence_source" field if the given value is not nil.
func (_u *LearnerSkillUpdateOne) SetNillableEvidenceSource(v *string) *LearnerSkillUpdateOne {
	if v != nil {
		_u.SetEvidenceSource(*v)
	}
	return _u
}

// Mutation returns the LearnerSkillMutation object of the builder.
func (_u *LearnerSkillUpdateOne) Mutation() *LearnerSkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerSkillUpdate builder.
func (_u *LearnerSkillUpdateOne) Where(ps ...predicate.LearnerSkill) *LearnerSkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerSkillUpdateOne) Select(field string, fields ...string) *LearnerSkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerSkill entity.
func (_u *LearnerSkillUpdateOne) Save(ctx context.Context) (*LearnerSkill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSkillUpdateOne) SaveX(ctx context.Context) *LearnerSkill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerSkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerSkillUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := learnerskill.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillName(); ok {
		if err := learnerskill.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProficiencyLevel(); ok {
		if err := learnerskill.ProficiencyLevelValidator(v); err != nil {
			return &ValidationError{Name: "proficiency_level", err: fmt.Errorf(`ent: validator failed for field "LearnerSkill.proficiency_level": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerSkillUpdateOne) sqlSave(ctx context.Context) (_node *LearnerSkill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerskill.Table, learnerskill.Columns, sqlgraph.NewFieldSpec(learnerskill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerSkill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerskill.FieldID)
		for _, f := range fields {
			if !learnerskill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerskill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learnerskill.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(learnerskill.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProficiencyLevel(); ok {
		_spec.SetField(learnerskill.FieldProficiencyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceSource(); ok {
		_spec.SetField(learnerskill.FieldEvidenceSource, field.TypeString, value)
	}
	_node = &LearnerSkill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

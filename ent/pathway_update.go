// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/pathway"
	"github.com/careerstu/careerstu/ent/predicate"
)

// PathwayUpdate is the builder for updating Pathway entities.
type PathwayUpdate struct {
	config
	hooks    []Hook
	mutation *PathwayMutation
}

// Where appends a list predicates to the PathwayUpdate builder.
func (_u *PathwayUpdate) Where(ps ...predicate.Pathway) *PathwayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathwayUpdate) SetLearnerID(v string) *PathwayUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableLearnerID(v *string) *PathwayUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *PathwayUpdate) SetGoalID(v string) *PathwayUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableGoalID(v *string) *PathwayUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathwayUpdate) SetStatus(v string) *PathwayUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableStatus(v *string) *PathwayUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalSkills sets the "total_skills" field.
func (_u *PathwayUpdate) SetTotalSkills(v int) *PathwayUpdate {
	_u.mutation.ResetTotalSkills()
	_u.mutation.SetTotalSkills(v)
	return _u
}

// SetNillableTotalSkills sets the "total_skills" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableTotalSkills(v *int) *PathwayUpdate {
	if v != nil {
		_u.SetTotalSkills(*v)
	}
	return _u
}

// AddTotalSkills adds value to the "total_skills" field.
func (_u *PathwayUpdate) AddTotalSkills(v int) *PathwayUpdate {
	_u.mutation.AddTotalSkills(v)
	return _u
}

// SetCompletedSkills sets the "completed_skills" field.
func (_u *PathwayUpdate) SetCompletedSkills(v int) *PathwayUpdate {
	_u.mutation.ResetCompletedSkills()
	_u.mutation.SetCompletedSkills(v)
	return _u
}

// SetNillableCompletedSkills sets the "completed_skills" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableCompletedSkills(v *int) *PathwayUpdate {
	if v != nil {
		_u.SetCompletedSkills(*v)
	}
	return _u
}

// AddCompletedSkills adds value to the "completed_skills" field.
func (_u *PathwayUpdate) AddCompletedSkills(v int) *PathwayUpdate {
	_u.mutation.AddCompletedSkills(v)
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *PathwayUpdate) SetEstimatedHours(v int) *PathwayUpdate {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableEstimatedHours(v *int) *PathwayUpdate {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *PathwayUpdate) AddEstimatedHours(v int) *PathwayUpdate {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// Mutation returns the PathwayMutation object of the builder.
func (_u *PathwayUpdate) Mutation() *PathwayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathwayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathwayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwayUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathway.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := pathway.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.goal_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathway.Table, pathway.Columns, sqlgraph.NewFieldSpec(pathway.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathway.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(pathway.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathway.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalSkills(); ok {
		_spec.SetField(pathway.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSkills(); ok {
		_spec.AddField(pathway.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedSkills(); ok {
		_spec.SetField(pathway.FieldCompletedSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSkills(); ok {
		_spec.AddField(pathway.FieldCompletedSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(pathway.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(pathway.FieldEstimatedHours, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathway.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathwayUpdateOne is the builder for updating a single Pathway entity.
type PathwayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathwayMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathwayUpdateOne) SetLearnerID(v string) *PathwayUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableLearnerID(v *string) *PathwayUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *PathwayUpdateOne) SetGoalID(v string) *PathwayUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableGoalID(v *string) *PathwayUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathwayUpdateOne) SetStatus(v string) *PathwayUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableStatus(v *string) *PathwayUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalSkills sets the "total_skills" field.
func (_u *PathwayUpdateOne) SetTotalSkills(v int) *PathwayUpdateOne {
	_u.mutation.ResetTotalSkills()
	_u.mutation.SetTotalSkills(v)
	return _u
}

// SetNillableTotalSkills sets the "total_skills" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableTotalSkills(v *int) *PathwayUpdateOne {
	if v != nil {
		_u.SetTotalSkills(*v)
	}
	return _u
}

// AddTotalSkills adds value to the "total_skills" field.
func (_u *PathwayUpdateOne) AddTotalSkills(v int) *PathwayUpdateOne {
	_u.mutation.AddTotalSkills(v)
	return _u
}

// SetCompletedSkills sets the "completed_skills" field.
func (_u *PathwayUpdateOne) SetCompletedSkills(v int) *PathwayUpdateOne {
	_u.mutation.ResetCompletedSkills()
	_u.mutation.SetCompletedSkills(v)
	return _u
}

// SetNillableCompletedSkills sets the "completed_skills" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableCompletedSkills(v *int) *PathwayUpdateOne {
	if v != nil {
		_u.SetCompletedSkills(*v)
	}
	return _u
}

// AddCompletedSkills adds value to the "completed_skills" field.
func (_u *PathwayUpdateOne) AddCompletedSkills(v int) *PathwayUpdateOne {
	_u.mutation.AddCompletedSkills(v)
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *PathwayUpdateOne) SetEstimatedHours(v int) *PathwayUpdateOne {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableEstimatedHours(v *int) *PathwayUpdateOne {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *PathwayUpdateOne) AddEstimatedHours(v int) *PathwayUpdateOne {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// Mutation returns the PathwayMutation object of the builder.
func (_u *PathwayUpdateOne) Mutation() *PathwayMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathwayUpdate builder.
func (_u *PathwayUpdateOne) Where(ps ...predicate.Pathway) *PathwayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathwayUpdateOne) Select(field string, fields ...string) *PathwayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pathway entity.
func (_u *PathwayUpdateOne) Save(ctx context.Context) (*Pathway, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwayUpdateOne) SaveX(ctx context.Context) *Pathway {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathwayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwayUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathway.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := pathway.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Pathway.goal_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwayUpdateOne) sqlSave(ctx context.Context) (_node *Pathway, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathway.Table, pathway.Columns, sqlgraph.NewFieldSpec(pathway.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pathway.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathway.FieldID)
		for _, f := range fields {
			if !pathway.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathway.FieldID {
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
		_spec.SetField(pathway.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(pathway.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathway.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalSkills(); ok {
		_spec.SetField(pathway.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSkills(); ok {
		_spec.AddField(pathway.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedSkills(); ok {
		_spec.SetField(pathway.FieldCompletedSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSkills(); ok {
		_spec.AddField(pathway.FieldCompletedSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(pathway.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(pathway.FieldEstimatedHours, field.TypeInt, value)
	}
	_node = &Pathway{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathway.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

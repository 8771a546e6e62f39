// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/pathwayskill"
	"github.com/careerstu/careerstu/ent/predicate"
)

// PathwaySkillUpdate is the builder for updating PathwaySkill entities.
type PathwaySkillUpdate struct {
	config
	hooks    []Hook
	mutation *PathwaySkillMutation
}

// Where appends a list predicates to the PathwaySkillUpdate builder.
func (_u *PathwaySkillUpdate) Where(ps ...predicate.PathwaySkill) *PathwaySkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathwayID sets the "pathway_id" field.
func (_u *PathwaySkillUpdate) SetPathwayID(v string) *PathwaySkillUpdate {
	_u.mutation.SetPathwayID(v)
	return _u
}

// SetNillablePathwayID sets the "pathway_id" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillablePathwayID(v *string) *PathwaySkillUpdate {
	if v != nil {
		_u.SetPathwayID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *PathwaySkillUpdate) SetSkillName(v string) *PathwaySkillUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillableSkillName(v *string) *PathwaySkillUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *PathwaySkillUpdate) SetSequenceOrder(v int) *PathwaySkillUpdate {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillableSequenceOrder(v *int) *PathwaySkillUpdate {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *PathwaySkillUpdate) AddSequenceOrder(v int) *PathwaySkillUpdate {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathwaySkillUpdate) SetStatus(v string) *PathwaySkillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillableStatus(v *string) *PathwaySkillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *PathwaySkillUpdate) SetEstimatedHours(v int) *PathwaySkillUpdate {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillableEstimatedHours(v *int) *PathwaySkillUpdate {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *PathwaySkillUpdate) AddEstimatedHours(v int) *PathwaySkillUpdate {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PathwaySkillUpdate) SetStartedAt(v time.Time) *PathwaySkillUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillableStartedAt(v *time.Time) *PathwaySkillUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PathwaySkillUpdate) ClearStartedAt() *PathwaySkillUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PathwaySkillUpdate) SetCompletedAt(v time.Time) *PathwaySkillUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PathwaySkillUpdate) SetNillableCompletedAt(v *time.Time) *PathwaySkillUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PathwaySkillUpdate) ClearCompletedAt() *PathwaySkillUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PathwaySkillMutation object of the builder.
func (_u *PathwaySkillUpdate) Mutation() *PathwaySkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathwaySkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwaySkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathwaySkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwaySkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwaySkillUpdate) check() error {
	if v, ok := _u.mutation.PathwayID(); ok {
		if err := pathwayskill.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.pathway_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillName(); ok {
		if err := pathwayskill.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceOrder(); ok {
		if err := pathwayskill.SequenceOrderValidator(v); err != nil {
			return &ValidationError{Name: "sequence_order", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.sequence_order": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwaySkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathwayskill.Table, pathwayskill.Columns, sqlgraph.NewFieldSpec(pathwayskill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathwayID(); ok {
		_spec.SetField(pathwayskill.FieldPathwayID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(pathwayskill.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(pathwayskill.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(pathwayskill.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathwayskill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(pathwayskill.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(pathwayskill.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pathwayskill.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pathwayskill.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pathwayskill.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pathwayskill.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathwayskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathwaySkillUpdateOne is the builder for updating a single PathwaySkill entity.
type PathwaySkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathwaySkillMutation
}

// SetPathwayID sets the "pathway_id" field.
func (_u *PathwaySkillUpdateOne) SetPathwayID(v string) *PathwaySkillUpdateOne {
	_u.mutation.SetPathwayID(v)
	return _u
}

// SetNillablePathwayID sets the "pathway_id" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillablePathwayID(v *string) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetPathwayID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *PathwaySkillUpdateOne) SetSkillName(v string) *PathwaySkillUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillableSkillName(v *string) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *PathwaySkillUpdateOne) SetSequenceOrder(v int) *PathwaySkillUpdateOne {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillableSequenceOrder(v *int) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *PathwaySkillUpdateOne) AddSequenceOrder(v int) *PathwaySkillUpdateOne {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathwaySkillUpdateOne) SetStatus(v string) *PathwaySkillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillableStatus(v *string) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_u *PathwaySkillUpdateOne) SetEstimatedHours(v int) *PathwaySkillUpdateOne {
	_u.mutation.ResetEstimatedHours()
	_u.mutation.SetEstimatedHours(v)
	return _u
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillableEstimatedHours(v *int) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetEstimatedHours(*v)
	}
	return _u
}

// AddEstimatedHours adds value to the "estimated_hours" field.
func (_u *PathwaySkillUpdateOne) AddEstimatedHours(v int) *PathwaySkillUpdateOne {
	_u.mutation.AddEstimatedHours(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PathwaySkillUpdateOne) SetStartedAt(v time.Time) *PathwaySkillUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillableStartedAt(v *time.Time) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PathwaySkillUpdateOne) ClearStartedAt() *PathwaySkillUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PathwaySkillUpdateOne) SetCompletedAt(v time.Time) *PathwaySkillUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PathwaySkillUpdateOne) SetNillableCompletedAt(v *time.Time) *PathwaySkillUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PathwaySkillUpdateOne) ClearCompletedAt() *PathwaySkillUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PathwaySkillMutation object of the builder.
func (_u *PathwaySkillUpdateOne) Mutation() *PathwaySkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathwaySkillUpdate builder.
func (_u *PathwaySkillUpdateOne) Where(ps ...predicate.PathwaySkill) *PathwaySkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathwaySkillUpdateOne) Select(field string, fields ...string) *PathwaySkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathwaySkill entity.
func (_u *PathwaySkillUpdateOne) Save(ctx context.Context) (*PathwaySkill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwaySkillUpdateOne) SaveX(ctx context.Context) *PathwaySkill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathwaySkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwaySkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwaySkillUpdateOne) check() error {
	if v, ok := _u.mutation.PathwayID(); ok {
		if err := pathwayskill.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.pathway_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillName(); ok {
		if err := pathwayskill.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceOrder(); ok {
		if err := pathwayskill.SequenceOrderValidator(v); err != nil {
			return &ValidationError{Name: "sequence_order", err: fmt.Errorf(`ent: validator failed for field "PathwaySkill.sequence_order": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwaySkillUpdateOne) sqlSave(ctx context.Context) (_node *PathwaySkill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathwayskill.Table, pathwayskill.Columns, sqlgraph.NewFieldSpec(pathwayskill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathwaySkill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathwayskill.FieldID)
		for _, f := range fields {
			if !pathwayskill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathwayskill.FieldID {
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
	if value, ok := _u.mutation.PathwayID(); ok {
		_spec.SetField(pathwayskill.FieldPathwayID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(pathwayskill.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(pathwayskill.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(pathwayskill.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathwayskill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedHours(); ok {
		_spec.SetField(pathwayskill.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(pathwayskill.FieldEstimatedHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pathwayskill.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pathwayskill.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pathwayskill.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pathwayskill.FieldCompletedAt, field.TypeTime)
	}
	_node = &PathwaySkill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathwayskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

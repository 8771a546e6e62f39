// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/modeevent"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ModeEventUpdate is the builder for updating ModeEvent entities.
type ModeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ModeEventMutation
}

// Where appends a list predicates to the ModeEventUpdate builder.
func (_u *ModeEventUpdate) Where(ps ...predicate.ModeEvent) *ModeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ModeEventUpdate) SetLearnerID(v string) *ModeEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ModeEventUpdate) SetNillableLearnerID(v *string) *ModeEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetFromMode sets the "from_mode" field.
func (_u *ModeEventUpdate) SetFromMode(v string) *ModeEventUpdate {
	_u.mutation.SetFromMode(v)
	return _u
}

// SetNillableFromMode sets the "from_mode" field if the given value is not nil.
func (_u *ModeEventUpdate) SetNillableFromMode(v *string) *ModeEventUpdate {
	if v != nil {
		_u.SetFromMode(*v)
	}
	return _u
}

// SetToMode sets the "to_mode" field.
func (_u *ModeEventUpdate) SetToMode(v string) *ModeEventUpdate {
	_u.mutation.SetToMode(v)
	return _u
}

// SetNillableToMode sets the "to_mode" field if the given value is not nil.
func (_u *ModeEventUpdate) SetNillableToMode(v *string) *ModeEventUpdate {
	if v != nil {
		_u.SetToMode(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ModeEventUpdate) SetReason(v string) *ModeEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ModeEventUpdate) SetNillableReason(v *string) *ModeEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the ModeEventMutation object of the builder.
func (_u *ModeEventUpdate) Mutation() *ModeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModeEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := modeevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToMode(); ok {
		if err := modeevent.ToModeValidator(v); err != nil {
			return &ValidationError{Name: "to_mode", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.to_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := modeevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ModeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modeevent.Table, modeevent.Columns, sqlgraph.NewFieldSpec(modeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(modeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromMode(); ok {
		_spec.SetField(modeevent.FieldFromMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToMode(); ok {
		_spec.SetField(modeevent.FieldToMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(modeevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModeEventUpdateOne is the builder for updating a single ModeEvent entity.
type ModeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModeEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ModeEventUpdateOne) SetLearnerID(v string) *ModeEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ModeEventUpdateOne) SetNillableLearnerID(v *string) *ModeEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetFromMode sets the "from_mode" field.
func (_u *ModeEventUpdateOne) SetFromMode(v string) *ModeEventUpdateOne {
	_u.mutation.SetFromMode(v)
	return _u
}

// SetNillableFromMode sets the "from_mode" field if the given value is not nil.
func (_u *ModeEventUpdateOne) SetNillableFromMode(v *string) *ModeEventUpdateOne {
	if v != nil {
		_u.SetFromMode(*v)
	}
	return _u
}

// SetToMode sets the "to_mode" field.
func (_u *ModeEventUpdateOne) SetToMode(v string) *ModeEventUpdateOne {
	_u.mutation.SetToMode(v)
	return _u
}

// SetNillableToMode sets the "to_mode" field if the given value is not nil.
func (_u *ModeEventUpdateOne) SetNillableToMode(v *string) *ModeEventUpdateOne {
	if v != nil {
		_u.SetToMode(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ModeEventUpdateOne) SetReason(v string) *ModeEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ModeEventUpdateOne) SetNillableReason(v *string) *ModeEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the ModeEventMutation object of the builder.
func (_u *ModeEventUpdateOne) Mutation() *ModeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModeEventUpdate builder.
func (_u *ModeEventUpdateOne) Where(ps ...predicate.ModeEvent) *ModeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModeEventUpdateOne) Select(field string, fields ...string) *ModeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModeEvent entity.
func (_u *ModeEventUpdateOne) Save(ctx context.Context) (*ModeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModeEventUpdateOne) SaveX(ctx context.Context) *ModeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModeEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := modeevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToMode(); ok {
		if err := modeevent.ToModeValidator(v); err != nil {
			return &ValidationError{Name: "to_mode", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.to_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := modeevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ModeEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ModeEventUpdateOne) sqlSave(ctx context.Context) (_node *ModeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modeevent.Table, modeevent.Columns, sqlgraph.NewFieldSpec(modeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modeevent.FieldID)
		for _, f := range fields {
			if !modeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modeevent.FieldID {
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
		_spec.SetField(modeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromMode(); ok {
		_spec.SetField(modeevent.FieldFromMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToMode(); ok {
		_spec.SetField(modeevent.FieldToMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(modeevent.FieldReason, field.TypeString, value)
	}
	_node = &ModeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

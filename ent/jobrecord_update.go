// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/jobrecord"
	"github.com/careerstu/careerstu/ent/predicate"
)

// JobRecordUpdate is the builder for updating JobRecord entities.
type JobRecordUpdate struct {
	config
	hooks    []Hook
	mutation *JobRecordMutation
}

// Where appends a list predicates to the JobRecordUpdate builder.
func (_u *JobRecordUpdate) Where(ps ...predicate.JobRecord) *JobRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLink sets the "link" field.
func (_u *JobRecordUpdate) SetLink(v string) *JobRecordUpdate {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableLink(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobRecordUpdate) SetTitle(v string) *JobRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableTitle(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *JobRecordUpdate) SetCompany(v string) *JobRecordUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableCompany(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *JobRecordUpdate) SetLocation(v string) *JobRecordUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableLocation(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *JobRecordUpdate) SetLevel(v string) *JobRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableLevel(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *JobRecordUpdate) SetSkills(v string) *JobRecordUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableSkills(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetSkills(*v)
	}
	return _u
}

// SetRiasecCode sets the "riasec_code" field.
func (_u *JobRecordUpdate) SetRiasecCode(v string) *JobRecordUpdate {
	_u.mutation.SetRiasecCode(v)
	return _u
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableRiasecCode(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetRiasecCode(*v)
	}
	return _u
}

// SetRiasecConfidence sets the "riasec_confidence" field.
func (_u *JobRecordUpdate) SetRiasecConfidence(v float64) *JobRecordUpdate {
	_u.mutation.ResetRiasecConfidence()
	_u.mutation.SetRiasecConfidence(v)
	return _u
}

// SetNillableRiasecConfidence sets the "riasec_confidence" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableRiasecConfidence(v *float64) *JobRecordUpdate {
	if v != nil {
		_u.SetRiasecConfidence(*v)
	}
	return _u
}

// AddRiasecConfidence adds value to the "riasec_confidence" field.
func (_u *JobRecordUpdate) AddRiasecConfidence(v float64) *JobRecordUpdate {
	_u.mutation.AddRiasecConfidence(v)
	return _u
}

// SetPrimaryType sets the "primary_type" field.
func (_u *JobRecordUpdate) SetPrimaryType(v string) *JobRecordUpdate {
	_u.mutation.SetPrimaryType(v)
	return _u
}

// SetNillablePrimaryType sets the "primary_type" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillablePrimaryType(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetPrimaryType(*v)
	}
	return _u
}

// Mutation returns the JobRecordMutation object of the builder.
func (_u *JobRecordUpdate) Mutation() *JobRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRecordUpdate) check() error {
	if v, ok := _u.mutation.Link(); ok {
		if err := jobrecord.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`ent: validator failed for field "JobRecord.link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := jobrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "JobRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrecord.Table, jobrecord.Columns, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(jobrecord.FieldLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(jobrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(jobrecord.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(jobrecord.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(jobrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(jobrecord.FieldSkills, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiasecCode(); ok {
		_spec.SetField(jobrecord.FieldRiasecCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiasecConfidence(); ok {
		_spec.SetField(jobrecord.FieldRiasecConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiasecConfidence(); ok {
		_spec.AddField(jobrecord.FieldRiasecConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PrimaryType(); ok {
		_spec.SetField(jobrecord.FieldPrimaryType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRecordUpdateOne is the builder for updating a single JobRecord entity.
type JobRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRecordMutation
}

// SetLink sets the "link" field.
func (_u *JobRecordUpdateOne) SetLink(v string) *JobRecordUpdateOne {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableLink(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobRecordUpdateOne) SetTitle(v string) *JobRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableTitle(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *JobRecordUpdateOne) SetCompany(v string) *JobRecordUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableCompany(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *JobRecordUpdateOne) SetLocation(v string) *JobRecordUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableLocation(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *JobRecordUpdateOne) SetLevel(v string) *JobRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableLevel(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *JobRecordUpdateOne) SetSkills(v string) *JobRecordUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableSkills(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetSkills(*v)
	}
	return _u
}

// SetRiasecCode sets the "riasec_code" field.
func (_u *JobRecordUpdateOne) SetRiasecCode(v string) *JobRecordUpdateOne {
	_u.mutation.SetRiasecCode(v)
	return _u
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableRiasecCode(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetRiasecCode(*v)
	}
	return _u
}

// SetRiasecConfidence sets the "riasec_confidence" field.
func (_u *JobRecordUpdateOne) SetRiasecConfidence(v float64) *JobRecordUpdateOne {
	_u.mutation.ResetRiasecConfidence()
	_u.mutation.SetRiasecConfidence(v)
	return _u
}

// SetNillableRiasecConfidence sets the "riasec_confidence" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableRiasecConfidence(v *float64) *JobRecordUpdateOne {
	if v != nil {
		_u.SetRiasecConfidence(*v)
	}
	return _u
}

// AddRiasecConfidence adds value to the "riasec_confidence" field.
func (_u *JobRecordUpdateOne) AddRiasecConfidence(v float64) *JobRecordUpdateOne {
	_u.mutation.AddRiasecConfidence(v)
	return _u
}

// SetPrimaryType sets the "primary_type" field.
func (_u *JobRecordUpdateOne) SetPrimaryType(v string) *JobRecordUpdateOne {
	_u.mutation.SetPrimaryType(v)
	return _u
}

// SetNillablePrimaryType sets the "primary_type" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillablePrimaryType(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetPrimaryType(*v)
	}
	return _u
}

// Mutation returns the JobRecordMutation object of the builder.
func (_u *JobRecordUpdateOne) Mutation() *JobRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobRecordUpdate builder.
func (_u *JobRecordUpdateOne) Where(ps ...predicate.JobRecord) *JobRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRecordUpdateOne) Select(field string, fields ...string) *JobRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRecord entity.
func (_u *JobRecordUpdateOne) Save(ctx context.Context) (*JobRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRecordUpdateOne) SaveX(ctx context.Context) *JobRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Link(); ok {
		if err := jobrecord.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`ent: validator failed for field "JobRecord.link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := jobrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "JobRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRecordUpdateOne) sqlSave(ctx context.Context) (_node *JobRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrecord.Table, jobrecord.Columns, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrecord.FieldID)
		for _, f := range fields {
			if !jobrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrecord.FieldID {
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
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(jobrecord.FieldLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(jobrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(jobrecord.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(jobrecord.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(jobrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(jobrecord.FieldSkills, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiasecCode(); ok {
		_spec.SetField(jobrecord.FieldRiasecCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiasecConfidence(); ok {
		_spec.SetField(jobrecord.FieldRiasecConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiasecConfidence(); ok {
		_spec.AddField(jobrecord.FieldRiasecConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PrimaryType(); ok {
		_spec.SetField(jobrecord.FieldPrimaryType, field.TypeString, value)
	}
	_node = &JobRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

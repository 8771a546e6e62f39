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
	"github.com/careerstu/careerstu/ent/learner"
	"github.com/careerstu/careerstu/ent/predicate"
)

// LearnerUpdate is the builder for updating Learner entities.
type LearnerUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerMutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdate) Where(ps ...predicate.Learner) *LearnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *LearnerUpdate) SetEmail(v string) *LearnerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableEmail(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerUpdate) SetName(v string) *LearnerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableName(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearnerUpdate) SetStatus(v string) *LearnerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableStatus(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentJobTitle sets the "current_job_title" field.
func (_u *LearnerUpdate) SetCurrentJobTitle(v string) *LearnerUpdate {
	_u.mutation.SetCurrentJobTitle(v)
	return _u
}

// SetNillableCurrentJobTitle sets the "current_job_title" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableCurrentJobTitle(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetCurrentJobTitle(*v)
	}
	return _u
}

// SetCurrentIndustry sets the "current_industry" field.
func (_u *LearnerUpdate) SetCurrentIndustry(v string) *LearnerUpdate {
	_u.mutation.SetCurrentIndustry(v)
	return _u
}

// SetNillableCurrentIndustry sets the "current_industry" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableCurrentIndustry(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetCurrentIndustry(*v)
	}
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *LearnerUpdate) SetYearsExperience(v int) *LearnerUpdate {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableYearsExperience(v *int) *LearnerUpdate {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *LearnerUpdate) AddYearsExperience(v int) *LearnerUpdate {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *LearnerUpdate) SetEducationLevel(v string) *LearnerUpdate {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableEducationLevel(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// SetWeeklyStudyHours sets the "weekly_study_hours" field.
func (_u *LearnerUpdate) SetWeeklyStudyHours(v int) *LearnerUpdate {
	_u.mutation.ResetWeeklyStudyHours()
	_u.mutation.SetWeeklyStudyHours(v)
	return _u
}

// SetNillableWeeklyStudyHours sets the "weekly_study_hours" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableWeeklyStudyHours(v *int) *LearnerUpdate {
	if v != nil {
		_u.SetWeeklyStudyHours(*v)
	}
	return _u
}

// AddWeeklyStudyHours adds value to the "weekly_study_hours" field.
func (_u *LearnerUpdate) AddWeeklyStudyHours(v int) *LearnerUpdate {
	_u.mutation.AddWeeklyStudyHours(v)
	return _u
}

// SetPreferredStudyTimes sets the "preferred_study_times" field.
func (_u *LearnerUpdate) SetPreferredStudyTimes(v string) *LearnerUpdate {
	_u.mutation.SetPreferredStudyTimes(v)
	return _u
}

// SetNillablePreferredStudyTimes sets the "preferred_study_times" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillablePreferredStudyTimes(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetPreferredStudyTimes(*v)
	}
	return _u
}

// SetHasFamilyObligations sets the "has_family_obligations" field.
func (_u *LearnerUpdate) SetHasFamilyObligations(v bool) *LearnerUpdate {
	_u.mutation.SetHasFamilyObligations(v)
	return _u
}

// SetNillableHasFamilyObligations sets the "has_family_obligations" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableHasFamilyObligations(v *bool) *LearnerUpdate {
	if v != nil {
		_u.SetHasFamilyObligations(*v)
	}
	return _u
}

// SetEmploymentStatus sets the "employment_status" field.
func (_u *LearnerUpdate) SetEmploymentStatus(v string) *LearnerUpdate {
	_u.mutation.SetEmploymentStatus(v)
	return _u
}

// SetNillableEmploymentStatus sets the "employment_status" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableEmploymentStatus(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetEmploymentStatus(*v)
	}
	return _u
}

// SetPreferredFormat sets the "preferred_format" field.
func (_u *LearnerUpdate) SetPreferredFormat(v string) *LearnerUpdate {
	_u.mutation.SetPreferredFormat(v)
	return _u
}

// SetNillablePreferredFormat sets the "preferred_format" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillablePreferredFormat(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetPreferredFormat(*v)
	}
	return _u
}

// SetDisposition sets the "disposition" field.
func (_u *LearnerUpdate) SetDisposition(v string) *LearnerUpdate {
	_u.mutation.SetDisposition(v)
	return _u
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableDisposition(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetDisposition(*v)
	}
	return _u
}

// SetRiasecCode sets the "riasec_code" field.
func (_u *LearnerUpdate) SetRiasecCode(v string) *LearnerUpdate {
	_u.mutation.SetRiasecCode(v)
	return _u
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableRiasecCode(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetRiasecCode(*v)
	}
	return _u
}

// SetProfileComplete sets the "profile_complete" field.
func (_u *LearnerUpdate) SetProfileComplete(v bool) *LearnerUpdate {
	_u.mutation.SetProfileComplete(v)
	return _u
}

// SetNillableProfileComplete sets the "profile_complete" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableProfileComplete(v *bool) *LearnerUpdate {
	if v != nil {
		_u.SetProfileComplete(*v)
	}
	return _u
}

// SetCurrentMode sets the "current_mode" field.
func (_u *LearnerUpdate) SetCurrentMode(v string) *LearnerUpdate {
	_u.mutation.SetCurrentMode(v)
	return _u
}

// SetNillableCurrentMode sets the "current_mode" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableCurrentMode(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetCurrentMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerUpdate) SetUpdatedAt(v time.Time) *LearnerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdate) Mutation() *LearnerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := learner.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Learner.email": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(learner.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learner.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentJobTitle(); ok {
		_spec.SetField(learner.FieldCurrentJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentIndustry(); ok {
		_spec.SetField(learner.FieldCurrentIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(learner.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(learner.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(learner.FieldEducationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeeklyStudyHours(); ok {
		_spec.SetField(learner.FieldWeeklyStudyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyStudyHours(); ok {
		_spec.AddField(learner.FieldWeeklyStudyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredStudyTimes(); ok {
		_spec.SetField(learner.FieldPreferredStudyTimes, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasFamilyObligations(); ok {
		_spec.SetField(learner.FieldHasFamilyObligations, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmploymentStatus(); ok {
		_spec.SetField(learner.FieldEmploymentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredFormat(); ok {
		_spec.SetField(learner.FieldPreferredFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Disposition(); ok {
		_spec.SetField(learner.FieldDisposition, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiasecCode(); ok {
		_spec.SetField(learner.FieldRiasecCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileComplete(); ok {
		_spec.SetField(learner.FieldProfileComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentMode(); ok {
		_spec.SetField(learner.FieldCurrentMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerUpdateOne is the builder for updating a single Learner entity.
type LearnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerMutation
}

// SetEmail sets the "email" field.
func (_u *LearnerUpdateOne) SetEmail(v string) *LearnerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableEmail(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerUpdateOne) SetName(v string) *LearnerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableName(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearnerUpdateOne) SetStatus(v string) *LearnerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableStatus(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentJobTitle sets the "current_job_title" field.
func (_u *LearnerUpdateOne) SetCurrentJobTitle(v string) *LearnerUpdateOne {
	_u.mutation.SetCurrentJobTitle(v)
	return _u
}

// SetNillableCurrentJobTitle sets the "current_job_title" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableCurrentJobTitle(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetCurrentJobTitle(*v)
	}
	return _u
}

// SetCurrentIndustry sets the "current_industry" field.
func (_u *LearnerUpdateOne) SetCurrentIndustry(v string) *LearnerUpdateOne {
	_u.mutation.SetCurrentIndustry(v)
	return _u
}

// SetNillableCurrentIndustry sets the "current_industry" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableCurrentIndustry(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetCurrentIndustry(*v)
	}
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *LearnerUpdateOne) SetYearsExperience(v int) *LearnerUpdateOne {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableYearsExperience(v *int) *LearnerUpdateOne {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *LearnerUpdateOne) AddYearsExperience(v int) *LearnerUpdateOne {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *LearnerUpdateOne) SetEducationLevel(v string) *LearnerUpdateOne {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableEducationLevel(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// SetWeeklyStudyHours sets the "weekly_study_hours" field.
func (_u *LearnerUpdateOne) SetWeeklyStudyHours(v int) *LearnerUpdateOne {
	_u.mutation.ResetWeeklyStudyHours()
	_u.mutation.SetWeeklyStudyHours(v)
	return _u
}

// SetNillableWeeklyStudyHours sets the "weekly_study_hours" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableWeeklyStudyHours(v *int) *LearnerUpdateOne {
	if v != nil {
		_u.SetWeeklyStudyHours(*v)
	}
	return _u
}

// AddWeeklyStudyHours adds value to the "weekly_study_hours" field.
func (_u *LearnerUpdateOne) AddWeeklyStudyHours(v int) *LearnerUpdateOne {
	_u.mutation.AddWeeklyStudyHours(v)
	return _u
}

// SetPreferredStudyTimes sets the "preferred_study_times" field.
func (_u *LearnerUpdateOne) SetPreferredStudyTimes(v string) *LearnerUpdateOne {
	_u.mutation.SetPreferredStudyTimes(v)
	return _u
}

// SetNillablePreferredStudyTimes sets the "preferred_study_times" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillablePreferredStudyTimes(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetPreferredStudyTimes(*v)
	}
	return _u
}

// SetHasFamilyObligations sets the "has_family_obligations" field.
func (_u *LearnerUpdateOne) SetHasFamilyObligations(v bool) *LearnerUpdateOne {
	_u.mutation.SetHasFamilyObligations(v)
	return _u
}

// SetNillableHasFamilyObligations sets the "has_family_obligations" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableHasFamilyObligations(v *bool) *LearnerUpdateOne {
	if v != nil {
		_u.SetHasFamilyObligations(*v)
	}
	return _u
}

// SetEmploymentStatus sets the "employment_status" field.
func (_u *LearnerUpdateOne) SetEmploymentStatus(v string) *LearnerUpdateOne {
	_u.mutation.SetEmploymentStatus(v)
	return _u
}

// SetNillableEmploymentStatus sets the "employment_status" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableEmploymentStatus(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetEmploymentStatus(*v)
	}
	return _u
}

// SetPreferredFormat sets the "preferred_format" field.
func (_u *LearnerUpdateOne) SetPreferredFormat(v string) *LearnerUpdateOne {
	_u.mutation.SetPreferredFormat(v)
	return _u
}

// SetNillablePreferredFormat sets the "preferred_format" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillablePreferredFormat(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetPreferredFormat(*v)
	}
	return _u
}

// SetDisposition sets the "disposition" field.
func (_u *LearnerUpdateOne) SetDisposition(v string) *LearnerUpdateOne {
	_u.mutation.SetDisposition(v)
	return _u
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableDisposition(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetDisposition(*v)
	}
	return _u
}

// SetRiasecCode sets the "riasec_code" field.
func (_u *LearnerUpdateOne) SetRiasecCode(v string) *LearnerUpdateOne {
	_u.mutation.SetRiasecCode(v)
	return _u
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableRiasecCode(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetRiasecCode(*v)
	}
	return _u
}

// SetProfileComplete sets the "profile_complete" field.
func (_u *LearnerUpdateOne) SetProfileComplete(v bool) *LearnerUpdateOne {
	_u.mutation.SetProfileComplete(v)
	return _u
}

// SetNillableProfileComplete sets the "profile_complete" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableProfileComplete(v *bool) *LearnerUpdateOne {
	if v != nil {
		_u.SetProfileComplete(*v)
	}
	return _u
}

// SetCurrentMode sets the "current_mode" field.
func (_u *LearnerUpdateOne) SetCurrentMode(v string) *LearnerUpdateOne {
	_u.mutation.SetCurrentMode(v)
	return _u
}

// SetNillableCurrentMode sets the "current_mode" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableCurrentMode(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetCurrentMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerUpdateOne) SetUpdatedAt(v time.Time) *LearnerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdateOne) Mutation() *LearnerMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdateOne) Where(ps ...predicate.Learner) *LearnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerUpdateOne) Select(field string, fields ...string) *LearnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Learner entity.
func (_u *LearnerUpdateOne) Save(ctx context.Context) (*Learner, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdateOne) SaveX(ctx context.Context) *Learner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := learner.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Learner.email": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdateOne) sqlSave(ctx context.Context) (_node *Learner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Learner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learner.FieldID)
		for _, f := range fields {
			if !learner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learner.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(learner.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learner.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentJobTitle(); ok {
		_spec.SetField(learner.FieldCurrentJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentIndustry(); ok {
		_spec.SetField(learner.FieldCurrentIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(learner.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(learner.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(learner.FieldEducationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeeklyStudyHours(); ok {
		_spec.SetField(learner.FieldWeeklyStudyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyStudyHours(); ok {
		_spec.AddField(learner.FieldWeeklyStudyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredStudyTimes(); ok {
		_spec.SetField(learner.FieldPreferredStudyTimes, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasFamilyObligations(); ok {
		_spec.SetField(learner.FieldHasFamilyObligations, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmploymentStatus(); ok {
		_spec.SetField(learner.FieldEmploymentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredFormat(); ok {
		_spec.SetField(learner.FieldPreferredFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Disposition(); ok {
		_spec.SetField(learner.FieldDisposition, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiasecCode(); ok {
		_spec.SetField(learner.FieldRiasecCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileComplete(); ok {
		_spec.SetField(learner.FieldProfileComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentMode(); ok {
		_spec.SetField(learner.FieldCurrentMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Learner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/learner"
)

// LearnerCreate is the builder for creating a Learner entity.
type LearnerCreate struct {
	config
	mutation *LearnerMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerCreate) SetLearnerID(v string) *LearnerCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LearnerCreate) SetEmail(v string) *LearnerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetName sets the "name" field.
func (_c *LearnerCreate) SetName(v string) *LearnerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableName(v *string) *LearnerCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearnerCreate) SetStatus(v string) *LearnerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableStatus(v *string) *LearnerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentJobTitle sets the "current_job_title" field.
func (_c *LearnerCreate) SetCurrentJobTitle(v string) *LearnerCreate {
	_c.mutation.SetCurrentJobTitle(v)
	return _c
}

// SetNillableCurrentJobTitle sets the "current_job_title" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCurrentJobTitle(v *string) *LearnerCreate {
	if v != nil {
		_c.SetCurrentJobTitle(*v)
	}
	return _c
}

// SetCurrentIndustry sets the "current_industry" field.
func (_c *LearnerCreate) SetCurrentIndustry(v string) *LearnerCreate {
	_c.mutation.SetCurrentIndustry(v)
	return _c
}

// SetNillableCurrentIndustry sets the "current_industry" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCurrentIndustry(v *string) *LearnerCreate {
	if v != nil {
		_c.SetCurrentIndustry(*v)
	}
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *LearnerCreate) SetYearsExperience(v int) *LearnerCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableYearsExperience(v *int) *LearnerCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetEducationLevel sets the "education_level" field.
func (_c *LearnerCreate) SetEducationLevel(v string) *LearnerCreate {
	_c.mutation.SetEducationLevel(v)
	return _c
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableEducationLevel(v *string) *LearnerCreate {
	if v != nil {
		_c.SetEducationLevel(*v)
	}
	return _c
}

// SetWeeklyStudyHours sets the "weekly_study_hours" field.
func (_c *LearnerCreate) SetWeeklyStudyHours(v int) *LearnerCreate {
	_c.mutation.SetWeeklyStudyHours(v)
	return _c
}

// SetNillableWeeklyStudyHours sets the "weekly_study_hours" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableWeeklyStudyHours(v *int) *LearnerCreate {
	if v != nil {
		_c.SetWeeklyStudyHours(*v)
	}
	return _c
}

// SetPreferredStudyTimes sets the "preferred_study_times" field.
func (_c *LearnerCreate) SetPreferredStudyTimes(v string) *LearnerCreate {
	_c.mutation.SetPreferredStudyTimes(v)
	return _c
}

// SetNillablePreferredStudyTimes sets the "preferred_study_times" field if the given value is not nil.
func (_c *LearnerCreate) SetNillablePreferredStudyTimes(v *string) *LearnerCreate {
	if v != nil {
		_c.SetPreferredStudyTimes(*v)
	}
	return _c
}

// SetHasFamilyObligations sets the "has_family_obligations" field.
func (_c *LearnerCreate) SetHasFamilyObligations(v bool) *LearnerCreate {
	_c.mutation.SetHasFamilyObligations(v)
	return _c
}

// SetNillableHasFamilyObligations sets the "has_family_obligations" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableHasFamilyObligations(v *bool) *LearnerCreate {
	if v != nil {
		_c.SetHasFamilyObligations(*v)
	}
	return _c
}

// SetEmploymentStatus sets the "employment_status" field.
func (_c *LearnerCreate) SetEmploymentStatus(v string) *LearnerCreate {
	_c.mutation.SetEmploymentStatus(v)
	return _c
}

// SetNillableEmploymentStatus sets the "employment_status" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableEmploymentStatus(v *string) *LearnerCreate {
	if v != nil {
		_c.SetEmploymentStatus(*v)
	}
	return _c
}

// SetPreferredFormat sets the "preferred_format" field.
func (_c *LearnerCreate) SetPreferredFormat(v string) *LearnerCreate {
	_c.mutation.SetPreferredFormat(v)
	return _c
}

// SetNillablePreferredFormat sets the "preferred_format" field if the given value is not nil.
func (_c *LearnerCreate) SetNillablePreferredFormat(v *string) *LearnerCreate {
	if v != nil {
		_c.SetPreferredFormat(*v)
	}
	return _c
}

// SetDisposition sets the "disposition" field.
func (_c *LearnerCreate) SetDisposition(v string) *LearnerCreate {
	_c.mutation.SetDisposition(v)
	return _c
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableDisposition(v *string) *LearnerCreate {
	if v != nil {
		_c.SetDisposition(*v)
	}
	return _c
}

// SetRiasecCode sets the "riasec_code" field.
func (_c *LearnerCreate) SetRiasecCode(v string) *LearnerCreate {
	_c.mutation.SetRiasecCode(v)
	return _c
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableRiasecCode(v *string) *LearnerCreate {
	if v != nil {
		_c.SetRiasecCode(*v)
	}
	return _c
}

// SetProfileComplete sets the "profile_complete" field.
func (_c *LearnerCreate) SetProfileComplete(v bool) *LearnerCreate {
	_c.mutation.SetProfileComplete(v)
	return _c
}

// SetNillableProfileComplete sets the "profile_complete" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableProfileComplete(v *bool) *LearnerCreate {
	if v != nil {
		_c.SetProfileComplete(*v)
	}
	return _c
}

// SetCurrentMode sets the "current_mode" field.
func (_c *LearnerCreate) SetCurrentMode(v string) *LearnerCreate {
	_c.mutation.SetCurrentMode(v)
	return _c
}

// SetNillableCurrentMode sets the "current_mode" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCurrentMode(v *string) *LearnerCreate {
	if v != nil {
		_c.SetCurrentMode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerCreate) SetCreatedAt(v time.Time) *LearnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCreatedAt(v *time.Time) *LearnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerCreate) SetUpdatedAt(v time.Time) *LearnerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableUpdatedAt(v *time.Time) *LearnerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerMutation object of the builder.
func (_c *LearnerCreate) Mutation() *LearnerMutation {
	return _c.mutation
}

// Save creates the Learner in the database.
func (_c *LearnerCreate) Save(ctx context.Context) (*Learner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerCreate) SaveX(ctx context.Context) *Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := learner.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := learner.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentJobTitle(); !ok {
		v := learner.DefaultCurrentJobTitle
		_c.mutation.SetCurrentJobTitle(v)
	}
	if _, ok := _c.mutation.CurrentIndustry(); !ok {
		v := learner.DefaultCurrentIndustry
		_c.mutation.SetCurrentIndustry(v)
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		v := learner.DefaultYearsExperience
		_c.mutation.SetYearsExperience(v)
	}
	if _, ok := _c.mutation.EducationLevel(); !ok {
		v := learner.DefaultEducationLevel
		_c.mutation.SetEducationLevel(v)
	}
	if _, ok := _c.mutation.WeeklyStudyHours(); !ok {
		v := learner.DefaultWeeklyStudyHours
		_c.mutation.SetWeeklyStudyHours(v)
	}
	if _, ok := _c.mutation.PreferredStudyTimes(); !ok {
		v := learner.DefaultPreferredStudyTimes
		_c.mutation.SetPreferredStudyTimes(v)
	}
	if _, ok := _c.mutation.HasFamilyObligations(); !ok {
		v := learner.DefaultHasFamilyObligations
		_c.mutation.SetHasFamilyObligations(v)
	}
	if _, ok := _c.mutation.EmploymentStatus(); !ok {
		v := learner.DefaultEmploymentStatus
		_c.mutation.SetEmploymentStatus(v)
	}
	if _, ok := _c.mutation.PreferredFormat(); !ok {
		v := learner.DefaultPreferredFormat
		_c.mutation.SetPreferredFormat(v)
	}
	if _, ok := _c.mutation.Disposition(); !ok {
		v := learner.DefaultDisposition
		_c.mutation.SetDisposition(v)
	}
	if _, ok := _c.mutation.RiasecCode(); !ok {
		v := learner.DefaultRiasecCode
		_c.mutation.SetRiasecCode(v)
	}
	if _, ok := _c.mutation.ProfileComplete(); !ok {
		v := learner.DefaultProfileComplete
		_c.mutation.SetProfileComplete(v)
	}
	if _, ok := _c.mutation.CurrentMode(); !ok {
		v := learner.DefaultCurrentMode
		_c.mutation.SetCurrentMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learner.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Learner.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learner.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Learner.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Learner.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := learner.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Learner.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Learner.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Learner.status"`)}
	}
	if _, ok := _c.mutation.CurrentJobTitle(); !ok {
		return &ValidationError{Name: "current_job_title", err: errors.New(`ent: missing required field "Learner.current_job_title"`)}
	}
	if _, ok := _c.mutation.CurrentIndustry(); !ok {
		return &ValidationError{Name: "current_industry", err: errors.New(`ent: missing required field "Learner.current_industry"`)}
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		return &ValidationError{Name: "years_experience", err: errors.New(`ent: missing required field "Learner.years_experience"`)}
	}
	if _, ok := _c.mutation.EducationLevel(); !ok {
		return &ValidationError{Name: "education_level", err: errors.New(`ent: missing required field "Learner.education_level"`)}
	}
	if _, ok := _c.mutation.WeeklyStudyHours(); !ok {
		return &ValidationError{Name: "weekly_study_hours", err: errors.New(`ent: missing required field "Learner.weekly_study_hours"`)}
	}
	if _, ok := _c.mutation.PreferredStudyTimes(); !ok {
		return &ValidationError{Name: "preferred_study_times", err: errors.New(`ent: missing required field "Learner.preferred_study_times"`)}
	}
	if _, ok := _c.mutation.HasFamilyObligations(); !ok {
		return &ValidationError{Name: "has_family_obligations", err: errors.New(`ent: missing required field "Learner.has_family_obligations"`)}
	}
	if _, ok := _c.mutation.EmploymentStatus(); !ok {
		return &ValidationError{Name: "employment_status", err: errors.New(`ent: missing required field "Learner.employment_status"`)}
	}
	if _, ok := _c.mutation.PreferredFormat(); !ok {
		return &ValidationError{Name: "preferred_format", err: errors.New(`ent: missing required field "Learner.preferred_format"`)}
	}
	if _, ok := _c.mutation.Disposition(); !ok {
		return &ValidationError{Name: "disposition", err: errors.New(`ent: missing required field "Learner.disposition"`)}
	}
	if _, ok := _c.mutation.RiasecCode(); !ok {
		return &ValidationError{Name: "riasec_code", err: errors.New(`ent: missing required field "Learner.riasec_code"`)}
	}
	if _, ok := _c.mutation.ProfileComplete(); !ok {
		return &ValidationError{Name: "profile_complete", err: errors.New(`ent: missing required field "Learner.profile_complete"`)}
	}
	if _, ok := _c.mutation.CurrentMode(); !ok {
		return &ValidationError{Name: "current_mode", err: errors.New(`ent: missing required field "Learner.current_mode"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Learner.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Learner.updated_at"`)}
	}
	return nil
}

func (_c *LearnerCreate) sqlSave(ctx context.Context) (*Learner, error) {
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

func (_c *LearnerCreate) createSpec() (*Learner, *sqlgraph.CreateSpec) {
	var (
		_node = &Learner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learner.Table, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learner.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(learner.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learner.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentJobTitle(); ok {
		_spec.SetField(learner.FieldCurrentJobTitle, field.TypeString, value)
		_node.CurrentJobTitle = value
	}
	if value, ok := _c.mutation.CurrentIndustry(); ok {
		_spec.SetField(learner.FieldCurrentIndustry, field.TypeString, value)
		_node.CurrentIndustry = value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(learner.FieldYearsExperience, field.TypeInt, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.EducationLevel(); ok {
		_spec.SetField(learner.FieldEducationLevel, field.TypeString, value)
		_node.EducationLevel = value
	}
	if value, ok := _c.mutation.WeeklyStudyHours(); ok {
		_spec.SetField(learner.FieldWeeklyStudyHours, field.TypeInt, value)
		_node.WeeklyStudyHours = value
	}
	if value, ok := _c.mutation.PreferredStudyTimes(); ok {
		_spec.SetField(learner.FieldPreferredStudyTimes, field.TypeString, value)
		_node.PreferredStudyTimes = value
	}
	if value, ok := _c.mutation.HasFamilyObligations(); ok {
		_spec.SetField(learner.FieldHasFamilyObligations, field.TypeBool, value)
		_node.HasFamilyObligations = value
	}
	if value, ok := _c.mutation.EmploymentStatus(); ok {
		_spec.SetField(learner.FieldEmploymentStatus, field.TypeString, value)
		_node.EmploymentStatus = value
	}
	if value, ok := _c.mutation.PreferredFormat(); ok {
		_spec.SetField(learner.FieldPreferredFormat, field.TypeString, value)
		_node.PreferredFormat = value
	}
	if value, ok := _c.mutation.Disposition(); ok {
		_spec.SetField(learner.FieldDisposition, field.TypeString, value)
		_node.Disposition = value
	}
	if value, ok := _c.mutation.RiasecCode(); ok {
		_spec.SetField(learner.FieldRiasecCode, field.TypeString, value)
		_node.RiasecCode = value
	}
	if value, ok := _c.mutation.ProfileComplete(); ok {
		_spec.SetField(learner.FieldProfileComplete, field.TypeBool, value)
		_node.ProfileComplete = value
	}
	if value, ok := _c.mutation.CurrentMode(); ok {
		_spec.SetField(learner.FieldCurrentMode, field.TypeString, value)
		_node.CurrentMode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerCreateBulk is the builder for creating many Learner entities in bulk.
type LearnerCreateBulk struct {
	config
	err      error
	builders []*LearnerCreate
}

// Save creates the Learner entities in the database.
func (_c *LearnerCreateBulk) Save(ctx context.Context) ([]*Learner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Learner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerMutation)
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
func (_c *LearnerCreateBulk) SaveX(ctx context.Context) []*Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

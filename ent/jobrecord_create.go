// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/jobrecord"
)

// JobRecordCreate is the builder for creating a JobRecord entity.
type JobRecordCreate struct {
	config
	mutation *JobRecordMutation
	hooks    []Hook
}

// SetLink sets the "link" field.
func (_c *JobRecordCreate) SetLink(v string) *JobRecordCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *JobRecordCreate) SetTitle(v string) *JobRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *JobRecordCreate) SetCompany(v string) *JobRecordCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableCompany(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *JobRecordCreate) SetLocation(v string) *JobRecordCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableLocation(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *JobRecordCreate) SetLevel(v string) *JobRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableLevel(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *JobRecordCreate) SetSkills(v string) *JobRecordCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableSkills(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetSkills(*v)
	}
	return _c
}

// SetRiasecCode sets the "riasec_code" field.
func (_c *JobRecordCreate) SetRiasecCode(v string) *JobRecordCreate {
	_c.mutation.SetRiasecCode(v)
	return _c
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableRiasecCode(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetRiasecCode(*v)
	}
	return _c
}

// SetRiasecConfidence sets the "riasec_confidence" field.
func (_c *JobRecordCreate) SetRiasecConfidence(v float64) *JobRecordCreate {
	_c.mutation.SetRiasecConfidence(v)
	return _c
}

// SetNillableRiasecConfidence sets the "riasec_confidence" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableRiasecConfidence(v *float64) *JobRecordCreate {
	if v != nil {
		_c.SetRiasecConfidence(*v)
	}
	return _c
}

// SetPrimaryType sets the "primary_type" field.
func (_c *JobRecordCreate) SetPrimaryType(v string) *JobRecordCreate {
	_c.mutation.SetPrimaryType(v)
	return _c
}

// SetNillablePrimaryType sets the "primary_type" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillablePrimaryType(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetPrimaryType(*v)
	}
	return _c
}

// Mutation returns the JobRecordMutation object of the builder.
func (_c *JobRecordCreate) Mutation() *JobRecordMutation {
	return _c.mutation
}

// Save creates the JobRecord in the database.
func (_c *JobRecordCreate) Save(ctx context.Context) (*JobRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRecordCreate) SaveX(ctx context.Context) *JobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRecordCreate) defaults() {
	if _, ok := _c.mutation.Company(); !ok {
		v := jobrecord.DefaultCompany
		_c.mutation.SetCompany(v)
	}
	if _, ok := _c.mutation.Location(); !ok {
		v := jobrecord.DefaultLocation
		_c.mutation.SetLocation(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := jobrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Skills(); !ok {
		v := jobrecord.DefaultSkills
		_c.mutation.SetSkills(v)
	}
	if _, ok := _c.mutation.RiasecCode(); !ok {
		v := jobrecord.DefaultRiasecCode
		_c.mutation.SetRiasecCode(v)
	}
	if _, ok := _c.mutation.RiasecConfidence(); !ok {
		v := jobrecord.DefaultRiasecConfidence
		_c.mutation.SetRiasecConfidence(v)
	}
	if _, ok := _c.mutation.PrimaryType(); !ok {
		v := jobrecord.DefaultPrimaryType
		_c.mutation.SetPrimaryType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRecordCreate) check() error {
	if _, ok := _c.mutation.Link(); !ok {
		return &ValidationError{Name: "link", err: errors.New(`ent: missing required field "JobRecord.link"`)}
	}
	if v, ok := _c.mutation.Link(); ok {
		if err := jobrecord.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`ent: validator failed for field "JobRecord.link": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "JobRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := jobrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "JobRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Company(); !ok {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required field "JobRecord.company"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "JobRecord.location"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "JobRecord.level"`)}
	}
	if _, ok := _c.mutation.Skills(); !ok {
		return &ValidationError{Name: "skills", err: errors.New(`ent: missing required field "JobRecord.skills"`)}
	}
	if _, ok := _c.mutation.RiasecCode(); !ok {
		return &ValidationError{Name: "riasec_code", err: errors.New(`ent: missing required field "JobRecord.riasec_code"`)}
	}
	if _, ok := _c.mutation.RiasecConfidence(); !ok {
		return &ValidationError{Name: "riasec_confidence", err: errors.New(`ent: missing required field "JobRecord.riasec_confidence"`)}
	}
	if _, ok := _c.mutation.PrimaryType(); !ok {
		return &ValidationError{Name: "primary_type", err: errors.New(`ent: missing required field "JobRecord.primary_type"`)}
	}
	return nil
}

func (_c *JobRecordCreate) sqlSave(ctx context.Context) (*JobRecord, error) {
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

func (_c *JobRecordCreate) createSpec() (*JobRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrecord.Table, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(jobrecord.FieldLink, field.TypeString, value)
		_node.Link = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(jobrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(jobrecord.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(jobrecord.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(jobrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(jobrecord.FieldSkills, field.TypeString, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.RiasecCode(); ok {
		_spec.SetField(jobrecord.FieldRiasecCode, field.TypeString, value)
		_node.RiasecCode = value
	}
	if value, ok := _c.mutation.RiasecConfidence(); ok {
		_spec.SetField(jobrecord.FieldRiasecConfidence, field.TypeFloat64, value)
		_node.RiasecConfidence = value
	}
	if value, ok := _c.mutation.PrimaryType(); ok {
		_spec.SetField(jobrecord.FieldPrimaryType, field.TypeString, value)
		_node.PrimaryType = value
	}
	return _node, _spec
}

// JobRecordCreateBulk is the builder for creating many JobRecord entities in bulk.
type JobRecordCreateBulk struct {
	config
	err      error
	builders []*JobRecordCreate
}

// Save creates the JobRecord entities in the database.
func (_c *JobRecordCreateBulk) Save(ctx context.Context) ([]*JobRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRecordMutation)
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
func (_c *JobRecordCreateBulk) SaveX(ctx context.Context) []*JobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

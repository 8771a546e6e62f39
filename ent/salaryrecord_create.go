// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/salaryrecord"
)

// SalaryRecordCreate is the builder for creating a SalaryRecord entity.
type SalaryRecordCreate struct {
	config
	mutation *SalaryRecordMutation
	hooks    []Hook
}

// SetJobTitle sets the "job_title" field.
func (_c *SalaryRecordCreate) SetJobTitle(v string) *SalaryRecordCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetMedianSalary sets the "median_salary" field.
func (_c *SalaryRecordCreate) SetMedianSalary(v int) *SalaryRecordCreate {
	_c.mutation.SetMedianSalary(v)
	return _c
}

// SetNillableMedianSalary sets the "median_salary" field if the given value is not nil.
func (_c *SalaryRecordCreate) SetNillableMedianSalary(v *int) *SalaryRecordCreate {
	if v != nil {
		_c.SetMedianSalary(*v)
	}
	return _c
}

// SetMarketDemand sets the "market_demand" field.
func (_c *SalaryRecordCreate) SetMarketDemand(v string) *SalaryRecordCreate {
	_c.mutation.SetMarketDemand(v)
	return _c
}

// SetNillableMarketDemand sets the "market_demand" field if the given value is not nil.
func (_c *SalaryRecordCreate) SetNillableMarketDemand(v *string) *SalaryRecordCreate {
	if v != nil {
		_c.SetMarketDemand(*v)
	}
	return _c
}

// SetSupplyDemandRatio sets the "supply_demand_ratio" field.
func (_c *SalaryRecordCreate) SetSupplyDemandRatio(v float64) *SalaryRecordCreate {
	_c.mutation.SetSupplyDemandRatio(v)
	return _c
}

// SetNillableSupplyDemandRatio sets the "supply_demand_ratio" field if the given value is not nil.
func (_c *SalaryRecordCreate) SetNillableSupplyDemandRatio(v *float64) *SalaryRecordCreate {
	if v != nil {
		_c.SetSupplyDemandRatio(*v)
	}
	return _c
}

// SetRiasecCode sets the "riasec_code" field.
func (_c *SalaryRecordCreate) SetRiasecCode(v string) *SalaryRecordCreate {
	_c.mutation.SetRiasecCode(v)
	return _c
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_c *SalaryRecordCreate) SetNillableRiasecCode(v *string) *SalaryRecordCreate {
	if v != nil {
		_c.SetRiasecCode(*v)
	}
	return _c
}

// SetRecentPostings sets the "recent_postings" field.
func (_c *SalaryRecordCreate) SetRecentPostings(v int) *SalaryRecordCreate {
	_c.mutation.SetRecentPostings(v)
	return _c
}

// SetNillableRecentPostings sets the "recent_postings" field if the given value is not nil.
func (_c *SalaryRecordCreate) SetNillableRecentPostings(v *int) *SalaryRecordCreate {
	if v != nil {
		_c.SetRecentPostings(*v)
	}
	return _c
}

// Mutation returns the SalaryRecordMutation object of the builder.
func (_c *SalaryRecordCreate) Mutation() *SalaryRecordMutation {
	return _c.mutation
}

// Save creates the SalaryRecord in the database.
func (_c *SalaryRecordCreate) Save(ctx context.Context) (*SalaryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SalaryRecordCreate) SaveX(ctx context.Context) *SalaryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalaryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalaryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SalaryRecordCreate) defaults() {
	if _, ok := _c.mutation.MedianSalary(); !ok {
		v := salaryrecord.DefaultMedianSalary
		_c.mutation.SetMedianSalary(v)
	}
	if _, ok := _c.mutation.MarketDemand(); !ok {
		v := salaryrecord.DefaultMarketDemand
		_c.mutation.SetMarketDemand(v)
	}
	if _, ok := _c.mutation.SupplyDemandRatio(); !ok {
		v := salaryrecord.DefaultSupplyDemandRatio
		_c.mutation.SetSupplyDemandRatio(v)
	}
	if _, ok := _c.mutation.RiasecCode(); !ok {
		v := salaryrecord.DefaultRiasecCode
		_c.mutation.SetRiasecCode(v)
	}
	if _, ok := _c.mutation.RecentPostings(); !ok {
		v := salaryrecord.DefaultRecentPostings
		_c.mutation.SetRecentPostings(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SalaryRecordCreate) check() error {
	if _, ok := _c.mutation.JobTitle(); !ok {
		return &ValidationError{Name: "job_title", err: errors.New(`ent: missing required field "SalaryRecord.job_title"`)}
	}
	if v, ok := _c.mutation.JobTitle(); ok {
		if err := salaryrecord.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "SalaryRecord.job_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MedianSalary(); !ok {
		return &ValidationError{Name: "median_salary", err: errors.New(`ent: missing required field "SalaryRecord.median_salary"`)}
	}
	if _, ok := _c.mutation.MarketDemand(); !ok {
		return &ValidationError{Name: "market_demand", err: errors.New(`ent: missing required field "SalaryRecord.market_demand"`)}
	}
	if _, ok := _c.mutation.SupplyDemandRatio(); !ok {
		return &ValidationError{Name: "supply_demand_ratio", err: errors.New(`ent: missing required field "SalaryRecord.supply_demand_ratio"`)}
	}
	if _, ok := _c.mutation.RiasecCode(); !ok {
		return &ValidationError{Name: "riasec_code", err: errors.New(`ent: missing required field "SalaryRecord.riasec_code"`)}
	}
	if _, ok := _c.mutation.RecentPostings(); !ok {
		return &ValidationError{Name: "recent_postings", err: errors.New(`ent: missing required field "SalaryRecord.recent_postings"`)}
	}
	return nil
}

func (_c *SalaryRecordCreate) sqlSave(ctx context.Context) (*SalaryRecord, error) {
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

func (_c *SalaryRecordCreate) createSpec() (*SalaryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SalaryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(salaryrecord.Table, sqlgraph.NewFieldSpec(salaryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(salaryrecord.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.MedianSalary(); ok {
		_spec.SetField(salaryrecord.FieldMedianSalary, field.TypeInt, value)
		_node.MedianSalary = value
	}
	if value, ok := _c.mutation.MarketDemand(); ok {
		_spec.SetField(salaryrecord.FieldMarketDemand, field.TypeString, value)
		_node.MarketDemand = value
	}
	if value, ok := _c.mutation.SupplyDemandRatio(); ok {
		_spec.SetField(salaryrecord.FieldSupplyDemandRatio, field.TypeFloat64, value)
		_node.SupplyDemandRatio = value
	}
	if value, ok := _c.mutation.RiasecCode(); ok {
		_spec.SetField(salaryrecord.FieldRiasecCode, field.TypeString, value)
		_node.RiasecCode = value
	}
	if value, ok := _c.mutation.RecentPostings(); ok {
		_spec.SetField(salaryrecord.FieldRecentPostings, field.TypeInt, value)
		_node.RecentPostings = value
	}
	return _node, _spec
}

// SalaryRecordCreateBulk is the builder for creating many SalaryRecord entities in bulk.
type SalaryRecordCreateBulk struct {
	config
	err      error
	builders []*SalaryRecordCreate
}

// Save creates the SalaryRecord entities in the database.
func (_c *SalaryRecordCreateBulk) Save(ctx context.Context) ([]*SalaryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SalaryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SalaryRecordMutation)
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
func (_c *SalaryRecordCreateBulk) SaveX(ctx context.Context) []*SalaryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalaryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalaryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

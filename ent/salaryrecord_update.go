// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerstu/careerstu/ent/predicate"
	"github.com/careerstu/careerstu/ent/salaryrecord"
)

// SalaryRecordUpdate is the builder for updating SalaryRecord entities.
type SalaryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SalaryRecordMutation
}

// Where appends a list predicates to the SalaryRecordUpdate builder.
func (_u *SalaryRecordUpdate) Where(ps ...predicate.SalaryRecord) *SalaryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *SalaryRecordUpdate) SetJobTitle(v string) *SalaryRecordUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *SalaryRecordUpdate) SetNillableJobTitle(v *string) *SalaryRecordUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetMedianSalary sets the "median_salary" field.
func (_u *SalaryRecordUpdate) SetMedianSalary(v int) *SalaryRecordUpdate {
	_u.mutation.ResetMedianSalary()
	_u.mutation.SetMedianSalary(v)
	return _u
}

// SetNillableMedianSalary sets the "median_salary" field if the given value is not nil.
func (_u *SalaryRecordUpdate) SetNillableMedianSalary(v *int) *SalaryRecordUpdate {
	if v != nil {
		_u.SetMedianSalary(*v)
	}
	return _u
}

// AddMedianSalary adds value to the "median_salary" field.
func (_u *SalaryRecordUpdate) AddMedianSalary(v int) *SalaryRecordUpdate {
	_u.mutation.AddMedianSalary(v)
	return _u
}

// SetMarketDemand sets the "market_demand" field.
func (_u *SalaryRecordUpdate) SetMarketDemand(v string) *SalaryRecordUpdate {
	_u.mutation.SetMarketDemand(v)
	return _u
}

// SetNillableMarketDemand sets the "market_demand" field if the given value is not nil.
func (_u *SalaryRecordUpdate) SetNillableMarketDemand(v *string) *SalaryRecordUpdate {
	if v != nil {
		_u.SetMarketDemand(*v)
	}
	return _u
}

// SetSupplyDemandRatio sets the "supply_demand_ratio" field.
func (_u *SalaryRecordUpdate) SetSupplyDemandRatio(v float64) *SalaryRecordUpdate {
	_u.mutation.ResetSupplyDemandRatio()
	_u.mutation.SetSupplyDemandRatio(v)
	return _u
}

// SetNillableSupplyDemandRatio sets the "supply_demand_ratio" field if the given value is not nil.
func (_u *SalaryRecordUpdate) SetNillableSupplyDemandRatio(v *float64) *SalaryRecordUpdate {
	if v != nil {
		_u.SetSupplyDemandRatio(*v)
	}
	return _u
}

// AddSupplyDemandRatio adds value to the "supply_demand_ratio" field.
func (_u *SalaryRecordUpdate) AddSupplyDemandRatio(v float64) *SalaryRecordUpdate {
	_u.mutation.AddSupplyDemandRatio(v)
	return _u
}

// SetRiasecCode sets the "riasec_code" field.
func (_u *SalaryRecordUpdate) SetRiasecCode(v string) *SalaryRecordUpdate {
	_u.mutation.SetRiasecCode(v)
	return _u
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_u *SalaryRecordUpdate) SetNillableRiasecCode(v *string) *SalaryRecordUpdate {
	if v != nil {
		_u.SetRiasecCode(*v)
	}
	return _u
}

// SetRecentPostings sets the "recent_postings" field.
func (_u *SalaryRecordUpdate) SetRecentPostings(v int) *SalaryRecordUpdate {
	_u.mutation.ResetRecentPostings()
	_u.mutation.SetRecentPostings(v)
	return _u
}

// SetNillableRecentPostings sets the "recent_postings" field if the given value is not nil.
func (_u *SalaryRecordUpdate) SetNillableRecentPostings(v *int) *SalaryRecordUpdate {
	if v != nil {
		_u.SetRecentPostings(*v)
	}
	return _u
}

// AddRecentPostings adds value to the "recent_postings" field.
func (_u *SalaryRecordUpdate) AddRecentPostings(v int) *SalaryRecordUpdate {
	_u.mutation.AddRecentPostings(v)
	return _u
}

// Mutation returns the SalaryRecordMutation object of the builder.
func (_u *SalaryRecordUpdate) Mutation() *SalaryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SalaryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalaryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SalaryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalaryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalaryRecordUpdate) check() error {
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := salaryrecord.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "SalaryRecord.job_title": %w`, err)}
		}
	}
	return nil
}

func (_u *SalaryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salaryrecord.Table, salaryrecord.Columns, sqlgraph.NewFieldSpec(salaryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(salaryrecord.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MedianSalary(); ok {
		_spec.SetField(salaryrecord.FieldMedianSalary, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMedianSalary(); ok {
		_spec.AddField(salaryrecord.FieldMedianSalary, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarketDemand(); ok {
		_spec.SetField(salaryrecord.FieldMarketDemand, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplyDemandRatio(); ok {
		_spec.SetField(salaryrecord.FieldSupplyDemandRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplyDemandRatio(); ok {
		_spec.AddField(salaryrecord.FieldSupplyDemandRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiasecCode(); ok {
		_spec.SetField(salaryrecord.FieldRiasecCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecentPostings(); ok {
		_spec.SetField(salaryrecord.FieldRecentPostings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecentPostings(); ok {
		_spec.AddField(salaryrecord.FieldRecentPostings, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salaryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SalaryRecordUpdateOne is the builder for updating a single SalaryRecord entity.
type SalaryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SalaryRecordMutation
}

// SetJobTitle sets the "job_title" field.
func (_u *SalaryRecordUpdateOne) SetJobTitle(v string) *SalaryRecordUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *SalaryRecordUpdateOne) SetNillableJobTitle(v *string) *SalaryRecordUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetMedianSalary sets the "median_salary" field.
func (_u *SalaryRecordUpdateOne) SetMedianSalary(v int) *SalaryRecordUpdateOne {
	_u.mutation.ResetMedianSalary()
	_u.mutation.SetMedianSalary(v)
	return _u
}

// SetNillableMedianSalary sets the "median_salary" field if the given value is not nil.
func (_u *SalaryRecordUpdateOne) SetNillableMedianSalary(v *int) *SalaryRecordUpdateOne {
	if v != nil {
		_u.SetMedianSalary(*v)
	}
	return _u
}

// AddMedianSalary adds value to the "median_salary" field.
func (_u *SalaryRecordUpdateOne) AddMedianSalary(v int) *SalaryRecordUpdateOne {
	_u.mutation.AddMedianSalary(v)
	return _u
}

// SetMarketDemand sets the "market_demand" field.
func (_u *SalaryRecordUpdateOne) SetMarketDemand(v string) *SalaryRecordUpdateOne {
	_u.mutation.SetMarketDemand(v)
	return _u
}

// SetNillableMarketDemand sets the "market_demand" field if the given value is not nil.
func (_u *SalaryRecordUpdateOne) SetNillableMarketDemand(v *string) *SalaryRecordUpdateOne {
	if v != nil {
		_u.SetMarketDemand(*v)
	}
	return _u
}

// SetSupplyDemandRatio sets the "supply_demand_ratio" field.
func (_u *SalaryRecordUpdateOne) SetSupplyDemandRatio(v float64) *SalaryRecordUpdateOne {
	_u.mutation.ResetSupplyDemandRatio()
	_u.mutation.SetSupplyDemandRatio(v)
	return _u
}

// SetNillableSupplyDemandRatio sets the "supply_demand_ratio" field if the given value is not nil.
func (_u *SalaryRecordUpdateOne) SetNillableSupplyDemandRatio(v *float64) *SalaryRecordUpdateOne {
	if v != nil {
		_u.SetSupplyDemandRatio(*v)
	}
	return _u
}

// AddSupplyDemandRatio adds value to the "supply_demand_ratio" field.
func (_u *SalaryRecordUpdateOne) AddSupplyDemandRatio(v float64) *SalaryRecordUpdateOne {
	_u.mutation.AddSupplyDemandRatio(v)
	return _u
}

// SetRiasecCode sets the "riasec_code" field.
func (_u *SalaryRecordUpdateOne) SetRiasecCode(v string) *SalaryRecordUpdateOne {
	_u.mutation.SetRiasecCode(v)
	return _u
}

// SetNillableRiasecCode sets the "riasec_code" field if the given value is not nil.
func (_u *SalaryRecordUpdateOne) SetNillableRiasecCode(v *string) *SalaryRecordUpdateOne {
	if v != nil {
		_u.SetRiasecCode(*v)
	}
	return _u
}

// SetRecentPostings sets the "recent_postings" field.
func (_u *SalaryRecordUpdateOne) SetRecentPostings(v int) *SalaryRecordUpdateOne {
	_u.mutation.ResetRecentPostings()
	_u.mutation.SetRecentPostings(v)
	return _u
}

// SetNillableRecentPostings sets the "recent_postings" field if the given value is not nil.
func (_u *SalaryRecordUpdateOne) SetNillableRecentPostings(v *int) *SalaryRecordUpdateOne {
	if v != nil {
		_u.SetRecentPostings(*v)
	}
	return _u
}

// AddRecentPostings adds value to the "recent_postings" field.
func (_u *SalaryRecordUpdateOne) AddRecentPostings(v int) *SalaryRecordUpdateOne {
	_u.mutation.AddRecentPostings(v)
	return _u
}

// Mutation returns the SalaryRecordMutation object of the builder.
func (_u *SalaryRecordUpdateOne) Mutation() *SalaryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SalaryRecordUpdate builder.
func (_u *SalaryRecordUpdateOne) Where(ps ...predicate.SalaryRecord) *SalaryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SalaryRecordUpdateOne) Select(field string, fields ...string) *SalaryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SalaryRecord entity.
func (_u *SalaryRecordUpdateOne) Save(ctx context.Context) (*SalaryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalaryRecordUpdateOne) SaveX(ctx context.Context) *SalaryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SalaryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalaryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalaryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := salaryrecord.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "SalaryRecord.job_title": %w`, err)}
		}
	}
	return nil
}

func (_u *SalaryRecordUpdateOne) sqlSave(ctx context.Context) (_node *SalaryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salaryrecord.Table, salaryrecord.Columns, sqlgraph.NewFieldSpec(salaryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SalaryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, salaryrecord.FieldID)
		for _, f := range fields {
			if !salaryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != salaryrecord.FieldID {
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
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(salaryrecord.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MedianSalary(); ok {
		_spec.SetField(salaryrecord.FieldMedianSalary, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMedianSalary(); ok {
		_spec.AddField(salaryrecord.FieldMedianSalary, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarketDemand(); ok {
		_spec.SetField(salaryrecord.FieldMarketDemand, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplyDemandRatio(); ok {
		_spec.SetField(salaryrecord.FieldSupplyDemandRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplyDemandRatio(); ok {
		_spec.AddField(salaryrecord.FieldSupplyDemandRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiasecCode(); ok {
		_spec.SetField(salaryrecord.FieldRiasecCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecentPostings(); ok {
		_spec.SetField(salaryrecord.FieldRecentPostings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecentPostings(); ok {
		_spec.AddField(salaryrecord.FieldRecentPostings, field.TypeInt, value)
	}
	_node = &SalaryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salaryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/goal"
	"github.com/careerstu/careerstu/ent/jobrecord"
	"github.com/careerstu/careerstu/ent/learner"
	"github.com/careerstu/careerstu/ent/learnerskill"
	"github.com/careerstu/careerstu/ent/llmrequestevent"
	"github.com/careerstu/careerstu/ent/modeevent"
	"github.com/careerstu/careerstu/ent/pathway"
	"github.com/careerstu/careerstu/ent/pathwayskill"
	"github.com/careerstu/careerstu/ent/predicate"
	"github.com/careerstu/careerstu/ent/salaryrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGoal            = "Goal"
	TypeJobRecord       = "JobRecord"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLearner         = "Learner"
	TypeLearnerSkill    = "LearnerSkill"
	TypeModeEvent       = "ModeEvent"
	TypePathway         = "Pathway"
	TypePathwaySkill    = "PathwaySkill"
	TypeSalaryRecord    = "SalaryRecord"
)

// GoalMutation represents an operation that mutates the Goal nodes in the graph.
type GoalMutation struct {
	config
	op               Op
	typ              string
	id               *int
	goal_id          *string
	learner_id       *string
	target_job_title *string
	status           *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Goal, error)
	predicates       []predicate.Goal
}

var _ ent.Mutation = (*GoalMutation)(nil)

// goalOption allows management of the mutation configuration using functional options.
type goalOption func(*GoalMutation)

// newGoalMutation creates new mutation for the Goal entity.
func newGoalMutation(c config, op Op, opts ...goalOption) *GoalMutation {
	m := &GoalMutation{
		config:        c,
		op:            op,
		typ:           TypeGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGoalID sets the ID field of the mutation.
func withGoalID(id int) goalOption {
	return func(m *GoalMutation) {
		var (
			err   error
			once  sync.Once
			value *Goal
		)
		m.oldValue = func(ctx context.Context) (*Goal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Goal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGoal sets the old Goal of the mutation.
func withGoal(node *Goal) goalOption {
	return func(m *GoalMutation) {
		m.oldValue = func(context.Context) (*Goal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GoalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GoalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Goal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGoalID sets the "goal_id" field.
func (m *GoalMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *GoalMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *GoalMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *GoalMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *GoalMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *GoalMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetTargetJobTitle sets the "target_job_title" field.
func (m *GoalMutation) SetTargetJobTitle(s string) {
	m.target_job_title = &s
}

// TargetJobTitle returns the value of the "target_job_title" field in the mutation.
func (m *GoalMutation) TargetJobTitle() (r string, exists bool) {
	v := m.target_job_title
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetJobTitle returns the old "target_job_title" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldTargetJobTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetJobTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetJobTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetJobTitle: %w", err)
	}
	return oldValue.TargetJobTitle, nil
}

// ResetTargetJobTitle resets all changes to the "target_job_title" field.
func (m *GoalMutation) ResetTargetJobTitle() {
	m.target_job_title = nil
}

// SetStatus sets the "status" field.
func (m *GoalMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GoalMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GoalMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GoalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GoalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GoalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GoalMutation builder.
func (m *GoalMutation) Where(ps ...predicate.Goal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Goal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Goal).
func (m *GoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GoalMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.goal_id != nil {
		fields = append(fields, goal.FieldGoalID)
	}
	if m.learner_id != nil {
		fields = append(fields, goal.FieldLearnerID)
	}
	if m.target_job_title != nil {
		fields = append(fields, goal.FieldTargetJobTitle)
	}
	if m.status != nil {
		fields = append(fields, goal.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, goal.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldGoalID:
		return m.GoalID()
	case goal.FieldLearnerID:
		return m.LearnerID()
	case goal.FieldTargetJobTitle:
		return m.TargetJobTitle()
	case goal.FieldStatus:
		return m.Status()
	case goal.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case goal.FieldGoalID:
		return m.OldGoalID(ctx)
	case goal.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case goal.FieldTargetJobTitle:
		return m.OldTargetJobTitle(ctx)
	case goal.FieldStatus:
		return m.OldStatus(ctx)
	case goal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Goal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case goal.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case goal.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case goal.FieldTargetJobTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetJobTitle(v)
		return nil
	case goal.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case goal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GoalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GoalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Goal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GoalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GoalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Goal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GoalMutation) ResetField(name string) error {
	switch name {
	case goal.FieldGoalID:
		m.ResetGoalID()
		return nil
	case goal.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case goal.FieldTargetJobTitle:
		m.ResetTargetJobTitle()
		return nil
	case goal.FieldStatus:
		m.ResetStatus()
		return nil
	case goal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Goal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Goal edge %s", name)
}

// JobRecordMutation represents an operation that mutates the JobRecord nodes in the graph.
type JobRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	link                 *string
	title                *string
	company              *string
	location             *string
	level                *string
	skills               *string
	riasec_code          *string
	riasec_confidence    *float64
	addriasec_confidence *float64
	primary_type         *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*JobRecord, error)
	predicates           []predicate.JobRecord
}

var _ ent.Mutation = (*JobRecordMutation)(nil)

// jobrecordOption allows management of the mutation configuration using functional options.
type jobrecordOption func(*JobRecordMutation)

// newJobRecordMutation creates new mutation for the JobRecord entity.
func newJobRecordMutation(c config, op Op, opts ...jobrecordOption) *JobRecordMutation {
	m := &JobRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeJobRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobRecordID sets the ID field of the mutation.
func withJobRecordID(id int) jobrecordOption {
	return func(m *JobRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *JobRecord
		)
		m.oldValue = func(ctx context.Context) (*JobRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobRecord sets the old JobRecord of the mutation.
func withJobRecord(node *JobRecord) jobrecordOption {
	return func(m *JobRecordMutation) {
		m.oldValue = func(context.Context) (*JobRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLink sets the "link" field.
func (m *JobRecordMutation) SetLink(s string) {
	m.link = &s
}

// Link returns the value of the "link" field in the mutation.
func (m *JobRecordMutation) Link() (r string, exists bool) {
	v := m.link
	if v == nil {
		return
	}
	return *v, true
}

// OldLink returns the old "link" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLink: %w", err)
	}
	return oldValue.Link, nil
}

// ResetLink resets all changes to the "link" field.
func (m *JobRecordMutation) ResetLink() {
	m.link = nil
}

// SetTitle sets the "title" field.
func (m *JobRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobRecordMutation) ResetTitle() {
	m.title = nil
}

// SetCompany sets the "company" field.
func (m *JobRecordMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *JobRecordMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ResetCompany resets all changes to the "company" field.
func (m *JobRecordMutation) ResetCompany() {
	m.company = nil
}

// SetLocation sets the "location" field.
func (m *JobRecordMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *JobRecordMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *JobRecordMutation) ResetLocation() {
	m.location = nil
}

// SetLevel sets the "level" field.
func (m *JobRecordMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *JobRecordMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *JobRecordMutation) ResetLevel() {
	m.level = nil
}

// SetSkills sets the "skills" field.
func (m *JobRecordMutation) SetSkills(s string) {
	m.skills = &s
}

// Skills returns the value of the "skills" field in the mutation.
func (m *JobRecordMutation) Skills() (r string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldSkills(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// ResetSkills resets all changes to the "skills" field.
func (m *JobRecordMutation) ResetSkills() {
	m.skills = nil
}

// SetRiasecCode sets the "riasec_code" field.
func (m *JobRecordMutation) SetRiasecCode(s string) {
	m.riasec_code = &s
}

// RiasecCode returns the value of the "riasec_code" field in the mutation.
func (m *JobRecordMutation) RiasecCode() (r string, exists bool) {
	v := m.riasec_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRiasecCode returns the old "riasec_code" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldRiasecCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiasecCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiasecCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiasecCode: %w", err)
	}
	return oldValue.RiasecCode, nil
}

// ResetRiasecCode resets all changes to the "riasec_code" field.
func (m *JobRecordMutation) ResetRiasecCode() {
	m.riasec_code = nil
}

// SetRiasecConfidence sets the "riasec_confidence" field.
func (m *JobRecordMutation) SetRiasecConfidence(f float64) {
	m.riasec_confidence = &f
	m.addriasec_confidence = nil
}

// RiasecConfidence returns the value of the "riasec_confidence" field in the mutation.
func (m *JobRecordMutation) RiasecConfidence() (r float64, exists bool) {
	v := m.riasec_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldRiasecConfidence returns the old "riasec_confidence" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldRiasecConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiasecConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiasecConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiasecConfidence: %w", err)
	}
	return oldValue.RiasecConfidence, nil
}

// AddRiasecConfidence adds f to the "riasec_confidence" field.
func (m *JobRecordMutation) AddRiasecConfidence(f float64) {
	if m.addriasec_confidence != nil {
		*m.addriasec_confidence += f
	} else {
		m.addriasec_confidence = &f
	}
}

// AddedRiasecConfidence returns the value that was added to the "riasec_confidence" field in this mutation.
func (m *JobRecordMutation) AddedRiasecConfidence() (r float64, exists bool) {
	v := m.addriasec_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiasecConfidence resets all changes to the "riasec_confidence" field.
func (m *JobRecordMutation) ResetRiasecConfidence() {
	m.riasec_confidence = nil
	m.addriasec_confidence = nil
}

// SetPrimaryType sets the "primary_type" field.
func (m *JobRecordMutation) SetPrimaryType(s string) {
	m.primary_type = &s
}

// PrimaryType returns the value of the "primary_type" field in the mutation.
func (m *JobRecordMutation) PrimaryType() (r string, exists bool) {
	v := m.primary_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryType returns the old "primary_type" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldPrimaryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryType: %w", err)
	}
	return oldValue.PrimaryType, nil
}

// ResetPrimaryType resets all changes to the "primary_type" field.
func (m *JobRecordMutation) ResetPrimaryType() {
	m.primary_type = nil
}

// Where appends a list predicates to the JobRecordMutation builder.
func (m *JobRecordMutation) Where(ps ...predicate.JobRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobRecord).
func (m *JobRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.link != nil {
		fields = append(fields, jobrecord.FieldLink)
	}
	if m.title != nil {
		fields = append(fields, jobrecord.FieldTitle)
	}
	if m.company != nil {
		fields = append(fields, jobrecord.FieldCompany)
	}
	if m.location != nil {
		fields = append(fields, jobrecord.FieldLocation)
	}
	if m.level != nil {
		fields = append(fields, jobrecord.FieldLevel)
	}
	if m.skills != nil {
		fields = append(fields, jobrecord.FieldSkills)
	}
	if m.riasec_code != nil {
		fields = append(fields, jobrecord.FieldRiasecCode)
	}
	if m.riasec_confidence != nil {
		fields = append(fields, jobrecord.FieldRiasecConfidence)
	}
	if m.primary_type != nil {
		fields = append(fields, jobrecord.FieldPrimaryType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobrecord.FieldLink:
		return m.Link()
	case jobrecord.FieldTitle:
		return m.Title()
	case jobrecord.FieldCompany:
		return m.Company()
	case jobrecord.FieldLocation:
		return m.Location()
	case jobrecord.FieldLevel:
		return m.Level()
	case jobrecord.FieldSkills:
		return m.Skills()
	case jobrecord.FieldRiasecCode:
		return m.RiasecCode()
	case jobrecord.FieldRiasecConfidence:
		return m.RiasecConfidence()
	case jobrecord.FieldPrimaryType:
		return m.PrimaryType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobrecord.FieldLink:
		return m.OldLink(ctx)
	case jobrecord.FieldTitle:
		return m.OldTitle(ctx)
	case jobrecord.FieldCompany:
		return m.OldCompany(ctx)
	case jobrecord.FieldLocation:
		return m.OldLocation(ctx)
	case jobrecord.FieldLevel:
		return m.OldLevel(ctx)
	case jobrecord.FieldSkills:
		return m.OldSkills(ctx)
	case jobrecord.FieldRiasecCode:
		return m.OldRiasecCode(ctx)
	case jobrecord.FieldRiasecConfidence:
		return m.OldRiasecConfidence(ctx)
	case jobrecord.FieldPrimaryType:
		return m.OldPrimaryType(ctx)
	}
	return nil, fmt.Errorf("unknown JobRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobrecord.FieldLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLink(v)
		return nil
	case jobrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case jobrecord.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case jobrecord.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case jobrecord.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case jobrecord.FieldSkills:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case jobrecord.FieldRiasecCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiasecCode(v)
		return nil
	case jobrecord.FieldRiasecConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiasecConfidence(v)
		return nil
	case jobrecord.FieldPrimaryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryType(v)
		return nil
	}
	return fmt.Errorf("unknown JobRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobRecordMutation) AddedFields() []string {
	var fields []string
	if m.addriasec_confidence != nil {
		fields = append(fields, jobrecord.FieldRiasecConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobrecord.FieldRiasecConfidence:
		return m.AddedRiasecConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobrecord.FieldRiasecConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiasecConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown JobRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobRecordMutation) ResetField(name string) error {
	switch name {
	case jobrecord.FieldLink:
		m.ResetLink()
		return nil
	case jobrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case jobrecord.FieldCompany:
		m.ResetCompany()
		return nil
	case jobrecord.FieldLocation:
		m.ResetLocation()
		return nil
	case jobrecord.FieldLevel:
		m.ResetLevel()
		return nil
	case jobrecord.FieldSkills:
		m.ResetSkills()
		return nil
	case jobrecord.FieldRiasecCode:
		m.ResetRiasecCode()
		return nil
	case jobrecord.FieldRiasecConfidence:
		m.ResetRiasecConfidence()
		return nil
	case jobrecord.FieldPrimaryType:
		m.ResetPrimaryType()
		return nil
	}
	return fmt.Errorf("unknown JobRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JobRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JobRecord edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearnerMutation represents an operation that mutates the Learner nodes in the graph.
type LearnerMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	learner_id             *string
	email                  *string
	name                   *string
	status                 *string
	current_job_title      *string
	current_industry       *string
	years_experience       *int
	addyears_experience    *int
	education_level        *string
	weekly_study_hours     *int
	addweekly_study_hours  *int
	preferred_study_times  *string
	has_family_obligations *bool
	employment_status      *string
	preferred_format       *string
	disposition            *string
	riasec_code            *string
	profile_complete       *bool
	current_mode           *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Learner, error)
	predicates             []predicate.Learner
}

var _ ent.Mutation = (*LearnerMutation)(nil)

// learnerOption allows management of the mutation configuration using functional options.
type learnerOption func(*LearnerMutation)

// newLearnerMutation creates new mutation for the Learner entity.
func newLearnerMutation(c config, op Op, opts ...learnerOption) *LearnerMutation {
	m := &LearnerMutation{
		config:        c,
		op:            op,
		typ:           TypeLearner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerID sets the ID field of the mutation.
func withLearnerID(id int) learnerOption {
	return func(m *LearnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Learner
		)
		m.oldValue = func(ctx context.Context) (*Learner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Learner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearner sets the old Learner of the mutation.
func withLearner(node *Learner) learnerOption {
	return func(m *LearnerMutation) {
		m.oldValue = func(context.Context) (*Learner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Learner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetEmail sets the "email" field.
func (m *LearnerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LearnerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *LearnerMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *LearnerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LearnerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LearnerMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *LearnerMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LearnerMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LearnerMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentJobTitle sets the "current_job_title" field.
func (m *LearnerMutation) SetCurrentJobTitle(s string) {
	m.current_job_title = &s
}

// CurrentJobTitle returns the value of the "current_job_title" field in the mutation.
func (m *LearnerMutation) CurrentJobTitle() (r string, exists bool) {
	v := m.current_job_title
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentJobTitle returns the old "current_job_title" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCurrentJobTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentJobTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentJobTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentJobTitle: %w", err)
	}
	return oldValue.CurrentJobTitle, nil
}

// ResetCurrentJobTitle resets all changes to the "current_job_title" field.
func (m *LearnerMutation) ResetCurrentJobTitle() {
	m.current_job_title = nil
}

// SetCurrentIndustry sets the "current_industry" field.
func (m *LearnerMutation) SetCurrentIndustry(s string) {
	m.current_industry = &s
}

// CurrentIndustry returns the value of the "current_industry" field in the mutation.
func (m *LearnerMutation) CurrentIndustry() (r string, exists bool) {
	v := m.current_industry
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIndustry returns the old "current_industry" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCurrentIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIndustry: %w", err)
	}
	return oldValue.CurrentIndustry, nil
}

// ResetCurrentIndustry resets all changes to the "current_industry" field.
func (m *LearnerMutation) ResetCurrentIndustry() {
	m.current_industry = nil
}

// SetYearsExperience sets the "years_experience" field.
func (m *LearnerMutation) SetYearsExperience(i int) {
	m.years_experience = &i
	m.addyears_experience = nil
}

// YearsExperience returns the value of the "years_experience" field in the mutation.
func (m *LearnerMutation) YearsExperience() (r int, exists bool) {
	v := m.years_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsExperience returns the old "years_experience" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldYearsExperience(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsExperience: %w", err)
	}
	return oldValue.YearsExperience, nil
}

// AddYearsExperience adds i to the "years_experience" field.
func (m *LearnerMutation) AddYearsExperience(i int) {
	if m.addyears_experience != nil {
		*m.addyears_experience += i
	} else {
		m.addyears_experience = &i
	}
}

// AddedYearsExperience returns the value that was added to the "years_experience" field in this mutation.
func (m *LearnerMutation) AddedYearsExperience() (r int, exists bool) {
	v := m.addyears_experience
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearsExperience resets all changes to the "years_experience" field.
func (m *LearnerMutation) ResetYearsExperience() {
	m.years_experience = nil
	m.addyears_experience = nil
}

// SetEducationLevel sets the "education_level" field.
func (m *LearnerMutation) SetEducationLevel(s string) {
	m.education_level = &s
}

// EducationLevel returns the value of the "education_level" field in the mutation.
func (m *LearnerMutation) EducationLevel() (r string, exists bool) {
	v := m.education_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEducationLevel returns the old "education_level" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldEducationLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducationLevel: %w", err)
	}
	return oldValue.EducationLevel, nil
}

// ResetEducationLevel resets all changes to the "education_level" field.
func (m *LearnerMutation) ResetEducationLevel() {
	m.education_level = nil
}

// SetWeeklyStudyHours sets the "weekly_study_hours" field.
func (m *LearnerMutation) SetWeeklyStudyHours(i int) {
	m.weekly_study_hours = &i
	m.addweekly_study_hours = nil
}

// WeeklyStudyHours returns the value of the "weekly_study_hours" field in the mutation.
func (m *LearnerMutation) WeeklyStudyHours() (r int, exists bool) {
	v := m.weekly_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyStudyHours returns the old "weekly_study_hours" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldWeeklyStudyHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyStudyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyStudyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyStudyHours: %w", err)
	}
	return oldValue.WeeklyStudyHours, nil
}

// AddWeeklyStudyHours adds i to the "weekly_study_hours" field.
func (m *LearnerMutation) AddWeeklyStudyHours(i int) {
	if m.addweekly_study_hours != nil {
		*m.addweekly_study_hours += i
	} else {
		m.addweekly_study_hours = &i
	}
}

// AddedWeeklyStudyHours returns the value that was added to the "weekly_study_hours" field in this mutation.
func (m *LearnerMutation) AddedWeeklyStudyHours() (r int, exists bool) {
	v := m.addweekly_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeeklyStudyHours resets all changes to the "weekly_study_hours" field.
func (m *LearnerMutation) ResetWeeklyStudyHours() {
	m.weekly_study_hours = nil
	m.addweekly_study_hours = nil
}

// SetPreferredStudyTimes sets the "preferred_study_times" field.
func (m *LearnerMutation) SetPreferredStudyTimes(s string) {
	m.preferred_study_times = &s
}

// PreferredStudyTimes returns the value of the "preferred_study_times" field in the mutation.
func (m *LearnerMutation) PreferredStudyTimes() (r string, exists bool) {
	v := m.preferred_study_times
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredStudyTimes returns the old "preferred_study_times" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldPreferredStudyTimes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredStudyTimes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredStudyTimes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredStudyTimes: %w", err)
	}
	return oldValue.PreferredStudyTimes, nil
}

// ResetPreferredStudyTimes resets all changes to the "preferred_study_times" field.
func (m *LearnerMutation) ResetPreferredStudyTimes() {
	m.preferred_study_times = nil
}

// SetHasFamilyObligations sets the "has_family_obligations" field.
func (m *LearnerMutation) SetHasFamilyObligations(b bool) {
	m.has_family_obligations = &b
}

// HasFamilyObligations returns the value of the "has_family_obligations" field in the mutation.
func (m *LearnerMutation) HasFamilyObligations() (r bool, exists bool) {
	v := m.has_family_obligations
	if v == nil {
		return
	}
	return *v, true
}

// OldHasFamilyObligations returns the old "has_family_obligations" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldHasFamilyObligations(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasFamilyObligations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasFamilyObligations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasFamilyObligations: %w", err)
	}
	return oldValue.HasFamilyObligations, nil
}

// ResetHasFamilyObligations resets all changes to the "has_family_obligations" field.
func (m *LearnerMutation) ResetHasFamilyObligations() {
	m.has_family_obligations = nil
}

// SetEmploymentStatus sets the "employment_status" field.
func (m *LearnerMutation) SetEmploymentStatus(s string) {
	m.employment_status = &s
}

// EmploymentStatus returns the value of the "employment_status" field in the mutation.
func (m *LearnerMutation) EmploymentStatus() (r string, exists bool) {
	v := m.employment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldEmploymentStatus returns the old "employment_status" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldEmploymentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmploymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmploymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmploymentStatus: %w", err)
	}
	return oldValue.EmploymentStatus, nil
}

// ResetEmploymentStatus resets all changes to the "employment_status" field.
func (m *LearnerMutation) ResetEmploymentStatus() {
	m.employment_status = nil
}

// SetPreferredFormat sets the "preferred_format" field.
func (m *LearnerMutation) SetPreferredFormat(s string) {
	m.preferred_format = &s
}

// PreferredFormat returns the value of the "preferred_format" field in the mutation.
func (m *LearnerMutation) PreferredFormat() (r string, exists bool) {
	v := m.preferred_format
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredFormat returns the old "preferred_format" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldPreferredFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredFormat: %w", err)
	}
	return oldValue.PreferredFormat, nil
}

// ResetPreferredFormat resets all changes to the "preferred_format" field.
func (m *LearnerMutation) ResetPreferredFormat() {
	m.preferred_format = nil
}

// SetDisposition sets the "disposition" field.
func (m *LearnerMutation) SetDisposition(s string) {
	m.disposition = &s
}

// Disposition returns the value of the "disposition" field in the mutation.
func (m *LearnerMutation) Disposition() (r string, exists bool) {
	v := m.disposition
	if v == nil {
		return
	}
	return *v, true
}

// OldDisposition returns the old "disposition" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldDisposition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisposition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisposition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisposition: %w", err)
	}
	return oldValue.Disposition, nil
}

// ResetDisposition resets all changes to the "disposition" field.
func (m *LearnerMutation) ResetDisposition() {
	m.disposition = nil
}

// SetRiasecCode sets the "riasec_code" field.
func (m *LearnerMutation) SetRiasecCode(s string) {
	m.riasec_code = &s
}

// RiasecCode returns the value of the "riasec_code" field in the mutation.
func (m *LearnerMutation) RiasecCode() (r string, exists bool) {
	v := m.riasec_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRiasecCode returns the old "riasec_code" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldRiasecCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiasecCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiasecCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiasecCode: %w", err)
	}
	return oldValue.RiasecCode, nil
}

// ResetRiasecCode resets all changes to the "riasec_code" field.
func (m *LearnerMutation) ResetRiasecCode() {
	m.riasec_code = nil
}

// SetProfileComplete sets the "profile_complete" field.
func (m *LearnerMutation) SetProfileComplete(b bool) {
	m.profile_complete = &b
}

// ProfileComplete returns the value of the "profile_complete" field in the mutation.
func (m *LearnerMutation) ProfileComplete() (r bool, exists bool) {
	v := m.profile_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileComplete returns the old "profile_complete" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldProfileComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileComplete: %w", err)
	}
	return oldValue.ProfileComplete, nil
}

// ResetProfileComplete resets all changes to the "profile_complete" field.
func (m *LearnerMutation) ResetProfileComplete() {
	m.profile_complete = nil
}

// SetCurrentMode sets the "current_mode" field.
func (m *LearnerMutation) SetCurrentMode(s string) {
	m.current_mode = &s
}

// CurrentMode returns the value of the "current_mode" field in the mutation.
func (m *LearnerMutation) CurrentMode() (r string, exists bool) {
	v := m.current_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentMode returns the old "current_mode" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCurrentMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentMode: %w", err)
	}
	return oldValue.CurrentMode, nil
}

// ResetCurrentMode resets all changes to the "current_mode" field.
func (m *LearnerMutation) ResetCurrentMode() {
	m.current_mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerMutation builder.
func (m *LearnerMutation) Where(ps ...predicate.Learner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Learner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Learner).
func (m *LearnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.learner_id != nil {
		fields = append(fields, learner.FieldLearnerID)
	}
	if m.email != nil {
		fields = append(fields, learner.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, learner.FieldName)
	}
	if m.status != nil {
		fields = append(fields, learner.FieldStatus)
	}
	if m.current_job_title != nil {
		fields = append(fields, learner.FieldCurrentJobTitle)
	}
	if m.current_industry != nil {
		fields = append(fields, learner.FieldCurrentIndustry)
	}
	if m.years_experience != nil {
		fields = append(fields, learner.FieldYearsExperience)
	}
	if m.education_level != nil {
		fields = append(fields, learner.FieldEducationLevel)
	}
	if m.weekly_study_hours != nil {
		fields = append(fields, learner.FieldWeeklyStudyHours)
	}
	if m.preferred_study_times != nil {
		fields = append(fields, learner.FieldPreferredStudyTimes)
	}
	if m.has_family_obligations != nil {
		fields = append(fields, learner.FieldHasFamilyObligations)
	}
	if m.employment_status != nil {
		fields = append(fields, learner.FieldEmploymentStatus)
	}
	if m.preferred_format != nil {
		fields = append(fields, learner.FieldPreferredFormat)
	}
	if m.disposition != nil {
		fields = append(fields, learner.FieldDisposition)
	}
	if m.riasec_code != nil {
		fields = append(fields, learner.FieldRiasecCode)
	}
	if m.profile_complete != nil {
		fields = append(fields, learner.FieldProfileComplete)
	}
	if m.current_mode != nil {
		fields = append(fields, learner.FieldCurrentMode)
	}
	if m.created_at != nil {
		fields = append(fields, learner.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learner.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldLearnerID:
		return m.LearnerID()
	case learner.FieldEmail:
		return m.Email()
	case learner.FieldName:
		return m.Name()
	case learner.FieldStatus:
		return m.Status()
	case learner.FieldCurrentJobTitle:
		return m.CurrentJobTitle()
	case learner.FieldCurrentIndustry:
		return m.CurrentIndustry()
	case learner.FieldYearsExperience:
		return m.YearsExperience()
	case learner.FieldEducationLevel:
		return m.EducationLevel()
	case learner.FieldWeeklyStudyHours:
		return m.WeeklyStudyHours()
	case learner.FieldPreferredStudyTimes:
		return m.PreferredStudyTimes()
	case learner.FieldHasFamilyObligations:
		return m.HasFamilyObligations()
	case learner.FieldEmploymentStatus:
		return m.EmploymentStatus()
	case learner.FieldPreferredFormat:
		return m.PreferredFormat()
	case learner.FieldDisposition:
		return m.Disposition()
	case learner.FieldRiasecCode:
		return m.RiasecCode()
	case learner.FieldProfileComplete:
		return m.ProfileComplete()
	case learner.FieldCurrentMode:
		return m.CurrentMode()
	case learner.FieldCreatedAt:
		return m.CreatedAt()
	case learner.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learner.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learner.FieldEmail:
		return m.OldEmail(ctx)
	case learner.FieldName:
		return m.OldName(ctx)
	case learner.FieldStatus:
		return m.OldStatus(ctx)
	case learner.FieldCurrentJobTitle:
		return m.OldCurrentJobTitle(ctx)
	case learner.FieldCurrentIndustry:
		return m.OldCurrentIndustry(ctx)
	case learner.FieldYearsExperience:
		return m.OldYearsExperience(ctx)
	case learner.FieldEducationLevel:
		return m.OldEducationLevel(ctx)
	case learner.FieldWeeklyStudyHours:
		return m.OldWeeklyStudyHours(ctx)
	case learner.FieldPreferredStudyTimes:
		return m.OldPreferredStudyTimes(ctx)
	case learner.FieldHasFamilyObligations:
		return m.OldHasFamilyObligations(ctx)
	case learner.FieldEmploymentStatus:
		return m.OldEmploymentStatus(ctx)
	case learner.FieldPreferredFormat:
		return m.OldPreferredFormat(ctx)
	case learner.FieldDisposition:
		return m.OldDisposition(ctx)
	case learner.FieldRiasecCode:
		return m.OldRiasecCode(ctx)
	case learner.FieldProfileComplete:
		return m.OldProfileComplete(ctx)
	case learner.FieldCurrentMode:
		return m.OldCurrentMode(ctx)
	case learner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learner.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Learner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learner.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learner.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case learner.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case learner.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case learner.FieldCurrentJobTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentJobTitle(v)
		return nil
	case learner.FieldCurrentIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIndustry(v)
		return nil
	case learner.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsExperience(v)
		return nil
	case learner.FieldEducationLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducationLevel(v)
		return nil
	case learner.FieldWeeklyStudyHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyStudyHours(v)
		return nil
	case learner.FieldPreferredStudyTimes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredStudyTimes(v)
		return nil
	case learner.FieldHasFamilyObligations:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasFamilyObligations(v)
		return nil
	case learner.FieldEmploymentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmploymentStatus(v)
		return nil
	case learner.FieldPreferredFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredFormat(v)
		return nil
	case learner.FieldDisposition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisposition(v)
		return nil
	case learner.FieldRiasecCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiasecCode(v)
		return nil
	case learner.FieldProfileComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileComplete(v)
		return nil
	case learner.FieldCurrentMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentMode(v)
		return nil
	case learner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learner.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMutation) AddedFields() []string {
	var fields []string
	if m.addyears_experience != nil {
		fields = append(fields, learner.FieldYearsExperience)
	}
	if m.addweekly_study_hours != nil {
		fields = append(fields, learner.FieldWeeklyStudyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldYearsExperience:
		return m.AddedYearsExperience()
	case learner.FieldWeeklyStudyHours:
		return m.AddedWeeklyStudyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learner.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsExperience(v)
		return nil
	case learner.FieldWeeklyStudyHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeeklyStudyHours(v)
		return nil
	}
	return fmt.Errorf("unknown Learner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Learner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMutation) ResetField(name string) error {
	switch name {
	case learner.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learner.FieldEmail:
		m.ResetEmail()
		return nil
	case learner.FieldName:
		m.ResetName()
		return nil
	case learner.FieldStatus:
		m.ResetStatus()
		return nil
	case learner.FieldCurrentJobTitle:
		m.ResetCurrentJobTitle()
		return nil
	case learner.FieldCurrentIndustry:
		m.ResetCurrentIndustry()
		return nil
	case learner.FieldYearsExperience:
		m.ResetYearsExperience()
		return nil
	case learner.FieldEducationLevel:
		m.ResetEducationLevel()
		return nil
	case learner.FieldWeeklyStudyHours:
		m.ResetWeeklyStudyHours()
		return nil
	case learner.FieldPreferredStudyTimes:
		m.ResetPreferredStudyTimes()
		return nil
	case learner.FieldHasFamilyObligations:
		m.ResetHasFamilyObligations()
		return nil
	case learner.FieldEmploymentStatus:
		m.ResetEmploymentStatus()
		return nil
	case learner.FieldPreferredFormat:
		m.ResetPreferredFormat()
		return nil
	case learner.FieldDisposition:
		m.ResetDisposition()
		return nil
	case learner.FieldRiasecCode:
		m.ResetRiasecCode()
		return nil
	case learner.FieldProfileComplete:
		m.ResetProfileComplete()
		return nil
	case learner.FieldCurrentMode:
		m.ResetCurrentMode()
		return nil
	case learner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learner.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Learner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Learner edge %s", name)
}

// LearnerSkillMutation represents an operation that mutates the LearnerSkill nodes in the graph.
type LearnerSkillMutation struct {
	config
	op                Op
	typ               string
	id                *int
	skill_id          *string
	learner_id        *string
	skill_name        *string
	proficiency_level *string
	evidence_source   *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*LearnerSkill, error)
	predicates        []predicate.LearnerSkill
}

var _ ent.Mutation = (*LearnerSkillMutation)(nil)

// learnerskillOption allows management of the mutation configuration using functional options.
type learnerskillOption func(*LearnerSkillMutation)

// newLearnerSkillMutation creates new mutation for the LearnerSkill entity.
func newLearnerSkillMutation(c config, op Op, opts ...learnerskillOption) *LearnerSkillMutation {
	m := &LearnerSkillMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerSkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerSkillID sets the ID field of the mutation.
func withLearnerSkillID(id int) learnerskillOption {
	return func(m *LearnerSkillMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerSkill
		)
		m.oldValue = func(ctx context.Context) (*LearnerSkill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerSkill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerSkill sets the old LearnerSkill of the mutation.
func withLearnerSkill(node *LearnerSkill) learnerskillOption {
	return func(m *LearnerSkillMutation) {
		m.oldValue = func(context.Context) (*LearnerSkill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerSkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerSkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerSkillMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerSkillMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerSkill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *LearnerSkillMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *LearnerSkillMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the LearnerSkill entity.
// If the LearnerSkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSkillMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *LearnerSkillMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerSkillMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerSkillMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LearnerSkill entity.
// If the LearnerSkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSkillMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerSkillMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetSkillName sets the "skill_name" field.
func (m *LearnerSkillMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *LearnerSkillMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the LearnerSkill entity.
// If the LearnerSkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSkillMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *LearnerSkillMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (m *LearnerSkillMutation) SetProficiencyLevel(s string) {
	m.proficiency_level = &s
}

// ProficiencyLevel returns the value of the "proficiency_level" field in the mutation.
func (m *LearnerSkillMutation) ProficiencyLevel() (r string, exists bool) {
	v := m.proficiency_level
	if v == nil {
		return
	}
	return *v, true
}

// OldProficiencyLevel returns the old "proficiency_level" field's value of the LearnerSkill entity.
// If the LearnerSkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSkillMutation) OldProficiencyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProficiencyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProficiencyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProficiencyLevel: %w", err)
	}
	return oldValue.ProficiencyLevel, nil
}

// ResetProficiencyLevel resets all changes to the "proficiency_level" field.
func (m *LearnerSkillMutation) ResetProficiencyLevel() {
	m.proficiency_level = nil
}

// SetEvidenceSource sets the "evidence_source" field.
func (m *LearnerSkillMutation) SetEvidenceSource(s string) {
	m.evidence_source = &s
}

// EvidenceSource returns the value of the "evidence_source" field in the mutation.
func (m *LearnerSkillMutation) EvidenceSource() (r string, exists bool) {
	v := m.evidence_source
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceSource returns the old "evidence_source" field's value of the LearnerSkill entity.
// If the LearnerSkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSkillMutation) OldEvidenceSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceSource: %w", err)
	}
	return oldValue.EvidenceSource, nil
}

// ResetEvidenceSource resets all changes to the "evidence_source" field.
func (m *LearnerSkillMutation) ResetEvidenceSource() {
	m.evidence_source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerSkillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerSkillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnerSkill entity.
// If the LearnerSkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSkillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerSkillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearnerSkillMutation builder.
func (m *LearnerSkillMutation) Where(ps ...predicate.LearnerSkill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerSkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerSkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerSkill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerSkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerSkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerSkill).
func (m *LearnerSkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerSkillMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.skill_id != nil {
		fields = append(fields, learnerskill.FieldSkillID)
	}
	if m.learner_id != nil {
		fields = append(fields, learnerskill.FieldLearnerID)
	}
	if m.skill_name != nil {
		fields = append(fields, learnerskill.FieldSkillName)
	}
	if m.proficiency_level != nil {
		fields = append(fields, learnerskill.FieldProficiencyLevel)
	}
	if m.evidence_source != nil {
		fields = append(fields, learnerskill.FieldEvidenceSource)
	}
	if m.created_at != nil {
		fields = append(fields, learnerskill.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerSkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerskill.FieldSkillID:
		return m.SkillID()
	case learnerskill.FieldLearnerID:
		return m.LearnerID()
	case learnerskill.FieldSkillName:
		return m.SkillName()
	case learnerskill.FieldProficiencyLevel:
		return m.ProficiencyLevel()
	case learnerskill.FieldEvidenceSource:
		return m.EvidenceSource()
	case learnerskill.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerSkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerskill.FieldSkillID:
		return m.OldSkillID(ctx)
	case learnerskill.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learnerskill.FieldSkillName:
		return m.OldSkillName(ctx)
	case learnerskill.FieldProficiencyLevel:
		return m.OldProficiencyLevel(ctx)
	case learnerskill.FieldEvidenceSource:
		return m.OldEvidenceSource(ctx)
	case learnerskill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerSkill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerSkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerskill.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case learnerskill.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learnerskill.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case learnerskill.FieldProficiencyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProficiencyLevel(v)
		return nil
	case learnerskill.FieldEvidenceSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceSource(v)
		return nil
	case learnerskill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerSkill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerSkillMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerSkillMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerSkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LearnerSkill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerSkillMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerSkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerSkillMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearnerSkill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerSkillMutation) ResetField(name string) error {
	switch name {
	case learnerskill.FieldSkillID:
		m.ResetSkillID()
		return nil
	case learnerskill.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learnerskill.FieldSkillName:
		m.ResetSkillName()
		return nil
	case learnerskill.FieldProficiencyLevel:
		m.ResetProficiencyLevel()
		return nil
	case learnerskill.FieldEvidenceSource:
		m.ResetEvidenceSource()
		return nil
	case learnerskill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerSkill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerSkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerSkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerSkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerSkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerSkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerSkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerSkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerSkill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerSkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerSkill edge %s", name)
}

// ModeEventMutation represents an operation that mutates the ModeEvent nodes in the graph.
type ModeEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	learner_id    *string
	from_mode     *string
	to_mode       *string
	reason        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ModeEvent, error)
	predicates    []predicate.ModeEvent
}

var _ ent.Mutation = (*ModeEventMutation)(nil)

// modeeventOption allows management of the mutation configuration using functional options.
type modeeventOption func(*ModeEventMutation)

// newModeEventMutation creates new mutation for the ModeEvent entity.
func newModeEventMutation(c config, op Op, opts ...modeeventOption) *ModeEventMutation {
	m := &ModeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeModeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModeEventID sets the ID field of the mutation.
func withModeEventID(id int) modeeventOption {
	return func(m *ModeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ModeEvent
		)
		m.oldValue = func(ctx context.Context) (*ModeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModeEvent sets the old ModeEvent of the mutation.
func withModeEvent(node *ModeEvent) modeeventOption {
	return func(m *ModeEventMutation) {
		m.oldValue = func(context.Context) (*ModeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ModeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ModeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ModeEvent entity.
// If the ModeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ModeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ModeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ModeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ModeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ModeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ModeEvent entity.
// If the ModeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ModeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ModeEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ModeEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ModeEvent entity.
// If the ModeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ModeEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetFromMode sets the "from_mode" field.
func (m *ModeEventMutation) SetFromMode(s string) {
	m.from_mode = &s
}

// FromMode returns the value of the "from_mode" field in the mutation.
func (m *ModeEventMutation) FromMode() (r string, exists bool) {
	v := m.from_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldFromMode returns the old "from_mode" field's value of the ModeEvent entity.
// If the ModeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeEventMutation) OldFromMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromMode: %w", err)
	}
	return oldValue.FromMode, nil
}

// ResetFromMode resets all changes to the "from_mode" field.
func (m *ModeEventMutation) ResetFromMode() {
	m.from_mode = nil
}

// SetToMode sets the "to_mode" field.
func (m *ModeEventMutation) SetToMode(s string) {
	m.to_mode = &s
}

// ToMode returns the value of the "to_mode" field in the mutation.
func (m *ModeEventMutation) ToMode() (r string, exists bool) {
	v := m.to_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldToMode returns the old "to_mode" field's value of the ModeEvent entity.
// If the ModeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeEventMutation) OldToMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToMode: %w", err)
	}
	return oldValue.ToMode, nil
}

// ResetToMode resets all changes to the "to_mode" field.
func (m *ModeEventMutation) ResetToMode() {
	m.to_mode = nil
}

// SetReason sets the "reason" field.
func (m *ModeEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ModeEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ModeEvent entity.
// If the ModeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *ModeEventMutation) ResetReason() {
	m.reason = nil
}

// Where appends a list predicates to the ModeEventMutation builder.
func (m *ModeEventMutation) Where(ps ...predicate.ModeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModeEvent).
func (m *ModeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModeEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, modeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, modeevent.FieldTimestamp)
	}
	if m.learner_id != nil {
		fields = append(fields, modeevent.FieldLearnerID)
	}
	if m.from_mode != nil {
		fields = append(fields, modeevent.FieldFromMode)
	}
	if m.to_mode != nil {
		fields = append(fields, modeevent.FieldToMode)
	}
	if m.reason != nil {
		fields = append(fields, modeevent.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modeevent.FieldSequence:
		return m.Sequence()
	case modeevent.FieldTimestamp:
		return m.Timestamp()
	case modeevent.FieldLearnerID:
		return m.LearnerID()
	case modeevent.FieldFromMode:
		return m.FromMode()
	case modeevent.FieldToMode:
		return m.ToMode()
	case modeevent.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modeevent.FieldSequence:
		return m.OldSequence(ctx)
	case modeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case modeevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case modeevent.FieldFromMode:
		return m.OldFromMode(ctx)
	case modeevent.FieldToMode:
		return m.OldToMode(ctx)
	case modeevent.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown ModeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case modeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case modeevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case modeevent.FieldFromMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromMode(v)
		return nil
	case modeevent.FieldToMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToMode(v)
		return nil
	case modeevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown ModeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, modeevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modeevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ModeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ModeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModeEventMutation) ResetField(name string) error {
	switch name {
	case modeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case modeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case modeevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case modeevent.FieldFromMode:
		m.ResetFromMode()
		return nil
	case modeevent.FieldToMode:
		m.ResetToMode()
		return nil
	case modeevent.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown ModeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModeEvent edge %s", name)
}

// PathwayMutation represents an operation that mutates the Pathway nodes in the graph.
type PathwayMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	pathway_id          *string
	learner_id          *string
	goal_id             *string
	status              *string
	total_skills        *int
	addtotal_skills     *int
	completed_skills    *int
	addcompleted_skills *int
	estimated_hours     *int
	addestimated_hours  *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Pathway, error)
	predicates          []predicate.Pathway
}

var _ ent.Mutation = (*PathwayMutation)(nil)

// pathwayOption allows management of the mutation configuration using functional options.
type pathwayOption func(*PathwayMutation)

// newPathwayMutation creates new mutation for the Pathway entity.
func newPathwayMutation(c config, op Op, opts ...pathwayOption) *PathwayMutation {
	m := &PathwayMutation{
		config:        c,
		op:            op,
		typ:           TypePathway,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathwayID sets the ID field of the mutation.
func withPathwayID(id int) pathwayOption {
	return func(m *PathwayMutation) {
		var (
			err   error
			once  sync.Once
			value *Pathway
		)
		m.oldValue = func(ctx context.Context) (*Pathway, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pathway.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathway sets the old Pathway of the mutation.
func withPathway(node *Pathway) pathwayOption {
	return func(m *PathwayMutation) {
		m.oldValue = func(context.Context) (*Pathway, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathwayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathwayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathwayMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathwayMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pathway.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPathwayID sets the "pathway_id" field.
func (m *PathwayMutation) SetPathwayID(s string) {
	m.pathway_id = &s
}

// PathwayID returns the value of the "pathway_id" field in the mutation.
func (m *PathwayMutation) PathwayID() (r string, exists bool) {
	v := m.pathway_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPathwayID returns the old "pathway_id" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldPathwayID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathwayID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathwayID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathwayID: %w", err)
	}
	return oldValue.PathwayID, nil
}

// ResetPathwayID resets all changes to the "pathway_id" field.
func (m *PathwayMutation) ResetPathwayID() {
	m.pathway_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *PathwayMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *PathwayMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *PathwayMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *PathwayMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *PathwayMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *PathwayMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetStatus sets the "status" field.
func (m *PathwayMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PathwayMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PathwayMutation) ResetStatus() {
	m.status = nil
}

// SetTotalSkills sets the "total_skills" field.
func (m *PathwayMutation) SetTotalSkills(i int) {
	m.total_skills = &i
	m.addtotal_skills = nil
}

// TotalSkills returns the value of the "total_skills" field in the mutation.
func (m *PathwayMutation) TotalSkills() (r int, exists bool) {
	v := m.total_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSkills returns the old "total_skills" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldTotalSkills(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSkills: %w", err)
	}
	return oldValue.TotalSkills, nil
}

// AddTotalSkills adds i to the "total_skills" field.
func (m *PathwayMutation) AddTotalSkills(i int) {
	if m.addtotal_skills != nil {
		*m.addtotal_skills += i
	} else {
		m.addtotal_skills = &i
	}
}

// AddedTotalSkills returns the value that was added to the "total_skills" field in this mutation.
func (m *PathwayMutation) AddedTotalSkills() (r int, exists bool) {
	v := m.addtotal_skills
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSkills resets all changes to the "total_skills" field.
func (m *PathwayMutation) ResetTotalSkills() {
	m.total_skills = nil
	m.addtotal_skills = nil
}

// SetCompletedSkills sets the "completed_skills" field.
func (m *PathwayMutation) SetCompletedSkills(i int) {
	m.completed_skills = &i
	m.addcompleted_skills = nil
}

// CompletedSkills returns the value of the "completed_skills" field in the mutation.
func (m *PathwayMutation) CompletedSkills() (r int, exists bool) {
	v := m.completed_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedSkills returns the old "completed_skills" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldCompletedSkills(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedSkills: %w", err)
	}
	return oldValue.CompletedSkills, nil
}

// AddCompletedSkills adds i to the "completed_skills" field.
func (m *PathwayMutation) AddCompletedSkills(i int) {
	if m.addcompleted_skills != nil {
		*m.addcompleted_skills += i
	} else {
		m.addcompleted_skills = &i
	}
}

// AddedCompletedSkills returns the value that was added to the "completed_skills" field in this mutation.
func (m *PathwayMutation) AddedCompletedSkills() (r int, exists bool) {
	v := m.addcompleted_skills
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedSkills resets all changes to the "completed_skills" field.
func (m *PathwayMutation) ResetCompletedSkills() {
	m.completed_skills = nil
	m.addcompleted_skills = nil
}

// SetEstimatedHours sets the "estimated_hours" field.
func (m *PathwayMutation) SetEstimatedHours(i int) {
	m.estimated_hours = &i
	m.addestimated_hours = nil
}

// EstimatedHours returns the value of the "estimated_hours" field in the mutation.
func (m *PathwayMutation) EstimatedHours() (r int, exists bool) {
	v := m.estimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedHours returns the old "estimated_hours" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldEstimatedHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedHours: %w", err)
	}
	return oldValue.EstimatedHours, nil
}

// AddEstimatedHours adds i to the "estimated_hours" field.
func (m *PathwayMutation) AddEstimatedHours(i int) {
	if m.addestimated_hours != nil {
		*m.addestimated_hours += i
	} else {
		m.addestimated_hours = &i
	}
}

// AddedEstimatedHours returns the value that was added to the "estimated_hours" field in this mutation.
func (m *PathwayMutation) AddedEstimatedHours() (r int, exists bool) {
	v := m.addestimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedHours resets all changes to the "estimated_hours" field.
func (m *PathwayMutation) ResetEstimatedHours() {
	m.estimated_hours = nil
	m.addestimated_hours = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PathwayMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PathwayMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pathway entity.
// If the Pathway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwayMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PathwayMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PathwayMutation builder.
func (m *PathwayMutation) Where(ps ...predicate.Pathway) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathwayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathwayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pathway, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathwayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathwayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pathway).
func (m *PathwayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathwayMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.pathway_id != nil {
		fields = append(fields, pathway.FieldPathwayID)
	}
	if m.learner_id != nil {
		fields = append(fields, pathway.FieldLearnerID)
	}
	if m.goal_id != nil {
		fields = append(fields, pathway.FieldGoalID)
	}
	if m.status != nil {
		fields = append(fields, pathway.FieldStatus)
	}
	if m.total_skills != nil {
		fields = append(fields, pathway.FieldTotalSkills)
	}
	if m.completed_skills != nil {
		fields = append(fields, pathway.FieldCompletedSkills)
	}
	if m.estimated_hours != nil {
		fields = append(fields, pathway.FieldEstimatedHours)
	}
	if m.created_at != nil {
		fields = append(fields, pathway.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathwayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathway.FieldPathwayID:
		return m.PathwayID()
	case pathway.FieldLearnerID:
		return m.LearnerID()
	case pathway.FieldGoalID:
		return m.GoalID()
	case pathway.FieldStatus:
		return m.Status()
	case pathway.FieldTotalSkills:
		return m.TotalSkills()
	case pathway.FieldCompletedSkills:
		return m.CompletedSkills()
	case pathway.FieldEstimatedHours:
		return m.EstimatedHours()
	case pathway.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathwayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathway.FieldPathwayID:
		return m.OldPathwayID(ctx)
	case pathway.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case pathway.FieldGoalID:
		return m.OldGoalID(ctx)
	case pathway.FieldStatus:
		return m.OldStatus(ctx)
	case pathway.FieldTotalSkills:
		return m.OldTotalSkills(ctx)
	case pathway.FieldCompletedSkills:
		return m.OldCompletedSkills(ctx)
	case pathway.FieldEstimatedHours:
		return m.OldEstimatedHours(ctx)
	case pathway.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pathway field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathwayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathway.FieldPathwayID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathwayID(v)
		return nil
	case pathway.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case pathway.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case pathway.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pathway.FieldTotalSkills:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSkills(v)
		return nil
	case pathway.FieldCompletedSkills:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedSkills(v)
		return nil
	case pathway.FieldEstimatedHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedHours(v)
		return nil
	case pathway.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pathway field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathwayMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_skills != nil {
		fields = append(fields, pathway.FieldTotalSkills)
	}
	if m.addcompleted_skills != nil {
		fields = append(fields, pathway.FieldCompletedSkills)
	}
	if m.addestimated_hours != nil {
		fields = append(fields, pathway.FieldEstimatedHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathwayMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pathway.FieldTotalSkills:
		return m.AddedTotalSkills()
	case pathway.FieldCompletedSkills:
		return m.AddedCompletedSkills()
	case pathway.FieldEstimatedHours:
		return m.AddedEstimatedHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathwayMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pathway.FieldTotalSkills:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSkills(v)
		return nil
	case pathway.FieldCompletedSkills:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedSkills(v)
		return nil
	case pathway.FieldEstimatedHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedHours(v)
		return nil
	}
	return fmt.Errorf("unknown Pathway numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathwayMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathwayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathwayMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Pathway nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathwayMutation) ResetField(name string) error {
	switch name {
	case pathway.FieldPathwayID:
		m.ResetPathwayID()
		return nil
	case pathway.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case pathway.FieldGoalID:
		m.ResetGoalID()
		return nil
	case pathway.FieldStatus:
		m.ResetStatus()
		return nil
	case pathway.FieldTotalSkills:
		m.ResetTotalSkills()
		return nil
	case pathway.FieldCompletedSkills:
		m.ResetCompletedSkills()
		return nil
	case pathway.FieldEstimatedHours:
		m.ResetEstimatedHours()
		return nil
	case pathway.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pathway field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathwayMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathwayMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathwayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathwayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathwayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathwayMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathwayMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Pathway unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathwayMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Pathway edge %s", name)
}

// PathwaySkillMutation represents an operation that mutates the PathwaySkill nodes in the graph.
type PathwaySkillMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	pathway_skill_id   *string
	pathway_id         *string
	skill_name         *string
	sequence_order     *int
	addsequence_order  *int
	status             *string
	estimated_hours    *int
	addestimated_hours *int
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PathwaySkill, error)
	predicates         []predicate.PathwaySkill
}

var _ ent.Mutation = (*PathwaySkillMutation)(nil)

// pathwayskillOption allows management of the mutation configuration using functional options.
type pathwayskillOption func(*PathwaySkillMutation)

// newPathwaySkillMutation creates new mutation for the PathwaySkill entity.
func newPathwaySkillMutation(c config, op Op, opts ...pathwayskillOption) *PathwaySkillMutation {
	m := &PathwaySkillMutation{
		config:        c,
		op:            op,
		typ:           TypePathwaySkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathwaySkillID sets the ID field of the mutation.
func withPathwaySkillID(id int) pathwayskillOption {
	return func(m *PathwaySkillMutation) {
		var (
			err   error
			once  sync.Once
			value *PathwaySkill
		)
		m.oldValue = func(ctx context.Context) (*PathwaySkill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathwaySkill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathwaySkill sets the old PathwaySkill of the mutation.
func withPathwaySkill(node *PathwaySkill) pathwayskillOption {
	return func(m *PathwaySkillMutation) {
		m.oldValue = func(context.Context) (*PathwaySkill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathwaySkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathwaySkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathwaySkillMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathwaySkillMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathwaySkill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPathwaySkillID sets the "pathway_skill_id" field.
func (m *PathwaySkillMutation) SetPathwaySkillID(s string) {
	m.pathway_skill_id = &s
}

// PathwaySkillID returns the value of the "pathway_skill_id" field in the mutation.
func (m *PathwaySkillMutation) PathwaySkillID() (r string, exists bool) {
	v := m.pathway_skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPathwaySkillID returns the old "pathway_skill_id" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldPathwaySkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathwaySkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathwaySkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathwaySkillID: %w", err)
	}
	return oldValue.PathwaySkillID, nil
}

// ResetPathwaySkillID resets all changes to the "pathway_skill_id" field.
func (m *PathwaySkillMutation) ResetPathwaySkillID() {
	m.pathway_skill_id = nil
}

// SetPathwayID sets the "pathway_id" field.
func (m *PathwaySkillMutation) SetPathwayID(s string) {
	m.pathway_id = &s
}

// PathwayID returns the value of the "pathway_id" field in the mutation.
func (m *PathwaySkillMutation) PathwayID() (r string, exists bool) {
	v := m.pathway_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPathwayID returns the old "pathway_id" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldPathwayID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathwayID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathwayID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathwayID: %w", err)
	}
	return oldValue.PathwayID, nil
}

// ResetPathwayID resets all changes to the "pathway_id" field.
func (m *PathwaySkillMutation) ResetPathwayID() {
	m.pathway_id = nil
}

// SetSkillName sets the "skill_name" field.
func (m *PathwaySkillMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *PathwaySkillMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *PathwaySkillMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetSequenceOrder sets the "sequence_order" field.
func (m *PathwaySkillMutation) SetSequenceOrder(i int) {
	m.sequence_order = &i
	m.addsequence_order = nil
}

// SequenceOrder returns the value of the "sequence_order" field in the mutation.
func (m *PathwaySkillMutation) SequenceOrder() (r int, exists bool) {
	v := m.sequence_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceOrder returns the old "sequence_order" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldSequenceOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceOrder: %w", err)
	}
	return oldValue.SequenceOrder, nil
}

// AddSequenceOrder adds i to the "sequence_order" field.
func (m *PathwaySkillMutation) AddSequenceOrder(i int) {
	if m.addsequence_order != nil {
		*m.addsequence_order += i
	} else {
		m.addsequence_order = &i
	}
}

// AddedSequenceOrder returns the value that was added to the "sequence_order" field in this mutation.
func (m *PathwaySkillMutation) AddedSequenceOrder() (r int, exists bool) {
	v := m.addsequence_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceOrder resets all changes to the "sequence_order" field.
func (m *PathwaySkillMutation) ResetSequenceOrder() {
	m.sequence_order = nil
	m.addsequence_order = nil
}

// SetStatus sets the "status" field.
func (m *PathwaySkillMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PathwaySkillMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PathwaySkillMutation) ResetStatus() {
	m.status = nil
}

// SetEstimatedHours sets the "estimated_hours" field.
func (m *PathwaySkillMutation) SetEstimatedHours(i int) {
	m.estimated_hours = &i
	m.addestimated_hours = nil
}

// EstimatedHours returns the value of the "estimated_hours" field in the mutation.
func (m *PathwaySkillMutation) EstimatedHours() (r int, exists bool) {
	v := m.estimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedHours returns the old "estimated_hours" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldEstimatedHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedHours: %w", err)
	}
	return oldValue.EstimatedHours, nil
}

// AddEstimatedHours adds i to the "estimated_hours" field.
func (m *PathwaySkillMutation) AddEstimatedHours(i int) {
	if m.addestimated_hours != nil {
		*m.addestimated_hours += i
	} else {
		m.addestimated_hours = &i
	}
}

// AddedEstimatedHours returns the value that was added to the "estimated_hours" field in this mutation.
func (m *PathwaySkillMutation) AddedEstimatedHours() (r int, exists bool) {
	v := m.addestimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedHours resets all changes to the "estimated_hours" field.
func (m *PathwaySkillMutation) ResetEstimatedHours() {
	m.estimated_hours = nil
	m.addestimated_hours = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PathwaySkillMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PathwaySkillMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PathwaySkillMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pathwayskill.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PathwaySkillMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pathwayskill.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PathwaySkillMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pathwayskill.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PathwaySkillMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PathwaySkillMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PathwaySkill entity.
// If the PathwaySkill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathwaySkillMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PathwaySkillMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pathwayskill.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PathwaySkillMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pathwayskill.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PathwaySkillMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pathwayskill.FieldCompletedAt)
}

// Where appends a list predicates to the PathwaySkillMutation builder.
func (m *PathwaySkillMutation) Where(ps ...predicate.PathwaySkill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathwaySkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathwaySkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathwaySkill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathwaySkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathwaySkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathwaySkill).
func (m *PathwaySkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathwaySkillMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.pathway_skill_id != nil {
		fields = append(fields, pathwayskill.FieldPathwaySkillID)
	}
	if m.pathway_id != nil {
		fields = append(fields, pathwayskill.FieldPathwayID)
	}
	if m.skill_name != nil {
		fields = append(fields, pathwayskill.FieldSkillName)
	}
	if m.sequence_order != nil {
		fields = append(fields, pathwayskill.FieldSequenceOrder)
	}
	if m.status != nil {
		fields = append(fields, pathwayskill.FieldStatus)
	}
	if m.estimated_hours != nil {
		fields = append(fields, pathwayskill.FieldEstimatedHours)
	}
	if m.started_at != nil {
		fields = append(fields, pathwayskill.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pathwayskill.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathwaySkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathwayskill.FieldPathwaySkillID:
		return m.PathwaySkillID()
	case pathwayskill.FieldPathwayID:
		return m.PathwayID()
	case pathwayskill.FieldSkillName:
		return m.SkillName()
	case pathwayskill.FieldSequenceOrder:
		return m.SequenceOrder()
	case pathwayskill.FieldStatus:
		return m.Status()
	case pathwayskill.FieldEstimatedHours:
		return m.EstimatedHours()
	case pathwayskill.FieldStartedAt:
		return m.StartedAt()
	case pathwayskill.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathwaySkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathwayskill.FieldPathwaySkillID:
		return m.OldPathwaySkillID(ctx)
	case pathwayskill.FieldPathwayID:
		return m.OldPathwayID(ctx)
	case pathwayskill.FieldSkillName:
		return m.OldSkillName(ctx)
	case pathwayskill.FieldSequenceOrder:
		return m.OldSequenceOrder(ctx)
	case pathwayskill.FieldStatus:
		return m.OldStatus(ctx)
	case pathwayskill.FieldEstimatedHours:
		return m.OldEstimatedHours(ctx)
	case pathwayskill.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pathwayskill.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PathwaySkill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathwaySkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathwayskill.FieldPathwaySkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathwaySkillID(v)
		return nil
	case pathwayskill.FieldPathwayID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathwayID(v)
		return nil
	case pathwayskill.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case pathwayskill.FieldSequenceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceOrder(v)
		return nil
	case pathwayskill.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pathwayskill.FieldEstimatedHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedHours(v)
		return nil
	case pathwayskill.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pathwayskill.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PathwaySkill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathwaySkillMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_order != nil {
		fields = append(fields, pathwayskill.FieldSequenceOrder)
	}
	if m.addestimated_hours != nil {
		fields = append(fields, pathwayskill.FieldEstimatedHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathwaySkillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pathwayskill.FieldSequenceOrder:
		return m.AddedSequenceOrder()
	case pathwayskill.FieldEstimatedHours:
		return m.AddedEstimatedHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathwaySkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pathwayskill.FieldSequenceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceOrder(v)
		return nil
	case pathwayskill.FieldEstimatedHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedHours(v)
		return nil
	}
	return fmt.Errorf("unknown PathwaySkill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathwaySkillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pathwayskill.FieldStartedAt) {
		fields = append(fields, pathwayskill.FieldStartedAt)
	}
	if m.FieldCleared(pathwayskill.FieldCompletedAt) {
		fields = append(fields, pathwayskill.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathwaySkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathwaySkillMutation) ClearField(name string) error {
	switch name {
	case pathwayskill.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pathwayskill.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PathwaySkill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathwaySkillMutation) ResetField(name string) error {
	switch name {
	case pathwayskill.FieldPathwaySkillID:
		m.ResetPathwaySkillID()
		return nil
	case pathwayskill.FieldPathwayID:
		m.ResetPathwayID()
		return nil
	case pathwayskill.FieldSkillName:
		m.ResetSkillName()
		return nil
	case pathwayskill.FieldSequenceOrder:
		m.ResetSequenceOrder()
		return nil
	case pathwayskill.FieldStatus:
		m.ResetStatus()
		return nil
	case pathwayskill.FieldEstimatedHours:
		m.ResetEstimatedHours()
		return nil
	case pathwayskill.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pathwayskill.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PathwaySkill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathwaySkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathwaySkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathwaySkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathwaySkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathwaySkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathwaySkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathwaySkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PathwaySkill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathwaySkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PathwaySkill edge %s", name)
}

// SalaryRecordMutation represents an operation that mutates the SalaryRecord nodes in the graph.
type SalaryRecordMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	job_title              *string
	median_salary          *int
	addmedian_salary       *int
	market_demand          *string
	supply_demand_ratio    *float64
	addsupply_demand_ratio *float64
	riasec_code            *string
	recent_postings        *int
	addrecent_postings     *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*SalaryRecord, error)
	predicates             []predicate.SalaryRecord
}

var _ ent.Mutation = (*SalaryRecordMutation)(nil)

// salaryrecordOption allows management of the mutation configuration using functional options.
type salaryrecordOption func(*SalaryRecordMutation)

// newSalaryRecordMutation creates new mutation for the SalaryRecord entity.
func newSalaryRecordMutation(c config, op Op, opts ...salaryrecordOption) *SalaryRecordMutation {
	m := &SalaryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSalaryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSalaryRecordID sets the ID field of the mutation.
func withSalaryRecordID(id int) salaryrecordOption {
	return func(m *SalaryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SalaryRecord
		)
		m.oldValue = func(ctx context.Context) (*SalaryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SalaryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSalaryRecord sets the old SalaryRecord of the mutation.
func withSalaryRecord(node *SalaryRecord) salaryrecordOption {
	return func(m *SalaryRecordMutation) {
		m.oldValue = func(context.Context) (*SalaryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SalaryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SalaryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SalaryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SalaryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SalaryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobTitle sets the "job_title" field.
func (m *SalaryRecordMutation) SetJobTitle(s string) {
	m.job_title = &s
}

// JobTitle returns the value of the "job_title" field in the mutation.
func (m *SalaryRecordMutation) JobTitle() (r string, exists bool) {
	v := m.job_title
	if v == nil {
		return
	}
	return *v, true
}

// OldJobTitle returns the old "job_title" field's value of the SalaryRecord entity.
// If the SalaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalaryRecordMutation) OldJobTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobTitle: %w", err)
	}
	return oldValue.JobTitle, nil
}

// ResetJobTitle resets all changes to the "job_title" field.
func (m *SalaryRecordMutation) ResetJobTitle() {
	m.job_title = nil
}

// SetMedianSalary sets the "median_salary" field.
func (m *SalaryRecordMutation) SetMedianSalary(i int) {
	m.median_salary = &i
	m.addmedian_salary = nil
}

// MedianSalary returns the value of the "median_salary" field in the mutation.
func (m *SalaryRecordMutation) MedianSalary() (r int, exists bool) {
	v := m.median_salary
	if v == nil {
		return
	}
	return *v, true
}

// OldMedianSalary returns the old "median_salary" field's value of the SalaryRecord entity.
// If the SalaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalaryRecordMutation) OldMedianSalary(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedianSalary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedianSalary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedianSalary: %w", err)
	}
	return oldValue.MedianSalary, nil
}

// AddMedianSalary adds i to the "median_salary" field.
func (m *SalaryRecordMutation) AddMedianSalary(i int) {
	if m.addmedian_salary != nil {
		*m.addmedian_salary += i
	} else {
		m.addmedian_salary = &i
	}
}

// AddedMedianSalary returns the value that was added to the "median_salary" field in this mutation.
func (m *SalaryRecordMutation) AddedMedianSalary() (r int, exists bool) {
	v := m.addmedian_salary
	if v == nil {
		return
	}
	return *v, true
}

// ResetMedianSalary resets all changes to the "median_salary" field.
func (m *SalaryRecordMutation) ResetMedianSalary() {
	m.median_salary = nil
	m.addmedian_salary = nil
}

// SetMarketDemand sets the "market_demand" field.
func (m *SalaryRecordMutation) SetMarketDemand(s string) {
	m.market_demand = &s
}

// MarketDemand returns the value of the "market_demand" field in the mutation.
func (m *SalaryRecordMutation) MarketDemand() (r string, exists bool) {
	v := m.market_demand
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketDemand returns the old "market_demand" field's value of the SalaryRecord entity.
// If the SalaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalaryRecordMutation) OldMarketDemand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketDemand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketDemand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketDemand: %w", err)
	}
	return oldValue.MarketDemand, nil
}

// ResetMarketDemand resets all changes to the "market_demand" field.
func (m *SalaryRecordMutation) ResetMarketDemand() {
	m.market_demand = nil
}

// SetSupplyDemandRatio sets the "supply_demand_ratio" field.
func (m *SalaryRecordMutation) SetSupplyDemandRatio(f float64) {
	m.supply_demand_ratio = &f
	m.addsupply_demand_ratio = nil
}

// SupplyDemandRatio returns the value of the "supply_demand_ratio" field in the mutation.
func (m *SalaryRecordMutation) SupplyDemandRatio() (r float64, exists bool) {
	v := m.supply_demand_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplyDemandRatio returns the old "supply_demand_ratio" field's value of the SalaryRecord entity.
// If the SalaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalaryRecordMutation) OldSupplyDemandRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplyDemandRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplyDemandRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplyDemandRatio: %w", err)
	}
	return oldValue.SupplyDemandRatio, nil
}

// AddSupplyDemandRatio adds f to the "supply_demand_ratio" field.
func (m *SalaryRecordMutation) AddSupplyDemandRatio(f float64) {
	if m.addsupply_demand_ratio != nil {
		*m.addsupply_demand_ratio += f
	} else {
		m.addsupply_demand_ratio = &f
	}
}

// AddedSupplyDemandRatio returns the value that was added to the "supply_demand_ratio" field in this mutation.
func (m *SalaryRecordMutation) AddedSupplyDemandRatio() (r float64, exists bool) {
	v := m.addsupply_demand_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupplyDemandRatio resets all changes to the "supply_demand_ratio" field.
func (m *SalaryRecordMutation) ResetSupplyDemandRatio() {
	m.supply_demand_ratio = nil
	m.addsupply_demand_ratio = nil
}

// SetRiasecCode sets the "riasec_code" field.
func (m *SalaryRecordMutation) SetRiasecCode(s string) {
	m.riasec_code = &s
}

// RiasecCode returns the value of the "riasec_code" field in the mutation.
func (m *SalaryRecordMutation) RiasecCode() (r string, exists bool) {
	v := m.riasec_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRiasecCode returns the old "riasec_code" field's value of the SalaryRecord entity.
// If the SalaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalaryRecordMutation) OldRiasecCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiasecCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiasecCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiasecCode: %w", err)
	}
	return oldValue.RiasecCode, nil
}

// ResetRiasecCode resets all changes to the "riasec_code" field.
func (m *SalaryRecordMutation) ResetRiasecCode() {
	m.riasec_code = nil
}

// SetRecentPostings sets the "recent_postings" field.
func (m *SalaryRecordMutation) SetRecentPostings(i int) {
	m.recent_postings = &i
	m.addrecent_postings = nil
}

// RecentPostings returns the value of the "recent_postings" field in the mutation.
func (m *SalaryRecordMutation) RecentPostings() (r int, exists bool) {
	v := m.recent_postings
	if v == nil {
		return
	}
	return *v, true
}

// OldRecentPostings returns the old "recent_postings" field's value of the SalaryRecord entity.
// If the SalaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalaryRecordMutation) OldRecentPostings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecentPostings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecentPostings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecentPostings: %w", err)
	}
	return oldValue.RecentPostings, nil
}

// AddRecentPostings adds i to the "recent_postings" field.
func (m *SalaryRecordMutation) AddRecentPostings(i int) {
	if m.addrecent_postings != nil {
		*m.addrecent_postings += i
	} else {
		m.addrecent_postings = &i
	}
}

// AddedRecentPostings returns the value that was added to the "recent_postings" field in this mutation.
func (m *SalaryRecordMutation) AddedRecentPostings() (r int, exists bool) {
	v := m.addrecent_postings
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecentPostings resets all changes to the "recent_postings" field.
func (m *SalaryRecordMutation) ResetRecentPostings() {
	m.recent_postings = nil
	m.addrecent_postings = nil
}

// Where appends a list predicates to the SalaryRecordMutation builder.
func (m *SalaryRecordMutation) Where(ps ...predicate.SalaryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SalaryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SalaryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SalaryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SalaryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SalaryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SalaryRecord).
func (m *SalaryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SalaryRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job_title != nil {
		fields = append(fields, salaryrecord.FieldJobTitle)
	}
	if m.median_salary != nil {
		fields = append(fields, salaryrecord.FieldMedianSalary)
	}
	if m.market_demand != nil {
		fields = append(fields, salaryrecord.FieldMarketDemand)
	}
	if m.supply_demand_ratio != nil {
		fields = append(fields, salaryrecord.FieldSupplyDemandRatio)
	}
	if m.riasec_code != nil {
		fields = append(fields, salaryrecord.FieldRiasecCode)
	}
	if m.recent_postings != nil {
		fields = append(fields, salaryrecord.FieldRecentPostings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SalaryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case salaryrecord.FieldJobTitle:
		return m.JobTitle()
	case salaryrecord.FieldMedianSalary:
		return m.MedianSalary()
	case salaryrecord.FieldMarketDemand:
		return m.MarketDemand()
	case salaryrecord.FieldSupplyDemandRatio:
		return m.SupplyDemandRatio()
	case salaryrecord.FieldRiasecCode:
		return m.RiasecCode()
	case salaryrecord.FieldRecentPostings:
		return m.RecentPostings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SalaryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case salaryrecord.FieldJobTitle:
		return m.OldJobTitle(ctx)
	case salaryrecord.FieldMedianSalary:
		return m.OldMedianSalary(ctx)
	case salaryrecord.FieldMarketDemand:
		return m.OldMarketDemand(ctx)
	case salaryrecord.FieldSupplyDemandRatio:
		return m.OldSupplyDemandRatio(ctx)
	case salaryrecord.FieldRiasecCode:
		return m.OldRiasecCode(ctx)
	case salaryrecord.FieldRecentPostings:
		return m.OldRecentPostings(ctx)
	}
	return nil, fmt.Errorf("unknown SalaryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalaryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case salaryrecord.FieldJobTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobTitle(v)
		return nil
	case salaryrecord.FieldMedianSalary:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedianSalary(v)
		return nil
	case salaryrecord.FieldMarketDemand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketDemand(v)
		return nil
	case salaryrecord.FieldSupplyDemandRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplyDemandRatio(v)
		return nil
	case salaryrecord.FieldRiasecCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiasecCode(v)
		return nil
	case salaryrecord.FieldRecentPostings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecentPostings(v)
		return nil
	}
	return fmt.Errorf("unknown SalaryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SalaryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addmedian_salary != nil {
		fields = append(fields, salaryrecord.FieldMedianSalary)
	}
	if m.addsupply_demand_ratio != nil {
		fields = append(fields, salaryrecord.FieldSupplyDemandRatio)
	}
	if m.addrecent_postings != nil {
		fields = append(fields, salaryrecord.FieldRecentPostings)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SalaryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case salaryrecord.FieldMedianSalary:
		return m.AddedMedianSalary()
	case salaryrecord.FieldSupplyDemandRatio:
		return m.AddedSupplyDemandRatio()
	case salaryrecord.FieldRecentPostings:
		return m.AddedRecentPostings()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalaryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case salaryrecord.FieldMedianSalary:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMedianSalary(v)
		return nil
	case salaryrecord.FieldSupplyDemandRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplyDemandRatio(v)
		return nil
	case salaryrecord.FieldRecentPostings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecentPostings(v)
		return nil
	}
	return fmt.Errorf("unknown SalaryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SalaryRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SalaryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SalaryRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SalaryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SalaryRecordMutation) ResetField(name string) error {
	switch name {
	case salaryrecord.FieldJobTitle:
		m.ResetJobTitle()
		return nil
	case salaryrecord.FieldMedianSalary:
		m.ResetMedianSalary()
		return nil
	case salaryrecord.FieldMarketDemand:
		m.ResetMarketDemand()
		return nil
	case salaryrecord.FieldSupplyDemandRatio:
		m.ResetSupplyDemandRatio()
		return nil
	case salaryrecord.FieldRiasecCode:
		m.ResetRiasecCode()
		return nil
	case salaryrecord.FieldRecentPostings:
		m.ResetRecentPostings()
		return nil
	}
	return fmt.Errorf("unknown SalaryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SalaryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SalaryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SalaryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SalaryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SalaryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SalaryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SalaryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SalaryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SalaryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SalaryRecord edge %s", name)
}

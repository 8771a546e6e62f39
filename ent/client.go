// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/careerstu/careerstu/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/goal"
	"github.com/careerstu/careerstu/ent/jobrecord"
	"github.com/careerstu/careerstu/ent/learner"
	"github.com/careerstu/careerstu/ent/learnerskill"
	"github.com/careerstu/careerstu/ent/llmrequestevent"
	"github.com/careerstu/careerstu/ent/modeevent"
	"github.com/careerstu/careerstu/ent/pathway"
	"github.com/careerstu/careerstu/ent/pathwayskill"
	"github.com/careerstu/careerstu/ent/salaryrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Goal is the client for interacting with the Goal builders.
	Goal *GoalClient
	// JobRecord is the client for interacting with the JobRecord builders.
	JobRecord *JobRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Learner is the client for interacting with the Learner builders.
	Learner *LearnerClient
	// LearnerSkill is the client for interacting with the LearnerSkill builders.
	LearnerSkill *LearnerSkillClient
	// ModeEvent is the client for interacting with the ModeEvent builders.
	ModeEvent *ModeEventClient
	// Pathway is the client for interacting with the Pathway builders.
	Pathway *PathwayClient
	// PathwaySkill is the client for interacting with the PathwaySkill builders.
	PathwaySkill *PathwaySkillClient
	// SalaryRecord is the client for interacting with the SalaryRecord builders.
	SalaryRecord *SalaryRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Goal = NewGoalClient(c.config)
	c.JobRecord = NewJobRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Learner = NewLearnerClient(c.config)
	c.LearnerSkill = NewLearnerSkillClient(c.config)
	c.ModeEvent = NewModeEventClient(c.config)
	c.Pathway = NewPathwayClient(c.config)
	c.PathwaySkill = NewPathwaySkillClient(c.config)
	c.SalaryRecord = NewSalaryRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Goal:            NewGoalClient(cfg),
		JobRecord:       NewJobRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
		LearnerSkill:    NewLearnerSkillClient(cfg),
		ModeEvent:       NewModeEventClient(cfg),
		Pathway:         NewPathwayClient(cfg),
		PathwaySkill:    NewPathwaySkillClient(cfg),
		SalaryRecord:    NewSalaryRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Goal:            NewGoalClient(cfg),
		JobRecord:       NewJobRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
		LearnerSkill:    NewLearnerSkillClient(cfg),
		ModeEvent:       NewModeEventClient(cfg),
		Pathway:         NewPathwayClient(cfg),
		PathwaySkill:    NewPathwaySkillClient(cfg),
		SalaryRecord:    NewSalaryRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Goal.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Goal, c.JobRecord, c.LLMRequestEvent, c.Learner, c.LearnerSkill, c.ModeEvent,
		c.Pathway, c.PathwaySkill, c.SalaryRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Goal, c.JobRecord, c.LLMRequestEvent, c.Learner, c.LearnerSkill, c.ModeEvent,
		c.Pathway, c.PathwaySkill, c.SalaryRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GoalMutation:
		return c.Goal.mutate(ctx, m)
	case *JobRecordMutation:
		return c.JobRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearnerMutation:
		return c.Learner.mutate(ctx, m)
	case *LearnerSkillMutation:
		return c.LearnerSkill.mutate(ctx, m)
	case *ModeEventMutation:
		return c.ModeEvent.mutate(ctx, m)
	case *PathwayMutation:
		return c.Pathway.mutate(ctx, m)
	case *PathwaySkillMutation:
		return c.PathwaySkill.mutate(ctx, m)
	case *SalaryRecordMutation:
		return c.SalaryRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GoalClient is a client for the Goal schema.
type GoalClient struct {
	config
}

// NewGoalClient returns a client for the Goal from the given config.
func NewGoalClient(c config) *GoalClient {
	return &GoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `goal.Hooks(f(g(h())))`.
func (c *GoalClient) Use(hooks ...Hook) {
	c.hooks.Goal = append(c.hooks.Goal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `goal.Intercept(f(g(h())))`.
func (c *GoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Goal = append(c.inters.Goal, interceptors...)
}

// Create returns a builder for creating a Goal entity.
func (c *GoalClient) Create() *GoalCreate {
	mutation := newGoalMutation(c.config, OpCreate)
	return &GoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Goal entities.
func (c *GoalClient) CreateBulk(builders ...*GoalCreate) *GoalCreateBulk {
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GoalClient) MapCreateBulk(slice any, setFunc func(*GoalCreate, int)) *GoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GoalCreateBulk{err: fmt.Errorf("calling to GoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Goal.
func (c *GoalClient) Update() *GoalUpdate {
	mutation := newGoalMutation(c.config, OpUpdate)
	return &GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GoalClient) UpdateOne(_m *Goal) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoal(_m))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GoalClient) UpdateOneID(id int) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoalID(id))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Goal.
func (c *GoalClient) Delete() *GoalDelete {
	mutation := newGoalMutation(c.config, OpDelete)
	return &GoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GoalClient) DeleteOne(_m *Goal) *GoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GoalClient) DeleteOneID(id int) *GoalDeleteOne {
	builder := c.Delete().Where(goal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GoalDeleteOne{builder}
}

// Query returns a query builder for Goal.
func (c *GoalClient) Query() *GoalQuery {
	return &GoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a Goal entity by its id.
func (c *GoalClient) Get(ctx context.Context, id int) (*Goal, error) {
	return c.Query().Where(goal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GoalClient) GetX(ctx context.Context, id int) *Goal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GoalClient) Hooks() []Hook {
	return c.hooks.Goal
}

// Interceptors returns the client interceptors.
func (c *GoalClient) Interceptors() []Interceptor {
	return c.inters.Goal
}

func (c *GoalClient) mutate(ctx context.Context, m *GoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Goal mutation op: %q", m.Op())
	}
}

// JobRecordClient is a client for the JobRecord schema.
type JobRecordClient struct {
	config
}

// NewJobRecordClient returns a client for the JobRecord from the given config.
func NewJobRecordClient(c config) *JobRecordClient {
	return &JobRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobrecord.Hooks(f(g(h())))`.
func (c *JobRecordClient) Use(hooks ...Hook) {
	c.hooks.JobRecord = append(c.hooks.JobRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobrecord.Intercept(f(g(h())))`.
func (c *JobRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobRecord = append(c.inters.JobRecord, interceptors...)
}

// Create returns a builder for creating a JobRecord entity.
func (c *JobRecordClient) Create() *JobRecordCreate {
	mutation := newJobRecordMutation(c.config, OpCreate)
	return &JobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobRecord entities.
func (c *JobRecordClient) CreateBulk(builders ...*JobRecordCreate) *JobRecordCreateBulk {
	return &JobRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobRecordClient) MapCreateBulk(slice any, setFunc func(*JobRecordCreate, int)) *JobRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobRecordCreateBulk{err: fmt.Errorf("calling to JobRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobRecord.
func (c *JobRecordClient) Update() *JobRecordUpdate {
	mutation := newJobRecordMutation(c.config, OpUpdate)
	return &JobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobRecordClient) UpdateOne(_m *JobRecord) *JobRecordUpdateOne {
	mutation := newJobRecordMutation(c.config, OpUpdateOne, withJobRecord(_m))
	return &JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobRecordClient) UpdateOneID(id int) *JobRecordUpdateOne {
	mutation := newJobRecordMutation(c.config, OpUpdateOne, withJobRecordID(id))
	return &JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobRecord.
func (c *JobRecordClient) Delete() *JobRecordDelete {
	mutation := newJobRecordMutation(c.config, OpDelete)
	return &JobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobRecordClient) DeleteOne(_m *JobRecord) *JobRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobRecordClient) DeleteOneID(id int) *JobRecordDeleteOne {
	builder := c.Delete().Where(jobrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobRecordDeleteOne{builder}
}

// Query returns a query builder for JobRecord.
func (c *JobRecordClient) Query() *JobRecordQuery {
	return &JobRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a JobRecord entity by its id.
func (c *JobRecordClient) Get(ctx context.Context, id int) (*JobRecord, error) {
	return c.Query().Where(jobrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobRecordClient) GetX(ctx context.Context, id int) *JobRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobRecordClient) Hooks() []Hook {
	return c.hooks.JobRecord
}

// Interceptors returns the client interceptors.
func (c *JobRecordClient) Interceptors() []Interceptor {
	return c.inters.JobRecord
}

func (c *JobRecordClient) mutate(ctx context.Context, m *JobRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobRecord mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearnerClient is a client for the Learner schema.
type LearnerClient struct {
	config
}

// NewLearnerClient returns a client for the Learner from the given config.
func NewLearnerClient(c config) *LearnerClient {
	return &LearnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learner.Hooks(f(g(h())))`.
func (c *LearnerClient) Use(hooks ...Hook) {
	c.hooks.Learner = append(c.hooks.Learner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learner.Intercept(f(g(h())))`.
func (c *LearnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Learner = append(c.inters.Learner, interceptors...)
}

// Create returns a builder for creating a Learner entity.
func (c *LearnerClient) Create() *LearnerCreate {
	mutation := newLearnerMutation(c.config, OpCreate)
	return &LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Learner entities.
func (c *LearnerClient) CreateBulk(builders ...*LearnerCreate) *LearnerCreateBulk {
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerClient) MapCreateBulk(slice any, setFunc func(*LearnerCreate, int)) *LearnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerCreateBulk{err: fmt.Errorf("calling to LearnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Learner.
func (c *LearnerClient) Update() *LearnerUpdate {
	mutation := newLearnerMutation(c.config, OpUpdate)
	return &LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerClient) UpdateOne(_m *Learner) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearner(_m))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerClient) UpdateOneID(id int) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearnerID(id))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Learner.
func (c *LearnerClient) Delete() *LearnerDelete {
	mutation := newLearnerMutation(c.config, OpDelete)
	return &LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerClient) DeleteOne(_m *Learner) *LearnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerClient) DeleteOneID(id int) *LearnerDeleteOne {
	builder := c.Delete().Where(learner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerDeleteOne{builder}
}

// Query returns a query builder for Learner.
func (c *LearnerClient) Query() *LearnerQuery {
	return &LearnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearner},
		inters: c.Interceptors(),
	}
}

// Get returns a Learner entity by its id.
func (c *LearnerClient) Get(ctx context.Context, id int) (*Learner, error) {
	return c.Query().Where(learner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerClient) GetX(ctx context.Context, id int) *Learner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerClient) Hooks() []Hook {
	return c.hooks.Learner
}

// Interceptors returns the client interceptors.
func (c *LearnerClient) Interceptors() []Interceptor {
	return c.inters.Learner
}

func (c *LearnerClient) mutate(ctx context.Context, m *LearnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Learner mutation op: %q", m.Op())
	}
}

// LearnerSkillClient is a client for the LearnerSkill schema.
type LearnerSkillClient struct {
	config
}

// NewLearnerSkillClient returns a client for the LearnerSkill from the given config.
func NewLearnerSkillClient(c config) *LearnerSkillClient {
	return &LearnerSkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerskill.Hooks(f(g(h())))`.
func (c *LearnerSkillClient) Use(hooks ...Hook) {
	c.hooks.LearnerSkill = append(c.hooks.LearnerSkill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerskill.Intercept(f(g(h())))`.
func (c *LearnerSkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerSkill = append(c.inters.LearnerSkill, interceptors...)
}

// Create returns a builder for creating a LearnerSkill entity.
func (c *LearnerSkillClient) Create() *LearnerSkillCreate {
	mutation := newLearnerSkillMutation(c.config, OpCreate)
	return &LearnerSkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerSkill entities.
func (c *LearnerSkillClient) CreateBulk(builders ...*LearnerSkillCreate) *LearnerSkillCreateBulk {
	return &LearnerSkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerSkillClient) MapCreateBulk(slice any, setFunc func(*LearnerSkillCreate, int)) *LearnerSkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerSkillCreateBulk{err: fmt.Errorf("calling to LearnerSkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerSkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerSkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerSkill.
func (c *LearnerSkillClient) Update() *LearnerSkillUpdate {
	mutation := newLearnerSkillMutation(c.config, OpUpdate)
	return &LearnerSkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerSkillClient) UpdateOne(_m *LearnerSkill) *LearnerSkillUpdateOne {
	mutation := newLearnerSkillMutation(c.config, OpUpdateOne, withLearnerSkill(_m))
	return &LearnerSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerSkillClient) UpdateOneID(id int) *LearnerSkillUpdateOne {
	mutation := newLearnerSkillMutation(c.config, OpUpdateOne, withLearnerSkillID(id))
	return &LearnerSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerSkill.
func (c *LearnerSkillClient) Delete() *LearnerSkillDelete {
	mutation := newLearnerSkillMutation(c.config, OpDelete)
	return &LearnerSkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerSkillClient) DeleteOne(_m *LearnerSkill) *LearnerSkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerSkillClient) DeleteOneID(id int) *LearnerSkillDeleteOne {
	builder := c.Delete().Where(learnerskill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerSkillDeleteOne{builder}
}

// Query returns a query builder for LearnerSkill.
func (c *LearnerSkillClient) Query() *LearnerSkillQuery {
	return &LearnerSkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerSkill entity by its id.
func (c *LearnerSkillClient) Get(ctx context.Context, id int) (*LearnerSkill, error) {
	return c.Query().Where(learnerskill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerSkillClient) GetX(ctx context.Context, id int) *LearnerSkill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerSkillClient) Hooks() []Hook {
	return c.hooks.LearnerSkill
}

// Interceptors returns the client interceptors.
func (c *LearnerSkillClient) Interceptors() []Interceptor {
	return c.inters.LearnerSkill
}

func (c *LearnerSkillClient) mutate(ctx context.Context, m *LearnerSkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerSkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerSkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerSkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerSkill mutation op: %q", m.Op())
	}
}

// ModeEventClient is a client for the ModeEvent schema.
type ModeEventClient struct {
	config
}

// NewModeEventClient returns a client for the ModeEvent from the given config.
func NewModeEventClient(c config) *ModeEventClient {
	return &ModeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modeevent.Hooks(f(g(h())))`.
func (c *ModeEventClient) Use(hooks ...Hook) {
	c.hooks.ModeEvent = append(c.hooks.ModeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modeevent.Intercept(f(g(h())))`.
func (c *ModeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModeEvent = append(c.inters.ModeEvent, interceptors...)
}

// Create returns a builder for creating a ModeEvent entity.
func (c *ModeEventClient) Create() *ModeEventCreate {
	mutation := newModeEventMutation(c.config, OpCreate)
	return &ModeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModeEvent entities.
func (c *ModeEventClient) CreateBulk(builders ...*ModeEventCreate) *ModeEventCreateBulk {
	return &ModeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModeEventClient) MapCreateBulk(slice any, setFunc func(*ModeEventCreate, int)) *ModeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModeEventCreateBulk{err: fmt.Errorf("calling to ModeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModeEvent.
func (c *ModeEventClient) Update() *ModeEventUpdate {
	mutation := newModeEventMutation(c.config, OpUpdate)
	return &ModeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModeEventClient) UpdateOne(_m *ModeEvent) *ModeEventUpdateOne {
	mutation := newModeEventMutation(c.config, OpUpdateOne, withModeEvent(_m))
	return &ModeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModeEventClient) UpdateOneID(id int) *ModeEventUpdateOne {
	mutation := newModeEventMutation(c.config, OpUpdateOne, withModeEventID(id))
	return &ModeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModeEvent.
func (c *ModeEventClient) Delete() *ModeEventDelete {
	mutation := newModeEventMutation(c.config, OpDelete)
	return &ModeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModeEventClient) DeleteOne(_m *ModeEvent) *ModeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModeEventClient) DeleteOneID(id int) *ModeEventDeleteOne {
	builder := c.Delete().Where(modeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModeEventDeleteOne{builder}
}

// Query returns a query builder for ModeEvent.
func (c *ModeEventClient) Query() *ModeEventQuery {
	return &ModeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ModeEvent entity by its id.
func (c *ModeEventClient) Get(ctx context.Context, id int) (*ModeEvent, error) {
	return c.Query().Where(modeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModeEventClient) GetX(ctx context.Context, id int) *ModeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModeEventClient) Hooks() []Hook {
	return c.hooks.ModeEvent
}

// Interceptors returns the client interceptors.
func (c *ModeEventClient) Interceptors() []Interceptor {
	return c.inters.ModeEvent
}

func (c *ModeEventClient) mutate(ctx context.Context, m *ModeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModeEvent mutation op: %q", m.Op())
	}
}

// PathwayClient is a client for the Pathway schema.
type PathwayClient struct {
	config
}

// NewPathwayClient returns a client for the Pathway from the given config.
func NewPathwayClient(c config) *PathwayClient {
	return &PathwayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathway.Hooks(f(g(h())))`.
func (c *PathwayClient) Use(hooks ...Hook) {
	c.hooks.Pathway = append(c.hooks.Pathway, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathway.Intercept(f(g(h())))`.
func (c *PathwayClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pathway = append(c.inters.Pathway, interceptors...)
}

// Create returns a builder for creating a Pathway entity.
func (c *PathwayClient) Create() *PathwayCreate {
	mutation := newPathwayMutation(c.config, OpCreate)
	return &PathwayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pathway entities.
func (c *PathwayClient) CreateBulk(builders ...*PathwayCreate) *PathwayCreateBulk {
	return &PathwayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathwayClient) MapCreateBulk(slice any, setFunc func(*PathwayCreate, int)) *PathwayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathwayCreateBulk{err: fmt.Errorf("calling to PathwayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathwayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathwayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pathway.
func (c *PathwayClient) Update() *PathwayUpdate {
	mutation := newPathwayMutation(c.config, OpUpdate)
	return &PathwayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathwayClient) UpdateOne(_m *Pathway) *PathwayUpdateOne {
	mutation := newPathwayMutation(c.config, OpUpdateOne, withPathway(_m))
	return &PathwayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathwayClient) UpdateOneID(id int) *PathwayUpdateOne {
	mutation := newPathwayMutation(c.config, OpUpdateOne, withPathwayID(id))
	return &PathwayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pathway.
func (c *PathwayClient) Delete() *PathwayDelete {
	mutation := newPathwayMutation(c.config, OpDelete)
	return &PathwayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathwayClient) DeleteOne(_m *Pathway) *PathwayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathwayClient) DeleteOneID(id int) *PathwayDeleteOne {
	builder := c.Delete().Where(pathway.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathwayDeleteOne{builder}
}

// Query returns a query builder for Pathway.
func (c *PathwayClient) Query() *PathwayQuery {
	return &PathwayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathway},
		inters: c.Interceptors(),
	}
}

// Get returns a Pathway entity by its id.
func (c *PathwayClient) Get(ctx context.Context, id int) (*Pathway, error) {
	return c.Query().Where(pathway.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathwayClient) GetX(ctx context.Context, id int) *Pathway {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PathwayClient) Hooks() []Hook {
	return c.hooks.Pathway
}

// Interceptors returns the client interceptors.
func (c *PathwayClient) Interceptors() []Interceptor {
	return c.inters.Pathway
}

func (c *PathwayClient) mutate(ctx context.Context, m *PathwayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathwayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathwayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathwayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathwayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pathway mutation op: %q", m.Op())
	}
}

// PathwaySkillClient is a client for the PathwaySkill schema.
type PathwaySkillClient struct {
	config
}

// NewPathwaySkillClient returns a client for the PathwaySkill from the given config.
func NewPathwaySkillClient(c config) *PathwaySkillClient {
	return &PathwaySkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathwayskill.Hooks(f(g(h())))`.
func (c *PathwaySkillClient) Use(hooks ...Hook) {
	c.hooks.PathwaySkill = append(c.hooks.PathwaySkill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathwayskill.Intercept(f(g(h())))`.
func (c *PathwaySkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathwaySkill = append(c.inters.PathwaySkill, interceptors...)
}

// Create returns a builder for creating a PathwaySkill entity.
func (c *PathwaySkillClient) Create() *PathwaySkillCreate {
	mutation := newPathwaySkillMutation(c.config, OpCreate)
	return &PathwaySkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathwaySkill entities.
func (c *PathwaySkillClient) CreateBulk(builders ...*PathwaySkillCreate) *PathwaySkillCreateBulk {
	return &PathwaySkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathwaySkillClient) MapCreateBulk(slice any, setFunc func(*PathwaySkillCreate, int)) *PathwaySkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathwaySkillCreateBulk{err: fmt.Errorf("calling to PathwaySkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathwaySkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathwaySkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathwaySkill.
func (c *PathwaySkillClient) Update() *PathwaySkillUpdate {
	mutation := newPathwaySkillMutation(c.config, OpUpdate)
	return &PathwaySkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathwaySkillClient) UpdateOne(_m *PathwaySkill) *PathwaySkillUpdateOne {
	mutation := newPathwaySkillMutation(c.config, OpUpdateOne, withPathwaySkill(_m))
	return &PathwaySkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathwaySkillClient) UpdateOneID(id int) *PathwaySkillUpdateOne {
	mutation := newPathwaySkillMutation(c.config, OpUpdateOne, withPathwaySkillID(id))
	return &PathwaySkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathwaySkill.
func (c *PathwaySkillClient) Delete() *PathwaySkillDelete {
	mutation := newPathwaySkillMutation(c.config, OpDelete)
	return &PathwaySkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathwaySkillClient) DeleteOne(_m *PathwaySkill) *PathwaySkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathwaySkillClient) DeleteOneID(id int) *PathwaySkillDeleteOne {
	builder := c.Delete().Where(pathwayskill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathwaySkillDeleteOne{builder}
}

// Query returns a query builder for PathwaySkill.
func (c *PathwaySkillClient) Query() *PathwaySkillQuery {
	return &PathwaySkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathwaySkill},
		inters: c.Interceptors(),
	}
}

// Get returns a PathwaySkill entity by its id.
func (c *PathwaySkillClient) Get(ctx context.Context, id int) (*PathwaySkill, error) {
	return c.Query().Where(pathwayskill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathwaySkillClient) GetX(ctx context.Context, id int) *PathwaySkill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PathwaySkillClient) Hooks() []Hook {
	return c.hooks.PathwaySkill
}

// Interceptors returns the client interceptors.
func (c *PathwaySkillClient) Interceptors() []Interceptor {
	return c.inters.PathwaySkill
}

func (c *PathwaySkillClient) mutate(ctx context.Context, m *PathwaySkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathwaySkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathwaySkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathwaySkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathwaySkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathwaySkill mutation op: %q", m.Op())
	}
}

// SalaryRecordClient is a client for the SalaryRecord schema.
type SalaryRecordClient struct {
	config
}

// NewSalaryRecordClient returns a client for the SalaryRecord from the given config.
func NewSalaryRecordClient(c config) *SalaryRecordClient {
	return &SalaryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `salaryrecord.Hooks(f(g(h())))`.
func (c *SalaryRecordClient) Use(hooks ...Hook) {
	c.hooks.SalaryRecord = append(c.hooks.SalaryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `salaryrecord.Intercept(f(g(h())))`.
func (c *SalaryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SalaryRecord = append(c.inters.SalaryRecord, interceptors...)
}

// Create returns a builder for creating a SalaryRecord entity.
func (c *SalaryRecordClient) Create() *SalaryRecordCreate {
	mutation := newSalaryRecordMutation(c.config, OpCreate)
	return &SalaryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SalaryRecord entities.
func (c *SalaryRecordClient) CreateBulk(builders ...*SalaryRecordCreate) *SalaryRecordCreateBulk {
	return &SalaryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SalaryRecordClient) MapCreateBulk(slice any, setFunc func(*SalaryRecordCreate, int)) *SalaryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SalaryRecordCreateBulk{err: fmt.Errorf("calling to SalaryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SalaryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SalaryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SalaryRecord.
func (c *SalaryRecordClient) Update() *SalaryRecordUpdate {
	mutation := newSalaryRecordMutation(c.config, OpUpdate)
	return &SalaryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SalaryRecordClient) UpdateOne(_m *SalaryRecord) *SalaryRecordUpdateOne {
	mutation := newSalaryRecordMutation(c.config, OpUpdateOne, withSalaryRecord(_m))
	return &SalaryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SalaryRecordClient) UpdateOneID(id int) *SalaryRecordUpdateOne {
	mutation := newSalaryRecordMutation(c.config, OpUpdateOne, withSalaryRecordID(id))
	return &SalaryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SalaryRecord.
func (c *SalaryRecordClient) Delete() *SalaryRecordDelete {
	mutation := newSalaryRecordMutation(c.config, OpDelete)
	return &SalaryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SalaryRecordClient) DeleteOne(_m *SalaryRecord) *SalaryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SalaryRecordClient) DeleteOneID(id int) *SalaryRecordDeleteOne {
	builder := c.Delete().Where(salaryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SalaryRecordDeleteOne{builder}
}

// Query returns a query builder for SalaryRecord.
func (c *SalaryRecordClient) Query() *SalaryRecordQuery {
	return &SalaryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSalaryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SalaryRecord entity by its id.
func (c *SalaryRecordClient) Get(ctx context.Context, id int) (*SalaryRecord, error) {
	return c.Query().Where(salaryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SalaryRecordClient) GetX(ctx context.Context, id int) *SalaryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SalaryRecordClient) Hooks() []Hook {
	return c.hooks.SalaryRecord
}

// Interceptors returns the client interceptors.
func (c *SalaryRecordClient) Interceptors() []Interceptor {
	return c.inters.SalaryRecord
}

func (c *SalaryRecordClient) mutate(ctx context.Context, m *SalaryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SalaryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SalaryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SalaryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SalaryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SalaryRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Goal, JobRecord, LLMRequestEvent, Learner, LearnerSkill, ModeEvent, Pathway,
		PathwaySkill, SalaryRecord []ent.Hook
	}
	inters struct {
		Goal, JobRecord, LLMRequestEvent, Learner, LearnerSkill, ModeEvent, Pathway,
		PathwaySkill, SalaryRecord []ent.Interceptor
	}
)

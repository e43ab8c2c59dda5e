// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/eligius-health/eligius/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/eligius-health/eligius/ent/auditlog"
	"github.com/eligius-health/eligius/ent/checkpoint"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// CriteriaBatch is the client for interacting with the CriteriaBatch builders.
	CriteriaBatch *CriteriaBatchClient
	// Criterion is the client for interacting with the Criterion builders.
	Criterion *CriterionClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// OutboxEvent is the client for interacting with the OutboxEvent builders.
	OutboxEvent *OutboxEventClient
	// Protocol is the client for interacting with the Protocol builders.
	Protocol *ProtocolClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.CriteriaBatch = NewCriteriaBatchClient(c.config)
	c.Criterion = NewCriterionClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.OutboxEvent = NewOutboxEventClient(c.config)
	c.Protocol = NewProtocolClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		AuditLog:      NewAuditLogClient(cfg),
		Checkpoint:    NewCheckpointClient(cfg),
		CriteriaBatch: NewCriteriaBatchClient(cfg),
		Criterion:     NewCriterionClient(cfg),
		Entity:        NewEntityClient(cfg),
		OutboxEvent:   NewOutboxEventClient(cfg),
		Protocol:      NewProtocolClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AuditLog:      NewAuditLogClient(cfg),
		Checkpoint:    NewCheckpointClient(cfg),
		CriteriaBatch: NewCriteriaBatchClient(cfg),
		Criterion:     NewCriterionClient(cfg),
		Entity:        NewEntityClient(cfg),
		OutboxEvent:   NewOutboxEventClient(cfg),
		Protocol:      NewProtocolClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
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
		c.AuditLog, c.Checkpoint, c.CriteriaBatch, c.Criterion, c.Entity, c.OutboxEvent,
		c.Protocol,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.Checkpoint, c.CriteriaBatch, c.Criterion, c.Entity, c.OutboxEvent,
		c.Protocol,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *CriteriaBatchMutation:
		return c.CriteriaBatch.mutate(ctx, m)
	case *CriterionMutation:
		return c.Criterion.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *OutboxEventMutation:
		return c.OutboxEvent.mutate(ctx, m)
	case *ProtocolMutation:
		return c.Protocol.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id int) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id int) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id int) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id int) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// CriteriaBatchClient is a client for the CriteriaBatch schema.
type CriteriaBatchClient struct {
	config
}

// NewCriteriaBatchClient returns a client for the CriteriaBatch from the given config.
func NewCriteriaBatchClient(c config) *CriteriaBatchClient {
	return &CriteriaBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `criteriabatch.Hooks(f(g(h())))`.
func (c *CriteriaBatchClient) Use(hooks ...Hook) {
	c.hooks.CriteriaBatch = append(c.hooks.CriteriaBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `criteriabatch.Intercept(f(g(h())))`.
func (c *CriteriaBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.CriteriaBatch = append(c.inters.CriteriaBatch, interceptors...)
}

// Create returns a builder for creating a CriteriaBatch entity.
func (c *CriteriaBatchClient) Create() *CriteriaBatchCreate {
	mutation := newCriteriaBatchMutation(c.config, OpCreate)
	return &CriteriaBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CriteriaBatch entities.
func (c *CriteriaBatchClient) CreateBulk(builders ...*CriteriaBatchCreate) *CriteriaBatchCreateBulk {
	return &CriteriaBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CriteriaBatchClient) MapCreateBulk(slice any, setFunc func(*CriteriaBatchCreate, int)) *CriteriaBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CriteriaBatchCreateBulk{err: fmt.Errorf("calling to CriteriaBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CriteriaBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CriteriaBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CriteriaBatch.
func (c *CriteriaBatchClient) Update() *CriteriaBatchUpdate {
	mutation := newCriteriaBatchMutation(c.config, OpUpdate)
	return &CriteriaBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CriteriaBatchClient) UpdateOne(_m *CriteriaBatch) *CriteriaBatchUpdateOne {
	mutation := newCriteriaBatchMutation(c.config, OpUpdateOne, withCriteriaBatch(_m))
	return &CriteriaBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CriteriaBatchClient) UpdateOneID(id string) *CriteriaBatchUpdateOne {
	mutation := newCriteriaBatchMutation(c.config, OpUpdateOne, withCriteriaBatchID(id))
	return &CriteriaBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CriteriaBatch.
func (c *CriteriaBatchClient) Delete() *CriteriaBatchDelete {
	mutation := newCriteriaBatchMutation(c.config, OpDelete)
	return &CriteriaBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CriteriaBatchClient) DeleteOne(_m *CriteriaBatch) *CriteriaBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CriteriaBatchClient) DeleteOneID(id string) *CriteriaBatchDeleteOne {
	builder := c.Delete().Where(criteriabatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CriteriaBatchDeleteOne{builder}
}

// Query returns a query builder for CriteriaBatch.
func (c *CriteriaBatchClient) Query() *CriteriaBatchQuery {
	return &CriteriaBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCriteriaBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a CriteriaBatch entity by its id.
func (c *CriteriaBatchClient) Get(ctx context.Context, id string) (*CriteriaBatch, error) {
	return c.Query().Where(criteriabatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CriteriaBatchClient) GetX(ctx context.Context, id string) *CriteriaBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProtocol queries the protocol edge of a CriteriaBatch.
func (c *CriteriaBatchClient) QueryProtocol(_m *CriteriaBatch) *ProtocolQuery {
	query := (&ProtocolClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(criteriabatch.Table, criteriabatch.FieldID, id),
			sqlgraph.To(protocol.Table, protocol.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, criteriabatch.ProtocolTable, criteriabatch.ProtocolColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCriteria queries the criteria edge of a CriteriaBatch.
func (c *CriteriaBatchClient) QueryCriteria(_m *CriteriaBatch) *CriterionQuery {
	query := (&CriterionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(criteriabatch.Table, criteriabatch.FieldID, id),
			sqlgraph.To(criterion.Table, criterion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, criteriabatch.CriteriaTable, criteriabatch.CriteriaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CriteriaBatchClient) Hooks() []Hook {
	return c.hooks.CriteriaBatch
}

// Interceptors returns the client interceptors.
func (c *CriteriaBatchClient) Interceptors() []Interceptor {
	return c.inters.CriteriaBatch
}

func (c *CriteriaBatchClient) mutate(ctx context.Context, m *CriteriaBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CriteriaBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CriteriaBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CriteriaBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CriteriaBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CriteriaBatch mutation op: %q", m.Op())
	}
}

// CriterionClient is a client for the Criterion schema.
type CriterionClient struct {
	config
}

// NewCriterionClient returns a client for the Criterion from the given config.
func NewCriterionClient(c config) *CriterionClient {
	return &CriterionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `criterion.Hooks(f(g(h())))`.
func (c *CriterionClient) Use(hooks ...Hook) {
	c.hooks.Criterion = append(c.hooks.Criterion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `criterion.Intercept(f(g(h())))`.
func (c *CriterionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Criterion = append(c.inters.Criterion, interceptors...)
}

// Create returns a builder for creating a Criterion entity.
func (c *CriterionClient) Create() *CriterionCreate {
	mutation := newCriterionMutation(c.config, OpCreate)
	return &CriterionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Criterion entities.
func (c *CriterionClient) CreateBulk(builders ...*CriterionCreate) *CriterionCreateBulk {
	return &CriterionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CriterionClient) MapCreateBulk(slice any, setFunc func(*CriterionCreate, int)) *CriterionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CriterionCreateBulk{err: fmt.Errorf("calling to CriterionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CriterionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CriterionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Criterion.
func (c *CriterionClient) Update() *CriterionUpdate {
	mutation := newCriterionMutation(c.config, OpUpdate)
	return &CriterionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CriterionClient) UpdateOne(_m *Criterion) *CriterionUpdateOne {
	mutation := newCriterionMutation(c.config, OpUpdateOne, withCriterion(_m))
	return &CriterionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CriterionClient) UpdateOneID(id string) *CriterionUpdateOne {
	mutation := newCriterionMutation(c.config, OpUpdateOne, withCriterionID(id))
	return &CriterionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Criterion.
func (c *CriterionClient) Delete() *CriterionDelete {
	mutation := newCriterionMutation(c.config, OpDelete)
	return &CriterionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CriterionClient) DeleteOne(_m *Criterion) *CriterionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CriterionClient) DeleteOneID(id string) *CriterionDeleteOne {
	builder := c.Delete().Where(criterion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CriterionDeleteOne{builder}
}

// Query returns a query builder for Criterion.
func (c *CriterionClient) Query() *CriterionQuery {
	return &CriterionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCriterion},
		inters: c.Interceptors(),
	}
}

// Get returns a Criterion entity by its id.
func (c *CriterionClient) Get(ctx context.Context, id string) (*Criterion, error) {
	return c.Query().Where(criterion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CriterionClient) GetX(ctx context.Context, id string) *Criterion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatch queries the batch edge of a Criterion.
func (c *CriterionClient) QueryBatch(_m *Criterion) *CriteriaBatchQuery {
	query := (&CriteriaBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(criterion.Table, criterion.FieldID, id),
			sqlgraph.To(criteriabatch.Table, criteriabatch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, criterion.BatchTable, criterion.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntities queries the entities edge of a Criterion.
func (c *CriterionClient) QueryEntities(_m *Criterion) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(criterion.Table, criterion.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, criterion.EntitiesTable, criterion.EntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CriterionClient) Hooks() []Hook {
	return c.hooks.Criterion
}

// Interceptors returns the client interceptors.
func (c *CriterionClient) Interceptors() []Interceptor {
	return c.inters.Criterion
}

func (c *CriterionClient) mutate(ctx context.Context, m *CriterionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CriterionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CriterionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CriterionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CriterionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Criterion mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCriterion queries the criterion edge of a Entity.
func (c *EntityClient) QueryCriterion(_m *Entity) *CriterionQuery {
	query := (&CriterionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(criterion.Table, criterion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.CriterionTable, entity.CriterionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// OutboxEventClient is a client for the OutboxEvent schema.
type OutboxEventClient struct {
	config
}

// NewOutboxEventClient returns a client for the OutboxEvent from the given config.
func NewOutboxEventClient(c config) *OutboxEventClient {
	return &OutboxEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxevent.Hooks(f(g(h())))`.
func (c *OutboxEventClient) Use(hooks ...Hook) {
	c.hooks.OutboxEvent = append(c.hooks.OutboxEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxevent.Intercept(f(g(h())))`.
func (c *OutboxEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEvent = append(c.inters.OutboxEvent, interceptors...)
}

// Create returns a builder for creating a OutboxEvent entity.
func (c *OutboxEventClient) Create() *OutboxEventCreate {
	mutation := newOutboxEventMutation(c.config, OpCreate)
	return &OutboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEvent entities.
func (c *OutboxEventClient) CreateBulk(builders ...*OutboxEventCreate) *OutboxEventCreateBulk {
	return &OutboxEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEventClient) MapCreateBulk(slice any, setFunc func(*OutboxEventCreate, int)) *OutboxEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEventCreateBulk{err: fmt.Errorf("calling to OutboxEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEvent.
func (c *OutboxEventClient) Update() *OutboxEventUpdate {
	mutation := newOutboxEventMutation(c.config, OpUpdate)
	return &OutboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEventClient) UpdateOne(_m *OutboxEvent) *OutboxEventUpdateOne {
	mutation := newOutboxEventMutation(c.config, OpUpdateOne, withOutboxEvent(_m))
	return &OutboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEventClient) UpdateOneID(id string) *OutboxEventUpdateOne {
	mutation := newOutboxEventMutation(c.config, OpUpdateOne, withOutboxEventID(id))
	return &OutboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEvent.
func (c *OutboxEventClient) Delete() *OutboxEventDelete {
	mutation := newOutboxEventMutation(c.config, OpDelete)
	return &OutboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEventClient) DeleteOne(_m *OutboxEvent) *OutboxEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEventClient) DeleteOneID(id string) *OutboxEventDeleteOne {
	builder := c.Delete().Where(outboxevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEventDeleteOne{builder}
}

// Query returns a query builder for OutboxEvent.
func (c *OutboxEventClient) Query() *OutboxEventQuery {
	return &OutboxEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEvent entity by its id.
func (c *OutboxEventClient) Get(ctx context.Context, id string) (*OutboxEvent, error) {
	return c.Query().Where(outboxevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEventClient) GetX(ctx context.Context, id string) *OutboxEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEventClient) Hooks() []Hook {
	return c.hooks.OutboxEvent
}

// Interceptors returns the client interceptors.
func (c *OutboxEventClient) Interceptors() []Interceptor {
	return c.inters.OutboxEvent
}

func (c *OutboxEventClient) mutate(ctx context.Context, m *OutboxEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEvent mutation op: %q", m.Op())
	}
}

// ProtocolClient is a client for the Protocol schema.
type ProtocolClient struct {
	config
}

// NewProtocolClient returns a client for the Protocol from the given config.
func NewProtocolClient(c config) *ProtocolClient {
	return &ProtocolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `protocol.Hooks(f(g(h())))`.
func (c *ProtocolClient) Use(hooks ...Hook) {
	c.hooks.Protocol = append(c.hooks.Protocol, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `protocol.Intercept(f(g(h())))`.
func (c *ProtocolClient) Intercept(interceptors ...Interceptor) {
	c.inters.Protocol = append(c.inters.Protocol, interceptors...)
}

// Create returns a builder for creating a Protocol entity.
func (c *ProtocolClient) Create() *ProtocolCreate {
	mutation := newProtocolMutation(c.config, OpCreate)
	return &ProtocolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Protocol entities.
func (c *ProtocolClient) CreateBulk(builders ...*ProtocolCreate) *ProtocolCreateBulk {
	return &ProtocolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProtocolClient) MapCreateBulk(slice any, setFunc func(*ProtocolCreate, int)) *ProtocolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProtocolCreateBulk{err: fmt.Errorf("calling to ProtocolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProtocolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProtocolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Protocol.
func (c *ProtocolClient) Update() *ProtocolUpdate {
	mutation := newProtocolMutation(c.config, OpUpdate)
	return &ProtocolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProtocolClient) UpdateOne(_m *Protocol) *ProtocolUpdateOne {
	mutation := newProtocolMutation(c.config, OpUpdateOne, withProtocol(_m))
	return &ProtocolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProtocolClient) UpdateOneID(id string) *ProtocolUpdateOne {
	mutation := newProtocolMutation(c.config, OpUpdateOne, withProtocolID(id))
	return &ProtocolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Protocol.
func (c *ProtocolClient) Delete() *ProtocolDelete {
	mutation := newProtocolMutation(c.config, OpDelete)
	return &ProtocolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProtocolClient) DeleteOne(_m *Protocol) *ProtocolDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProtocolClient) DeleteOneID(id string) *ProtocolDeleteOne {
	builder := c.Delete().Where(protocol.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProtocolDeleteOne{builder}
}

// Query returns a query builder for Protocol.
func (c *ProtocolClient) Query() *ProtocolQuery {
	return &ProtocolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProtocol},
		inters: c.Interceptors(),
	}
}

// Get returns a Protocol entity by its id.
func (c *ProtocolClient) Get(ctx context.Context, id string) (*Protocol, error) {
	return c.Query().Where(protocol.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProtocolClient) GetX(ctx context.Context, id string) *Protocol {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatches queries the batches edge of a Protocol.
func (c *ProtocolClient) QueryBatches(_m *Protocol) *CriteriaBatchQuery {
	query := (&CriteriaBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(protocol.Table, protocol.FieldID, id),
			sqlgraph.To(criteriabatch.Table, criteriabatch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, protocol.BatchesTable, protocol.BatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProtocolClient) Hooks() []Hook {
	return c.hooks.Protocol
}

// Interceptors returns the client interceptors.
func (c *ProtocolClient) Interceptors() []Interceptor {
	return c.inters.Protocol
}

func (c *ProtocolClient) mutate(ctx context.Context, m *ProtocolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProtocolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProtocolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProtocolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProtocolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Protocol mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, Checkpoint, CriteriaBatch, Criterion, Entity, OutboxEvent,
		Protocol []ent.Hook
	}
	inters struct {
		AuditLog, Checkpoint, CriteriaBatch, Criterion, Entity, OutboxEvent,
		Protocol []ent.Interceptor
	}
)

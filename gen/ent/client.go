// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/pantryflow/receipt-ingest/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pantryflow/receipt-ingest/gen/ent/ingestjob"
	"github.com/pantryflow/receipt-ingest/gen/ent/receiptfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IngestJob is the client for interacting with the IngestJob builders.
	IngestJob *IngestJobClient
	// ReceiptFile is the client for interacting with the ReceiptFile builders.
	ReceiptFile *ReceiptFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IngestJob = NewIngestJobClient(c.config)
	c.ReceiptFile = NewReceiptFileClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		IngestJob:   NewIngestJobClient(cfg),
		ReceiptFile: NewReceiptFileClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		IngestJob:   NewIngestJobClient(cfg),
		ReceiptFile: NewReceiptFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IngestJob.
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
	c.IngestJob.Use(hooks...)
	c.ReceiptFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.IngestJob.Intercept(interceptors...)
	c.ReceiptFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IngestJobMutation:
		return c.IngestJob.mutate(ctx, m)
	case *ReceiptFileMutation:
		return c.ReceiptFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IngestJobClient is a client for the IngestJob schema.
type IngestJobClient struct {
	config
}

// NewIngestJobClient returns a client for the IngestJob from the given config.
func NewIngestJobClient(c config) *IngestJobClient {
	return &IngestJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestjob.Hooks(f(g(h())))`.
func (c *IngestJobClient) Use(hooks ...Hook) {
	c.hooks.IngestJob = append(c.hooks.IngestJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestjob.Intercept(f(g(h())))`.
func (c *IngestJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestJob = append(c.inters.IngestJob, interceptors...)
}

// Create returns a builder for creating a IngestJob entity.
func (c *IngestJobClient) Create() *IngestJobCreate {
	mutation := newIngestJobMutation(c.config, OpCreate)
	return &IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestJob entities.
func (c *IngestJobClient) CreateBulk(builders ...*IngestJobCreate) *IngestJobCreateBulk {
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestJobClient) MapCreateBulk(slice any, setFunc func(*IngestJobCreate, int)) *IngestJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestJobCreateBulk{err: fmt.Errorf("calling to IngestJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestJob.
func (c *IngestJobClient) Update() *IngestJobUpdate {
	mutation := newIngestJobMutation(c.config, OpUpdate)
	return &IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestJobClient) UpdateOne(_m *IngestJob) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJob(_m))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestJobClient) UpdateOneID(id uuid.UUID) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJobID(id))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestJob.
func (c *IngestJobClient) Delete() *IngestJobDelete {
	mutation := newIngestJobMutation(c.config, OpDelete)
	return &IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestJobClient) DeleteOne(_m *IngestJob) *IngestJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestJobClient) DeleteOneID(id uuid.UUID) *IngestJobDeleteOne {
	builder := c.Delete().Where(ingestjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestJobDeleteOne{builder}
}

// Query returns a query builder for IngestJob.
func (c *IngestJobClient) Query() *IngestJobQuery {
	return &IngestJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestJob},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestJob entity by its id.
func (c *IngestJobClient) Get(ctx context.Context, id uuid.UUID) (*IngestJob, error) {
	return c.Query().Where(ingestjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestJobClient) GetX(ctx context.Context, id uuid.UUID) *IngestJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a IngestJob.
func (c *IngestJobClient) QueryFile(_m *IngestJob) *ReceiptFileQuery {
	query := (&ReceiptFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ingestjob.Table, ingestjob.FieldID, id),
			sqlgraph.To(receiptfile.Table, receiptfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ingestjob.FileTable, ingestjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IngestJobClient) Hooks() []Hook {
	return c.hooks.IngestJob
}

// Interceptors returns the client interceptors.
func (c *IngestJobClient) Interceptors() []Interceptor {
	return c.inters.IngestJob
}

func (c *IngestJobClient) mutate(ctx context.Context, m *IngestJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestJob mutation op: %q", m.Op())
	}
}

// ReceiptFileClient is a client for the ReceiptFile schema.
type ReceiptFileClient struct {
	config
}

// NewReceiptFileClient returns a client for the ReceiptFile from the given config.
func NewReceiptFileClient(c config) *ReceiptFileClient {
	return &ReceiptFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiptfile.Hooks(f(g(h())))`.
func (c *ReceiptFileClient) Use(hooks ...Hook) {
	c.hooks.ReceiptFile = append(c.hooks.ReceiptFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiptfile.Intercept(f(g(h())))`.
func (c *ReceiptFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReceiptFile = append(c.inters.ReceiptFile, interceptors...)
}

// Create returns a builder for creating a ReceiptFile entity.
func (c *ReceiptFileClient) Create() *ReceiptFileCreate {
	mutation := newReceiptFileMutation(c.config, OpCreate)
	return &ReceiptFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReceiptFile entities.
func (c *ReceiptFileClient) CreateBulk(builders ...*ReceiptFileCreate) *ReceiptFileCreateBulk {
	return &ReceiptFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptFileClient) MapCreateBulk(slice any, setFunc func(*ReceiptFileCreate, int)) *ReceiptFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptFileCreateBulk{err: fmt.Errorf("calling to ReceiptFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptFile.
func (c *ReceiptFileClient) Update() *ReceiptFileUpdate {
	mutation := newReceiptFileMutation(c.config, OpUpdate)
	return &ReceiptFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptFileClient) UpdateOne(_m *ReceiptFile) *ReceiptFileUpdateOne {
	mutation := newReceiptFileMutation(c.config, OpUpdateOne, withReceiptFile(_m))
	return &ReceiptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptFileClient) UpdateOneID(id uuid.UUID) *ReceiptFileUpdateOne {
	mutation := newReceiptFileMutation(c.config, OpUpdateOne, withReceiptFileID(id))
	return &ReceiptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReceiptFile.
func (c *ReceiptFileClient) Delete() *ReceiptFileDelete {
	mutation := newReceiptFileMutation(c.config, OpDelete)
	return &ReceiptFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptFileClient) DeleteOne(_m *ReceiptFile) *ReceiptFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptFileClient) DeleteOneID(id uuid.UUID) *ReceiptFileDeleteOne {
	builder := c.Delete().Where(receiptfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptFileDeleteOne{builder}
}

// Query returns a query builder for ReceiptFile.
func (c *ReceiptFileClient) Query() *ReceiptFileQuery {
	return &ReceiptFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiptFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ReceiptFile entity by its id.
func (c *ReceiptFileClient) Get(ctx context.Context, id uuid.UUID) (*ReceiptFile, error) {
	return c.Query().Where(receiptfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptFileClient) GetX(ctx context.Context, id uuid.UUID) *ReceiptFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a ReceiptFile.
func (c *ReceiptFileClient) QueryJobs(_m *ReceiptFile) *IngestJobQuery {
	query := (&IngestJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptfile.Table, receiptfile.FieldID, id),
			sqlgraph.To(ingestjob.Table, ingestjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receiptfile.JobsTable, receiptfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptFileClient) Hooks() []Hook {
	return c.hooks.ReceiptFile
}

// Interceptors returns the client interceptors.
func (c *ReceiptFileClient) Interceptors() []Interceptor {
	return c.inters.ReceiptFile
}

func (c *ReceiptFileClient) mutate(ctx context.Context, m *ReceiptFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReceiptFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IngestJob, ReceiptFile []ent.Hook
	}
	inters struct {
		IngestJob, ReceiptFile []ent.Interceptor
	}
)

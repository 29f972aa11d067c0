// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/unithera/vialscan/gen/ent/dosedetail"
	"github.com/unithera/vialscan/gen/ent/scanjob"
	"github.com/unithera/vialscan/gen/ent/vial"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DoseDetail is the client for interacting with the DoseDetail builders.
	DoseDetail *DoseDetailClient
	// ScanJob is the client for interacting with the ScanJob builders.
	ScanJob *ScanJobClient
	// Vial is the client for interacting with the Vial builders.
	Vial *VialClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DoseDetail = NewDoseDetailClient(c.config)
	c.ScanJob = NewScanJobClient(c.config)
	c.Vial = NewVialClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		DoseDetail: NewDoseDetailClient(cfg),
		ScanJob:    NewScanJobClient(cfg),
		Vial:       NewVialClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		DoseDetail: NewDoseDetailClient(cfg),
		ScanJob:    NewScanJobClient(cfg),
		Vial:       NewVialClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DoseDetail.
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
	c.DoseDetail.Use(hooks...)
	c.ScanJob.Use(hooks...)
	c.Vial.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DoseDetail.Intercept(interceptors...)
	c.ScanJob.Intercept(interceptors...)
	c.Vial.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DoseDetailMutation:
		return c.DoseDetail.mutate(ctx, m)
	case *ScanJobMutation:
		return c.ScanJob.mutate(ctx, m)
	case *VialMutation:
		return c.Vial.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DoseDetailClient is a client for the DoseDetail schema.
type DoseDetailClient struct {
	config
}

// NewDoseDetailClient returns a client for the DoseDetail from the given config.
func NewDoseDetailClient(c config) *DoseDetailClient {
	return &DoseDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dosedetail.Hooks(f(g(h())))`.
func (c *DoseDetailClient) Use(hooks ...Hook) {
	c.hooks.DoseDetail = append(c.hooks.DoseDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dosedetail.Intercept(f(g(h())))`.
func (c *DoseDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoseDetail = append(c.inters.DoseDetail, interceptors...)
}

// Create returns a builder for creating a DoseDetail entity.
func (c *DoseDetailClient) Create() *DoseDetailCreate {
	mutation := newDoseDetailMutation(c.config, OpCreate)
	return &DoseDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoseDetail entities.
func (c *DoseDetailClient) CreateBulk(builders ...*DoseDetailCreate) *DoseDetailCreateBulk {
	return &DoseDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoseDetailClient) MapCreateBulk(slice any, setFunc func(*DoseDetailCreate, int)) *DoseDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoseDetailCreateBulk{err: fmt.Errorf("calling to DoseDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoseDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoseDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoseDetail.
func (c *DoseDetailClient) Update() *DoseDetailUpdate {
	mutation := newDoseDetailMutation(c.config, OpUpdate)
	return &DoseDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoseDetailClient) UpdateOne(_m *DoseDetail) *DoseDetailUpdateOne {
	mutation := newDoseDetailMutation(c.config, OpUpdateOne, withDoseDetail(_m))
	return &DoseDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoseDetailClient) UpdateOneID(id uuid.UUID) *DoseDetailUpdateOne {
	mutation := newDoseDetailMutation(c.config, OpUpdateOne, withDoseDetailID(id))
	return &DoseDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoseDetail.
func (c *DoseDetailClient) Delete() *DoseDetailDelete {
	mutation := newDoseDetailMutation(c.config, OpDelete)
	return &DoseDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoseDetailClient) DeleteOne(_m *DoseDetail) *DoseDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoseDetailClient) DeleteOneID(id uuid.UUID) *DoseDetailDeleteOne {
	builder := c.Delete().Where(dosedetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoseDetailDeleteOne{builder}
}

// Query returns a query builder for DoseDetail.
func (c *DoseDetailClient) Query() *DoseDetailQuery {
	return &DoseDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoseDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a DoseDetail entity by its id.
func (c *DoseDetailClient) Get(ctx context.Context, id uuid.UUID) (*DoseDetail, error) {
	return c.Query().Where(dosedetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoseDetailClient) GetX(ctx context.Context, id uuid.UUID) *DoseDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVial queries the vial edge of a DoseDetail.
func (c *DoseDetailClient) QueryVial(_m *DoseDetail) *VialQuery {
	query := (&VialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dosedetail.Table, dosedetail.FieldID, id),
			sqlgraph.To(vial.Table, vial.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dosedetail.VialTable, dosedetail.VialColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoseDetailClient) Hooks() []Hook {
	return c.hooks.DoseDetail
}

// Interceptors returns the client interceptors.
func (c *DoseDetailClient) Interceptors() []Interceptor {
	return c.inters.DoseDetail
}

func (c *DoseDetailClient) mutate(ctx context.Context, m *DoseDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoseDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoseDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoseDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoseDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DoseDetail mutation op: %q", m.Op())
	}
}

// ScanJobClient is a client for the ScanJob schema.
type ScanJobClient struct {
	config
}

// NewScanJobClient returns a client for the ScanJob from the given config.
func NewScanJobClient(c config) *ScanJobClient {
	return &ScanJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanjob.Hooks(f(g(h())))`.
func (c *ScanJobClient) Use(hooks ...Hook) {
	c.hooks.ScanJob = append(c.hooks.ScanJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanjob.Intercept(f(g(h())))`.
func (c *ScanJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanJob = append(c.inters.ScanJob, interceptors...)
}

// Create returns a builder for creating a ScanJob entity.
func (c *ScanJobClient) Create() *ScanJobCreate {
	mutation := newScanJobMutation(c.config, OpCreate)
	return &ScanJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanJob entities.
func (c *ScanJobClient) CreateBulk(builders ...*ScanJobCreate) *ScanJobCreateBulk {
	return &ScanJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanJobClient) MapCreateBulk(slice any, setFunc func(*ScanJobCreate, int)) *ScanJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanJobCreateBulk{err: fmt.Errorf("calling to ScanJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanJob.
func (c *ScanJobClient) Update() *ScanJobUpdate {
	mutation := newScanJobMutation(c.config, OpUpdate)
	return &ScanJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanJobClient) UpdateOne(_m *ScanJob) *ScanJobUpdateOne {
	mutation := newScanJobMutation(c.config, OpUpdateOne, withScanJob(_m))
	return &ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanJobClient) UpdateOneID(id uuid.UUID) *ScanJobUpdateOne {
	mutation := newScanJobMutation(c.config, OpUpdateOne, withScanJobID(id))
	return &ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanJob.
func (c *ScanJobClient) Delete() *ScanJobDelete {
	mutation := newScanJobMutation(c.config, OpDelete)
	return &ScanJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanJobClient) DeleteOne(_m *ScanJob) *ScanJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanJobClient) DeleteOneID(id uuid.UUID) *ScanJobDeleteOne {
	builder := c.Delete().Where(scanjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanJobDeleteOne{builder}
}

// Query returns a query builder for ScanJob.
func (c *ScanJobClient) Query() *ScanJobQuery {
	return &ScanJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanJob entity by its id.
func (c *ScanJobClient) Get(ctx context.Context, id uuid.UUID) (*ScanJob, error) {
	return c.Query().Where(scanjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanJobClient) GetX(ctx context.Context, id uuid.UUID) *ScanJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScanJobClient) Hooks() []Hook {
	return c.hooks.ScanJob
}

// Interceptors returns the client interceptors.
func (c *ScanJobClient) Interceptors() []Interceptor {
	return c.inters.ScanJob
}

func (c *ScanJobClient) mutate(ctx context.Context, m *ScanJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanJob mutation op: %q", m.Op())
	}
}

// VialClient is a client for the Vial schema.
type VialClient struct {
	config
}

// NewVialClient returns a client for the Vial from the given config.
func NewVialClient(c config) *VialClient {
	return &VialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vial.Hooks(f(g(h())))`.
func (c *VialClient) Use(hooks ...Hook) {
	c.hooks.Vial = append(c.hooks.Vial, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vial.Intercept(f(g(h())))`.
func (c *VialClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vial = append(c.inters.Vial, interceptors...)
}

// Create returns a builder for creating a Vial entity.
func (c *VialClient) Create() *VialCreate {
	mutation := newVialMutation(c.config, OpCreate)
	return &VialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vial entities.
func (c *VialClient) CreateBulk(builders ...*VialCreate) *VialCreateBulk {
	return &VialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VialClient) MapCreateBulk(slice any, setFunc func(*VialCreate, int)) *VialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VialCreateBulk{err: fmt.Errorf("calling to VialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vial.
func (c *VialClient) Update() *VialUpdate {
	mutation := newVialMutation(c.config, OpUpdate)
	return &VialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VialClient) UpdateOne(_m *Vial) *VialUpdateOne {
	mutation := newVialMutation(c.config, OpUpdateOne, withVial(_m))
	return &VialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VialClient) UpdateOneID(id uuid.UUID) *VialUpdateOne {
	mutation := newVialMutation(c.config, OpUpdateOne, withVialID(id))
	return &VialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vial.
func (c *VialClient) Delete() *VialDelete {
	mutation := newVialMutation(c.config, OpDelete)
	return &VialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VialClient) DeleteOne(_m *Vial) *VialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VialClient) DeleteOneID(id uuid.UUID) *VialDeleteOne {
	builder := c.Delete().Where(vial.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VialDeleteOne{builder}
}

// Query returns a query builder for Vial.
func (c *VialClient) Query() *VialQuery {
	return &VialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVial},
		inters: c.Interceptors(),
	}
}

// Get returns a Vial entity by its id.
func (c *VialClient) Get(ctx context.Context, id uuid.UUID) (*Vial, error) {
	return c.Query().Where(vial.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VialClient) GetX(ctx context.Context, id uuid.UUID) *Vial {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoseDetails queries the dose_details edge of a Vial.
func (c *VialClient) QueryDoseDetails(_m *Vial) *DoseDetailQuery {
	query := (&DoseDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vial.Table, vial.FieldID, id),
			sqlgraph.To(dosedetail.Table, dosedetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, vial.DoseDetailsTable, vial.DoseDetailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VialClient) Hooks() []Hook {
	return c.hooks.Vial
}

// Interceptors returns the client interceptors.
func (c *VialClient) Interceptors() []Interceptor {
	return c.inters.Vial
}

func (c *VialClient) mutate(ctx context.Context, m *VialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vial mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DoseDetail, ScanJob, Vial []ent.Hook
	}
	inters struct {
		DoseDetail, ScanJob, Vial []ent.Interceptor
	}
)

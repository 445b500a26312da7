// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/raydent/raydent_backend/internal/repo/clientprice"
	"github.com/raydent/raydent_backend/internal/repo/clinic"
	"github.com/raydent/raydent_backend/internal/repo/exam"
	"github.com/raydent/raydent_backend/internal/repo/examevent"
	"github.com/raydent/raydent_backend/internal/repo/examtype"
	"github.com/raydent/raydent_backend/internal/repo/meeting"
	"github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
	"github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/repo/vacation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ClientPrice is the client for interacting with the ClientPrice builders.
	ClientPrice *ClientPriceClient
	// Clinic is the client for interacting with the Clinic builders.
	Clinic *ClinicClient
	// Exam is the client for interacting with the Exam builders.
	Exam *ExamClient
	// ExamEvent is the client for interacting with the ExamEvent builders.
	ExamEvent *ExamEventClient
	// ExamType is the client for interacting with the ExamType builders.
	ExamType *ExamTypeClient
	// Meeting is the client for interacting with the Meeting builders.
	Meeting *MeetingClient
	// MeetingParticipant is the client for interacting with the MeetingParticipant builders.
	MeetingParticipant *MeetingParticipantClient
	// RadiologistPrice is the client for interacting with the RadiologistPrice builders.
	RadiologistPrice *RadiologistPriceClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// Vacation is the client for interacting with the Vacation builders.
	Vacation *VacationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ClientPrice = NewClientPriceClient(c.config)
	c.Clinic = NewClinicClient(c.config)
	c.Exam = NewExamClient(c.config)
	c.ExamEvent = NewExamEventClient(c.config)
	c.ExamType = NewExamTypeClient(c.config)
	c.Meeting = NewMeetingClient(c.config)
	c.MeetingParticipant = NewMeetingParticipantClient(c.config)
	c.RadiologistPrice = NewRadiologistPriceClient(c.config)
	c.User = NewUserClient(c.config)
	c.Vacation = NewVacationClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ClientPrice:        NewClientPriceClient(cfg),
		Clinic:             NewClinicClient(cfg),
		Exam:               NewExamClient(cfg),
		ExamEvent:          NewExamEventClient(cfg),
		ExamType:           NewExamTypeClient(cfg),
		Meeting:            NewMeetingClient(cfg),
		MeetingParticipant: NewMeetingParticipantClient(cfg),
		RadiologistPrice:   NewRadiologistPriceClient(cfg),
		User:               NewUserClient(cfg),
		Vacation:           NewVacationClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ClientPrice:        NewClientPriceClient(cfg),
		Clinic:             NewClinicClient(cfg),
		Exam:               NewExamClient(cfg),
		ExamEvent:          NewExamEventClient(cfg),
		ExamType:           NewExamTypeClient(cfg),
		Meeting:            NewMeetingClient(cfg),
		MeetingParticipant: NewMeetingParticipantClient(cfg),
		RadiologistPrice:   NewRadiologistPriceClient(cfg),
		User:               NewUserClient(cfg),
		Vacation:           NewVacationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ClientPrice.
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
		c.ClientPrice, c.Clinic, c.Exam, c.ExamEvent, c.ExamType, c.Meeting,
		c.MeetingParticipant, c.RadiologistPrice, c.User, c.Vacation,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ClientPrice, c.Clinic, c.Exam, c.ExamEvent, c.ExamType, c.Meeting,
		c.MeetingParticipant, c.RadiologistPrice, c.User, c.Vacation,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClientPriceMutation:
		return c.ClientPrice.mutate(ctx, m)
	case *ClinicMutation:
		return c.Clinic.mutate(ctx, m)
	case *ExamMutation:
		return c.Exam.mutate(ctx, m)
	case *ExamEventMutation:
		return c.ExamEvent.mutate(ctx, m)
	case *ExamTypeMutation:
		return c.ExamType.mutate(ctx, m)
	case *MeetingMutation:
		return c.Meeting.mutate(ctx, m)
	case *MeetingParticipantMutation:
		return c.MeetingParticipant.mutate(ctx, m)
	case *RadiologistPriceMutation:
		return c.RadiologistPrice.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *VacationMutation:
		return c.Vacation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// ClientPriceClient is a client for the ClientPrice schema.
type ClientPriceClient struct {
	config
}

// NewClientPriceClient returns a client for the ClientPrice from the given config.
func NewClientPriceClient(c config) *ClientPriceClient {
	return &ClientPriceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientprice.Hooks(f(g(h())))`.
func (c *ClientPriceClient) Use(hooks ...Hook) {
	c.hooks.ClientPrice = append(c.hooks.ClientPrice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientprice.Intercept(f(g(h())))`.
func (c *ClientPriceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientPrice = append(c.inters.ClientPrice, interceptors...)
}

// Create returns a builder for creating a ClientPrice entity.
func (c *ClientPriceClient) Create() *ClientPriceCreate {
	mutation := newClientPriceMutation(c.config, OpCreate)
	return &ClientPriceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientPrice entities.
func (c *ClientPriceClient) CreateBulk(builders ...*ClientPriceCreate) *ClientPriceCreateBulk {
	return &ClientPriceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientPriceClient) MapCreateBulk(slice any, setFunc func(*ClientPriceCreate, int)) *ClientPriceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientPriceCreateBulk{err: fmt.Errorf("calling to ClientPriceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientPriceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientPriceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientPrice.
func (c *ClientPriceClient) Update() *ClientPriceUpdate {
	mutation := newClientPriceMutation(c.config, OpUpdate)
	return &ClientPriceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientPriceClient) UpdateOne(_m *ClientPrice) *ClientPriceUpdateOne {
	mutation := newClientPriceMutation(c.config, OpUpdateOne, withClientPrice(_m))
	return &ClientPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientPriceClient) UpdateOneID(id uuid.UUID) *ClientPriceUpdateOne {
	mutation := newClientPriceMutation(c.config, OpUpdateOne, withClientPriceID(id))
	return &ClientPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientPrice.
func (c *ClientPriceClient) Delete() *ClientPriceDelete {
	mutation := newClientPriceMutation(c.config, OpDelete)
	return &ClientPriceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientPriceClient) DeleteOne(_m *ClientPrice) *ClientPriceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientPriceClient) DeleteOneID(id uuid.UUID) *ClientPriceDeleteOne {
	builder := c.Delete().Where(clientprice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientPriceDeleteOne{builder}
}

// Query returns a query builder for ClientPrice.
func (c *ClientPriceClient) Query() *ClientPriceQuery {
	return &ClientPriceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientPrice},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientPrice entity by its id.
func (c *ClientPriceClient) Get(ctx context.Context, id uuid.UUID) (*ClientPrice, error) {
	return c.Query().Where(clientprice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientPriceClient) GetX(ctx context.Context, id uuid.UUID) *ClientPrice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClientPriceClient) Hooks() []Hook {
	return c.hooks.ClientPrice
}

// Interceptors returns the client interceptors.
func (c *ClientPriceClient) Interceptors() []Interceptor {
	return c.inters.ClientPrice
}

func (c *ClientPriceClient) mutate(ctx context.Context, m *ClientPriceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientPriceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientPriceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientPriceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClientPrice mutation op: %q", m.Op())
	}
}

// ClinicClient is a client for the Clinic schema.
type ClinicClient struct {
	config
}

// NewClinicClient returns a client for the Clinic from the given config.
func NewClinicClient(c config) *ClinicClient {
	return &ClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinic.Hooks(f(g(h())))`.
func (c *ClinicClient) Use(hooks ...Hook) {
	c.hooks.Clinic = append(c.hooks.Clinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinic.Intercept(f(g(h())))`.
func (c *ClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Clinic = append(c.inters.Clinic, interceptors...)
}

// Create returns a builder for creating a Clinic entity.
func (c *ClinicClient) Create() *ClinicCreate {
	mutation := newClinicMutation(c.config, OpCreate)
	return &ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Clinic entities.
func (c *ClinicClient) CreateBulk(builders ...*ClinicCreate) *ClinicCreateBulk {
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicClient) MapCreateBulk(slice any, setFunc func(*ClinicCreate, int)) *ClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCreateBulk{err: fmt.Errorf("calling to ClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Clinic.
func (c *ClinicClient) Update() *ClinicUpdate {
	mutation := newClinicMutation(c.config, OpUpdate)
	return &ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicClient) UpdateOne(_m *Clinic) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinic(_m))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicClient) UpdateOneID(id uuid.UUID) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinicID(id))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Clinic.
func (c *ClinicClient) Delete() *ClinicDelete {
	mutation := newClinicMutation(c.config, OpDelete)
	return &ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicClient) DeleteOne(_m *Clinic) *ClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicClient) DeleteOneID(id uuid.UUID) *ClinicDeleteOne {
	builder := c.Delete().Where(clinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicDeleteOne{builder}
}

// Query returns a query builder for Clinic.
func (c *ClinicClient) Query() *ClinicQuery {
	return &ClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a Clinic entity by its id.
func (c *ClinicClient) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return c.Query().Where(clinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicClient) GetX(ctx context.Context, id uuid.UUID) *Clinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClinicClient) Hooks() []Hook {
	return c.hooks.Clinic
}

// Interceptors returns the client interceptors.
func (c *ClinicClient) Interceptors() []Interceptor {
	return c.inters.Clinic
}

func (c *ClinicClient) mutate(ctx context.Context, m *ClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Clinic mutation op: %q", m.Op())
	}
}

// ExamClient is a client for the Exam schema.
type ExamClient struct {
	config
}

// NewExamClient returns a client for the Exam from the given config.
func NewExamClient(c config) *ExamClient {
	return &ExamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exam.Hooks(f(g(h())))`.
func (c *ExamClient) Use(hooks ...Hook) {
	c.hooks.Exam = append(c.hooks.Exam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exam.Intercept(f(g(h())))`.
func (c *ExamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exam = append(c.inters.Exam, interceptors...)
}

// Create returns a builder for creating a Exam entity.
func (c *ExamClient) Create() *ExamCreate {
	mutation := newExamMutation(c.config, OpCreate)
	return &ExamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exam entities.
func (c *ExamClient) CreateBulk(builders ...*ExamCreate) *ExamCreateBulk {
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamClient) MapCreateBulk(slice any, setFunc func(*ExamCreate, int)) *ExamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamCreateBulk{err: fmt.Errorf("calling to ExamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exam.
func (c *ExamClient) Update() *ExamUpdate {
	mutation := newExamMutation(c.config, OpUpdate)
	return &ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamClient) UpdateOne(_m *Exam) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExam(_m))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamClient) UpdateOneID(id uuid.UUID) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExamID(id))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exam.
func (c *ExamClient) Delete() *ExamDelete {
	mutation := newExamMutation(c.config, OpDelete)
	return &ExamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamClient) DeleteOne(_m *Exam) *ExamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamClient) DeleteOneID(id uuid.UUID) *ExamDeleteOne {
	builder := c.Delete().Where(exam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamDeleteOne{builder}
}

// Query returns a query builder for Exam.
func (c *ExamClient) Query() *ExamQuery {
	return &ExamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExam},
		inters: c.Interceptors(),
	}
}

// Get returns a Exam entity by its id.
func (c *ExamClient) Get(ctx context.Context, id uuid.UUID) (*Exam, error) {
	return c.Query().Where(exam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamClient) GetX(ctx context.Context, id uuid.UUID) *Exam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamClient) Hooks() []Hook {
	return c.hooks.Exam
}

// Interceptors returns the client interceptors.
func (c *ExamClient) Interceptors() []Interceptor {
	return c.inters.Exam
}

func (c *ExamClient) mutate(ctx context.Context, m *ExamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Exam mutation op: %q", m.Op())
	}
}

// ExamEventClient is a client for the ExamEvent schema.
type ExamEventClient struct {
	config
}

// NewExamEventClient returns a client for the ExamEvent from the given config.
func NewExamEventClient(c config) *ExamEventClient {
	return &ExamEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examevent.Hooks(f(g(h())))`.
func (c *ExamEventClient) Use(hooks ...Hook) {
	c.hooks.ExamEvent = append(c.hooks.ExamEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examevent.Intercept(f(g(h())))`.
func (c *ExamEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamEvent = append(c.inters.ExamEvent, interceptors...)
}

// Create returns a builder for creating a ExamEvent entity.
func (c *ExamEventClient) Create() *ExamEventCreate {
	mutation := newExamEventMutation(c.config, OpCreate)
	return &ExamEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamEvent entities.
func (c *ExamEventClient) CreateBulk(builders ...*ExamEventCreate) *ExamEventCreateBulk {
	return &ExamEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamEventClient) MapCreateBulk(slice any, setFunc func(*ExamEventCreate, int)) *ExamEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamEventCreateBulk{err: fmt.Errorf("calling to ExamEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamEvent.
func (c *ExamEventClient) Update() *ExamEventUpdate {
	mutation := newExamEventMutation(c.config, OpUpdate)
	return &ExamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamEventClient) UpdateOne(_m *ExamEvent) *ExamEventUpdateOne {
	mutation := newExamEventMutation(c.config, OpUpdateOne, withExamEvent(_m))
	return &ExamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamEventClient) UpdateOneID(id uuid.UUID) *ExamEventUpdateOne {
	mutation := newExamEventMutation(c.config, OpUpdateOne, withExamEventID(id))
	return &ExamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamEvent.
func (c *ExamEventClient) Delete() *ExamEventDelete {
	mutation := newExamEventMutation(c.config, OpDelete)
	return &ExamEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamEventClient) DeleteOne(_m *ExamEvent) *ExamEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamEventClient) DeleteOneID(id uuid.UUID) *ExamEventDeleteOne {
	builder := c.Delete().Where(examevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamEventDeleteOne{builder}
}

// Query returns a query builder for ExamEvent.
func (c *ExamEventClient) Query() *ExamEventQuery {
	return &ExamEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamEvent entity by its id.
func (c *ExamEventClient) Get(ctx context.Context, id uuid.UUID) (*ExamEvent, error) {
	return c.Query().Where(examevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamEventClient) GetX(ctx context.Context, id uuid.UUID) *ExamEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamEventClient) Hooks() []Hook {
	return c.hooks.ExamEvent
}

// Interceptors returns the client interceptors.
func (c *ExamEventClient) Interceptors() []Interceptor {
	return c.inters.ExamEvent
}

func (c *ExamEventClient) mutate(ctx context.Context, m *ExamEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ExamEvent mutation op: %q", m.Op())
	}
}

// ExamTypeClient is a client for the ExamType schema.
type ExamTypeClient struct {
	config
}

// NewExamTypeClient returns a client for the ExamType from the given config.
func NewExamTypeClient(c config) *ExamTypeClient {
	return &ExamTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examtype.Hooks(f(g(h())))`.
func (c *ExamTypeClient) Use(hooks ...Hook) {
	c.hooks.ExamType = append(c.hooks.ExamType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examtype.Intercept(f(g(h())))`.
func (c *ExamTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamType = append(c.inters.ExamType, interceptors...)
}

// Create returns a builder for creating a ExamType entity.
func (c *ExamTypeClient) Create() *ExamTypeCreate {
	mutation := newExamTypeMutation(c.config, OpCreate)
	return &ExamTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamType entities.
func (c *ExamTypeClient) CreateBulk(builders ...*ExamTypeCreate) *ExamTypeCreateBulk {
	return &ExamTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamTypeClient) MapCreateBulk(slice any, setFunc func(*ExamTypeCreate, int)) *ExamTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamTypeCreateBulk{err: fmt.Errorf("calling to ExamTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamType.
func (c *ExamTypeClient) Update() *ExamTypeUpdate {
	mutation := newExamTypeMutation(c.config, OpUpdate)
	return &ExamTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamTypeClient) UpdateOne(_m *ExamType) *ExamTypeUpdateOne {
	mutation := newExamTypeMutation(c.config, OpUpdateOne, withExamType(_m))
	return &ExamTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamTypeClient) UpdateOneID(id uuid.UUID) *ExamTypeUpdateOne {
	mutation := newExamTypeMutation(c.config, OpUpdateOne, withExamTypeID(id))
	return &ExamTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamType.
func (c *ExamTypeClient) Delete() *ExamTypeDelete {
	mutation := newExamTypeMutation(c.config, OpDelete)
	return &ExamTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamTypeClient) DeleteOne(_m *ExamType) *ExamTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamTypeClient) DeleteOneID(id uuid.UUID) *ExamTypeDeleteOne {
	builder := c.Delete().Where(examtype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamTypeDeleteOne{builder}
}

// Query returns a query builder for ExamType.
func (c *ExamTypeClient) Query() *ExamTypeQuery {
	return &ExamTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamType},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamType entity by its id.
func (c *ExamTypeClient) Get(ctx context.Context, id uuid.UUID) (*ExamType, error) {
	return c.Query().Where(examtype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamTypeClient) GetX(ctx context.Context, id uuid.UUID) *ExamType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamTypeClient) Hooks() []Hook {
	return c.hooks.ExamType
}

// Interceptors returns the client interceptors.
func (c *ExamTypeClient) Interceptors() []Interceptor {
	return c.inters.ExamType
}

func (c *ExamTypeClient) mutate(ctx context.Context, m *ExamTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ExamType mutation op: %q", m.Op())
	}
}

// MeetingClient is a client for the Meeting schema.
type MeetingClient struct {
	config
}

// NewMeetingClient returns a client for the Meeting from the given config.
func NewMeetingClient(c config) *MeetingClient {
	return &MeetingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meeting.Hooks(f(g(h())))`.
func (c *MeetingClient) Use(hooks ...Hook) {
	c.hooks.Meeting = append(c.hooks.Meeting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meeting.Intercept(f(g(h())))`.
func (c *MeetingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Meeting = append(c.inters.Meeting, interceptors...)
}

// Create returns a builder for creating a Meeting entity.
func (c *MeetingClient) Create() *MeetingCreate {
	mutation := newMeetingMutation(c.config, OpCreate)
	return &MeetingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Meeting entities.
func (c *MeetingClient) CreateBulk(builders ...*MeetingCreate) *MeetingCreateBulk {
	return &MeetingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingClient) MapCreateBulk(slice any, setFunc func(*MeetingCreate, int)) *MeetingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingCreateBulk{err: fmt.Errorf("calling to MeetingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Meeting.
func (c *MeetingClient) Update() *MeetingUpdate {
	mutation := newMeetingMutation(c.config, OpUpdate)
	return &MeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingClient) UpdateOne(_m *Meeting) *MeetingUpdateOne {
	mutation := newMeetingMutation(c.config, OpUpdateOne, withMeeting(_m))
	return &MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingClient) UpdateOneID(id uuid.UUID) *MeetingUpdateOne {
	mutation := newMeetingMutation(c.config, OpUpdateOne, withMeetingID(id))
	return &MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Meeting.
func (c *MeetingClient) Delete() *MeetingDelete {
	mutation := newMeetingMutation(c.config, OpDelete)
	return &MeetingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingClient) DeleteOne(_m *Meeting) *MeetingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingClient) DeleteOneID(id uuid.UUID) *MeetingDeleteOne {
	builder := c.Delete().Where(meeting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingDeleteOne{builder}
}

// Query returns a query builder for Meeting.
func (c *MeetingClient) Query() *MeetingQuery {
	return &MeetingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeeting},
		inters: c.Interceptors(),
	}
}

// Get returns a Meeting entity by its id.
func (c *MeetingClient) Get(ctx context.Context, id uuid.UUID) (*Meeting, error) {
	return c.Query().Where(meeting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingClient) GetX(ctx context.Context, id uuid.UUID) *Meeting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeetingClient) Hooks() []Hook {
	return c.hooks.Meeting
}

// Interceptors returns the client interceptors.
func (c *MeetingClient) Interceptors() []Interceptor {
	return c.inters.Meeting
}

func (c *MeetingClient) mutate(ctx context.Context, m *MeetingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Meeting mutation op: %q", m.Op())
	}
}

// MeetingParticipantClient is a client for the MeetingParticipant schema.
type MeetingParticipantClient struct {
	config
}

// NewMeetingParticipantClient returns a client for the MeetingParticipant from the given config.
func NewMeetingParticipantClient(c config) *MeetingParticipantClient {
	return &MeetingParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meetingparticipant.Hooks(f(g(h())))`.
func (c *MeetingParticipantClient) Use(hooks ...Hook) {
	c.hooks.MeetingParticipant = append(c.hooks.MeetingParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meetingparticipant.Intercept(f(g(h())))`.
func (c *MeetingParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeetingParticipant = append(c.inters.MeetingParticipant, interceptors...)
}

// Create returns a builder for creating a MeetingParticipant entity.
func (c *MeetingParticipantClient) Create() *MeetingParticipantCreate {
	mutation := newMeetingParticipantMutation(c.config, OpCreate)
	return &MeetingParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeetingParticipant entities.
func (c *MeetingParticipantClient) CreateBulk(builders ...*MeetingParticipantCreate) *MeetingParticipantCreateBulk {
	return &MeetingParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingParticipantClient) MapCreateBulk(slice any, setFunc func(*MeetingParticipantCreate, int)) *MeetingParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingParticipantCreateBulk{err: fmt.Errorf("calling to MeetingParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeetingParticipant.
func (c *MeetingParticipantClient) Update() *MeetingParticipantUpdate {
	mutation := newMeetingParticipantMutation(c.config, OpUpdate)
	return &MeetingParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingParticipantClient) UpdateOne(_m *MeetingParticipant) *MeetingParticipantUpdateOne {
	mutation := newMeetingParticipantMutation(c.config, OpUpdateOne, withMeetingParticipant(_m))
	return &MeetingParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingParticipantClient) UpdateOneID(id uuid.UUID) *MeetingParticipantUpdateOne {
	mutation := newMeetingParticipantMutation(c.config, OpUpdateOne, withMeetingParticipantID(id))
	return &MeetingParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeetingParticipant.
func (c *MeetingParticipantClient) Delete() *MeetingParticipantDelete {
	mutation := newMeetingParticipantMutation(c.config, OpDelete)
	return &MeetingParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingParticipantClient) DeleteOne(_m *MeetingParticipant) *MeetingParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingParticipantClient) DeleteOneID(id uuid.UUID) *MeetingParticipantDeleteOne {
	builder := c.Delete().Where(meetingparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingParticipantDeleteOne{builder}
}

// Query returns a query builder for MeetingParticipant.
func (c *MeetingParticipantClient) Query() *MeetingParticipantQuery {
	return &MeetingParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeetingParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a MeetingParticipant entity by its id.
func (c *MeetingParticipantClient) Get(ctx context.Context, id uuid.UUID) (*MeetingParticipant, error) {
	return c.Query().Where(meetingparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingParticipantClient) GetX(ctx context.Context, id uuid.UUID) *MeetingParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeetingParticipantClient) Hooks() []Hook {
	return c.hooks.MeetingParticipant
}

// Interceptors returns the client interceptors.
func (c *MeetingParticipantClient) Interceptors() []Interceptor {
	return c.inters.MeetingParticipant
}

func (c *MeetingParticipantClient) mutate(ctx context.Context, m *MeetingParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MeetingParticipant mutation op: %q", m.Op())
	}
}

// RadiologistPriceClient is a client for the RadiologistPrice schema.
type RadiologistPriceClient struct {
	config
}

// NewRadiologistPriceClient returns a client for the RadiologistPrice from the given config.
func NewRadiologistPriceClient(c config) *RadiologistPriceClient {
	return &RadiologistPriceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `radiologistprice.Hooks(f(g(h())))`.
func (c *RadiologistPriceClient) Use(hooks ...Hook) {
	c.hooks.RadiologistPrice = append(c.hooks.RadiologistPrice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `radiologistprice.Intercept(f(g(h())))`.
func (c *RadiologistPriceClient) Intercept(interceptors ...Interceptor) {
	c.inters.RadiologistPrice = append(c.inters.RadiologistPrice, interceptors...)
}

// Create returns a builder for creating a RadiologistPrice entity.
func (c *RadiologistPriceClient) Create() *RadiologistPriceCreate {
	mutation := newRadiologistPriceMutation(c.config, OpCreate)
	return &RadiologistPriceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RadiologistPrice entities.
func (c *RadiologistPriceClient) CreateBulk(builders ...*RadiologistPriceCreate) *RadiologistPriceCreateBulk {
	return &RadiologistPriceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RadiologistPriceClient) MapCreateBulk(slice any, setFunc func(*RadiologistPriceCreate, int)) *RadiologistPriceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RadiologistPriceCreateBulk{err: fmt.Errorf("calling to RadiologistPriceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RadiologistPriceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RadiologistPriceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RadiologistPrice.
func (c *RadiologistPriceClient) Update() *RadiologistPriceUpdate {
	mutation := newRadiologistPriceMutation(c.config, OpUpdate)
	return &RadiologistPriceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RadiologistPriceClient) UpdateOne(_m *RadiologistPrice) *RadiologistPriceUpdateOne {
	mutation := newRadiologistPriceMutation(c.config, OpUpdateOne, withRadiologistPrice(_m))
	return &RadiologistPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RadiologistPriceClient) UpdateOneID(id uuid.UUID) *RadiologistPriceUpdateOne {
	mutation := newRadiologistPriceMutation(c.config, OpUpdateOne, withRadiologistPriceID(id))
	return &RadiologistPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RadiologistPrice.
func (c *RadiologistPriceClient) Delete() *RadiologistPriceDelete {
	mutation := newRadiologistPriceMutation(c.config, OpDelete)
	return &RadiologistPriceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RadiologistPriceClient) DeleteOne(_m *RadiologistPrice) *RadiologistPriceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RadiologistPriceClient) DeleteOneID(id uuid.UUID) *RadiologistPriceDeleteOne {
	builder := c.Delete().Where(radiologistprice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RadiologistPriceDeleteOne{builder}
}

// Query returns a query builder for RadiologistPrice.
func (c *RadiologistPriceClient) Query() *RadiologistPriceQuery {
	return &RadiologistPriceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRadiologistPrice},
		inters: c.Interceptors(),
	}
}

// Get returns a RadiologistPrice entity by its id.
func (c *RadiologistPriceClient) Get(ctx context.Context, id uuid.UUID) (*RadiologistPrice, error) {
	return c.Query().Where(radiologistprice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RadiologistPriceClient) GetX(ctx context.Context, id uuid.UUID) *RadiologistPrice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RadiologistPriceClient) Hooks() []Hook {
	return c.hooks.RadiologistPrice
}

// Interceptors returns the client interceptors.
func (c *RadiologistPriceClient) Interceptors() []Interceptor {
	return c.inters.RadiologistPrice
}

func (c *RadiologistPriceClient) mutate(ctx context.Context, m *RadiologistPriceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RadiologistPriceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RadiologistPriceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RadiologistPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RadiologistPriceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RadiologistPrice mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// VacationClient is a client for the Vacation schema.
type VacationClient struct {
	config
}

// NewVacationClient returns a client for the Vacation from the given config.
func NewVacationClient(c config) *VacationClient {
	return &VacationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vacation.Hooks(f(g(h())))`.
func (c *VacationClient) Use(hooks ...Hook) {
	c.hooks.Vacation = append(c.hooks.Vacation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vacation.Intercept(f(g(h())))`.
func (c *VacationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vacation = append(c.inters.Vacation, interceptors...)
}

// Create returns a builder for creating a Vacation entity.
func (c *VacationClient) Create() *VacationCreate {
	mutation := newVacationMutation(c.config, OpCreate)
	return &VacationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vacation entities.
func (c *VacationClient) CreateBulk(builders ...*VacationCreate) *VacationCreateBulk {
	return &VacationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VacationClient) MapCreateBulk(slice any, setFunc func(*VacationCreate, int)) *VacationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VacationCreateBulk{err: fmt.Errorf("calling to VacationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VacationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VacationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vacation.
func (c *VacationClient) Update() *VacationUpdate {
	mutation := newVacationMutation(c.config, OpUpdate)
	return &VacationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VacationClient) UpdateOne(_m *Vacation) *VacationUpdateOne {
	mutation := newVacationMutation(c.config, OpUpdateOne, withVacation(_m))
	return &VacationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VacationClient) UpdateOneID(id uuid.UUID) *VacationUpdateOne {
	mutation := newVacationMutation(c.config, OpUpdateOne, withVacationID(id))
	return &VacationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vacation.
func (c *VacationClient) Delete() *VacationDelete {
	mutation := newVacationMutation(c.config, OpDelete)
	return &VacationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VacationClient) DeleteOne(_m *Vacation) *VacationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VacationClient) DeleteOneID(id uuid.UUID) *VacationDeleteOne {
	builder := c.Delete().Where(vacation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VacationDeleteOne{builder}
}

// Query returns a query builder for Vacation.
func (c *VacationClient) Query() *VacationQuery {
	return &VacationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVacation},
		inters: c.Interceptors(),
	}
}

// Get returns a Vacation entity by its id.
func (c *VacationClient) Get(ctx context.Context, id uuid.UUID) (*Vacation, error) {
	return c.Query().Where(vacation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VacationClient) GetX(ctx context.Context, id uuid.UUID) *Vacation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VacationClient) Hooks() []Hook {
	return c.hooks.Vacation
}

// Interceptors returns the client interceptors.
func (c *VacationClient) Interceptors() []Interceptor {
	return c.inters.Vacation
}

func (c *VacationClient) mutate(ctx context.Context, m *VacationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VacationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VacationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VacationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VacationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Vacation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ClientPrice, Clinic, Exam, ExamEvent, ExamType, Meeting, MeetingParticipant,
		RadiologistPrice, User, Vacation []ent.Hook
	}
	inters struct {
		ClientPrice, Clinic, Exam, ExamEvent, ExamType, Meeting, MeetingParticipant,
		RadiologistPrice, User, Vacation []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/clientprice"
	"github.com/raydent/raydent_backend/internal/repo/clinic"
	"github.com/raydent/raydent_backend/internal/repo/exam"
	"github.com/raydent/raydent_backend/internal/repo/examevent"
	"github.com/raydent/raydent_backend/internal/repo/examtype"
	"github.com/raydent/raydent_backend/internal/repo/meeting"
	"github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
	"github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/repo/vacation"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClientPrice        = "ClientPrice"
	TypeClinic             = "Clinic"
	TypeExam               = "Exam"
	TypeExamEvent          = "ExamEvent"
	TypeExamType           = "ExamType"
	TypeMeeting            = "Meeting"
	TypeMeetingParticipant = "MeetingParticipant"
	TypeRadiologistPrice   = "RadiologistPrice"
	TypeUser               = "User"
	TypeVacation           = "Vacation"
)

// ClientPriceMutation represents an operation that mutates the ClientPrice nodes in the graph.
type ClientPriceMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	client_id       *uuid.UUID
	exam_type_id    *uuid.UUID
	client_value    *int64
	addclient_value *int64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ClientPrice, error)
	predicates      []predicate.ClientPrice
}

var _ ent.Mutation = (*ClientPriceMutation)(nil)

// clientpriceOption allows management of the mutation configuration using functional options.
type clientpriceOption func(*ClientPriceMutation)

// newClientPriceMutation creates new mutation for the ClientPrice entity.
func newClientPriceMutation(c config, op Op, opts ...clientpriceOption) *ClientPriceMutation {
	m := &ClientPriceMutation{
		config:        c,
		op:            op,
		typ:           TypeClientPrice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientPriceID sets the ID field of the mutation.
func withClientPriceID(id uuid.UUID) clientpriceOption {
	return func(m *ClientPriceMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientPrice
		)
		m.oldValue = func(ctx context.Context) (*ClientPrice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientPrice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientPrice sets the old ClientPrice of the mutation.
func withClientPrice(node *ClientPrice) clientpriceOption {
	return func(m *ClientPriceMutation) {
		m.oldValue = func(context.Context) (*ClientPrice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientPriceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientPriceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientPrice entities.
func (m *ClientPriceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientPriceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientPriceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientPrice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientPriceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientPriceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientPrice entity.
// If the ClientPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientPriceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClientPriceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClientPriceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClientPriceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClientPrice entity.
// If the ClientPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientPriceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClientPriceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClientID sets the "client_id" field.
func (m *ClientPriceMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ClientPriceMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ClientPrice entity.
// If the ClientPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientPriceMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ClientPriceMutation) ResetClientID() {
	m.client_id = nil
}

// SetExamTypeID sets the "exam_type_id" field.
func (m *ClientPriceMutation) SetExamTypeID(u uuid.UUID) {
	m.exam_type_id = &u
}

// ExamTypeID returns the value of the "exam_type_id" field in the mutation.
func (m *ClientPriceMutation) ExamTypeID() (r uuid.UUID, exists bool) {
	v := m.exam_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamTypeID returns the old "exam_type_id" field's value of the ClientPrice entity.
// If the ClientPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientPriceMutation) OldExamTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamTypeID: %w", err)
	}
	return oldValue.ExamTypeID, nil
}

// ResetExamTypeID resets all changes to the "exam_type_id" field.
func (m *ClientPriceMutation) ResetExamTypeID() {
	m.exam_type_id = nil
}

// SetClientValue sets the "client_value" field.
func (m *ClientPriceMutation) SetClientValue(i int64) {
	m.client_value = &i
	m.addclient_value = nil
}

// ClientValue returns the value of the "client_value" field in the mutation.
func (m *ClientPriceMutation) ClientValue() (r int64, exists bool) {
	v := m.client_value
	if v == nil {
		return
	}
	return *v, true
}

// OldClientValue returns the old "client_value" field's value of the ClientPrice entity.
// If the ClientPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientPriceMutation) OldClientValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientValue: %w", err)
	}
	return oldValue.ClientValue, nil
}

// AddClientValue adds i to the "client_value" field.
func (m *ClientPriceMutation) AddClientValue(i int64) {
	if m.addclient_value != nil {
		*m.addclient_value += i
	} else {
		m.addclient_value = &i
	}
}

// AddedClientValue returns the value that was added to the "client_value" field in this mutation.
func (m *ClientPriceMutation) AddedClientValue() (r int64, exists bool) {
	v := m.addclient_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientValue resets all changes to the "client_value" field.
func (m *ClientPriceMutation) ResetClientValue() {
	m.client_value = nil
	m.addclient_value = nil
}

// Where appends a list predicates to the ClientPriceMutation builder.
func (m *ClientPriceMutation) Where(ps ...predicate.ClientPrice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientPriceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientPriceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientPrice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientPriceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientPriceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientPrice).
func (m *ClientPriceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientPriceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, clientprice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clientprice.FieldUpdatedAt)
	}
	if m.client_id != nil {
		fields = append(fields, clientprice.FieldClientID)
	}
	if m.exam_type_id != nil {
		fields = append(fields, clientprice.FieldExamTypeID)
	}
	if m.client_value != nil {
		fields = append(fields, clientprice.FieldClientValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientPriceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientprice.FieldCreatedAt:
		return m.CreatedAt()
	case clientprice.FieldUpdatedAt:
		return m.UpdatedAt()
	case clientprice.FieldClientID:
		return m.ClientID()
	case clientprice.FieldExamTypeID:
		return m.ExamTypeID()
	case clientprice.FieldClientValue:
		return m.ClientValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientPriceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientprice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clientprice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clientprice.FieldClientID:
		return m.OldClientID(ctx)
	case clientprice.FieldExamTypeID:
		return m.OldExamTypeID(ctx)
	case clientprice.FieldClientValue:
		return m.OldClientValue(ctx)
	}
	return nil, fmt.Errorf("unknown ClientPrice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientPriceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientprice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clientprice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clientprice.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case clientprice.FieldExamTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamTypeID(v)
		return nil
	case clientprice.FieldClientValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientValue(v)
		return nil
	}
	return fmt.Errorf("unknown ClientPrice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientPriceMutation) AddedFields() []string {
	var fields []string
	if m.addclient_value != nil {
		fields = append(fields, clientprice.FieldClientValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientPriceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clientprice.FieldClientValue:
		return m.AddedClientValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientPriceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clientprice.FieldClientValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientValue(v)
		return nil
	}
	return fmt.Errorf("unknown ClientPrice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientPriceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientPriceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientPriceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClientPrice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientPriceMutation) ResetField(name string) error {
	switch name {
	case clientprice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clientprice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clientprice.FieldClientID:
		m.ResetClientID()
		return nil
	case clientprice.FieldExamTypeID:
		m.ResetExamTypeID()
		return nil
	case clientprice.FieldClientValue:
		m.ResetClientValue()
		return nil
	}
	return fmt.Errorf("unknown ClientPrice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientPriceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientPriceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientPriceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientPriceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientPriceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientPriceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientPriceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClientPrice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientPriceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClientPrice edge %s", name)
}

// ClinicMutation represents an operation that mutates the Clinic nodes in the graph.
type ClinicMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	name            *string
	tax_id          *string
	email           *string
	phone           *string
	is_active       *bool
	softwares       *[]string
	appendsoftwares []string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Clinic, error)
	predicates      []predicate.Clinic
}

var _ ent.Mutation = (*ClinicMutation)(nil)

// clinicOption allows management of the mutation configuration using functional options.
type clinicOption func(*ClinicMutation)

// newClinicMutation creates new mutation for the Clinic entity.
func newClinicMutation(c config, op Op, opts ...clinicOption) *ClinicMutation {
	m := &ClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicID sets the ID field of the mutation.
func withClinicID(id uuid.UUID) clinicOption {
	return func(m *ClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *Clinic
		)
		m.oldValue = func(ctx context.Context) (*Clinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinic sets the old Clinic of the mutation.
func withClinic(node *Clinic) clinicOption {
	return func(m *ClinicMutation) {
		m.oldValue = func(context.Context) (*Clinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clinic entities.
func (m *ClinicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ClinicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClinicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ClinicMutation) ResetName() {
	m.name = nil
}

// SetTaxID sets the "tax_id" field.
func (m *ClinicMutation) SetTaxID(s string) {
	m.tax_id = &s
}

// TaxID returns the value of the "tax_id" field in the mutation.
func (m *ClinicMutation) TaxID() (r string, exists bool) {
	v := m.tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxID returns the old "tax_id" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldTaxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxID: %w", err)
	}
	return oldValue.TaxID, nil
}

// ClearTaxID clears the value of the "tax_id" field.
func (m *ClinicMutation) ClearTaxID() {
	m.tax_id = nil
	m.clearedFields[clinic.FieldTaxID] = struct{}{}
}

// TaxIDCleared returns if the "tax_id" field was cleared in this mutation.
func (m *ClinicMutation) TaxIDCleared() bool {
	_, ok := m.clearedFields[clinic.FieldTaxID]
	return ok
}

// ResetTaxID resets all changes to the "tax_id" field.
func (m *ClinicMutation) ResetTaxID() {
	m.tax_id = nil
	delete(m.clearedFields, clinic.FieldTaxID)
}

// SetEmail sets the "email" field.
func (m *ClinicMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ClinicMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldEmail(ctx context.Context) (v *string, err error) {
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

// ClearEmail clears the value of the "email" field.
func (m *ClinicMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[clinic.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ClinicMutation) EmailCleared() bool {
	_, ok := m.clearedFields[clinic.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ClinicMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, clinic.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ClinicMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClinicMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClinicMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[clinic.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClinicMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[clinic.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClinicMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, clinic.FieldPhone)
}

// SetIsActive sets the "is_active" field.
func (m *ClinicMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicMutation) ResetIsActive() {
	m.is_active = nil
}

// SetSoftwares sets the "softwares" field.
func (m *ClinicMutation) SetSoftwares(s []string) {
	m.softwares = &s
	m.appendsoftwares = nil
}

// Softwares returns the value of the "softwares" field in the mutation.
func (m *ClinicMutation) Softwares() (r []string, exists bool) {
	v := m.softwares
	if v == nil {
		return
	}
	return *v, true
}

// OldSoftwares returns the old "softwares" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldSoftwares(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoftwares is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoftwares requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoftwares: %w", err)
	}
	return oldValue.Softwares, nil
}

// AppendSoftwares adds s to the "softwares" field.
func (m *ClinicMutation) AppendSoftwares(s []string) {
	m.appendsoftwares = append(m.appendsoftwares, s...)
}

// AppendedSoftwares returns the list of values that were appended to the "softwares" field in this mutation.
func (m *ClinicMutation) AppendedSoftwares() ([]string, bool) {
	if len(m.appendsoftwares) == 0 {
		return nil, false
	}
	return m.appendsoftwares, true
}

// ClearSoftwares clears the value of the "softwares" field.
func (m *ClinicMutation) ClearSoftwares() {
	m.softwares = nil
	m.appendsoftwares = nil
	m.clearedFields[clinic.FieldSoftwares] = struct{}{}
}

// SoftwaresCleared returns if the "softwares" field was cleared in this mutation.
func (m *ClinicMutation) SoftwaresCleared() bool {
	_, ok := m.clearedFields[clinic.FieldSoftwares]
	return ok
}

// ResetSoftwares resets all changes to the "softwares" field.
func (m *ClinicMutation) ResetSoftwares() {
	m.softwares = nil
	m.appendsoftwares = nil
	delete(m.clearedFields, clinic.FieldSoftwares)
}

// Where appends a list predicates to the ClinicMutation builder.
func (m *ClinicMutation) Where(ps ...predicate.Clinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clinic).
func (m *ClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, clinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinic.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, clinic.FieldName)
	}
	if m.tax_id != nil {
		fields = append(fields, clinic.FieldTaxID)
	}
	if m.email != nil {
		fields = append(fields, clinic.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.is_active != nil {
		fields = append(fields, clinic.FieldIsActive)
	}
	if m.softwares != nil {
		fields = append(fields, clinic.FieldSoftwares)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.CreatedAt()
	case clinic.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinic.FieldName:
		return m.Name()
	case clinic.FieldTaxID:
		return m.TaxID()
	case clinic.FieldEmail:
		return m.Email()
	case clinic.FieldPhone:
		return m.Phone()
	case clinic.FieldIsActive:
		return m.IsActive()
	case clinic.FieldSoftwares:
		return m.Softwares()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinic.FieldName:
		return m.OldName(ctx)
	case clinic.FieldTaxID:
		return m.OldTaxID(ctx)
	case clinic.FieldEmail:
		return m.OldEmail(ctx)
	case clinic.FieldPhone:
		return m.OldPhone(ctx)
	case clinic.FieldIsActive:
		return m.OldIsActive(ctx)
	case clinic.FieldSoftwares:
		return m.OldSoftwares(ctx)
	}
	return nil, fmt.Errorf("unknown Clinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clinic.FieldTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxID(v)
		return nil
	case clinic.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case clinic.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case clinic.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case clinic.FieldSoftwares:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoftwares(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Clinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinic.FieldTaxID) {
		fields = append(fields, clinic.FieldTaxID)
	}
	if m.FieldCleared(clinic.FieldEmail) {
		fields = append(fields, clinic.FieldEmail)
	}
	if m.FieldCleared(clinic.FieldPhone) {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.FieldCleared(clinic.FieldSoftwares) {
		fields = append(fields, clinic.FieldSoftwares)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMutation) ClearField(name string) error {
	switch name {
	case clinic.FieldTaxID:
		m.ClearTaxID()
		return nil
	case clinic.FieldEmail:
		m.ClearEmail()
		return nil
	case clinic.FieldPhone:
		m.ClearPhone()
		return nil
	case clinic.FieldSoftwares:
		m.ClearSoftwares()
		return nil
	}
	return fmt.Errorf("unknown Clinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMutation) ResetField(name string) error {
	switch name {
	case clinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinic.FieldName:
		m.ResetName()
		return nil
	case clinic.FieldTaxID:
		m.ResetTaxID()
		return nil
	case clinic.FieldEmail:
		m.ResetEmail()
		return nil
	case clinic.FieldPhone:
		m.ResetPhone()
		return nil
	case clinic.FieldIsActive:
		m.ResetIsActive()
		return nil
	case clinic.FieldSoftwares:
		m.ResetSoftwares()
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Clinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Clinic edge %s", name)
}

// ExamMutation represents an operation that mutates the Exam nodes in the graph.
type ExamMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	client_id            *uuid.UUID
	exam_type_id         *uuid.UUID
	radiologist_id       *uuid.UUID
	patient_name         *string
	patient_birth_date   *string
	software             *exam.Software
	status               *exam.Status
	urgent               *bool
	urgent_due           *time.Time
	observations         *string
	dentist_name         *string
	purpose              *string
	exam_date            *string
	source_file_key      *string
	report_file_key      *string
	client_value         *int64
	addclient_value      *int64
	radiologist_value    *int64
	addradiologist_value *int64
	margin               *int64
	addmargin            *int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Exam, error)
	predicates           []predicate.Exam
}

var _ ent.Mutation = (*ExamMutation)(nil)

// examOption allows management of the mutation configuration using functional options.
type examOption func(*ExamMutation)

// newExamMutation creates new mutation for the Exam entity.
func newExamMutation(c config, op Op, opts ...examOption) *ExamMutation {
	m := &ExamMutation{
		config:        c,
		op:            op,
		typ:           TypeExam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamID sets the ID field of the mutation.
func withExamID(id uuid.UUID) examOption {
	return func(m *ExamMutation) {
		var (
			err   error
			once  sync.Once
			value *Exam
		)
		m.oldValue = func(ctx context.Context) (*Exam, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exam.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExam sets the old Exam of the mutation.
func withExam(node *Exam) examOption {
	return func(m *ExamMutation) {
		m.oldValue = func(context.Context) (*Exam, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Exam entities.
func (m *ExamMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exam.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClientID sets the "client_id" field.
func (m *ExamMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ExamMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ExamMutation) ResetClientID() {
	m.client_id = nil
}

// SetExamTypeID sets the "exam_type_id" field.
func (m *ExamMutation) SetExamTypeID(u uuid.UUID) {
	m.exam_type_id = &u
}

// ExamTypeID returns the value of the "exam_type_id" field in the mutation.
func (m *ExamMutation) ExamTypeID() (r uuid.UUID, exists bool) {
	v := m.exam_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamTypeID returns the old "exam_type_id" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldExamTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamTypeID: %w", err)
	}
	return oldValue.ExamTypeID, nil
}

// ResetExamTypeID resets all changes to the "exam_type_id" field.
func (m *ExamMutation) ResetExamTypeID() {
	m.exam_type_id = nil
}

// SetRadiologistID sets the "radiologist_id" field.
func (m *ExamMutation) SetRadiologistID(u uuid.UUID) {
	m.radiologist_id = &u
}

// RadiologistID returns the value of the "radiologist_id" field in the mutation.
func (m *ExamMutation) RadiologistID() (r uuid.UUID, exists bool) {
	v := m.radiologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiologistID returns the old "radiologist_id" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldRadiologistID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiologistID: %w", err)
	}
	return oldValue.RadiologistID, nil
}

// ClearRadiologistID clears the value of the "radiologist_id" field.
func (m *ExamMutation) ClearRadiologistID() {
	m.radiologist_id = nil
	m.clearedFields[exam.FieldRadiologistID] = struct{}{}
}

// RadiologistIDCleared returns if the "radiologist_id" field was cleared in this mutation.
func (m *ExamMutation) RadiologistIDCleared() bool {
	_, ok := m.clearedFields[exam.FieldRadiologistID]
	return ok
}

// ResetRadiologistID resets all changes to the "radiologist_id" field.
func (m *ExamMutation) ResetRadiologistID() {
	m.radiologist_id = nil
	delete(m.clearedFields, exam.FieldRadiologistID)
}

// SetPatientName sets the "patient_name" field.
func (m *ExamMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *ExamMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *ExamMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetPatientBirthDate sets the "patient_birth_date" field.
func (m *ExamMutation) SetPatientBirthDate(s string) {
	m.patient_birth_date = &s
}

// PatientBirthDate returns the value of the "patient_birth_date" field in the mutation.
func (m *ExamMutation) PatientBirthDate() (r string, exists bool) {
	v := m.patient_birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientBirthDate returns the old "patient_birth_date" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPatientBirthDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientBirthDate: %w", err)
	}
	return oldValue.PatientBirthDate, nil
}

// ClearPatientBirthDate clears the value of the "patient_birth_date" field.
func (m *ExamMutation) ClearPatientBirthDate() {
	m.patient_birth_date = nil
	m.clearedFields[exam.FieldPatientBirthDate] = struct{}{}
}

// PatientBirthDateCleared returns if the "patient_birth_date" field was cleared in this mutation.
func (m *ExamMutation) PatientBirthDateCleared() bool {
	_, ok := m.clearedFields[exam.FieldPatientBirthDate]
	return ok
}

// ResetPatientBirthDate resets all changes to the "patient_birth_date" field.
func (m *ExamMutation) ResetPatientBirthDate() {
	m.patient_birth_date = nil
	delete(m.clearedFields, exam.FieldPatientBirthDate)
}

// SetSoftware sets the "software" field.
func (m *ExamMutation) SetSoftware(e exam.Software) {
	m.software = &e
}

// Software returns the value of the "software" field in the mutation.
func (m *ExamMutation) Software() (r exam.Software, exists bool) {
	v := m.software
	if v == nil {
		return
	}
	return *v, true
}

// OldSoftware returns the old "software" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldSoftware(ctx context.Context) (v exam.Software, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoftware is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoftware requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoftware: %w", err)
	}
	return oldValue.Software, nil
}

// ResetSoftware resets all changes to the "software" field.
func (m *ExamMutation) ResetSoftware() {
	m.software = nil
}

// SetStatus sets the "status" field.
func (m *ExamMutation) SetStatus(e exam.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExamMutation) Status() (r exam.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldStatus(ctx context.Context) (v exam.Status, err error) {
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
func (m *ExamMutation) ResetStatus() {
	m.status = nil
}

// SetUrgent sets the "urgent" field.
func (m *ExamMutation) SetUrgent(b bool) {
	m.urgent = &b
}

// Urgent returns the value of the "urgent" field in the mutation.
func (m *ExamMutation) Urgent() (r bool, exists bool) {
	v := m.urgent
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgent returns the old "urgent" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldUrgent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgent: %w", err)
	}
	return oldValue.Urgent, nil
}

// ResetUrgent resets all changes to the "urgent" field.
func (m *ExamMutation) ResetUrgent() {
	m.urgent = nil
}

// SetUrgentDue sets the "urgent_due" field.
func (m *ExamMutation) SetUrgentDue(t time.Time) {
	m.urgent_due = &t
}

// UrgentDue returns the value of the "urgent_due" field in the mutation.
func (m *ExamMutation) UrgentDue() (r time.Time, exists bool) {
	v := m.urgent_due
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgentDue returns the old "urgent_due" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldUrgentDue(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgentDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgentDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgentDue: %w", err)
	}
	return oldValue.UrgentDue, nil
}

// ClearUrgentDue clears the value of the "urgent_due" field.
func (m *ExamMutation) ClearUrgentDue() {
	m.urgent_due = nil
	m.clearedFields[exam.FieldUrgentDue] = struct{}{}
}

// UrgentDueCleared returns if the "urgent_due" field was cleared in this mutation.
func (m *ExamMutation) UrgentDueCleared() bool {
	_, ok := m.clearedFields[exam.FieldUrgentDue]
	return ok
}

// ResetUrgentDue resets all changes to the "urgent_due" field.
func (m *ExamMutation) ResetUrgentDue() {
	m.urgent_due = nil
	delete(m.clearedFields, exam.FieldUrgentDue)
}

// SetObservations sets the "observations" field.
func (m *ExamMutation) SetObservations(s string) {
	m.observations = &s
}

// Observations returns the value of the "observations" field in the mutation.
func (m *ExamMutation) Observations() (r string, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldObservations(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// ClearObservations clears the value of the "observations" field.
func (m *ExamMutation) ClearObservations() {
	m.observations = nil
	m.clearedFields[exam.FieldObservations] = struct{}{}
}

// ObservationsCleared returns if the "observations" field was cleared in this mutation.
func (m *ExamMutation) ObservationsCleared() bool {
	_, ok := m.clearedFields[exam.FieldObservations]
	return ok
}

// ResetObservations resets all changes to the "observations" field.
func (m *ExamMutation) ResetObservations() {
	m.observations = nil
	delete(m.clearedFields, exam.FieldObservations)
}

// SetDentistName sets the "dentist_name" field.
func (m *ExamMutation) SetDentistName(s string) {
	m.dentist_name = &s
}

// DentistName returns the value of the "dentist_name" field in the mutation.
func (m *ExamMutation) DentistName() (r string, exists bool) {
	v := m.dentist_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDentistName returns the old "dentist_name" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldDentistName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDentistName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDentistName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDentistName: %w", err)
	}
	return oldValue.DentistName, nil
}

// ClearDentistName clears the value of the "dentist_name" field.
func (m *ExamMutation) ClearDentistName() {
	m.dentist_name = nil
	m.clearedFields[exam.FieldDentistName] = struct{}{}
}

// DentistNameCleared returns if the "dentist_name" field was cleared in this mutation.
func (m *ExamMutation) DentistNameCleared() bool {
	_, ok := m.clearedFields[exam.FieldDentistName]
	return ok
}

// ResetDentistName resets all changes to the "dentist_name" field.
func (m *ExamMutation) ResetDentistName() {
	m.dentist_name = nil
	delete(m.clearedFields, exam.FieldDentistName)
}

// SetPurpose sets the "purpose" field.
func (m *ExamMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *ExamMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPurpose(ctx context.Context) (v *string, err error) {
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

// ClearPurpose clears the value of the "purpose" field.
func (m *ExamMutation) ClearPurpose() {
	m.purpose = nil
	m.clearedFields[exam.FieldPurpose] = struct{}{}
}

// PurposeCleared returns if the "purpose" field was cleared in this mutation.
func (m *ExamMutation) PurposeCleared() bool {
	_, ok := m.clearedFields[exam.FieldPurpose]
	return ok
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *ExamMutation) ResetPurpose() {
	m.purpose = nil
	delete(m.clearedFields, exam.FieldPurpose)
}

// SetExamDate sets the "exam_date" field.
func (m *ExamMutation) SetExamDate(s string) {
	m.exam_date = &s
}

// ExamDate returns the value of the "exam_date" field in the mutation.
func (m *ExamMutation) ExamDate() (r string, exists bool) {
	v := m.exam_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExamDate returns the old "exam_date" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldExamDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamDate: %w", err)
	}
	return oldValue.ExamDate, nil
}

// ClearExamDate clears the value of the "exam_date" field.
func (m *ExamMutation) ClearExamDate() {
	m.exam_date = nil
	m.clearedFields[exam.FieldExamDate] = struct{}{}
}

// ExamDateCleared returns if the "exam_date" field was cleared in this mutation.
func (m *ExamMutation) ExamDateCleared() bool {
	_, ok := m.clearedFields[exam.FieldExamDate]
	return ok
}

// ResetExamDate resets all changes to the "exam_date" field.
func (m *ExamMutation) ResetExamDate() {
	m.exam_date = nil
	delete(m.clearedFields, exam.FieldExamDate)
}

// SetSourceFileKey sets the "source_file_key" field.
func (m *ExamMutation) SetSourceFileKey(s string) {
	m.source_file_key = &s
}

// SourceFileKey returns the value of the "source_file_key" field in the mutation.
func (m *ExamMutation) SourceFileKey() (r string, exists bool) {
	v := m.source_file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFileKey returns the old "source_file_key" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldSourceFileKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFileKey: %w", err)
	}
	return oldValue.SourceFileKey, nil
}

// ClearSourceFileKey clears the value of the "source_file_key" field.
func (m *ExamMutation) ClearSourceFileKey() {
	m.source_file_key = nil
	m.clearedFields[exam.FieldSourceFileKey] = struct{}{}
}

// SourceFileKeyCleared returns if the "source_file_key" field was cleared in this mutation.
func (m *ExamMutation) SourceFileKeyCleared() bool {
	_, ok := m.clearedFields[exam.FieldSourceFileKey]
	return ok
}

// ResetSourceFileKey resets all changes to the "source_file_key" field.
func (m *ExamMutation) ResetSourceFileKey() {
	m.source_file_key = nil
	delete(m.clearedFields, exam.FieldSourceFileKey)
}

// SetReportFileKey sets the "report_file_key" field.
func (m *ExamMutation) SetReportFileKey(s string) {
	m.report_file_key = &s
}

// ReportFileKey returns the value of the "report_file_key" field in the mutation.
func (m *ExamMutation) ReportFileKey() (r string, exists bool) {
	v := m.report_file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldReportFileKey returns the old "report_file_key" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldReportFileKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportFileKey: %w", err)
	}
	return oldValue.ReportFileKey, nil
}

// ClearReportFileKey clears the value of the "report_file_key" field.
func (m *ExamMutation) ClearReportFileKey() {
	m.report_file_key = nil
	m.clearedFields[exam.FieldReportFileKey] = struct{}{}
}

// ReportFileKeyCleared returns if the "report_file_key" field was cleared in this mutation.
func (m *ExamMutation) ReportFileKeyCleared() bool {
	_, ok := m.clearedFields[exam.FieldReportFileKey]
	return ok
}

// ResetReportFileKey resets all changes to the "report_file_key" field.
func (m *ExamMutation) ResetReportFileKey() {
	m.report_file_key = nil
	delete(m.clearedFields, exam.FieldReportFileKey)
}

// SetClientValue sets the "client_value" field.
func (m *ExamMutation) SetClientValue(i int64) {
	m.client_value = &i
	m.addclient_value = nil
}

// ClientValue returns the value of the "client_value" field in the mutation.
func (m *ExamMutation) ClientValue() (r int64, exists bool) {
	v := m.client_value
	if v == nil {
		return
	}
	return *v, true
}

// OldClientValue returns the old "client_value" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldClientValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientValue: %w", err)
	}
	return oldValue.ClientValue, nil
}

// AddClientValue adds i to the "client_value" field.
func (m *ExamMutation) AddClientValue(i int64) {
	if m.addclient_value != nil {
		*m.addclient_value += i
	} else {
		m.addclient_value = &i
	}
}

// AddedClientValue returns the value that was added to the "client_value" field in this mutation.
func (m *ExamMutation) AddedClientValue() (r int64, exists bool) {
	v := m.addclient_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientValue resets all changes to the "client_value" field.
func (m *ExamMutation) ResetClientValue() {
	m.client_value = nil
	m.addclient_value = nil
}

// SetRadiologistValue sets the "radiologist_value" field.
func (m *ExamMutation) SetRadiologistValue(i int64) {
	m.radiologist_value = &i
	m.addradiologist_value = nil
}

// RadiologistValue returns the value of the "radiologist_value" field in the mutation.
func (m *ExamMutation) RadiologistValue() (r int64, exists bool) {
	v := m.radiologist_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiologistValue returns the old "radiologist_value" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldRadiologistValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiologistValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiologistValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiologistValue: %w", err)
	}
	return oldValue.RadiologistValue, nil
}

// AddRadiologistValue adds i to the "radiologist_value" field.
func (m *ExamMutation) AddRadiologistValue(i int64) {
	if m.addradiologist_value != nil {
		*m.addradiologist_value += i
	} else {
		m.addradiologist_value = &i
	}
}

// AddedRadiologistValue returns the value that was added to the "radiologist_value" field in this mutation.
func (m *ExamMutation) AddedRadiologistValue() (r int64, exists bool) {
	v := m.addradiologist_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetRadiologistValue resets all changes to the "radiologist_value" field.
func (m *ExamMutation) ResetRadiologistValue() {
	m.radiologist_value = nil
	m.addradiologist_value = nil
}

// SetMargin sets the "margin" field.
func (m *ExamMutation) SetMargin(i int64) {
	m.margin = &i
	m.addmargin = nil
}

// Margin returns the value of the "margin" field in the mutation.
func (m *ExamMutation) Margin() (r int64, exists bool) {
	v := m.margin
	if v == nil {
		return
	}
	return *v, true
}

// OldMargin returns the old "margin" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldMargin(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMargin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMargin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMargin: %w", err)
	}
	return oldValue.Margin, nil
}

// AddMargin adds i to the "margin" field.
func (m *ExamMutation) AddMargin(i int64) {
	if m.addmargin != nil {
		*m.addmargin += i
	} else {
		m.addmargin = &i
	}
}

// AddedMargin returns the value that was added to the "margin" field in this mutation.
func (m *ExamMutation) AddedMargin() (r int64, exists bool) {
	v := m.addmargin
	if v == nil {
		return
	}
	return *v, true
}

// ResetMargin resets all changes to the "margin" field.
func (m *ExamMutation) ResetMargin() {
	m.margin = nil
	m.addmargin = nil
}

// Where appends a list predicates to the ExamMutation builder.
func (m *ExamMutation) Where(ps ...predicate.Exam) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exam, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exam).
func (m *ExamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.created_at != nil {
		fields = append(fields, exam.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, exam.FieldUpdatedAt)
	}
	if m.client_id != nil {
		fields = append(fields, exam.FieldClientID)
	}
	if m.exam_type_id != nil {
		fields = append(fields, exam.FieldExamTypeID)
	}
	if m.radiologist_id != nil {
		fields = append(fields, exam.FieldRadiologistID)
	}
	if m.patient_name != nil {
		fields = append(fields, exam.FieldPatientName)
	}
	if m.patient_birth_date != nil {
		fields = append(fields, exam.FieldPatientBirthDate)
	}
	if m.software != nil {
		fields = append(fields, exam.FieldSoftware)
	}
	if m.status != nil {
		fields = append(fields, exam.FieldStatus)
	}
	if m.urgent != nil {
		fields = append(fields, exam.FieldUrgent)
	}
	if m.urgent_due != nil {
		fields = append(fields, exam.FieldUrgentDue)
	}
	if m.observations != nil {
		fields = append(fields, exam.FieldObservations)
	}
	if m.dentist_name != nil {
		fields = append(fields, exam.FieldDentistName)
	}
	if m.purpose != nil {
		fields = append(fields, exam.FieldPurpose)
	}
	if m.exam_date != nil {
		fields = append(fields, exam.FieldExamDate)
	}
	if m.source_file_key != nil {
		fields = append(fields, exam.FieldSourceFileKey)
	}
	if m.report_file_key != nil {
		fields = append(fields, exam.FieldReportFileKey)
	}
	if m.client_value != nil {
		fields = append(fields, exam.FieldClientValue)
	}
	if m.radiologist_value != nil {
		fields = append(fields, exam.FieldRadiologistValue)
	}
	if m.margin != nil {
		fields = append(fields, exam.FieldMargin)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldCreatedAt:
		return m.CreatedAt()
	case exam.FieldUpdatedAt:
		return m.UpdatedAt()
	case exam.FieldClientID:
		return m.ClientID()
	case exam.FieldExamTypeID:
		return m.ExamTypeID()
	case exam.FieldRadiologistID:
		return m.RadiologistID()
	case exam.FieldPatientName:
		return m.PatientName()
	case exam.FieldPatientBirthDate:
		return m.PatientBirthDate()
	case exam.FieldSoftware:
		return m.Software()
	case exam.FieldStatus:
		return m.Status()
	case exam.FieldUrgent:
		return m.Urgent()
	case exam.FieldUrgentDue:
		return m.UrgentDue()
	case exam.FieldObservations:
		return m.Observations()
	case exam.FieldDentistName:
		return m.DentistName()
	case exam.FieldPurpose:
		return m.Purpose()
	case exam.FieldExamDate:
		return m.ExamDate()
	case exam.FieldSourceFileKey:
		return m.SourceFileKey()
	case exam.FieldReportFileKey:
		return m.ReportFileKey()
	case exam.FieldClientValue:
		return m.ClientValue()
	case exam.FieldRadiologistValue:
		return m.RadiologistValue()
	case exam.FieldMargin:
		return m.Margin()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exam.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exam.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case exam.FieldClientID:
		return m.OldClientID(ctx)
	case exam.FieldExamTypeID:
		return m.OldExamTypeID(ctx)
	case exam.FieldRadiologistID:
		return m.OldRadiologistID(ctx)
	case exam.FieldPatientName:
		return m.OldPatientName(ctx)
	case exam.FieldPatientBirthDate:
		return m.OldPatientBirthDate(ctx)
	case exam.FieldSoftware:
		return m.OldSoftware(ctx)
	case exam.FieldStatus:
		return m.OldStatus(ctx)
	case exam.FieldUrgent:
		return m.OldUrgent(ctx)
	case exam.FieldUrgentDue:
		return m.OldUrgentDue(ctx)
	case exam.FieldObservations:
		return m.OldObservations(ctx)
	case exam.FieldDentistName:
		return m.OldDentistName(ctx)
	case exam.FieldPurpose:
		return m.OldPurpose(ctx)
	case exam.FieldExamDate:
		return m.OldExamDate(ctx)
	case exam.FieldSourceFileKey:
		return m.OldSourceFileKey(ctx)
	case exam.FieldReportFileKey:
		return m.OldReportFileKey(ctx)
	case exam.FieldClientValue:
		return m.OldClientValue(ctx)
	case exam.FieldRadiologistValue:
		return m.OldRadiologistValue(ctx)
	case exam.FieldMargin:
		return m.OldMargin(ctx)
	}
	return nil, fmt.Errorf("unknown Exam field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exam.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exam.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case exam.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case exam.FieldExamTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamTypeID(v)
		return nil
	case exam.FieldRadiologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiologistID(v)
		return nil
	case exam.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case exam.FieldPatientBirthDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientBirthDate(v)
		return nil
	case exam.FieldSoftware:
		v, ok := value.(exam.Software)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoftware(v)
		return nil
	case exam.FieldStatus:
		v, ok := value.(exam.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case exam.FieldUrgent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgent(v)
		return nil
	case exam.FieldUrgentDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgentDue(v)
		return nil
	case exam.FieldObservations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case exam.FieldDentistName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDentistName(v)
		return nil
	case exam.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case exam.FieldExamDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamDate(v)
		return nil
	case exam.FieldSourceFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFileKey(v)
		return nil
	case exam.FieldReportFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportFileKey(v)
		return nil
	case exam.FieldClientValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientValue(v)
		return nil
	case exam.FieldRadiologistValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiologistValue(v)
		return nil
	case exam.FieldMargin:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMargin(v)
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamMutation) AddedFields() []string {
	var fields []string
	if m.addclient_value != nil {
		fields = append(fields, exam.FieldClientValue)
	}
	if m.addradiologist_value != nil {
		fields = append(fields, exam.FieldRadiologistValue)
	}
	if m.addmargin != nil {
		fields = append(fields, exam.FieldMargin)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldClientValue:
		return m.AddedClientValue()
	case exam.FieldRadiologistValue:
		return m.AddedRadiologistValue()
	case exam.FieldMargin:
		return m.AddedMargin()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exam.FieldClientValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientValue(v)
		return nil
	case exam.FieldRadiologistValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRadiologistValue(v)
		return nil
	case exam.FieldMargin:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMargin(v)
		return nil
	}
	return fmt.Errorf("unknown Exam numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exam.FieldRadiologistID) {
		fields = append(fields, exam.FieldRadiologistID)
	}
	if m.FieldCleared(exam.FieldPatientBirthDate) {
		fields = append(fields, exam.FieldPatientBirthDate)
	}
	if m.FieldCleared(exam.FieldUrgentDue) {
		fields = append(fields, exam.FieldUrgentDue)
	}
	if m.FieldCleared(exam.FieldObservations) {
		fields = append(fields, exam.FieldObservations)
	}
	if m.FieldCleared(exam.FieldDentistName) {
		fields = append(fields, exam.FieldDentistName)
	}
	if m.FieldCleared(exam.FieldPurpose) {
		fields = append(fields, exam.FieldPurpose)
	}
	if m.FieldCleared(exam.FieldExamDate) {
		fields = append(fields, exam.FieldExamDate)
	}
	if m.FieldCleared(exam.FieldSourceFileKey) {
		fields = append(fields, exam.FieldSourceFileKey)
	}
	if m.FieldCleared(exam.FieldReportFileKey) {
		fields = append(fields, exam.FieldReportFileKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamMutation) ClearField(name string) error {
	switch name {
	case exam.FieldRadiologistID:
		m.ClearRadiologistID()
		return nil
	case exam.FieldPatientBirthDate:
		m.ClearPatientBirthDate()
		return nil
	case exam.FieldUrgentDue:
		m.ClearUrgentDue()
		return nil
	case exam.FieldObservations:
		m.ClearObservations()
		return nil
	case exam.FieldDentistName:
		m.ClearDentistName()
		return nil
	case exam.FieldPurpose:
		m.ClearPurpose()
		return nil
	case exam.FieldExamDate:
		m.ClearExamDate()
		return nil
	case exam.FieldSourceFileKey:
		m.ClearSourceFileKey()
		return nil
	case exam.FieldReportFileKey:
		m.ClearReportFileKey()
		return nil
	}
	return fmt.Errorf("unknown Exam nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamMutation) ResetField(name string) error {
	switch name {
	case exam.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exam.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case exam.FieldClientID:
		m.ResetClientID()
		return nil
	case exam.FieldExamTypeID:
		m.ResetExamTypeID()
		return nil
	case exam.FieldRadiologistID:
		m.ResetRadiologistID()
		return nil
	case exam.FieldPatientName:
		m.ResetPatientName()
		return nil
	case exam.FieldPatientBirthDate:
		m.ResetPatientBirthDate()
		return nil
	case exam.FieldSoftware:
		m.ResetSoftware()
		return nil
	case exam.FieldStatus:
		m.ResetStatus()
		return nil
	case exam.FieldUrgent:
		m.ResetUrgent()
		return nil
	case exam.FieldUrgentDue:
		m.ResetUrgentDue()
		return nil
	case exam.FieldObservations:
		m.ResetObservations()
		return nil
	case exam.FieldDentistName:
		m.ResetDentistName()
		return nil
	case exam.FieldPurpose:
		m.ResetPurpose()
		return nil
	case exam.FieldExamDate:
		m.ResetExamDate()
		return nil
	case exam.FieldSourceFileKey:
		m.ResetSourceFileKey()
		return nil
	case exam.FieldReportFileKey:
		m.ResetReportFileKey()
		return nil
	case exam.FieldClientValue:
		m.ResetClientValue()
		return nil
	case exam.FieldRadiologistValue:
		m.ResetRadiologistValue()
		return nil
	case exam.FieldMargin:
		m.ResetMargin()
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Exam unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Exam edge %s", name)
}

// ExamEventMutation represents an operation that mutates the ExamEvent nodes in the graph.
type ExamEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	exam_id       *uuid.UUID
	status        *examevent.Status
	actor_id      *uuid.UUID
	note          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExamEvent, error)
	predicates    []predicate.ExamEvent
}

var _ ent.Mutation = (*ExamEventMutation)(nil)

// exameventOption allows management of the mutation configuration using functional options.
type exameventOption func(*ExamEventMutation)

// newExamEventMutation creates new mutation for the ExamEvent entity.
func newExamEventMutation(c config, op Op, opts ...exameventOption) *ExamEventMutation {
	m := &ExamEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExamEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamEventID sets the ID field of the mutation.
func withExamEventID(id uuid.UUID) exameventOption {
	return func(m *ExamEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExamEvent
		)
		m.oldValue = func(ctx context.Context) (*ExamEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExamEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamEvent sets the old ExamEvent of the mutation.
func withExamEvent(node *ExamEvent) exameventOption {
	return func(m *ExamEventMutation) {
		m.oldValue = func(context.Context) (*ExamEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExamEvent entities.
func (m *ExamEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExamEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExamEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExamEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExamEvent entity.
// If the ExamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExamEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExamID sets the "exam_id" field.
func (m *ExamEventMutation) SetExamID(u uuid.UUID) {
	m.exam_id = &u
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *ExamEventMutation) ExamID() (r uuid.UUID, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the ExamEvent entity.
// If the ExamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamEventMutation) OldExamID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *ExamEventMutation) ResetExamID() {
	m.exam_id = nil
}

// SetStatus sets the "status" field.
func (m *ExamEventMutation) SetStatus(e examevent.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExamEventMutation) Status() (r examevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExamEvent entity.
// If the ExamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamEventMutation) OldStatus(ctx context.Context) (v examevent.Status, err error) {
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
func (m *ExamEventMutation) ResetStatus() {
	m.status = nil
}

// SetActorID sets the "actor_id" field.
func (m *ExamEventMutation) SetActorID(u uuid.UUID) {
	m.actor_id = &u
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *ExamEventMutation) ActorID() (r uuid.UUID, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the ExamEvent entity.
// If the ExamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamEventMutation) OldActorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *ExamEventMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[examevent.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *ExamEventMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[examevent.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *ExamEventMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, examevent.FieldActorID)
}

// SetNote sets the "note" field.
func (m *ExamEventMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *ExamEventMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the ExamEvent entity.
// If the ExamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamEventMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *ExamEventMutation) ClearNote() {
	m.note = nil
	m.clearedFields[examevent.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *ExamEventMutation) NoteCleared() bool {
	_, ok := m.clearedFields[examevent.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *ExamEventMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, examevent.FieldNote)
}

// Where appends a list predicates to the ExamEventMutation builder.
func (m *ExamEventMutation) Where(ps ...predicate.ExamEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExamEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExamEvent).
func (m *ExamEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, examevent.FieldCreatedAt)
	}
	if m.exam_id != nil {
		fields = append(fields, examevent.FieldExamID)
	}
	if m.status != nil {
		fields = append(fields, examevent.FieldStatus)
	}
	if m.actor_id != nil {
		fields = append(fields, examevent.FieldActorID)
	}
	if m.note != nil {
		fields = append(fields, examevent.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examevent.FieldCreatedAt:
		return m.CreatedAt()
	case examevent.FieldExamID:
		return m.ExamID()
	case examevent.FieldStatus:
		return m.Status()
	case examevent.FieldActorID:
		return m.ActorID()
	case examevent.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case examevent.FieldExamID:
		return m.OldExamID(ctx)
	case examevent.FieldStatus:
		return m.OldStatus(ctx)
	case examevent.FieldActorID:
		return m.OldActorID(ctx)
	case examevent.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown ExamEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case examevent.FieldExamID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case examevent.FieldStatus:
		v, ok := value.(examevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case examevent.FieldActorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case examevent.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown ExamEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExamEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(examevent.FieldActorID) {
		fields = append(fields, examevent.FieldActorID)
	}
	if m.FieldCleared(examevent.FieldNote) {
		fields = append(fields, examevent.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamEventMutation) ClearField(name string) error {
	switch name {
	case examevent.FieldActorID:
		m.ClearActorID()
		return nil
	case examevent.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown ExamEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamEventMutation) ResetField(name string) error {
	switch name {
	case examevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case examevent.FieldExamID:
		m.ResetExamID()
		return nil
	case examevent.FieldStatus:
		m.ResetStatus()
		return nil
	case examevent.FieldActorID:
		m.ResetActorID()
		return nil
	case examevent.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown ExamEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExamEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExamEvent edge %s", name)
}

// ExamTypeMutation represents an operation that mutates the ExamType nodes in the graph.
type ExamTypeMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExamType, error)
	predicates    []predicate.ExamType
}

var _ ent.Mutation = (*ExamTypeMutation)(nil)

// examtypeOption allows management of the mutation configuration using functional options.
type examtypeOption func(*ExamTypeMutation)

// newExamTypeMutation creates new mutation for the ExamType entity.
func newExamTypeMutation(c config, op Op, opts ...examtypeOption) *ExamTypeMutation {
	m := &ExamTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeExamType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamTypeID sets the ID field of the mutation.
func withExamTypeID(id uuid.UUID) examtypeOption {
	return func(m *ExamTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *ExamType
		)
		m.oldValue = func(ctx context.Context) (*ExamType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExamType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamType sets the old ExamType of the mutation.
func withExamType(node *ExamType) examtypeOption {
	return func(m *ExamTypeMutation) {
		m.oldValue = func(context.Context) (*ExamType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExamType entities.
func (m *ExamTypeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamTypeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamTypeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExamType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExamTypeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExamTypeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExamType entity.
// If the ExamType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamTypeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExamTypeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *ExamTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExamTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExamType entity.
// If the ExamType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamTypeMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ExamTypeMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the ExamTypeMutation builder.
func (m *ExamTypeMutation) Where(ps ...predicate.ExamType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExamType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExamType).
func (m *ExamTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamTypeMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.created_at != nil {
		fields = append(fields, examtype.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, examtype.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examtype.FieldCreatedAt:
		return m.CreatedAt()
	case examtype.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examtype.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case examtype.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown ExamType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examtype.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case examtype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown ExamType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExamType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExamType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamTypeMutation) ResetField(name string) error {
	switch name {
	case examtype.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case examtype.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown ExamType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamTypeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamTypeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamTypeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamTypeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExamType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamTypeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExamType edge %s", name)
}

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	title         *string
	description   *string
	starts_at     *time.Time
	ends_at       *time.Time
	created_by    *uuid.UUID
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Meeting, error)
	predicates    []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id uuid.UUID) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTitle sets the "title" field.
func (m *MeetingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MeetingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *MeetingMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *MeetingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MeetingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MeetingMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[meeting.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MeetingMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[meeting.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MeetingMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, meeting.FieldDescription)
}

// SetStartsAt sets the "starts_at" field.
func (m *MeetingMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *MeetingMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *MeetingMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *MeetingMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *MeetingMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldEndsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *MeetingMutation) ResetEndsAt() {
	m.ends_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *MeetingMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *MeetingMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *MeetingMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[meeting.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *MeetingMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[meeting.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *MeetingMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, meeting.FieldCreatedBy)
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	if m.title != nil {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, meeting.FieldDescription)
	}
	if m.starts_at != nil {
		fields = append(fields, meeting.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, meeting.FieldEndsAt)
	}
	if m.created_by != nil {
		fields = append(fields, meeting.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	case meeting.FieldTitle:
		return m.Title()
	case meeting.FieldDescription:
		return m.Description()
	case meeting.FieldStartsAt:
		return m.StartsAt()
	case meeting.FieldEndsAt:
		return m.EndsAt()
	case meeting.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case meeting.FieldTitle:
		return m.OldTitle(ctx)
	case meeting.FieldDescription:
		return m.OldDescription(ctx)
	case meeting.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case meeting.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case meeting.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case meeting.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case meeting.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case meeting.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case meeting.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case meeting.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldDescription) {
		fields = append(fields, meeting.FieldDescription)
	}
	if m.FieldCleared(meeting.FieldCreatedBy) {
		fields = append(fields, meeting.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldDescription:
		m.ClearDescription()
		return nil
	case meeting.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case meeting.FieldTitle:
		m.ResetTitle()
		return nil
	case meeting.FieldDescription:
		m.ResetDescription()
		return nil
	case meeting.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case meeting.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case meeting.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Meeting edge %s", name)
}

// MeetingParticipantMutation represents an operation that mutates the MeetingParticipant nodes in the graph.
type MeetingParticipantMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	meeting_id    *uuid.UUID
	user_id       *uuid.UUID
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MeetingParticipant, error)
	predicates    []predicate.MeetingParticipant
}

var _ ent.Mutation = (*MeetingParticipantMutation)(nil)

// meetingparticipantOption allows management of the mutation configuration using functional options.
type meetingparticipantOption func(*MeetingParticipantMutation)

// newMeetingParticipantMutation creates new mutation for the MeetingParticipant entity.
func newMeetingParticipantMutation(c config, op Op, opts ...meetingparticipantOption) *MeetingParticipantMutation {
	m := &MeetingParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeMeetingParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingParticipantID sets the ID field of the mutation.
func withMeetingParticipantID(id uuid.UUID) meetingparticipantOption {
	return func(m *MeetingParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *MeetingParticipant
		)
		m.oldValue = func(ctx context.Context) (*MeetingParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MeetingParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeetingParticipant sets the old MeetingParticipant of the mutation.
func withMeetingParticipant(node *MeetingParticipant) meetingparticipantOption {
	return func(m *MeetingParticipantMutation) {
		m.oldValue = func(context.Context) (*MeetingParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MeetingParticipant entities.
func (m *MeetingParticipantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingParticipantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingParticipantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MeetingParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *MeetingParticipantMutation) SetMeetingID(u uuid.UUID) {
	m.meeting_id = &u
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *MeetingParticipantMutation) MeetingID() (r uuid.UUID, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the MeetingParticipant entity.
// If the MeetingParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingParticipantMutation) OldMeetingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *MeetingParticipantMutation) ResetMeetingID() {
	m.meeting_id = nil
}

// SetUserID sets the "user_id" field.
func (m *MeetingParticipantMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MeetingParticipantMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MeetingParticipant entity.
// If the MeetingParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingParticipantMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MeetingParticipantMutation) ResetUserID() {
	m.user_id = nil
}

// Where appends a list predicates to the MeetingParticipantMutation builder.
func (m *MeetingParticipantMutation) Where(ps ...predicate.MeetingParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MeetingParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MeetingParticipant).
func (m *MeetingParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingParticipantMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.meeting_id != nil {
		fields = append(fields, meetingparticipant.FieldMeetingID)
	}
	if m.user_id != nil {
		fields = append(fields, meetingparticipant.FieldUserID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meetingparticipant.FieldMeetingID:
		return m.MeetingID()
	case meetingparticipant.FieldUserID:
		return m.UserID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meetingparticipant.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case meetingparticipant.FieldUserID:
		return m.OldUserID(ctx)
	}
	return nil, fmt.Errorf("unknown MeetingParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meetingparticipant.FieldMeetingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case meetingparticipant.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	}
	return fmt.Errorf("unknown MeetingParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingParticipantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingParticipantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MeetingParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MeetingParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingParticipantMutation) ResetField(name string) error {
	switch name {
	case meetingparticipant.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case meetingparticipant.FieldUserID:
		m.ResetUserID()
		return nil
	}
	return fmt.Errorf("unknown MeetingParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingParticipantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingParticipantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingParticipantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MeetingParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingParticipantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MeetingParticipant edge %s", name)
}

// RadiologistPriceMutation represents an operation that mutates the RadiologistPrice nodes in the graph.
type RadiologistPriceMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	client_id            *uuid.UUID
	exam_type_id         *uuid.UUID
	radiologist_id       *uuid.UUID
	radiologist_value    *int64
	addradiologist_value *int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*RadiologistPrice, error)
	predicates           []predicate.RadiologistPrice
}

var _ ent.Mutation = (*RadiologistPriceMutation)(nil)

// radiologistpriceOption allows management of the mutation configuration using functional options.
type radiologistpriceOption func(*RadiologistPriceMutation)

// newRadiologistPriceMutation creates new mutation for the RadiologistPrice entity.
func newRadiologistPriceMutation(c config, op Op, opts ...radiologistpriceOption) *RadiologistPriceMutation {
	m := &RadiologistPriceMutation{
		config:        c,
		op:            op,
		typ:           TypeRadiologistPrice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRadiologistPriceID sets the ID field of the mutation.
func withRadiologistPriceID(id uuid.UUID) radiologistpriceOption {
	return func(m *RadiologistPriceMutation) {
		var (
			err   error
			once  sync.Once
			value *RadiologistPrice
		)
		m.oldValue = func(ctx context.Context) (*RadiologistPrice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RadiologistPrice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRadiologistPrice sets the old RadiologistPrice of the mutation.
func withRadiologistPrice(node *RadiologistPrice) radiologistpriceOption {
	return func(m *RadiologistPriceMutation) {
		m.oldValue = func(context.Context) (*RadiologistPrice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RadiologistPriceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RadiologistPriceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RadiologistPrice entities.
func (m *RadiologistPriceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RadiologistPriceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RadiologistPriceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RadiologistPrice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RadiologistPriceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RadiologistPriceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RadiologistPrice entity.
// If the RadiologistPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RadiologistPriceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RadiologistPriceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RadiologistPriceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RadiologistPriceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RadiologistPrice entity.
// If the RadiologistPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RadiologistPriceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RadiologistPriceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClientID sets the "client_id" field.
func (m *RadiologistPriceMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *RadiologistPriceMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the RadiologistPrice entity.
// If the RadiologistPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RadiologistPriceMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *RadiologistPriceMutation) ResetClientID() {
	m.client_id = nil
}

// SetExamTypeID sets the "exam_type_id" field.
func (m *RadiologistPriceMutation) SetExamTypeID(u uuid.UUID) {
	m.exam_type_id = &u
}

// ExamTypeID returns the value of the "exam_type_id" field in the mutation.
func (m *RadiologistPriceMutation) ExamTypeID() (r uuid.UUID, exists bool) {
	v := m.exam_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamTypeID returns the old "exam_type_id" field's value of the RadiologistPrice entity.
// If the RadiologistPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RadiologistPriceMutation) OldExamTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamTypeID: %w", err)
	}
	return oldValue.ExamTypeID, nil
}

// ResetExamTypeID resets all changes to the "exam_type_id" field.
func (m *RadiologistPriceMutation) ResetExamTypeID() {
	m.exam_type_id = nil
}

// SetRadiologistID sets the "radiologist_id" field.
func (m *RadiologistPriceMutation) SetRadiologistID(u uuid.UUID) {
	m.radiologist_id = &u
}

// RadiologistID returns the value of the "radiologist_id" field in the mutation.
func (m *RadiologistPriceMutation) RadiologistID() (r uuid.UUID, exists bool) {
	v := m.radiologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiologistID returns the old "radiologist_id" field's value of the RadiologistPrice entity.
// If the RadiologistPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RadiologistPriceMutation) OldRadiologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiologistID: %w", err)
	}
	return oldValue.RadiologistID, nil
}

// ResetRadiologistID resets all changes to the "radiologist_id" field.
func (m *RadiologistPriceMutation) ResetRadiologistID() {
	m.radiologist_id = nil
}

// SetRadiologistValue sets the "radiologist_value" field.
func (m *RadiologistPriceMutation) SetRadiologistValue(i int64) {
	m.radiologist_value = &i
	m.addradiologist_value = nil
}

// RadiologistValue returns the value of the "radiologist_value" field in the mutation.
func (m *RadiologistPriceMutation) RadiologistValue() (r int64, exists bool) {
	v := m.radiologist_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiologistValue returns the old "radiologist_value" field's value of the RadiologistPrice entity.
// If the RadiologistPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RadiologistPriceMutation) OldRadiologistValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiologistValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiologistValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiologistValue: %w", err)
	}
	return oldValue.RadiologistValue, nil
}

// AddRadiologistValue adds i to the "radiologist_value" field.
func (m *RadiologistPriceMutation) AddRadiologistValue(i int64) {
	if m.addradiologist_value != nil {
		*m.addradiologist_value += i
	} else {
		m.addradiologist_value = &i
	}
}

// AddedRadiologistValue returns the value that was added to the "radiologist_value" field in this mutation.
func (m *RadiologistPriceMutation) AddedRadiologistValue() (r int64, exists bool) {
	v := m.addradiologist_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetRadiologistValue resets all changes to the "radiologist_value" field.
func (m *RadiologistPriceMutation) ResetRadiologistValue() {
	m.radiologist_value = nil
	m.addradiologist_value = nil
}

// Where appends a list predicates to the RadiologistPriceMutation builder.
func (m *RadiologistPriceMutation) Where(ps ...predicate.RadiologistPrice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RadiologistPriceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RadiologistPriceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RadiologistPrice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RadiologistPriceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RadiologistPriceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RadiologistPrice).
func (m *RadiologistPriceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RadiologistPriceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, radiologistprice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, radiologistprice.FieldUpdatedAt)
	}
	if m.client_id != nil {
		fields = append(fields, radiologistprice.FieldClientID)
	}
	if m.exam_type_id != nil {
		fields = append(fields, radiologistprice.FieldExamTypeID)
	}
	if m.radiologist_id != nil {
		fields = append(fields, radiologistprice.FieldRadiologistID)
	}
	if m.radiologist_value != nil {
		fields = append(fields, radiologistprice.FieldRadiologistValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RadiologistPriceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case radiologistprice.FieldCreatedAt:
		return m.CreatedAt()
	case radiologistprice.FieldUpdatedAt:
		return m.UpdatedAt()
	case radiologistprice.FieldClientID:
		return m.ClientID()
	case radiologistprice.FieldExamTypeID:
		return m.ExamTypeID()
	case radiologistprice.FieldRadiologistID:
		return m.RadiologistID()
	case radiologistprice.FieldRadiologistValue:
		return m.RadiologistValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RadiologistPriceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case radiologistprice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case radiologistprice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case radiologistprice.FieldClientID:
		return m.OldClientID(ctx)
	case radiologistprice.FieldExamTypeID:
		return m.OldExamTypeID(ctx)
	case radiologistprice.FieldRadiologistID:
		return m.OldRadiologistID(ctx)
	case radiologistprice.FieldRadiologistValue:
		return m.OldRadiologistValue(ctx)
	}
	return nil, fmt.Errorf("unknown RadiologistPrice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RadiologistPriceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case radiologistprice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case radiologistprice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case radiologistprice.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case radiologistprice.FieldExamTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamTypeID(v)
		return nil
	case radiologistprice.FieldRadiologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiologistID(v)
		return nil
	case radiologistprice.FieldRadiologistValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiologistValue(v)
		return nil
	}
	return fmt.Errorf("unknown RadiologistPrice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RadiologistPriceMutation) AddedFields() []string {
	var fields []string
	if m.addradiologist_value != nil {
		fields = append(fields, radiologistprice.FieldRadiologistValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RadiologistPriceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case radiologistprice.FieldRadiologistValue:
		return m.AddedRadiologistValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RadiologistPriceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case radiologistprice.FieldRadiologistValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRadiologistValue(v)
		return nil
	}
	return fmt.Errorf("unknown RadiologistPrice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RadiologistPriceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RadiologistPriceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RadiologistPriceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RadiologistPrice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RadiologistPriceMutation) ResetField(name string) error {
	switch name {
	case radiologistprice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case radiologistprice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case radiologistprice.FieldClientID:
		m.ResetClientID()
		return nil
	case radiologistprice.FieldExamTypeID:
		m.ResetExamTypeID()
		return nil
	case radiologistprice.FieldRadiologistID:
		m.ResetRadiologistID()
		return nil
	case radiologistprice.FieldRadiologistValue:
		m.ResetRadiologistValue()
		return nil
	}
	return fmt.Errorf("unknown RadiologistPrice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RadiologistPriceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RadiologistPriceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RadiologistPriceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RadiologistPriceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RadiologistPriceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RadiologistPriceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RadiologistPriceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RadiologistPrice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RadiologistPriceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RadiologistPrice edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	name                     *string
	email                    *string
	password_hash            *string
	role                     *user.Role
	client_id                *uuid.UUID
	softwares                *[]string
	appendsoftwares          []string
	is_active                *bool
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
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
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetClientID sets the "client_id" field.
func (m *UserMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *UserMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *UserMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[user.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *UserMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[user.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *UserMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, user.FieldClientID)
}

// SetSoftwares sets the "softwares" field.
func (m *UserMutation) SetSoftwares(s []string) {
	m.softwares = &s
	m.appendsoftwares = nil
}

// Softwares returns the value of the "softwares" field in the mutation.
func (m *UserMutation) Softwares() (r []string, exists bool) {
	v := m.softwares
	if v == nil {
		return
	}
	return *v, true
}

// OldSoftwares returns the old "softwares" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSoftwares(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoftwares is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoftwares requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoftwares: %w", err)
	}
	return oldValue.Softwares, nil
}

// AppendSoftwares adds s to the "softwares" field.
func (m *UserMutation) AppendSoftwares(s []string) {
	m.appendsoftwares = append(m.appendsoftwares, s...)
}

// AppendedSoftwares returns the list of values that were appended to the "softwares" field in this mutation.
func (m *UserMutation) AppendedSoftwares() ([]string, bool) {
	if len(m.appendsoftwares) == 0 {
		return nil, false
	}
	return m.appendsoftwares, true
}

// ClearSoftwares clears the value of the "softwares" field.
func (m *UserMutation) ClearSoftwares() {
	m.softwares = nil
	m.appendsoftwares = nil
	m.clearedFields[user.FieldSoftwares] = struct{}{}
}

// SoftwaresCleared returns if the "softwares" field was cleared in this mutation.
func (m *UserMutation) SoftwaresCleared() bool {
	_, ok := m.clearedFields[user.FieldSoftwares]
	return ok
}

// ResetSoftwares resets all changes to the "softwares" field.
func (m *UserMutation) ResetSoftwares() {
	m.softwares = nil
	m.appendsoftwares = nil
	delete(m.clearedFields, user.FieldSoftwares)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.client_id != nil {
		fields = append(fields, user.FieldClientID)
	}
	if m.softwares != nil {
		fields = append(fields, user.FieldSoftwares)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldClientID:
		return m.ClientID()
	case user.FieldSoftwares:
		return m.Softwares()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldClientID:
		return m.OldClientID(ctx)
	case user.FieldSoftwares:
		return m.OldSoftwares(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case user.FieldSoftwares:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoftwares(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldClientID) {
		fields = append(fields, user.FieldClientID)
	}
	if m.FieldCleared(user.FieldSoftwares) {
		fields = append(fields, user.FieldSoftwares)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldClientID:
		m.ClearClientID()
		return nil
	case user.FieldSoftwares:
		m.ClearSoftwares()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldClientID:
		m.ResetClientID()
		return nil
	case user.FieldSoftwares:
		m.ResetSoftwares()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// VacationMutation represents an operation that mutates the Vacation nodes in the graph.
type VacationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	start_date    *time.Time
	end_date      *time.Time
	note          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Vacation, error)
	predicates    []predicate.Vacation
}

var _ ent.Mutation = (*VacationMutation)(nil)

// vacationOption allows management of the mutation configuration using functional options.
type vacationOption func(*VacationMutation)

// newVacationMutation creates new mutation for the Vacation entity.
func newVacationMutation(c config, op Op, opts ...vacationOption) *VacationMutation {
	m := &VacationMutation{
		config:        c,
		op:            op,
		typ:           TypeVacation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVacationID sets the ID field of the mutation.
func withVacationID(id uuid.UUID) vacationOption {
	return func(m *VacationMutation) {
		var (
			err   error
			once  sync.Once
			value *Vacation
		)
		m.oldValue = func(ctx context.Context) (*Vacation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vacation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVacation sets the old Vacation of the mutation.
func withVacation(node *Vacation) vacationOption {
	return func(m *VacationMutation) {
		m.oldValue = func(context.Context) (*Vacation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VacationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VacationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vacation entities.
func (m *VacationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VacationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VacationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vacation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VacationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VacationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vacation entity.
// If the Vacation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VacationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VacationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *VacationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VacationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Vacation entity.
// If the Vacation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VacationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VacationMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartDate sets the "start_date" field.
func (m *VacationMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *VacationMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Vacation entity.
// If the Vacation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VacationMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *VacationMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *VacationMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *VacationMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Vacation entity.
// If the Vacation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VacationMutation) OldEndDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *VacationMutation) ResetEndDate() {
	m.end_date = nil
}

// SetNote sets the "note" field.
func (m *VacationMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *VacationMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Vacation entity.
// If the Vacation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VacationMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *VacationMutation) ClearNote() {
	m.note = nil
	m.clearedFields[vacation.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *VacationMutation) NoteCleared() bool {
	_, ok := m.clearedFields[vacation.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *VacationMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, vacation.FieldNote)
}

// Where appends a list predicates to the VacationMutation builder.
func (m *VacationMutation) Where(ps ...predicate.Vacation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VacationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VacationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vacation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VacationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VacationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vacation).
func (m *VacationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VacationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, vacation.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, vacation.FieldUserID)
	}
	if m.start_date != nil {
		fields = append(fields, vacation.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, vacation.FieldEndDate)
	}
	if m.note != nil {
		fields = append(fields, vacation.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VacationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vacation.FieldCreatedAt:
		return m.CreatedAt()
	case vacation.FieldUserID:
		return m.UserID()
	case vacation.FieldStartDate:
		return m.StartDate()
	case vacation.FieldEndDate:
		return m.EndDate()
	case vacation.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VacationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vacation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vacation.FieldUserID:
		return m.OldUserID(ctx)
	case vacation.FieldStartDate:
		return m.OldStartDate(ctx)
	case vacation.FieldEndDate:
		return m.OldEndDate(ctx)
	case vacation.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown Vacation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VacationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vacation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vacation.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case vacation.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case vacation.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case vacation.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown Vacation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VacationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VacationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VacationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vacation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VacationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vacation.FieldNote) {
		fields = append(fields, vacation.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VacationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VacationMutation) ClearField(name string) error {
	switch name {
	case vacation.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Vacation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VacationMutation) ResetField(name string) error {
	switch name {
	case vacation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vacation.FieldUserID:
		m.ResetUserID()
		return nil
	case vacation.FieldStartDate:
		m.ResetStartDate()
		return nil
	case vacation.FieldEndDate:
		m.ResetEndDate()
		return nil
	case vacation.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown Vacation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VacationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VacationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VacationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VacationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VacationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VacationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VacationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vacation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VacationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vacation edge %s", name)
}

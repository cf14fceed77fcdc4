// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/apicredential"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/graphrun"
	"planforge/ent/prd"
	"planforge/ent/predicate"
	"planforge/ent/project"
	"planforge/ent/user"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPICredential = "APICredential"
	TypeDependency    = "Dependency"
	TypeFeature       = "Feature"
	TypeGraphRun      = "GraphRun"
	TypePRD           = "PRD"
	TypeProject       = "Project"
	TypeUser          = "User"
)

// APICredentialMutation represents an operation that mutates the APICredential nodes in the graph.
type APICredentialMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	provider      *string
	encrypted_key *[]byte
	key_hint      *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	owner         *uuid.UUID
	clearedowner  bool
	done          bool
	oldValue      func(context.Context) (*APICredential, error)
	predicates    []predicate.APICredential
}

var _ ent.Mutation = (*APICredentialMutation)(nil)

// apicredentialOption allows management of the mutation configuration using functional options.
type apicredentialOption func(*APICredentialMutation)

// newAPICredentialMutation creates new mutation for the APICredential entity.
func newAPICredentialMutation(c config, op Op, opts ...apicredentialOption) *APICredentialMutation {
	m := &APICredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeAPICredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPICredentialID sets the ID field of the mutation.
func withAPICredentialID(id uuid.UUID) apicredentialOption {
	return func(m *APICredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *APICredential
		)
		m.oldValue = func(ctx context.Context) (*APICredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APICredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPICredential sets the old APICredential of the mutation.
func withAPICredential(node *APICredential) apicredentialOption {
	return func(m *APICredentialMutation) {
		m.oldValue = func(context.Context) (*APICredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APICredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APICredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APICredential entities.
func (m *APICredentialMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APICredentialMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APICredentialMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APICredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *APICredentialMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *APICredentialMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the APICredential entity.
// If the APICredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICredentialMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *APICredentialMutation) ResetProvider() {
	m.provider = nil
}

// SetEncryptedKey sets the "encrypted_key" field.
func (m *APICredentialMutation) SetEncryptedKey(b []byte) {
	m.encrypted_key = &b
}

// EncryptedKey returns the value of the "encrypted_key" field in the mutation.
func (m *APICredentialMutation) EncryptedKey() (r []byte, exists bool) {
	v := m.encrypted_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedKey returns the old "encrypted_key" field's value of the APICredential entity.
// If the APICredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICredentialMutation) OldEncryptedKey(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedKey: %w", err)
	}
	return oldValue.EncryptedKey, nil
}

// ResetEncryptedKey resets all changes to the "encrypted_key" field.
func (m *APICredentialMutation) ResetEncryptedKey() {
	m.encrypted_key = nil
}

// SetKeyHint sets the "key_hint" field.
func (m *APICredentialMutation) SetKeyHint(s string) {
	m.key_hint = &s
}

// KeyHint returns the value of the "key_hint" field in the mutation.
func (m *APICredentialMutation) KeyHint() (r string, exists bool) {
	v := m.key_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHint returns the old "key_hint" field's value of the APICredential entity.
// If the APICredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICredentialMutation) OldKeyHint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHint: %w", err)
	}
	return oldValue.KeyHint, nil
}

// ClearKeyHint clears the value of the "key_hint" field.
func (m *APICredentialMutation) ClearKeyHint() {
	m.key_hint = nil
	m.clearedFields[apicredential.FieldKeyHint] = struct{}{}
}

// KeyHintCleared returns if the "key_hint" field was cleared in this mutation.
func (m *APICredentialMutation) KeyHintCleared() bool {
	_, ok := m.clearedFields[apicredential.FieldKeyHint]
	return ok
}

// ResetKeyHint resets all changes to the "key_hint" field.
func (m *APICredentialMutation) ResetKeyHint() {
	m.key_hint = nil
	delete(m.clearedFields, apicredential.FieldKeyHint)
}

// SetCreatedAt sets the "created_at" field.
func (m *APICredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APICredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APICredential entity.
// If the APICredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *APICredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *APICredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *APICredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the APICredential entity.
// If the APICredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *APICredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *APICredentialMutation) SetOwnerID(id uuid.UUID) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *APICredentialMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *APICredentialMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *APICredentialMutation) OwnerID() (id uuid.UUID, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *APICredentialMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *APICredentialMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the APICredentialMutation builder.
func (m *APICredentialMutation) Where(ps ...predicate.APICredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APICredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APICredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APICredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APICredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APICredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APICredential).
func (m *APICredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APICredentialMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.provider != nil {
		fields = append(fields, apicredential.FieldProvider)
	}
	if m.encrypted_key != nil {
		fields = append(fields, apicredential.FieldEncryptedKey)
	}
	if m.key_hint != nil {
		fields = append(fields, apicredential.FieldKeyHint)
	}
	if m.created_at != nil {
		fields = append(fields, apicredential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, apicredential.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APICredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apicredential.FieldProvider:
		return m.Provider()
	case apicredential.FieldEncryptedKey:
		return m.EncryptedKey()
	case apicredential.FieldKeyHint:
		return m.KeyHint()
	case apicredential.FieldCreatedAt:
		return m.CreatedAt()
	case apicredential.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APICredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apicredential.FieldProvider:
		return m.OldProvider(ctx)
	case apicredential.FieldEncryptedKey:
		return m.OldEncryptedKey(ctx)
	case apicredential.FieldKeyHint:
		return m.OldKeyHint(ctx)
	case apicredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case apicredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APICredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APICredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apicredential.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case apicredential.FieldEncryptedKey:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedKey(v)
		return nil
	case apicredential.FieldKeyHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHint(v)
		return nil
	case apicredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case apicredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APICredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APICredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APICredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APICredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APICredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APICredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apicredential.FieldKeyHint) {
		fields = append(fields, apicredential.FieldKeyHint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APICredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APICredentialMutation) ClearField(name string) error {
	switch name {
	case apicredential.FieldKeyHint:
		m.ClearKeyHint()
		return nil
	}
	return fmt.Errorf("unknown APICredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APICredentialMutation) ResetField(name string) error {
	switch name {
	case apicredential.FieldProvider:
		m.ResetProvider()
		return nil
	case apicredential.FieldEncryptedKey:
		m.ResetEncryptedKey()
		return nil
	case apicredential.FieldKeyHint:
		m.ResetKeyHint()
		return nil
	case apicredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case apicredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown APICredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APICredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, apicredential.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APICredentialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apicredential.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APICredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APICredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APICredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, apicredential.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APICredentialMutation) EdgeCleared(name string) bool {
	switch name {
	case apicredential.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APICredentialMutation) ClearEdge(name string) error {
	switch name {
	case apicredential.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown APICredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APICredentialMutation) ResetEdge(name string) error {
	switch name {
	case apicredential.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown APICredential edge %s", name)
}

// DependencyMutation represents an operation that mutates the Dependency nodes in the graph.
type DependencyMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	note           *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	source         *uuid.UUID
	clearedsource  bool
	target         *uuid.UUID
	clearedtarget  bool
	done           bool
	oldValue       func(context.Context) (*Dependency, error)
	predicates     []predicate.Dependency
}

var _ ent.Mutation = (*DependencyMutation)(nil)

// dependencyOption allows management of the mutation configuration using functional options.
type dependencyOption func(*DependencyMutation)

// newDependencyMutation creates new mutation for the Dependency entity.
func newDependencyMutation(c config, op Op, opts ...dependencyOption) *DependencyMutation {
	m := &DependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDependencyID sets the ID field of the mutation.
func withDependencyID(id uuid.UUID) dependencyOption {
	return func(m *DependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *Dependency
		)
		m.oldValue = func(ctx context.Context) (*Dependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDependency sets the old Dependency of the mutation.
func withDependency(node *Dependency) dependencyOption {
	return func(m *DependencyMutation) {
		m.oldValue = func(context.Context) (*Dependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dependency entities.
func (m *DependencyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DependencyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DependencyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNote sets the "note" field.
func (m *DependencyMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *DependencyMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Dependency entity.
// If the Dependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyMutation) OldNote(ctx context.Context) (v string, err error) {
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
func (m *DependencyMutation) ClearNote() {
	m.note = nil
	m.clearedFields[dependency.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *DependencyMutation) NoteCleared() bool {
	_, ok := m.clearedFields[dependency.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *DependencyMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, dependency.FieldNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *DependencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DependencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Dependency entity.
// If the Dependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DependencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *DependencyMutation) SetProjectID(id uuid.UUID) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *DependencyMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *DependencyMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *DependencyMutation) ProjectID() (id uuid.UUID, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *DependencyMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *DependencyMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetSourceID sets the "source" edge to the Feature entity by id.
func (m *DependencyMutation) SetSourceID(id uuid.UUID) {
	m.source = &id
}

// ClearSource clears the "source" edge to the Feature entity.
func (m *DependencyMutation) ClearSource() {
	m.clearedsource = true
}

// SourceCleared reports if the "source" edge to the Feature entity was cleared.
func (m *DependencyMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceID returns the "source" edge ID in the mutation.
func (m *DependencyMutation) SourceID() (id uuid.UUID, exists bool) {
	if m.source != nil {
		return *m.source, true
	}
	return
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *DependencyMutation) SourceIDs() (ids []uuid.UUID) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *DependencyMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// SetTargetID sets the "target" edge to the Feature entity by id.
func (m *DependencyMutation) SetTargetID(id uuid.UUID) {
	m.target = &id
}

// ClearTarget clears the "target" edge to the Feature entity.
func (m *DependencyMutation) ClearTarget() {
	m.clearedtarget = true
}

// TargetCleared reports if the "target" edge to the Feature entity was cleared.
func (m *DependencyMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetID returns the "target" edge ID in the mutation.
func (m *DependencyMutation) TargetID() (id uuid.UUID, exists bool) {
	if m.target != nil {
		return *m.target, true
	}
	return
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *DependencyMutation) TargetIDs() (ids []uuid.UUID) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *DependencyMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// Where appends a list predicates to the DependencyMutation builder.
func (m *DependencyMutation) Where(ps ...predicate.Dependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dependency).
func (m *DependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DependencyMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.note != nil {
		fields = append(fields, dependency.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, dependency.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dependency.FieldNote:
		return m.Note()
	case dependency.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dependency.FieldNote:
		return m.OldNote(ctx)
	case dependency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Dependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dependency.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case dependency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Dependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DependencyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DependencyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Dependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DependencyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dependency.FieldNote) {
		fields = append(fields, dependency.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DependencyMutation) ClearField(name string) error {
	switch name {
	case dependency.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Dependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DependencyMutation) ResetField(name string) error {
	switch name {
	case dependency.FieldNote:
		m.ResetNote()
		return nil
	case dependency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Dependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, dependency.EdgeProject)
	}
	if m.source != nil {
		edges = append(edges, dependency.EdgeSource)
	}
	if m.target != nil {
		edges = append(edges, dependency.EdgeTarget)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DependencyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dependency.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case dependency.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	case dependency.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, dependency.EdgeProject)
	}
	if m.clearedsource {
		edges = append(edges, dependency.EdgeSource)
	}
	if m.clearedtarget {
		edges = append(edges, dependency.EdgeTarget)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DependencyMutation) EdgeCleared(name string) bool {
	switch name {
	case dependency.EdgeProject:
		return m.clearedproject
	case dependency.EdgeSource:
		return m.clearedsource
	case dependency.EdgeTarget:
		return m.clearedtarget
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DependencyMutation) ClearEdge(name string) error {
	switch name {
	case dependency.EdgeProject:
		m.ClearProject()
		return nil
	case dependency.EdgeSource:
		m.ClearSource()
		return nil
	case dependency.EdgeTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown Dependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DependencyMutation) ResetEdge(name string) error {
	switch name {
	case dependency.EdgeProject:
		m.ResetProject()
		return nil
	case dependency.EdgeSource:
		m.ResetSource()
		return nil
	case dependency.EdgeTarget:
		m.ResetTarget()
		return nil
	}
	return fmt.Errorf("unknown Dependency edge %s", name)
}

// FeatureMutation represents an operation that mutates the Feature nodes in the graph.
type FeatureMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	title           *string
	notes           *string
	pos_x           *float64
	addpos_x        *float64
	pos_y           *float64
	addpos_y        *float64
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	project         *uuid.UUID
	clearedproject  bool
	outgoing        map[uuid.UUID]struct{}
	removedoutgoing map[uuid.UUID]struct{}
	clearedoutgoing bool
	incoming        map[uuid.UUID]struct{}
	removedincoming map[uuid.UUID]struct{}
	clearedincoming bool
	prd             map[uuid.UUID]struct{}
	removedprd      map[uuid.UUID]struct{}
	clearedprd      bool
	done            bool
	oldValue        func(context.Context) (*Feature, error)
	predicates      []predicate.Feature
}

var _ ent.Mutation = (*FeatureMutation)(nil)

// featureOption allows management of the mutation configuration using functional options.
type featureOption func(*FeatureMutation)

// newFeatureMutation creates new mutation for the Feature entity.
func newFeatureMutation(c config, op Op, opts ...featureOption) *FeatureMutation {
	m := &FeatureMutation{
		config:        c,
		op:            op,
		typ:           TypeFeature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeatureID sets the ID field of the mutation.
func withFeatureID(id uuid.UUID) featureOption {
	return func(m *FeatureMutation) {
		var (
			err   error
			once  sync.Once
			value *Feature
		)
		m.oldValue = func(ctx context.Context) (*Feature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeature sets the old Feature of the mutation.
func withFeature(node *Feature) featureOption {
	return func(m *FeatureMutation) {
		m.oldValue = func(context.Context) (*Feature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feature entities.
func (m *FeatureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeatureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeatureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *FeatureMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FeatureMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *FeatureMutation) ResetTitle() {
	m.title = nil
}

// SetNotes sets the "notes" field.
func (m *FeatureMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *FeatureMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *FeatureMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[feature.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *FeatureMutation) NotesCleared() bool {
	_, ok := m.clearedFields[feature.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *FeatureMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, feature.FieldNotes)
}

// SetPosX sets the "pos_x" field.
func (m *FeatureMutation) SetPosX(f float64) {
	m.pos_x = &f
	m.addpos_x = nil
}

// PosX returns the value of the "pos_x" field in the mutation.
func (m *FeatureMutation) PosX() (r float64, exists bool) {
	v := m.pos_x
	if v == nil {
		return
	}
	return *v, true
}

// OldPosX returns the old "pos_x" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldPosX(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosX: %w", err)
	}
	return oldValue.PosX, nil
}

// AddPosX adds f to the "pos_x" field.
func (m *FeatureMutation) AddPosX(f float64) {
	if m.addpos_x != nil {
		*m.addpos_x += f
	} else {
		m.addpos_x = &f
	}
}

// AddedPosX returns the value that was added to the "pos_x" field in this mutation.
func (m *FeatureMutation) AddedPosX() (r float64, exists bool) {
	v := m.addpos_x
	if v == nil {
		return
	}
	return *v, true
}

// ClearPosX clears the value of the "pos_x" field.
func (m *FeatureMutation) ClearPosX() {
	m.pos_x = nil
	m.addpos_x = nil
	m.clearedFields[feature.FieldPosX] = struct{}{}
}

// PosXCleared returns if the "pos_x" field was cleared in this mutation.
func (m *FeatureMutation) PosXCleared() bool {
	_, ok := m.clearedFields[feature.FieldPosX]
	return ok
}

// ResetPosX resets all changes to the "pos_x" field.
func (m *FeatureMutation) ResetPosX() {
	m.pos_x = nil
	m.addpos_x = nil
	delete(m.clearedFields, feature.FieldPosX)
}

// SetPosY sets the "pos_y" field.
func (m *FeatureMutation) SetPosY(f float64) {
	m.pos_y = &f
	m.addpos_y = nil
}

// PosY returns the value of the "pos_y" field in the mutation.
func (m *FeatureMutation) PosY() (r float64, exists bool) {
	v := m.pos_y
	if v == nil {
		return
	}
	return *v, true
}

// OldPosY returns the old "pos_y" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldPosY(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosY: %w", err)
	}
	return oldValue.PosY, nil
}

// AddPosY adds f to the "pos_y" field.
func (m *FeatureMutation) AddPosY(f float64) {
	if m.addpos_y != nil {
		*m.addpos_y += f
	} else {
		m.addpos_y = &f
	}
}

// AddedPosY returns the value that was added to the "pos_y" field in this mutation.
func (m *FeatureMutation) AddedPosY() (r float64, exists bool) {
	v := m.addpos_y
	if v == nil {
		return
	}
	return *v, true
}

// ClearPosY clears the value of the "pos_y" field.
func (m *FeatureMutation) ClearPosY() {
	m.pos_y = nil
	m.addpos_y = nil
	m.clearedFields[feature.FieldPosY] = struct{}{}
}

// PosYCleared returns if the "pos_y" field was cleared in this mutation.
func (m *FeatureMutation) PosYCleared() bool {
	_, ok := m.clearedFields[feature.FieldPosY]
	return ok
}

// ResetPosY resets all changes to the "pos_y" field.
func (m *FeatureMutation) ResetPosY() {
	m.pos_y = nil
	m.addpos_y = nil
	delete(m.clearedFields, feature.FieldPosY)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeatureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeatureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FeatureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeatureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeatureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FeatureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *FeatureMutation) SetProjectID(id uuid.UUID) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *FeatureMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *FeatureMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *FeatureMutation) ProjectID() (id uuid.UUID, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *FeatureMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *FeatureMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddOutgoingIDs adds the "outgoing" edge to the Dependency entity by ids.
func (m *FeatureMutation) AddOutgoingIDs(ids ...uuid.UUID) {
	if m.outgoing == nil {
		m.outgoing = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.outgoing[ids[i]] = struct{}{}
	}
}

// ClearOutgoing clears the "outgoing" edge to the Dependency entity.
func (m *FeatureMutation) ClearOutgoing() {
	m.clearedoutgoing = true
}

// OutgoingCleared reports if the "outgoing" edge to the Dependency entity was cleared.
func (m *FeatureMutation) OutgoingCleared() bool {
	return m.clearedoutgoing
}

// RemoveOutgoingIDs removes the "outgoing" edge to the Dependency entity by IDs.
func (m *FeatureMutation) RemoveOutgoingIDs(ids ...uuid.UUID) {
	if m.removedoutgoing == nil {
		m.removedoutgoing = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.outgoing, ids[i])
		m.removedoutgoing[ids[i]] = struct{}{}
	}
}

// RemovedOutgoing returns the removed IDs of the "outgoing" edge to the Dependency entity.
func (m *FeatureMutation) RemovedOutgoingIDs() (ids []uuid.UUID) {
	for id := range m.removedoutgoing {
		ids = append(ids, id)
	}
	return
}

// OutgoingIDs returns the "outgoing" edge IDs in the mutation.
func (m *FeatureMutation) OutgoingIDs() (ids []uuid.UUID) {
	for id := range m.outgoing {
		ids = append(ids, id)
	}
	return
}

// ResetOutgoing resets all changes to the "outgoing" edge.
func (m *FeatureMutation) ResetOutgoing() {
	m.outgoing = nil
	m.clearedoutgoing = false
	m.removedoutgoing = nil
}

// AddIncomingIDs adds the "incoming" edge to the Dependency entity by ids.
func (m *FeatureMutation) AddIncomingIDs(ids ...uuid.UUID) {
	if m.incoming == nil {
		m.incoming = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.incoming[ids[i]] = struct{}{}
	}
}

// ClearIncoming clears the "incoming" edge to the Dependency entity.
func (m *FeatureMutation) ClearIncoming() {
	m.clearedincoming = true
}

// IncomingCleared reports if the "incoming" edge to the Dependency entity was cleared.
func (m *FeatureMutation) IncomingCleared() bool {
	return m.clearedincoming
}

// RemoveIncomingIDs removes the "incoming" edge to the Dependency entity by IDs.
func (m *FeatureMutation) RemoveIncomingIDs(ids ...uuid.UUID) {
	if m.removedincoming == nil {
		m.removedincoming = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.incoming, ids[i])
		m.removedincoming[ids[i]] = struct{}{}
	}
}

// RemovedIncoming returns the removed IDs of the "incoming" edge to the Dependency entity.
func (m *FeatureMutation) RemovedIncomingIDs() (ids []uuid.UUID) {
	for id := range m.removedincoming {
		ids = append(ids, id)
	}
	return
}

// IncomingIDs returns the "incoming" edge IDs in the mutation.
func (m *FeatureMutation) IncomingIDs() (ids []uuid.UUID) {
	for id := range m.incoming {
		ids = append(ids, id)
	}
	return
}

// ResetIncoming resets all changes to the "incoming" edge.
func (m *FeatureMutation) ResetIncoming() {
	m.incoming = nil
	m.clearedincoming = false
	m.removedincoming = nil
}

// AddPrdIDs adds the "prd" edge to the PRD entity by ids.
func (m *FeatureMutation) AddPrdIDs(ids ...uuid.UUID) {
	if m.prd == nil {
		m.prd = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prd[ids[i]] = struct{}{}
	}
}

// ClearPrd clears the "prd" edge to the PRD entity.
func (m *FeatureMutation) ClearPrd() {
	m.clearedprd = true
}

// PrdCleared reports if the "prd" edge to the PRD entity was cleared.
func (m *FeatureMutation) PrdCleared() bool {
	return m.clearedprd
}

// RemovePrdIDs removes the "prd" edge to the PRD entity by IDs.
func (m *FeatureMutation) RemovePrdIDs(ids ...uuid.UUID) {
	if m.removedprd == nil {
		m.removedprd = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prd, ids[i])
		m.removedprd[ids[i]] = struct{}{}
	}
}

// RemovedPrd returns the removed IDs of the "prd" edge to the PRD entity.
func (m *FeatureMutation) RemovedPrdIDs() (ids []uuid.UUID) {
	for id := range m.removedprd {
		ids = append(ids, id)
	}
	return
}

// PrdIDs returns the "prd" edge IDs in the mutation.
func (m *FeatureMutation) PrdIDs() (ids []uuid.UUID) {
	for id := range m.prd {
		ids = append(ids, id)
	}
	return
}

// ResetPrd resets all changes to the "prd" edge.
func (m *FeatureMutation) ResetPrd() {
	m.prd = nil
	m.clearedprd = false
	m.removedprd = nil
}

// Where appends a list predicates to the FeatureMutation builder.
func (m *FeatureMutation) Where(ps ...predicate.Feature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feature).
func (m *FeatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeatureMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.title != nil {
		fields = append(fields, feature.FieldTitle)
	}
	if m.notes != nil {
		fields = append(fields, feature.FieldNotes)
	}
	if m.pos_x != nil {
		fields = append(fields, feature.FieldPosX)
	}
	if m.pos_y != nil {
		fields = append(fields, feature.FieldPosY)
	}
	if m.created_at != nil {
		fields = append(fields, feature.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, feature.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feature.FieldTitle:
		return m.Title()
	case feature.FieldNotes:
		return m.Notes()
	case feature.FieldPosX:
		return m.PosX()
	case feature.FieldPosY:
		return m.PosY()
	case feature.FieldCreatedAt:
		return m.CreatedAt()
	case feature.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feature.FieldTitle:
		return m.OldTitle(ctx)
	case feature.FieldNotes:
		return m.OldNotes(ctx)
	case feature.FieldPosX:
		return m.OldPosX(ctx)
	case feature.FieldPosY:
		return m.OldPosY(ctx)
	case feature.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feature.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feature.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case feature.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case feature.FieldPosX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosX(v)
		return nil
	case feature.FieldPosY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosY(v)
		return nil
	case feature.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feature.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeatureMutation) AddedFields() []string {
	var fields []string
	if m.addpos_x != nil {
		fields = append(fields, feature.FieldPosX)
	}
	if m.addpos_y != nil {
		fields = append(fields, feature.FieldPosY)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeatureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feature.FieldPosX:
		return m.AddedPosX()
	case feature.FieldPosY:
		return m.AddedPosY()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feature.FieldPosX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosX(v)
		return nil
	case feature.FieldPosY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosY(v)
		return nil
	}
	return fmt.Errorf("unknown Feature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeatureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feature.FieldNotes) {
		fields = append(fields, feature.FieldNotes)
	}
	if m.FieldCleared(feature.FieldPosX) {
		fields = append(fields, feature.FieldPosX)
	}
	if m.FieldCleared(feature.FieldPosY) {
		fields = append(fields, feature.FieldPosY)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeatureMutation) ClearField(name string) error {
	switch name {
	case feature.FieldNotes:
		m.ClearNotes()
		return nil
	case feature.FieldPosX:
		m.ClearPosX()
		return nil
	case feature.FieldPosY:
		m.ClearPosY()
		return nil
	}
	return fmt.Errorf("unknown Feature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeatureMutation) ResetField(name string) error {
	switch name {
	case feature.FieldTitle:
		m.ResetTitle()
		return nil
	case feature.FieldNotes:
		m.ResetNotes()
		return nil
	case feature.FieldPosX:
		m.ResetPosX()
		return nil
	case feature.FieldPosY:
		m.ResetPosY()
		return nil
	case feature.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feature.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, feature.EdgeProject)
	}
	if m.outgoing != nil {
		edges = append(edges, feature.EdgeOutgoing)
	}
	if m.incoming != nil {
		edges = append(edges, feature.EdgeIncoming)
	}
	if m.prd != nil {
		edges = append(edges, feature.EdgePrd)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeatureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feature.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case feature.EdgeOutgoing:
		ids := make([]ent.Value, 0, len(m.outgoing))
		for id := range m.outgoing {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeIncoming:
		ids := make([]ent.Value, 0, len(m.incoming))
		for id := range m.incoming {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgePrd:
		ids := make([]ent.Value, 0, len(m.prd))
		for id := range m.prd {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedoutgoing != nil {
		edges = append(edges, feature.EdgeOutgoing)
	}
	if m.removedincoming != nil {
		edges = append(edges, feature.EdgeIncoming)
	}
	if m.removedprd != nil {
		edges = append(edges, feature.EdgePrd)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeatureMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case feature.EdgeOutgoing:
		ids := make([]ent.Value, 0, len(m.removedoutgoing))
		for id := range m.removedoutgoing {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeIncoming:
		ids := make([]ent.Value, 0, len(m.removedincoming))
		for id := range m.removedincoming {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgePrd:
		ids := make([]ent.Value, 0, len(m.removedprd))
		for id := range m.removedprd {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, feature.EdgeProject)
	}
	if m.clearedoutgoing {
		edges = append(edges, feature.EdgeOutgoing)
	}
	if m.clearedincoming {
		edges = append(edges, feature.EdgeIncoming)
	}
	if m.clearedprd {
		edges = append(edges, feature.EdgePrd)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeatureMutation) EdgeCleared(name string) bool {
	switch name {
	case feature.EdgeProject:
		return m.clearedproject
	case feature.EdgeOutgoing:
		return m.clearedoutgoing
	case feature.EdgeIncoming:
		return m.clearedincoming
	case feature.EdgePrd:
		return m.clearedprd
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeatureMutation) ClearEdge(name string) error {
	switch name {
	case feature.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Feature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeatureMutation) ResetEdge(name string) error {
	switch name {
	case feature.EdgeProject:
		m.ResetProject()
		return nil
	case feature.EdgeOutgoing:
		m.ResetOutgoing()
		return nil
	case feature.EdgeIncoming:
		m.ResetIncoming()
		return nil
	case feature.EdgePrd:
		m.ResetPrd()
		return nil
	}
	return fmt.Errorf("unknown Feature edge %s", name)
}

// GraphRunMutation represents an operation that mutates the GraphRun nodes in the graph.
type GraphRunMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	model            *string
	used_fallback    *bool
	dropped_edges    *int
	adddropped_edges *int
	feature_count    *int
	addfeature_count *int
	edge_count       *int
	addedge_count    *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	project          *uuid.UUID
	clearedproject   bool
	done             bool
	oldValue         func(context.Context) (*GraphRun, error)
	predicates       []predicate.GraphRun
}

var _ ent.Mutation = (*GraphRunMutation)(nil)

// graphrunOption allows management of the mutation configuration using functional options.
type graphrunOption func(*GraphRunMutation)

// newGraphRunMutation creates new mutation for the GraphRun entity.
func newGraphRunMutation(c config, op Op, opts ...graphrunOption) *GraphRunMutation {
	m := &GraphRunMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphRunID sets the ID field of the mutation.
func withGraphRunID(id uuid.UUID) graphrunOption {
	return func(m *GraphRunMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphRun
		)
		m.oldValue = func(ctx context.Context) (*GraphRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphRun sets the old GraphRun of the mutation.
func withGraphRun(node *GraphRun) graphrunOption {
	return func(m *GraphRunMutation) {
		m.oldValue = func(context.Context) (*GraphRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphRun entities.
func (m *GraphRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModel sets the "model" field.
func (m *GraphRunMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GraphRunMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GraphRun entity.
// If the GraphRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphRunMutation) OldModel(ctx context.Context) (v string, err error) {
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

// ClearModel clears the value of the "model" field.
func (m *GraphRunMutation) ClearModel() {
	m.model = nil
	m.clearedFields[graphrun.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *GraphRunMutation) ModelCleared() bool {
	_, ok := m.clearedFields[graphrun.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *GraphRunMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, graphrun.FieldModel)
}

// SetUsedFallback sets the "used_fallback" field.
func (m *GraphRunMutation) SetUsedFallback(b bool) {
	m.used_fallback = &b
}

// UsedFallback returns the value of the "used_fallback" field in the mutation.
func (m *GraphRunMutation) UsedFallback() (r bool, exists bool) {
	v := m.used_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedFallback returns the old "used_fallback" field's value of the GraphRun entity.
// If the GraphRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphRunMutation) OldUsedFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedFallback: %w", err)
	}
	return oldValue.UsedFallback, nil
}

// ResetUsedFallback resets all changes to the "used_fallback" field.
func (m *GraphRunMutation) ResetUsedFallback() {
	m.used_fallback = nil
}

// SetDroppedEdges sets the "dropped_edges" field.
func (m *GraphRunMutation) SetDroppedEdges(i int) {
	m.dropped_edges = &i
	m.adddropped_edges = nil
}

// DroppedEdges returns the value of the "dropped_edges" field in the mutation.
func (m *GraphRunMutation) DroppedEdges() (r int, exists bool) {
	v := m.dropped_edges
	if v == nil {
		return
	}
	return *v, true
}

// OldDroppedEdges returns the old "dropped_edges" field's value of the GraphRun entity.
// If the GraphRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphRunMutation) OldDroppedEdges(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDroppedEdges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDroppedEdges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDroppedEdges: %w", err)
	}
	return oldValue.DroppedEdges, nil
}

// AddDroppedEdges adds i to the "dropped_edges" field.
func (m *GraphRunMutation) AddDroppedEdges(i int) {
	if m.adddropped_edges != nil {
		*m.adddropped_edges += i
	} else {
		m.adddropped_edges = &i
	}
}

// AddedDroppedEdges returns the value that was added to the "dropped_edges" field in this mutation.
func (m *GraphRunMutation) AddedDroppedEdges() (r int, exists bool) {
	v := m.adddropped_edges
	if v == nil {
		return
	}
	return *v, true
}

// ResetDroppedEdges resets all changes to the "dropped_edges" field.
func (m *GraphRunMutation) ResetDroppedEdges() {
	m.dropped_edges = nil
	m.adddropped_edges = nil
}

// SetFeatureCount sets the "feature_count" field.
func (m *GraphRunMutation) SetFeatureCount(i int) {
	m.feature_count = &i
	m.addfeature_count = nil
}

// FeatureCount returns the value of the "feature_count" field in the mutation.
func (m *GraphRunMutation) FeatureCount() (r int, exists bool) {
	v := m.feature_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureCount returns the old "feature_count" field's value of the GraphRun entity.
// If the GraphRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphRunMutation) OldFeatureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureCount: %w", err)
	}
	return oldValue.FeatureCount, nil
}

// AddFeatureCount adds i to the "feature_count" field.
func (m *GraphRunMutation) AddFeatureCount(i int) {
	if m.addfeature_count != nil {
		*m.addfeature_count += i
	} else {
		m.addfeature_count = &i
	}
}

// AddedFeatureCount returns the value that was added to the "feature_count" field in this mutation.
func (m *GraphRunMutation) AddedFeatureCount() (r int, exists bool) {
	v := m.addfeature_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeatureCount resets all changes to the "feature_count" field.
func (m *GraphRunMutation) ResetFeatureCount() {
	m.feature_count = nil
	m.addfeature_count = nil
}

// SetEdgeCount sets the "edge_count" field.
func (m *GraphRunMutation) SetEdgeCount(i int) {
	m.edge_count = &i
	m.addedge_count = nil
}

// EdgeCount returns the value of the "edge_count" field in the mutation.
func (m *GraphRunMutation) EdgeCount() (r int, exists bool) {
	v := m.edge_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEdgeCount returns the old "edge_count" field's value of the GraphRun entity.
// If the GraphRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphRunMutation) OldEdgeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdgeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdgeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdgeCount: %w", err)
	}
	return oldValue.EdgeCount, nil
}

// AddEdgeCount adds i to the "edge_count" field.
func (m *GraphRunMutation) AddEdgeCount(i int) {
	if m.addedge_count != nil {
		*m.addedge_count += i
	} else {
		m.addedge_count = &i
	}
}

// AddedEdgeCount returns the value that was added to the "edge_count" field in this mutation.
func (m *GraphRunMutation) AddedEdgeCount() (r int, exists bool) {
	v := m.addedge_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEdgeCount resets all changes to the "edge_count" field.
func (m *GraphRunMutation) ResetEdgeCount() {
	m.edge_count = nil
	m.addedge_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphRun entity.
// If the GraphRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *GraphRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *GraphRunMutation) SetProjectID(id uuid.UUID) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *GraphRunMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *GraphRunMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *GraphRunMutation) ProjectID() (id uuid.UUID, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *GraphRunMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *GraphRunMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the GraphRunMutation builder.
func (m *GraphRunMutation) Where(ps ...predicate.GraphRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphRun).
func (m *GraphRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphRunMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.model != nil {
		fields = append(fields, graphrun.FieldModel)
	}
	if m.used_fallback != nil {
		fields = append(fields, graphrun.FieldUsedFallback)
	}
	if m.dropped_edges != nil {
		fields = append(fields, graphrun.FieldDroppedEdges)
	}
	if m.feature_count != nil {
		fields = append(fields, graphrun.FieldFeatureCount)
	}
	if m.edge_count != nil {
		fields = append(fields, graphrun.FieldEdgeCount)
	}
	if m.created_at != nil {
		fields = append(fields, graphrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphrun.FieldModel:
		return m.Model()
	case graphrun.FieldUsedFallback:
		return m.UsedFallback()
	case graphrun.FieldDroppedEdges:
		return m.DroppedEdges()
	case graphrun.FieldFeatureCount:
		return m.FeatureCount()
	case graphrun.FieldEdgeCount:
		return m.EdgeCount()
	case graphrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphrun.FieldModel:
		return m.OldModel(ctx)
	case graphrun.FieldUsedFallback:
		return m.OldUsedFallback(ctx)
	case graphrun.FieldDroppedEdges:
		return m.OldDroppedEdges(ctx)
	case graphrun.FieldFeatureCount:
		return m.OldFeatureCount(ctx)
	case graphrun.FieldEdgeCount:
		return m.OldEdgeCount(ctx)
	case graphrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphrun.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case graphrun.FieldUsedFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedFallback(v)
		return nil
	case graphrun.FieldDroppedEdges:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDroppedEdges(v)
		return nil
	case graphrun.FieldFeatureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureCount(v)
		return nil
	case graphrun.FieldEdgeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdgeCount(v)
		return nil
	case graphrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphRunMutation) AddedFields() []string {
	var fields []string
	if m.adddropped_edges != nil {
		fields = append(fields, graphrun.FieldDroppedEdges)
	}
	if m.addfeature_count != nil {
		fields = append(fields, graphrun.FieldFeatureCount)
	}
	if m.addedge_count != nil {
		fields = append(fields, graphrun.FieldEdgeCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case graphrun.FieldDroppedEdges:
		return m.AddedDroppedEdges()
	case graphrun.FieldFeatureCount:
		return m.AddedFeatureCount()
	case graphrun.FieldEdgeCount:
		return m.AddedEdgeCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case graphrun.FieldDroppedEdges:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDroppedEdges(v)
		return nil
	case graphrun.FieldFeatureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeatureCount(v)
		return nil
	case graphrun.FieldEdgeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEdgeCount(v)
		return nil
	}
	return fmt.Errorf("unknown GraphRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graphrun.FieldModel) {
		fields = append(fields, graphrun.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphRunMutation) ClearField(name string) error {
	switch name {
	case graphrun.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown GraphRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphRunMutation) ResetField(name string) error {
	switch name {
	case graphrun.FieldModel:
		m.ResetModel()
		return nil
	case graphrun.FieldUsedFallback:
		m.ResetUsedFallback()
		return nil
	case graphrun.FieldDroppedEdges:
		m.ResetDroppedEdges()
		return nil
	case graphrun.FieldFeatureCount:
		m.ResetFeatureCount()
		return nil
	case graphrun.FieldEdgeCount:
		m.ResetEdgeCount()
		return nil
	case graphrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, graphrun.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case graphrun.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, graphrun.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphRunMutation) EdgeCleared(name string) bool {
	switch name {
	case graphrun.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphRunMutation) ClearEdge(name string) error {
	switch name {
	case graphrun.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown GraphRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphRunMutation) ResetEdge(name string) error {
	switch name {
	case graphrun.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown GraphRun edge %s", name)
}

// PRDMutation represents an operation that mutates the PRD nodes in the graph.
type PRDMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	status         *prd.Status
	content_md     *string
	content_json   *map[string]interface{}
	error_message  *string
	model          *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	feature        *uuid.UUID
	clearedfeature bool
	done           bool
	oldValue       func(context.Context) (*PRD, error)
	predicates     []predicate.PRD
}

var _ ent.Mutation = (*PRDMutation)(nil)

// prdOption allows management of the mutation configuration using functional options.
type prdOption func(*PRDMutation)

// newPRDMutation creates new mutation for the PRD entity.
func newPRDMutation(c config, op Op, opts ...prdOption) *PRDMutation {
	m := &PRDMutation{
		config:        c,
		op:            op,
		typ:           TypePRD,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPRDID sets the ID field of the mutation.
func withPRDID(id uuid.UUID) prdOption {
	return func(m *PRDMutation) {
		var (
			err   error
			once  sync.Once
			value *PRD
		)
		m.oldValue = func(ctx context.Context) (*PRD, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PRD.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPRD sets the old PRD of the mutation.
func withPRD(node *PRD) prdOption {
	return func(m *PRDMutation) {
		m.oldValue = func(context.Context) (*PRD, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PRDMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PRDMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PRD entities.
func (m *PRDMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PRDMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PRDMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PRD.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *PRDMutation) SetStatus(pr prd.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PRDMutation) Status() (r prd.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldStatus(ctx context.Context) (v prd.Status, err error) {
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
func (m *PRDMutation) ResetStatus() {
	m.status = nil
}

// SetContentMd sets the "content_md" field.
func (m *PRDMutation) SetContentMd(s string) {
	m.content_md = &s
}

// ContentMd returns the value of the "content_md" field in the mutation.
func (m *PRDMutation) ContentMd() (r string, exists bool) {
	v := m.content_md
	if v == nil {
		return
	}
	return *v, true
}

// OldContentMd returns the old "content_md" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldContentMd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentMd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentMd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentMd: %w", err)
	}
	return oldValue.ContentMd, nil
}

// ClearContentMd clears the value of the "content_md" field.
func (m *PRDMutation) ClearContentMd() {
	m.content_md = nil
	m.clearedFields[prd.FieldContentMd] = struct{}{}
}

// ContentMdCleared returns if the "content_md" field was cleared in this mutation.
func (m *PRDMutation) ContentMdCleared() bool {
	_, ok := m.clearedFields[prd.FieldContentMd]
	return ok
}

// ResetContentMd resets all changes to the "content_md" field.
func (m *PRDMutation) ResetContentMd() {
	m.content_md = nil
	delete(m.clearedFields, prd.FieldContentMd)
}

// SetContentJSON sets the "content_json" field.
func (m *PRDMutation) SetContentJSON(value map[string]interface{}) {
	m.content_json = &value
}

// ContentJSON returns the value of the "content_json" field in the mutation.
func (m *PRDMutation) ContentJSON() (r map[string]interface{}, exists bool) {
	v := m.content_json
	if v == nil {
		return
	}
	return *v, true
}

// OldContentJSON returns the old "content_json" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldContentJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentJSON: %w", err)
	}
	return oldValue.ContentJSON, nil
}

// ClearContentJSON clears the value of the "content_json" field.
func (m *PRDMutation) ClearContentJSON() {
	m.content_json = nil
	m.clearedFields[prd.FieldContentJSON] = struct{}{}
}

// ContentJSONCleared returns if the "content_json" field was cleared in this mutation.
func (m *PRDMutation) ContentJSONCleared() bool {
	_, ok := m.clearedFields[prd.FieldContentJSON]
	return ok
}

// ResetContentJSON resets all changes to the "content_json" field.
func (m *PRDMutation) ResetContentJSON() {
	m.content_json = nil
	delete(m.clearedFields, prd.FieldContentJSON)
}

// SetErrorMessage sets the "error_message" field.
func (m *PRDMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PRDMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PRDMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[prd.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PRDMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[prd.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PRDMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, prd.FieldErrorMessage)
}

// SetModel sets the "model" field.
func (m *PRDMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *PRDMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldModel(ctx context.Context) (v string, err error) {
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

// ClearModel clears the value of the "model" field.
func (m *PRDMutation) ClearModel() {
	m.model = nil
	m.clearedFields[prd.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *PRDMutation) ModelCleared() bool {
	_, ok := m.clearedFields[prd.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *PRDMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, prd.FieldModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *PRDMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PRDMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PRDMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PRDMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PRDMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PRD entity.
// If the PRD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRDMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PRDMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFeatureID sets the "feature" edge to the Feature entity by id.
func (m *PRDMutation) SetFeatureID(id uuid.UUID) {
	m.feature = &id
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (m *PRDMutation) ClearFeature() {
	m.clearedfeature = true
}

// FeatureCleared reports if the "feature" edge to the Feature entity was cleared.
func (m *PRDMutation) FeatureCleared() bool {
	return m.clearedfeature
}

// FeatureID returns the "feature" edge ID in the mutation.
func (m *PRDMutation) FeatureID() (id uuid.UUID, exists bool) {
	if m.feature != nil {
		return *m.feature, true
	}
	return
}

// FeatureIDs returns the "feature" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeatureID instead. It exists only for internal usage by the builders.
func (m *PRDMutation) FeatureIDs() (ids []uuid.UUID) {
	if id := m.feature; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeature resets all changes to the "feature" edge.
func (m *PRDMutation) ResetFeature() {
	m.feature = nil
	m.clearedfeature = false
}

// Where appends a list predicates to the PRDMutation builder.
func (m *PRDMutation) Where(ps ...predicate.PRD) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PRDMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PRDMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PRD, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PRDMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PRDMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PRD).
func (m *PRDMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PRDMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.status != nil {
		fields = append(fields, prd.FieldStatus)
	}
	if m.content_md != nil {
		fields = append(fields, prd.FieldContentMd)
	}
	if m.content_json != nil {
		fields = append(fields, prd.FieldContentJSON)
	}
	if m.error_message != nil {
		fields = append(fields, prd.FieldErrorMessage)
	}
	if m.model != nil {
		fields = append(fields, prd.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, prd.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prd.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PRDMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prd.FieldStatus:
		return m.Status()
	case prd.FieldContentMd:
		return m.ContentMd()
	case prd.FieldContentJSON:
		return m.ContentJSON()
	case prd.FieldErrorMessage:
		return m.ErrorMessage()
	case prd.FieldModel:
		return m.Model()
	case prd.FieldCreatedAt:
		return m.CreatedAt()
	case prd.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PRDMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prd.FieldStatus:
		return m.OldStatus(ctx)
	case prd.FieldContentMd:
		return m.OldContentMd(ctx)
	case prd.FieldContentJSON:
		return m.OldContentJSON(ctx)
	case prd.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case prd.FieldModel:
		return m.OldModel(ctx)
	case prd.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prd.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PRD field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PRDMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prd.FieldStatus:
		v, ok := value.(prd.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case prd.FieldContentMd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentMd(v)
		return nil
	case prd.FieldContentJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentJSON(v)
		return nil
	case prd.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case prd.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case prd.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prd.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PRD field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PRDMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PRDMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PRDMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PRD numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PRDMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prd.FieldContentMd) {
		fields = append(fields, prd.FieldContentMd)
	}
	if m.FieldCleared(prd.FieldContentJSON) {
		fields = append(fields, prd.FieldContentJSON)
	}
	if m.FieldCleared(prd.FieldErrorMessage) {
		fields = append(fields, prd.FieldErrorMessage)
	}
	if m.FieldCleared(prd.FieldModel) {
		fields = append(fields, prd.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PRDMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PRDMutation) ClearField(name string) error {
	switch name {
	case prd.FieldContentMd:
		m.ClearContentMd()
		return nil
	case prd.FieldContentJSON:
		m.ClearContentJSON()
		return nil
	case prd.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case prd.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown PRD nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PRDMutation) ResetField(name string) error {
	switch name {
	case prd.FieldStatus:
		m.ResetStatus()
		return nil
	case prd.FieldContentMd:
		m.ResetContentMd()
		return nil
	case prd.FieldContentJSON:
		m.ResetContentJSON()
		return nil
	case prd.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case prd.FieldModel:
		m.ResetModel()
		return nil
	case prd.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prd.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PRD field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PRDMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.feature != nil {
		edges = append(edges, prd.EdgeFeature)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PRDMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prd.EdgeFeature:
		if id := m.feature; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PRDMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PRDMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PRDMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfeature {
		edges = append(edges, prd.EdgeFeature)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PRDMutation) EdgeCleared(name string) bool {
	switch name {
	case prd.EdgeFeature:
		return m.clearedfeature
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PRDMutation) ClearEdge(name string) error {
	switch name {
	case prd.EdgeFeature:
		m.ClearFeature()
		return nil
	}
	return fmt.Errorf("unknown PRD unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PRDMutation) ResetEdge(name string) error {
	switch name {
	case prd.EdgeFeature:
		m.ResetFeature()
		return nil
	}
	return fmt.Errorf("unknown PRD edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	description         *string
	graph               *map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	owner               *uuid.UUID
	clearedowner        bool
	features            map[uuid.UUID]struct{}
	removedfeatures     map[uuid.UUID]struct{}
	clearedfeatures     bool
	dependencies        map[uuid.UUID]struct{}
	removeddependencies map[uuid.UUID]struct{}
	cleareddependencies bool
	graph_runs          map[uuid.UUID]struct{}
	removedgraph_runs   map[uuid.UUID]struct{}
	clearedgraph_runs   bool
	done                bool
	oldValue            func(context.Context) (*Project, error)
	predicates          []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id uuid.UUID) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetGraph sets the "graph" field.
func (m *ProjectMutation) SetGraph(value map[string]interface{}) {
	m.graph = &value
}

// Graph returns the value of the "graph" field in the mutation.
func (m *ProjectMutation) Graph() (r map[string]interface{}, exists bool) {
	v := m.graph
	if v == nil {
		return
	}
	return *v, true
}

// OldGraph returns the old "graph" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldGraph(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraph is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraph requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraph: %w", err)
	}
	return oldValue.Graph, nil
}

// ClearGraph clears the value of the "graph" field.
func (m *ProjectMutation) ClearGraph() {
	m.graph = nil
	m.clearedFields[project.FieldGraph] = struct{}{}
}

// GraphCleared returns if the "graph" field was cleared in this mutation.
func (m *ProjectMutation) GraphCleared() bool {
	_, ok := m.clearedFields[project.FieldGraph]
	return ok
}

// ResetGraph resets all changes to the "graph" field.
func (m *ProjectMutation) ResetGraph() {
	m.graph = nil
	delete(m.clearedFields, project.FieldGraph)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *ProjectMutation) SetOwnerID(id uuid.UUID) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ProjectMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ProjectMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *ProjectMutation) OwnerID() (id uuid.UUID, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ProjectMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddFeatureIDs adds the "features" edge to the Feature entity by ids.
func (m *ProjectMutation) AddFeatureIDs(ids ...uuid.UUID) {
	if m.features == nil {
		m.features = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.features[ids[i]] = struct{}{}
	}
}

// ClearFeatures clears the "features" edge to the Feature entity.
func (m *ProjectMutation) ClearFeatures() {
	m.clearedfeatures = true
}

// FeaturesCleared reports if the "features" edge to the Feature entity was cleared.
func (m *ProjectMutation) FeaturesCleared() bool {
	return m.clearedfeatures
}

// RemoveFeatureIDs removes the "features" edge to the Feature entity by IDs.
func (m *ProjectMutation) RemoveFeatureIDs(ids ...uuid.UUID) {
	if m.removedfeatures == nil {
		m.removedfeatures = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.features, ids[i])
		m.removedfeatures[ids[i]] = struct{}{}
	}
}

// RemovedFeatures returns the removed IDs of the "features" edge to the Feature entity.
func (m *ProjectMutation) RemovedFeaturesIDs() (ids []uuid.UUID) {
	for id := range m.removedfeatures {
		ids = append(ids, id)
	}
	return
}

// FeaturesIDs returns the "features" edge IDs in the mutation.
func (m *ProjectMutation) FeaturesIDs() (ids []uuid.UUID) {
	for id := range m.features {
		ids = append(ids, id)
	}
	return
}

// ResetFeatures resets all changes to the "features" edge.
func (m *ProjectMutation) ResetFeatures() {
	m.features = nil
	m.clearedfeatures = false
	m.removedfeatures = nil
}

// AddDependencyIDs adds the "dependencies" edge to the Dependency entity by ids.
func (m *ProjectMutation) AddDependencyIDs(ids ...uuid.UUID) {
	if m.dependencies == nil {
		m.dependencies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.dependencies[ids[i]] = struct{}{}
	}
}

// ClearDependencies clears the "dependencies" edge to the Dependency entity.
func (m *ProjectMutation) ClearDependencies() {
	m.cleareddependencies = true
}

// DependenciesCleared reports if the "dependencies" edge to the Dependency entity was cleared.
func (m *ProjectMutation) DependenciesCleared() bool {
	return m.cleareddependencies
}

// RemoveDependencyIDs removes the "dependencies" edge to the Dependency entity by IDs.
func (m *ProjectMutation) RemoveDependencyIDs(ids ...uuid.UUID) {
	if m.removeddependencies == nil {
		m.removeddependencies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.dependencies, ids[i])
		m.removeddependencies[ids[i]] = struct{}{}
	}
}

// RemovedDependencies returns the removed IDs of the "dependencies" edge to the Dependency entity.
func (m *ProjectMutation) RemovedDependenciesIDs() (ids []uuid.UUID) {
	for id := range m.removeddependencies {
		ids = append(ids, id)
	}
	return
}

// DependenciesIDs returns the "dependencies" edge IDs in the mutation.
func (m *ProjectMutation) DependenciesIDs() (ids []uuid.UUID) {
	for id := range m.dependencies {
		ids = append(ids, id)
	}
	return
}

// ResetDependencies resets all changes to the "dependencies" edge.
func (m *ProjectMutation) ResetDependencies() {
	m.dependencies = nil
	m.cleareddependencies = false
	m.removeddependencies = nil
}

// AddGraphRunIDs adds the "graph_runs" edge to the GraphRun entity by ids.
func (m *ProjectMutation) AddGraphRunIDs(ids ...uuid.UUID) {
	if m.graph_runs == nil {
		m.graph_runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.graph_runs[ids[i]] = struct{}{}
	}
}

// ClearGraphRuns clears the "graph_runs" edge to the GraphRun entity.
func (m *ProjectMutation) ClearGraphRuns() {
	m.clearedgraph_runs = true
}

// GraphRunsCleared reports if the "graph_runs" edge to the GraphRun entity was cleared.
func (m *ProjectMutation) GraphRunsCleared() bool {
	return m.clearedgraph_runs
}

// RemoveGraphRunIDs removes the "graph_runs" edge to the GraphRun entity by IDs.
func (m *ProjectMutation) RemoveGraphRunIDs(ids ...uuid.UUID) {
	if m.removedgraph_runs == nil {
		m.removedgraph_runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.graph_runs, ids[i])
		m.removedgraph_runs[ids[i]] = struct{}{}
	}
}

// RemovedGraphRuns returns the removed IDs of the "graph_runs" edge to the GraphRun entity.
func (m *ProjectMutation) RemovedGraphRunsIDs() (ids []uuid.UUID) {
	for id := range m.removedgraph_runs {
		ids = append(ids, id)
	}
	return
}

// GraphRunsIDs returns the "graph_runs" edge IDs in the mutation.
func (m *ProjectMutation) GraphRunsIDs() (ids []uuid.UUID) {
	for id := range m.graph_runs {
		ids = append(ids, id)
	}
	return
}

// ResetGraphRuns resets all changes to the "graph_runs" edge.
func (m *ProjectMutation) ResetGraphRuns() {
	m.graph_runs = nil
	m.clearedgraph_runs = false
	m.removedgraph_runs = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.graph != nil {
		fields = append(fields, project.FieldGraph)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldGraph:
		return m.Graph()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldGraph:
		return m.OldGraph(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldGraph:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraph(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldGraph) {
		fields = append(fields, project.FieldGraph)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldGraph:
		m.ClearGraph()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldGraph:
		m.ResetGraph()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.owner != nil {
		edges = append(edges, project.EdgeOwner)
	}
	if m.features != nil {
		edges = append(edges, project.EdgeFeatures)
	}
	if m.dependencies != nil {
		edges = append(edges, project.EdgeDependencies)
	}
	if m.graph_runs != nil {
		edges = append(edges, project.EdgeGraphRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.features))
		for id := range m.features {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.dependencies))
		for id := range m.dependencies {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeGraphRuns:
		ids := make([]ent.Value, 0, len(m.graph_runs))
		for id := range m.graph_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedfeatures != nil {
		edges = append(edges, project.EdgeFeatures)
	}
	if m.removeddependencies != nil {
		edges = append(edges, project.EdgeDependencies)
	}
	if m.removedgraph_runs != nil {
		edges = append(edges, project.EdgeGraphRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.removedfeatures))
		for id := range m.removedfeatures {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.removeddependencies))
		for id := range m.removeddependencies {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeGraphRuns:
		ids := make([]ent.Value, 0, len(m.removedgraph_runs))
		for id := range m.removedgraph_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedowner {
		edges = append(edges, project.EdgeOwner)
	}
	if m.clearedfeatures {
		edges = append(edges, project.EdgeFeatures)
	}
	if m.cleareddependencies {
		edges = append(edges, project.EdgeDependencies)
	}
	if m.clearedgraph_runs {
		edges = append(edges, project.EdgeGraphRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeOwner:
		return m.clearedowner
	case project.EdgeFeatures:
		return m.clearedfeatures
	case project.EdgeDependencies:
		return m.cleareddependencies
	case project.EdgeGraphRuns:
		return m.clearedgraph_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeOwner:
		m.ResetOwner()
		return nil
	case project.EdgeFeatures:
		m.ResetFeatures()
		return nil
	case project.EdgeDependencies:
		m.ResetDependencies()
		return nil
	case project.EdgeGraphRuns:
		m.ResetGraphRuns()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	email              *string
	display_name       *string
	password_hash      *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	projects           map[uuid.UUID]struct{}
	removedprojects    map[uuid.UUID]struct{}
	clearedprojects    bool
	credentials        map[uuid.UUID]struct{}
	removedcredentials map[uuid.UUID]struct{}
	clearedcredentials bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
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
		return nil, errors.New("ent: mutation is not running in a transaction")
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

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
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

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *UserMutation) AddProjectIDs(ids ...uuid.UUID) {
	if m.projects == nil {
		m.projects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *UserMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *UserMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *UserMutation) RemoveProjectIDs(ids ...uuid.UUID) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *UserMutation) RemovedProjectsIDs() (ids []uuid.UUID) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *UserMutation) ProjectsIDs() (ids []uuid.UUID) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *UserMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// AddCredentialIDs adds the "credentials" edge to the APICredential entity by ids.
func (m *UserMutation) AddCredentialIDs(ids ...uuid.UUID) {
	if m.credentials == nil {
		m.credentials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.credentials[ids[i]] = struct{}{}
	}
}

// ClearCredentials clears the "credentials" edge to the APICredential entity.
func (m *UserMutation) ClearCredentials() {
	m.clearedcredentials = true
}

// CredentialsCleared reports if the "credentials" edge to the APICredential entity was cleared.
func (m *UserMutation) CredentialsCleared() bool {
	return m.clearedcredentials
}

// RemoveCredentialIDs removes the "credentials" edge to the APICredential entity by IDs.
func (m *UserMutation) RemoveCredentialIDs(ids ...uuid.UUID) {
	if m.removedcredentials == nil {
		m.removedcredentials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.credentials, ids[i])
		m.removedcredentials[ids[i]] = struct{}{}
	}
}

// RemovedCredentials returns the removed IDs of the "credentials" edge to the APICredential entity.
func (m *UserMutation) RemovedCredentialsIDs() (ids []uuid.UUID) {
	for id := range m.removedcredentials {
		ids = append(ids, id)
	}
	return
}

// CredentialsIDs returns the "credentials" edge IDs in the mutation.
func (m *UserMutation) CredentialsIDs() (ids []uuid.UUID) {
	for id := range m.credentials {
		ids = append(ids, id)
	}
	return
}

// ResetCredentials resets all changes to the "credentials" edge.
func (m *UserMutation) ResetCredentials() {
	m.credentials = nil
	m.clearedcredentials = false
	m.removedcredentials = nil
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
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
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
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
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
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.projects != nil {
		edges = append(edges, user.EdgeProjects)
	}
	if m.credentials != nil {
		edges = append(edges, user.EdgeCredentials)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.credentials))
		for id := range m.credentials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedprojects != nil {
		edges = append(edges, user.EdgeProjects)
	}
	if m.removedcredentials != nil {
		edges = append(edges, user.EdgeCredentials)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.removedcredentials))
		for id := range m.removedcredentials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprojects {
		edges = append(edges, user.EdgeProjects)
	}
	if m.clearedcredentials {
		edges = append(edges, user.EdgeCredentials)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeProjects:
		return m.clearedprojects
	case user.EdgeCredentials:
		return m.clearedcredentials
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeProjects:
		m.ResetProjects()
		return nil
	case user.EdgeCredentials:
		m.ResetCredentials()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/apicredential"
	"planforge/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// APICredentialCreate is the builder for creating a APICredential entity.
type APICredentialCreate struct {
	config
	mutation *APICredentialMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (_c *APICredentialCreate) SetProvider(v string) *APICredentialCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *APICredentialCreate) SetNillableProvider(v *string) *APICredentialCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetEncryptedKey sets the "encrypted_key" field.
func (_c *APICredentialCreate) SetEncryptedKey(v []byte) *APICredentialCreate {
	_c.mutation.SetEncryptedKey(v)
	return _c
}

// SetKeyHint sets the "key_hint" field.
func (_c *APICredentialCreate) SetKeyHint(v string) *APICredentialCreate {
	_c.mutation.SetKeyHint(v)
	return _c
}

// SetNillableKeyHint sets the "key_hint" field if the given value is not nil.
func (_c *APICredentialCreate) SetNillableKeyHint(v *string) *APICredentialCreate {
	if v != nil {
		_c.SetKeyHint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *APICredentialCreate) SetCreatedAt(v time.Time) *APICredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *APICredentialCreate) SetNillableCreatedAt(v *time.Time) *APICredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *APICredentialCreate) SetUpdatedAt(v time.Time) *APICredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *APICredentialCreate) SetNillableUpdatedAt(v *time.Time) *APICredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *APICredentialCreate) SetID(v uuid.UUID) *APICredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *APICredentialCreate) SetNillableID(v *uuid.UUID) *APICredentialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *APICredentialCreate) SetOwnerID(id uuid.UUID) *APICredentialCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *APICredentialCreate) SetOwner(v *User) *APICredentialCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the APICredentialMutation object of the builder.
func (_c *APICredentialCreate) Mutation() *APICredentialMutation {
	return _c.mutation
}

// Save creates the APICredential in the database.
func (_c *APICredentialCreate) Save(ctx context.Context) (*APICredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *APICredentialCreate) SaveX(ctx context.Context) *APICredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APICredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APICredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *APICredentialCreate) defaults() {
	if _, ok := _c.mutation.Provider(); !ok {
		v := apicredential.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apicredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := apicredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := apicredential.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *APICredentialCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "APICredential.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := apicredential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "APICredential.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EncryptedKey(); !ok {
		return &ValidationError{Name: "encrypted_key", err: errors.New(`ent: missing required field "APICredential.encrypted_key"`)}
	}
	if v, ok := _c.mutation.KeyHint(); ok {
		if err := apicredential.KeyHintValidator(v); err != nil {
			return &ValidationError{Name: "key_hint", err: fmt.Errorf(`ent: validator failed for field "APICredential.key_hint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "APICredential.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "APICredential.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "APICredential.owner"`)}
	}
	return nil
}

func (_c *APICredentialCreate) sqlSave(ctx context.Context) (*APICredential, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *APICredentialCreate) createSpec() (*APICredential, *sqlgraph.CreateSpec) {
	var (
		_node = &APICredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apicredential.Table, sqlgraph.NewFieldSpec(apicredential.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(apicredential.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EncryptedKey(); ok {
		_spec.SetField(apicredential.FieldEncryptedKey, field.TypeBytes, value)
		_node.EncryptedKey = value
	}
	if value, ok := _c.mutation.KeyHint(); ok {
		_spec.SetField(apicredential.FieldKeyHint, field.TypeString, value)
		_node.KeyHint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apicredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(apicredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   apicredential.OwnerTable,
			Columns: []string{apicredential.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.api_credential_owner = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// APICredentialCreateBulk is the builder for creating many APICredential entities in bulk.
type APICredentialCreateBulk struct {
	config
	err      error
	builders []*APICredentialCreate
}

// Save creates the APICredential entities in the database.
func (_c *APICredentialCreateBulk) Save(ctx context.Context) ([]*APICredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*APICredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APICredentialMutation)
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
func (_c *APICredentialCreateBulk) SaveX(ctx context.Context) []*APICredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APICredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APICredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

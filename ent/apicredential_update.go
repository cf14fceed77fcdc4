// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/apicredential"
	"planforge/ent/predicate"
	"planforge/ent/user"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// APICredentialUpdate is the builder for updating APICredential entities.
type APICredentialUpdate struct {
	config
	hooks    []Hook
	mutation *APICredentialMutation
}

// Where appends a list predicates to the APICredentialUpdate builder.
func (_u *APICredentialUpdate) Where(ps ...predicate.APICredential) *APICredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *APICredentialUpdate) SetProvider(v string) *APICredentialUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *APICredentialUpdate) SetNillableProvider(v *string) *APICredentialUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEncryptedKey sets the "encrypted_key" field.
func (_u *APICredentialUpdate) SetEncryptedKey(v []byte) *APICredentialUpdate {
	_u.mutation.SetEncryptedKey(v)
	return _u
}

// SetKeyHint sets the "key_hint" field.
func (_u *APICredentialUpdate) SetKeyHint(v string) *APICredentialUpdate {
	_u.mutation.SetKeyHint(v)
	return _u
}

// SetNillableKeyHint sets the "key_hint" field if the given value is not nil.
func (_u *APICredentialUpdate) SetNillableKeyHint(v *string) *APICredentialUpdate {
	if v != nil {
		_u.SetKeyHint(*v)
	}
	return _u
}

// ClearKeyHint clears the value of the "key_hint" field.
func (_u *APICredentialUpdate) ClearKeyHint() *APICredentialUpdate {
	_u.mutation.ClearKeyHint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *APICredentialUpdate) SetUpdatedAt(v time.Time) *APICredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *APICredentialUpdate) SetOwnerID(id uuid.UUID) *APICredentialUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *APICredentialUpdate) SetOwner(v *User) *APICredentialUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the APICredentialMutation object of the builder.
func (_u *APICredentialUpdate) Mutation() *APICredentialMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *APICredentialUpdate) ClearOwner() *APICredentialUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *APICredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APICredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *APICredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APICredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *APICredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := apicredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APICredentialUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := apicredential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "APICredential.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyHint(); ok {
		if err := apicredential.KeyHintValidator(v); err != nil {
			return &ValidationError{Name: "key_hint", err: fmt.Errorf(`ent: validator failed for field "APICredential.key_hint": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APICredential.owner"`)
	}
	return nil
}

func (_u *APICredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apicredential.Table, apicredential.Columns, sqlgraph.NewFieldSpec(apicredential.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(apicredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedKey(); ok {
		_spec.SetField(apicredential.FieldEncryptedKey, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.KeyHint(); ok {
		_spec.SetField(apicredential.FieldKeyHint, field.TypeString, value)
	}
	if _u.mutation.KeyHintCleared() {
		_spec.ClearField(apicredential.FieldKeyHint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(apicredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apicredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// APICredentialUpdateOne is the builder for updating a single APICredential entity.
type APICredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APICredentialMutation
}

// SetProvider sets the "provider" field.
func (_u *APICredentialUpdateOne) SetProvider(v string) *APICredentialUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *APICredentialUpdateOne) SetNillableProvider(v *string) *APICredentialUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEncryptedKey sets the "encrypted_key" field.
func (_u *APICredentialUpdateOne) SetEncryptedKey(v []byte) *APICredentialUpdateOne {
	_u.mutation.SetEncryptedKey(v)
	return _u
}

// SetKeyHint sets the "key_hint" field.
func (_u *APICredentialUpdateOne) SetKeyHint(v string) *APICredentialUpdateOne {
	_u.mutation.SetKeyHint(v)
	return _u
}

// SetNillableKeyHint sets the "key_hint" field if the given value is not nil.
func (_u *APICredentialUpdateOne) SetNillableKeyHint(v *string) *APICredentialUpdateOne {
	if v != nil {
		_u.SetKeyHint(*v)
	}
	return _u
}

// ClearKeyHint clears the value of the "key_hint" field.
func (_u *APICredentialUpdateOne) ClearKeyHint() *APICredentialUpdateOne {
	_u.mutation.ClearKeyHint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *APICredentialUpdateOne) SetUpdatedAt(v time.Time) *APICredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *APICredentialUpdateOne) SetOwnerID(id uuid.UUID) *APICredentialUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *APICredentialUpdateOne) SetOwner(v *User) *APICredentialUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the APICredentialMutation object of the builder.
func (_u *APICredentialUpdateOne) Mutation() *APICredentialMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *APICredentialUpdateOne) ClearOwner() *APICredentialUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the APICredentialUpdate builder.
func (_u *APICredentialUpdateOne) Where(ps ...predicate.APICredential) *APICredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *APICredentialUpdateOne) Select(field string, fields ...string) *APICredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated APICredential entity.
func (_u *APICredentialUpdateOne) Save(ctx context.Context) (*APICredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APICredentialUpdateOne) SaveX(ctx context.Context) *APICredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *APICredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APICredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *APICredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := apicredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APICredentialUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := apicredential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "APICredential.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyHint(); ok {
		if err := apicredential.KeyHintValidator(v); err != nil {
			return &ValidationError{Name: "key_hint", err: fmt.Errorf(`ent: validator failed for field "APICredential.key_hint": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APICredential.owner"`)
	}
	return nil
}

func (_u *APICredentialUpdateOne) sqlSave(ctx context.Context) (_node *APICredential, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apicredential.Table, apicredential.Columns, sqlgraph.NewFieldSpec(apicredential.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APICredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apicredential.FieldID)
		for _, f := range fields {
			if !apicredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apicredential.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(apicredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedKey(); ok {
		_spec.SetField(apicredential.FieldEncryptedKey, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.KeyHint(); ok {
		_spec.SetField(apicredential.FieldKeyHint, field.TypeString, value)
	}
	if _u.mutation.KeyHintCleared() {
		_spec.ClearField(apicredential.FieldKeyHint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(apicredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &APICredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apicredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

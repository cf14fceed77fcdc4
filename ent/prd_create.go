// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PRDCreate is the builder for creating a PRD entity.
type PRDCreate struct {
	config
	mutation *PRDMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *PRDCreate) SetStatus(v prd.Status) *PRDCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PRDCreate) SetNillableStatus(v *prd.Status) *PRDCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContentMd sets the "content_md" field.
func (_c *PRDCreate) SetContentMd(v string) *PRDCreate {
	_c.mutation.SetContentMd(v)
	return _c
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (_c *PRDCreate) SetNillableContentMd(v *string) *PRDCreate {
	if v != nil {
		_c.SetContentMd(*v)
	}
	return _c
}

// SetContentJSON sets the "content_json" field.
func (_c *PRDCreate) SetContentJSON(v map[string]interface{}) *PRDCreate {
	_c.mutation.SetContentJSON(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PRDCreate) SetErrorMessage(v string) *PRDCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PRDCreate) SetNillableErrorMessage(v *string) *PRDCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *PRDCreate) SetModel(v string) *PRDCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *PRDCreate) SetNillableModel(v *string) *PRDCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PRDCreate) SetCreatedAt(v time.Time) *PRDCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PRDCreate) SetNillableCreatedAt(v *time.Time) *PRDCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PRDCreate) SetUpdatedAt(v time.Time) *PRDCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PRDCreate) SetNillableUpdatedAt(v *time.Time) *PRDCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PRDCreate) SetID(v uuid.UUID) *PRDCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PRDCreate) SetNillableID(v *uuid.UUID) *PRDCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFeatureID sets the "feature" edge to the Feature entity by ID.
func (_c *PRDCreate) SetFeatureID(id uuid.UUID) *PRDCreate {
	_c.mutation.SetFeatureID(id)
	return _c
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_c *PRDCreate) SetFeature(v *Feature) *PRDCreate {
	return _c.SetFeatureID(v.ID)
}

// Mutation returns the PRDMutation object of the builder.
func (_c *PRDCreate) Mutation() *PRDMutation {
	return _c.mutation
}

// Save creates the PRD in the database.
func (_c *PRDCreate) Save(ctx context.Context) (*PRD, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PRDCreate) SaveX(ctx context.Context) *PRD {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PRDCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PRDCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PRDCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := prd.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prd.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prd.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prd.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PRDCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PRD.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := prd.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PRD.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ErrorMessage(); ok {
		if err := prd.ErrorMessageValidator(v); err != nil {
			return &ValidationError{Name: "error_message", err: fmt.Errorf(`ent: validator failed for field "PRD.error_message": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := prd.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "PRD.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PRD.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PRD.updated_at"`)}
	}
	if len(_c.mutation.FeatureIDs()) == 0 {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required edge "PRD.feature"`)}
	}
	return nil
}

func (_c *PRDCreate) sqlSave(ctx context.Context) (*PRD, error) {
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

func (_c *PRDCreate) createSpec() (*PRD, *sqlgraph.CreateSpec) {
	var (
		_node = &PRD{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prd.Table, sqlgraph.NewFieldSpec(prd.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(prd.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContentMd(); ok {
		_spec.SetField(prd.FieldContentMd, field.TypeString, value)
		_node.ContentMd = value
	}
	if value, ok := _c.mutation.ContentJSON(); ok {
		_spec.SetField(prd.FieldContentJSON, field.TypeJSON, value)
		_node.ContentJSON = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(prd.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(prd.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prd.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prd.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   prd.FeatureTable,
			Columns: []string{prd.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.prd_feature = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PRDCreateBulk is the builder for creating many PRD entities in bulk.
type PRDCreateBulk struct {
	config
	err      error
	builders []*PRDCreate
}

// Save creates the PRD entities in the database.
func (_c *PRDCreateBulk) Save(ctx context.Context) ([]*PRD, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PRD, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PRDMutation)
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
func (_c *PRDCreateBulk) SaveX(ctx context.Context) []*PRD {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PRDCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PRDCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

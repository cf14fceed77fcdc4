// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/graphrun"
	"planforge/ent/project"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GraphRunCreate is the builder for creating a GraphRun entity.
type GraphRunCreate struct {
	config
	mutation *GraphRunMutation
	hooks    []Hook
}

// SetModel sets the "model" field.
func (_c *GraphRunCreate) SetModel(v string) *GraphRunCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableModel(v *string) *GraphRunCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetUsedFallback sets the "used_fallback" field.
func (_c *GraphRunCreate) SetUsedFallback(v bool) *GraphRunCreate {
	_c.mutation.SetUsedFallback(v)
	return _c
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableUsedFallback(v *bool) *GraphRunCreate {
	if v != nil {
		_c.SetUsedFallback(*v)
	}
	return _c
}

// SetDroppedEdges sets the "dropped_edges" field.
func (_c *GraphRunCreate) SetDroppedEdges(v int) *GraphRunCreate {
	_c.mutation.SetDroppedEdges(v)
	return _c
}

// SetNillableDroppedEdges sets the "dropped_edges" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableDroppedEdges(v *int) *GraphRunCreate {
	if v != nil {
		_c.SetDroppedEdges(*v)
	}
	return _c
}

// SetFeatureCount sets the "feature_count" field.
func (_c *GraphRunCreate) SetFeatureCount(v int) *GraphRunCreate {
	_c.mutation.SetFeatureCount(v)
	return _c
}

// SetNillableFeatureCount sets the "feature_count" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableFeatureCount(v *int) *GraphRunCreate {
	if v != nil {
		_c.SetFeatureCount(*v)
	}
	return _c
}

// SetEdgeCount sets the "edge_count" field.
func (_c *GraphRunCreate) SetEdgeCount(v int) *GraphRunCreate {
	_c.mutation.SetEdgeCount(v)
	return _c
}

// SetNillableEdgeCount sets the "edge_count" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableEdgeCount(v *int) *GraphRunCreate {
	if v != nil {
		_c.SetEdgeCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphRunCreate) SetCreatedAt(v time.Time) *GraphRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableCreatedAt(v *time.Time) *GraphRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphRunCreate) SetID(v uuid.UUID) *GraphRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GraphRunCreate) SetNillableID(v *uuid.UUID) *GraphRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *GraphRunCreate) SetProjectID(id uuid.UUID) *GraphRunCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *GraphRunCreate) SetProject(v *Project) *GraphRunCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the GraphRunMutation object of the builder.
func (_c *GraphRunCreate) Mutation() *GraphRunMutation {
	return _c.mutation
}

// Save creates the GraphRun in the database.
func (_c *GraphRunCreate) Save(ctx context.Context) (*GraphRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphRunCreate) SaveX(ctx context.Context) *GraphRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphRunCreate) defaults() {
	if _, ok := _c.mutation.UsedFallback(); !ok {
		v := graphrun.DefaultUsedFallback
		_c.mutation.SetUsedFallback(v)
	}
	if _, ok := _c.mutation.DroppedEdges(); !ok {
		v := graphrun.DefaultDroppedEdges
		_c.mutation.SetDroppedEdges(v)
	}
	if _, ok := _c.mutation.FeatureCount(); !ok {
		v := graphrun.DefaultFeatureCount
		_c.mutation.SetFeatureCount(v)
	}
	if _, ok := _c.mutation.EdgeCount(); !ok {
		v := graphrun.DefaultEdgeCount
		_c.mutation.SetEdgeCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := graphrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphRunCreate) check() error {
	if v, ok := _c.mutation.Model(); ok {
		if err := graphrun.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "GraphRun.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		return &ValidationError{Name: "used_fallback", err: errors.New(`ent: missing required field "GraphRun.used_fallback"`)}
	}
	if _, ok := _c.mutation.DroppedEdges(); !ok {
		return &ValidationError{Name: "dropped_edges", err: errors.New(`ent: missing required field "GraphRun.dropped_edges"`)}
	}
	if _, ok := _c.mutation.FeatureCount(); !ok {
		return &ValidationError{Name: "feature_count", err: errors.New(`ent: missing required field "GraphRun.feature_count"`)}
	}
	if _, ok := _c.mutation.EdgeCount(); !ok {
		return &ValidationError{Name: "edge_count", err: errors.New(`ent: missing required field "GraphRun.edge_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphRun.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "GraphRun.project"`)}
	}
	return nil
}

func (_c *GraphRunCreate) sqlSave(ctx context.Context) (*GraphRun, error) {
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

func (_c *GraphRunCreate) createSpec() (*GraphRun, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphrun.Table, sqlgraph.NewFieldSpec(graphrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(graphrun.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.UsedFallback(); ok {
		_spec.SetField(graphrun.FieldUsedFallback, field.TypeBool, value)
		_node.UsedFallback = value
	}
	if value, ok := _c.mutation.DroppedEdges(); ok {
		_spec.SetField(graphrun.FieldDroppedEdges, field.TypeInt, value)
		_node.DroppedEdges = value
	}
	if value, ok := _c.mutation.FeatureCount(); ok {
		_spec.SetField(graphrun.FieldFeatureCount, field.TypeInt, value)
		_node.FeatureCount = value
	}
	if value, ok := _c.mutation.EdgeCount(); ok {
		_spec.SetField(graphrun.FieldEdgeCount, field.TypeInt, value)
		_node.EdgeCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   graphrun.ProjectTable,
			Columns: []string{graphrun.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.graph_run_project = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GraphRunCreateBulk is the builder for creating many GraphRun entities in bulk.
type GraphRunCreateBulk struct {
	config
	err      error
	builders []*GraphRunCreate
}

// Save creates the GraphRun entities in the database.
func (_c *GraphRunCreateBulk) Save(ctx context.Context) ([]*GraphRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphRunMutation)
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
func (_c *GraphRunCreateBulk) SaveX(ctx context.Context) []*GraphRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

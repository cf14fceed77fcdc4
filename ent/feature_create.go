// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"planforge/ent/project"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FeatureCreate is the builder for creating a Feature entity.
type FeatureCreate struct {
	config
	mutation *FeatureMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *FeatureCreate) SetTitle(v string) *FeatureCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *FeatureCreate) SetNotes(v string) *FeatureCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableNotes(v *string) *FeatureCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPosX sets the "pos_x" field.
func (_c *FeatureCreate) SetPosX(v float64) *FeatureCreate {
	_c.mutation.SetPosX(v)
	return _c
}

// SetNillablePosX sets the "pos_x" field if the given value is not nil.
func (_c *FeatureCreate) SetNillablePosX(v *float64) *FeatureCreate {
	if v != nil {
		_c.SetPosX(*v)
	}
	return _c
}

// SetPosY sets the "pos_y" field.
func (_c *FeatureCreate) SetPosY(v float64) *FeatureCreate {
	_c.mutation.SetPosY(v)
	return _c
}

// SetNillablePosY sets the "pos_y" field if the given value is not nil.
func (_c *FeatureCreate) SetNillablePosY(v *float64) *FeatureCreate {
	if v != nil {
		_c.SetPosY(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeatureCreate) SetCreatedAt(v time.Time) *FeatureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableCreatedAt(v *time.Time) *FeatureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FeatureCreate) SetUpdatedAt(v time.Time) *FeatureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableUpdatedAt(v *time.Time) *FeatureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeatureCreate) SetID(v uuid.UUID) *FeatureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableID(v *uuid.UUID) *FeatureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *FeatureCreate) SetProjectID(id uuid.UUID) *FeatureCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *FeatureCreate) SetProject(v *Project) *FeatureCreate {
	return _c.SetProjectID(v.ID)
}

// AddOutgoingIDs adds the "outgoing" edge to the Dependency entity by IDs.
func (_c *FeatureCreate) AddOutgoingIDs(ids ...uuid.UUID) *FeatureCreate {
	_c.mutation.AddOutgoingIDs(ids...)
	return _c
}

// AddOutgoing adds the "outgoing" edges to the Dependency entity.
func (_c *FeatureCreate) AddOutgoing(v ...*Dependency) *FeatureCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutgoingIDs(ids...)
}

// AddIncomingIDs adds the "incoming" edge to the Dependency entity by IDs.
func (_c *FeatureCreate) AddIncomingIDs(ids ...uuid.UUID) *FeatureCreate {
	_c.mutation.AddIncomingIDs(ids...)
	return _c
}

// AddIncoming adds the "incoming" edges to the Dependency entity.
func (_c *FeatureCreate) AddIncoming(v ...*Dependency) *FeatureCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIncomingIDs(ids...)
}

// AddPrdIDs adds the "prd" edge to the PRD entity by IDs.
func (_c *FeatureCreate) AddPrdIDs(ids ...uuid.UUID) *FeatureCreate {
	_c.mutation.AddPrdIDs(ids...)
	return _c
}

// AddPrd adds the "prd" edges to the PRD entity.
func (_c *FeatureCreate) AddPrd(v ...*PRD) *FeatureCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrdIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_c *FeatureCreate) Mutation() *FeatureMutation {
	return _c.mutation
}

// Save creates the Feature in the database.
func (_c *FeatureCreate) Save(ctx context.Context) (*Feature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeatureCreate) SaveX(ctx context.Context) *Feature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeatureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feature.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := feature.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := feature.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeatureCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Feature.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := feature.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Feature.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Notes(); ok {
		if err := feature.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "Feature.notes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feature.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Feature.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Feature.project"`)}
	}
	return nil
}

func (_c *FeatureCreate) sqlSave(ctx context.Context) (*Feature, error) {
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

func (_c *FeatureCreate) createSpec() (*Feature, *sqlgraph.CreateSpec) {
	var (
		_node = &Feature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feature.Table, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(feature.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(feature.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.PosX(); ok {
		_spec.SetField(feature.FieldPosX, field.TypeFloat64, value)
		_node.PosX = &value
	}
	if value, ok := _c.mutation.PosY(); ok {
		_spec.SetField(feature.FieldPosY, field.TypeFloat64, value)
		_node.PosY = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feature.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(feature.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   feature.ProjectTable,
			Columns: []string{feature.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.feature_project = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutgoingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   feature.OutgoingTable,
			Columns: []string{feature.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependency.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IncomingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   feature.IncomingTable,
			Columns: []string{feature.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependency.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   feature.PrdTable,
			Columns: []string{feature.PrdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prd.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeatureCreateBulk is the builder for creating many Feature entities in bulk.
type FeatureCreateBulk struct {
	config
	err      error
	builders []*FeatureCreate
}

// Save creates the Feature entities in the database.
func (_c *FeatureCreateBulk) Save(ctx context.Context) ([]*Feature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeatureMutation)
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
func (_c *FeatureCreateBulk) SaveX(ctx context.Context) []*Feature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

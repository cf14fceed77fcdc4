// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/graphrun"
	"planforge/ent/predicate"
	"planforge/ent/project"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GraphRunUpdate is the builder for updating GraphRun entities.
type GraphRunUpdate struct {
	config
	hooks    []Hook
	mutation *GraphRunMutation
}

// Where appends a list predicates to the GraphRunUpdate builder.
func (_u *GraphRunUpdate) Where(ps ...predicate.GraphRun) *GraphRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *GraphRunUpdate) SetModel(v string) *GraphRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GraphRunUpdate) SetNillableModel(v *string) *GraphRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *GraphRunUpdate) ClearModel() *GraphRunUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *GraphRunUpdate) SetUsedFallback(v bool) *GraphRunUpdate {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *GraphRunUpdate) SetNillableUsedFallback(v *bool) *GraphRunUpdate {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetDroppedEdges sets the "dropped_edges" field.
func (_u *GraphRunUpdate) SetDroppedEdges(v int) *GraphRunUpdate {
	_u.mutation.ResetDroppedEdges()
	_u.mutation.SetDroppedEdges(v)
	return _u
}

// SetNillableDroppedEdges sets the "dropped_edges" field if the given value is not nil.
func (_u *GraphRunUpdate) SetNillableDroppedEdges(v *int) *GraphRunUpdate {
	if v != nil {
		_u.SetDroppedEdges(*v)
	}
	return _u
}

// AddDroppedEdges adds value to the "dropped_edges" field.
func (_u *GraphRunUpdate) AddDroppedEdges(v int) *GraphRunUpdate {
	_u.mutation.AddDroppedEdges(v)
	return _u
}

// SetFeatureCount sets the "feature_count" field.
func (_u *GraphRunUpdate) SetFeatureCount(v int) *GraphRunUpdate {
	_u.mutation.ResetFeatureCount()
	_u.mutation.SetFeatureCount(v)
	return _u
}

// SetNillableFeatureCount sets the "feature_count" field if the given value is not nil.
func (_u *GraphRunUpdate) SetNillableFeatureCount(v *int) *GraphRunUpdate {
	if v != nil {
		_u.SetFeatureCount(*v)
	}
	return _u
}

// AddFeatureCount adds value to the "feature_count" field.
func (_u *GraphRunUpdate) AddFeatureCount(v int) *GraphRunUpdate {
	_u.mutation.AddFeatureCount(v)
	return _u
}

// SetEdgeCount sets the "edge_count" field.
func (_u *GraphRunUpdate) SetEdgeCount(v int) *GraphRunUpdate {
	_u.mutation.ResetEdgeCount()
	_u.mutation.SetEdgeCount(v)
	return _u
}

// SetNillableEdgeCount sets the "edge_count" field if the given value is not nil.
func (_u *GraphRunUpdate) SetNillableEdgeCount(v *int) *GraphRunUpdate {
	if v != nil {
		_u.SetEdgeCount(*v)
	}
	return _u
}

// AddEdgeCount adds value to the "edge_count" field.
func (_u *GraphRunUpdate) AddEdgeCount(v int) *GraphRunUpdate {
	_u.mutation.AddEdgeCount(v)
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *GraphRunUpdate) SetProjectID(id uuid.UUID) *GraphRunUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *GraphRunUpdate) SetProject(v *Project) *GraphRunUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the GraphRunMutation object of the builder.
func (_u *GraphRunUpdate) Mutation() *GraphRunMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *GraphRunUpdate) ClearProject() *GraphRunUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphRunUpdate) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := graphrun.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "GraphRun.model": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GraphRun.project"`)
	}
	return nil
}

func (_u *GraphRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphrun.Table, graphrun.Columns, sqlgraph.NewFieldSpec(graphrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(graphrun.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(graphrun.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(graphrun.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DroppedEdges(); ok {
		_spec.SetField(graphrun.FieldDroppedEdges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDroppedEdges(); ok {
		_spec.AddField(graphrun.FieldDroppedEdges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeatureCount(); ok {
		_spec.SetField(graphrun.FieldFeatureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeatureCount(); ok {
		_spec.AddField(graphrun.FieldFeatureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EdgeCount(); ok {
		_spec.SetField(graphrun.FieldEdgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdgeCount(); ok {
		_spec.AddField(graphrun.FieldEdgeCount, field.TypeInt, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphRunUpdateOne is the builder for updating a single GraphRun entity.
type GraphRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphRunMutation
}

// SetModel sets the "model" field.
func (_u *GraphRunUpdateOne) SetModel(v string) *GraphRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GraphRunUpdateOne) SetNillableModel(v *string) *GraphRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *GraphRunUpdateOne) ClearModel() *GraphRunUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *GraphRunUpdateOne) SetUsedFallback(v bool) *GraphRunUpdateOne {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *GraphRunUpdateOne) SetNillableUsedFallback(v *bool) *GraphRunUpdateOne {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetDroppedEdges sets the "dropped_edges" field.
func (_u *GraphRunUpdateOne) SetDroppedEdges(v int) *GraphRunUpdateOne {
	_u.mutation.ResetDroppedEdges()
	_u.mutation.SetDroppedEdges(v)
	return _u
}

// SetNillableDroppedEdges sets the "dropped_edges" field if the given value is not nil.
func (_u *GraphRunUpdateOne) SetNillableDroppedEdges(v *int) *GraphRunUpdateOne {
	if v != nil {
		_u.SetDroppedEdges(*v)
	}
	return _u
}

// AddDroppedEdges adds value to the "dropped_edges" field.
func (_u *GraphRunUpdateOne) AddDroppedEdges(v int) *GraphRunUpdateOne {
	_u.mutation.AddDroppedEdges(v)
	return _u
}

// SetFeatureCount sets the "feature_count" field.
func (_u *GraphRunUpdateOne) SetFeatureCount(v int) *GraphRunUpdateOne {
	_u.mutation.ResetFeatureCount()
	_u.mutation.SetFeatureCount(v)
	return _u
}

// SetNillableFeatureCount sets the "feature_count" field if the given value is not nil.
func (_u *GraphRunUpdateOne) SetNillableFeatureCount(v *int) *GraphRunUpdateOne {
	if v != nil {
		_u.SetFeatureCount(*v)
	}
	return _u
}

// AddFeatureCount adds value to the "feature_count" field.
func (_u *GraphRunUpdateOne) AddFeatureCount(v int) *GraphRunUpdateOne {
	_u.mutation.AddFeatureCount(v)
	return _u
}

// SetEdgeCount sets the "edge_count" field.
func (_u *GraphRunUpdateOne) SetEdgeCount(v int) *GraphRunUpdateOne {
	_u.mutation.ResetEdgeCount()
	_u.mutation.SetEdgeCount(v)
	return _u
}

// SetNillableEdgeCount sets the "edge_count" field if the given value is not nil.
func (_u *GraphRunUpdateOne) SetNillableEdgeCount(v *int) *GraphRunUpdateOne {
	if v != nil {
		_u.SetEdgeCount(*v)
	}
	return _u
}

// AddEdgeCount adds value to the "edge_count" field.
func (_u *GraphRunUpdateOne) AddEdgeCount(v int) *GraphRunUpdateOne {
	_u.mutation.AddEdgeCount(v)
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *GraphRunUpdateOne) SetProjectID(id uuid.UUID) *GraphRunUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *GraphRunUpdateOne) SetProject(v *Project) *GraphRunUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the GraphRunMutation object of the builder.
func (_u *GraphRunUpdateOne) Mutation() *GraphRunMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *GraphRunUpdateOne) ClearProject() *GraphRunUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the GraphRunUpdate builder.
func (_u *GraphRunUpdateOne) Where(ps ...predicate.GraphRun) *GraphRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphRunUpdateOne) Select(field string, fields ...string) *GraphRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphRun entity.
func (_u *GraphRunUpdateOne) Save(ctx context.Context) (*GraphRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphRunUpdateOne) SaveX(ctx context.Context) *GraphRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphRunUpdateOne) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := graphrun.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "GraphRun.model": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GraphRun.project"`)
	}
	return nil
}

func (_u *GraphRunUpdateOne) sqlSave(ctx context.Context) (_node *GraphRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphrun.Table, graphrun.Columns, sqlgraph.NewFieldSpec(graphrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphrun.FieldID)
		for _, f := range fields {
			if !graphrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphrun.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(graphrun.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(graphrun.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(graphrun.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DroppedEdges(); ok {
		_spec.SetField(graphrun.FieldDroppedEdges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDroppedEdges(); ok {
		_spec.AddField(graphrun.FieldDroppedEdges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeatureCount(); ok {
		_spec.SetField(graphrun.FieldFeatureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeatureCount(); ok {
		_spec.AddField(graphrun.FieldFeatureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EdgeCount(); ok {
		_spec.SetField(graphrun.FieldEdgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdgeCount(); ok {
		_spec.AddField(graphrun.FieldEdgeCount, field.TypeInt, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GraphRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

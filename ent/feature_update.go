// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"planforge/ent/predicate"
	"planforge/ent/project"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FeatureUpdate is the builder for updating Feature entities.
type FeatureUpdate struct {
	config
	hooks    []Hook
	mutation *FeatureMutation
}

// Where appends a list predicates to the FeatureUpdate builder.
func (_u *FeatureUpdate) Where(ps ...predicate.Feature) *FeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *FeatureUpdate) SetTitle(v string) *FeatureUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableTitle(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *FeatureUpdate) SetNotes(v string) *FeatureUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableNotes(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *FeatureUpdate) ClearNotes() *FeatureUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPosX sets the "pos_x" field.
func (_u *FeatureUpdate) SetPosX(v float64) *FeatureUpdate {
	_u.mutation.ResetPosX()
	_u.mutation.SetPosX(v)
	return _u
}

// SetNillablePosX sets the "pos_x" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillablePosX(v *float64) *FeatureUpdate {
	if v != nil {
		_u.SetPosX(*v)
	}
	return _u
}

// AddPosX adds value to the "pos_x" field.
func (_u *FeatureUpdate) AddPosX(v float64) *FeatureUpdate {
	_u.mutation.AddPosX(v)
	return _u
}

// ClearPosX clears the value of the "pos_x" field.
func (_u *FeatureUpdate) ClearPosX() *FeatureUpdate {
	_u.mutation.ClearPosX()
	return _u
}

// SetPosY sets the "pos_y" field.
func (_u *FeatureUpdate) SetPosY(v float64) *FeatureUpdate {
	_u.mutation.ResetPosY()
	_u.mutation.SetPosY(v)
	return _u
}

// SetNillablePosY sets the "pos_y" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillablePosY(v *float64) *FeatureUpdate {
	if v != nil {
		_u.SetPosY(*v)
	}
	return _u
}

// AddPosY adds value to the "pos_y" field.
func (_u *FeatureUpdate) AddPosY(v float64) *FeatureUpdate {
	_u.mutation.AddPosY(v)
	return _u
}

// ClearPosY clears the value of the "pos_y" field.
func (_u *FeatureUpdate) ClearPosY() *FeatureUpdate {
	_u.mutation.ClearPosY()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeatureUpdate) SetUpdatedAt(v time.Time) *FeatureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *FeatureUpdate) SetProjectID(id uuid.UUID) *FeatureUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *FeatureUpdate) SetProject(v *Project) *FeatureUpdate {
	return _u.SetProjectID(v.ID)
}

// AddOutgoingIDs adds the "outgoing" edge to the Dependency entity by IDs.
func (_u *FeatureUpdate) AddOutgoingIDs(ids ...uuid.UUID) *FeatureUpdate {
	_u.mutation.AddOutgoingIDs(ids...)
	return _u
}

// AddOutgoing adds the "outgoing" edges to the Dependency entity.
func (_u *FeatureUpdate) AddOutgoing(v ...*Dependency) *FeatureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingIDs(ids...)
}

// AddIncomingIDs adds the "incoming" edge to the Dependency entity by IDs.
func (_u *FeatureUpdate) AddIncomingIDs(ids ...uuid.UUID) *FeatureUpdate {
	_u.mutation.AddIncomingIDs(ids...)
	return _u
}

// AddIncoming adds the "incoming" edges to the Dependency entity.
func (_u *FeatureUpdate) AddIncoming(v ...*Dependency) *FeatureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingIDs(ids...)
}

// AddPrdIDs adds the "prd" edge to the PRD entity by IDs.
func (_u *FeatureUpdate) AddPrdIDs(ids ...uuid.UUID) *FeatureUpdate {
	_u.mutation.AddPrdIDs(ids...)
	return _u
}

// AddPrd adds the "prd" edges to the PRD entity.
func (_u *FeatureUpdate) AddPrd(v ...*PRD) *FeatureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrdIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_u *FeatureUpdate) Mutation() *FeatureMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *FeatureUpdate) ClearProject() *FeatureUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearOutgoing clears all "outgoing" edges to the Dependency entity.
func (_u *FeatureUpdate) ClearOutgoing() *FeatureUpdate {
	_u.mutation.ClearOutgoing()
	return _u
}

// RemoveOutgoingIDs removes the "outgoing" edge to Dependency entities by IDs.
func (_u *FeatureUpdate) RemoveOutgoingIDs(ids ...uuid.UUID) *FeatureUpdate {
	_u.mutation.RemoveOutgoingIDs(ids...)
	return _u
}

// RemoveOutgoing removes "outgoing" edges to Dependency entities.
func (_u *FeatureUpdate) RemoveOutgoing(v ...*Dependency) *FeatureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingIDs(ids...)
}

// ClearIncoming clears all "incoming" edges to the Dependency entity.
func (_u *FeatureUpdate) ClearIncoming() *FeatureUpdate {
	_u.mutation.ClearIncoming()
	return _u
}

// RemoveIncomingIDs removes the "incoming" edge to Dependency entities by IDs.
func (_u *FeatureUpdate) RemoveIncomingIDs(ids ...uuid.UUID) *FeatureUpdate {
	_u.mutation.RemoveIncomingIDs(ids...)
	return _u
}

// RemoveIncoming removes "incoming" edges to Dependency entities.
func (_u *FeatureUpdate) RemoveIncoming(v ...*Dependency) *FeatureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingIDs(ids...)
}

// ClearPrd clears all "prd" edges to the PRD entity.
func (_u *FeatureUpdate) ClearPrd() *FeatureUpdate {
	_u.mutation.ClearPrd()
	return _u
}

// RemovePrdIDs removes the "prd" edge to PRD entities by IDs.
func (_u *FeatureUpdate) RemovePrdIDs(ids ...uuid.UUID) *FeatureUpdate {
	_u.mutation.RemovePrdIDs(ids...)
	return _u
}

// RemovePrd removes "prd" edges to PRD entities.
func (_u *FeatureUpdate) RemovePrd(v ...*PRD) *FeatureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrdIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeatureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeatureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feature.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := feature.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Feature.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := feature.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "Feature.notes": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.project"`)
	}
	return nil
}

func (_u *FeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(feature.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(feature.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(feature.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PosX(); ok {
		_spec.SetField(feature.FieldPosX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosX(); ok {
		_spec.AddField(feature.FieldPosX, field.TypeFloat64, value)
	}
	if _u.mutation.PosXCleared() {
		_spec.ClearField(feature.FieldPosX, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PosY(); ok {
		_spec.SetField(feature.FieldPosY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosY(); ok {
		_spec.AddField(feature.FieldPosY, field.TypeFloat64, value)
	}
	if _u.mutation.PosYCleared() {
		_spec.ClearField(feature.FieldPosY, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feature.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingIDs(); len(nodes) > 0 && !_u.mutation.OutgoingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingIDs(); len(nodes) > 0 && !_u.mutation.IncomingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrdCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrdIDs(); len(nodes) > 0 && !_u.mutation.PrdCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrdIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeatureUpdateOne is the builder for updating a single Feature entity.
type FeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeatureMutation
}

// SetTitle sets the "title" field.
func (_u *FeatureUpdateOne) SetTitle(v string) *FeatureUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableTitle(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *FeatureUpdateOne) SetNotes(v string) *FeatureUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableNotes(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *FeatureUpdateOne) ClearNotes() *FeatureUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPosX sets the "pos_x" field.
func (_u *FeatureUpdateOne) SetPosX(v float64) *FeatureUpdateOne {
	_u.mutation.ResetPosX()
	_u.mutation.SetPosX(v)
	return _u
}

// SetNillablePosX sets the "pos_x" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillablePosX(v *float64) *FeatureUpdateOne {
	if v != nil {
		_u.SetPosX(*v)
	}
	return _u
}

// AddPosX adds value to the "pos_x" field.
func (_u *FeatureUpdateOne) AddPosX(v float64) *FeatureUpdateOne {
	_u.mutation.AddPosX(v)
	return _u
}

// ClearPosX clears the value of the "pos_x" field.
func (_u *FeatureUpdateOne) ClearPosX() *FeatureUpdateOne {
	_u.mutation.ClearPosX()
	return _u
}

// SetPosY sets the "pos_y" field.
func (_u *FeatureUpdateOne) SetPosY(v float64) *FeatureUpdateOne {
	_u.mutation.ResetPosY()
	_u.mutation.SetPosY(v)
	return _u
}

// SetNillablePosY sets the "pos_y" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillablePosY(v *float64) *FeatureUpdateOne {
	if v != nil {
		_u.SetPosY(*v)
	}
	return _u
}

// AddPosY adds value to the "pos_y" field.
func (_u *FeatureUpdateOne) AddPosY(v float64) *FeatureUpdateOne {
	_u.mutation.AddPosY(v)
	return _u
}

// ClearPosY clears the value of the "pos_y" field.
func (_u *FeatureUpdateOne) ClearPosY() *FeatureUpdateOne {
	_u.mutation.ClearPosY()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeatureUpdateOne) SetUpdatedAt(v time.Time) *FeatureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *FeatureUpdateOne) SetProjectID(id uuid.UUID) *FeatureUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *FeatureUpdateOne) SetProject(v *Project) *FeatureUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddOutgoingIDs adds the "outgoing" edge to the Dependency entity by IDs.
func (_u *FeatureUpdateOne) AddOutgoingIDs(ids ...uuid.UUID) *FeatureUpdateOne {
	_u.mutation.AddOutgoingIDs(ids...)
	return _u
}

// AddOutgoing adds the "outgoing" edges to the Dependency entity.
func (_u *FeatureUpdateOne) AddOutgoing(v ...*Dependency) *FeatureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingIDs(ids...)
}

// AddIncomingIDs adds the "incoming" edge to the Dependency entity by IDs.
func (_u *FeatureUpdateOne) AddIncomingIDs(ids ...uuid.UUID) *FeatureUpdateOne {
	_u.mutation.AddIncomingIDs(ids...)
	return _u
}

// AddIncoming adds the "incoming" edges to the Dependency entity.
func (_u *FeatureUpdateOne) AddIncoming(v ...*Dependency) *FeatureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingIDs(ids...)
}

// AddPrdIDs adds the "prd" edge to the PRD entity by IDs.
func (_u *FeatureUpdateOne) AddPrdIDs(ids ...uuid.UUID) *FeatureUpdateOne {
	_u.mutation.AddPrdIDs(ids...)
	return _u
}

// AddPrd adds the "prd" edges to the PRD entity.
func (_u *FeatureUpdateOne) AddPrd(v ...*PRD) *FeatureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrdIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_u *FeatureUpdateOne) Mutation() *FeatureMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *FeatureUpdateOne) ClearProject() *FeatureUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearOutgoing clears all "outgoing" edges to the Dependency entity.
func (_u *FeatureUpdateOne) ClearOutgoing() *FeatureUpdateOne {
	_u.mutation.ClearOutgoing()
	return _u
}

// RemoveOutgoingIDs removes the "outgoing" edge to Dependency entities by IDs.
func (_u *FeatureUpdateOne) RemoveOutgoingIDs(ids ...uuid.UUID) *FeatureUpdateOne {
	_u.mutation.RemoveOutgoingIDs(ids...)
	return _u
}

// RemoveOutgoing removes "outgoing" edges to Dependency entities.
func (_u *FeatureUpdateOne) RemoveOutgoing(v ...*Dependency) *FeatureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingIDs(ids...)
}

// ClearIncoming clears all "incoming" edges to the Dependency entity.
func (_u *FeatureUpdateOne) ClearIncoming() *FeatureUpdateOne {
	_u.mutation.ClearIncoming()
	return _u
}

// RemoveIncomingIDs removes the "incoming" edge to Dependency entities by IDs.
func (_u *FeatureUpdateOne) RemoveIncomingIDs(ids ...uuid.UUID) *FeatureUpdateOne {
	_u.mutation.RemoveIncomingIDs(ids...)
	return _u
}

// RemoveIncoming removes "incoming" edges to Dependency entities.
func (_u *FeatureUpdateOne) RemoveIncoming(v ...*Dependency) *FeatureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingIDs(ids...)
}

// ClearPrd clears all "prd" edges to the PRD entity.
func (_u *FeatureUpdateOne) ClearPrd() *FeatureUpdateOne {
	_u.mutation.ClearPrd()
	return _u
}

// RemovePrdIDs removes the "prd" edge to PRD entities by IDs.
func (_u *FeatureUpdateOne) RemovePrdIDs(ids ...uuid.UUID) *FeatureUpdateOne {
	_u.mutation.RemovePrdIDs(ids...)
	return _u
}

// RemovePrd removes "prd" edges to PRD entities.
func (_u *FeatureUpdateOne) RemovePrd(v ...*PRD) *FeatureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrdIDs(ids...)
}

// Where appends a list predicates to the FeatureUpdate builder.
func (_u *FeatureUpdateOne) Where(ps ...predicate.Feature) *FeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeatureUpdateOne) Select(field string, fields ...string) *FeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feature entity.
func (_u *FeatureUpdateOne) Save(ctx context.Context) (*Feature, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUpdateOne) SaveX(ctx context.Context) *Feature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeatureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feature.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := feature.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Feature.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := feature.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "Feature.notes": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.project"`)
	}
	return nil
}

func (_u *FeatureUpdateOne) sqlSave(ctx context.Context) (_node *Feature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feature.FieldID)
		for _, f := range fields {
			if !feature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feature.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(feature.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(feature.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(feature.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PosX(); ok {
		_spec.SetField(feature.FieldPosX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosX(); ok {
		_spec.AddField(feature.FieldPosX, field.TypeFloat64, value)
	}
	if _u.mutation.PosXCleared() {
		_spec.ClearField(feature.FieldPosX, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PosY(); ok {
		_spec.SetField(feature.FieldPosY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosY(); ok {
		_spec.AddField(feature.FieldPosY, field.TypeFloat64, value)
	}
	if _u.mutation.PosYCleared() {
		_spec.ClearField(feature.FieldPosY, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feature.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingIDs(); len(nodes) > 0 && !_u.mutation.OutgoingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingIDs(); len(nodes) > 0 && !_u.mutation.IncomingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrdCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrdIDs(); len(nodes) > 0 && !_u.mutation.PrdCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrdIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Feature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"planforge/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PRDUpdate is the builder for updating PRD entities.
type PRDUpdate struct {
	config
	hooks    []Hook
	mutation *PRDMutation
}

// Where appends a list predicates to the PRDUpdate builder.
func (_u *PRDUpdate) Where(ps ...predicate.PRD) *PRDUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PRDUpdate) SetStatus(v prd.Status) *PRDUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PRDUpdate) SetNillableStatus(v *prd.Status) *PRDUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentMd sets the "content_md" field.
func (_u *PRDUpdate) SetContentMd(v string) *PRDUpdate {
	_u.mutation.SetContentMd(v)
	return _u
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (_u *PRDUpdate) SetNillableContentMd(v *string) *PRDUpdate {
	if v != nil {
		_u.SetContentMd(*v)
	}
	return _u
}

// ClearContentMd clears the value of the "content_md" field.
func (_u *PRDUpdate) ClearContentMd() *PRDUpdate {
	_u.mutation.ClearContentMd()
	return _u
}

// SetContentJSON sets the "content_json" field.
func (_u *PRDUpdate) SetContentJSON(v map[string]interface{}) *PRDUpdate {
	_u.mutation.SetContentJSON(v)
	return _u
}

// ClearContentJSON clears the value of the "content_json" field.
func (_u *PRDUpdate) ClearContentJSON() *PRDUpdate {
	_u.mutation.ClearContentJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PRDUpdate) SetErrorMessage(v string) *PRDUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PRDUpdate) SetNillableErrorMessage(v *string) *PRDUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PRDUpdate) ClearErrorMessage() *PRDUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModel sets the "model" field.
func (_u *PRDUpdate) SetModel(v string) *PRDUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PRDUpdate) SetNillableModel(v *string) *PRDUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *PRDUpdate) ClearModel() *PRDUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PRDUpdate) SetUpdatedAt(v time.Time) *PRDUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFeatureID sets the "feature" edge to the Feature entity by ID.
func (_u *PRDUpdate) SetFeatureID(id uuid.UUID) *PRDUpdate {
	_u.mutation.SetFeatureID(id)
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *PRDUpdate) SetFeature(v *Feature) *PRDUpdate {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the PRDMutation object of the builder.
func (_u *PRDUpdate) Mutation() *PRDMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *PRDUpdate) ClearFeature() *PRDUpdate {
	_u.mutation.ClearFeature()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PRDUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PRDUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PRDUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PRDUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PRDUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prd.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PRDUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := prd.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PRD.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorMessage(); ok {
		if err := prd.ErrorMessageValidator(v); err != nil {
			return &ValidationError{Name: "error_message", err: fmt.Errorf(`ent: validator failed for field "PRD.error_message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := prd.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "PRD.model": %w`, err)}
		}
	}
	if _u.mutation.FeatureCleared() && len(_u.mutation.FeatureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PRD.feature"`)
	}
	return nil
}

func (_u *PRDUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prd.Table, prd.Columns, sqlgraph.NewFieldSpec(prd.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prd.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentMd(); ok {
		_spec.SetField(prd.FieldContentMd, field.TypeString, value)
	}
	if _u.mutation.ContentMdCleared() {
		_spec.ClearField(prd.FieldContentMd, field.TypeString)
	}
	if value, ok := _u.mutation.ContentJSON(); ok {
		_spec.SetField(prd.FieldContentJSON, field.TypeJSON, value)
	}
	if _u.mutation.ContentJSONCleared() {
		_spec.ClearField(prd.FieldContentJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(prd.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(prd.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(prd.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(prd.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prd.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FeatureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prd.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PRDUpdateOne is the builder for updating a single PRD entity.
type PRDUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PRDMutation
}

// SetStatus sets the "status" field.
func (_u *PRDUpdateOne) SetStatus(v prd.Status) *PRDUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PRDUpdateOne) SetNillableStatus(v *prd.Status) *PRDUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentMd sets the "content_md" field.
func (_u *PRDUpdateOne) SetContentMd(v string) *PRDUpdateOne {
	_u.mutation.SetContentMd(v)
	return _u
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (_u *PRDUpdateOne) SetNillableContentMd(v *string) *PRDUpdateOne {
	if v != nil {
		_u.SetContentMd(*v)
	}
	return _u
}

// ClearContentMd clears the value of the "content_md" field.
func (_u *PRDUpdateOne) ClearContentMd() *PRDUpdateOne {
	_u.mutation.ClearContentMd()
	return _u
}

// SetContentJSON sets the "content_json" field.
func (_u *PRDUpdateOne) SetContentJSON(v map[string]interface{}) *PRDUpdateOne {
	_u.mutation.SetContentJSON(v)
	return _u
}

// ClearContentJSON clears the value of the "content_json" field.
func (_u *PRDUpdateOne) ClearContentJSON() *PRDUpdateOne {
	_u.mutation.ClearContentJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PRDUpdateOne) SetErrorMessage(v string) *PRDUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PRDUpdateOne) SetNillableErrorMessage(v *string) *PRDUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PRDUpdateOne) ClearErrorMessage() *PRDUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModel sets the "model" field.
func (_u *PRDUpdateOne) SetModel(v string) *PRDUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PRDUpdateOne) SetNillableModel(v *string) *PRDUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *PRDUpdateOne) ClearModel() *PRDUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PRDUpdateOne) SetUpdatedAt(v time.Time) *PRDUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFeatureID sets the "feature" edge to the Feature entity by ID.
func (_u *PRDUpdateOne) SetFeatureID(id uuid.UUID) *PRDUpdateOne {
	_u.mutation.SetFeatureID(id)
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *PRDUpdateOne) SetFeature(v *Feature) *PRDUpdateOne {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the PRDMutation object of the builder.
func (_u *PRDUpdateOne) Mutation() *PRDMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *PRDUpdateOne) ClearFeature() *PRDUpdateOne {
	_u.mutation.ClearFeature()
	return _u
}

// Where appends a list predicates to the PRDUpdate builder.
func (_u *PRDUpdateOne) Where(ps ...predicate.PRD) *PRDUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PRDUpdateOne) Select(field string, fields ...string) *PRDUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PRD entity.
func (_u *PRDUpdateOne) Save(ctx context.Context) (*PRD, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PRDUpdateOne) SaveX(ctx context.Context) *PRD {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PRDUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PRDUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PRDUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prd.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PRDUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := prd.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PRD.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorMessage(); ok {
		if err := prd.ErrorMessageValidator(v); err != nil {
			return &ValidationError{Name: "error_message", err: fmt.Errorf(`ent: validator failed for field "PRD.error_message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := prd.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "PRD.model": %w`, err)}
		}
	}
	if _u.mutation.FeatureCleared() && len(_u.mutation.FeatureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PRD.feature"`)
	}
	return nil
}

func (_u *PRDUpdateOne) sqlSave(ctx context.Context) (_node *PRD, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prd.Table, prd.Columns, sqlgraph.NewFieldSpec(prd.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PRD.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prd.FieldID)
		for _, f := range fields {
			if !prd.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prd.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prd.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentMd(); ok {
		_spec.SetField(prd.FieldContentMd, field.TypeString, value)
	}
	if _u.mutation.ContentMdCleared() {
		_spec.ClearField(prd.FieldContentMd, field.TypeString)
	}
	if value, ok := _u.mutation.ContentJSON(); ok {
		_spec.SetField(prd.FieldContentJSON, field.TypeJSON, value)
	}
	if _u.mutation.ContentJSONCleared() {
		_spec.ClearField(prd.FieldContentJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(prd.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(prd.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(prd.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(prd.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prd.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FeatureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PRD{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prd.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

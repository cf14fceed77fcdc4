// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"planforge/ent/graphrun"
	"planforge/ent/project"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// GraphRun is the model entity for the GraphRun schema.
type GraphRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// UsedFallback holds the value of the "used_fallback" field.
	UsedFallback bool `json:"used_fallback,omitempty"`
	// DroppedEdges holds the value of the "dropped_edges" field.
	DroppedEdges int `json:"dropped_edges,omitempty"`
	// FeatureCount holds the value of the "feature_count" field.
	FeatureCount int `json:"feature_count,omitempty"`
	// EdgeCount holds the value of the "edge_count" field.
	EdgeCount int `json:"edge_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GraphRunQuery when eager-loading is set.
	Edges             GraphRunEdges `json:"edges"`
	graph_run_project *uuid.UUID
	selectValues      sql.SelectValues
}

// GraphRunEdges holds the relations/edges for other nodes in the graph.
type GraphRunEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GraphRunEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphrun.FieldUsedFallback:
			values[i] = new(sql.NullBool)
		case graphrun.FieldDroppedEdges, graphrun.FieldFeatureCount, graphrun.FieldEdgeCount:
			values[i] = new(sql.NullInt64)
		case graphrun.FieldModel:
			values[i] = new(sql.NullString)
		case graphrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case graphrun.FieldID:
			values[i] = new(uuid.UUID)
		case graphrun.ForeignKeys[0]: // graph_run_project
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphRun fields.
func (_m *GraphRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case graphrun.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case graphrun.FieldUsedFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field used_fallback", values[i])
			} else if value.Valid {
				_m.UsedFallback = value.Bool
			}
		case graphrun.FieldDroppedEdges:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dropped_edges", values[i])
			} else if value.Valid {
				_m.DroppedEdges = int(value.Int64)
			}
		case graphrun.FieldFeatureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field feature_count", values[i])
			} else if value.Valid {
				_m.FeatureCount = int(value.Int64)
			}
		case graphrun.FieldEdgeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field edge_count", values[i])
			} else if value.Valid {
				_m.EdgeCount = int(value.Int64)
			}
		case graphrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case graphrun.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field graph_run_project", values[i])
			} else if value.Valid {
				_m.graph_run_project = new(uuid.UUID)
				*_m.graph_run_project = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphRun.
// This includes values selected through modifiers, order, etc.
func (_m *GraphRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the GraphRun entity.
func (_m *GraphRun) QueryProject() *ProjectQuery {
	return NewGraphRunClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this GraphRun.
// Note that you need to call GraphRun.Unwrap() before calling this method if this GraphRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphRun) Update() *GraphRunUpdateOne {
	return NewGraphRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphRun) Unwrap() *GraphRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphRun) String() string {
	var builder strings.Builder
	builder.WriteString("GraphRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("used_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedFallback))
	builder.WriteString(", ")
	builder.WriteString("dropped_edges=")
	builder.WriteString(fmt.Sprintf("%v", _m.DroppedEdges))
	builder.WriteString(", ")
	builder.WriteString("feature_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureCount))
	builder.WriteString(", ")
	builder.WriteString("edge_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EdgeCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphRuns is a parsable slice of GraphRun.
type GraphRuns []*GraphRun

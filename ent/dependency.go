// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/project"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Dependency is the model entity for the Dependency schema.
type Dependency struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DependencyQuery when eager-loading is set.
	Edges              DependencyEdges `json:"edges"`
	dependency_project *uuid.UUID
	dependency_source  *uuid.UUID
	dependency_target  *uuid.UUID
	selectValues       sql.SelectValues
}

// DependencyEdges holds the relations/edges for other nodes in the graph.
type DependencyEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Source holds the value of the source edge.
	Source *Feature `json:"source,omitempty"`
	// Target holds the value of the target edge.
	Target *Feature `json:"target,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DependencyEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DependencyEdges) SourceOrErr() (*Feature, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// TargetOrErr returns the Target value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DependencyEdges) TargetOrErr() (*Feature, error) {
	if e.Target != nil {
		return e.Target, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "target"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dependency.FieldNote:
			values[i] = new(sql.NullString)
		case dependency.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case dependency.FieldID:
			values[i] = new(uuid.UUID)
		case dependency.ForeignKeys[0]: // dependency_project
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case dependency.ForeignKeys[1]: // dependency_source
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case dependency.ForeignKeys[2]: // dependency_target
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dependency fields.
func (_m *Dependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dependency.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dependency.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case dependency.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dependency.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field dependency_project", values[i])
			} else if value.Valid {
				_m.dependency_project = new(uuid.UUID)
				*_m.dependency_project = *value.S.(*uuid.UUID)
			}
		case dependency.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field dependency_source", values[i])
			} else if value.Valid {
				_m.dependency_source = new(uuid.UUID)
				*_m.dependency_source = *value.S.(*uuid.UUID)
			}
		case dependency.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field dependency_target", values[i])
			} else if value.Valid {
				_m.dependency_target = new(uuid.UUID)
				*_m.dependency_target = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dependency.
// This includes values selected through modifiers, order, etc.
func (_m *Dependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Dependency entity.
func (_m *Dependency) QueryProject() *ProjectQuery {
	return NewDependencyClient(_m.config).QueryProject(_m)
}

// QuerySource queries the "source" edge of the Dependency entity.
func (_m *Dependency) QuerySource() *FeatureQuery {
	return NewDependencyClient(_m.config).QuerySource(_m)
}

// QueryTarget queries the "target" edge of the Dependency entity.
func (_m *Dependency) QueryTarget() *FeatureQuery {
	return NewDependencyClient(_m.config).QueryTarget(_m)
}

// Update returns a builder for updating this Dependency.
// Note that you need to call Dependency.Unwrap() before calling this method if this Dependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dependency) Update() *DependencyUpdateOne {
	return NewDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dependency) Unwrap() *Dependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Dependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dependency) String() string {
	var builder strings.Builder
	builder.WriteString("Dependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Dependencies is a parsable slice of Dependency.
type Dependencies []*Dependency

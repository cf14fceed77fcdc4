// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"planforge/ent/feature"
	"planforge/ent/project"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Feature is the model entity for the Feature schema.
type Feature struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// PosX holds the value of the "pos_x" field.
	PosX *float64 `json:"pos_x,omitempty"`
	// PosY holds the value of the "pos_y" field.
	PosY *float64 `json:"pos_y,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeatureQuery when eager-loading is set.
	Edges           FeatureEdges `json:"edges"`
	feature_project *uuid.UUID
	selectValues    sql.SelectValues
}

// FeatureEdges holds the relations/edges for other nodes in the graph.
type FeatureEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Outgoing holds the value of the outgoing edge.
	Outgoing []*Dependency `json:"outgoing,omitempty"`
	// Incoming holds the value of the incoming edge.
	Incoming []*Dependency `json:"incoming,omitempty"`
	// Prd holds the value of the prd edge.
	Prd []*PRD `json:"prd,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// OutgoingOrErr returns the Outgoing value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) OutgoingOrErr() ([]*Dependency, error) {
	if e.loadedTypes[1] {
		return e.Outgoing, nil
	}
	return nil, &NotLoadedError{edge: "outgoing"}
}

// IncomingOrErr returns the Incoming value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) IncomingOrErr() ([]*Dependency, error) {
	if e.loadedTypes[2] {
		return e.Incoming, nil
	}
	return nil, &NotLoadedError{edge: "incoming"}
}

// PrdOrErr returns the Prd value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) PrdOrErr() ([]*PRD, error) {
	if e.loadedTypes[3] {
		return e.Prd, nil
	}
	return nil, &NotLoadedError{edge: "prd"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Feature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feature.FieldPosX, feature.FieldPosY:
			values[i] = new(sql.NullFloat64)
		case feature.FieldTitle, feature.FieldNotes:
			values[i] = new(sql.NullString)
		case feature.FieldCreatedAt, feature.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case feature.FieldID:
			values[i] = new(uuid.UUID)
		case feature.ForeignKeys[0]: // feature_project
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Feature fields.
func (_m *Feature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feature.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case feature.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case feature.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case feature.FieldPosX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pos_x", values[i])
			} else if value.Valid {
				_m.PosX = new(float64)
				*_m.PosX = value.Float64
			}
		case feature.FieldPosY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pos_y", values[i])
			} else if value.Valid {
				_m.PosY = new(float64)
				*_m.PosY = value.Float64
			}
		case feature.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case feature.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case feature.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field feature_project", values[i])
			} else if value.Valid {
				_m.feature_project = new(uuid.UUID)
				*_m.feature_project = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Feature.
// This includes values selected through modifiers, order, etc.
func (_m *Feature) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Feature entity.
func (_m *Feature) QueryProject() *ProjectQuery {
	return NewFeatureClient(_m.config).QueryProject(_m)
}

// QueryOutgoing queries the "outgoing" edge of the Feature entity.
func (_m *Feature) QueryOutgoing() *DependencyQuery {
	return NewFeatureClient(_m.config).QueryOutgoing(_m)
}

// QueryIncoming queries the "incoming" edge of the Feature entity.
func (_m *Feature) QueryIncoming() *DependencyQuery {
	return NewFeatureClient(_m.config).QueryIncoming(_m)
}

// QueryPrd queries the "prd" edge of the Feature entity.
func (_m *Feature) QueryPrd() *PRDQuery {
	return NewFeatureClient(_m.config).QueryPrd(_m)
}

// Update returns a builder for updating this Feature.
// Note that you need to call Feature.Unwrap() before calling this method if this Feature
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Feature) Update() *FeatureUpdateOne {
	return NewFeatureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Feature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Feature) Unwrap() *Feature {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Feature is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Feature) String() string {
	var builder strings.Builder
	builder.WriteString("Feature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	if v := _m.PosX; v != nil {
		builder.WriteString("pos_x=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PosY; v != nil {
		builder.WriteString("pos_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Features is a parsable slice of Feature.
type Features []*Feature

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// PRD is the model entity for the PRD schema.
type PRD struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status prd.Status `json:"status,omitempty"`
	// ContentMd holds the value of the "content_md" field.
	ContentMd string `json:"content_md,omitempty"`
	// ContentJSON holds the value of the "content_json" field.
	ContentJSON map[string]interface{} `json:"content_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PRDQuery when eager-loading is set.
	Edges        PRDEdges `json:"edges"`
	prd_feature  *uuid.UUID
	selectValues sql.SelectValues
}

// PRDEdges holds the relations/edges for other nodes in the graph.
type PRDEdges struct {
	// Feature holds the value of the feature edge.
	Feature *Feature `json:"feature,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FeatureOrErr returns the Feature value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PRDEdges) FeatureOrErr() (*Feature, error) {
	if e.Feature != nil {
		return e.Feature, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "feature"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PRD) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prd.FieldContentJSON:
			values[i] = new([]byte)
		case prd.FieldStatus, prd.FieldContentMd, prd.FieldErrorMessage, prd.FieldModel:
			values[i] = new(sql.NullString)
		case prd.FieldCreatedAt, prd.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case prd.FieldID:
			values[i] = new(uuid.UUID)
		case prd.ForeignKeys[0]: // prd_feature
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PRD fields.
func (_m *PRD) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prd.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case prd.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = prd.Status(value.String)
			}
		case prd.FieldContentMd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_md", values[i])
			} else if value.Valid {
				_m.ContentMd = value.String
			}
		case prd.FieldContentJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentJSON); err != nil {
					return fmt.Errorf("unmarshal field content_json: %w", err)
				}
			}
		case prd.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case prd.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case prd.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prd.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case prd.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prd_feature", values[i])
			} else if value.Valid {
				_m.prd_feature = new(uuid.UUID)
				*_m.prd_feature = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PRD.
// This includes values selected through modifiers, order, etc.
func (_m *PRD) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFeature queries the "feature" edge of the PRD entity.
func (_m *PRD) QueryFeature() *FeatureQuery {
	return NewPRDClient(_m.config).QueryFeature(_m)
}

// Update returns a builder for updating this PRD.
// Note that you need to call PRD.Unwrap() before calling this method if this PRD
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PRD) Update() *PRDUpdateOne {
	return NewPRDClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PRD entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PRD) Unwrap() *PRD {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PRD is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PRD) String() string {
	var builder strings.Builder
	builder.WriteString("PRD(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("content_md=")
	builder.WriteString(_m.ContentMd)
	builder.WriteString(", ")
	builder.WriteString("content_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentJSON))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PRDs is a parsable slice of PRD.
type PRDs []*PRD

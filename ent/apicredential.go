// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"planforge/ent/apicredential"
	"planforge/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// APICredential is the model entity for the APICredential schema.
type APICredential struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// EncryptedKey holds the value of the "encrypted_key" field.
	EncryptedKey []byte `json:"-"`
	// KeyHint holds the value of the "key_hint" field.
	KeyHint string `json:"key_hint,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the APICredentialQuery when eager-loading is set.
	Edges                APICredentialEdges `json:"edges"`
	api_credential_owner *uuid.UUID
	selectValues         sql.SelectValues
}

// APICredentialEdges holds the relations/edges for other nodes in the graph.
type APICredentialEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e APICredentialEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*APICredential) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apicredential.FieldEncryptedKey:
			values[i] = new([]byte)
		case apicredential.FieldProvider, apicredential.FieldKeyHint:
			values[i] = new(sql.NullString)
		case apicredential.FieldCreatedAt, apicredential.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case apicredential.FieldID:
			values[i] = new(uuid.UUID)
		case apicredential.ForeignKeys[0]: // api_credential_owner
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the APICredential fields.
func (_m *APICredential) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apicredential.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case apicredential.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case apicredential.FieldEncryptedKey:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_key", values[i])
			} else if value != nil {
				_m.EncryptedKey = *value
			}
		case apicredential.FieldKeyHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_hint", values[i])
			} else if value.Valid {
				_m.KeyHint = value.String
			}
		case apicredential.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case apicredential.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case apicredential.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field api_credential_owner", values[i])
			} else if value.Valid {
				_m.api_credential_owner = new(uuid.UUID)
				*_m.api_credential_owner = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the APICredential.
// This includes values selected through modifiers, order, etc.
func (_m *APICredential) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the APICredential entity.
func (_m *APICredential) QueryOwner() *UserQuery {
	return NewAPICredentialClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this APICredential.
// Note that you need to call APICredential.Unwrap() before calling this method if this APICredential
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *APICredential) Update() *APICredentialUpdateOne {
	return NewAPICredentialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the APICredential entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *APICredential) Unwrap() *APICredential {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: APICredential is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *APICredential) String() string {
	var builder strings.Builder
	builder.WriteString("APICredential(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("encrypted_key=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("key_hint=")
	builder.WriteString(_m.KeyHint)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// APICredentials is a parsable slice of APICredential.
type APICredentials []*APICredential

// Package schema defines Ent ORM schema types for the application.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// APICredential stores a user's completion-service API key, encrypted at rest
// with AES-256-GCM. Only key_hint (last four characters) is ever returned to
// clients.
type APICredential struct{ ent.Schema }

// Fields defines the fields for the APICredential entity.
func (APICredential) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("provider").Default("openai").MaxLen(60),
		field.Bytes("encrypted_key").Sensitive(),
		field.String("key_hint").Optional().MaxLen(8),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the APICredential entity.
func (APICredential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the APICredential entity.
func (APICredential) Indexes() []ent.Index {
	return []ent.Index{
		// one credential per provider per user
		index.Edges("owner").Fields("provider").Unique(),
	}
}

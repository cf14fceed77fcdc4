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

// PRD is the generated requirements document for one feature.
// Status transitions: idle -> generating -> ready | error.
type PRD struct{ ent.Schema }

// Fields defines the fields for the PRD entity.
func (PRD) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Enum("status").Values("idle", "generating", "ready", "error").Default("idle"),
		field.Text("content_md").Optional(),
		field.JSON("content_json", map[string]any{}).Optional(),
		field.String("error_message").Optional().MaxLen(2000),
		field.String("model").Optional().MaxLen(120),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the PRD entity.
func (PRD) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("feature", Feature.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the PRD entity.
func (PRD) Indexes() []ent.Index {
	return []ent.Index{
		// one PRD per feature
		index.Edges("feature").Unique(),
		index.Fields("status"),
	}
}

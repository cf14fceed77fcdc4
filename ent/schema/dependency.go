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

// Dependency is a directed edge between two features of one project.
// Rows are fully regenerated (delete-all, reinsert) on every graph generation.
type Dependency struct{ ent.Schema }

// Fields defines the fields for the Dependency entity.
func (Dependency) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("note").Optional().MaxLen(500),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges defines the relationships for the Dependency entity.
func (Dependency) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("project", Project.Type).Unique().Required(),
		edge.To("source", Feature.Type).Unique().Required(),
		edge.To("target", Feature.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the Dependency entity.
func (Dependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("project"),
		index.Edges("source"),
		index.Edges("target"),
	}
}

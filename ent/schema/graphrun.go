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

// GraphRun is the audit record written after every graph generation.
type GraphRun struct{ ent.Schema }

// Fields defines the fields for the GraphRun entity.
func (GraphRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("model").Optional().MaxLen(120),
		field.Bool("used_fallback").Default(false),
		field.Int("dropped_edges").Default(0),
		field.Int("feature_count").Default(0),
		field.Int("edge_count").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges defines the relationships for the GraphRun entity.
func (GraphRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("project", Project.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the GraphRun entity.
func (GraphRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("project").Fields("created_at"),
	}
}

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

// Feature is a user-defined unit of project scope. Position columns are the
// source of truth for node coordinates after user drag-edits; the project's
// graph payload only caches them for rendering.
type Feature struct{ ent.Schema }

// Fields defines the fields for the Feature entity.
func (Feature) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("title").MinLen(2).MaxLen(120),
		field.String("notes").Optional().MaxLen(8000),
		field.Float("pos_x").Optional().Nillable(),
		field.Float("pos_y").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Feature entity.
func (Feature) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("project", Project.Type).Unique().Required(),
		edge.From("outgoing", Dependency.Type).Ref("source"),
		edge.From("incoming", Dependency.Type).Ref("target"),
		edge.From("prd", PRD.Type).Ref("feature"),
	}
}

// Indexes defines indexes for the Feature entity.
func (Feature) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("project"),
		index.Edges("project").Fields("updated_at"),
	}
}

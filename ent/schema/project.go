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

// Project is a planning workspace owning features, edges and a rendered graph.
//
// The graph column is a denormalized rendering cache of the last generated
// layout. Dependency structure is owned by the Dependency table, never by
// this payload.
type Project struct{ ent.Schema }

// Fields defines the fields for the Project entity.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().MaxLen(255),
		field.String("description").Optional().MaxLen(4000),
		field.JSON("graph", map[string]any{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Project entity.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.From("features", Feature.Type).Ref("project"),
		edge.From("dependencies", Dependency.Type).Ref("project"),
		edge.From("graph_runs", GraphRun.Type).Ref("project"),
	}
}

// Indexes defines indexes for the Project entity.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner"),
		index.Fields("updated_at"),
	}
}

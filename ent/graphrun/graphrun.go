// Code generated by ent, DO NOT EDIT.

package graphrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the graphrun type in the database.
	Label = "graph_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldUsedFallback holds the string denoting the used_fallback field in the database.
	FieldUsedFallback = "used_fallback"
	// FieldDroppedEdges holds the string denoting the dropped_edges field in the database.
	FieldDroppedEdges = "dropped_edges"
	// FieldFeatureCount holds the string denoting the feature_count field in the database.
	FieldFeatureCount = "feature_count"
	// FieldEdgeCount holds the string denoting the edge_count field in the database.
	FieldEdgeCount = "edge_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// Table holds the table name of the graphrun in the database.
	Table = "graph_runs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "graph_runs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "graph_run_project"
)

// Columns holds all SQL columns for graphrun fields.
var Columns = []string{
	FieldID,
	FieldModel,
	FieldUsedFallback,
	FieldDroppedEdges,
	FieldFeatureCount,
	FieldEdgeCount,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "graph_runs"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"graph_run_project",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// DefaultUsedFallback holds the default value on creation for the "used_fallback" field.
	DefaultUsedFallback bool
	// DefaultDroppedEdges holds the default value on creation for the "dropped_edges" field.
	DefaultDroppedEdges int
	// DefaultFeatureCount holds the default value on creation for the "feature_count" field.
	DefaultFeatureCount int
	// DefaultEdgeCount holds the default value on creation for the "edge_count" field.
	DefaultEdgeCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GraphRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByUsedFallback orders the results by the used_fallback field.
func ByUsedFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedFallback, opts...).ToFunc()
}

// ByDroppedEdges orders the results by the dropped_edges field.
func ByDroppedEdges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDroppedEdges, opts...).ToFunc()
}

// ByFeatureCount orders the results by the feature_count field.
func ByFeatureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureCount, opts...).ToFunc()
}

// ByEdgeCount orders the results by the edge_count field.
func ByEdgeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdgeCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ProjectTable, ProjectColumn),
	)
}

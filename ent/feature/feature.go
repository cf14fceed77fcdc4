// Code generated by ent, DO NOT EDIT.

package feature

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the feature type in the database.
	Label = "feature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldPosX holds the string denoting the pos_x field in the database.
	FieldPosX = "pos_x"
	// FieldPosY holds the string denoting the pos_y field in the database.
	FieldPosY = "pos_y"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeOutgoing holds the string denoting the outgoing edge name in mutations.
	EdgeOutgoing = "outgoing"
	// EdgeIncoming holds the string denoting the incoming edge name in mutations.
	EdgeIncoming = "incoming"
	// EdgePrd holds the string denoting the prd edge name in mutations.
	EdgePrd = "prd"
	// Table holds the table name of the feature in the database.
	Table = "features"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "features"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "feature_project"
	// OutgoingTable is the table that holds the outgoing relation/edge.
	OutgoingTable = "dependencies"
	// OutgoingInverseTable is the table name for the Dependency entity.
	// It exists in this package in order to avoid circular dependency with the "dependency" package.
	OutgoingInverseTable = "dependencies"
	// OutgoingColumn is the table column denoting the outgoing relation/edge.
	OutgoingColumn = "dependency_source"
	// IncomingTable is the table that holds the incoming relation/edge.
	IncomingTable = "dependencies"
	// IncomingInverseTable is the table name for the Dependency entity.
	// It exists in this package in order to avoid circular dependency with the "dependency" package.
	IncomingInverseTable = "dependencies"
	// IncomingColumn is the table column denoting the incoming relation/edge.
	IncomingColumn = "dependency_target"
	// PrdTable is the table that holds the prd relation/edge.
	PrdTable = "pr_ds"
	// PrdInverseTable is the table name for the PRD entity.
	// It exists in this package in order to avoid circular dependency with the "prd" package.
	PrdInverseTable = "pr_ds"
	// PrdColumn is the table column denoting the prd relation/edge.
	PrdColumn = "prd_feature"
)

// Columns holds all SQL columns for feature fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldNotes,
	FieldPosX,
	FieldPosY,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "features"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"feature_project",
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	NotesValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Feature queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByPosX orders the results by the pos_x field.
func ByPosX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosX, opts...).ToFunc()
}

// ByPosY orders the results by the pos_y field.
func ByPosY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosY, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByOutgoingCount orders the results by outgoing count.
func ByOutgoingCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutgoingStep(), opts...)
	}
}

// ByOutgoing orders the results by outgoing terms.
func ByOutgoing(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutgoingStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIncomingCount orders the results by incoming count.
func ByIncomingCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIncomingStep(), opts...)
	}
}

// ByIncoming orders the results by incoming terms.
func ByIncoming(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIncomingStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPrdCount orders the results by prd count.
func ByPrdCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPrdStep(), opts...)
	}
}

// ByPrd orders the results by prd terms.
func ByPrd(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPrdStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ProjectTable, ProjectColumn),
	)
}
func newOutgoingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutgoingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, OutgoingTable, OutgoingColumn),
	)
}
func newIncomingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IncomingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, IncomingTable, IncomingColumn),
	)
}
func newPrdStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PrdInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, PrdTable, PrdColumn),
	)
}

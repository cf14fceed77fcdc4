// Code generated by ent, DO NOT EDIT.

package graphrun

import (
	"planforge/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLTE(FieldID, id))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldModel, v))
}

// UsedFallback applies equality check predicate on the "used_fallback" field. It's identical to UsedFallbackEQ.
func UsedFallback(v bool) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldUsedFallback, v))
}

// DroppedEdges applies equality check predicate on the "dropped_edges" field. It's identical to DroppedEdgesEQ.
func DroppedEdges(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldDroppedEdges, v))
}

// FeatureCount applies equality check predicate on the "feature_count" field. It's identical to FeatureCountEQ.
func FeatureCount(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldFeatureCount, v))
}

// EdgeCount applies equality check predicate on the "edge_count" field. It's identical to EdgeCountEQ.
func EdgeCount(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldEdgeCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldCreatedAt, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldContainsFold(FieldModel, v))
}

// UsedFallbackEQ applies the EQ predicate on the "used_fallback" field.
func UsedFallbackEQ(v bool) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldUsedFallback, v))
}

// UsedFallbackNEQ applies the NEQ predicate on the "used_fallback" field.
func UsedFallbackNEQ(v bool) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldUsedFallback, v))
}

// DroppedEdgesEQ applies the EQ predicate on the "dropped_edges" field.
func DroppedEdgesEQ(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldDroppedEdges, v))
}

// DroppedEdgesNEQ applies the NEQ predicate on the "dropped_edges" field.
func DroppedEdgesNEQ(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldDroppedEdges, v))
}

// DroppedEdgesIn applies the In predicate on the "dropped_edges" field.
func DroppedEdgesIn(vs ...int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIn(FieldDroppedEdges, vs...))
}

// DroppedEdgesNotIn applies the NotIn predicate on the "dropped_edges" field.
func DroppedEdgesNotIn(vs ...int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotIn(FieldDroppedEdges, vs...))
}

// DroppedEdgesGT applies the GT predicate on the "dropped_edges" field.
func DroppedEdgesGT(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGT(FieldDroppedEdges, v))
}

// DroppedEdgesGTE applies the GTE predicate on the "dropped_edges" field.
func DroppedEdgesGTE(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGTE(FieldDroppedEdges, v))
}

// DroppedEdgesLT applies the LT predicate on the "dropped_edges" field.
func DroppedEdgesLT(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLT(FieldDroppedEdges, v))
}

// DroppedEdgesLTE applies the LTE predicate on the "dropped_edges" field.
func DroppedEdgesLTE(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLTE(FieldDroppedEdges, v))
}

// FeatureCountEQ applies the EQ predicate on the "feature_count" field.
func FeatureCountEQ(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldFeatureCount, v))
}

// FeatureCountNEQ applies the NEQ predicate on the "feature_count" field.
func FeatureCountNEQ(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldFeatureCount, v))
}

// FeatureCountIn applies the In predicate on the "feature_count" field.
func FeatureCountIn(vs ...int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIn(FieldFeatureCount, vs...))
}

// FeatureCountNotIn applies the NotIn predicate on the "feature_count" field.
func FeatureCountNotIn(vs ...int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotIn(FieldFeatureCount, vs...))
}

// FeatureCountGT applies the GT predicate on the "feature_count" field.
func FeatureCountGT(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGT(FieldFeatureCount, v))
}

// FeatureCountGTE applies the GTE predicate on the "feature_count" field.
func FeatureCountGTE(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGTE(FieldFeatureCount, v))
}

// FeatureCountLT applies the LT predicate on the "feature_count" field.
func FeatureCountLT(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLT(FieldFeatureCount, v))
}

// FeatureCountLTE applies the LTE predicate on the "feature_count" field.
func FeatureCountLTE(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLTE(FieldFeatureCount, v))
}

// EdgeCountEQ applies the EQ predicate on the "edge_count" field.
func EdgeCountEQ(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldEdgeCount, v))
}

// EdgeCountNEQ applies the NEQ predicate on the "edge_count" field.
func EdgeCountNEQ(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldEdgeCount, v))
}

// EdgeCountIn applies the In predicate on the "edge_count" field.
func EdgeCountIn(vs ...int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIn(FieldEdgeCount, vs...))
}

// EdgeCountNotIn applies the NotIn predicate on the "edge_count" field.
func EdgeCountNotIn(vs ...int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotIn(FieldEdgeCount, vs...))
}

// EdgeCountGT applies the GT predicate on the "edge_count" field.
func EdgeCountGT(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGT(FieldEdgeCount, v))
}

// EdgeCountGTE applies the GTE predicate on the "edge_count" field.
func EdgeCountGTE(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGTE(FieldEdgeCount, v))
}

// EdgeCountLT applies the LT predicate on the "edge_count" field.
func EdgeCountLT(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLT(FieldEdgeCount, v))
}

// EdgeCountLTE applies the LTE predicate on the "edge_count" field.
func EdgeCountLTE(v int) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLTE(FieldEdgeCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphRun {
	return predicate.GraphRun(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.GraphRun {
	return predicate.GraphRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.GraphRun {
	return predicate.GraphRun(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphRun) predicate.GraphRun {
	return predicate.GraphRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphRun) predicate.GraphRun {
	return predicate.GraphRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphRun) predicate.GraphRun {
	return predicate.GraphRun(sql.NotPredicates(p))
}

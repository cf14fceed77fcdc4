// Code generated by ent, DO NOT EDIT.

package feature

import (
	"planforge/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldTitle, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldNotes, v))
}

// PosX applies equality check predicate on the "pos_x" field. It's identical to PosXEQ.
func PosX(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldPosX, v))
}

// PosY applies equality check predicate on the "pos_y" field. It's identical to PosYEQ.
func PosY(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldPosY, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldTitle, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldNotes, v))
}

// PosXEQ applies the EQ predicate on the "pos_x" field.
func PosXEQ(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldPosX, v))
}

// PosXNEQ applies the NEQ predicate on the "pos_x" field.
func PosXNEQ(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldPosX, v))
}

// PosXIn applies the In predicate on the "pos_x" field.
func PosXIn(vs ...float64) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldPosX, vs...))
}

// PosXNotIn applies the NotIn predicate on the "pos_x" field.
func PosXNotIn(vs ...float64) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldPosX, vs...))
}

// PosXGT applies the GT predicate on the "pos_x" field.
func PosXGT(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldPosX, v))
}

// PosXGTE applies the GTE predicate on the "pos_x" field.
func PosXGTE(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldPosX, v))
}

// PosXLT applies the LT predicate on the "pos_x" field.
func PosXLT(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldPosX, v))
}

// PosXLTE applies the LTE predicate on the "pos_x" field.
func PosXLTE(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldPosX, v))
}

// PosXIsNil applies the IsNil predicate on the "pos_x" field.
func PosXIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldPosX))
}

// PosXNotNil applies the NotNil predicate on the "pos_x" field.
func PosXNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldPosX))
}

// PosYEQ applies the EQ predicate on the "pos_y" field.
func PosYEQ(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldPosY, v))
}

// PosYNEQ applies the NEQ predicate on the "pos_y" field.
func PosYNEQ(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldPosY, v))
}

// PosYIn applies the In predicate on the "pos_y" field.
func PosYIn(vs ...float64) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldPosY, vs...))
}

// PosYNotIn applies the NotIn predicate on the "pos_y" field.
func PosYNotIn(vs ...float64) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldPosY, vs...))
}

// PosYGT applies the GT predicate on the "pos_y" field.
func PosYGT(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldPosY, v))
}

// PosYGTE applies the GTE predicate on the "pos_y" field.
func PosYGTE(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldPosY, v))
}

// PosYLT applies the LT predicate on the "pos_y" field.
func PosYLT(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldPosY, v))
}

// PosYLTE applies the LTE predicate on the "pos_y" field.
func PosYLTE(v float64) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldPosY, v))
}

// PosYIsNil applies the IsNil predicate on the "pos_y" field.
func PosYIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldPosY))
}

// PosYNotNil applies the NotNil predicate on the "pos_y" field.
func PosYNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldPosY))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutgoing applies the HasEdge predicate on the "outgoing" edge.
func HasOutgoing() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, OutgoingTable, OutgoingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutgoingWith applies the HasEdge predicate on the "outgoing" edge with a given conditions (other predicates).
func HasOutgoingWith(preds ...predicate.Dependency) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newOutgoingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIncoming applies the HasEdge predicate on the "incoming" edge.
func HasIncoming() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, IncomingTable, IncomingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncomingWith applies the HasEdge predicate on the "incoming" edge with a given conditions (other predicates).
func HasIncomingWith(preds ...predicate.Dependency) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newIncomingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrd applies the HasEdge predicate on the "prd" edge.
func HasPrd() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, PrdTable, PrdColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrdWith applies the HasEdge predicate on the "prd" edge with a given conditions (other predicates).
func HasPrdWith(preds ...predicate.PRD) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newPrdStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Feature) predicate.Feature {
	return predicate.Feature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Feature) predicate.Feature {
	return predicate.Feature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Feature) predicate.Feature {
	return predicate.Feature(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package apicredential

import (
	"planforge/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.APICredential {
	return predicate.APICredential(sql.FieldLTE(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldProvider, v))
}

// EncryptedKey applies equality check predicate on the "encrypted_key" field. It's identical to EncryptedKeyEQ.
func EncryptedKey(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldEncryptedKey, v))
}

// KeyHint applies equality check predicate on the "key_hint" field. It's identical to KeyHintEQ.
func KeyHint(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldKeyHint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.APICredential {
	return predicate.APICredential(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.APICredential {
	return predicate.APICredential(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldContainsFold(FieldProvider, v))
}

// EncryptedKeyEQ applies the EQ predicate on the "encrypted_key" field.
func EncryptedKeyEQ(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldEncryptedKey, v))
}

// EncryptedKeyNEQ applies the NEQ predicate on the "encrypted_key" field.
func EncryptedKeyNEQ(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldNEQ(FieldEncryptedKey, v))
}

// EncryptedKeyIn applies the In predicate on the "encrypted_key" field.
func EncryptedKeyIn(vs ...[]byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldIn(FieldEncryptedKey, vs...))
}

// EncryptedKeyNotIn applies the NotIn predicate on the "encrypted_key" field.
func EncryptedKeyNotIn(vs ...[]byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldNotIn(FieldEncryptedKey, vs...))
}

// EncryptedKeyGT applies the GT predicate on the "encrypted_key" field.
func EncryptedKeyGT(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldGT(FieldEncryptedKey, v))
}

// EncryptedKeyGTE applies the GTE predicate on the "encrypted_key" field.
func EncryptedKeyGTE(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldGTE(FieldEncryptedKey, v))
}

// EncryptedKeyLT applies the LT predicate on the "encrypted_key" field.
func EncryptedKeyLT(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldLT(FieldEncryptedKey, v))
}

// EncryptedKeyLTE applies the LTE predicate on the "encrypted_key" field.
func EncryptedKeyLTE(v []byte) predicate.APICredential {
	return predicate.APICredential(sql.FieldLTE(FieldEncryptedKey, v))
}

// KeyHintEQ applies the EQ predicate on the "key_hint" field.
func KeyHintEQ(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldKeyHint, v))
}

// KeyHintNEQ applies the NEQ predicate on the "key_hint" field.
func KeyHintNEQ(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldNEQ(FieldKeyHint, v))
}

// KeyHintIn applies the In predicate on the "key_hint" field.
func KeyHintIn(vs ...string) predicate.APICredential {
	return predicate.APICredential(sql.FieldIn(FieldKeyHint, vs...))
}

// KeyHintNotIn applies the NotIn predicate on the "key_hint" field.
func KeyHintNotIn(vs ...string) predicate.APICredential {
	return predicate.APICredential(sql.FieldNotIn(FieldKeyHint, vs...))
}

// KeyHintGT applies the GT predicate on the "key_hint" field.
func KeyHintGT(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldGT(FieldKeyHint, v))
}

// KeyHintGTE applies the GTE predicate on the "key_hint" field.
func KeyHintGTE(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldGTE(FieldKeyHint, v))
}

// KeyHintLT applies the LT predicate on the "key_hint" field.
func KeyHintLT(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldLT(FieldKeyHint, v))
}

// KeyHintLTE applies the LTE predicate on the "key_hint" field.
func KeyHintLTE(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldLTE(FieldKeyHint, v))
}

// KeyHintContains applies the Contains predicate on the "key_hint" field.
func KeyHintContains(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldContains(FieldKeyHint, v))
}

// KeyHintHasPrefix applies the HasPrefix predicate on the "key_hint" field.
func KeyHintHasPrefix(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldHasPrefix(FieldKeyHint, v))
}

// KeyHintHasSuffix applies the HasSuffix predicate on the "key_hint" field.
func KeyHintHasSuffix(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldHasSuffix(FieldKeyHint, v))
}

// KeyHintIsNil applies the IsNil predicate on the "key_hint" field.
func KeyHintIsNil() predicate.APICredential {
	return predicate.APICredential(sql.FieldIsNull(FieldKeyHint))
}

// KeyHintNotNil applies the NotNil predicate on the "key_hint" field.
func KeyHintNotNil() predicate.APICredential {
	return predicate.APICredential(sql.FieldNotNull(FieldKeyHint))
}

// KeyHintEqualFold applies the EqualFold predicate on the "key_hint" field.
func KeyHintEqualFold(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldEqualFold(FieldKeyHint, v))
}

// KeyHintContainsFold applies the ContainsFold predicate on the "key_hint" field.
func KeyHintContainsFold(v string) predicate.APICredential {
	return predicate.APICredential(sql.FieldContainsFold(FieldKeyHint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.APICredential {
	return predicate.APICredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.APICredential {
	return predicate.APICredential(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.APICredential {
	return predicate.APICredential(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.APICredential) predicate.APICredential {
	return predicate.APICredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.APICredential) predicate.APICredential {
	return predicate.APICredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.APICredential) predicate.APICredential {
	return predicate.APICredential(sql.NotPredicates(p))
}

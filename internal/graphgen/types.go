// Package graphgen turns a flat feature list into a rendered dependency
// graph: it prompts the completion service for a proposed graph, reconciles
// the untrusted answer against the real feature set, lays the result out
// deterministically and persists it.
package graphgen

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// FeatureInfo is the trusted snapshot of a feature the pipeline works with.
type FeatureInfo struct {
	ID    uuid.UUID
	Title string
	Notes string
}

// RawGraph is the loosely-validated shape claimed by the completion service.
// Every field is optional; arrays default to empty. It is never trusted
// beyond Normalize.
type RawGraph struct {
	Nodes []RawNode `json:"nodes"`
	Edges []RawEdge `json:"edges"`
}

// RawNode is an untrusted node proposal.
type RawNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
	Rank  *int   `json:"rank,omitempty"`
}

// RawEdge is an untrusted edge proposal. Source and target may be feature
// ids or feature titles; Normalize resolves them.
type RawEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Note   string `json:"note,omitempty"`
}

// NormalizedGraph is the reconciled, trusted-only view of a proposed graph.
// Nodes are always in 1:1 correspondence with the ground-truth feature set.
type NormalizedGraph struct {
	Nodes        []Node
	Edges        []Edge
	DroppedEdges int
	UsedFallback bool
	// Model is the identifier of the model that produced the raw graph,
	// empty when the fallback path was taken.
	Model string
}

// Node is a reconciled graph node. ID and Title always come from the
// ground-truth feature; Note and Rank are carried over from the matched raw
// node when one exists.
type Node struct {
	ID    uuid.UUID
	Title string
	Note  string
	Rank  *int
}

// Edge is a reconciled dependency edge between two known features.
type Edge struct {
	Source uuid.UUID
	Target uuid.UUID
	Note   string
}

// Node kinds in the persisted payload.
const (
	KindApp        = "app"
	KindFeatureHub = "feature-hub"
	KindFeature    = "feature"
)

// Edge kinds in the persisted payload.
const (
	KindStructural = "structural"
	KindDependency = "dependency"
)

// PayloadVersion tags the persisted graph payload shape.
const PayloadVersion = 1

// PayloadNode is a positioned, renderable node.
type PayloadNode struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Label     string  `json:"label"`
	Note      string  `json:"note,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Draggable bool    `json:"draggable"`
}

// PayloadEdge is a renderable edge.
type PayloadEdge struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// PayloadMeta records how the payload was produced.
type PayloadMeta struct {
	Version      int       `json:"version"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Model        string    `json:"model,omitempty"`
	DroppedEdges int       `json:"droppedEdges"`
	UsedFallback bool      `json:"usedFallback"`
}

// Payload is the persisted graph rendering cache stored on the project row.
// It is rebuilt wholesale on each generation; only node positions are ever
// patched in place.
type Payload struct {
	Nodes []PayloadNode `json:"nodes"`
	Edges []PayloadEdge `json:"edges"`
	Meta  PayloadMeta   `json:"meta"`
}

// Position is a node coordinate persisted onto feature rows.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AsMap converts the payload to the generic map shape stored in the
// project's JSON column.
func (p Payload) AsMap() map[string]any {
	b, _ := json.Marshal(p)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// WithoutNode returns a copy of the payload with the given node and every
// edge touching it removed.
func (p Payload) WithoutNode(id string) Payload {
	out := p
	out.Nodes = lo.Filter(p.Nodes, func(n PayloadNode, _ int) bool { return n.ID != id })
	out.Edges = lo.Filter(p.Edges, func(e PayloadEdge, _ int) bool {
		return e.Source != id && e.Target != id
	})
	return out
}

// PayloadFromMap parses a stored graph column back into a typed payload.
func PayloadFromMap(m map[string]any) (Payload, error) {
	var p Payload
	b, err := json.Marshal(m)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, err
	}
	return p, nil
}

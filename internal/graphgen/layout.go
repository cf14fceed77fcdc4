package graphgen

import (
	"time"

	"github.com/google/uuid"
)

// Layout geometry. Feature nodes form a single column right of origin,
// vertically centered on y=0; the app card and the feature hub sit fixed to
// the left. No solver, no randomness: identical inputs give identical output.
const (
	featureColumnX = 240.0
	featureSpacing = 160.0
	hubX           = 0.0
	appX           = -280.0

	hubEdgeLabelMax = 48
	depEdgeLabelMax = 56
)

// Fixed structural node ids.
const (
	appNodeID = "app"
	hubNodeID = "feature-hub"
)

// BuildLayout converts a normalized graph into the persisted payload plus a
// per-feature position map. Positions are returned separately because the
// orchestrator writes them onto feature rows as well: feature rows are the
// source of truth for position after later drag-edits, the payload is only a
// rendering cache.
func BuildLayout(projectName string, normalized NormalizedGraph, features []FeatureInfo) (Payload, map[uuid.UUID]Position) {
	n := len(normalized.Nodes)
	positions := make(map[uuid.UUID]Position, n)

	payload := Payload{
		Nodes: make([]PayloadNode, 0, n+2),
		Edges: make([]PayloadEdge, 0, n+1+len(normalized.Edges)),
		Meta: PayloadMeta{
			Version:      PayloadVersion,
			GeneratedAt:  time.Now().UTC(),
			Model:        normalized.Model,
			DroppedEdges: normalized.DroppedEdges,
			UsedFallback: normalized.UsedFallback,
		},
	}

	payload.Nodes = append(payload.Nodes,
		PayloadNode{ID: appNodeID, Kind: KindApp, Label: projectName, X: appX, Y: 0},
		PayloadNode{ID: hubNodeID, Kind: KindFeatureHub, Label: "Features", X: hubX, Y: 0},
	)
	payload.Edges = append(payload.Edges, PayloadEdge{
		ID:     "edge-app-hub",
		Kind:   KindStructural,
		Source: appNodeID,
		Target: hubNodeID,
	})

	notesByID := make(map[uuid.UUID]string, len(features))
	for _, f := range features {
		notesByID[f.ID] = f.Notes
	}

	for i, node := range normalized.Nodes {
		y := (float64(i) - float64(n-1)/2) * featureSpacing
		pos := Position{X: featureColumnX, Y: y}
		positions[node.ID] = pos

		payload.Nodes = append(payload.Nodes, PayloadNode{
			ID:        node.ID.String(),
			Kind:      KindFeature,
			Label:     node.Title,
			Note:      node.Note,
			X:         pos.X,
			Y:         pos.Y,
			Draggable: true,
		})
		payload.Edges = append(payload.Edges, PayloadEdge{
			ID:     "edge-hub-" + node.ID.String(),
			Kind:   KindStructural,
			Source: hubNodeID,
			Target: node.ID.String(),
			Label:  truncateLabel(notesByID[node.ID], hubEdgeLabelMax),
		})
	}

	for _, e := range normalized.Edges {
		payload.Edges = append(payload.Edges, PayloadEdge{
			ID:     "edge-dep-" + e.Source.String() + "-" + e.Target.String(),
			Kind:   KindDependency,
			Source: e.Source.String(),
			Target: e.Target.String(),
			Label:  truncateLabel(e.Note, depEdgeLabelMax),
		})
	}

	return payload, positions
}

// truncateLabel shortens s to at most max runes. The ellipsis is appended
// only when it fits inside the limit, so the result never exceeds max.
func truncateLabel(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

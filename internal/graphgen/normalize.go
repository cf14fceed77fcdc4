package graphgen

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyFeatureSet is returned when normalization or generation is invoked
// with no features. Callers must not reach the pipeline with an empty set.
var ErrEmptyFeatureSet = errors.New("graphgen: feature set is empty")

// Normalize reconciles an untrusted raw graph against the ground-truth
// feature set. The output node set is always exactly one node per feature:
// raw nodes are matched by exact id, then by case-insensitive title, and
// unmatched features are filled in with their own title. Hallucinated raw
// nodes are dropped. Raw edges resolve each endpoint independently by exact
// id or case-insensitive title; edges with an unresolvable endpoint or with
// source == target are dropped and counted.
//
// Malformed content never produces an error. The only error condition is an
// empty feature set.
func Normalize(raw RawGraph, features []FeatureInfo, fallback bool, model string) (NormalizedGraph, error) {
	if len(features) == 0 {
		return NormalizedGraph{}, ErrEmptyFeatureSet
	}

	byID := make(map[string]int, len(features))
	byTitle := make(map[string]int, len(features))
	for i, f := range features {
		byID[f.ID.String()] = i
		key := strings.ToLower(f.Title)
		if _, exists := byTitle[key]; !exists {
			byTitle[key] = i
		}
	}

	rawByID := make(map[string]RawNode, len(raw.Nodes))
	rawByLabel := make(map[string]RawNode, len(raw.Nodes))
	for _, n := range raw.Nodes {
		if n.ID != "" {
			if _, exists := rawByID[n.ID]; !exists {
				rawByID[n.ID] = n
			}
		}
		key := strings.ToLower(n.Label)
		if key != "" {
			if _, exists := rawByLabel[key]; !exists {
				rawByLabel[key] = n
			}
		}
	}

	out := NormalizedGraph{
		Nodes:        make([]Node, 0, len(features)),
		Edges:        []Edge{},
		UsedFallback: fallback,
	}
	if !fallback {
		out.Model = model
	}

	for _, f := range features {
		node := Node{ID: f.ID, Title: f.Title}
		match, ok := rawByID[f.ID.String()]
		if !ok {
			match, ok = rawByLabel[strings.ToLower(f.Title)]
		}
		if ok {
			node.Note = match.Note
			node.Rank = match.Rank
		}
		out.Nodes = append(out.Nodes, node)
	}

	for _, e := range raw.Edges {
		src, okSrc := resolveEndpoint(e.Source, byID, byTitle, features)
		dst, okDst := resolveEndpoint(e.Target, byID, byTitle, features)
		if !okSrc || !okDst || src == dst {
			out.DroppedEdges++
			continue
		}
		out.Edges = append(out.Edges, Edge{Source: src, Target: dst, Note: e.Note})
	}

	return out, nil
}

// resolveEndpoint maps a raw edge endpoint to a known feature id: exact id
// first, then case-insensitive title. No fuzzy matching beyond that.
func resolveEndpoint(s string, byID, byTitle map[string]int, features []FeatureInfo) (uuid.UUID, bool) {
	if s == "" {
		return uuid.Nil, false
	}
	if i, ok := byID[s]; ok {
		return features[i].ID, true
	}
	if i, ok := byTitle[strings.ToLower(s)]; ok {
		return features[i].ID, true
	}
	return uuid.Nil, false
}

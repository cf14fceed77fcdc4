package graphgen

import (
	"testing"

	"github.com/google/uuid"
)

func fixedFeatures(titles ...string) []FeatureInfo {
	out := make([]FeatureInfo, 0, len(titles))
	for i, t := range titles {
		id := uuid.MustParse(
			// deterministic ids keep assertions readable
			"00000000-0000-0000-0000-00000000000" + string(rune('1'+i)))
		out = append(out, FeatureInfo{ID: id, Title: t})
	}
	return out
}

func TestNormalize_EmptyFeatures(t *testing.T) {
	if _, err := Normalize(RawGraph{}, nil, false, "m"); err != ErrEmptyFeatureSet {
		t.Fatalf("want ErrEmptyFeatureSet, got %v", err)
	}
}

func TestNormalize_OneNodePerFeature(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard", "Billing")

	cases := map[string]RawGraph{
		"empty response":  {},
		"empty arrays":    {Nodes: []RawNode{}, Edges: []RawEdge{}},
		"extra unknowns":  {Nodes: []RawNode{{ID: "ghost", Label: "Ghost"}, {ID: features[0].ID.String(), Label: "Login"}}},
		"missing several": {Nodes: []RawNode{{ID: features[1].ID.String(), Label: "Dashboard"}}},
	}

	for name, raw := range cases {
		got, err := Normalize(raw, features, false, "m")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got.Nodes) != len(features) {
			t.Fatalf("%s: want %d nodes, got %d", name, len(features), len(got.Nodes))
		}
		for i, node := range got.Nodes {
			if node.ID != features[i].ID || node.Title != features[i].Title {
				t.Fatalf("%s: node %d = %+v, want feature %+v", name, i, node, features[i])
			}
		}
	}
}

func TestNormalize_FallbackEquivalence(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard")

	a, err := Normalize(RawGraph{}, features, true, "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Normalize(RawGraph{Nodes: []RawNode{}, Edges: []RawEdge{}}, features, true, "")
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Nodes) != len(b.Nodes) || len(a.Nodes) != 2 {
		t.Fatalf("node counts differ: %d vs %d", len(a.Nodes), len(b.Nodes))
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			t.Fatalf("node %d differs: %+v vs %+v", i, a.Nodes[i], b.Nodes[i])
		}
		if a.Nodes[i].Title != features[i].Title {
			t.Fatalf("node %d title %q, want feature title %q", i, a.Nodes[i].Title, features[i].Title)
		}
	}
	if len(a.Edges) != 0 || len(b.Edges) != 0 {
		t.Fatal("fallback graphs must have zero edges")
	}
	if !a.UsedFallback || a.Model != "" {
		t.Fatalf("fallback flags wrong: %+v", a)
	}
}

func TestNormalize_AcceptsKnownEdge(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard")
	raw := RawGraph{Edges: []RawEdge{{Source: features[0].ID.String(), Target: features[1].ID.String()}}}

	got, err := Normalize(raw, features, false, "m")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Edges) != 1 || got.DroppedEdges != 0 {
		t.Fatalf("edges=%d dropped=%d", len(got.Edges), got.DroppedEdges)
	}
	if got.Edges[0].Source != features[0].ID || got.Edges[0].Target != features[1].ID {
		t.Fatalf("edge endpoints %+v", got.Edges[0])
	}
}

func TestNormalize_DropsSelfLoopsAndUnknowns(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard")
	a := features[0].ID.String()
	raw := RawGraph{Edges: []RawEdge{
		{Source: a, Target: a},
		{Source: "x", Target: features[1].ID.String()},
	}}

	got, err := Normalize(raw, features, false, "m")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Edges) != 0 {
		t.Fatalf("want no edges, got %d", len(got.Edges))
	}
	if got.DroppedEdges != 2 {
		t.Fatalf("want droppedEdges=2, got %d", got.DroppedEdges)
	}
}

func TestNormalize_EdgeSafety(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard", "Billing")
	known := map[uuid.UUID]bool{}
	for _, f := range features {
		known[f.ID] = true
	}
	raw := RawGraph{Edges: []RawEdge{
		{Source: "Login", Target: "login"},       // resolves to same feature: self loop
		{Source: "Login", Target: "Dashboard"},   // title-resolved, valid
		{Source: "Billing", Target: "Unheard"},   // unknown target
		{Source: "", Target: "Dashboard"},        // empty source
		{Source: "dashBOARD", Target: "Billing"}, // case-insensitive titles
	}}

	got, err := Normalize(raw, features, false, "m")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range got.Edges {
		if e.Source == e.Target {
			t.Fatalf("self loop in output: %+v", e)
		}
		if !known[e.Source] || !known[e.Target] {
			t.Fatalf("edge references unknown feature: %+v", e)
		}
	}
	if len(got.Edges) != 2 || got.DroppedEdges != 3 {
		t.Fatalf("edges=%d dropped=%d", len(got.Edges), got.DroppedEdges)
	}
}

func TestNormalize_TitleFallbackMatchCarriesNote(t *testing.T) {
	f := FeatureInfo{ID: uuid.New(), Title: "Checkout"}
	raw := RawGraph{Nodes: []RawNode{{ID: "unknown-id", Label: "Checkout", Note: "payments"}}}

	got, err := Normalize(raw, []FeatureInfo{f}, false, "m")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Nodes) != 1 {
		t.Fatalf("want 1 node, got %d", len(got.Nodes))
	}
	node := got.Nodes[0]
	if node.ID != f.ID || node.Title != "Checkout" || node.Note != "payments" {
		t.Fatalf("node = %+v", node)
	}
}

func TestNormalize_IDMatchWinsOverTitle(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard")
	raw := RawGraph{Nodes: []RawNode{
		{ID: "nope", Label: "Login", Note: "by-title"},
		{ID: features[1].ID.String(), Label: "Login", Note: "by-id"},
	}}

	got, err := Normalize(raw, features, false, "m")
	if err != nil {
		t.Fatal(err)
	}
	if got.Nodes[1].Note != "by-id" {
		t.Fatalf("id match should win: %+v", got.Nodes[1])
	}
	if got.Nodes[0].Note != "by-title" {
		t.Fatalf("title fallback expected for first feature: %+v", got.Nodes[0])
	}
}

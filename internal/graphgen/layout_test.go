package graphgen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBuildLayout_Deterministic(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard", "Billing")
	normalized, err := Normalize(RawGraph{Edges: []RawEdge{
		{Source: "Login", Target: "Dashboard", Note: "auth gates the dashboard"},
	}}, features, false, "m")
	if err != nil {
		t.Fatal(err)
	}

	p1, pos1 := BuildLayout("Shop", normalized, features)
	p2, pos2 := BuildLayout("Shop", normalized, features)

	// Meta.GeneratedAt differs between calls; positions and structure must not.
	p1.Meta.GeneratedAt = p2.Meta.GeneratedAt
	b1, _ := json.Marshal(p1)
	b2, _ := json.Marshal(p2)
	if string(b1) != string(b2) {
		t.Fatalf("layout not deterministic:\n%s\n%s", b1, b2)
	}
	for id, p := range pos1 {
		if pos2[id] != p {
			t.Fatalf("position for %s differs: %+v vs %+v", id, p, pos2[id])
		}
	}
}

func TestBuildLayout_Structure(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard", "Billing")
	normalized, _ := Normalize(RawGraph{Edges: []RawEdge{
		{Source: "Login", Target: "Billing"},
	}}, features, false, "m")

	payload, positions := BuildLayout("Shop", normalized, features)

	var apps, hubs, featureNodes int
	for _, n := range payload.Nodes {
		switch n.Kind {
		case KindApp:
			apps++
			if n.Draggable {
				t.Fatal("app node must not be draggable")
			}
			if n.Label != "Shop" {
				t.Fatalf("app label %q", n.Label)
			}
		case KindFeatureHub:
			hubs++
			if n.Draggable {
				t.Fatal("hub node must not be draggable")
			}
		case KindFeature:
			featureNodes++
			if n.X != featureColumnX {
				t.Fatalf("feature node x=%v, want %v", n.X, featureColumnX)
			}
		}
	}
	if apps != 1 || hubs != 1 || featureNodes != len(features) {
		t.Fatalf("apps=%d hubs=%d features=%d", apps, hubs, featureNodes)
	}

	var structural, dependency int
	for _, e := range payload.Edges {
		switch e.Kind {
		case KindStructural:
			structural++
		case KindDependency:
			dependency++
		}
	}
	// app->hub plus hub->feature per feature
	if structural != 1+len(features) {
		t.Fatalf("structural=%d", structural)
	}
	if dependency != 1 {
		t.Fatalf("dependency=%d", dependency)
	}

	// column is vertically centered on y=0 with fixed spacing
	ys := make([]float64, 0, len(features))
	for _, f := range features {
		ys = append(ys, positions[f.ID].Y)
	}
	if ys[0] != -featureSpacing || ys[1] != 0 || ys[2] != featureSpacing {
		t.Fatalf("ys=%v", ys)
	}
}

func TestBuildLayout_HubEdgeLabelFromFeatureNotes(t *testing.T) {
	f := FeatureInfo{ID: uuid.New(), Title: "Checkout", Notes: "handles payment capture"}
	normalized, _ := Normalize(RawGraph{}, []FeatureInfo{f}, true, "")

	payload, _ := BuildLayout("Shop", normalized, []FeatureInfo{f})
	var hubEdge *PayloadEdge
	for i := range payload.Edges {
		if payload.Edges[i].Kind == KindStructural && payload.Edges[i].Target == f.ID.String() {
			hubEdge = &payload.Edges[i]
		}
	}
	if hubEdge == nil {
		t.Fatal("missing hub edge")
	}
	if hubEdge.Label != "handles payment capture" {
		t.Fatalf("label %q", hubEdge.Label)
	}
}

func TestTruncateLabel(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long label that overflows", 10, "a very ..."},
		{"abcdef", 3, "abc"},
		{"abcdef", 2, "ab"},
		{"", 10, ""},
	}
	for _, c := range cases {
		got := truncateLabel(c.in, c.max)
		if got != c.want {
			t.Errorf("truncateLabel(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
		if len([]rune(got)) > c.max {
			t.Errorf("truncateLabel(%q, %d) exceeds limit: %q", c.in, c.max, got)
		}
	}
}

func TestPayload_MapRoundTrip(t *testing.T) {
	features := fixedFeatures("Login", "Dashboard")
	normalized, _ := Normalize(RawGraph{}, features, true, "")
	payload, _ := BuildLayout("Shop", normalized, features)

	back, err := PayloadFromMap(payload.AsMap())
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Nodes) != len(payload.Nodes) || len(back.Edges) != len(payload.Edges) {
		t.Fatalf("round trip lost elements: %d/%d nodes, %d/%d edges",
			len(back.Nodes), len(payload.Nodes), len(back.Edges), len(payload.Edges))
	}
	if back.Meta.UsedFallback != true || back.Meta.Version != PayloadVersion {
		t.Fatalf("meta lost: %+v", back.Meta)
	}
	if !strings.Contains(back.Nodes[2].Label, "Login") {
		t.Fatalf("unexpected node order/labels: %+v", back.Nodes)
	}
}

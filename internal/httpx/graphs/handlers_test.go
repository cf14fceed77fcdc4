package graphs

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"planforge/ent"
	"planforge/internal/config"
	"planforge/internal/graphgen"
	testutil "planforge/internal/httpx/kit/testutil"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func seedProject(t *testing.T, client *ent.Client, titles ...string) (*ent.User, *ent.Project, []*ent.Feature) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetEmail("owner@example.com").SetDisplayName("Owner").SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	p, err := client.Project.Create().SetName("Shop").SetOwnerID(u.ID).Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	feats := make([]*ent.Feature, 0, len(titles))
	for _, title := range titles {
		f, err := client.Feature.Create().SetTitle(title).SetProjectID(p.ID).Save(ctx)
		if err != nil {
			t.Fatal(err)
		}
		feats = append(feats, f)
	}
	return u, p, feats
}

func newTestApp(t *testing.T, client *ent.Client, uid uuid.UUID) *fiber.App {
	t.Helper()
	orch := graphgen.NewOrchestrator(client, config.NewStore(&config.Config{}), nil, nil)
	return testutil.NewApp(
		testutil.AsUser(uid),
		func(app *fiber.App) {
			app.Post("/projects/:id/graph/generate", GenerateGraphHandler(client, orch))
			app.Get("/projects/:id/graph", GetGraphHandler(client))
			app.Patch("/projects/:id/graph/positions", PatchPositionsHandler(client))
			app.Get("/projects/:id/edges", ListEdgesHandler(client))
		},
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestGenerateGraph_EmptyProjectRejected(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, p, _ := seedProject(t, client)
	app := newTestApp(t, client, u.ID)

	res := doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/graph/generate", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 for empty feature set", res.StatusCode)
	}
}

func TestGenerateThenGetGraph(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, p, _ := seedProject(t, client, "Login", "Dashboard")
	app := newTestApp(t, client, u.ID)

	// no graph yet
	if res := doJSON(t, app, http.MethodGet, "/projects/"+p.ID.String()+"/graph", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("pre-generate get status=%d, want 404", res.StatusCode)
	}

	res := doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/graph/generate", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("generate status=%d", res.StatusCode)
	}
	var gen struct {
		Data struct {
			Summary struct {
				FeatureCount int  `json:"feature_count"`
				UsedFallback bool `json:"used_fallback"`
			} `json:"summary"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&gen); err != nil {
		t.Fatal(err)
	}
	if gen.Data.Summary.FeatureCount != 2 || !gen.Data.Summary.UsedFallback {
		t.Fatalf("summary = %+v", gen.Data.Summary)
	}

	res = doJSON(t, app, http.MethodGet, "/projects/"+p.ID.String()+"/graph", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res.StatusCode)
	}
	var got struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	payload, err := graphgen.PayloadFromMap(got.Data)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Nodes) != 4 {
		t.Fatalf("nodes = %d, want app+hub+2 features", len(payload.Nodes))
	}
}

func TestPatchPositions(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login", "Dashboard")
	app := newTestApp(t, client, u.ID)

	doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/graph/generate", nil)

	res := doJSON(t, app, http.MethodPatch, "/projects/"+p.ID.String()+"/graph/positions", PatchPositionsRequest{
		Positions: []NodePosition{{ID: feats[0].ID, X: 500, Y: -75}},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("patch status=%d", res.StatusCode)
	}

	f, err := client.Feature.Get(ctx, feats[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if f.PosX == nil || *f.PosX != 500 || f.PosY == nil || *f.PosY != -75 {
		t.Fatalf("row position = %v,%v", f.PosX, f.PosY)
	}

	p2, err := client.Project.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	payload, err := graphgen.PayloadFromMap(p2.Graph)
	if err != nil {
		t.Fatal(err)
	}
	edgeCountBefore := len(payload.Edges)
	moved := false
	for _, n := range payload.Nodes {
		if n.ID == feats[0].ID.String() {
			if n.X == 500 && n.Y == -75 {
				moved = true
			}
		}
	}
	if !moved {
		t.Fatal("payload node not moved")
	}
	if edgeCountBefore != len(payload.Edges) {
		t.Fatal("drag-edit must not touch edges")
	}

	// unknown feature id rejected
	res = doJSON(t, app, http.MethodPatch, "/projects/"+p.ID.String()+"/graph/positions", PatchPositionsRequest{
		Positions: []NodePosition{{ID: uuid.New(), X: 1, Y: 1}},
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown id patch status=%d, want 400", res.StatusCode)
	}
}

func TestListEdges(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login", "Dashboard")
	app := newTestApp(t, client, u.ID)

	if _, err := client.Dependency.Create().
		SetProjectID(p.ID).SetSourceID(feats[0].ID).SetTargetID(feats[1].ID).SetNote("needs session").
		Save(ctx); err != nil {
		t.Fatal(err)
	}

	res := doJSON(t, app, http.MethodGet, "/projects/"+p.ID.String()+"/edges", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data []struct {
			Source uuid.UUID `json:"source"`
			Target uuid.UUID `json:"target"`
			Note   string    `json:"note"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 1 || body.Data[0].Source != feats[0].ID || body.Data[0].Target != feats[1].ID || body.Data[0].Note != "needs session" {
		t.Fatalf("edges = %+v", body.Data)
	}
}

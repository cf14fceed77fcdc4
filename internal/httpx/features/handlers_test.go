package features

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
	"planforge/ent/feature"
	"planforge/ent/project"
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

func newTestStore() *config.Store {
	cfg := &config.Config{}
	cfg.LLM.Model = "test-model"
	return config.NewStore(cfg)
}

func seedProject(t *testing.T, client *ent.Client) (*ent.User, *ent.Project) {
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
	return u, p
}

func newTestApp(t *testing.T, client *ent.Client, orch *graphgen.Orchestrator, uid uuid.UUID) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		testutil.AsUser(uid),
		func(app *fiber.App) {
			app.Get("/projects/:id/features", ListFeaturesHandler(client))
			app.Post("/projects/:id/features", CreateFeatureHandler(client, orch))
			app.Post("/projects/:id/features/suggest", SuggestFeaturesHandler(client, orch))
			app.Put("/features/:id", UpdateFeatureHandler(client, orch))
			app.Delete("/features/:id", DeleteFeatureHandler(client))
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

func TestCreateFeature_RegeneratesGraph(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p := seedProject(t, client)
	orch := graphgen.NewOrchestrator(client, newTestStore(), nil, nil)
	app := newTestApp(t, client, orch, u.ID)

	res := doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/features", CreateFeatureRequest{Title: "Login", Notes: "oauth"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}

	// fallback graph persisted and the position written back onto the row
	p2, err := client.Project.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if p2.Graph == nil {
		t.Fatal("graph not generated on feature create")
	}
	f, err := client.Feature.Query().Where(feature.HasProjectWith(project.IDEQ(p.ID))).Only(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if f.PosX == nil || f.PosY == nil {
		t.Fatal("feature position not persisted")
	}
}

func TestUpdateFeature_PositionOnlySkipsRegeneration(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p := seedProject(t, client)
	orch := graphgen.NewOrchestrator(client, newTestStore(), nil, nil)
	app := newTestApp(t, client, orch, u.ID)

	f, err := client.Feature.Create().SetTitle("Login").SetProjectID(p.ID).Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	x, y := 10.0, -20.0
	res := doJSON(t, app, http.MethodPut, "/features/"+f.ID.String(), UpdateFeatureRequest{PosX: &x, PosY: &y})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d", res.StatusCode)
	}

	f2, err := client.Feature.Get(ctx, f.ID)
	if err != nil {
		t.Fatal(err)
	}
	if f2.PosX == nil || *f2.PosX != 10.0 || f2.PosY == nil || *f2.PosY != -20.0 {
		t.Fatalf("position = %v,%v", f2.PosX, f2.PosY)
	}
	if n, _ := client.GraphRun.Query().Count(ctx); n != 0 {
		t.Fatalf("reposition must not regenerate, runs=%d", n)
	}
}

func TestDeleteFeature_PrunesGraphAndChildren(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p := seedProject(t, client)
	orch := graphgen.NewOrchestrator(client, newTestStore(), nil, nil)
	app := newTestApp(t, client, orch, u.ID)

	// two features plus a generated fallback graph
	doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/features", CreateFeatureRequest{Title: "Login"})
	doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/features", CreateFeatureRequest{Title: "Dashboard"})

	feats, err := client.Feature.Query().Where(feature.HasProjectWith(project.IDEQ(p.ID))).All(ctx)
	if err != nil || len(feats) != 2 {
		t.Fatalf("feats=%d err=%v", len(feats), err)
	}
	victim := feats[0]
	if _, err := client.Dependency.Create().SetProjectID(p.ID).SetSourceID(feats[0].ID).SetTargetID(feats[1].ID).Save(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := client.PRD.Create().SetFeatureID(victim.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}

	res := doJSON(t, app, http.MethodDelete, "/features/"+victim.ID.String(), nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status=%d", res.StatusCode)
	}

	if n, _ := client.Dependency.Query().Count(ctx); n != 0 {
		t.Fatalf("edges left: %d", n)
	}
	if n, _ := client.PRD.Query().Count(ctx); n != 0 {
		t.Fatalf("prds left: %d", n)
	}

	p2, err := client.Project.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	payload, err := graphgen.PayloadFromMap(p2.Graph)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range payload.Nodes {
		if n.ID == victim.ID.String() {
			t.Fatal("deleted feature's node still in payload")
		}
	}
	for _, e := range payload.Edges {
		if e.Source == victim.ID.String() || e.Target == victim.ID.String() {
			t.Fatalf("edge touching deleted feature still in payload: %s", e.ID)
		}
	}
}

func TestSuggestFeatures_DegradedPathEmptyList(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, p := seedProject(t, client)
	// nil box means no usable credential, so the AI path degrades
	orch := graphgen.NewOrchestrator(client, newTestStore(), nil, nil)
	app := newTestApp(t, client, orch, u.ID)

	res := doJSON(t, app, http.MethodPost, "/projects/"+p.ID.String()+"/features/suggest", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("suggest status=%d, degraded path must not fail", res.StatusCode)
	}
	var body struct {
		Data struct {
			Features []graphgen.Suggestion `json:"features"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.Features) != 0 {
		t.Fatalf("features = %+v, want empty", body.Data.Features)
	}
}

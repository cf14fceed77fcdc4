package graphgen

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"planforge/ent"
	"planforge/ent/dependency"
	"planforge/ent/graphrun"
	"planforge/ent/project"
	"planforge/internal/config"
	"planforge/internal/cryptox"
	"planforge/internal/llm"
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
		SetEmail("o@example.com").SetDisplayName("Owner").SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := client.Project.Create().SetName("Shop").SetDescription("web shop").SetOwnerID(u.ID).Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	feats := make([]*ent.Feature, 0, len(titles))
	for _, title := range titles {
		f, err := client.Feature.Create().SetTitle(title).SetProjectID(p.ID).Save(ctx)
		if err != nil {
			t.Fatalf("create feature: %v", err)
		}
		feats = append(feats, f)
	}
	return u, p, feats
}

func testStore() *config.Store {
	cfg := &config.Config{}
	cfg.LLM.Model = "test-model"
	return config.NewStore(cfg)
}

func TestOrchestrator_EmptyFeatureSet(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, p, _ := seedProject(t, client)

	o := NewOrchestrator(client, testStore(), nil, nil)
	if _, _, err := o.GenerateAndPersist(context.Background(), p, nil, u.ID); err != ErrEmptyFeatureSet {
		t.Fatalf("want ErrEmptyFeatureSet, got %v", err)
	}
}

func TestOrchestrator_FallbackWithoutCredential(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login", "Dashboard")

	o := NewOrchestrator(client, testStore(), nil, nil)
	payload, normalized, err := o.GenerateAndPersist(ctx, p, feats, u.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !normalized.UsedFallback || normalized.Model != "" {
		t.Fatalf("want fallback, got %+v", normalized)
	}
	if !payload.Meta.UsedFallback {
		t.Fatalf("payload meta: %+v", payload.Meta)
	}

	// persisted payload on the project row
	got, err := client.Project.Query().Where(project.IDEQ(p.ID)).Only(ctx)
	if err != nil {
		t.Fatal(err)
	}
	stored, err := PayloadFromMap(got.Graph)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Nodes) != len(feats)+2 {
		t.Fatalf("stored nodes=%d", len(stored.Nodes))
	}

	// positions written onto feature rows
	for _, f := range feats {
		ff, err := client.Feature.Get(ctx, f.ID)
		if err != nil {
			t.Fatal(err)
		}
		if ff.PosX == nil || ff.PosY == nil || *ff.PosX != featureColumnX {
			t.Fatalf("feature %s position not persisted: %+v", ff.Title, ff)
		}
	}

	// no dependency edges, audit row recorded
	if n, _ := client.Dependency.Query().Count(ctx); n != 0 {
		t.Fatalf("edges=%d", n)
	}
	run, err := client.GraphRun.Query().Where(graphrun.HasProjectWith(project.IDEQ(p.ID))).Only(ctx)
	if err != nil {
		t.Fatalf("graph run: %v", err)
	}
	if !run.UsedFallback || run.FeatureCount != 2 || run.EdgeCount != 0 {
		t.Fatalf("run = %+v", run)
	}
}

func TestOrchestrator_AIPathPersistsEdges(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login", "Dashboard")

	box, err := cryptox.NewBox(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatal(err)
	}
	sealed, _ := box.Seal("sk-user-key")
	if _, err := client.APICredential.Create().SetOwnerID(u.ID).SetEncryptedKey(sealed).Save(ctx); err != nil {
		t.Fatalf("create credential: %v", err)
	}

	// stale edge from a previous generation must be wiped
	if _, err := client.Dependency.Create().
		SetProjectID(p.ID).SetSourceID(feats[1].ID).SetTargetID(feats[0].ID).SetNote("stale").
		Save(ctx); err != nil {
		t.Fatal(err)
	}

	var gotKey, gotPrompt string
	o := NewOrchestrator(client, testStore(), box, nil)
	o.NewCompleter = func(opts llm.Options) llm.Completer {
		gotKey = opts.APIKey
		return llm.CompleterFunc{
			Label: opts.Model,
			Fn: func(_ context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return "Here you go:\n```json\n{\"nodes\":[],\"edges\":[{\"source\":\"Login\",\"target\":\"Dashboard\",\"note\":\"auth first\"}]}\n```", nil
			},
		}
	}

	payload, normalized, err := o.GenerateAndPersist(ctx, p, feats, u.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gotKey != "sk-user-key" {
		t.Fatalf("completer key %q", gotKey)
	}
	if !strings.Contains(gotPrompt, feats[0].ID.String()) || !strings.Contains(gotPrompt, "Login") {
		t.Fatal("prompt must enumerate feature id/title pairs")
	}
	if normalized.UsedFallback || normalized.Model != "test-model" {
		t.Fatalf("normalized = %+v", normalized)
	}
	if payload.Meta.Model != "test-model" {
		t.Fatalf("payload meta = %+v", payload.Meta)
	}

	edges, err := client.Dependency.Query().Where(dependency.HasProjectWith(project.IDEQ(p.ID))).WithSource().WithTarget().All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 {
		t.Fatalf("edges=%d", len(edges))
	}
	e := edges[0]
	if e.Note != "auth first" || e.Edges.Source.ID != feats[0].ID || e.Edges.Target.ID != feats[1].ID {
		t.Fatalf("edge = %+v", e)
	}
}

func TestOrchestrator_CompletionFailureFallsBack(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login", "Dashboard")

	box, _ := cryptox.NewBox(strings.Repeat("cd", 32))
	sealed, _ := box.Seal("sk")
	if _, err := client.APICredential.Create().SetOwnerID(u.ID).SetEncryptedKey(sealed).Save(ctx); err != nil {
		t.Fatal(err)
	}

	o := NewOrchestrator(client, testStore(), box, nil)
	o.NewCompleter = func(opts llm.Options) llm.Completer {
		return llm.CompleterFunc{Label: opts.Model, Fn: func(context.Context, string) (string, error) {
			return "", context.DeadlineExceeded
		}}
	}

	_, normalized, err := o.GenerateAndPersist(ctx, p, feats, u.ID)
	if err != nil {
		t.Fatalf("generate must not fail on AI errors: %v", err)
	}
	if !normalized.UsedFallback || len(normalized.Edges) != 0 {
		t.Fatalf("normalized = %+v", normalized)
	}
}

func TestOrchestrator_GarbageResponseFallsBack(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, p, feats := seedProject(t, client, "Login")

	box, _ := cryptox.NewBox(strings.Repeat("ef", 32))
	sealed, _ := box.Seal("sk")
	if _, err := client.APICredential.Create().SetOwnerID(u.ID).SetEncryptedKey(sealed).Save(ctx); err != nil {
		t.Fatal(err)
	}

	o := NewOrchestrator(client, testStore(), box, nil)
	o.NewCompleter = func(opts llm.Options) llm.Completer {
		return llm.CompleterFunc{Label: opts.Model, Fn: func(context.Context, string) (string, error) {
			return "I could not produce a graph, sorry.", nil
		}}
	}

	_, normalized, err := o.GenerateAndPersist(ctx, p, feats, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !normalized.UsedFallback || len(normalized.Nodes) != 1 {
		t.Fatalf("normalized = %+v", normalized)
	}
}

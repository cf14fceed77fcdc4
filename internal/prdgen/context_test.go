package prdgen

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"planforge/ent"
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

type graphFixture struct {
	owner   *ent.User
	project *ent.Project
	byTitle map[string]*ent.Feature
}

// seedGraph builds: Auth -> Dashboard, Auth -> Billing, Billing -> Invoices.
func seedGraph(t *testing.T, client *ent.Client) graphFixture {
	t.Helper()
	ctx := context.Background()

	owner, err := client.User.Create().
		SetEmail("owner@example.com").SetDisplayName("Owner").SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	proj, err := client.Project.Create().
		SetName("Shop").SetDescription("an online shop").SetOwnerID(owner.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	byTitle := map[string]*ent.Feature{}
	for _, spec := range []struct{ title, notes string }{
		{"Auth", "login and sessions"},
		{"Dashboard", "home view"},
		{"Billing", "subscriptions, invoicing and dunning flows for customers"},
		{"Invoices", "pdf export"},
		{"Search", ""},
	} {
		f, err := client.Feature.Create().
			SetTitle(spec.title).SetNotes(spec.notes).SetProjectID(proj.ID).
			Save(ctx)
		if err != nil {
			t.Fatalf("create feature: %v", err)
		}
		byTitle[spec.title] = f
	}

	for _, e := range [][2]string{
		{"Auth", "Dashboard"},
		{"Auth", "Billing"},
		{"Billing", "Invoices"},
	} {
		if _, err := client.Dependency.Create().
			SetProjectID(proj.ID).
			SetSourceID(byTitle[e[0]].ID).
			SetTargetID(byTitle[e[1]].ID).
			Save(ctx); err != nil {
			t.Fatalf("create edge: %v", err)
		}
	}

	return graphFixture{owner: owner, project: proj, byTitle: byTitle}
}

func TestBuildContext_OwnershipEnforced(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	fx := seedGraph(t, client)

	stranger, err := client.User.Create().
		SetEmail("else@example.com").SetDisplayName("Else").SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := BuildContext(ctx, client, stranger.ID, fx.project.ID, fx.byTitle["Auth"].ID); err != ErrNotFound {
		t.Fatalf("want ErrNotFound for foreign project, got %v", err)
	}
	if _, err := BuildContext(ctx, client, fx.owner.ID, fx.project.ID, uuid.New()); err != ErrNotFound {
		t.Fatalf("want ErrNotFound for unknown feature, got %v", err)
	}
}

func TestBuildContext_SplitsIncomingOutgoing(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	fx := seedGraph(t, client)

	got, err := BuildContext(ctx, client, fx.owner.ID, fx.project.ID, fx.byTitle["Billing"].ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Incoming) != 1 || got.Incoming[0].Title != "Auth" {
		t.Fatalf("incoming = %+v", got.Incoming)
	}
	if len(got.Outgoing) != 1 || got.Outgoing[0].Title != "Invoices" {
		t.Fatalf("outgoing = %+v", got.Outgoing)
	}
	if len(got.Connected) != 2 {
		t.Fatalf("connected = %+v", got.Connected)
	}
	if got.Target.Title != "Billing" || got.ProjectName != "Shop" {
		t.Fatalf("context header: %+v", got)
	}
}

func TestBuildContext_NoEdges(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	fx := seedGraph(t, client)

	got, err := BuildContext(ctx, client, fx.owner.ID, fx.project.ID, fx.byTitle["Search"].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Connected) != 0 || len(got.Incoming) != 0 || len(got.Outgoing) != 0 {
		t.Fatalf("isolated feature must have empty neighborhood: %+v", got)
	}
	if got.TotalTokenEstimate <= 0 {
		t.Fatalf("estimate = %d", got.TotalTokenEstimate)
	}
}

func TestEstimateTokens_Formula(t *testing.T) {
	c := Context{
		ProjectName:        "Shop",                // 4
		ProjectDescription: "online",              // 6
		Target:             FeatureRef{Title: "Billing", Notes: "abcd"}, // 7 + 4
		Connected: []FeatureRef{
			{Title: "Auth", Notes: "123456"}, // 4 + 3 (half of 6)
		},
	}
	// chars = 4+6+7+4+4+3+1000 = 1028 -> ceil(1028/4) = 257
	if got := estimateTokens(c); got != 257 {
		t.Fatalf("estimate = %d, want 257", got)
	}
}

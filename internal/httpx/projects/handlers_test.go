package projects

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

func seedUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).SetDisplayName("Owner").SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func newTestApp(t *testing.T, client *ent.Client, uid uuid.UUID) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		testutil.AsUser(uid),
		func(app *fiber.App) {
			app.Get("/projects", ListProjectsHandler(client))
			app.Post("/projects", CreateProjectHandler(client))
			app.Get("/projects/:id", GetProjectHandler(client))
			app.Put("/projects/:id", UpdateProjectHandler(client))
			app.Delete("/projects/:id", DeleteProjectHandler(client))
		},
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestProjectCRUD(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u := seedUser(t, client, "owner@example.com")
	app := newTestApp(t, client, u.ID)

	res := doJSON(t, app, http.MethodPost, "/projects", CreateProjectRequest{Name: "Shop", Description: "store"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}
	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	res = doJSON(t, app, http.MethodGet, "/projects/"+created.Data.ID.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res.StatusCode)
	}

	res = doJSON(t, app, http.MethodPut, "/projects/"+created.Data.ID.String(), fiber.Map{"name": "Shop 2"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d", res.StatusCode)
	}
	p, err := client.Project.Get(context.Background(), created.Data.ID)
	if err != nil || p.Name != "Shop 2" {
		t.Fatalf("rename not persisted: %v %v", p, err)
	}

	res = doJSON(t, app, http.MethodGet, "/projects?with_total=true", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status=%d", res.StatusCode)
	}
	var list struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Count int  `json:"count"`
			Total *int `json:"total"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if list.Meta.Count != 1 || list.Meta.Total == nil || *list.Meta.Total != 1 {
		t.Fatalf("list meta: %+v", list.Meta)
	}
}

func TestProject_OwnershipScoped(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	owner := seedUser(t, client, "owner@example.com")
	stranger := seedUser(t, client, "else@example.com")

	p, err := client.Project.Create().SetName("Private").SetOwnerID(owner.ID).Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, client, stranger.ID)
	if res := doJSON(t, app, http.MethodGet, "/projects/"+p.ID.String(), nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign get status=%d, want 404", res.StatusCode)
	}
	if res := doJSON(t, app, http.MethodDelete, "/projects/"+p.ID.String(), nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign delete status=%d, want 404", res.StatusCode)
	}
}

func TestDeleteProject_CascadesChildren(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u := seedUser(t, client, "owner@example.com")
	p, err := client.Project.Create().SetName("Shop").SetOwnerID(u.ID).Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	f1, _ := client.Feature.Create().SetTitle("Auth").SetProjectID(p.ID).Save(ctx)
	f2, _ := client.Feature.Create().SetTitle("Billing").SetProjectID(p.ID).Save(ctx)
	if _, err := client.Dependency.Create().SetProjectID(p.ID).SetSourceID(f1.ID).SetTargetID(f2.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := client.PRD.Create().SetFeatureID(f1.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, client, u.ID)
	if res := doJSON(t, app, http.MethodDelete, "/projects/"+p.ID.String(), nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status=%d", res.StatusCode)
	}

	if n, _ := client.Feature.Query().Where(feature.HasProjectWith(project.IDEQ(p.ID))).Count(ctx); n != 0 {
		t.Fatalf("features left: %d", n)
	}
	if n, _ := client.PRD.Query().Count(ctx); n != 0 {
		t.Fatalf("prds left: %d", n)
	}
	if n, _ := client.Dependency.Query().Count(ctx); n != 0 {
		t.Fatalf("edges left: %d", n)
	}
	if _, err := client.Project.Get(ctx, p.ID); !ent.IsNotFound(err) {
		t.Fatalf("project still present: %v", err)
	}
}

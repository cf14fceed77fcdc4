package prds

import (
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
	entprd "planforge/ent/prd"
	"planforge/internal/config"
	"planforge/internal/cryptox"
	testutil "planforge/internal/httpx/kit/testutil"
	"planforge/internal/llm"
	"planforge/internal/prdgen"
)

const testBoxKey = "3f786850e387550fdab836ed7e6dc881de23001b3c7a0c91f6e14f6aa256b7e0"

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

func testStore() *config.Store {
	cfg := &config.Config{}
	cfg.LLM.Model = "test-model"
	cfg.LLM.MaxPRDTokens = prdgen.DefaultMaxTokens
	return config.NewStore(cfg)
}

func seedFeature(t *testing.T, client *ent.Client) (*ent.User, *ent.Feature) {
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
	f, err := client.Feature.Create().SetTitle("Billing").SetNotes("invoices").SetProjectID(p.ID).Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	return u, f
}

func newTestApp(t *testing.T, client *ent.Client, writer *prdgen.Writer, uid uuid.UUID) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		testutil.AsUser(uid),
		func(app *fiber.App) {
			app.Post("/features/:id/prd", GeneratePRDHandler(client, writer))
			app.Get("/features/:id/prd", GetPRDHandler(client, writer))
			app.Get("/search/prds", SearchPRDsHandler(client, nil))
		},
	)
}

func do(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

// waitStatus polls the row until the background job settles.
func waitStatus(t *testing.T, client *ent.Client, featureID uuid.UUID, want entprd.Status) *ent.PRD {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		rows, err := client.PRD.Query().All(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		for _, row := range rows {
			if row.Status == want {
				return row
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("prd for %s never reached %s", featureID, want)
	return nil
}

func TestGeneratePRD_KicksJobAndCompletes(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, f := seedFeature(t, client)

	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	sealed, err := box.Seal("sk-user-key")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.APICredential.Create().
		SetEncryptedKey(sealed).SetKeyHint("...-key").SetOwnerID(u.ID).
		Save(context.Background()); err != nil {
		t.Fatal(err)
	}

	writer := prdgen.NewWriter(client, testStore(), box, nil, nil, nil)
	writer.NewCompleter = func(opts llm.Options) llm.Completer {
		return llm.CompleterFunc{Label: opts.Model, Fn: func(ctx context.Context, prompt string) (string, error) {
			return `{"markdown":"# Billing PRD","summary":"s"}`, nil
		}}
	}
	app := newTestApp(t, client, writer, u.ID)

	res := do(t, app, http.MethodPost, "/features/"+f.ID.String()+"/prd")
	if res.StatusCode != http.StatusAccepted {
		t.Fatalf("kick status=%d, want 202", res.StatusCode)
	}

	waitStatus(t, client, f.ID, entprd.StatusReady)

	res = do(t, app, http.MethodGet, "/features/"+f.ID.String()+"/prd")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("poll status=%d", res.StatusCode)
	}
	var body struct {
		Data struct {
			Status    string `json:"status"`
			ContentMd string `json:"content_md"`
			Model     string `json:"model"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Status != string(entprd.StatusReady) {
		t.Fatalf("status = %q", body.Data.Status)
	}
	if body.Data.ContentMd != "# Billing PRD" {
		t.Fatalf("content_md = %q", body.Data.ContentMd)
	}
	if body.Data.Model != "test-model" {
		t.Fatalf("model = %q", body.Data.Model)
	}
}

func TestGeneratePRD_MissingCredentialSurfacesError(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, f := seedFeature(t, client)

	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	writer := prdgen.NewWriter(client, testStore(), box, nil, nil, nil)
	app := newTestApp(t, client, writer, u.ID)

	if res := do(t, app, http.MethodPost, "/features/"+f.ID.String()+"/prd"); res.StatusCode != http.StatusAccepted {
		t.Fatalf("kick status=%d", res.StatusCode)
	}
	waitStatus(t, client, f.ID, entprd.StatusError)

	res := do(t, app, http.MethodGet, "/features/"+f.ID.String()+"/prd")
	var body struct {
		Data struct {
			Status       string `json:"status"`
			ErrorMessage string `json:"error_message"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Status != string(entprd.StatusError) {
		t.Fatalf("status = %q", body.Data.Status)
	}
	if body.Data.ErrorMessage != "no API credential configured" {
		t.Fatalf("error_message = %q", body.Data.ErrorMessage)
	}
}

func TestGetPRD_IdleBeforeFirstRun(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, f := seedFeature(t, client)
	writer := prdgen.NewWriter(client, testStore(), nil, nil, nil, nil)
	app := newTestApp(t, client, writer, u.ID)

	res := do(t, app, http.MethodGet, "/features/"+f.ID.String()+"/prd")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Status != string(entprd.StatusIdle) {
		t.Fatalf("status = %q, want idle", body.Data.Status)
	}
}

func TestGeneratePRD_StrangerFeatureHidden(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	_, f := seedFeature(t, client)
	stranger, err := client.User.Create().
		SetEmail("other@example.com").SetDisplayName("Other").SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	writer := prdgen.NewWriter(client, testStore(), nil, nil, nil, nil)
	app := newTestApp(t, client, writer, stranger.ID)

	if res := do(t, app, http.MethodPost, "/features/"+f.ID.String()+"/prd"); res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d, want 404 for foreign feature", res.StatusCode)
	}
}

func TestSearchPRDs_NoBackendEmptyList(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u, _ := seedFeature(t, client)
	writer := prdgen.NewWriter(client, testStore(), nil, nil, nil, nil)
	app := newTestApp(t, client, writer, u.ID)

	res := do(t, app, http.MethodGet, "/search/prds?q=billing")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data []any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 0 {
		t.Fatalf("data = %+v, want empty", body.Data)
	}
}

package credentials

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"planforge/ent"
	"planforge/internal/cryptox"
	testutil "planforge/internal/httpx/kit/testutil"
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

func seedUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).SetDisplayName("U").SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func newTestApp(t *testing.T, client *ent.Client, box *cryptox.Box, uid uuid.UUID) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		testutil.AsUser(uid),
		func(app *fiber.App) {
			app.Put("/me/credential", PutCredentialHandler(client, box))
			app.Get("/me/credential", GetCredentialHandler(client))
			app.Delete("/me/credential", DeleteCredentialHandler(client))
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

func TestCredentialLifecycle(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u := seedUser(t, client, "owner@example.com")
	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, client, box, u.ID)

	res := doJSON(t, app, http.MethodPut, "/me/credential", PutCredentialRequest{APIKey: "sk-live-abcd1234"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("put status=%d", res.StatusCode)
	}
	raw, _ := io.ReadAll(res.Body)
	if strings.Contains(string(raw), "sk-live-abcd1234") {
		t.Fatal("plaintext key echoed in put response")
	}
	var put struct {
		Data struct {
			Provider string `json:"provider"`
			KeyHint  string `json:"key_hint"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &put); err != nil {
		t.Fatal(err)
	}
	if put.Data.Provider != "openai" || put.Data.KeyHint != "...1234" {
		t.Fatalf("put body = %+v", put.Data)
	}

	// stored ciphertext, round-trips through the box
	cred, err := client.APICredential.Query().First(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(cred.EncryptedKey, []byte("sk-live-abcd1234")) {
		t.Fatal("key stored in plaintext")
	}
	if opened, err := box.Open(cred.EncryptedKey); err != nil || opened != "sk-live-abcd1234" {
		t.Fatalf("open stored key: %q %v", opened, err)
	}

	res = doJSON(t, app, http.MethodGet, "/me/credential", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res.StatusCode)
	}
	raw, _ = io.ReadAll(res.Body)
	if strings.Contains(string(raw), "sk-live-abcd1234") || strings.Contains(string(raw), "encrypted_key") {
		t.Fatal("get response leaks key material")
	}
	var got struct {
		Data struct {
			KeyHint string `json:"key_hint"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Data.KeyHint != "...1234" {
		t.Fatalf("key_hint = %q", got.Data.KeyHint)
	}

	if res := doJSON(t, app, http.MethodDelete, "/me/credential", nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status=%d", res.StatusCode)
	}
	if res := doJSON(t, app, http.MethodGet, "/me/credential", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status=%d, want 404", res.StatusCode)
	}
}

func TestPutCredential_ReplacesExisting(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u := seedUser(t, client, "owner@example.com")
	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, client, box, u.ID)

	doJSON(t, app, http.MethodPut, "/me/credential", PutCredentialRequest{APIKey: "sk-old-0001"})
	doJSON(t, app, http.MethodPut, "/me/credential", PutCredentialRequest{APIKey: "sk-new-0002"})

	ctx := context.Background()
	n, err := client.APICredential.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("credential rows = %d, want upsert to keep one", n)
	}
	cred, err := client.APICredential.Query().First(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if opened, _ := box.Open(cred.EncryptedKey); opened != "sk-new-0002" {
		t.Fatalf("stored key = %q, want replacement", opened)
	}
	if cred.KeyHint != "...0002" {
		t.Fatalf("key_hint = %q", cred.KeyHint)
	}
}

func TestPutCredential_NoBoxFails(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	u := seedUser(t, client, "owner@example.com")
	app := newTestApp(t, client, nil, u.ID)

	res := doJSON(t, app, http.MethodPut, "/me/credential", PutCredentialRequest{APIKey: "sk-x"})
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500 when storage is not configured", res.StatusCode)
	}
}

func TestCredential_ScopedToOwner(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	owner := seedUser(t, client, "owner@example.com")
	other := seedUser(t, client, "other@example.com")
	box, err := cryptox.NewBox(testBoxKey)
	if err != nil {
		t.Fatal(err)
	}

	ownerApp := newTestApp(t, client, box, owner.ID)
	doJSON(t, ownerApp, http.MethodPut, "/me/credential", PutCredentialRequest{APIKey: "sk-owner-9999"})

	otherApp := newTestApp(t, client, box, other.ID)
	if res := doJSON(t, otherApp, http.MethodGet, "/me/credential", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d, other user must not see the credential", res.StatusCode)
	}
}

package auth

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
	_ "modernc.org/sqlite"

	"planforge/ent"
	"planforge/internal/config"
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
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return config.NewStore(cfg)
}

func newTestApp(t *testing.T, client *ent.Client, store *config.Store) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/auth/register", RegisterHandler(store, client)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(store, client)) },
		func(app *fiber.App) { app.Post("/auth/refresh", RefreshHandler(store)) },
	)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestRegister_IssuesTokens(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(t, client, newTestStore())

	res := postJSON(t, app, "/auth/register", RegisterRequest{
		Email: "alice@example.com", Password: "Secretp@ssw0rd", DisplayName: "Alice",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.AccessToken == "" || body.Data.TokenType != "Bearer" {
		t.Fatalf("token response: %+v", body.Data)
	}
	foundCookie := false
	for _, ck := range res.Cookies() {
		if ck.Name == "refresh_token" && ck.Value != "" && ck.HttpOnly {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatal("refresh cookie not set")
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(t, client, newTestStore())

	req := RegisterRequest{Email: "dup@example.com", Password: "Secretp@ssw0rd", DisplayName: "Dup"}
	if res := postJSON(t, app, "/auth/register", req); res.StatusCode != http.StatusCreated {
		t.Fatalf("first register status=%d", res.StatusCode)
	}
	if res := postJSON(t, app, "/auth/register", req); res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status=%d, want 409", res.StatusCode)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(t, client, newTestStore())

	postJSON(t, app, "/auth/register", RegisterRequest{
		Email: "bob@example.com", Password: "Secretp@ssw0rd", DisplayName: "Bob",
	})

	if res := postJSON(t, app, "/auth/login", LoginRequest{Email: "bob@example.com", Password: "wrong-password"}); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password status=%d, want 401", res.StatusCode)
	}
	if res := postJSON(t, app, "/auth/login", LoginRequest{Email: "bob@example.com", Password: "Secretp@ssw0rd"}); res.StatusCode != http.StatusOK {
		t.Fatalf("login status=%d, want 200", res.StatusCode)
	}
}

func TestRefresh_FromCookie(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	store := newTestStore()
	app := newTestApp(t, client, store)

	res := postJSON(t, app, "/auth/register", RegisterRequest{
		Email: "carol@example.com", Password: "Secretp@ssw0rd", DisplayName: "Carol",
	})
	var refresh string
	for _, ck := range res.Cookies() {
		if ck.Name == "refresh_token" {
			refresh = ck.Value
		}
	}
	if refresh == "" {
		t.Fatal("no refresh cookie")
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	res2, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("refresh status=%d", res2.StatusCode)
	}

	// tampered cookie is rejected
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh + "x"})
	res3, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res3.StatusCode != http.StatusUnauthorized {
		t.Fatalf("tampered refresh status=%d, want 401", res3.StatusCode)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	h, err := HashPassword("s3cret-value")
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyPassword("s3cret-value", h) {
		t.Fatal("verify failed for correct password")
	}
	if VerifyPassword("other", h) {
		t.Fatal("verify passed for wrong password")
	}
}

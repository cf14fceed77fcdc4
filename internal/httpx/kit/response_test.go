package kit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(requestid.New())
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return res, body
}

func TestEnvelope(t *testing.T) {
	app := testApp()
	app.Get("/ok", func(c *fiber.Ctx) error { return OK(c, fiber.Map{"x": 1}) })
	app.Get("/created", func(c *fiber.Ctx) error { return Created(c, nil) })
	app.Get("/accepted", func(c *fiber.Ctx) error { return Accepted(c, fiber.Map{"status": "generating"}) })

	res, body := get(t, app, "/ok")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if body["code"] != "OK" || body["message"] != "success" {
		t.Fatalf("envelope = %+v", body)
	}
	if body["request_id"] == "" {
		t.Fatal("request_id missing")
	}
	data, _ := body["data"].(map[string]any)
	if data["x"] != float64(1) {
		t.Fatalf("data = %+v", data)
	}

	if res, _ := get(t, app, "/created"); res.StatusCode != http.StatusCreated {
		t.Fatalf("created status=%d", res.StatusCode)
	}
	res, body = get(t, app, "/accepted")
	if res.StatusCode != http.StatusAccepted || body["message"] != "accepted" {
		t.Fatalf("accepted status=%d body=%+v", res.StatusCode, body)
	}
}

func TestErrorHandler(t *testing.T) {
	app := testApp()
	app.Get("/bad", func(c *fiber.Ctx) error { return BadRequest("name required", nil) })
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("project not found") })
	app.Get("/dup", func(c *fiber.Ctx) error { return Conflict("email already registered", nil) })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.ErrUnauthorized })
	app.Get("/boom", func(c *fiber.Ctx) error { return errBoom })

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/bad", http.StatusBadRequest, "E_INVALID_PARAM"},
		{"/missing", http.StatusNotFound, "E_NOT_FOUND"},
		{"/dup", http.StatusConflict, "E_CONFLICT"},
		{"/fiber", http.StatusUnauthorized, "E_UNAUTHORIZED"},
		{"/boom", http.StatusInternalServerError, "E_INTERNAL"},
	}
	for _, tc := range cases {
		res, body := get(t, app, tc.path)
		if res.StatusCode != tc.status {
			t.Fatalf("%s status=%d, want %d", tc.path, res.StatusCode, tc.status)
		}
		if body["code"] != tc.code {
			t.Fatalf("%s code=%v, want %s", tc.path, body["code"], tc.code)
		}
	}
}

var errBoom = errors.New("boom")

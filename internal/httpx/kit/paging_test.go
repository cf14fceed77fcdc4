package kit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func parsePagingFor(t *testing.T, query string) PagingParams {
	t.Helper()
	app := fiber.New()
	var got PagingParams
	app.Get("/x", func(c *fiber.Ctx) error {
		got, _ = ParsePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/x?"+query, nil), -1); err != nil {
		t.Fatal(err)
	}
	return got
}

func TestParsePaging(t *testing.T) {
	p := parsePagingFor(t, "")
	if p.Limit != 20 || p.Offset != 0 || p.WithTotal {
		t.Fatalf("defaults = %+v", p)
	}

	p = parsePagingFor(t, "limit=500&offset=-3&sort=name:desc&with_total=true")
	if p.Limit != 100 {
		t.Fatalf("limit = %d, want clamp to 100", p.Limit)
	}
	if p.Offset != 0 {
		t.Fatalf("offset = %d, want negative floored to 0", p.Offset)
	}
	if p.Sort != "name:desc" || !p.WithTotal {
		t.Fatalf("params = %+v", p)
	}

	if p = parsePagingFor(t, "limit=0"); p.Limit != 1 {
		t.Fatalf("limit = %d, want clamp to 1", p.Limit)
	}
}

func TestOffsetMeta(t *testing.T) {
	p := PagingParams{Limit: 10, Offset: 20}
	m := OffsetMeta(p, 10, lo.ToPtr(55))
	if m.Count != 10 || !m.HasMore || m.NextOffset == nil || *m.NextOffset != 30 {
		t.Fatalf("full page meta = %+v", m)
	}
	if m.Total == nil || *m.Total != 55 {
		t.Fatalf("total = %v", m.Total)
	}

	m = OffsetMeta(p, 4, nil)
	if m.HasMore {
		t.Fatal("short page must not report has_more")
	}
	if m.Total != nil {
		t.Fatal("total must stay unset when not requested")
	}
}

func TestParseSortSpec(t *testing.T) {
	cases := []struct {
		spec  string
		field string
		asc   bool
		bad   bool
	}{
		{"", "", true, false},
		{"name", "name", true, false},
		{"name:asc", "name", true, false},
		{"created_at:desc", "created_at", false, false},
		{" title : DESC ", "title", false, false},
		{"name:sideways", "", false, true},
	}
	for _, tc := range cases {
		field, asc, err := parseSortSpec(tc.spec)
		if tc.bad {
			if err == nil {
				t.Fatalf("%q: want error", tc.spec)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.spec, err)
		}
		if field != tc.field || asc != tc.asc {
			t.Fatalf("%q: got %q/%v", tc.spec, field, asc)
		}
	}
}

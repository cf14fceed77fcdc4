package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains pagination parameters from HTTP request
type PagingParams struct {
	Limit  int
	Offset int
	// Sort key string, "field:dir"
	Sort string
	// Whether to compute total count
	WithTotal bool
}

func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{Limit: lo.Clamp(c.QueryInt("limit", 20), 1, 100)}
	p.Offset = c.QueryInt("offset", 0)
	if p.Offset < 0 {
		p.Offset = 0
	}
	p.Sort = c.Query("sort", "")
	p.WithTotal = c.Query("with_total", "false") == "true"
	return p, nil
}

// OffsetMeta builds the standard list metadata for an offset page.
func OffsetMeta(p PagingParams, count int, total *int) PageMeta {
	next := p.Offset + count
	return PageMeta{
		Limit:      p.Limit,
		Offset:     p.Offset,
		Count:      count,
		NextOffset: &next,
		HasMore:    count == p.Limit,
		Total:      total,
	}
}

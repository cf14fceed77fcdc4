// Package prds provides HTTP handlers for PRD generation, polling and search.
package prds

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planforge/ent"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"planforge/ent/project"
	"planforge/ent/user"
	"planforge/internal/esx"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
	"planforge/internal/prdgen"
)

// ownedFeature loads a feature by path param scoped to the caller's projects.
func ownedFeature(ctx context.Context, client *ent.Client, c *fiber.Ctx) (*ent.Feature, error) {
	uid, ok := mw.UserID(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, kit.BadRequest("invalid feature id", c.Params("id"))
	}
	f, err := client.Feature.Query().
		Where(feature.IDEQ(id), feature.HasProjectWith(project.HasOwnerWith(user.IDEQ(uid)))).
		WithProject().
		Only(ctx)
	if err != nil {
		return nil, kit.NotFound("feature not found")
	}
	return f, nil
}

// GeneratePRDHandler kicks background PRD generation for a feature.
//
//	@Summary      Generate PRD
//	@Description  Start PRD generation; poll GET for the result
//	@Tags         prds
//	@Security     BearerAuth
//	@Param        id  path  string  true  "feature id"
//	@Success      202   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/features/{id}/prd [post]
func GeneratePRDHandler(client *ent.Client, writer *prdgen.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		f, err := ownedFeature(ctx, client, c)
		if err != nil {
			return err
		}

		// read-then-act: a concurrent request can slip through, the job
		// boundary tolerates the duplicate
		row, err := client.PRD.Query().
			Where(prd.HasFeatureWith(feature.IDEQ(f.ID))).
			Only(ctx)
		switch {
		case err == nil && row.Status == prd.StatusGenerating:
			return kit.Accepted(c, fiber.Map{"status": prd.StatusGenerating})
		case err == nil:
			if err := client.PRD.UpdateOneID(row.ID).
				SetStatus(prd.StatusGenerating).
				ClearErrorMessage().
				Exec(ctx); err != nil {
				return kit.InternalError("update prd failed", err.Error())
			}
		case ent.IsNotFound(err):
			if _, err := client.PRD.Create().
				SetStatus(prd.StatusGenerating).
				SetFeatureID(f.ID).
				Save(ctx); err != nil {
				return kit.InternalError("create prd failed", err.Error())
			}
		default:
			return kit.InternalError("query prd failed", err.Error())
		}

		uid, _ := mw.UserID(c)
		writer.CacheGeneratingStatus(ctx, f.ID)
		go writer.Run(uid, f.Edges.Project.ID, f.ID)

		return kit.Accepted(c, fiber.Map{"status": prd.StatusGenerating})
	}
}

// GetPRDHandler polls PRD state; the Redis status cache short-circuits the
// row read while a job is in flight.
//
//	@Summary      Get PRD
//	@Tags         prds
//	@Security     BearerAuth
//	@Param        id  path  string  true  "feature id"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/features/{id}/prd [get]
func GetPRDHandler(client *ent.Client, writer *prdgen.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		f, err := ownedFeature(ctx, client, c)
		if err != nil {
			return err
		}

		if writer.RDB != nil {
			if cached, err := writer.RDB.Get(ctx, prdgen.StatusCacheKey(f.ID)).Result(); err == nil && cached == string(prd.StatusGenerating) {
				return kit.OK(c, fiber.Map{"status": prd.StatusGenerating})
			}
		}

		row, err := client.PRD.Query().
			Where(prd.HasFeatureWith(feature.IDEQ(f.ID))).
			Only(ctx)
		if ent.IsNotFound(err) {
			return kit.OK(c, fiber.Map{"status": prd.StatusIdle})
		}
		if err != nil {
			return kit.InternalError("query prd failed", err.Error())
		}

		out := fiber.Map{
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
		}
		switch row.Status {
		case prd.StatusReady:
			out["content_md"] = row.ContentMd
			out["model"] = row.Model
			if row.ContentJSON != nil {
				out["content_json"] = row.ContentJSON
			}
		case prd.StatusError:
			out["error_message"] = row.ErrorMessage
		}
		return kit.OK(c, out)
	}
}

// SearchPRDsHandler searches ready PRDs via Elasticsearch.
//
//	@Summary      Search PRDs
//	@Tags         prds
//	@Security     BearerAuth
//	@Param        q      query  string  true   "query text"
//	@Param        limit  query  int     false  "page size"
//	@Param        offset query  int     false  "page offset"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/search/prds [get]
func SearchPRDsHandler(client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		q := c.Query("q")
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		if es == nil {
			return kit.List(c, []fiber.Map{}, kit.OffsetMeta(pg, 0, nil))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		ids, err := client.Project.Query().
			Where(project.HasOwnerWith(user.IDEQ(uid))).
			IDs(ctx)
		if err != nil {
			return kit.InternalError("query projects failed", err.Error())
		}
		if len(ids) == 0 {
			return kit.List(c, []fiber.Map{}, kit.OffsetMeta(pg, 0, nil))
		}
		scope := make([]string, 0, len(ids))
		for _, id := range ids {
			scope = append(scope, id.String())
		}

		res, err := esx.SearchPRDs(ctx, es, prdgen.PRDIndex, q, scope, pg.Offset, pg.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, res)
	}
}

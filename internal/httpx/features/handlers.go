// Package features provides HTTP handlers for project features.
package features

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planforge/ent"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/prd"
	"planforge/ent/project"
	"planforge/ent/user"
	"planforge/internal/graphgen"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
	"planforge/internal/httpx/projects"
	"planforge/internal/logx"

	"go.uber.org/zap"
)

var featLogger = logx.GetScope("features")

// CreateFeatureRequest is the request body for creating a feature
// swagger:model CreateFeatureRequest
type CreateFeatureRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

// UpdateFeatureRequest is the request body for updating a feature
// swagger:model UpdateFeatureRequest
type UpdateFeatureRequest struct {
	Title *string  `json:"title,omitempty"`
	Notes *string  `json:"notes,omitempty"`
	PosX  *float64 `json:"pos_x,omitempty"`
	PosY  *float64 `json:"pos_y,omitempty"`
}

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

// regenerate rebuilds the project graph after a feature-set change. The
// feature write has already committed, so a regeneration failure is logged
// rather than surfaced.
func regenerate(ctx context.Context, client *ent.Client, orch *graphgen.Orchestrator, proj *ent.Project, userID uuid.UUID) {
	feats, err := client.Feature.Query().
		Where(feature.HasProjectWith(project.IDEQ(proj.ID))).
		Order(ent.Asc(feature.FieldCreatedAt), ent.Asc(feature.FieldID)).
		All(ctx)
	if err != nil {
		featLogger.Warn("feature reload for regeneration failed",
			zap.String("project_id", proj.ID.String()), zap.Error(err))
		return
	}
	if _, _, err := orch.GenerateAndPersist(ctx, proj, feats, userID); err != nil && err != graphgen.ErrEmptyFeatureSet {
		featLogger.Warn("graph regeneration failed",
			zap.String("project_id", proj.ID.String()), zap.Error(err))
	}
}

// ListFeaturesHandler lists a project's features.
//
//	@Summary      List features
//	@Tags         features
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/features [get]
func ListFeaturesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		q := client.Feature.Query().Where(feature.HasProjectWith(project.IDEQ(p.ID)))
		s := pg.Sort
		if s == "" {
			s = "created_at:asc"
		}
		q, err = kit.ApplyFeatureSort(q, s)
		if err != nil {
			return err
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query features failed", err.Error())
		}
		return kit.List(c, items, kit.OffsetMeta(pg, len(items), nil))
	}
}

// CreateFeatureHandler adds a feature and regenerates the project graph.
//
//	@Summary      Create feature
//	@Tags         features
//	@Security     BearerAuth
//	@Param        id    path  string  true  "project id"
//	@Param        body  body  features.CreateFeatureRequest  true  "feature"
//	@Success      201   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/features [post]
func CreateFeatureHandler(client *ent.Client, orch *graphgen.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateFeatureRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		req.Title = strings.TrimSpace(req.Title)
		if len(req.Title) < 2 {
			return kit.BadRequest("title must be at least 2 characters", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		f, err := client.Feature.Create().
			SetTitle(req.Title).
			SetNotes(req.Notes).
			SetProjectID(p.ID).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create feature failed", err.Error())
		}

		uid, _ := mw.UserID(c)
		regenerate(ctx, client, orch, p, uid)

		f, err = client.Feature.Get(ctx, f.ID)
		if err != nil {
			return kit.InternalError("reload feature failed", err.Error())
		}
		return kit.Created(c, f)
	}
}

// UpdateFeatureHandler renames, re-notes or repositions a feature. Title or
// notes changes regenerate the graph; a pure reposition only touches the row
// and the stored payload.
//
//	@Summary      Update feature
//	@Tags         features
//	@Security     BearerAuth
//	@Param        id    path  string  true  "feature id"
//	@Param        body  body  features.UpdateFeatureRequest  true  "fields"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/features/{id} [put]
func UpdateFeatureHandler(client *ent.Client, orch *graphgen.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateFeatureRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Title == nil && req.Notes == nil && req.PosX == nil && req.PosY == nil {
			return kit.BadRequest("nothing to update", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		f, err := ownedFeature(ctx, client, c)
		if err != nil {
			return err
		}

		upd := client.Feature.UpdateOneID(f.ID)
		contentChanged := false
		if req.Title != nil {
			t := strings.TrimSpace(*req.Title)
			if len(t) < 2 {
				return kit.BadRequest("title must be at least 2 characters", nil)
			}
			upd = upd.SetTitle(t)
			contentChanged = true
		}
		if req.Notes != nil {
			upd = upd.SetNotes(*req.Notes)
			contentChanged = true
		}
		if req.PosX != nil {
			upd = upd.SetPosX(*req.PosX)
		}
		if req.PosY != nil {
			upd = upd.SetPosY(*req.PosY)
		}
		if err := upd.Exec(ctx); err != nil {
			return kit.InternalError("update feature failed", err.Error())
		}

		if contentChanged {
			uid, _ := mw.UserID(c)
			regenerate(ctx, client, orch, f.Edges.Project, uid)
		}

		f, err = client.Feature.Get(ctx, f.ID)
		if err != nil {
			return kit.InternalError("reload feature failed", err.Error())
		}
		return kit.OK(c, f)
	}
}

// DeleteFeatureHandler removes a feature, its edges, its PRD and its node in
// the stored graph payload. The remaining edge semantics are untouched.
//
//	@Summary      Delete feature
//	@Tags         features
//	@Security     BearerAuth
//	@Param        id  path  string  true  "feature id"
//	@Success      204   {string}  string  "no content"
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/features/{id} [delete]
func DeleteFeatureHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		f, err := ownedFeature(ctx, client, c)
		if err != nil {
			return err
		}
		proj := f.Edges.Project

		if _, err := client.Dependency.Delete().
			Where(dependency.Or(
				dependency.HasSourceWith(feature.IDEQ(f.ID)),
				dependency.HasTargetWith(feature.IDEQ(f.ID)),
			)).
			Exec(ctx); err != nil {
			return kit.InternalError("delete edges failed", err.Error())
		}
		if _, err := client.PRD.Delete().
			Where(prd.HasFeatureWith(feature.IDEQ(f.ID))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete prd failed", err.Error())
		}
		if err := client.Feature.DeleteOneID(f.ID).Exec(ctx); err != nil {
			return kit.InternalError("delete feature failed", err.Error())
		}

		if proj != nil && proj.Graph != nil {
			if payload, err := graphgen.PayloadFromMap(proj.Graph); err == nil {
				pruned := payload.WithoutNode(f.ID.String())
				if err := client.Project.UpdateOneID(proj.ID).SetGraph(pruned.AsMap()).Exec(ctx); err != nil {
					featLogger.Warn("graph payload prune failed",
						zap.String("project_id", proj.ID.String()), zap.Error(err))
				}
			}
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SuggestFeaturesHandler proposes features via the completion service.
//
//	@Summary      Suggest features
//	@Description  AI feature autofill from the project description
//	@Tags         features
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/features/suggest [post]
func SuggestFeaturesHandler(client *ent.Client, orch *graphgen.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		feats, err := client.Feature.Query().
			Where(feature.HasProjectWith(project.IDEQ(p.ID))).
			All(ctx)
		if err != nil {
			return kit.InternalError("query features failed", err.Error())
		}
		infos := make([]graphgen.FeatureInfo, 0, len(feats))
		for _, f := range feats {
			infos = append(infos, graphgen.FeatureInfo{ID: f.ID, Title: f.Title, Notes: f.Notes})
		}

		uid, _ := mw.UserID(c)
		suggestions := orch.SuggestFeatures(ctx, p, infos, uid)
		if suggestions == nil {
			suggestions = []graphgen.Suggestion{}
		}
		return kit.OK(c, fiber.Map{"features": suggestions})
	}
}

// Package graphs provides HTTP handlers for project dependency graphs.
package graphs

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planforge/ent"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/project"
	"planforge/internal/graphgen"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
	"planforge/internal/httpx/projects"
)

// NodePosition is one drag-edit entry
// swagger:model NodePosition
type NodePosition struct {
	ID uuid.UUID `json:"id"`
	X  float64   `json:"x"`
	Y  float64   `json:"y"`
}

// PatchPositionsRequest is the request body for a drag-edit
// swagger:model PatchPositionsRequest
type PatchPositionsRequest struct {
	Positions []NodePosition `json:"positions"`
}

// GenerateGraphHandler runs the generation pipeline for a project.
//
//	@Summary      Generate graph
//	@Description  Regenerate the dependency graph from the project's features
//	@Tags         graphs
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/graph/generate [post]
func GenerateGraphHandler(client *ent.Client, orch *graphgen.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		feats, err := client.Feature.Query().
			Where(feature.HasProjectWith(project.IDEQ(p.ID))).
			Order(ent.Asc(feature.FieldCreatedAt), ent.Asc(feature.FieldID)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query features failed", err.Error())
		}

		uid, _ := mw.UserID(c)
		payload, normalized, err := orch.GenerateAndPersist(ctx, p, feats, uid)
		if err == graphgen.ErrEmptyFeatureSet {
			return kit.BadRequest("project has no features", nil)
		}
		if err != nil {
			return kit.InternalError("graph generation failed", err.Error())
		}

		return kit.OK(c, fiber.Map{
			"graph": payload,
			"summary": fiber.Map{
				"feature_count": len(feats),
				"edge_count":    len(normalized.Edges),
				"dropped_edges": normalized.DroppedEdges,
				"used_fallback": normalized.UsedFallback,
				"model":         normalized.Model,
			},
		})
	}
}

// GetGraphHandler returns the stored graph payload.
//
//	@Summary      Get graph
//	@Tags         graphs
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/graph [get]
func GetGraphHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}
		if p.Graph == nil {
			return kit.NotFound("graph not generated yet")
		}
		return kit.OK(c, p.Graph)
	}
}

// PatchPositionsHandler persists a drag-edit. Only node coordinates move:
// feature rows and payload nodes are updated, edges stay as generated.
//
//	@Summary      Patch node positions
//	@Tags         graphs
//	@Security     BearerAuth
//	@Param        id    path  string  true  "project id"
//	@Param        body  body  graphs.PatchPositionsRequest  true  "positions"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/graph/positions [patch]
func PatchPositionsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req PatchPositionsRequest
		if err := c.BodyParser(&req); err != nil || len(req.Positions) == 0 {
			return kit.BadRequest("positions required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(req.Positions))
		byID := make(map[uuid.UUID]NodePosition, len(req.Positions))
		for _, pos := range req.Positions {
			ids = append(ids, pos.ID)
			byID[pos.ID] = pos
		}
		feats, err := client.Feature.Query().
			Where(feature.IDIn(ids...), feature.HasProjectWith(project.IDEQ(p.ID))).
			All(ctx)
		if err != nil {
			return kit.InternalError("query features failed", err.Error())
		}
		if len(feats) != len(byID) {
			return kit.BadRequest("unknown feature id in positions", nil)
		}

		for _, f := range feats {
			pos := byID[f.ID]
			if err := client.Feature.UpdateOneID(f.ID).SetPosX(pos.X).SetPosY(pos.Y).Exec(ctx); err != nil {
				return kit.InternalError("update position failed", err.Error())
			}
		}

		if p.Graph != nil {
			if payload, perr := graphgen.PayloadFromMap(p.Graph); perr == nil {
				for i, n := range payload.Nodes {
					if id, perr := uuid.Parse(n.ID); perr == nil {
						if pos, ok := byID[id]; ok && n.Draggable {
							payload.Nodes[i].X = pos.X
							payload.Nodes[i].Y = pos.Y
						}
					}
				}
				if err := client.Project.UpdateOneID(p.ID).SetGraph(payload.AsMap()).Exec(ctx); err != nil {
					return kit.InternalError("update graph payload failed", err.Error())
				}
			}
		}

		return kit.OK(c, fiber.Map{"updated": len(feats)})
	}
}

// ListEdgesHandler lists the project's dependency edges.
//
//	@Summary      List edges
//	@Tags         graphs
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/edges [get]
func ListEdgesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		p, err := projects.OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		edges, err := client.Dependency.Query().
			Where(dependency.HasProjectWith(project.IDEQ(p.ID))).
			WithSource().
			WithTarget().
			Order(dependency.ByCreatedAt(), dependency.ByID()).
			All(ctx)
		if err != nil {
			return kit.InternalError("query edges failed", err.Error())
		}

		out := make([]fiber.Map, 0, len(edges))
		for _, e := range edges {
			m := fiber.Map{"id": e.ID, "note": e.Note, "created_at": e.CreatedAt}
			if e.Edges.Source != nil {
				m["source"] = e.Edges.Source.ID
			}
			if e.Edges.Target != nil {
				m["target"] = e.Edges.Target.ID
			}
			out = append(out, m)
		}
		return kit.OK(c, out)
	}
}

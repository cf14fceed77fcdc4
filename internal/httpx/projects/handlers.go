// Package projects provides HTTP handlers for managing projects.
package projects

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planforge/ent"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/graphrun"
	"planforge/ent/prd"
	"planforge/ent/project"
	"planforge/ent/user"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
)

// CreateProjectRequest is the request body for creating a project
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest is the request body for updating a project
// swagger:model UpdateProjectRequest
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// OwnedProject loads a project by id scoped to the authenticated owner.
func OwnedProject(ctx context.Context, client *ent.Client, c *fiber.Ctx, param string) (*ent.Project, error) {
	uid, ok := mw.UserID(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return nil, kit.BadRequest("invalid project id", c.Params(param))
	}
	p, err := client.Project.Query().
		Where(project.IDEQ(id), project.HasOwnerWith(user.IDEQ(uid))).
		Only(ctx)
	if err != nil {
		return nil, kit.NotFound("project not found")
	}
	return p, nil
}

// ListProjectsHandler lists the caller's projects.
//
//	@Summary      List projects
//	@Tags         projects
//	@Security     BearerAuth
//	@Param        name   query  string  false  "filter by name substring"
//	@Param        limit  query  int     false  "page size"
//	@Param        offset query  int     false  "page offset"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/projects [get]
func ListProjectsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		nameFilter := c.Query("name")
		q := client.Project.Query().Where(project.HasOwnerWith(user.IDEQ(uid)))
		if nameFilter != "" {
			q = q.Where(project.NameContains(nameFilter))
		}

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		s := pg.Sort
		if s == "" {
			s = "created_at:desc"
		}
		q, err = kit.ApplyProjectSort(q, s)
		if err != nil {
			return err
		}

		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query projects failed", err.Error())
		}

		var total *int
		if pg.WithTotal {
			tq := client.Project.Query().Where(project.HasOwnerWith(user.IDEQ(uid)))
			if nameFilter != "" {
				tq = tq.Where(project.NameContains(nameFilter))
			}
			if n, err := tq.Count(ctx); err == nil {
				total = &n
			}
		}
		return kit.List(c, items, kit.OffsetMeta(pg, len(items), total))
	}
}

// CreateProjectHandler creates a project owned by the caller.
//
//	@Summary      Create project
//	@Tags         projects
//	@Security     BearerAuth
//	@Param        body  body   projects.CreateProjectRequest  true  "project"
//	@Success      201   {object}  map[string]interface{}
//	@Router       /api/v1/projects [post]
func CreateProjectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req CreateProjectRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		p, err := client.Project.Create().
			SetName(strings.TrimSpace(req.Name)).
			SetDescription(req.Description).
			SetOwnerID(uid).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create project failed", err.Error())
		}
		return kit.Created(c, p)
	}
}

// GetProjectHandler returns one project.
//
//	@Summary      Get project
//	@Tags         projects
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [get]
func GetProjectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		p, err := OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}
		return kit.OK(c, p)
	}
}

// UpdateProjectHandler updates name/description.
//
//	@Summary      Update project
//	@Tags         projects
//	@Security     BearerAuth
//	@Param        id    path  string  true  "project id"
//	@Param        body  body  projects.UpdateProjectRequest  true  "fields"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [put]
func UpdateProjectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Name == nil && req.Description == nil {
			return kit.BadRequest("nothing to update", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		p, err := OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		upd := client.Project.UpdateOneID(p.ID)
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return kit.BadRequest("name cannot be empty", nil)
			}
			upd = upd.SetName(strings.TrimSpace(*req.Name))
		}
		if req.Description != nil {
			upd = upd.SetDescription(*req.Description)
		}
		p, err = upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update project failed", err.Error())
		}
		return kit.OK(c, p)
	}
}

// DeleteProjectHandler removes a project and everything hanging off it.
//
//	@Summary      Delete project
//	@Tags         projects
//	@Security     BearerAuth
//	@Param        id  path  string  true  "project id"
//	@Success      204   {string}  string  "no content"
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [delete]
func DeleteProjectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		p, err := OwnedProject(ctx, client, c, "id")
		if err != nil {
			return err
		}

		// children first, then the project row
		if _, err := client.PRD.Delete().
			Where(prd.HasFeatureWith(feature.HasProjectWith(project.IDEQ(p.ID)))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete prds failed", err.Error())
		}
		if _, err := client.Dependency.Delete().
			Where(dependency.HasProjectWith(project.IDEQ(p.ID))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete edges failed", err.Error())
		}
		if _, err := client.Feature.Delete().
			Where(feature.HasProjectWith(project.IDEQ(p.ID))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete features failed", err.Error())
		}
		if _, err := client.GraphRun.Delete().
			Where(graphrun.HasProjectWith(project.IDEQ(p.ID))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete graph runs failed", err.Error())
		}
		if err := client.Project.DeleteOneID(p.ID).Exec(ctx); err != nil {
			return kit.InternalError("delete project failed", err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

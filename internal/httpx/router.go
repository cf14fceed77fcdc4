// Package httpx wires the HTTP surface: middleware, auth and all resource
// routes under /api/v1.
package httpx

import (
	"github.com/gofiber/fiber/v2"

	"planforge/ent"
	"planforge/internal/config"
	"planforge/internal/cryptox"
	"planforge/internal/esx"
	"planforge/internal/graphgen"
	"planforge/internal/httpx/auth"
	"planforge/internal/httpx/credentials"
	"planforge/internal/httpx/features"
	"planforge/internal/httpx/graphs"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
	"planforge/internal/httpx/prds"
	"planforge/internal/httpx/projects"
	"planforge/internal/mqx"
	"planforge/internal/prdgen"
	"planforge/internal/redisx"
)

// Providers carries the optional infrastructure clients. Any field may be
// nil; the affected feature degrades instead of failing.
type Providers struct {
	Box *cryptox.Box
	MQ  mqx.Publisher
	ES  *esx.Client
	RDB *redisx.Client
}

// Register mounts every route on the app.
func Register(app *fiber.App, client *ent.Client, store *config.Store, p Providers) {
	orch := graphgen.NewOrchestrator(client, store, p.Box, p.MQ)
	writer := prdgen.NewWriter(client, store, p.Box, p.MQ, p.ES, p.RDB)

	app.Get("/health", HealthHandler)

	cfg := store.Get()
	api := app.Group("/api/v1")
	api.Use(mw.JWTMiddlewareDynamic(func(token string) (string, string, []string, error) {
		claims, err := auth.ParseAndValidate(store.Get(), token)
		if err != nil {
			return "", "", nil, err
		}
		return claims.Subject, claims.Kind, claims.Roles, nil
	}))
	api.Use(mw.RateLimitDefault(p.RDB, cfg.RateLimit.WindowSec, cfg.RateLimit.Max))

	// public
	api.Post("/auth/register", auth.RegisterHandler(store, client))
	api.Post("/auth/login", auth.LoginHandler(store, client))
	api.Post("/auth/refresh", auth.RefreshHandler(store))
	api.Post("/auth/logout", auth.LogoutHandler())

	// authenticated
	authed := api.Group("", mw.RequireUser())
	authed.Get("/auth/me", auth.MeHandler())

	authed.Get("/projects", projects.ListProjectsHandler(client))
	authed.Post("/projects", projects.CreateProjectHandler(client))
	authed.Get("/projects/:id", projects.GetProjectHandler(client))
	authed.Put("/projects/:id", projects.UpdateProjectHandler(client))
	authed.Delete("/projects/:id", projects.DeleteProjectHandler(client))

	authed.Get("/projects/:id/features", features.ListFeaturesHandler(client))
	authed.Post("/projects/:id/features", features.CreateFeatureHandler(client, orch))
	authed.Post("/projects/:id/features/suggest", features.SuggestFeaturesHandler(client, orch))
	authed.Put("/features/:id", features.UpdateFeatureHandler(client, orch))
	authed.Delete("/features/:id", features.DeleteFeatureHandler(client))

	authed.Post("/projects/:id/graph/generate", graphs.GenerateGraphHandler(client, orch))
	authed.Get("/projects/:id/graph", graphs.GetGraphHandler(client))
	authed.Patch("/projects/:id/graph/positions", graphs.PatchPositionsHandler(client))
	authed.Get("/projects/:id/edges", graphs.ListEdgesHandler(client))

	authed.Post("/features/:id/prd", prds.GeneratePRDHandler(client, writer))
	authed.Get("/features/:id/prd", prds.GetPRDHandler(client, writer))
	authed.Get("/search/prds", prds.SearchPRDsHandler(client, p.ES))

	authed.Put("/me/credential", credentials.PutCredentialHandler(client, p.Box))
	authed.Get("/me/credential", credentials.GetCredentialHandler(client))
	authed.Delete("/me/credential", credentials.DeleteCredentialHandler(client))
}

// ErrorHandler re-exports the kit error handler for app construction.
func ErrorHandler() fiber.ErrorHandler { return kit.ErrorHandler() }

package httpx

import (
	"github.com/gofiber/fiber/v2"

	"planforge/internal/httpx/kit"
)

// HealthHandler reports service liveness.
//
//	@Summary		Health check
//	@Description	Check API service health
//	@Tags			health
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]string	"service healthy"
//	@Router			/health [get]
func HealthHandler(c *fiber.Ctx) error {
	return kit.OK(c, fiber.Map{"status": "ok"})
}

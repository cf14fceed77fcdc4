// Package credentials manages the caller's completion-service API key.
package credentials

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"planforge/ent"
	"planforge/ent/apicredential"
	"planforge/ent/user"
	"planforge/internal/cryptox"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
)

// PutCredentialRequest is the request body for storing an API key
// swagger:model PutCredentialRequest
type PutCredentialRequest struct {
	APIKey   string `json:"api_key"`
	Provider string `json:"provider,omitempty"`
}

// hint keeps just enough of the key to recognize it in a UI.
func hint(key string) string {
	if len(key) <= 4 {
		return "..." + key
	}
	return "..." + key[len(key)-4:]
}

// PutCredentialHandler encrypts and stores the caller's API key. The
// plaintext is never persisted and never echoed back.
//
//	@Summary      Store API credential
//	@Tags         credentials
//	@Security     BearerAuth
//	@Param        body  body  credentials.PutCredentialRequest  true  "credential"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/me/credential [put]
func PutCredentialHandler(client *ent.Client, box *cryptox.Box) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if box == nil {
			return kit.InternalError("credential storage is not configured", nil)
		}
		var req PutCredentialRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.APIKey) == "" {
			return kit.BadRequest("api_key required", nil)
		}
		key := strings.TrimSpace(req.APIKey)
		provider := strings.TrimSpace(req.Provider)
		if provider == "" {
			provider = "openai"
		}

		sealed, err := box.Seal(key)
		if err != nil {
			return kit.InternalError("seal credential failed", err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		existing, err := client.APICredential.Query().
			Where(apicredential.HasOwnerWith(user.IDEQ(uid)), apicredential.ProviderEQ(provider)).
			Only(ctx)
		switch {
		case err == nil:
			if err := client.APICredential.UpdateOneID(existing.ID).
				SetEncryptedKey(sealed).
				SetKeyHint(hint(key)).
				Exec(ctx); err != nil {
				return kit.InternalError("update credential failed", err.Error())
			}
		case ent.IsNotFound(err):
			if _, err := client.APICredential.Create().
				SetProvider(provider).
				SetEncryptedKey(sealed).
				SetKeyHint(hint(key)).
				SetOwnerID(uid).
				Save(ctx); err != nil {
				return kit.InternalError("create credential failed", err.Error())
			}
		default:
			return kit.InternalError("query credential failed", err.Error())
		}

		return kit.OK(c, fiber.Map{"provider": provider, "key_hint": hint(key)})
	}
}

// GetCredentialHandler returns the stored credential's hint only.
//
//	@Summary      Get API credential
//	@Tags         credentials
//	@Security     BearerAuth
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/me/credential [get]
func GetCredentialHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		cred, err := client.APICredential.Query().
			Where(apicredential.HasOwnerWith(user.IDEQ(uid))).
			First(ctx)
		if err != nil {
			return kit.NotFound("no credential configured")
		}
		return kit.OK(c, fiber.Map{
			"provider":   cred.Provider,
			"key_hint":   cred.KeyHint,
			"updated_at": cred.UpdatedAt,
		})
	}
}

// DeleteCredentialHandler removes the stored credential.
//
//	@Summary      Delete API credential
//	@Tags         credentials
//	@Security     BearerAuth
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/me/credential [delete]
func DeleteCredentialHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		if _, err := client.APICredential.Delete().
			Where(apicredential.HasOwnerWith(user.IDEQ(uid))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete credential failed", err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

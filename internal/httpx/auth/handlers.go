// Package auth provides registration, login and token refresh handlers.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"planforge/ent"
	"planforge/ent/user"
	"planforge/internal/config"
	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
)

// RegisterHandler creates a user account and issues tokens.
//
//	@Summary      Register
//	@Description  Create an account with email, password and display name
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.RegisterRequest  true  "registration"
//	@Success      201   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(store *config.Store, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.DisplayName = strings.TrimSpace(req.DisplayName)
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			return kit.BadRequest("valid email required", nil)
		}
		if len(req.Password) < 8 {
			return kit.BadRequest("password must be at least 8 characters", nil)
		}
		if req.DisplayName == "" {
			return kit.BadRequest("display_name required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}
		u, err := client.User.Create().
			SetEmail(req.Email).
			SetDisplayName(req.DisplayName).
			SetPasswordHash(hash).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.Conflict("email already registered", nil)
			}
			return kit.InternalError("create user failed", err.Error())
		}

		cfg := store.Get()
		sub := "user:" + u.ID.String()
		access, _, err := SignAccess(cfg, sub, "user", nil)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		refresh, _, err := SignRefresh(cfg, sub, "user")
		if err != nil {
			return kit.InternalError("sign refresh failed", err.Error())
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)

		return kit.Created(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// LoginHandler verifies credentials and issues tokens.
//
//	@Summary      Login
//	@Description  Password login with email
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(store *config.Store, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
			return kit.BadRequest("email and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		u, err := client.User.Query().
			Where(user.EmailEQ(strings.ToLower(strings.TrimSpace(req.Email)))).
			Only(ctx)
		if err != nil || !VerifyPassword(req.Password, u.PasswordHash) {
			return fiber.ErrUnauthorized
		}

		cfg := store.Get()
		sub := "user:" + u.ID.String()
		access, _, err := SignAccess(cfg, sub, "user", nil)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		refresh, _, err := SignRefresh(cfg, sub, "user")
		if err != nil {
			return kit.InternalError("sign refresh failed", err.Error())
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)

		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// RefreshHandler issues a new access token using the refresh cookie.
//
//	@Summary      Refresh Access Token
//	@Description  Mint new access token from refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(store *config.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		cfg := store.Get()
		claims, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, claims.Subject, claims.Kind, claims.Roles)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary      Logout
//	@Description  Clear refresh cookie; access tokens expire naturally
//	@Tags         auth
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MeHandler returns the current auth context.
//
//	@Summary      Who am I
//	@Tags         auth
//	@Security     BearerAuth
//	@Success      200   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/me [get]
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		if ac == nil {
			return fiber.ErrUnauthorized
		}
		return kit.OK(c, fiber.Map{"subject": ac.Subject, "kind": ac.Kind, "roles": ac.Roles})
	}
}

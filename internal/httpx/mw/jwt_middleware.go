// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthContext holds authentication details extracted from JWT.
type AuthContext struct {
	Subject string // user:<uuid>
	Kind    string // user
	Roles   []string
}

// TokenParser parses a token string and returns subject, kind, roles.
type TokenParser func(token string) (string, string, []string, error)

// JWTMiddlewareDynamic attaches auth context parsed by the given token parser.
func JWTMiddlewareDynamic(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, kind, roles, err := parse(token)
		if err == nil && sub != "" {
			c.Locals("auth", &AuthContext{Subject: sub, Kind: kind, Roles: roles})
		}
		return c.Next()
	}
}

// RequireUser enforces authenticated user (kind=user)
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind != "user" || ac.Subject == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// UserID extracts the authenticated user's id from the request context.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	ac, _ := c.Locals("auth").(*AuthContext)
	if ac == nil || !strings.HasPrefix(ac.Subject, "user:") {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimPrefix(ac.Subject, "user:"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

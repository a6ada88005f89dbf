package handler

import (
	"strings"

	"github.com/SebasEPV/TimeBoxing/internal/auth/domain"
	"github.com/gofiber/fiber/v2"
)

// identityKey is the request-local under which the guard stores the
// authenticated identity.
const identityKey = "identity"

// RequireAuth gates a route behind a valid bearer token. Missing header,
// malformed token, bad signature, and expiry all reject with the same 401
// body; no reason is distinguished to the caller.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return unauthorized(c)
		}

		claims, err := h.tokens.Verify(parts[1])
		if err != nil {
			h.logger.Warn("token rejected", "error", err)
			return unauthorized(c)
		}

		identity, err := claims.Identity()
		if err != nil {
			h.logger.Warn("token rejected", "error", err)
			return unauthorized(c)
		}

		c.Locals(identityKey, identity)

		return c.Next()
	}
}

// IdentityFromCtx returns the identity attached by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) (domain.SignInIdentity, bool) {
	identity, ok := c.Locals(identityKey).(domain.SignInIdentity)
	return identity, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}

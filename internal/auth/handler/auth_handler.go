package handler

import (
	"errors"
	"log/slog"

	"github.com/SebasEPV/TimeBoxing/internal/auth/dto"
	"github.com/SebasEPV/TimeBoxing/internal/auth/service"
	autherror "github.com/SebasEPV/TimeBoxing/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
	tokens      service.TokenCodec
	logger      *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, tokens service.TokenCodec, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Shape validation lives upstream; only the non-empty contract is
	// enforced here.
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	result, err := h.authService.Authenticate(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrInvalidCredentials.Error(),
			})
		}

		// Credential store fault, not a bad credential.
		h.logger.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Me returns the identity the guard attached for the current request.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.IdentityOutput{
		ID:       identity.ID,
		Username: identity.Username,
	})
}

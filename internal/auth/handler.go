package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	auth *Authenticator
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewHandler(auth *Authenticator) *Handler {
	return &Handler{auth: auth}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Username == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "username and password are required"})
	}

	token, err := h.auth.SignIn(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{"message": "Login successful", "token": token})
}

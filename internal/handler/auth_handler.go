package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/service"
	"go-shop-backend/pkg/apperr"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type signInRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req service.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.SignUp(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(resp)
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.SignIn(req.PhoneNumber, req.Password)
	if err != nil {
		return signInError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) AdminSignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.AdminSignIn(req.PhoneNumber, req.Password)
	if err != nil {
		return signInError(c, err)
	}
	return c.JSON(resp)
}

// Bad credentials come back as 401 regardless of which check failed.
func signInError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindNotFound:
		return c.Status(401).JSON(fiber.Map{"error": "Invalid phone number or password"})
	default:
		return respondError(c, err)
	}
}

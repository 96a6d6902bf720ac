package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/repository"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.repo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := h.repo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := h.repo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		PhoneNumber string `json:"phoneNumber"`
		FirstName   string `json:"firstName"`
		Address     string `json:"address"`
		Password    string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return respondError(c, err)
		}
	}

	if err := h.repo.Update(user); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User updated", "data": user})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

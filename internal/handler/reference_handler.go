package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/repository"
	"go-shop-backend/pkg/validator"
)

// ReferenceHandler serves the admin CRUD for one lookup table, mirroring the
// shared repository shape.
type ReferenceHandler[T any] struct {
	repo *repository.ReferenceRepository[T]
	name string
}

func NewReferenceHandler[T any](repo *repository.ReferenceRepository[T], name string) *ReferenceHandler[T] {
	return &ReferenceHandler[T]{repo: repo, name: name}
}

func (h *ReferenceHandler[T]) List(c *fiber.Ctx) error {
	entities, err := h.repo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{h.name: entities})
}

func (h *ReferenceHandler[T]) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID"})
	}

	entity, err := h.repo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entity)
}

func (h *ReferenceHandler[T]) Create(c *fiber.Ctx) error {
	var entity T
	if err := c.BodyParser(&entity); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&entity); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: Field '" + first.FailedField + "' failed on tag '" + first.Tag + "'",
		})
	}

	if err := h.repo.Create(&entity); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Created", "data": entity})
}

func (h *ReferenceHandler[T]) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var entity T
	if err := c.BodyParser(&entity); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.repo.Update(id, &entity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Updated"})
}

func (h *ReferenceHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

// Routes registers the standard CRUD routes for this table on the router.
func (h *ReferenceHandler[T]) Routes(router fiber.Router, adminOnly fiber.Handler) {
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Post("/", adminOnly, h.Create)
	router.Put("/:id", adminOnly, h.Update)
	router.Delete("/:id", adminOnly, h.Delete)
}

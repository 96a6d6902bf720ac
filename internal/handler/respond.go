package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-shop-backend/pkg/apperr"
)

// respondError maps the application error taxonomy onto HTTP statuses. Raw
// storage errors are logged server-side and never leak to the caller.
func respondError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindNotFound:
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindConflict, apperr.KindConsistency:
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func pageParams(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	return page, limit
}
